package io

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/matzehuels/hexboard/pkg/board"
	"github.com/matzehuels/hexboard/pkg/errors"
)

// WriteText encodes g as row-major text and writes it to w.
//
// Columns shorter than the longest one are padded with 0 before the grid is
// transposed, so every written line has the same number of cells. g is not
// modified. The output can be decoded with [ReadText].
func WriteText(g board.Grid, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.Transpose() {
		for i, v := range row {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write board")
	}
	return nil
}

// ExportText writes g to a text board file at path, creating or truncating
// it. Any failure is returned as an IO_FAILURE error and the file may be left
// partially written.
func ExportText(g board.Grid, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	if err := WriteText(g, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	return nil
}
