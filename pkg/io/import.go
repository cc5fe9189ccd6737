package io

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/hexboard/pkg/board"
	"github.com/matzehuels/hexboard/pkg/errors"
)

// MaxLineSize is the longest board row, in bytes, that [ReadText] accepts.
const MaxLineSize = 1 << 20

// ReadText decodes a row-major text board from r into a Grid.
//
// Each non-blank line is split on whitespace and parsed as integers. Lines
// shorter than the longest one are padded with 0, and the rows are transposed
// into the [column][row] convention of [board.Grid].
//
// ReadText returns an INVALID_BOARD_FILE error if a token is not a
// non-negative integer, if a row exceeds [MaxLineSize] or if the input
// contains no cells. ReadText does not close r.
func ReadText(r io.Reader) (board.Grid, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidBoardFile, err, "line %d: invalid cell %q", line, tok)
			}
			if v < 0 {
				return nil, errors.New(errors.ErrCodeInvalidBoardFile, "line %d: negative cell %q", line, tok)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		if err == bufio.ErrTooLong {
			return nil, errors.Wrap(errors.ErrCodeInvalidBoardFile, err, "line %d: row longer than %d bytes", line+1, MaxLineSize)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read board")
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidBoardFile, "board file contains no cells")
	}

	// Rows are stored as a Grid so that Transpose pads them on the way.
	return board.Grid(rows).Transpose(), nil
}

// ImportText reads the text board file at path.
//
// ImportText opens the file, decodes it using [ReadText], and closes it.
// Failing to open or read the file yields an IO_FAILURE error wrapping the
// OS error; malformed content yields the errors of [ReadText].
func ImportText(path string) (board.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	g, err := ReadText(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "import %s", path)
	}
	return g, nil
}
