package pipeline

import (
	"context"
	"os"

	"github.com/matzehuels/hexboard/pkg/board"
	boardio "github.com/matzehuels/hexboard/pkg/io"
	"github.com/matzehuels/hexboard/pkg/observability"
)

// Generate builds the board described by opts. When opts.Input is set the
// board is read from that text file and the shape fields are ignored.
func Generate(ctx context.Context, opts Options) (board.Grid, error) {
	if opts.Input != "" {
		return importBoard(ctx, opts.Input)
	}
	shape, err := opts.Shape()
	if err != nil {
		return nil, err
	}
	return board.Generate(shape)
}

// importBoard reads a text board file, reporting the read to the file hooks.
func importBoard(ctx context.Context, path string) (board.Grid, error) {
	g, err := boardio.ImportText(path)
	size := 0
	if fi, statErr := os.Stat(path); err == nil && statErr == nil {
		size = int(fi.Size())
	}
	observability.Files().OnFileRead(ctx, path, size, err)
	return g, err
}

// Source describes where the board of opts comes from, for logs and hooks:
// the input path, or the shape with its parameters.
func Source(opts Options) string {
	if opts.Input != "" {
		return opts.Input
	}
	if shape, err := opts.Shape(); err == nil {
		return shape.String()
	}
	return opts.Type
}
