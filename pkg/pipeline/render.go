package pipeline

import (
	"bytes"
	"context"

	"github.com/matzehuels/hexboard/pkg/board"
	"github.com/matzehuels/hexboard/pkg/errors"
	boardio "github.com/matzehuels/hexboard/pkg/io"
	"github.com/matzehuels/hexboard/pkg/layout"
	"github.com/matzehuels/hexboard/pkg/render/sink"
)

// Render generates output artifacts in the requested formats. The text
// format is written from g; every other format is drawn from l.
func Render(ctx context.Context, g board.Grid, l layout.Layout, opts Options) (map[string][]byte, error) {
	style := opts.EffectiveStyle()
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, sink.WithStyle(style))
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithPNGStyle(style), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, l, sink.WithPDFSVGOptions(sink.WithStyle(style)))
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONStyle(style))
		case FormatText:
			data, err = renderText(g)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func renderText(g board.Grid) ([]byte, error) {
	var buf bytes.Buffer
	if err := boardio.WriteText(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
