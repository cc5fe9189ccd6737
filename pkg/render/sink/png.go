package sink

import (
	"bytes"
	"image/color"
	"math"

	"github.com/gogpu/gg"

	"github.com/matzehuels/hexboard/pkg/errors"
	"github.com/matzehuels/hexboard/pkg/layout"
	"github.com/matzehuels/hexboard/pkg/render/styles"
)

// DefaultPNGScale is the pixel density used when no [WithScale] option is given.
const DefaultPNGScale = 1.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	style styles.Style
	scale float64
}

// WithPNGStyle sets the field-type styling (default [styles.Default]).
// Custom CSS has no effect on PNG output.
func WithPNGStyle(s styles.Style) PNGOption {
	return func(r *pngRenderer) { r.style = s }
}

// WithScale sets the PNG scale factor (default 1, use 2 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// paint is a resolved field style.
type paint struct {
	fill        color.RGBA
	stroke      color.RGBA
	strokeWidth float64
	hasStroke   bool
}

// RenderPNG rasterizes the layout with gogpu/gg. The image measures the
// canvas size times the scale factor, rounded up to whole pixels.
//
// Colors must be hex ("#rgb", "#rrggbb") or CSS color names; anything else
// fails with INVALID_INPUT before drawing starts.
func RenderPNG(l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{style: styles.Default(), scale: DefaultPNGScale}
	for _, opt := range opts {
		opt(&r)
	}
	if err := errors.ValidatePositive("scale", r.scale); err != nil {
		return nil, err
	}

	var background color.RGBA
	if fill := r.style.Board.Fill; fill != "" {
		c, err := styles.ParseColor(fill)
		if err != nil {
			return nil, err
		}
		background = c
	}
	paints, err := r.resolve(l)
	if err != nil {
		return nil, err
	}

	w := int(math.Ceil(l.Width * r.scale))
	h := int(math.Ceil(l.Height * r.scale))
	dc := gg.NewContext(max(w, 1), max(h, 1))
	defer dc.Close()

	dc.ClearWithColor(gg.FromColor(background))
	for _, hx := range l.Hexagons {
		if err := r.drawHexagon(dc, hx, paints[hx.FieldType]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "draw hexagon (%d,%d)", hx.Col, hx.Row)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// resolve parses the style of every field type used in l once.
func (r pngRenderer) resolve(l layout.Layout) (map[int]paint, error) {
	out := make(map[int]paint)
	for _, hx := range l.Hexagons {
		if _, ok := out[hx.FieldType]; ok {
			continue
		}
		fs := r.style.For(hx.FieldType)
		var p paint
		if fs.Fill != "" {
			c, err := styles.ParseColor(fs.Fill)
			if err != nil {
				return nil, err
			}
			p.fill = c
		}
		if fs.Stroke != "" && fs.StrokeWidth > 0 {
			c, err := styles.ParseColor(fs.Stroke)
			if err != nil {
				return nil, err
			}
			p.stroke, p.strokeWidth, p.hasStroke = c, fs.StrokeWidth, true
		}
		out[hx.FieldType] = p
	}
	return out, nil
}

func (r pngRenderer) drawHexagon(dc *gg.Context, hx layout.Hexagon, p paint) error {
	for i, v := range hx.Vertices {
		v = v.Scale(r.scale)
		if i == 0 {
			dc.MoveTo(v.X, v.Y)
			continue
		}
		dc.LineTo(v.X, v.Y)
	}
	dc.ClosePath()

	dc.SetColor(p.fill)
	if !p.hasStroke {
		return dc.Fill()
	}
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	dc.SetColor(p.stroke)
	dc.SetLineWidth(p.strokeWidth * r.scale)
	return dc.Stroke()
}
