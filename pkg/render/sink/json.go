package sink

import (
	"encoding/json"

	"github.com/matzehuels/hexboard/pkg/layout"
	"github.com/matzehuels/hexboard/pkg/render/styles"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style *styles.Style
}

// WithJSONStyle adds each hexagon's resolved fill and stroke to the output.
func WithJSONStyle(s styles.Style) JSONOption { return func(r *jsonRenderer) { r.style = &s } }

type jsonOutput struct {
	Width       float64       `json:"width"`
	Height      float64       `json:"height"`
	Orientation string        `json:"orientation"`
	Edge        float64       `json:"edge"`
	Spacing     float64       `json:"spacing"`
	Padding     float64       `json:"padding"`
	Hexagons    []jsonHexagon `json:"hexagons"`
}

type jsonHexagon struct {
	Col       int          `json:"col"`
	Row       int          `json:"row"`
	FieldType int          `json:"type"`
	Center    [2]float64   `json:"center"`
	Vertices  [][2]float64 `json:"vertices"`
	Fill      string       `json:"fill,omitempty"`
	Stroke    string       `json:"stroke,omitempty"`
}

// RenderJSON exports the layout as a pretty-printed JSON document: the canvas
// size and geometry parameters, then every hexagon with its grid coordinate,
// field type, center and vertices in drawing order.
//
// It does not modify l and is safe to call concurrently.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:       l.Width,
		Height:      l.Height,
		Orientation: l.Orientation.String(),
		Edge:        l.Edge,
		Spacing:     l.Spacing,
		Padding:     l.Padding,
		Hexagons:    make([]jsonHexagon, 0, len(l.Hexagons)),
	}
	for _, h := range l.Hexagons {
		jh := jsonHexagon{
			Col:       h.Col,
			Row:       h.Row,
			FieldType: h.FieldType,
			Center:    [2]float64{h.Center.X, h.Center.Y},
			Vertices:  make([][2]float64, len(h.Vertices)),
		}
		for i, v := range h.Vertices {
			jh.Vertices[i] = [2]float64{v.X, v.Y}
		}
		if r.style != nil {
			fs := r.style.For(h.FieldType)
			jh.Fill, jh.Stroke = fs.Fill, fs.Stroke
		}
		out.Hexagons = append(out.Hexagons, jh)
	}
	return json.MarshalIndent(out, "", "  ")
}
