package layout

import "github.com/matzehuels/hexboard/pkg/hex"

// Hexagon is a single drawable board cell.
//
// Vertices are listed in drawing order around the hexagon. FieldType is copied
// from the source grid cell (0 only for absent cells kept with trimming off).
// Col and Row record the source grid coordinate. Hexagon is a value type:
// transformations return new values.
type Hexagon struct {
	Vertices  [6]hex.Point
	Center    hex.Point
	FieldType int
	Col, Row  int
}

// Translate returns a copy of h moved by (dx, dy).
func (h Hexagon) Translate(dx, dy float64) Hexagon {
	d := hex.Point{X: dx, Y: dy}
	out := h
	out.Center = h.Center.Add(d)
	for i, v := range h.Vertices {
		out.Vertices[i] = v.Add(d)
	}
	return out
}

// Absent reports whether the hexagon stands for an absent (0) cell.
func (h Hexagon) Absent() bool { return h.FieldType == 0 }

// Box is an axis-aligned bounding rectangle.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal span of the box.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical span of the box.
func (b Box) Height() float64 { return b.MaxY - b.MinY }
