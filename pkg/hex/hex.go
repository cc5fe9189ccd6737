package hex

import (
	"fmt"
	"math"
	"strings"
)

// Orientation selects how hexagons are rotated on the plane.
type Orientation int

const (
	// PointyTop hexagons have a vertex at the top; rows run horizontally.
	PointyTop Orientation = iota
	// FlatTop hexagons have an edge at the top; columns run vertically.
	FlatTop
)

// Orientation names accepted by [ParseOrientation].
const (
	NamePointy = "pointy"
	NameFlat   = "flat"
)

// String returns "pointy" or "flat".
func (o Orientation) String() string {
	if o == FlatTop {
		return NameFlat
	}
	return NamePointy
}

// ParseOrientation converts a name ("pointy", "flat", case-insensitive) to an
// Orientation. The empty string maps to PointyTop.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", NamePointy, "pointy-top":
		return PointyTop, nil
	case NameFlat, "flat-top":
		return FlatTop, nil
	}
	return PointyTop, fmt.Errorf("unknown orientation %q (must be %q or %q)", s, NamePointy, NameFlat)
}

// startAngle is the angle, in degrees, of the first vertex and of the X axis.
func (o Orientation) startAngle() float64 {
	if o == FlatTop {
		return 30
	}
	return 0
}

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Axes is the pair of unit vectors spanning the axial coordinate system.
// The angle between X and Y is always 60°.
type Axes struct {
	X, Y Point
}

// AxesFor returns the axial basis for o. Pointy-top boards use axes at 0° and
// 60°; flat-top boards use 30° and 90°.
//
// The result is computed on every call; it depends on nothing but o.
func AxesFor(o Orientation) Axes {
	x := o.startAngle()
	return Axes{X: unit(x), Y: unit(x + 60)}
}

// Spacing returns the center-to-center distance of neighboring hexagons with
// the given edge length and visual gap between them.
func Spacing(edge, offset float64) float64 {
	return edge*math.Sqrt(3) + offset
}

// Project maps the grid coordinate (x, y) onto the plane: scale * (x*X + y*Y).
func Project(x, y int, axes Axes, scale float64) Point {
	fx, fy := float64(x), float64(y)
	return Point{
		X: (axes.X.X*fx + axes.Y.X*fy) * scale,
		Y: (axes.X.Y*fx + axes.Y.Y*fy) * scale,
	}
}

// Vertices returns the six corners of a regular hexagon centered at center
// whose edge length (and circumradius) is edge. Vertex i lies at angle
// start + 60°*i and is placed at center + edge*(sin a, cos a).
func Vertices(center Point, edge float64, o Orientation) [6]Point {
	var out [6]Point
	start := o.startAngle()
	for i := range out {
		sin, cos := math.Sincos(radians(start + 60*float64(i)))
		out[i] = Point{X: center.X + edge*sin, Y: center.Y + edge*cos}
	}
	return out
}

// unit returns the unit vector (cos θ, sin θ) for θ in degrees.
func unit(deg float64) Point {
	sin, cos := math.Sincos(radians(deg))
	return Point{X: cos, Y: sin}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
