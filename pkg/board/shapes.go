package board

import (
	"fmt"
	"strings"

	"github.com/matzehuels/hexboard/pkg/errors"
	"github.com/matzehuels/hexboard/pkg/hex"
)

// Kind names a board macro-shape.
type Kind string

// Supported board shapes.
const (
	KindHexagonal   Kind = "hex"
	KindTriangular  Kind = "tri"
	KindRhomboidal  Kind = "rho"
	KindRectangular Kind = "rect"
)

// Kinds lists the supported shapes in display order.
var Kinds = []Kind{KindHexagonal, KindTriangular, KindRhomboidal, KindRectangular}

// ParseKind converts a shape name to a Kind. Besides the canonical names it
// accepts long forms ("hexagonal", "triangular", "rhomboidal", "rectangular")
// and "par"/"parallelogram" for rhomboidal boards.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hex", "hexagonal":
		return KindHexagonal, nil
	case "tri", "triangular", "triangle":
		return KindTriangular, nil
	case "rho", "rhomboidal", "rhombus", "par", "parallelogram":
		return KindRhomboidal, nil
	case "rect", "rectangular", "rectangle":
		return KindRectangular, nil
	}
	return "", errors.New(errors.ErrCodeInvalidShape,
		"invalid board type: %q (must be one of: hex, tri, rho, rect)", s)
}

// Shape describes a board to generate. Only the fields relevant to Kind are
// read: Radius for hexagonal boards, Edge and Mirrored for triangular boards,
// Width and Height for rhomboidal and rectangular boards. Orientation decides
// the stagger direction of rectangular boards.
type Shape struct {
	Kind        Kind
	Radius      int
	Edge        int
	Mirrored    bool
	Width       int
	Height      int
	Orientation hex.Orientation
}

// String summarizes the shape and its relevant parameters.
func (s Shape) String() string {
	switch s.Kind {
	case KindHexagonal:
		return fmt.Sprintf("hex(radius=%d)", s.Radius)
	case KindTriangular:
		return fmt.Sprintf("tri(edge=%d, mirrored=%t)", s.Edge, s.Mirrored)
	case KindRhomboidal:
		return fmt.Sprintf("rho(%dx%d)", s.Width, s.Height)
	case KindRectangular:
		return fmt.Sprintf("rect(%dx%d, %s)", s.Width, s.Height, s.Orientation)
	}
	return string(s.Kind)
}

// Generate builds the grid described by s.
func Generate(s Shape) (Grid, error) {
	switch s.Kind {
	case KindHexagonal:
		return Hexagonal(s.Radius)
	case KindTriangular:
		return Triangular(s.Edge, s.Mirrored)
	case KindRhomboidal:
		return Rhomboidal(s.Width, s.Height)
	case KindRectangular:
		return Rectangular(s.Width, s.Height, s.Orientation)
	}
	return nil, errors.New(errors.ErrCodeInvalidShape, "invalid board type: %q", s.Kind)
}

// Distance returns the hex distance between two axial coordinates.
func Distance(x1, y1, x2, y2 int) int {
	dx, dy := x1-x2, y1-y2
	return (abs(dx) + abs(dy) + abs(dx+dy)) / 2
}

// Hexagonal returns a board shaped like a hexagon: every cell within radius
// of the center cell (radius, radius). The grid is (2r+1) × (2r+1) and holds
// 3r²+3r+1 present cells; radius 0 yields a single cell.
func Hexagonal(radius int) (Grid, error) {
	if err := errors.ValidateMinInt("radius", radius, 0); err != nil {
		return nil, err
	}
	side := 2*radius + 1
	g := New(side, side)
	for x := range g {
		for y := range g[x] {
			if Distance(x, y, radius, radius) <= radius {
				g[x][y] = 1
			}
		}
	}
	return g, nil
}

// Triangular returns an equilateral triangle with edge cells per side on an
// edge × edge grid. Cell (x, y) is present when x+y < edge; mirrored boards
// use the point-reflected pattern x+y+1 >= edge instead.
func Triangular(edge int, mirrored bool) (Grid, error) {
	if err := errors.ValidateMinInt("edge", edge, 1); err != nil {
		return nil, err
	}
	g := New(edge, edge)
	for x := range g {
		for y := range g[x] {
			if (!mirrored && x+y < edge) || (mirrored && x+y+1 >= edge) {
				g[x][y] = 1
			}
		}
	}
	return g, nil
}

// Rhomboidal returns a width × height parallelogram with every cell present.
func Rhomboidal(width, height int) (Grid, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	g := New(width, height)
	for x := range g {
		for y := range g[x] {
			g[x][y] = 1
		}
	}
	return g, nil
}

// Rectangular returns a board that projects to a true rectangle.
//
// For PointyTop the board has height rows of width cells. Consecutive pairs
// of rows shift one cell left so that the axial shear is cancelled; the grid
// is (width + (height-1)/2) × height and the first and last rows leave
// (height-1)/2 cells unused at opposite ends. For FlatTop the axes swap:
// width columns of height cells on a width × (height + (width-1)/2) grid.
func Rectangular(width, height int, o hex.Orientation) (Grid, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	if o == hex.FlatTop {
		return staggered(height, width).Transpose(), nil
	}
	return staggered(width, height), nil
}

// staggered lays out rows lines of length cells along the grid's first axis.
func staggered(length, rows int) Grid {
	trim := (rows - 1) / 2
	g := New(length+trim, rows)
	for y := 0; y < rows; y++ {
		start := trim - y/2
		for x := start; x < start+length; x++ {
			g[x][y] = 1
		}
	}
	return g
}

func validateSize(width, height int) error {
	if err := errors.ValidateMinInt("width", width, 1); err != nil {
		return err
	}
	return errors.ValidateMinInt("height", height, 1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
