package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/hexboard/pkg/board"
	"github.com/matzehuels/hexboard/pkg/errors"
	"github.com/matzehuels/hexboard/pkg/hex"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestBuildSingleCell(t *testing.T) {
	tests := []struct {
		name          string
		orientation   hex.Orientation
		width, height float64
	}{
		{"pointy", hex.PointyTop, 10 * math.Sqrt(3), 20},
		{"flat", hex.FlatTop, 20, 10 * math.Sqrt(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Build(board.Grid{{1}}, WithEdge(10), WithPadding(0), WithOrientation(tt.orientation))
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if !approx(l.Width, tt.width) || !approx(l.Height, tt.height) {
				t.Errorf("canvas = %vx%v, want %vx%v", l.Width, l.Height, tt.width, tt.height)
			}
			if len(l.Hexagons) != 1 {
				t.Fatalf("got %d hexagons, want 1", len(l.Hexagons))
			}
			c := l.Hexagons[0].Center
			if !approx(c.X, l.Width/2) || !approx(c.Y, l.Height/2) {
				t.Errorf("center = %v, want canvas middle", c)
			}
		})
	}
}

func TestBuildDefaults(t *testing.T) {
	l, err := Build(board.Grid{{1}})
	if err != nil {
		t.Fatal(err)
	}
	if l.Edge != DefaultEdge || l.Spacing != DefaultSpacing {
		t.Errorf("edge/spacing = %v/%v, want %v/%v", l.Edge, l.Spacing, DefaultEdge, DefaultSpacing)
	}
	if l.Padding != DefaultEdge {
		t.Errorf("padding = %v, want edge length %v", l.Padding, DefaultEdge)
	}
	if l.Orientation != hex.PointyTop {
		t.Errorf("orientation = %v, want pointy", l.Orientation)
	}
	if !approx(l.Height, 4*DefaultEdge) {
		t.Errorf("height = %v, want %v", l.Height, 4*DefaultEdge)
	}
}

func TestBuildVerticesInsidePadding(t *testing.T) {
	g, _ := board.Hexagonal(3)
	for _, o := range []hex.Orientation{hex.PointyTop, hex.FlatTop} {
		l, err := Build(g, WithEdge(12), WithSpacing(3), WithPadding(7), WithOrientation(o))
		if err != nil {
			t.Fatal(err)
		}
		inner := Box{MinX: l.Padding, MinY: l.Padding, MaxX: l.Width - l.Padding, MaxY: l.Height - l.Padding}
		var touchLeft, touchTop bool
		for _, h := range l.Hexagons {
			for _, v := range h.Vertices {
				if v.X < inner.MinX-eps || v.X > inner.MaxX+eps || v.Y < inner.MinY-eps || v.Y > inner.MaxY+eps {
					t.Fatalf("%v: vertex %v outside %+v", o, v, inner)
				}
				touchLeft = touchLeft || approx(v.X, l.Padding)
				touchTop = touchTop || approx(v.Y, l.Padding)
			}
		}
		if !touchLeft || !touchTop {
			t.Errorf("%v: drawing does not start at the padding", o)
		}
	}
}

func TestBuildTrimsAbsentCells(t *testing.T) {
	g, _ := board.Hexagonal(2)

	trimmed, err := Build(g)
	if err != nil {
		t.Fatal(err)
	}
	if len(trimmed.Hexagons) != g.Count() {
		t.Errorf("trimmed layout has %d hexagons, want %d", len(trimmed.Hexagons), g.Count())
	}
	for _, h := range trimmed.Hexagons {
		if h.Absent() {
			t.Fatalf("trimmed layout contains absent cell (%d,%d)", h.Col, h.Row)
		}
	}

	full, err := Build(g, WithTrim(false))
	if err != nil {
		t.Fatal(err)
	}
	if want := g.Width() * g.Height(); len(full.Hexagons) != want {
		t.Errorf("untrimmed layout has %d hexagons, want %d", len(full.Hexagons), want)
	}
	if full.Width <= trimmed.Width {
		t.Errorf("untrimmed width %v should exceed trimmed width %v", full.Width, trimmed.Width)
	}
}

func TestBuildPreservesFieldTypes(t *testing.T) {
	g := board.Grid{{1, 2}, {0, 3}}
	l, err := Build(g)
	if err != nil {
		t.Fatal(err)
	}
	for _, h := range l.Hexagons {
		if g.At(h.Col, h.Row) != h.FieldType {
			t.Errorf("hexagon (%d,%d) field type %d, want %d", h.Col, h.Row, h.FieldType, g.At(h.Col, h.Row))
		}
	}
}

func TestBuildNeighborDistance(t *testing.T) {
	const edge, spacing = 20.0, 4.0
	l, err := Build(board.Grid{{1}, {1}}, WithEdge(edge), WithSpacing(spacing))
	if err != nil {
		t.Fatal(err)
	}
	d := l.Hexagons[0].Center.Dist(l.Hexagons[1].Center)
	if want := hex.Spacing(edge, spacing); !approx(d, want) {
		t.Errorf("neighbor distance = %v, want %v", d, want)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		grid board.Grid
		opts []Option
		code errors.Code
	}{
		{"nil grid", nil, nil, errors.ErrCodeEmptyBoard},
		{"all absent", board.Grid{{0, 0}, {0}}, nil, errors.ErrCodeEmptyBoard},
		{"zero edge", board.Grid{{1}}, []Option{WithEdge(0)}, errors.ErrCodeInvalidInput},
		{"negative spacing", board.Grid{{1}}, []Option{WithSpacing(-1)}, errors.ErrCodeInvalidInput},
		{"negative padding", board.Grid{{1}}, []Option{WithPadding(-5)}, errors.ErrCodeInvalidInput},
		{"nan edge", board.Grid{{1}}, []Option{WithEdge(math.NaN())}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.grid, tt.opts...)
			if !errors.Is(err, tt.code) {
				t.Errorf("Build error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestAbsentOnlyBoardRendersUntrimmed(t *testing.T) {
	l, err := Build(board.Grid{{0, 0}}, WithTrim(false))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(l.Hexagons) != 2 {
		t.Errorf("got %d hexagons, want 2", len(l.Hexagons))
	}
}

func TestBoundingBox(t *testing.T) {
	if _, err := BoundingBox(nil); !errors.Is(err, errors.ErrCodeEmptyBoard) {
		t.Errorf("BoundingBox(nil) error = %v, want %s", err, errors.ErrCodeEmptyBoard)
	}

	hexes, err := Hexagons(board.Grid{{1}}, WithEdge(10))
	if err != nil {
		t.Fatal(err)
	}
	b, err := BoundingBox(hexes)
	if err != nil {
		t.Fatal(err)
	}
	half := 5 * math.Sqrt(3)
	want := Box{MinX: -half, MinY: -10, MaxX: half, MaxY: 10}
	if !approx(b.MinX, want.MinX) || !approx(b.MinY, want.MinY) ||
		!approx(b.MaxX, want.MaxX) || !approx(b.MaxY, want.MaxY) {
		t.Errorf("BoundingBox = %+v, want %+v", b, want)
	}
}

func TestTranslateReturnsCopy(t *testing.T) {
	hexes, _ := Hexagons(board.Grid{{1, 1}})
	orig := hexes[0]

	moved := Translate(hexes, 3, -4)
	if hexes[0] != orig {
		t.Error("Translate modified its input")
	}
	for i := range moved {
		if !approx(moved[i].Center.X, hexes[i].Center.X+3) || !approx(moved[i].Center.Y, hexes[i].Center.Y-4) {
			t.Errorf("hexagon %d center = %v, want %v shifted by (3,-4)", i, moved[i].Center, hexes[i].Center)
		}
		for j, v := range moved[i].Vertices {
			if !approx(v.X, hexes[i].Vertices[j].X+3) || !approx(v.Y, hexes[i].Vertices[j].Y-4) {
				t.Errorf("hexagon %d vertex %d not translated", i, j)
			}
		}
	}
}
