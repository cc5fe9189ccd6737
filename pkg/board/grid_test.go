package board

import "testing"

func TestGridDimensions(t *testing.T) {
	g := Grid{{0, 1, 2}, {3, 4}, {6, 7, 8}, {9}}
	if g.Width() != 4 {
		t.Errorf("Width() = %d, want 4", g.Width())
	}
	if g.Height() != 3 {
		t.Errorf("Height() = %d, want 3", g.Height())
	}
	if g.IsRectangular() {
		t.Error("IsRectangular() = true for jagged grid")
	}
	if g.Count() != 8 {
		t.Errorf("Count() = %d, want 8", g.Count())
	}
}

func TestGridAt(t *testing.T) {
	g := Grid{{1, 2}, {3}}
	tests := []struct {
		x, y, want int
	}{
		{0, 0, 1},
		{0, 1, 2},
		{1, 0, 3},
		{1, 1, 0}, // short column
		{2, 0, 0}, // out of range
		{-1, 0, 0},
		{0, -1, 0},
	}
	for _, tt := range tests {
		if got := g.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGridPadDoesNotMutate(t *testing.T) {
	g := Grid{{0, 1, 2}, {3, 4}, {6, 7, 8}, {9}}
	padded := g.Pad()

	want := Grid{{0, 1, 2}, {3, 4, 0}, {6, 7, 8}, {9, 0, 0}}
	if !padded.Equal(want) {
		t.Errorf("Pad() = %v, want %v", padded, want)
	}
	if len(g[1]) != 2 || len(g[3]) != 1 {
		t.Error("Pad() modified the receiver")
	}
}

func TestGridTranspose(t *testing.T) {
	g := Grid{{1, 2, 3}, {4, 5, 6}}
	want := Grid{{1, 4}, {2, 5}, {3, 6}}
	if got := g.Transpose(); !got.Equal(want) {
		t.Errorf("Transpose() = %v, want %v", got, want)
	}
	if got := g.Transpose().Transpose(); !got.Equal(g) {
		t.Errorf("double Transpose() = %v, want %v", got, g)
	}
}

func TestGridClone(t *testing.T) {
	g := Grid{{1, 2}, {3, 4}}
	c := g.Clone()
	c[0][0] = 9
	if g[0][0] != 1 {
		t.Error("Clone() shares storage with the original")
	}
	if Grid(nil).Clone() != nil {
		t.Error("Clone() of nil grid should be nil")
	}
}

func TestGridEqual(t *testing.T) {
	a := Grid{{1, 0}, {2, 3}}
	if !a.Equal(Grid{{1, 0}, {2, 3}}) {
		t.Error("identical grids reported unequal")
	}
	if a.Equal(Grid{{1, 0}, {2}}) {
		t.Error("grids with different column lengths reported equal")
	}
	if a.Equal(Grid{{1, 0}}) {
		t.Error("grids with different widths reported equal")
	}
	if a.Equal(Grid{{1, 0}, {2, 4}}) {
		t.Error("grids with different values reported equal")
	}
}

func TestGridFieldTypes(t *testing.T) {
	g := Grid{{0, 3, 1}, {1, 0, 2}}
	got := g.FieldTypes()
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("FieldTypes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FieldTypes() = %v, want %v", got, want)
		}
	}
}

func TestGridString(t *testing.T) {
	g := Grid{{0, 1, 2}, {3, 4}, {6, 7, 8}, {9}}
	want := "0 3 6 9\n1 4 7 0\n2 0 8 0\n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
