package board

import (
	"fmt"
	"slices"
	"strings"
)

// Absent is the cell value of a position that holds no hexagon.
const Absent = 0

// Grid is a board of cells indexed [column][row], i.e. g[x][y].
//
// A value of 0 marks an absent cell; any positive value is a present cell and
// doubles as its field type for styling. Columns may have different lengths
// until the grid is padded; missing cells read as 0.
type Grid [][]int

// New returns a width × height grid with every cell set to 0.
func New(width, height int) Grid {
	g := make(Grid, width)
	for x := range g {
		g[x] = make([]int, height)
	}
	return g
}

// Width returns the number of columns.
func (g Grid) Width() int { return len(g) }

// Height returns the length of the longest column.
func (g Grid) Height() int {
	h := 0
	for _, col := range g {
		h = max(h, len(col))
	}
	return h
}

// At returns the value at (x, y), or 0 if the position lies outside the grid.
func (g Grid) At(x, y int) int {
	if x < 0 || x >= len(g) || y < 0 || y >= len(g[x]) {
		return Absent
	}
	return g[x][y]
}

// Count returns the number of present (non-zero) cells.
func (g Grid) Count() int {
	n := 0
	for _, col := range g {
		for _, v := range col {
			if v != Absent {
				n++
			}
		}
	}
	return n
}

// IsRectangular reports whether every column has the same length.
func (g Grid) IsRectangular() bool {
	h := g.Height()
	for _, col := range g {
		if len(col) != h {
			return false
		}
	}
	return true
}

// Pad returns a copy of g in which every column is right-padded with 0 up to
// the length of the longest column. g itself is left untouched.
func (g Grid) Pad() Grid {
	h := g.Height()
	out := make(Grid, len(g))
	for x, col := range g {
		out[x] = make([]int, h)
		copy(out[x], col)
	}
	return out
}

// Transpose returns the padded grid with columns and rows swapped, so that
// Transpose()[y][x] == At(x, y).
func (g Grid) Transpose() Grid {
	out := New(g.Height(), g.Width())
	for x, col := range g {
		for y, v := range col {
			out[y][x] = v
		}
	}
	return out
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for x, col := range g {
		out[x] = append([]int(nil), col...)
	}
	return out
}

// Equal reports whether g and other have identical columns.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for x := range g {
		if len(g[x]) != len(other[x]) {
			return false
		}
		for y := range g[x] {
			if g[x][y] != other[x][y] {
				return false
			}
		}
	}
	return true
}

// FieldTypes returns the distinct non-zero values of g in ascending order.
func (g Grid) FieldTypes() []int {
	seen := make(map[int]bool)
	for _, col := range g {
		for _, v := range col {
			if v != Absent {
				seen[v] = true
			}
		}
	}
	types := make([]int, 0, len(seen))
	for v := range seen {
		types = append(types, v)
	}
	slices.Sort(types)
	return types
}

// String renders the grid row by row, which is how it reads on screen and in
// text files.
func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g.Transpose() {
		for i, v := range row {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
