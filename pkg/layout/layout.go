package layout

import (
	"math"

	"github.com/matzehuels/hexboard/pkg/board"
	"github.com/matzehuels/hexboard/pkg/errors"
	"github.com/matzehuels/hexboard/pkg/hex"
)

// Defaults used by [Build] when no option overrides them.
const (
	DefaultEdge    = 50.0
	DefaultSpacing = 0.0
)

// Layout is a board positioned on a padded canvas.
//
// Every vertex of every hexagon lies within [Padding, Width-Padding] ×
// [Padding, Height-Padding].
type Layout struct {
	Hexagons    []Hexagon
	Width       float64
	Height      float64
	Padding     float64
	Edge        float64
	Spacing     float64
	Orientation hex.Orientation
	// Box is the bounding box of the hexagons before translation.
	Box Box
}

// Option configures [Build].
type Option func(*config)

type config struct {
	edge        float64
	spacing     float64
	padding     float64
	paddingSet  bool
	orientation hex.Orientation
	keepAbsent  bool
}

// WithEdge sets the hexagon edge length in pixels (default 50).
func WithEdge(e float64) Option { return func(c *config) { c.edge = e } }

// WithSpacing sets the gap in pixels between neighboring hexagons (default 0).
func WithSpacing(s float64) Option { return func(c *config) { c.spacing = s } }

// WithPadding sets the canvas padding in pixels. The default equals the edge
// length.
func WithPadding(p float64) Option {
	return func(c *config) { c.padding = p; c.paddingSet = true }
}

// WithOrientation selects pointy-top (default) or flat-top hexagons.
func WithOrientation(o hex.Orientation) Option { return func(c *config) { c.orientation = o } }

// WithTrim controls whether absent (0) cells are dropped (the default) or
// kept as hexagons of field type 0. Kept cells take part in the bounding box.
func WithTrim(trim bool) Option { return func(c *config) { c.keepAbsent = !trim } }

func newConfig(opts []Option) (config, error) {
	c := config{edge: DefaultEdge, spacing: DefaultSpacing}
	for _, opt := range opts {
		opt(&c)
	}
	if !c.paddingSet {
		c.padding = c.edge
	}
	if err := errors.ValidatePositive("edge", c.edge); err != nil {
		return c, err
	}
	if err := errors.ValidateNonNegative("spacing", c.spacing); err != nil {
		return c, err
	}
	if err := errors.ValidateNonNegative("padding", c.padding); err != nil {
		return c, err
	}
	return c, nil
}

// Build lays out g on a canvas.
//
// It converts the grid into hexagons, computes their bounding box, and
// translates them by (padding - minX, padding - minY) so the drawing sits
// inside a uniform padding. The canvas measures (2*padding + box width) ×
// (2*padding + box height).
//
// Build returns an EMPTY_BOARD error when no hexagon remains after trimming,
// and an INVALID_INPUT error for non-positive edges or negative spacing or
// padding.
func Build(g board.Grid, opts ...Option) (Layout, error) {
	c, err := newConfig(opts)
	if err != nil {
		return Layout{}, err
	}

	hexes := hexagons(g, c)
	box, err := BoundingBox(hexes)
	if err != nil {
		return Layout{}, err
	}

	return Layout{
		Hexagons:    Translate(hexes, c.padding-box.MinX, c.padding-box.MinY),
		Width:       2*c.padding + box.Width(),
		Height:      2*c.padding + box.Height(),
		Padding:     c.padding,
		Edge:        c.edge,
		Spacing:     c.spacing,
		Orientation: c.orientation,
		Box:         box,
	}, nil
}

// Hexagons converts g into untranslated hexagons, one per cell, in column
// then row order. Cells whose value is 0 are skipped unless WithTrim(false)
// is given. Only the edge, spacing, orientation and trim options matter here.
func Hexagons(g board.Grid, opts ...Option) ([]Hexagon, error) {
	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return hexagons(g, c), nil
}

func hexagons(g board.Grid, c config) []Hexagon {
	axes := hex.AxesFor(c.orientation)
	scale := hex.Spacing(c.edge, c.spacing)

	out := make([]Hexagon, 0, g.Count())
	for x, col := range g {
		for y, v := range col {
			if v == board.Absent && !c.keepAbsent {
				continue
			}
			center := hex.Project(x, y, axes, scale)
			out = append(out, Hexagon{
				Vertices:  hex.Vertices(center, c.edge, c.orientation),
				Center:    center,
				FieldType: v,
				Col:       x,
				Row:       y,
			})
		}
	}
	return out
}

// BoundingBox returns the smallest box enclosing every vertex of hexes.
// An empty slice has no bounding box and yields an EMPTY_BOARD error.
func BoundingBox(hexes []Hexagon) (Box, error) {
	if len(hexes) == 0 {
		return Box{}, errors.New(errors.ErrCodeEmptyBoard, "board has no cells to draw")
	}
	b := Box{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, h := range hexes {
		for _, v := range h.Vertices {
			b.MinX = math.Min(b.MinX, v.X)
			b.MinY = math.Min(b.MinY, v.Y)
			b.MaxX = math.Max(b.MaxX, v.X)
			b.MaxY = math.Max(b.MaxY, v.Y)
		}
	}
	return b, nil
}

// Translate returns new hexagons moved by (dx, dy). hexes is not modified.
func Translate(hexes []Hexagon, dx, dy float64) []Hexagon {
	out := make([]Hexagon, len(hexes))
	for i, h := range hexes {
		out[i] = h.Translate(dx, dy)
	}
	return out
}
