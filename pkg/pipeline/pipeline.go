// Package pipeline provides the board pipeline for hexboard.
//
// This package implements the complete generate → layout → render pipeline
// used by the CLI. By centralizing this logic, every command applies the same
// defaults and validation.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: Build a grid from a shape description or read a board file
//  2. Layout: Position the cells as hexagons on a padded canvas
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON, text)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Type:    "hex",
//	    Radius:  3,
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	g, err := runner.Generate(ctx, opts)
//	l, err := runner.ComputeLayout(ctx, g, opts)
//	artifacts, err := runner.Render(ctx, g, l, opts)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hexboard/pkg/board"
	"github.com/matzehuels/hexboard/pkg/errors"
	"github.com/matzehuels/hexboard/pkg/hex"
	"github.com/matzehuels/hexboard/pkg/layout"
	"github.com/matzehuels/hexboard/pkg/render/sink"
	"github.com/matzehuels/hexboard/pkg/render/styles"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI and Config Files
// =============================================================================

const (
	// DefaultType is the default board shape.
	DefaultType = string(board.KindHexagonal)

	// DefaultRadius is the default radius of hexagonal boards.
	DefaultRadius = 2

	// DefaultSize is the default edge length of triangular boards.
	DefaultSize = 7

	// DefaultWidth is the default width of rhomboidal and rectangular boards.
	DefaultWidth = 5

	// DefaultHeight is the default height of rhomboidal and rectangular boards.
	DefaultHeight = 5

	// DefaultEdge is the default hexagon edge length in pixels.
	DefaultEdge = layout.DefaultEdge

	// DefaultScale is the default PNG scale factor.
	DefaultScale = sink.DefaultPNGScale
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatText = "txt"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatText: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the board pipeline.
// This struct supports JSON serialization.
//
// A zero Radius is a valid single-cell board, so Radius is never defaulted;
// callers that want [DefaultRadius] set it themselves. A zero Size, Width,
// Height, Edge or Scale selects the default; callers taking user input must
// reject explicit zeros before building Options.
type Options struct {
	// Generate options
	Type        string `json:"type"`
	Radius      int    `json:"radius,omitempty"`
	Size        int    `json:"size,omitempty"`
	Mirrored    bool   `json:"mirrored,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Input       string `json:"input,omitempty"` // Board file; overrides the shape
	Orientation string `json:"orientation,omitempty"`

	// Layout options
	Edge    float64  `json:"edge,omitempty"`
	Spacing float64  `json:"spacing,omitempty"`
	Padding *float64 `json:"padding,omitempty"` // nil means the edge length
	All     bool     `json:"all,omitempty"`     // Keep absent cells

	// Render options
	Formats []string                  `json:"formats,omitempty"`
	Fills   map[int]styles.FieldStyle `json:"fills,omitempty"`
	CSS     string                    `json:"css,omitempty"`
	Scale   float64                   `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger   `json:"-"`
	Style  *styles.Style `json:"-"` // Base style; nil means styles.Default()
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Grid is the generated or imported board.
	Grid board.Grid

	// Layout is the positioned board.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Cells        int
	Hexagons     int
	GenerateTime time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, txt)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// NeedsLayout reports whether any of formats is drawn from a layout. The
// text format is written straight from the grid.
func NeedsLayout(formats []string) bool {
	for _, f := range formats {
		if f != FormatText {
			return true
		}
	}
	return false
}

// ParseFormats splits a comma-separated format list, trimming blanks and
// dropping duplicates while keeping the order.
func ParseFormats(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all stages and applies defaults for the full
// pipeline.
func (o *Options) ValidateAndSetDefaults() error {
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// SetGenerateDefaults sets default values for board generation.
func (o *Options) SetGenerateDefaults() {
	if o.Type == "" {
		o.Type = DefaultType
	}
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	o.setLogger()
}

// ValidateForGenerate validates and sets defaults for board generation.
// The shape parameters themselves are checked by the generators.
func (o *Options) ValidateForGenerate() error {
	o.SetGenerateDefaults()
	if o.Input != "" {
		_, err := o.orientation()
		return err
	}
	_, err := o.Shape()
	return err
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Edge == 0 {
		o.Edge = DefaultEdge
	}
	o.setLogger()
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if _, err := o.orientation(); err != nil {
		return err
	}
	if err := errors.ValidatePositive("edge", o.Edge); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("spacing", o.Spacing); err != nil {
		return err
	}
	if o.Padding != nil {
		return errors.ValidateNonNegative("padding", *o.Padding)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidatePositive("scale", o.Scale); err != nil {
		return err
	}
	for t := range o.Fills {
		if err := errors.ValidateFieldType(t); err != nil {
			return err
		}
	}
	return nil
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Shape returns the board shape described by the options.
func (o *Options) Shape() (board.Shape, error) {
	kind, err := board.ParseKind(o.Type)
	if err != nil {
		return board.Shape{}, err
	}
	orient, err := o.orientation()
	if err != nil {
		return board.Shape{}, err
	}
	return board.Shape{
		Kind:        kind,
		Radius:      o.Radius,
		Edge:        o.Size,
		Mirrored:    o.Mirrored,
		Width:       o.Width,
		Height:      o.Height,
		Orientation: orient,
	}, nil
}

func (o *Options) orientation() (hex.Orientation, error) {
	orient, err := hex.ParseOrientation(o.Orientation)
	if err != nil {
		return orient, errors.Wrap(errors.ErrCodeInvalidInput, err, "orientation")
	}
	return orient, nil
}

// LayoutOptions converts the layout settings into [layout.Option] values.
func (o *Options) LayoutOptions() ([]layout.Option, error) {
	orient, err := o.orientation()
	if err != nil {
		return nil, err
	}
	opts := []layout.Option{
		layout.WithEdge(o.Edge),
		layout.WithSpacing(o.Spacing),
		layout.WithOrientation(orient),
		layout.WithTrim(!o.All),
	}
	if o.Padding != nil {
		opts = append(opts, layout.WithPadding(*o.Padding))
	}
	return opts, nil
}

// EffectiveStyle returns the base style with the fill overrides and custom
// CSS applied.
func (o *Options) EffectiveStyle() styles.Style {
	base := styles.Default()
	if o.Style != nil {
		base = *o.Style
	}
	s := base.Merge(o.Fills)
	if css := strings.TrimSpace(o.CSS); css != "" {
		if s.CSS != "" {
			s.CSS += "\n"
		}
		s.CSS += css
	}
	return s
}
