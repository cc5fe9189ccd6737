package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hexboard/pkg/board"
	"github.com/matzehuels/hexboard/pkg/layout"
	"github.com/matzehuels/hexboard/pkg/observability"
)

// Runner encapsulates pipeline execution with logging and observability
// hooks.
//
// The Runner is stateless except for the logger; it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete generate → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Generate
	start := time.Now()
	g, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Grid = g
	result.Stats.Cells = g.Count()
	result.Stats.GenerateTime = time.Since(start)

	r.Logger.Info("generated board",
		"source", Source(opts),
		"cells", result.Stats.Cells,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Layout, skipped when only the text grid is requested
	var l layout.Layout
	if NeedsLayout(opts.Formats) {
		start = time.Now()
		l, err = r.ComputeLayout(ctx, g, opts)
		if err != nil {
			return nil, err
		}
		result.Layout = l
		result.Stats.Hexagons = len(l.Hexagons)
		result.Stats.LayoutTime = time.Since(start)

		r.Logger.Info("computed layout",
			"hexagons", result.Stats.Hexagons,
			"width", l.Width,
			"height", l.Height,
			"duration", result.Stats.LayoutTime)
	}

	// Stage 3: Render
	start = time.Now()
	artifacts, err := r.Render(ctx, g, l, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate builds or imports the board, reporting to the pipeline hooks.
func (r *Runner) Generate(ctx context.Context, opts Options) (board.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, err
	}

	src := Source(opts)
	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, src)
	start := time.Now()

	g, err := Generate(ctx, opts)
	hooks.OnGenerateComplete(ctx, src, g.Count(), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("board grid", "width", g.Width(), "height", g.Height(), "field_types", g.FieldTypes())
	return g, nil
}

// ComputeLayout positions the board, reporting to the pipeline hooks.
func (r *Runner) ComputeLayout(ctx context.Context, g board.Grid, opts Options) (layout.Layout, error) {
	if err := ctx.Err(); err != nil {
		return layout.Layout{}, err
	}
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, g.Count())
	start := time.Now()

	l, err := ComputeLayout(g, opts)
	hooks.OnLayoutComplete(ctx, len(l.Hexagons), time.Since(start), err)
	if err != nil {
		return layout.Layout{}, err
	}
	opts.Logger.Debug("layout geometry",
		"edge", l.Edge,
		"spacing", l.Spacing,
		"padding", l.Padding,
		"orientation", l.Orientation)
	return l, nil
}

// Render generates the artifacts, reporting to the pipeline hooks.
func (r *Runner) Render(ctx context.Context, g board.Grid, l layout.Layout, opts Options) (map[string][]byte, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := Render(ctx, g, l, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
