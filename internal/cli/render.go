package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hexboard/pkg/errors"
	"github.com/matzehuels/hexboard/pkg/pipeline"
)

// renderFlags holds the command-line flags of the render command on top of
// the shared board flags.
type renderFlags struct {
	boardFlags
	output  string  // output file (single format) or base path (multiple)
	formats string  // comma-separated output formats
	edge    float64 // hexagon edge length in pixels
	spacing float64 // gap between neighboring hexagons
	padding float64 // canvas margin, defaults to the edge length
	css     string  // extra CSS appended to the SVG stylesheet
	scale   float64 // PNG scale factor
	export  bool    // write the text grid instead of an image
}

// renderCommand creates the render command for drawing boards.
// It supports multiple output formats (SVG, PNG, PDF, JSON) in one run.
//
// Default settings:
//   - format: svg
//   - edge: 50px, spacing: 0, padding: the edge length
//   - output: board.<format>
func (c *CLI) renderCommand() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw a board as SVG, PNG, PDF or JSON",
		Long: `Draw a hexagonal board.

The board is either generated from a shape (--type and its size flags) or
read from a text grid file (--input). Several formats can be written at once;
each file then shares the --output base path.`,
		Example: `  hexboard render -t hex -R 3
  hexboard render -t rect -W 8 -H 6 --flat-top -f svg,png -o out/board
  hexboard render -i board.txt --fill 2=tomato --fill 3=#264653
  hexboard render -c board.toml -o - | less`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, output, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), cmd, opts, output)
		},
	}

	f.addShapeFlags(cmd)
	f.addStyleFlags(cmd)
	f.addRenderFlags(cmd)
	return cmd
}

// addRenderFlags registers the layout and output flags.
func (f *renderFlags) addRenderFlags(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple), - for stdout")
	fl.StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, txt (comma-separated)")
	fl.Float64VarP(&f.edge, "edge", "e", pipeline.DefaultEdge, "hexagon edge length in pixels")
	fl.Float64VarP(&f.spacing, "spacing", "s", 0, "gap between neighboring hexagons in pixels")
	fl.Float64VarP(&f.padding, "padding", "p", 0, "canvas margin in pixels (default: the edge length)")
	fl.StringVar(&f.css, "css", "", "extra CSS appended to the SVG stylesheet")
	fl.Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	fl.BoolVarP(&f.export, "export", "E", false, "write the board as a text grid (same as the export command)")

	f.set("format", func(o *pipeline.Options) error { o.Formats = pipeline.ParseFormats(f.formats); return nil })
	f.set("edge", func(o *pipeline.Options) error {
		if err := errors.ValidatePositive("edge", f.edge); err != nil {
			return err
		}
		o.Edge = f.edge
		return nil
	})
	f.set("spacing", func(o *pipeline.Options) error { o.Spacing = f.spacing; return nil })
	f.set("padding", func(o *pipeline.Options) error {
		if cmd.Flags().Changed("padding") {
			p := f.padding
			o.Padding = &p
		}
		return nil
	})
	f.set("css", func(o *pipeline.Options) error { o.CSS = f.css; return nil })
	f.set("scale", func(o *pipeline.Options) error {
		if err := errors.ValidatePositive("scale", f.scale); err != nil {
			return err
		}
		o.Scale = f.scale
		return nil
	})
}

// resolve builds the pipeline options and the output path from the flags
// and the optional config file.
func (f *renderFlags) resolve(cmd *cobra.Command) (pipeline.Options, string, error) {
	opts, cfg, err := f.options(cmd)
	if err != nil {
		return opts, "", err
	}

	if f.export {
		if cmd.Flags().Changed("format") {
			printWarning(cmd.ErrOrStderr(), "--format is ignored with --export")
		}
		opts.Formats = []string{pipeline.FormatText}
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, "", err
	}

	output := f.output
	if !cmd.Flags().Changed("output") && cfg != nil && cfg.Render.Output != "" {
		output = configOutput(cfg.Render.Output, opts.Formats)
	}
	if output == stdoutPath && len(opts.Formats) > 1 {
		return opts, "", errors.New(errors.ErrCodeInvalidInput,
			"cannot write %d formats to stdout", len(opts.Formats))
	}
	return opts, output, nil
}

// runRender runs the pipeline and writes one file per requested format.
func runRender(ctx context.Context, cmd *cobra.Command, opts pipeline.Options, output string) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger
	logger.Infof("Rendering %s", pipeline.Source(opts))

	prog := newProgress(logger)
	result, err := newRunner(logger).Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", strings.Join(opts.Formats, ", ")))

	stdout := cmd.OutOrStdout()
	paths := make([]string, 0, len(opts.Formats))
	for _, format := range opts.Formats {
		path := outputPath(output, format, len(opts.Formats))
		if err := writeOutput(ctx, stdout, path, result.Artifacts[format]); err != nil {
			return err
		}
		paths = append(paths, path)
	}

	if output == stdoutPath {
		return nil
	}
	printSuccess(stdout, "Rendered %s", pipeline.Source(opts))
	if pipeline.NeedsLayout(opts.Formats) {
		printDetail(stdout, "%d cells · %d hexagons · %.0f×%.0f px",
			result.Stats.Cells, result.Stats.Hexagons, result.Layout.Width, result.Layout.Height)
	} else {
		printDetail(stdout, "%d×%d grid · %d cells", result.Grid.Width(), result.Grid.Height(), result.Stats.Cells)
	}
	for _, p := range paths {
		printFile(stdout, p)
	}
	return nil
}
