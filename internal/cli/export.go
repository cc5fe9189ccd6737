package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hexboard/pkg/board"
	"github.com/matzehuels/hexboard/pkg/errors"
	boardio "github.com/matzehuels/hexboard/pkg/io"
	"github.com/matzehuels/hexboard/pkg/observability"
	"github.com/matzehuels/hexboard/pkg/pipeline"
)

// exportCommand creates the export command for saving boards as text grids.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		f      boardFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Save a board as a text grid",
		Long: `Save a board as a text grid.

Each line of the file is one board row of space-separated field types, where
0 marks an absent cell. The file can be edited by hand and drawn again with
"hexboard render --input".`,
		Example: `  hexboard export -t tri -S 5 -o triangle.txt
  hexboard export -t rect -W 6 -H 4 -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cfg, err := f.options(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("output") && cfg != nil && cfg.Render.Output != "" {
				output = configOutput(cfg.Render.Output, []string{pipeline.FormatText})
			}
			return runExport(cmd.Context(), cmd, opts, output)
		},
	}

	f.addShapeFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default board.txt), - for stdout")
	return cmd
}

// runExport generates the board and writes it as a text grid.
func runExport(ctx context.Context, cmd *cobra.Command, opts pipeline.Options, output string) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	prog := newProgress(logger)
	g, err := newRunner(logger).Generate(ctx, opts)
	if err != nil {
		return err
	}

	path := outputPath(output, pipeline.FormatText, 1)
	stdout := cmd.OutOrStdout()
	if path == stdoutPath {
		return boardio.WriteText(g, stdout)
	}
	if err := exportFile(ctx, g, path); err != nil {
		return err
	}
	prog.done("Exported " + pipeline.Source(opts))

	printSuccess(stdout, "Exported %s", pipeline.Source(opts))
	printDetail(stdout, "%d×%d grid · %d cells", g.Width(), g.Height(), g.Count())
	printFile(stdout, path)
	return nil
}

// exportFile writes g to path, reporting the write to the file hooks.
func exportFile(ctx context.Context, g board.Grid, path string) error {
	if err := ensureDir(path); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	err := boardio.ExportText(g, path)
	size := 0
	if err == nil {
		size = fileSize(path)
	}
	observability.Files().OnFileWrite(ctx, path, size, err)
	return err
}
