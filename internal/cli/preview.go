package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hexboard/pkg/board"
	"github.com/matzehuels/hexboard/pkg/hex"
	"github.com/matzehuels/hexboard/pkg/pipeline"
	"github.com/matzehuels/hexboard/pkg/render/styles"
)

// previewCommand creates the preview command for printing boards to the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var f boardFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print a colored board preview to the terminal",
		Long: `Print a colored board preview to the terminal.

Every present cell is drawn as a hexagon glyph in the fill color of its field
type, followed by a legend counting the cells of each type.`,
		Example: `  hexboard preview -t hex -R 3
  hexboard preview -i board.txt --fill 2=tomato --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := f.options(cmd)
			if err != nil {
				return err
			}
			return runPreview(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	f.addShapeFlags(cmd)
	f.addStyleFlags(cmd)
	return cmd
}

// runPreview generates the board and prints it with a legend.
func runPreview(ctx context.Context, w io.Writer, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	g, err := newRunner(logger).Generate(ctx, opts)
	if err != nil {
		return err
	}
	if err := opts.ValidateForRender(); err != nil {
		return err
	}
	orient, err := hex.ParseOrientation(opts.Orientation)
	if err != nil {
		return err
	}

	palette := newPalette(opts.EffectiveStyle())

	fmt.Fprintln(w, StyleTitle.Render(pipeline.Source(opts)))
	fmt.Fprintln(w)
	for _, line := range previewLines(g, orient, opts.All, palette) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)

	counts := make(map[int]int)
	for x := range g {
		for _, t := range g[x] {
			counts[t]++
		}
	}
	for _, t := range g.FieldTypes() {
		printKeyValue(w, fmt.Sprintf("%s type %d", palette.glyph(t), t), fmt.Sprintf("%d cells", counts[t]))
	}
	return nil
}

// palette maps field types to terminal colors.
type palette struct {
	style  styles.Style
	colors map[int]lipgloss.Style
}

func newPalette(s styles.Style) *palette {
	return &palette{style: s, colors: make(map[int]lipgloss.Style)}
}

// glyph returns the colored cell glyph for a field type. Absent cells are a
// dim dot; a field without a visible fill falls back to its stroke color.
func (p *palette) glyph(t int) string {
	if t == 0 {
		return StyleDim.Render(iconAbsent)
	}
	st, ok := p.colors[t]
	if !ok {
		st = lipgloss.NewStyle()
		fs := p.style.For(t)
		for _, name := range []string{fs.Fill, fs.Stroke} {
			c, err := styles.ParseColor(name)
			if err != nil || c.A == 0 {
				continue
			}
			st = st.Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
			break
		}
		p.colors[t] = st
	}
	return st.Render(iconCell)
}

// previewLines lays the grid out on a character raster. Pointy-top rows are
// shifted by half a cell per row; flat-top columns by half a line per column.
func previewLines(g board.Grid, o hex.Orientation, all bool, p *palette) []string {
	type cell struct{ line, col, t int }
	var cells []cell
	for x := range g {
		for y, t := range g[x] {
			if t == 0 && !all {
				continue
			}
			c := cell{line: y, col: 2*x + y, t: t}
			if o == hex.FlatTop {
				c = cell{line: x + 2*y, col: 2 * x, t: t}
			}
			cells = append(cells, c)
		}
	}
	if len(cells) == 0 {
		return nil
	}

	minLine, maxLine := cells[0].line, cells[0].line
	minCol, maxCol := cells[0].col, cells[0].col
	for _, c := range cells[1:] {
		minLine, maxLine = min(minLine, c.line), max(maxLine, c.line)
		minCol, maxCol = min(minCol, c.col), max(maxCol, c.col)
	}

	raster := make([][]string, maxLine-minLine+1)
	for i := range raster {
		raster[i] = make([]string, maxCol-minCol+1)
	}
	for _, c := range cells {
		raster[c.line-minLine][c.col-minCol] = p.glyph(c.t)
	}

	out := make([]string, 0, len(raster))
	for _, row := range raster {
		var b strings.Builder
		for _, s := range row {
			if s == "" {
				s = " "
			}
			b.WriteString(s)
		}
		out = append(out, strings.TrimRight(b.String(), " "))
	}
	return out
}
