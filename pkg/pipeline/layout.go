package pipeline

import (
	"github.com/matzehuels/hexboard/pkg/board"
	"github.com/matzehuels/hexboard/pkg/layout"
)

// ComputeLayout positions the cells of g according to the layout options.
func ComputeLayout(g board.Grid, opts Options) (layout.Layout, error) {
	layoutOpts, err := opts.LayoutOptions()
	if err != nil {
		return layout.Layout{}, err
	}
	return layout.Build(g, layoutOpts...)
}
