// Package layout positions board cells as hexagons on a padded canvas.
//
// # Overview
//
// [Build] is the entry point. It runs three steps over a [board.Grid]:
//
//  1. Every cell becomes a [Hexagon]: its center is projected with
//     [hex.Project] and its corners come from [hex.Vertices].
//  2. [BoundingBox] finds the extent of all vertices.
//  3. [Translate] shifts the hexagons so the drawing starts at (padding,
//     padding), and the canvas is sized to the box plus padding on each side.
//
// # Trimming
//
// Absent cells (value 0) are dropped before the bounding box is computed, so
// they reserve no space. WithTrim(false) keeps them as hexagons of field type
// 0, which renderers draw with the absent-cell style.
//
// # Example
//
//	g, _ := board.Hexagonal(2)
//	l, err := layout.Build(g,
//	    layout.WithEdge(30),
//	    layout.WithSpacing(2),
//	    layout.WithOrientation(hex.FlatTop),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(l.Width, l.Height, len(l.Hexagons))
//
// [board.Grid]: github.com/matzehuels/hexboard/pkg/board.Grid
// [hex.Project]: github.com/matzehuels/hexboard/pkg/hex.Project
// [hex.Vertices]: github.com/matzehuels/hexboard/pkg/hex.Vertices
package layout
