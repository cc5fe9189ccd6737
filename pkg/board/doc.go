// Package board generates hexagonal game boards as integer grids.
//
// # Grid Convention
//
// A [Grid] is indexed [column][row]: g[x][y] is the cell at axial coordinate
// (x, y). Zero marks an absent cell; positive values are present cells whose
// value is the field type used for styling. The text format in package io is
// row-major, so files read the way the board looks on screen.
//
// # Shapes
//
//   - [Hexagonal]: all cells within a radius of the center
//   - [Triangular]: an equilateral triangle, optionally mirrored
//   - [Rhomboidal]: a full parallelogram (the natural axial shape)
//   - [Rectangular]: a staggered board that projects to a true rectangle
//
// [Generate] dispatches on a [Shape] description, which is what the pipeline
// and CLI use.
//
// # Validation
//
// Degenerate parameters are rejected with an INVALID_SHAPE error rather than
// producing an empty board: radius must be >= 0, every other size >= 1.
package board
