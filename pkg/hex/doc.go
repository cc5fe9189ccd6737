// Package hex provides the plane geometry of hexagonal grids.
//
// # Overview
//
// Board cells are addressed by integer axial coordinates (x, y). This package
// turns those coordinates into continuous pixel-space positions and computes
// the six corners of the hexagon drawn at each position:
//
//   - [AxesFor]: the two unit axes, 60° apart, for an [Orientation]
//   - [Project]: maps a grid coordinate onto the plane
//   - [Spacing]: center-to-center distance for a given edge length and gap
//   - [Vertices]: the six corners of one hexagon
//
// # Orientation
//
// [PointyTop] hexagons have a vertex pointing up and rows that run along the
// X axis. [FlatTop] hexagons are rotated by 30° and stack in columns along
// the Y axis.
//
// # Coordinate System
//
// Screen coordinates are used throughout: the origin is at the top-left, X
// increases to the right and Y increases downwards. Axis angles are measured
// from the positive X axis towards the positive Y axis. Vertex angles use the
// (sin, cos) convention so that a pointy-top hexagon has a vertex on the
// vertical line through its center; the two conventions agree, which lets
// projected centers feed [Vertices] directly.
//
// # Example
//
//	axes := hex.AxesFor(hex.PointyTop)
//	center := hex.Project(2, 1, axes, hex.Spacing(50, 0))
//	corners := hex.Vertices(center, 50, hex.PointyTop)
package hex
