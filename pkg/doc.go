// Package pkg provides the core libraries for hexboard.
//
// # Overview
//
// Hexboard generates hexagonal game boards and draws them. A board is an
// integer grid in axial coordinates; each value is the field type of a cell,
// with 0 marking an absent cell. The pkg directory is organized into these
// areas:
//
//  1. [board] - Shape generators and the [board.Grid] type
//  2. [hex] - Axial projection and hexagon vertex geometry
//  3. [io] - The plain text grid file format
//  4. [layout] - Positioning cells as hexagons on a padded canvas
//  5. [render] - SVG, PNG, PDF and JSON sinks plus field styles
//  6. [pipeline] - Orchestration (generate → layout → render)
//  7. [config] - TOML and YAML board config files
//
// # Architecture
//
// The typical data flow through hexboard:
//
//	Shape parameters or text grid file
//	         ↓
//	    [board] / [io] package (grid)
//	         ↓
//	    [layout] package (hexagons, canvas size)
//	         ↓
//	    [render/sink] package (SVG/PNG/PDF/JSON)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/hexboard/pkg/board"
//	    "github.com/matzehuels/hexboard/pkg/layout"
//	    "github.com/matzehuels/hexboard/pkg/render/sink"
//	)
//
//	g, _ := board.Hexagonal(3)
//	l, _ := layout.Build(g, layout.WithEdge(30))
//	svg := sink.RenderSVG(l)
//
// The [pipeline] package wraps these steps with defaults, validation,
// logging and observability hooks, and is what the CLI uses.
package pkg
