// Package io provides plain-text import and export for hexagonal boards.
//
// # Text Format
//
// A board file holds one line per grid row. Cells are non-negative integers
// separated by single spaces, and every line ends with a newline:
//
//	0 3 6 9
//	1 4 7 0
//	2 0 8 0
//
// There is no header and no dimension marker: the number of columns is the
// longest line, the number of rows is the line count. Short lines are padded
// with 0 when read.
//
// # Orientation
//
// In memory a [board.Grid] is indexed [column][row], while files are written
// row-major. [WriteText] therefore transposes on the way out and [ReadText]
// transposes on the way in.
//
// # Padding
//
// Both directions pad independently: [WriteText] pads short columns with 0
// before transposing, [ReadText] pads short lines with 0 before transposing
// back. A rectangular grid round-trips exactly; a jagged grid comes back as
// its zero-padded rectangle:
//
//	g := board.Grid{{0, 1, 2}, {3, 4}, {6, 7, 8}, {9}}
//	// written as "0 3 6 9\n1 4 7 0\n2 0 8 0\n"
//	// read back as {{0, 1, 2}, {3, 4, 0}, {6, 7, 8}, {9, 0, 0}}
//
// # Errors
//
// Malformed content (a token that is not a non-negative integer, or a file
// without any cell) fails with an INVALID_BOARD_FILE error naming the line.
// File system failures in [ImportText] and [ExportText] are returned as
// IO_FAILURE errors wrapping the OS error; nothing is retried.
package io
