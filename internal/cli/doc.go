// Package cli wires the hexboard commands to the board pipeline.
//
// Every board command shares one set of shape flags (--type, --radius,
// --size, --width, --height, --mirrored, --input, --flat-top) and an optional
// --config file. Values come from the flag defaults first, then the config
// file, then whatever was typed on the command line.
//
//	hexboard render -t rect -W 8 -H 6 -f svg,png -o out/board
//	hexboard export -t tri -S 5 -o -
//	hexboard preview -i board.txt --fill 2=tomato
//
// Status lines go to the command's stdout through lipgloss; log records go
// to the logger given to [New], which -v switches to debug level. Writing an
// artifact to "-" suppresses the status lines so the output can be piped.
package cli
