// Package sink provides output format renderers for board layouts.
//
// # Overview
//
// A "sink" transforms a computed [layout.Layout] into a final output format:
//
//   - SVG: vector image with CSS classes per field type
//   - PNG: raster image drawn natively with gogpu/gg
//   - PDF: print-ready output (requires rsvg-convert)
//   - JSON: hexagon geometry for external tools
//
// # SVG Output
//
// [RenderSVG] writes a background rectangle of class "board" and one polygon
// per hexagon. Each polygon carries the classes "hex-field" and
// "hex-field-N" (N is the field type), a positional id and data-col/data-row
// attributes naming its grid cell:
//
//	svg := sink.RenderSVG(l, sink.WithStyle(styles.Default()))
//
// # PNG Output
//
// [RenderPNG] resolves each field type with [styles.Style.For] and fills the
// hexagon polygons directly, so no external tool is involved:
//
//	png, err := sink.RenderPNG(l, sink.WithScale(2))
//
// # PDF Output
//
// [RenderPDF] renders SVG first, then converts it via [render.ToPDF]. This
// requires librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [layout.Layout]: github.com/matzehuels/hexboard/pkg/layout.Layout
// [styles.Style.For]: github.com/matzehuels/hexboard/pkg/render/styles.Style.For
// [render.ToPDF]: github.com/matzehuels/hexboard/pkg/render.ToPDF
package sink
