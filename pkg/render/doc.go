// Package render holds format conversion shared by the board renderers.
//
// The image renderers themselves live in [sink]; field-type colors live in
// [styles]. This package only wraps the external rsvg-convert tool (from
// librsvg), which turns SVG output into PDF:
//
//	svg := sink.RenderSVG(l)
//	pdf, err := render.ToPDF(ctx, svg)
//
// When rsvg-convert is missing, [ToPDF] fails with an UNSUPPORTED error that
// explains how to install it. PNG output does not need it: [sink.RenderPNG]
// rasterizes natively.
//
// [sink]: github.com/matzehuels/hexboard/pkg/render/sink
// [styles]: github.com/matzehuels/hexboard/pkg/render/styles
// [sink.RenderPNG]: github.com/matzehuels/hexboard/pkg/render/sink.RenderPNG
package render
