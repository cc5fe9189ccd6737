package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/hexboard/pkg/layout"
	"github.com/matzehuels/hexboard/pkg/render/styles"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style styles.Style
}

// WithStyle sets the field-type styling (default [styles.Default]).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// RenderSVG draws the layout as a standalone SVG document: a stylesheet, a
// background rectangle the size of the canvas and one polygon per hexagon.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Default()}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(l.Width), num(l.Height), num(l.Width), num(l.Height))

	renderStylesheet(&buf, r.style)
	fmt.Fprintf(&buf, `  <rect class="board" x="0" y="0" width="%s" height="%s"/>`+"\n", num(l.Width), num(l.Height))
	for i, h := range l.Hexagons {
		renderHexagon(&buf, i, h)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderStylesheet(buf *bytes.Buffer, s styles.Style) {
	css := s.Stylesheet()
	if css == "" {
		return
	}
	buf.WriteString("  <style><![CDATA[\n")
	for _, line := range strings.Split(strings.TrimRight(css, "\n"), "\n") {
		fmt.Fprintf(buf, "    %s\n", line)
	}
	buf.WriteString("  ]]></style>\n")
}

func renderHexagon(buf *bytes.Buffer, i int, h layout.Hexagon) {
	fmt.Fprintf(buf, `  <polygon id="hex-field-%d" class="hex-field hex-field-%d" data-col="%d" data-row="%d" points="`,
		i, h.FieldType, h.Col, h.Row)
	for j, v := range h.Vertices {
		if j > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%s,%s", num(v.X), num(v.Y))
	}
	buf.WriteString(`"/>` + "\n")
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
