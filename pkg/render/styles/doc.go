// Package styles maps board field types to colors.
//
// A [Style] is a plain value passed to the renderers in package sink; there is
// no global style state. [Default] gives the stock look and [Style.Merge]
// layers user overrides on top:
//
//	s := styles.Default().Merge(map[int]styles.FieldStyle{
//	    2: {Fill: "tomato"},
//	})
//	css := s.Stylesheet()
//
// SVG output uses [Style.Stylesheet] directly; the PNG renderer resolves each
// hexagon with [Style.For] and [ParseColor].
package styles
