package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/hexboard/pkg/errors"
)

// FieldStyle is the paint of one kind of polygon. Empty attributes inherit
// from the base field style.
type FieldStyle struct {
	Fill        string  `json:"fill,omitempty" toml:"fill" yaml:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty" toml:"stroke" yaml:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty" toml:"stroke_width" yaml:"stroke_width,omitempty"`
}

// IsZero reports whether no attribute is set.
func (f FieldStyle) IsZero() bool {
	return f.Fill == "" && f.Stroke == "" && f.StrokeWidth == 0
}

// Over returns f with every non-empty attribute of o applied on top.
func (f FieldStyle) Over(o FieldStyle) FieldStyle {
	if o.Fill != "" {
		f.Fill = o.Fill
	}
	if o.Stroke != "" {
		f.Stroke = o.Stroke
	}
	if o.StrokeWidth != 0 {
		f.StrokeWidth = o.StrokeWidth
	}
	return f
}

func (f FieldStyle) css() string {
	var parts []string
	if f.Fill != "" {
		parts = append(parts, "fill: "+f.Fill)
	}
	if f.Stroke != "" {
		parts = append(parts, "stroke: "+f.Stroke)
	}
	if f.StrokeWidth != 0 {
		parts = append(parts, "stroke-width: "+strconv.FormatFloat(f.StrokeWidth, 'g', -1, 64))
	}
	return strings.Join(parts, "; ")
}

// Style maps field types to paint.
//
// Board paints the background rectangle, Field is the base style of every
// hexagon and Absent applies to type-0 cells kept with trimming disabled.
// Fields holds per-type overrides. CSS is appended verbatim to the generated
// stylesheet and only affects SVG output.
type Style struct {
	Board  FieldStyle         `json:"board" toml:"board" yaml:"board"`
	Field  FieldStyle         `json:"field" toml:"field" yaml:"field"`
	Absent FieldStyle         `json:"absent" toml:"absent" yaml:"absent"`
	Fields map[int]FieldStyle `json:"fields,omitempty" toml:"-" yaml:"fields,omitempty"`
	CSS    string             `json:"css,omitempty" toml:"css" yaml:"css,omitempty"`
}

// palette colors field types 1 through 9.
var palette = [...]string{
	"white",
	"#e9c46a",
	"#8ab17d",
	"#2a9d8f",
	"#e76f51",
	"#9e9e9e",
	"#f4a261",
	"#6d597a",
	"#264653",
}

// Default returns a white board with white, black-stroked fields, black absent
// cells and the fixed palette for field types 1 to 9.
func Default() Style {
	s := Style{
		Board:  FieldStyle{Fill: "white"},
		Field:  FieldStyle{Fill: "white", Stroke: "black", StrokeWidth: 1},
		Absent: FieldStyle{Fill: "black"},
		Fields: make(map[int]FieldStyle, len(palette)),
	}
	for i, c := range palette {
		s.Fields[i+1] = FieldStyle{Fill: c}
	}
	return s
}

// Merge returns a copy of s with overrides applied per field type. Only the
// non-empty attributes of an override replace existing ones. s is not modified.
func (s Style) Merge(overrides map[int]FieldStyle) Style {
	out := s
	out.Fields = maps.Clone(s.Fields)
	if out.Fields == nil {
		out.Fields = make(map[int]FieldStyle, len(overrides))
	}
	for t, o := range overrides {
		out.Fields[t] = out.Fields[t].Over(o)
	}
	return out
}

// For returns the effective style of fieldType: the base field style with the
// type's override, or the absent style for type 0, on top.
func (s Style) For(fieldType int) FieldStyle {
	if fieldType == 0 {
		return s.Field.Over(s.Absent).Over(s.Fields[0])
	}
	return s.Field.Over(s.Fields[fieldType])
}

// Types returns the field types with an explicit style, ascending.
func (s Style) Types() []int {
	return slices.Sorted(maps.Keys(s.Fields))
}

// Stylesheet renders s as CSS for the classes used in SVG output: .board,
// .hex-field and .hex-field-N, followed by the custom CSS.
func (s Style) Stylesheet() string {
	var b strings.Builder
	writeRule(&b, ".board", s.Board)
	writeRule(&b, ".hex-field", s.Field)
	writeRule(&b, ".hex-field-0", s.Absent.Over(s.Fields[0]))
	for _, t := range s.Types() {
		if t == 0 {
			continue
		}
		writeRule(&b, fmt.Sprintf(".hex-field-%d", t), s.Fields[t])
	}
	if css := strings.TrimSpace(s.CSS); css != "" {
		b.WriteString(css)
		b.WriteByte('\n')
	}
	return b.String()
}

func writeRule(b *strings.Builder, selector string, f FieldStyle) {
	if f.IsZero() {
		return
	}
	fmt.Fprintf(b, "%s { %s }\n", selector, f.css())
}

// ParseFill parses a "N=COLOR" fill override as given on the command line.
func ParseFill(s string) (int, FieldStyle, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return 0, FieldStyle{}, errors.New(errors.ErrCodeInvalidInput, "invalid fill %q (want N=COLOR)", s)
	}
	t, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return 0, FieldStyle{}, errors.New(errors.ErrCodeInvalidInput, "invalid field type %q in fill %q", key, s)
	}
	if err := errors.ValidateFieldType(t); err != nil {
		return 0, FieldStyle{}, err
	}
	value = strings.TrimSpace(value)
	if _, err := ParseColor(value); err != nil {
		return 0, FieldStyle{}, err
	}
	return t, FieldStyle{Fill: value}, nil
}
