// Package config loads board settings from TOML or YAML files.
//
// A config file mirrors the command line flags, grouped in three sections:
//
//	[board]
//	type = "rect"
//	width = 8
//	height = 6
//	orientation = "flat"
//
//	[layout]
//	edge = 30.0
//	spacing = 2.0
//
//	[render]
//	formats = ["svg", "png"]
//
//	[render.style.field]
//	stroke = "#333"
//
//	[render.style.fields.2]
//	fill = "tomato"
//
// The format is chosen by file extension: ".toml", ".yaml" or ".yml".
// Unknown keys are rejected so typos surface as INVALID_CONFIG errors.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/hexboard/pkg/errors"
	"github.com/matzehuels/hexboard/pkg/pipeline"
	"github.com/matzehuels/hexboard/pkg/render/styles"
)

// Config is the content of a board config file.
type Config struct {
	Board  Board  `toml:"board" yaml:"board"`
	Layout Layout `toml:"layout" yaml:"layout"`
	Render Render `toml:"render" yaml:"render"`
}

// Board selects the board shape or an input file.
type Board struct {
	Type        string `toml:"type" yaml:"type"`
	Radius      *int   `toml:"radius" yaml:"radius"`
	Size        int    `toml:"size" yaml:"size"`
	Mirrored    bool   `toml:"mirrored" yaml:"mirrored"`
	Width       int    `toml:"width" yaml:"width"`
	Height      int    `toml:"height" yaml:"height"`
	Input       string `toml:"input" yaml:"input"`
	Orientation string `toml:"orientation" yaml:"orientation"`
}

// Layout holds the geometry settings.
type Layout struct {
	Edge    float64  `toml:"edge" yaml:"edge"`
	Spacing float64  `toml:"spacing" yaml:"spacing"`
	Padding *float64 `toml:"padding" yaml:"padding"`
	All     bool     `toml:"all" yaml:"all"`
}

// Render holds output settings.
type Render struct {
	Formats []string `toml:"formats" yaml:"formats"`
	Output  string   `toml:"output" yaml:"output"`
	Scale   float64  `toml:"scale" yaml:"scale"`
	Style   Style    `toml:"style" yaml:"style"`
}

// Style is the file form of [styles.Style]. Field types are keyed by their
// decimal string since TOML tables only have string keys.
type Style struct {
	Board  styles.FieldStyle            `toml:"board" yaml:"board"`
	Field  styles.FieldStyle            `toml:"field" yaml:"field"`
	Absent styles.FieldStyle            `toml:"absent" yaml:"absent"`
	Fields map[string]styles.FieldStyle `toml:"fields" yaml:"fields"`
	CSS    string                       `toml:"css" yaml:"css"`
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// Parse decodes config data. ext is the file extension naming the format,
// with or without the leading dot.
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid TOML")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid YAML")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"unsupported config format %q (must be .toml, .yaml or .yml)", ext)
	}
	if _, err := cfg.Render.Style.fields(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s Style) fields() (map[int]styles.FieldStyle, error) {
	if len(s.Fields) == 0 {
		return nil, nil
	}
	out := make(map[int]styles.FieldStyle, len(s.Fields))
	for key, fs := range s.Fields {
		t, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || t < 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid field type %q in style", key)
		}
		out[t] = fs
	}
	return out, nil
}

// Resolve converts the file style into a [styles.Style] layered over
// [styles.Default]. Attributes the file leaves empty keep their defaults.
func (s Style) Resolve() styles.Style {
	base := styles.Default()
	base.Board = base.Board.Over(s.Board)
	base.Field = base.Field.Over(s.Field)
	base.Absent = base.Absent.Over(s.Absent)
	fields, _ := s.fields()
	out := base.Merge(fields)
	out.CSS = strings.TrimSpace(s.CSS)
	return out
}

// Apply copies every setting present in the file onto opts. Settings the
// file leaves out keep their current values.
func (c *Config) Apply(opts *pipeline.Options) {
	b := c.Board
	if b.Type != "" {
		opts.Type = b.Type
	}
	if b.Radius != nil {
		opts.Radius = *b.Radius
	}
	if b.Size != 0 {
		opts.Size = b.Size
	}
	if b.Mirrored {
		opts.Mirrored = true
	}
	if b.Width != 0 {
		opts.Width = b.Width
	}
	if b.Height != 0 {
		opts.Height = b.Height
	}
	if b.Input != "" {
		opts.Input = b.Input
	}
	if b.Orientation != "" {
		opts.Orientation = b.Orientation
	}

	l := c.Layout
	if l.Edge != 0 {
		opts.Edge = l.Edge
	}
	if l.Spacing != 0 {
		opts.Spacing = l.Spacing
	}
	if l.Padding != nil {
		p := *l.Padding
		opts.Padding = &p
	}
	if l.All {
		opts.All = true
	}

	r := c.Render
	if len(r.Formats) > 0 {
		opts.Formats = append([]string(nil), r.Formats...)
	}
	if r.Scale != 0 {
		opts.Scale = r.Scale
	}
	style := r.Style.Resolve()
	opts.Style = &style
}
