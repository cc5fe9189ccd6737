package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hexboard/pkg/config"
	"github.com/matzehuels/hexboard/pkg/errors"
	"github.com/matzehuels/hexboard/pkg/hex"
	"github.com/matzehuels/hexboard/pkg/pipeline"
	"github.com/matzehuels/hexboard/pkg/render/styles"
)

// boardFlags holds the command-line flags shared by every board command.
// Each registered flag also records a setter so that values given on the
// command line can be replayed over a config file.
type boardFlags struct {
	typ      string   // board shape: hex, tri, rho, rect
	radius   int      // hexagonal radius
	size     int      // triangular edge length
	width    int      // rhomboidal/rectangular width
	height   int      // rhomboidal/rectangular height
	mirrored bool     // mirror triangular boards
	input    string   // board text file, overrides the shape
	flatTop  bool     // flat-top orientation
	config   string   // TOML or YAML config file
	all      bool     // keep absent cells
	fills    []string // N=COLOR style overrides

	setters map[string]func(*pipeline.Options) error
}

// set registers the setter for a flag name.
func (f *boardFlags) set(name string, fn func(*pipeline.Options) error) {
	if f.setters == nil {
		f.setters = make(map[string]func(*pipeline.Options) error)
	}
	f.setters[name] = fn
}

// addShapeFlags registers the board shape flags on cmd. Sizes given on the
// command line must be positive: a zero in [pipeline.Options] would select the
// default instead of being rejected.
func (f *boardFlags) addShapeFlags(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.typ, "type", "t", pipeline.DefaultType, "board shape: hex, tri, rho, rect")
	fl.IntVarP(&f.radius, "radius", "R", pipeline.DefaultRadius, "radius of hexagonal boards")
	fl.IntVarP(&f.size, "size", "S", pipeline.DefaultSize, "edge length of triangular boards")
	fl.IntVarP(&f.width, "width", "W", pipeline.DefaultWidth, "width of rhomboidal and rectangular boards")
	fl.IntVarP(&f.height, "height", "H", pipeline.DefaultHeight, "height of rhomboidal and rectangular boards")
	fl.BoolVarP(&f.mirrored, "mirrored", "M", false, "mirror triangular boards")
	fl.StringVarP(&f.input, "input", "i", "", "read the board from a text grid file instead of generating it")
	fl.BoolVar(&f.flatTop, "flat-top", false, "use flat-top hexagons")
	fl.StringVarP(&f.config, "config", "c", "", "load settings from a TOML or YAML file")

	f.set("type", func(o *pipeline.Options) error { o.Type = f.typ; return nil })
	f.set("radius", func(o *pipeline.Options) error { o.Radius = f.radius; return nil })
	f.set("size", func(o *pipeline.Options) error {
		if err := errors.ValidateMinInt("size", f.size, 1); err != nil {
			return err
		}
		o.Size = f.size
		return nil
	})
	f.set("width", func(o *pipeline.Options) error {
		if err := errors.ValidateMinInt("width", f.width, 1); err != nil {
			return err
		}
		o.Width = f.width
		return nil
	})
	f.set("height", func(o *pipeline.Options) error {
		if err := errors.ValidateMinInt("height", f.height, 1); err != nil {
			return err
		}
		o.Height = f.height
		return nil
	})
	f.set("mirrored", func(o *pipeline.Options) error { o.Mirrored = f.mirrored; return nil })
	f.set("input", func(o *pipeline.Options) error { o.Input = f.input; return nil })
	f.set("flat-top", func(o *pipeline.Options) error {
		o.Orientation = hex.PointyTop.String()
		if f.flatTop {
			o.Orientation = hex.FlatTop.String()
		}
		return nil
	})
}

// addStyleFlags registers the flags that affect which cells are shown and
// how they are colored.
func (f *boardFlags) addStyleFlags(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.BoolVarP(&f.all, "all", "a", false, "include absent cells (field type 0)")
	fl.StringArrayVar(&f.fills, "fill", nil, "fill color for a field type, as N=COLOR (repeatable)")

	f.set("all", func(o *pipeline.Options) error { o.All = f.all; return nil })
	f.set("fill", func(o *pipeline.Options) error {
		fills, err := parseFills(f.fills)
		if err != nil {
			return err
		}
		o.Fills = fills
		return nil
	})
}

// options builds pipeline options from the flags. When a config file is
// given, its values replace the flag defaults and flags changed on the
// command line are applied on top.
func (f *boardFlags) options(cmd *cobra.Command) (pipeline.Options, *config.Config, error) {
	var opts pipeline.Options
	for _, fn := range f.setters {
		if err := fn(&opts); err != nil {
			return opts, nil, err
		}
	}
	if f.config == "" {
		return opts, nil, nil
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		return opts, nil, err
	}
	cfg.Apply(&opts)
	for name, fn := range f.setters {
		if !cmd.Flags().Changed(name) {
			continue
		}
		if err := fn(&opts); err != nil {
			return opts, nil, err
		}
	}
	return opts, cfg, nil
}

// parseFills parses repeated --fill values into field style overrides.
func parseFills(values []string) (map[int]styles.FieldStyle, error) {
	if len(values) == 0 {
		return nil, nil
	}
	fills := make(map[int]styles.FieldStyle, len(values))
	for _, v := range values {
		t, fs, err := styles.ParseFill(v)
		if err != nil {
			return nil, err
		}
		fills[t] = fs
	}
	return fills, nil
}
