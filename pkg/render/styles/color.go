package styles

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/matzehuels/hexboard/pkg/errors"
)

// ParseColor resolves a CSS color: "#rgb", "#rrggbb", "#rrggbbaa", a CSS
// color name such as "tomato", or "none" for full transparency.
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "none" || name == "transparent" {
		return color.RGBA{}, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if hex, ok := strings.CutPrefix(name, "#"); ok {
		if c, ok := parseHex(hex); ok {
			return c, nil
		}
	}
	return color.RGBA{}, errors.New(errors.ErrCodeInvalidInput, "unknown color %q", s)
}

func parseHex(s string) (color.RGBA, bool) {
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	c := color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	// color.RGBA is alpha-premultiplied.
	if c.A != 0xff {
		c.R = uint8(uint32(c.R) * uint32(c.A) / 0xff)
		c.G = uint8(uint32(c.G) * uint32(c.A) / 0xff)
		c.B = uint8(uint32(c.B) * uint32(c.A) / 0xff)
	}
	return c, true
}
