package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor converts a "#rrggbb" string into an opaque RGBA color.
func ParseHexColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustHexColor is ParseHexColor for trusted literals; it panics on a
// malformed string.
func MustHexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
