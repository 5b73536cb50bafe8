// Package palette provides the named colors available to annotation tools
// and parsing between color specs and RGBA values.
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Entry pairs a display name with its color.
type Entry struct {
	Name  string
	Color color.RGBA
}

var defaults = []Entry{
	{"Black", color.RGBA{0, 0, 0, 255}},
	{"White", color.RGBA{255, 255, 255, 255}},
	{"Red", color.RGBA{255, 0, 0, 255}},
	{"Lime", color.RGBA{0, 255, 0, 255}},
	{"Blue", color.RGBA{0, 0, 255, 255}},
	{"Yellow", color.RGBA{255, 255, 0, 255}},
	{"Cyan", color.RGBA{0, 255, 255, 255}},
	{"Magenta", color.RGBA{255, 0, 255, 255}},
	{"Maroon", color.RGBA{128, 0, 0, 255}},
	{"Green", color.RGBA{0, 128, 0, 255}},
	{"Navy", color.RGBA{0, 0, 128, 255}},
	{"Olive", color.RGBA{128, 128, 0, 255}},
	{"Teal", color.RGBA{0, 128, 128, 255}},
	{"Purple", color.RGBA{128, 0, 128, 255}},
	{"Silver", color.RGBA{192, 192, 192, 255}},
	{"Gray", color.RGBA{128, 128, 128, 255}},
}

// Default returns the stock palette entries.
func Default() []Entry {
	out := make([]Entry, len(defaults))
	copy(out, defaults)
	return out
}

// Parse resolves a color spec: a palette name, an X11/SVG color name, or a
// #RRGGBB / #RRGGBBAA hex value.
func Parse(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	for _, entry := range defaults {
		if strings.EqualFold(entry.Name, spec) {
			return entry.Color, nil
		}
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	if strings.HasPrefix(spec, "#") && (len(spec) == 7 || len(spec) == 9) {
		var vals [4]uint64
		vals[3] = 255
		for i := 0; i*2+3 <= len(spec); i++ {
			v, err := strconv.ParseUint(spec[1+i*2:3+i*2], 16, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("invalid color %q", s)
			}
			vals[i] = v
		}
		return color.RGBA{uint8(vals[0]), uint8(vals[1]), uint8(vals[2]), uint8(vals[3])}, nil
	}
	return color.RGBA{}, fmt.Errorf("invalid color %q", s)
}

// Format renders c as a hex spec, omitting the alpha byte when opaque.
func Format(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// Name returns the palette name for c, or its hex spec when unnamed.
func Name(c color.RGBA) string {
	for _, entry := range defaults {
		if entry.Color == c {
			return entry.Name
		}
	}
	return Format(c)
}
