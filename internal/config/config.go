package config

import (
	"fmt"
	"strings"

	"github.com/example/pixmark/internal/annotate"
	"github.com/example/pixmark/internal/palette"
)

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Config holds the application configuration. Draw carries the default tool
// settings applied to new annotations.
type Config struct {
	SaveDir string
	Draw    annotate.Options
	Notify  Notify
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Draw: annotate.DefaultOptions(),
		Notify: Notify{
			Save: false,
			Copy: false,
		},
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	o := c.Draw
	sb.WriteString("[draw]\n")
	fmt.Fprintf(&sb, "color = %s\n", palette.Format(o.PenColor))
	fmt.Fprintf(&sb, "width = %g\n", o.PenSize)
	if o.FillColor != nil {
		fmt.Fprintf(&sb, "fill = %s\n", palette.Format(*o.FillColor))
	} else {
		sb.WriteString("fill = none\n")
	}
	fmt.Fprintf(&sb, "font_family = %s\n", o.FontFamily)
	fmt.Fprintf(&sb, "font_size = %g\n", o.FontSize)
	fmt.Fprintf(&sb, "arrow_head = %g\n", o.ArrowHeadSize)
	fmt.Fprintf(&sb, "highlighter_color = %s\n", palette.Format(o.HighlighterColor))
	fmt.Fprintf(&sb, "highlighter_size = %g\n", o.HighlighterSize)
	fmt.Fprintf(&sb, "pixelation = %d\n", o.PixelationLevel)
	fmt.Fprintf(&sb, "number_radius = %g\n", o.NumberRadius)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	return sb.String()
}
