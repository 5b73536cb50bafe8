package annotate

import "image/color"

// Options is the settings snapshot an action copies at construction time.
// Later changes to the live settings never affect existing actions.
type Options struct {
	PenColor color.RGBA
	PenSize  float64

	// FillColor is the interior color for rectangles, ellipses, text
	// backgrounds and number stamps. Nil means no fill.
	FillColor *color.RGBA

	HighlighterColor color.RGBA
	HighlighterSize  float64

	ArrowHeadSize float64

	FontFamily string
	FontSize   float64

	// PixelationLevel is the censor downsample factor. Values below 1 are
	// clamped to 1.
	PixelationLevel int

	// NumberRadius is the stamp radius in view pixels before scaling.
	NumberRadius float64
}

// DefaultOptions returns the stock tool settings.
func DefaultOptions() Options {
	return Options{
		PenColor:         color.RGBA{R: 255, A: 255},
		PenSize:          3,
		HighlighterColor: color.RGBA{R: 255, G: 255, A: 255},
		HighlighterSize:  18,
		ArrowHeadSize:    20,
		FontFamily:       "Sans",
		FontSize:         16,
		PixelationLevel:  8,
		NumberRadius:     16,
	}
}
