// Package annotate implements the drawable annotation actions that make up a
// markup layer over a raster image: freehand strokes, arrows, lines,
// rectangles, ellipses, text labels, highlighter strokes, pixelation censors
// and numbered stamps.
//
// Geometry is stored in normalized image space (0..1 relative to the image
// dimensions) so actions stay valid across zoom, pan and resize. Rendering
// maps normalized coordinates to view pixels through a caller-supplied
// Transform plus a scale factor for length quantities such as stroke widths
// and font sizes.
package annotate

// Mode identifies a drawing tool.
type Mode int

const (
	ModeSelect Mode = iota
	ModePen
	ModeArrow
	ModeLine
	ModeSquare
	ModeCircle
	ModeText
	ModeHighlighter
	ModeCensor
	ModeNumber
)

// Label returns the display name for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeSelect:
		return "Select"
	case ModePen:
		return "Pen"
	case ModeArrow:
		return "Arrow"
	case ModeLine:
		return "Line"
	case ModeSquare:
		return "Square"
	case ModeCircle:
		return "Circle"
	case ModeText:
		return "Text"
	case ModeHighlighter:
		return "Highlighter"
	case ModeCensor:
		return "Censor"
	case ModeNumber:
		return "Number"
	}
	return "Unknown"
}

func (m Mode) String() string { return m.Label() }

// Modes lists every mode in toolbar order. ModeSelect carries no action type;
// it marks "no active draw tool, pointer manipulates existing actions".
func Modes() []Mode {
	return []Mode{
		ModePen, ModeArrow, ModeLine, ModeSquare, ModeCircle,
		ModeText, ModeSelect, ModeHighlighter, ModeCensor, ModeNumber,
	}
}
