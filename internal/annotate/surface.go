package annotate

import (
	"image/color"

	"github.com/example/pixmark/internal/pixbuf"
)

// Transform maps a normalized image-space coordinate to view-space pixels.
// It is supplied fresh for each paint pass and must be pure for its duration.
type Transform func(x, y float64) (float64, float64)

// Operator selects how painted pixels combine with the destination.
type Operator int

const (
	// OperatorOver is ordinary source-over alpha compositing.
	OperatorOver Operator = iota
	// OperatorMultiply darkens the destination by the source, so overlapping
	// highlighter strokes deepen instead of occluding each other.
	OperatorMultiply
)

// LineCap selects the stroke end style.
type LineCap int

const (
	CapRound LineCap = iota
	CapButt
)

// LineJoin selects the stroke corner style.
type LineJoin int

const (
	JoinRound LineJoin = iota
	JoinMiter
)

// Font describes the typeface used for text layout and painting.
type Font struct {
	Family string
	Size   float64
	Bold   bool
}

// TextMeasurer reports the logical pixel extent of a string laid out with a
// font. Surfaces satisfy it; actions that need resolution-independent bounds
// hold one so measurement does not depend on the live view scale.
type TextMeasurer interface {
	MeasureText(text string, f Font) (w, h float64)
}

// Surface is the drawing capability an action paints onto. Implementations
// own ambient style state (current color, line width, cap, join, operator)
// which Draw calls mutate; actions that switch the operator or cap restore
// the defaults before returning.
type Surface interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
	Rectangle(x, y, w, h float64)
	Ellipse(cx, cy, rx, ry float64)

	SetColor(c color.RGBA)
	SetLineWidth(w float64)
	SetLineCap(c LineCap)
	SetLineJoin(j LineJoin)
	SetOperator(op Operator)
	Save()
	Restore()

	Stroke()
	Fill()

	// DrawBuffer composites a pixel buffer at the view-space rectangle,
	// clipped to it.
	DrawBuffer(b *pixbuf.Buffer, x, y, w, h float64)

	MeasureText(text string, f Font) (w, h float64)
	// FillText paints text with its top-left corner at (x, y) using the
	// current color.
	FillText(text string, x, y float64, f Font)
}
