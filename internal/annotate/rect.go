package annotate

import (
	"image/color"
	"math"

	"github.com/google/uuid"
)

// Rect is an axis-aligned rectangle spanned by two opposite corners. The
// corner order does not matter.
type Rect struct {
	id    string
	start Point
	end   Point
	color color.RGBA
	width float64
	fill  *color.RGBA
}

// NewRect builds a rectangle from the gesture's opposite corners.
func NewRect(start, end Point, opts Options) *Rect {
	return &Rect{
		id:    uuid.NewString(),
		start: start,
		end:   end,
		color: opts.PenColor,
		width: opts.PenSize,
		fill:  cloneColor(opts.FillColor),
	}
}

func (a *Rect) ID() string { return a.id }

func (a *Rect) Mode() Mode { return ModeSquare }

// Draw paints the optional fill first, then the stroked outline.
func (a *Rect) Draw(s Surface, toView Transform, scale float64) {
	x1, y1 := toView(a.start.X, a.start.Y)
	x2, y2 := toView(a.end.X, a.end.Y)
	x, y := math.Min(x1, x2), math.Min(y1, y2)
	w, h := math.Abs(x2-x1), math.Abs(y2-y1)
	if a.fill != nil {
		s.SetColor(*a.fill)
		s.Rectangle(x, y, w, h)
		s.Fill()
	}
	s.SetColor(a.color)
	s.SetLineWidth(a.width * scale)
	s.Rectangle(x, y, w, h)
	s.Stroke()
}

func (a *Rect) Bounds() Box {
	return PadBounds(cornerBounds(a.start, a.end), 0)
}

func (a *Rect) ContainsPoint(x, y float64) bool {
	return a.Bounds().Contains(x, y)
}

func (a *Rect) Translate(dx, dy float64) {
	a.start.X += dx
	a.start.Y += dy
	a.end.X += dx
	a.end.Y += dy
}

// Circle shares the rectangle's corner geometry but renders the ellipse
// inscribed in that box.
type Circle struct {
	id    string
	start Point
	end   Point
	color color.RGBA
	width float64
	fill  *color.RGBA
}

// NewCircle builds an ellipse inscribed in the gesture's corner box.
func NewCircle(start, end Point, opts Options) *Circle {
	return &Circle{
		id:    uuid.NewString(),
		start: start,
		end:   end,
		color: opts.PenColor,
		width: opts.PenSize,
		fill:  cloneColor(opts.FillColor),
	}
}

func (a *Circle) ID() string { return a.id }

func (a *Circle) Mode() Mode { return ModeCircle }

// Draw paints the inscribed ellipse. Either half-axis below 1e-3 view pixels
// is degenerate and draws nothing.
func (a *Circle) Draw(s Surface, toView Transform, scale float64) {
	x1, y1 := toView(a.start.X, a.start.Y)
	x2, y2 := toView(a.end.X, a.end.Y)
	cx, cy := (x1+x2)/2, (y1+y2)/2
	rx, ry := math.Abs(x2-x1)/2, math.Abs(y2-y1)/2
	if rx < 1e-3 || ry < 1e-3 {
		return
	}
	if a.fill != nil {
		s.SetColor(*a.fill)
		s.Ellipse(cx, cy, rx, ry)
		s.Fill()
	}
	s.SetColor(a.color)
	s.SetLineWidth(a.width * scale)
	s.Ellipse(cx, cy, rx, ry)
	s.Stroke()
}

func (a *Circle) Bounds() Box {
	return PadBounds(cornerBounds(a.start, a.end), 0)
}

func (a *Circle) ContainsPoint(x, y float64) bool {
	return a.Bounds().Contains(x, y)
}

func (a *Circle) Translate(dx, dy float64) {
	a.start.X += dx
	a.start.Y += dy
	a.end.X += dx
	a.end.Y += dy
}

func cloneColor(c *color.RGBA) *color.RGBA {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
