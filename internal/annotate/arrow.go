package annotate

import (
	"image/color"
	"math"

	"github.com/google/uuid"
)

// Arrow is a straight shaft with a two-segment head at the end point.
type Arrow struct {
	id       string
	start    Point
	end      Point
	color    color.RGBA
	width    float64
	headSize float64
}

// NewArrow builds an arrow from the gesture's start and end points.
func NewArrow(start, end Point, opts Options) *Arrow {
	return &Arrow{
		id:       uuid.NewString(),
		start:    start,
		end:      end,
		color:    opts.PenColor,
		width:    opts.PenSize,
		headSize: opts.ArrowHeadSize,
	}
}

func (a *Arrow) ID() string { return a.id }

func (a *Arrow) Mode() Mode { return ModeArrow }

// Draw paints the shaft and head. The head length is capped at 30% of the
// shaft so short arrows do not grow oversized heads, and a shaft under two
// view pixels is treated as visually empty.
func (a *Arrow) Draw(s Surface, toView Transform, scale float64) {
	sx, sy := toView(a.start.X, a.start.Y)
	ex, ey := toView(a.end.X, a.end.Y)
	dist := math.Hypot(ex-sx, ey-sy)
	if dist < 2 {
		return
	}
	s.SetColor(a.color)
	s.SetLineWidth(a.width * scale)
	s.MoveTo(sx, sy)
	s.LineTo(ex, ey)
	s.Stroke()

	angle := math.Atan2(ey-sy, ex-sx)
	headLen := math.Min(a.headSize*scale, dist*0.3)
	const headAngle = math.Pi / 6
	x1 := ex - headLen*math.Cos(angle-headAngle)
	y1 := ey - headLen*math.Sin(angle-headAngle)
	x2 := ex - headLen*math.Cos(angle+headAngle)
	y2 := ey - headLen*math.Sin(angle+headAngle)
	s.MoveTo(ex, ey)
	s.LineTo(x1, y1)
	s.MoveTo(ex, ey)
	s.LineTo(x2, y2)
	s.Stroke()
}

func (a *Arrow) Bounds() Box {
	return PadBounds(cornerBounds(a.start, a.end), 0)
}

// ContainsPoint tests the point against the shaft's hit corridor rather than
// the bounding box.
func (a *Arrow) ContainsPoint(x, y float64) bool {
	return segmentContains(a.start, a.end, a.width, x, y)
}

func (a *Arrow) Translate(dx, dy float64) {
	a.start.X += dx
	a.start.Y += dy
	a.end.X += dx
	a.end.Y += dy
}

// Line shares the arrow's geometry, bounds and hit corridor but renders the
// bare shaft with no head and no minimum length.
type Line struct {
	id    string
	start Point
	end   Point
	color color.RGBA
	width float64
}

// NewLine builds a straight line from the gesture's start and end points.
func NewLine(start, end Point, opts Options) *Line {
	return &Line{
		id:    uuid.NewString(),
		start: start,
		end:   end,
		color: opts.PenColor,
		width: opts.PenSize,
	}
}

func (a *Line) ID() string { return a.id }

func (a *Line) Mode() Mode { return ModeLine }

func (a *Line) Draw(s Surface, toView Transform, scale float64) {
	sx, sy := toView(a.start.X, a.start.Y)
	ex, ey := toView(a.end.X, a.end.Y)
	s.SetColor(a.color)
	s.SetLineWidth(a.width * scale)
	s.MoveTo(sx, sy)
	s.LineTo(ex, ey)
	s.Stroke()
}

func (a *Line) Bounds() Box {
	return PadBounds(cornerBounds(a.start, a.end), 0)
}

func (a *Line) ContainsPoint(x, y float64) bool {
	return segmentContains(a.start, a.end, a.width, x, y)
}

func (a *Line) Translate(dx, dy float64) {
	a.start.X += dx
	a.start.Y += dy
	a.end.X += dx
	a.end.Y += dy
}
