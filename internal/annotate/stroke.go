package annotate

import (
	"image/color"

	"github.com/google/uuid"
)

// Stroke is a freehand pen stroke over raw pointer samples. The point list is
// fixed after construction; only Translate moves it.
type Stroke struct {
	id      string
	points  []Point
	color   color.RGBA
	penSize float64
}

// NewStroke builds a pen stroke from a completed drag gesture.
func NewStroke(points []Point, opts Options) *Stroke {
	pts := make([]Point, len(points))
	copy(pts, points)
	return &Stroke{
		id:      uuid.NewString(),
		points:  pts,
		color:   opts.PenColor,
		penSize: opts.PenSize,
	}
}

func (a *Stroke) ID() string { return a.id }

func (a *Stroke) Mode() Mode { return ModePen }

// Draw paints the stroke as a smoothed path with round caps and joins.
func (a *Stroke) Draw(s Surface, toView Transform, scale float64) {
	if len(a.points) < 2 {
		return
	}
	coords := viewPoints(a.points, toView)
	s.SetColor(a.color)
	s.SetLineWidth(a.penSize * scale)
	s.SetLineCap(CapRound)
	s.SetLineJoin(JoinRound)
	smoothPath(s, coords)
	s.Stroke()
}

func (a *Stroke) Bounds() Box {
	if len(a.points) == 0 {
		return Box{}
	}
	return PadBounds(pointBounds(a.points), 0)
}

func (a *Stroke) ContainsPoint(x, y float64) bool {
	return a.Bounds().Contains(x, y)
}

func (a *Stroke) Translate(dx, dy float64) {
	translatePoints(a.points, dx, dy)
}

// Highlighter shares the pen stroke geometry but composites with multiply so
// overlapping passes darken, the way a real highlighter layers ink.
type Highlighter struct {
	id      string
	points  []Point
	color   color.RGBA
	penSize float64
}

// NewHighlighter builds a highlighter stroke from a completed drag gesture.
func NewHighlighter(points []Point, opts Options) *Highlighter {
	pts := make([]Point, len(points))
	copy(pts, points)
	return &Highlighter{
		id:      uuid.NewString(),
		points:  pts,
		color:   opts.HighlighterColor,
		penSize: opts.HighlighterSize,
	}
}

func (a *Highlighter) ID() string { return a.id }

func (a *Highlighter) Mode() Mode { return ModeHighlighter }

// Draw paints the raw polyline with butt caps under the multiply operator,
// then restores the default operator and cap so later draws are unaffected.
func (a *Highlighter) Draw(s Surface, toView Transform, scale float64) {
	if len(a.points) < 2 {
		return
	}
	coords := viewPoints(a.points, toView)
	s.SetOperator(OperatorMultiply)
	s.SetColor(a.color)
	s.SetLineWidth(a.penSize * scale)
	s.SetLineCap(CapButt)
	s.MoveTo(coords[0].X, coords[0].Y)
	for _, p := range coords[1:] {
		s.LineTo(p.X, p.Y)
	}
	s.Stroke()
	s.SetOperator(OperatorOver)
	s.SetLineCap(CapRound)
}

func (a *Highlighter) Bounds() Box {
	if len(a.points) == 0 {
		return Box{}
	}
	return PadBounds(pointBounds(a.points), 0)
}

func (a *Highlighter) ContainsPoint(x, y float64) bool {
	return a.Bounds().Contains(x, y)
}

func (a *Highlighter) Translate(dx, dy float64) {
	translatePoints(a.points, dx, dy)
}

func viewPoints(pts []Point, toView Transform) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		x, y := toView(p.X, p.Y)
		out[i] = Point{X: x, Y: y}
	}
	return out
}

// smoothPath emits coords as a piecewise midpoint-to-midpoint curve. Two
// points give a straight segment. With more, the path runs from the first
// point to the first midpoint, then one cubic per interior point anchored on
// that point, and finally a straight segment to the last raw sample so the
// path terminates exactly where the gesture did.
func smoothPath(s Surface, coords []Point) {
	s.MoveTo(coords[0].X, coords[0].Y)
	if len(coords) == 2 {
		s.LineTo(coords[1].X, coords[1].Y)
		return
	}
	first := midpoint(coords[0], coords[1])
	s.LineTo(first.X, first.Y)
	for i := 1; i < len(coords)-1; i++ {
		p0 := coords[i-1]
		p1 := coords[i]
		p2 := coords[i+1]
		cp := Point{X: p0.X + (p1.X-p0.X)*0.5, Y: p0.Y + (p1.Y-p0.Y)*0.5}
		mid := midpoint(p1, p2)
		s.CurveTo(cp.X, cp.Y, p1.X, p1.Y, mid.X, mid.Y)
	}
	last := coords[len(coords)-1]
	s.LineTo(last.X, last.Y)
}
