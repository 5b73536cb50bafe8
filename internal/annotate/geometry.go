package annotate

import "math"

// DefaultPadding is the fractional inflation applied to every action's tight
// bounding box so selection and hit testing have a comfort margin.
const DefaultPadding = 0.02

// Point is a coordinate in normalized image space.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned bounding box in normalized image space.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether (x, y) lies within the box, inclusive on all four
// edges.
func (b Box) Contains(x, y float64) bool {
	return b.MinX <= x && x <= b.MaxX && b.MinY <= y && y <= b.MaxY
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the box.
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// PadBounds expands b by DefaultPadding plus extra on all sides.
func PadBounds(b Box, extra float64) Box {
	p := DefaultPadding + extra
	return Box{MinX: b.MinX - p, MinY: b.MinY - p, MaxX: b.MaxX + p, MaxY: b.MaxY + p}
}

// cornerBounds returns the box spanned by two opposite corners regardless of
// their order.
func cornerBounds(a, b Point) Box {
	return Box{
		MinX: math.Min(a.X, b.X),
		MinY: math.Min(a.Y, b.Y),
		MaxX: math.Max(a.X, b.X),
		MaxY: math.Max(a.Y, b.Y),
	}
}

// pointBounds returns the tight box around a point sequence. The zero Box is
// returned for an empty sequence.
func pointBounds(pts []Point) Box {
	if len(pts) == 0 {
		return Box{}
	}
	b := Box{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// segmentContains reports whether (x, y) lies within the hit corridor of the
// segment from a to b. The corridor radius grows with the stroke width so
// wider strokes are easier to grab. A degenerate segment falls back to a
// plain distance test against DefaultPadding.
func segmentContains(a, b Point, width, x, y float64) bool {
	lenSq := (b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y)
	if lenSq == 0 {
		return math.Hypot(x-a.X, y-a.Y) < DefaultPadding
	}
	t := ((x-a.X)*(b.X-a.X) + (y-a.Y)*(b.Y-a.Y)) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	cx := a.X + t*(b.X-a.X)
	cy := a.Y + t*(b.Y-a.Y)
	distSq := (x-cx)*(x-cx) + (y-cy)*(y-cy)
	r := 0.01 + width/200
	return distSq < r*r
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func translatePoints(pts []Point, dx, dy float64) {
	for i := range pts {
		pts[i].X += dx
		pts[i].Y += dy
	}
}
