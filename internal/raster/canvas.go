// Package raster renders annotation actions onto an *image.RGBA. It
// implements the annotate.Surface capability with CPU rasterization: thick
// Bresenham strokes, scanline fills and opentype text.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/example/pixmark/internal/annotate"
	"github.com/example/pixmark/internal/pixbuf"
)

type pointf struct {
	x, y float64
}

type subpath struct {
	pts    []pointf
	closed bool
}

type style struct {
	col   color.RGBA
	width float64
	cap   annotate.LineCap
	join  annotate.LineJoin
	op    annotate.Operator
}

// Canvas draws onto a destination RGBA image. It is not safe for concurrent
// use.
type Canvas struct {
	dst   *image.RGBA
	style style
	saved []style
	paths []subpath
}

var _ annotate.Surface = (*Canvas)(nil)

// New returns a canvas targeting dst with black color, width 1, round caps
// and joins, and the Over operator.
func New(dst *image.RGBA) *Canvas {
	return &Canvas{
		dst:   dst,
		style: style{col: color.RGBA{A: 255}, width: 1},
	}
}

// Image returns the destination image.
func (c *Canvas) Image() *image.RGBA { return c.dst }

func (c *Canvas) SetColor(col color.RGBA)         { c.style.col = col }
func (c *Canvas) SetLineWidth(w float64)          { c.style.width = w }
func (c *Canvas) SetLineCap(v annotate.LineCap)   { c.style.cap = v }
func (c *Canvas) SetLineJoin(v annotate.LineJoin) { c.style.join = v }
func (c *Canvas) SetOperator(op annotate.Operator) {
	c.style.op = op
}

// Save pushes the current style state.
func (c *Canvas) Save() {
	c.saved = append(c.saved, c.style)
}

// Restore pops the most recently saved style state. Without a matching Save
// it is a no-op.
func (c *Canvas) Restore() {
	if len(c.saved) == 0 {
		return
	}
	c.style = c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
}

func (c *Canvas) MoveTo(x, y float64) {
	c.paths = append(c.paths, subpath{pts: []pointf{{x, y}}})
}

func (c *Canvas) LineTo(x, y float64) {
	if len(c.paths) == 0 {
		c.MoveTo(x, y)
		return
	}
	sp := &c.paths[len(c.paths)-1]
	sp.pts = append(sp.pts, pointf{x, y})
}

// CurveTo flattens a cubic segment from the current point into line
// segments. The step count follows the control polygon length.
func (c *Canvas) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if len(c.paths) == 0 {
		c.MoveTo(x1, y1)
	}
	sp := &c.paths[len(c.paths)-1]
	p0 := sp.pts[len(sp.pts)-1]

	polyLen := math.Hypot(x1-p0.x, y1-p0.y) + math.Hypot(x2-x1, y2-y1) + math.Hypot(x3-x2, y3-y2)
	steps := int(polyLen / 2)
	if steps < 8 {
		steps = 8
	} else if steps > 64 {
		steps = 64
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		mt := 1 - t
		a := mt * mt * mt
		b := 3 * mt * mt * t
		d := 3 * mt * t * t
		e := t * t * t
		x := a*p0.x + b*x1 + d*x2 + e*x3
		y := a*p0.y + b*y1 + d*y2 + e*y3
		sp.pts = append(sp.pts, pointf{x, y})
	}
}

func (c *Canvas) ClosePath() {
	if len(c.paths) == 0 {
		return
	}
	c.paths[len(c.paths)-1].closed = true
}

func (c *Canvas) Rectangle(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// Ellipse appends a closed polyline approximation of the ellipse centred at
// (cx, cy). The step count scales with the perimeter, as in a marching
// circle plot.
func (c *Canvas) Ellipse(cx, cy, rx, ry float64) {
	steps := int(math.Ceil(2 * math.Pi * math.Sqrt(rx*rx+ry*ry)))
	if steps < 8 {
		steps = 8
	} else if steps > 1024 {
		steps = 1024
	}
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + math.Cos(angle)*rx
		y := cy + math.Sin(angle)*ry
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.ClosePath()
}

// Stroke rasterizes the accumulated path with the current width, cap and
// color, then clears the path. The whole path is rendered into a coverage
// mask first and composited once, so a path overlapping itself never
// double-composites (which matters under the multiply operator).
func (c *Canvas) Stroke() {
	w := int(c.style.width + 0.5)
	if w < 1 {
		w = 1
	}
	mask := image.NewAlpha(c.dst.Bounds())
	for _, sp := range c.paths {
		if len(sp.pts) == 0 {
			continue
		}
		if len(sp.pts) == 1 {
			c.stamp(mask, round(sp.pts[0].x), round(sp.pts[0].y), w)
			continue
		}
		pts := sp.pts
		if sp.closed {
			pts = append(append([]pointf(nil), pts...), pts[0])
		}
		for i := 0; i+1 < len(pts); i++ {
			c.thickLine(mask,
				round(pts[i].x), round(pts[i].y),
				round(pts[i+1].x), round(pts[i+1].y), w)
		}
	}
	c.compositeMask(mask)
	c.paths = nil
}

// Fill rasterizes the accumulated path interior with even-odd scanline
// filling and clears the path. Open subpaths are treated as closed.
func (c *Canvas) Fill() {
	mask := image.NewAlpha(c.dst.Bounds())
	bounds := c.dst.Bounds()

	minY, maxY := bounds.Max.Y, bounds.Min.Y
	for _, sp := range c.paths {
		for _, p := range sp.pts {
			if int(math.Floor(p.y)) < minY {
				minY = int(math.Floor(p.y))
			}
			if int(math.Ceil(p.y)) > maxY {
				maxY = int(math.Ceil(p.y))
			}
		}
	}
	if minY < bounds.Min.Y {
		minY = bounds.Min.Y
	}
	if maxY > bounds.Max.Y {
		maxY = bounds.Max.Y
	}

	var xs []float64
	for y := minY; y < maxY; y++ {
		yc := float64(y) + 0.5
		xs = xs[:0]
		for _, sp := range c.paths {
			n := len(sp.pts)
			if n < 3 {
				continue
			}
			for i := 0; i < n; i++ {
				p1 := sp.pts[i]
				p2 := sp.pts[(i+1)%n]
				if (p1.y <= yc) == (p2.y <= yc) {
					continue
				}
				x := p1.x + (yc-p1.y)*(p2.x-p1.x)/(p2.y-p1.y)
				xs = append(xs, x)
			}
		}
		if len(xs) < 2 {
			continue
		}
		sortFloats(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Ceil(xs[i] - 0.5))
			x1 := int(math.Floor(xs[i+1] - 0.5))
			if x0 < bounds.Min.X {
				x0 = bounds.Min.X
			}
			if x1 >= bounds.Max.X {
				x1 = bounds.Max.X - 1
			}
			for x := x0; x <= x1; x++ {
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	c.compositeMask(mask)
	c.paths = nil
}

// DrawBuffer composites b at the view rectangle, rescaling when the buffer
// does not already match the destination size.
func (c *Canvas) DrawBuffer(b *pixbuf.Buffer, x, y, w, h float64) {
	r := image.Rect(round(x), round(y), round(x+w), round(y+h))
	src := b.RGBA()
	if src.Bounds().Dx() == r.Dx() && src.Bounds().Dy() == r.Dy() {
		draw.Draw(c.dst, r, src, src.Bounds().Min, draw.Over)
		return
	}
	xdraw.NearestNeighbor.Scale(c.dst, r, src, src.Bounds(), draw.Over, nil)
}

// thickLine walks the segment with Bresenham stepping and stamps the brush
// at every step.
func (c *Canvas) thickLine(mask *image.Alpha, x0, y0, x1, y1, w int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.stamp(mask, x0, y0, w)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// stamp marks the brush footprint in the coverage mask. Round caps use a
// disc footprint, butt caps a square one.
func (c *Canvas) stamp(mask *image.Alpha, x, y, w int) {
	r := w / 2
	if w == 1 {
		if image.Pt(x, y).In(mask.Bounds()) {
			mask.SetAlpha(x, y, color.Alpha{A: 0xff})
		}
		return
	}
	round := c.style.cap == annotate.CapRound
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if round && dx*dx+dy*dy > r*r {
				continue
			}
			px, py := x+dx, y+dy
			if image.Pt(px, py).In(mask.Bounds()) {
				mask.SetAlpha(px, py, color.Alpha{A: 0xff})
			}
		}
	}
}

// compositeMask applies the current color at every covered pixel using the
// current operator.
func (c *Canvas) compositeMask(mask *image.Alpha) {
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask.AlphaAt(x, y).A == 0 {
				continue
			}
			c.blendAt(x, y)
		}
	}
}

// blendAt combines the current color into dst at (x, y). Colors are treated
// as straight (non-premultiplied) RGBA.
func (c *Canvas) blendAt(x, y int) {
	d := c.dst.RGBAAt(x, y)
	s := c.style.col
	sa := uint32(s.A)
	ia := 255 - sa

	var sr, sg, sb uint32
	switch c.style.op {
	case annotate.OperatorMultiply:
		sr = uint32(s.R) * uint32(d.R) / 255
		sg = uint32(s.G) * uint32(d.G) / 255
		sb = uint32(s.B) * uint32(d.B) / 255
	default:
		sr, sg, sb = uint32(s.R), uint32(s.G), uint32(s.B)
	}

	out := color.RGBA{
		R: uint8((sr*sa + uint32(d.R)*ia) / 255),
		G: uint8((sg*sa + uint32(d.G)*ia) / 255),
		B: uint8((sb*sa + uint32(d.B)*ia) / 255),
		A: uint8(sa + uint32(d.A)*ia/255),
	}
	c.dst.SetRGBA(x, y, out)
}

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sortFloats is an insertion sort; scanline crossing lists are tiny.
func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
