package annotate

import (
	"image/color"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NumberStamp is a filled circle with an integer label, used for step-by-step
// callouts. The radius is stored in view pixels and scaled at draw time.
//
// Hit testing and bounds use radius/1000 as a normalized-space approximation
// of the drawn radius. The units do not match the draw-time radius×scale;
// this is long-standing observable behavior and is kept as is.
type NumberStamp struct {
	id       string
	position Point
	number   int
	radius   float64
	fill     color.RGBA
	textCol  color.RGBA
	created  time.Time
}

// NewNumberStamp builds a numbered stamp at the click position.
func NewNumberStamp(position Point, number int, opts Options) *NumberStamp {
	fill := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if opts.FillColor != nil {
		fill = *opts.FillColor
	}
	return &NumberStamp{
		id:       uuid.NewString(),
		position: position,
		number:   number,
		radius:   opts.NumberRadius,
		fill:     fill,
		textCol:  opts.PenColor,
		created:  time.Now(),
	}
}

func (a *NumberStamp) ID() string { return a.id }

func (a *NumberStamp) Mode() Mode { return ModeNumber }

// Number returns the stamp's label value.
func (a *NumberStamp) Number() int { return a.number }

// CreatedAt returns when the stamp was placed. Informational only.
func (a *NumberStamp) CreatedAt() time.Time { return a.created }

// Draw paints the filled circle and centers the bold label inside it.
func (a *NumberStamp) Draw(s Surface, toView Transform, scale float64) {
	x, y := toView(a.position.X, a.position.Y)
	r := a.radius * scale

	s.SetColor(a.fill)
	s.Ellipse(x, y, r, r)
	s.Fill()

	s.SetColor(a.textCol)
	f := Font{Family: "Sans", Size: r * 1.2, Bold: true}
	label := strconv.Itoa(a.number)
	w, h := s.MeasureText(label, f)
	s.FillText(label, x-w/2, y-h/2, f)
}

// ContainsPoint tests against the unpadded radius/1000 circle.
func (a *NumberStamp) ContainsPoint(px, py float64) bool {
	r := a.radius / 1000
	return math.Hypot(px-a.position.X, py-a.position.Y) <= r
}

func (a *NumberStamp) Bounds() Box {
	r := a.radius / 1000
	x, y := a.position.X, a.position.Y
	return PadBounds(Box{MinX: x - r, MinY: y - r, MaxX: x + r, MaxY: y + r}, 0)
}

func (a *NumberStamp) Translate(dx, dy float64) {
	a.position.X += dx
	a.position.Y += dy
}
