package annotate

import (
	"image/color"
	"strings"

	"github.com/google/uuid"
)

// Background pill padding around text, in view pixels. Intentionally not
// scaled so the pill keeps a constant margin at every zoom level.
const (
	textPadX = 4
	textPadY = 2
)

// Text is a committed text label. The anchor is the horizontal center at the
// text's bottom edge. Bounds are measured at the image-native font size
// against the reference image dimensions so they do not move with zoom.
type Text struct {
	id       string
	position Point
	text     string
	refW     int
	refH     int
	measurer TextMeasurer
	color    color.RGBA
	fontSize float64
	family   string
	fill     *color.RGBA
}

// NewText builds a text label from a committed text entry. imgW and imgH are
// the underlying image's pixel dimensions; m supplies text measurement for
// bounds computation.
func NewText(position Point, text string, imgW, imgH int, m TextMeasurer, opts Options) *Text {
	return &Text{
		id:       uuid.NewString(),
		position: position,
		text:     text,
		refW:     imgW,
		refH:     imgH,
		measurer: m,
		color:    opts.PenColor,
		fontSize: opts.FontSize,
		family:   opts.FontFamily,
		fill:     cloneColor(opts.FillColor),
	}
}

func (a *Text) ID() string { return a.id }

func (a *Text) Mode() Mode { return ModeText }

// Draw paints the optional background pill and then the glyphs. Empty or
// whitespace-only text renders nothing.
func (a *Text) Draw(s Surface, toView Transform, scale float64) {
	if strings.TrimSpace(a.text) == "" {
		return
	}
	x, y := toView(a.position.X, a.position.Y)
	f := Font{Family: a.family, Size: a.fontSize * scale}
	w, h := s.MeasureText(a.text, f)
	tx := x - w/2
	ty := y - h

	if a.fill != nil && a.fill.A > 0 {
		s.SetColor(*a.fill)
		s.Rectangle(tx-textPadX, ty-textPadY, w+2*textPadX, h+2*textPadY)
		s.Fill()
	}

	s.SetColor(a.color)
	s.FillText(a.text, tx, ty, f)
}

// Bounds measures the text at the image-native font size and divides by the
// reference dimensions, keeping the box independent of the current zoom.
// Empty text reports a zero-area box at the anchor.
func (a *Text) Bounds() Box {
	if strings.TrimSpace(a.text) == "" || a.measurer == nil || a.refW <= 0 || a.refH <= 0 {
		return Box{MinX: a.position.X, MinY: a.position.Y, MaxX: a.position.X, MaxY: a.position.Y}
	}
	wpx, hpx := a.measurer.MeasureText(a.text, Font{Family: a.family, Size: a.fontSize})
	w := wpx / float64(a.refW)
	h := hpx / float64(a.refH)
	padX := textPadX / float64(a.refW)
	padY := textPadY / float64(a.refH)

	x, y := a.position.X, a.position.Y
	return PadBounds(Box{
		MinX: x - w/2 - padX,
		MinY: y - h - padY,
		MaxX: x + w/2 + padX,
		MaxY: y + padY,
	}, 0)
}

func (a *Text) ContainsPoint(x, y float64) bool {
	return a.Bounds().Contains(x, y)
}

func (a *Text) Translate(dx, dy float64) {
	a.position.X += dx
	a.position.Y += dy
}
