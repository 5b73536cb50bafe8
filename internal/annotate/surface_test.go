package annotate

import (
	"image/color"

	"github.com/example/pixmark/internal/pixbuf"
)

// fakeSurface records every drawing call so tests can assert on emitted
// geometry without rasterizing anything. Text measures as charW per rune by
// lineH high.
type surfaceOp struct {
	name string
	args []float64
}

type fakeSurface struct {
	ops      []surfaceOp
	colors   []color.RGBA
	buffers  []*pixbuf.Buffer
	operator Operator
	lineCap  LineCap
	lineJoin LineJoin
	width    float64
	charW    float64
	lineH    float64
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{charW: 10, lineH: 20}
}

func (f *fakeSurface) rec(name string, args ...float64) {
	f.ops = append(f.ops, surfaceOp{name: name, args: args})
}

func (f *fakeSurface) MoveTo(x, y float64) { f.rec("MoveTo", x, y) }
func (f *fakeSurface) LineTo(x, y float64) { f.rec("LineTo", x, y) }
func (f *fakeSurface) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	f.rec("CurveTo", x1, y1, x2, y2, x3, y3)
}
func (f *fakeSurface) ClosePath() { f.rec("ClosePath") }
func (f *fakeSurface) Rectangle(x, y, w, h float64) {
	f.rec("Rectangle", x, y, w, h)
}
func (f *fakeSurface) Ellipse(cx, cy, rx, ry float64) {
	f.rec("Ellipse", cx, cy, rx, ry)
}

func (f *fakeSurface) SetColor(c color.RGBA) {
	f.colors = append(f.colors, c)
	f.rec("SetColor")
}
func (f *fakeSurface) SetLineWidth(w float64) {
	f.width = w
	f.rec("SetLineWidth", w)
}
func (f *fakeSurface) SetLineCap(c LineCap) {
	f.lineCap = c
	f.rec("SetLineCap", float64(c))
}
func (f *fakeSurface) SetLineJoin(j LineJoin) {
	f.lineJoin = j
	f.rec("SetLineJoin", float64(j))
}
func (f *fakeSurface) SetOperator(op Operator) {
	f.operator = op
	f.rec("SetOperator", float64(op))
}
func (f *fakeSurface) Save()    { f.rec("Save") }
func (f *fakeSurface) Restore() { f.rec("Restore") }

func (f *fakeSurface) Stroke() { f.rec("Stroke") }
func (f *fakeSurface) Fill()   { f.rec("Fill") }

func (f *fakeSurface) DrawBuffer(b *pixbuf.Buffer, x, y, w, h float64) {
	f.buffers = append(f.buffers, b)
	f.rec("DrawBuffer", x, y, w, h)
}

func (f *fakeSurface) MeasureText(text string, _ Font) (w, h float64) {
	return float64(len([]rune(text))) * f.charW, f.lineH
}

func (f *fakeSurface) FillText(text string, x, y float64, _ Font) {
	f.rec("FillText", x, y)
}

func (f *fakeSurface) count(name string) int {
	n := 0
	for _, op := range f.ops {
		if op.name == name {
			n++
		}
	}
	return n
}

func (f *fakeSurface) names() []string {
	out := make([]string, len(f.ops))
	for i, op := range f.ops {
		out[i] = op.name
	}
	return out
}

func (f *fakeSurface) find(name string) (surfaceOp, bool) {
	for _, op := range f.ops {
		if op.name == name {
			return op, true
		}
	}
	return surfaceOp{}, false
}

// identity maps normalized coordinates straight through.
func identity(x, y float64) (float64, float64) { return x, y }

// viewScale returns a transform that multiplies both axes by k.
func viewScale(k float64) Transform {
	return func(x, y float64) (float64, float64) { return x * k, y * k }
}

var _ Surface = (*fakeSurface)(nil)
