package annotate

import (
	"image"
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/example/pixmark/internal/pixbuf"
)

// randomizeSeed fixes the pixel-swap generator so censored output is
// reproducible across runs and across interleaved censor actions.
const randomizeSeed = 42

// swapChance is the per-pixel probability of swapping with a neighbor.
const swapChance = 0.3

// Censor pixelates the rectangle it covers. It reads from a background
// snapshot of the underlying image; the snapshot may be bound after
// construction since it can be produced lazily by the host. Pixelation is
// best-effort: any crop or buffer failure logs and skips the draw rather
// than corrupting the paint cycle.
type Censor struct {
	id         string
	start      Point
	end        Point
	level      int
	background *pixbuf.Buffer
}

// NewCensor builds a censor over the gesture's corner box. background may be
// nil; until one is bound the censor draws a flat translucent gray.
func NewCensor(start, end Point, background *pixbuf.Buffer, opts Options) *Censor {
	level := opts.PixelationLevel
	if level < 1 {
		level = 1
	}
	return &Censor{
		id:         uuid.NewString(),
		start:      start,
		end:        end,
		level:      level,
		background: background,
	}
}

func (a *Censor) ID() string { return a.id }

func (a *Censor) Mode() Mode { return ModeCensor }

// SetBackground atomically rebinds the background snapshot. The buffer is
// borrowed read-only; pixelation always works on copies.
func (a *Censor) SetBackground(b *pixbuf.Buffer) {
	a.background = b
}

// Draw runs the pixelation pipeline: crop the covered region out of the
// background, downsample it by the pixelation level, scramble the small
// buffer with seeded neighbor swaps, upsample back to the destination size
// and composite.
func (a *Censor) Draw(s Surface, toView Transform, scale float64) {
	x, y, w, h, ok := a.viewRect(toView)
	if !ok {
		return
	}
	if a.background == nil {
		s.SetColor(color.RGBA{R: 128, G: 128, B: 128, A: 204})
		s.Rectangle(x, y, w, h)
		s.Fill()
		return
	}

	crop, ok := a.cropRegion()
	if !ok {
		return
	}
	sub, err := a.background.Sub(crop)
	if err != nil {
		log.Printf("censor: crop failed: %v", err)
		return
	}

	small := sub.ScaleNearest(sub.Width()/a.level, sub.Height()/a.level)
	randomized, err := randomizePixels(small)
	if err != nil {
		log.Printf("censor: randomize failed: %v", err)
		return
	}
	pixelated := randomized.ScaleNearest(int(w), int(h))
	s.DrawBuffer(pixelated, x, y, w, h)
}

// viewRect returns the destination rectangle in view pixels, or ok=false
// when either dimension is under one pixel.
func (a *Censor) viewRect(toView Transform) (x, y, w, h float64, ok bool) {
	x1, y1 := toView(a.start.X, a.start.Y)
	x2, y2 := toView(a.end.X, a.end.Y)
	x = math.Min(x1, x2)
	y = math.Min(y1, y2)
	w = math.Abs(x2 - x1)
	h = math.Abs(y2 - y1)
	if w < 1 || h < 1 {
		return 0, 0, 0, 0, false
	}
	return x, y, w, h, true
}

// cropRegion maps the normalized corners into background pixel coordinates.
// Both corners clamp independently into the buffer before sorting, and the
// extent is inclusive, so even a selection entirely outside the buffer
// yields a one-pixel crop instead of failing.
func (a *Censor) cropRegion() (image.Rectangle, bool) {
	w, h := a.background.Width(), a.background.Height()
	x1 := clampInt(int(a.start.X*float64(w)), 0, w-1)
	x2 := clampInt(int(a.end.X*float64(w)), 0, w-1)
	y1 := clampInt(int(a.start.Y*float64(h)), 0, h-1)
	y2 := clampInt(int(a.end.Y*float64(h)), 0, h-1)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	cw, ch := x2-x1+1, y2-y1+1
	if cw <= 0 || ch <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(x1, y1, x1+cw, y1+ch), true
}

func (a *Censor) Bounds() Box {
	return PadBounds(cornerBounds(a.start, a.end), 0)
}

func (a *Censor) ContainsPoint(x, y float64) bool {
	return a.Bounds().Contains(x, y)
}

func (a *Censor) Translate(dx, dy float64) {
	a.start.X += dx
	a.start.Y += dy
	a.end.X += dx
	a.end.Y += dy
}

// randomizePixels swaps each pixel with a random in-bounds neighbor at
// swapChance probability, scrambling exact placement while preserving block
// color statistics. The generator is local and re-seeded per call so
// concurrent censor draws stay deterministic and mutually non-interfering.
func randomizePixels(b *pixbuf.Buffer) (*pixbuf.Buffer, error) {
	pix := append([]byte(nil), b.Bytes()...)
	w, h := b.Width(), b.Height()
	stride, ch := b.Stride(), b.Channels()
	offsets := [8][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	rng := rand.New(rand.NewSource(randomizeSeed))

	var neighbors [8][2]int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() >= swapChance {
				continue
			}
			n := 0
			for _, off := range offsets {
				nx, ny := x+off[0], y+off[1]
				if nx >= 0 && nx < w && ny >= 0 && ny < h {
					neighbors[n] = [2]int{nx, ny}
					n++
				}
			}
			if n == 0 {
				continue
			}
			pick := neighbors[rng.Intn(n)]
			i1 := y*stride + x*ch
			i2 := pick[1]*stride + pick[0]*ch
			for c := 0; c < ch; c++ {
				pix[i1+c], pix[i2+c] = pix[i2+c], pix[i1+c]
			}
		}
	}
	return pixbuf.FromBytes(pix, w, h, stride, b.HasAlpha())
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
