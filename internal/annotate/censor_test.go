package annotate

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/example/pixmark/internal/pixbuf"
)

func testBackground(w, h int) *pixbuf.Buffer {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: uint8(x ^ y), A: 255})
		}
	}
	return pixbuf.FromImage(img)
}

func TestCensorPixelatesRegion(t *testing.T) {
	a := NewCensor(Point{X: 0.1, Y: 0.1}, Point{X: 0.5, Y: 0.5}, testBackground(10, 10), DefaultOptions())
	s := newFakeSurface()
	a.Draw(s, viewScale(100), 1)

	op, ok := s.find("DrawBuffer")
	if !ok {
		t.Fatalf("no buffer composited: %v", s.names())
	}
	if op.args[0] != 10 || op.args[1] != 10 || op.args[2] != 40 || op.args[3] != 40 {
		t.Fatalf("destination rect = %v, want (10,10,40,40)", op.args)
	}
	if len(s.buffers) != 1 {
		t.Fatalf("buffers = %d", len(s.buffers))
	}
	if s.buffers[0].Width() != 40 || s.buffers[0].Height() != 40 {
		t.Fatalf("upsampled buffer is %dx%d, want 40x40", s.buffers[0].Width(), s.buffers[0].Height())
	}
}

func TestCensorNilBackgroundFallback(t *testing.T) {
	a := NewCensor(Point{X: 0.1, Y: 0.1}, Point{X: 0.5, Y: 0.5}, nil, DefaultOptions())
	s := newFakeSurface()
	a.Draw(s, viewScale(100), 1)

	if s.count("Rectangle") != 1 || s.count("Fill") != 1 {
		t.Fatalf("expected flat rect fallback, got %v", s.names())
	}
	want := color.RGBA{R: 128, G: 128, B: 128, A: 204}
	if s.colors[0] != want {
		t.Fatalf("fallback color = %v, want %v", s.colors[0], want)
	}
}

func TestCensorSubPixelRegionDrawsNothing(t *testing.T) {
	a := NewCensor(Point{X: 0.5, Y: 0.1}, Point{X: 0.502, Y: 0.9}, testBackground(10, 10), DefaultOptions())
	s := newFakeSurface()
	// 0.002 normalized is 0.2 view pixels wide.
	a.Draw(s, viewScale(100), 1)
	if len(s.ops) != 0 {
		t.Fatalf("sub-pixel region should not draw, got %v", s.names())
	}
}

func TestCensorOutOfRangeCornersClamp(t *testing.T) {
	a := NewCensor(Point{X: -0.5, Y: -0.5}, Point{X: 1.5, Y: 1.5}, testBackground(10, 10), DefaultOptions())
	s := newFakeSurface()
	a.Draw(s, viewScale(100), 1)
	if s.count("DrawBuffer") != 1 {
		t.Fatalf("clamped censor should still draw, got %v", s.names())
	}
}

func TestCensorEntirelyOutsideStillOnePixel(t *testing.T) {
	// Both corners clamp to the same edge pixel; the crop degrades to a
	// single pixel rather than failing.
	a := NewCensor(Point{X: 2, Y: 2}, Point{X: 3, Y: 3}, testBackground(10, 10), DefaultOptions())
	s := newFakeSurface()
	a.Draw(s, viewScale(100), 1)
	if s.count("DrawBuffer") != 1 {
		t.Fatalf("fully out-of-range censor should clamp and draw, got %v", s.names())
	}
}

func TestCensorSetBackgroundRebinds(t *testing.T) {
	a := NewCensor(Point{X: 0.1, Y: 0.1}, Point{X: 0.5, Y: 0.5}, nil, DefaultOptions())
	a.SetBackground(testBackground(10, 10))
	s := newFakeSurface()
	a.Draw(s, viewScale(100), 1)
	if s.count("DrawBuffer") != 1 {
		t.Fatalf("rebound background should pixelate, got %v", s.names())
	}
}

func TestCensorLevelClampedToOne(t *testing.T) {
	opts := DefaultOptions()
	opts.PixelationLevel = 0
	a := NewCensor(Point{X: 0, Y: 0}, Point{X: 1, Y: 1}, testBackground(8, 8), opts)
	s := newFakeSurface()
	a.Draw(s, viewScale(100), 1)
	if s.count("DrawBuffer") != 1 {
		t.Fatalf("level 0 must clamp to 1 and still draw, got %v", s.names())
	}
}

func TestRandomizePixelsDeterministic(t *testing.T) {
	src := testBackground(6, 6)

	r1, err := randomizePixels(src)
	if err != nil {
		t.Fatalf("randomize failed: %v", err)
	}
	r2, err := randomizePixels(src)
	if err != nil {
		t.Fatalf("randomize failed: %v", err)
	}
	if !bytes.Equal(r1.Bytes(), r2.Bytes()) {
		t.Fatal("same input must scramble identically across calls")
	}
}

func TestRandomizePixelsPreservesContent(t *testing.T) {
	src := testBackground(6, 6)
	out, err := randomizePixels(src)
	if err != nil {
		t.Fatalf("randomize failed: %v", err)
	}
	// Swaps only move pixels; channel sums are invariant.
	var sumIn, sumOut int
	for _, v := range src.Bytes() {
		sumIn += int(v)
	}
	for _, v := range out.Bytes() {
		sumOut += int(v)
	}
	if sumIn != sumOut {
		t.Fatalf("pixel content changed: sum %d -> %d", sumIn, sumOut)
	}
	if out == src {
		t.Fatal("randomize must not mutate its input in place")
	}
}

func TestCensorBoundsAndHit(t *testing.T) {
	a := NewCensor(Point{X: 0.6, Y: 0.2}, Point{X: 0.2, Y: 0.6}, nil, DefaultOptions())
	b := a.Bounds()
	if b.MinX != 0.2-DefaultPadding || b.MaxX != 0.6+DefaultPadding {
		t.Fatalf("bounds = %+v", b)
	}
	if !a.ContainsPoint(0.4, 0.4) {
		t.Error("interior should hit")
	}
	if a.ContainsPoint(0.7, 0.7) {
		t.Error("outside should miss")
	}
}
