package pixbuf

import (
	"image"
	"image/color"
	"testing"
)

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func TestFromImageCopies(t *testing.T) {
	src := gradient(4, 4)
	b := FromImage(src)
	src.SetRGBA(0, 0, color.RGBA{R: 200, A: 255})
	if b.RGBA().RGBAAt(0, 0).R == 200 {
		t.Fatal("buffer aliased the source image")
	}
	if b.Width() != 4 || b.Height() != 4 || b.Channels() != 4 {
		t.Fatalf("dims = %dx%dx%d", b.Width(), b.Height(), b.Channels())
	}
}

func TestFromImageAlphaDetection(t *testing.T) {
	opaque := FromImage(gradient(2, 2))
	if opaque.HasAlpha() {
		t.Fatal("fully opaque image should report no alpha")
	}
	img := gradient(2, 2)
	img.SetRGBA(1, 1, color.RGBA{R: 5, A: 100})
	if !FromImage(img).HasAlpha() {
		t.Fatal("translucent pixel should set hasAlpha")
	}
}

func TestFromBytesValidation(t *testing.T) {
	if _, err := FromBytes(make([]byte, 3), 2, 2, 8, false); err == nil {
		t.Fatal("short pixel slice should error")
	}
	if _, err := FromBytes(make([]byte, 32), 2, 2, 4, false); err == nil {
		t.Fatal("stride below row width should error")
	}
	b, err := FromBytes(make([]byte, 32), 2, 2, 8, true)
	if err != nil {
		t.Fatalf("valid construction failed: %v", err)
	}
	if !b.HasAlpha() {
		t.Fatal("hasAlpha not carried")
	}
}

func TestFromBytesOwnsPixels(t *testing.T) {
	pix := make([]byte, 16)
	pix[0] = 7
	b, err := FromBytes(pix, 2, 2, 8, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pix[0] = 99
	if b.Bytes()[0] != 7 {
		t.Fatal("buffer aliased the caller's bytes")
	}
}

func TestSubRegion(t *testing.T) {
	b := FromImage(gradient(8, 8))
	sub, err := b.Sub(image.Rect(2, 3, 6, 7))
	if err != nil {
		t.Fatalf("sub failed: %v", err)
	}
	if sub.Width() != 4 || sub.Height() != 4 {
		t.Fatalf("sub dims = %dx%d", sub.Width(), sub.Height())
	}
	got := sub.RGBA().RGBAAt(0, 0)
	if got.R != 2 || got.G != 3 {
		t.Fatalf("sub origin pixel = %v, want source (2,3)", got)
	}
}

func TestSubOutOfBounds(t *testing.T) {
	b := FromImage(gradient(4, 4))
	if _, err := b.Sub(image.Rect(2, 2, 6, 6)); err == nil {
		t.Fatal("out-of-bounds crop should error")
	}
	if _, err := b.Sub(image.Rect(3, 3, 3, 3)); err == nil {
		t.Fatal("empty crop should error")
	}
}

func TestSubIsACopy(t *testing.T) {
	b := FromImage(gradient(4, 4))
	sub, err := b.Sub(image.Rect(0, 0, 2, 2))
	if err != nil {
		t.Fatalf("sub failed: %v", err)
	}
	sub.RGBA().SetRGBA(0, 0, color.RGBA{R: 250, A: 255})
	if b.RGBA().RGBAAt(0, 0).R == 250 {
		t.Fatal("sub wrote through to the parent")
	}
}

func TestScaleNearest(t *testing.T) {
	b := FromImage(gradient(8, 8))
	small := b.ScaleNearest(2, 2)
	if small.Width() != 2 || small.Height() != 2 {
		t.Fatalf("dims = %dx%d", small.Width(), small.Height())
	}
	big := small.ScaleNearest(8, 8)
	if big.Width() != 8 || big.Height() != 8 {
		t.Fatalf("dims = %dx%d", big.Width(), big.Height())
	}
	// Nearest-neighbor upsample of a 2x2 produces constant 4x4 blocks.
	c00 := big.RGBA().RGBAAt(0, 0)
	c33 := big.RGBA().RGBAAt(3, 3)
	if c00 != c33 {
		t.Fatalf("block not constant: %v vs %v", c00, c33)
	}
}

func TestScaleNearestClampsToOnePixel(t *testing.T) {
	b := FromImage(gradient(4, 4))
	tiny := b.ScaleNearest(0, -3)
	if tiny.Width() != 1 || tiny.Height() != 1 {
		t.Fatalf("dims = %dx%d, want 1x1", tiny.Width(), tiny.Height())
	}
}
