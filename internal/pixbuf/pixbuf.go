// Package pixbuf provides a small RGBA pixel buffer with the operations the
// annotation layer needs: sub-region extraction, nearest-neighbor rescaling
// and reconstruction from raw bytes.
package pixbuf

import (
	"fmt"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// channels is the per-pixel byte count. Buffers are always stored RGBA.
const channels = 4

// Buffer is an owned RGBA pixel grid. The zero value is not usable; build
// one with FromImage or FromBytes.
type Buffer struct {
	img      *image.RGBA
	hasAlpha bool
}

// FromImage copies src into an owned buffer. The alpha flag is recorded from
// the source's opacity.
func FromImage(src image.Image) *Buffer {
	b := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return &Buffer{img: img, hasAlpha: !opaque(img)}
}

// FromBytes reconstructs a buffer from raw RGBA bytes. The last row may be
// short of the full stride as long as it covers width*4 bytes.
func FromBytes(pix []byte, w, h, stride int, hasAlpha bool) (*Buffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("pixbuf: invalid dimensions %dx%d", w, h)
	}
	if stride < w*channels {
		return nil, fmt.Errorf("pixbuf: stride %d shorter than row width %d", stride, w*channels)
	}
	need := stride*(h-1) + w*channels
	if len(pix) < need {
		return nil, fmt.Errorf("pixbuf: %d bytes supplied, need %d", len(pix), need)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+w*channels], pix[y*stride:y*stride+w*channels])
	}
	return &Buffer{img: img, hasAlpha: hasAlpha}, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.img.Bounds().Dx() }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.img.Bounds().Dy() }

// Stride returns the byte distance between rows.
func (b *Buffer) Stride() int { return b.img.Stride }

// Channels returns the per-pixel byte count.
func (b *Buffer) Channels() int { return channels }

// HasAlpha reports whether the buffer carries meaningful alpha.
func (b *Buffer) HasAlpha() bool { return b.hasAlpha }

// Bytes returns the backing pixel bytes. Callers must treat them as
// read-only; use FromBytes to build a modified buffer.
func (b *Buffer) Bytes() []byte { return b.img.Pix }

// RGBA returns the backing image.
func (b *Buffer) RGBA() *image.RGBA { return b.img }

// Sub extracts r as an owned copy. It fails when r is empty or reaches
// outside the buffer.
func (b *Buffer) Sub(r image.Rectangle) (*Buffer, error) {
	if r.Empty() {
		return nil, fmt.Errorf("pixbuf: empty sub-region %v", r)
	}
	if !r.In(b.img.Bounds()) {
		return nil, fmt.Errorf("pixbuf: sub-region %v outside %v", r, b.img.Bounds())
	}
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), b.img, r.Min, draw.Src)
	return &Buffer{img: out, hasAlpha: b.hasAlpha}, nil
}

// ScaleNearest resizes the buffer to w×h with nearest-neighbor sampling.
// Dimensions below 1 are clamped to 1.
func (b *Buffer) ScaleNearest(w, h int) *Buffer {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), b.img, b.img.Bounds(), draw.Src, nil)
	return &Buffer{img: out, hasAlpha: b.hasAlpha}
}

func opaque(img *image.RGBA) bool {
	for i := 3; i < len(img.Pix); i += channels {
		if img.Pix[i] != 0xff {
			return false
		}
	}
	return true
}
