package raster

import (
	"image"
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/example/pixmark/internal/annotate"
)

var (
	fontOnce    sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font
	fontErr     error
)

type faceKey struct {
	size float64
	bold bool
}

var faceCache sync.Map // map[faceKey]font.Face

func loadFonts() {
	regularFont, fontErr = opentype.Parse(goregular.TTF)
	if fontErr != nil {
		return
	}
	boldFont, fontErr = opentype.Parse(gobold.TTF)
}

// faceFor returns a cached face for the font. Every family maps onto the
// embedded Go fonts; Bold selects the bold face.
func faceFor(f annotate.Font) (font.Face, error) {
	fontOnce.Do(loadFonts)
	if fontErr != nil {
		return nil, fontErr
	}
	size := f.Size
	if size <= 0 {
		size = 12
	}
	key := faceKey{size: size, bold: f.Bold}
	if cached, ok := faceCache.Load(key); ok {
		return cached.(font.Face), nil
	}
	src := regularFont
	if f.Bold {
		src = boldFont
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	faceCache.Store(key, face)
	return face, nil
}

// MeasureText returns the pixel extent of text laid out with f. The width is
// the advance of the string, the height the face's ascent plus descent.
func (c *Canvas) MeasureText(text string, f annotate.Font) (w, h float64) {
	face, err := faceFor(f)
	if err != nil {
		log.Printf("raster: font face: %v", err)
		return 0, 0
	}
	drawer := &font.Drawer{Face: face}
	width := drawer.MeasureString(text).Ceil()
	metrics := face.Metrics()
	height := metrics.Ascent.Ceil() + metrics.Descent.Ceil()
	return float64(width), float64(height)
}

// FillText paints text with its top-left corner at (x, y) in the current
// color.
func (c *Canvas) FillText(text string, x, y float64, f annotate.Font) {
	face, err := faceFor(f)
	if err != nil {
		log.Printf("raster: font face: %v", err)
		return
	}
	baseline := round(y) + face.Metrics().Ascent.Ceil()
	drawer := &font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(c.style.col),
		Face: face,
		Dot:  fixed.P(round(x), baseline),
	}
	drawer.DrawString(text)
}
