// Package export writes rendered images to their output formats.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PNG encodes img to w.
func PNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// PDF writes img to w as a single-page PDF whose page matches the image
// dimensions in points.
func PDF(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	width := float64(bounds.Dx())
	height := float64(bounds.Dy())
	if width <= 0 || height <= 0 {
		return fmt.Errorf("export: image has no pixels")
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("annotated", opts, &buf)
	pdf.ImageOptions("annotated", 0, 0, width, height, false, opts, 0, "")

	return pdf.Output(w)
}

// ToFile writes img to path, choosing the format from the file extension.
// Supported extensions are .png and .pdf.
func ToFile(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	var encode func(io.Writer, image.Image) error
	switch ext {
	case ".png":
		encode = PNG
	case ".pdf":
		encode = PDF
	default:
		return fmt.Errorf("export: unsupported output format %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}
