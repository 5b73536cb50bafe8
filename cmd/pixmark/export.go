package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/pixmark/internal/clipboard"
	"github.com/example/pixmark/internal/export"
)

// exportCmd converts an annotated image into a document format.
type exportCmd struct {
	file          string
	output        string
	fromClipboard bool
	*root
	fs *flag.FlagSet
}

func (e *exportCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func parseExportCmd(args []string, r *root) (*exportCmd, error) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	e := &exportCmd{root: r, fs: fs}
	fs.Usage = usageFunc(e)
	fs.StringVar(&e.file, "file", "", "input image file")
	fs.StringVar(&e.output, "output", "", "output document path (.pdf or .png)")
	fs.BoolVar(&e.fromClipboard, "from-clipboard", false, "read the input image from the clipboard")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if e.file == "" && !e.fromClipboard {
		return nil, fmt.Errorf("input file is required")
	}
	if e.output == "" {
		if e.file == "" {
			return nil, fmt.Errorf("output file is required when reading from the clipboard")
		}
		ext := filepath.Ext(e.file)
		e.output = strings.TrimSuffix(e.file, ext) + ".pdf"
	}
	return e, nil
}

func (e *exportCmd) Run() error {
	img, err := e.loadSource()
	if err != nil {
		return err
	}
	if err := export.ToFile(e.output, img); err != nil {
		return err
	}
	saved := e.output
	if abs, err := filepath.Abs(e.output); err == nil {
		saved = abs
	}
	fmt.Fprintf(os.Stderr, "exported %s\n", saved)
	if e.root != nil {
		e.root.notifyExport(saved)
	}
	return nil
}

func (e *exportCmd) loadSource() (image.Image, error) {
	if e.fromClipboard {
		img, err := clipboard.ReadImage()
		if err != nil {
			return nil, fmt.Errorf("read clipboard image: %w", err)
		}
		return img, nil
	}
	f, err := os.Open(e.file)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Printf("error closing %q: %v", f.Name(), cerr)
		}
	}()
	return png.Decode(f)
}
