package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/pixmark/internal/annotate"
	"github.com/example/pixmark/internal/clipboard"
	"github.com/example/pixmark/internal/export"
	"github.com/example/pixmark/internal/palette"
	"github.com/example/pixmark/internal/pixbuf"
	"github.com/example/pixmark/internal/raster"
)

// drawCmd renders a single annotation onto an image. Coordinates on the
// command line are view pixels of the input image and are normalized against
// its dimensions before the action is built.
type drawCmd struct {
	file          string
	output        string
	fromClipboard bool
	toClipboard   bool
	colorSpec     string
	fillSpec      string
	opts          annotate.Options
	shape         string
	coords        []float64
	text          string
	number        int
	*root
	fs *flag.FlagSet
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r, fs: fs, opts: r.drawDefaults()}
	fs.Usage = usageFunc(d)
	fs.StringVar(&d.file, "file", "", "input image file")
	fs.StringVar(&d.output, "output", "", "output file path (defaults to input file)")
	fs.BoolVar(&d.fromClipboard, "from-clipboard", false, "read the input image from the clipboard")
	fs.BoolVar(&d.fromClipboard, "from-clip", false, "read the input image from the clipboard (alias)")
	fs.BoolVar(&d.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&d.toClipboard, "to-clip", false, "copy the result to the clipboard (alias)")
	fs.StringVar(&d.colorSpec, "color", "", "stroke color name or hex value")
	fs.StringVar(&d.fillSpec, "fill", "", "fill color name, hex value, or none")
	fs.Float64Var(&d.opts.PenSize, "width", d.opts.PenSize, "stroke width in pixels")
	fs.Float64Var(&d.opts.FontSize, "font-size", d.opts.FontSize, "text size in points")
	fs.Float64Var(&d.opts.HighlighterSize, "highlight-width", d.opts.HighlighterSize, "highlighter width in pixels")
	fs.Float64Var(&d.opts.ArrowHeadSize, "arrow-head", d.opts.ArrowHeadSize, "arrow head size in pixels")
	fs.IntVar(&d.opts.PixelationLevel, "pixelation", d.opts.PixelationLevel, "censor pixelation block factor")
	fs.Float64Var(&d.opts.NumberRadius, "number-size", d.opts.NumberRadius, "radius of numbered markers in pixels")

	flagArgs, positionals, err := splitDrawArgs(args)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if len(positionals) < 1 {
		return nil, &UsageError{of: d}
	}
	d.shape = strings.ToLower(positionals[0])
	remaining := positionals[1:]
	switch d.shape {
	case "pen", "highlight":
		d.coords, err = expectFloats(remaining, -1, d.shape)
		if err == nil && (len(d.coords) < 4 || len(d.coords)%2 != 0) {
			err = fmt.Errorf("%s requires an even number of coordinates, at least two points", d.shape)
		}
	case "line", "arrow", "rect", "circle", "censor":
		d.coords, err = expectFloats(remaining, 4, d.shape)
	case "number":
		if len(remaining) != 3 {
			return nil, fmt.Errorf("number requires x y value")
		}
		d.coords, err = expectFloats(remaining[:2], 2, d.shape)
		if err != nil {
			return nil, err
		}
		d.number, err = strconv.Atoi(remaining[2])
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", remaining[2])
		}
	case "text":
		if len(remaining) < 3 {
			return nil, fmt.Errorf("text requires x y and content")
		}
		d.coords, err = expectFloats(remaining[:2], 2, d.shape)
		if err != nil {
			return nil, err
		}
		d.text = strings.Join(remaining[2:], " ")
		if strings.TrimSpace(d.text) == "" {
			return nil, fmt.Errorf("text content cannot be empty")
		}
	default:
		return nil, fmt.Errorf("unsupported shape %q", d.shape)
	}
	if err != nil {
		return nil, err
	}
	if d.colorSpec != "" {
		c, err := palette.Parse(d.colorSpec)
		if err != nil {
			return nil, err
		}
		if d.shape == "highlight" {
			d.opts.HighlighterColor = c
		} else {
			d.opts.PenColor = c
		}
	}
	if d.fillSpec != "" {
		if strings.EqualFold(d.fillSpec, "none") {
			d.opts.FillColor = nil
		} else {
			c, err := palette.Parse(d.fillSpec)
			if err != nil {
				return nil, err
			}
			d.opts.FillColor = &c
		}
	}
	if d.fromClipboard {
		if d.output == "" {
			if d.file != "" {
				d.output = d.file
			} else {
				return nil, fmt.Errorf("output file is required when reading from the clipboard")
			}
		}
	} else {
		if d.file == "" {
			return nil, fmt.Errorf("input file is required")
		}
		if d.output == "" {
			d.output = d.file
		}
	}
	if d.opts.PenSize < 1 {
		d.opts.PenSize = 1
	}
	if d.opts.FontSize <= 0 {
		d.opts.FontSize = annotate.DefaultOptions().FontSize
	}
	if d.opts.NumberRadius <= 0 {
		d.opts.NumberRadius = annotate.DefaultOptions().NumberRadius
	}
	return d, nil
}

func (d *drawCmd) Run() error {
	src, err := d.loadSource()
	if err != nil {
		return err
	}
	rgba := image.NewRGBA(src.Bounds().Sub(src.Bounds().Min))
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)

	width := rgba.Bounds().Dx()
	height := rgba.Bounds().Dy()
	if width < 1 || height < 1 {
		return fmt.Errorf("input image has no pixels")
	}

	canvas := raster.New(rgba)
	action, err := d.buildAction(rgba, canvas)
	if err != nil {
		return err
	}

	stack := annotate.NewStack()
	stack.Push(action)
	toView := func(nx, ny float64) (float64, float64) {
		return nx * float64(width), ny * float64(height)
	}
	stack.Draw(canvas, toView, 1)

	if err := export.ToFile(d.output, rgba); err != nil {
		return err
	}
	saved := d.output
	if abs, err := filepath.Abs(d.output); err == nil {
		saved = abs
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", saved)
	if d.root != nil {
		d.root.notifySave(saved)
	}
	if d.toClipboard {
		if err := clipboard.WriteImage(rgba); err != nil {
			return fmt.Errorf("copy PNG to clipboard: %w", err)
		}
		detail := filepath.Base(d.output)
		if detail == "" {
			detail = "image"
		}
		fmt.Fprintf(os.Stderr, "copied %s to clipboard\n", detail)
		if d.root != nil {
			d.root.notifyCopy(detail)
		}
	}
	return nil
}

// buildAction normalizes the pixel coordinates against the image dimensions
// and constructs the annotation.
func (d *drawCmd) buildAction(img *image.RGBA, canvas *raster.Canvas) (annotate.Action, error) {
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	norm := func(i int) annotate.Point {
		return annotate.Point{X: d.coords[i] / w, Y: d.coords[i+1] / h}
	}

	switch d.shape {
	case "pen", "highlight":
		pts := make([]annotate.Point, 0, len(d.coords)/2)
		for i := 0; i+1 < len(d.coords); i += 2 {
			pts = append(pts, norm(i))
		}
		if d.shape == "pen" {
			return annotate.NewStroke(pts, d.opts), nil
		}
		return annotate.NewHighlighter(pts, d.opts), nil
	case "line":
		return annotate.NewLine(norm(0), norm(2), d.opts), nil
	case "arrow":
		return annotate.NewArrow(norm(0), norm(2), d.opts), nil
	case "rect":
		return annotate.NewRect(norm(0), norm(2), d.opts), nil
	case "circle":
		return annotate.NewCircle(norm(0), norm(2), d.opts), nil
	case "censor":
		return annotate.NewCensor(norm(0), norm(2), pixbuf.FromImage(img), d.opts), nil
	case "text":
		return annotate.NewText(norm(0), d.text, img.Bounds().Dx(), img.Bounds().Dy(), canvas, d.opts), nil
	case "number":
		return annotate.NewNumberStamp(norm(0), d.number, d.opts), nil
	}
	return nil, fmt.Errorf("unhandled shape %q", d.shape)
}

func (d *drawCmd) loadSource() (image.Image, error) {
	if d.fromClipboard {
		img, err := clipboard.ReadImage()
		if err != nil {
			return nil, fmt.Errorf("read clipboard image: %w", err)
		}
		return img, nil
	}
	f, err := os.Open(d.file)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(f)
	if err != nil {
		if cerr := f.Close(); cerr != nil {
			log.Printf("error closing %q: %v", f.Name(), cerr)
		}
		return nil, err
	}
	if err := f.Close(); err != nil {
		log.Printf("error closing %q: %v", f.Name(), err)
	}
	return img, nil
}

func expectFloats(args []string, n int, shape string) ([]float64, error) {
	if n >= 0 && len(args) != n {
		return nil, fmt.Errorf("%s requires %d coordinate arguments", shape, n)
	}
	vals := make([]float64, len(args))
	for i, raw := range args {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q", raw)
		}
		vals[i] = v
	}
	return vals, nil
}

var drawFlagNames = map[string]struct{}{
	"file":            {},
	"output":          {},
	"from-clipboard":  {},
	"from-clip":       {},
	"to-clipboard":    {},
	"to-clip":         {},
	"color":           {},
	"fill":            {},
	"width":           {},
	"font-size":       {},
	"highlight-width": {},
	"arrow-head":      {},
	"pixelation":      {},
	"number-size":     {},
}

var drawBoolFlags = map[string]struct{}{
	"from-clipboard": {},
	"from-clip":      {},
	"to-clipboard":   {},
	"to-clip":        {},
}

// splitDrawArgs separates the known flags from the positional shape arguments
// so negative coordinates are not mistaken for flags.
func splitDrawArgs(args []string) ([]string, []string, error) {
	var flags []string
	var positionals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positionals = append(positionals, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if name == "" {
			positionals = append(positionals, arg)
			continue
		}
		parts := strings.SplitN(name, "=", 2)
		base := strings.ToLower(parts[0])
		if _, ok := drawFlagNames[base]; !ok {
			positionals = append(positionals, arg)
			continue
		}
		// Normalise to single dash form for the flag parser.
		norm := "-" + base
		if len(parts) == 2 {
			flags = append(flags, norm+"="+parts[1])
			continue
		}
		if _, ok := drawBoolFlags[base]; ok {
			flags = append(flags, norm)
			continue
		}
		if i+1 >= len(args) {
			return nil, nil, fmt.Errorf("flag %s requires a value", arg)
		}
		flags = append(flags, norm, args[i+1])
		i++
	}
	return flags, positionals, nil
}
