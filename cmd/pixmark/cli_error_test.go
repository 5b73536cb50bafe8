package main

import (
	"strings"
	"testing"
)

func TestParseDrawClipboardRequiresOutput(t *testing.T) {
	_, err := parseDrawCmd([]string{"-from-clipboard", "line", "0", "0", "1", "1"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "output file is required when reading from the clipboard"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawRequiresInput(t *testing.T) {
	_, err := parseDrawCmd([]string{"line", "0", "0", "1", "1"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "input file is required"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawUnknownShape(t *testing.T) {
	_, err := parseDrawCmd([]string{"-file", "in.png", "squiggle", "0", "0"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "unsupported shape"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawBadCoordinate(t *testing.T) {
	_, err := parseDrawCmd([]string{"-file", "in.png", "line", "0", "zero", "1", "1"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "invalid coordinate"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawPenRequiresPointPairs(t *testing.T) {
	_, err := parseDrawCmd([]string{"-file", "in.png", "pen", "0", "0", "5"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "even number of coordinates"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawTextRequiresContent(t *testing.T) {
	_, err := parseDrawCmd([]string{"-file", "in.png", "text", "10", "10", "   "}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "text content cannot be empty"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawNegativeCoordinates(t *testing.T) {
	d, err := parseDrawCmd([]string{"-file", "in.png", "arrow", "-20", "-20", "40", "40"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.coords) != 4 || d.coords[0] != -20 || d.coords[1] != -20 {
		t.Fatalf("negative coordinates mangled: %v", d.coords)
	}
}

func TestParseDrawColorAppliesToHighlight(t *testing.T) {
	d, err := parseDrawCmd([]string{"-file", "in.png", "-color", "blue", "highlight", "0", "0", "10", "10"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.opts.HighlighterColor.B != 255 {
		t.Fatalf("expected highlighter color blue, got %v", d.opts.HighlighterColor)
	}
}

func TestParseDrawOutputDefaultsToInput(t *testing.T) {
	d, err := parseDrawCmd([]string{"-file", "in.png", "rect", "0", "0", "5", "5"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.output != "in.png" {
		t.Fatalf("output = %q, want in.png", d.output)
	}
}

func TestParseExportRequiresInput(t *testing.T) {
	_, err := parseExportCmd([]string{}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "input file is required"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseExportDefaultsToPDF(t *testing.T) {
	e, err := parseExportCmd([]string{"-file", "shot.png"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.output != "shot.pdf" {
		t.Fatalf("output = %q, want shot.pdf", e.output)
	}
}

func TestSplitDrawArgsKeepsUnknownDashes(t *testing.T) {
	flags, positionals, err := splitDrawArgs([]string{"-color", "red", "line", "-5", "0", "10", "10"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(flags) != 2 {
		t.Fatalf("flags = %v", flags)
	}
	if len(positionals) != 5 || positionals[1] != "-5" {
		t.Fatalf("positionals = %v", positionals)
	}
}
