package palette

import (
	"image/color"
	"testing"
)

func TestParsePaletteName(t *testing.T) {
	c, err := Parse("Teal")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if c != (color.RGBA{0, 128, 128, 255}) {
		t.Fatalf("teal = %v", c)
	}
	// Case-insensitive.
	if c2, err := Parse("teal"); err != nil || c2 != c {
		t.Fatalf("case-insensitive lookup failed: %v %v", c2, err)
	}
}

func TestParseX11Name(t *testing.T) {
	c, err := Parse("rebeccapurple")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if c.A != 255 || c == (color.RGBA{}) {
		t.Fatalf("rebeccapurple = %v", c)
	}
}

func TestParseHex(t *testing.T) {
	c, err := Parse("#FF8000")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if c != (color.RGBA{255, 128, 0, 255}) {
		t.Fatalf("hex = %v", c)
	}
	c, err = Parse("#ff800080")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if c.A != 128 {
		t.Fatalf("alpha = %d, want 128", c.A)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, bad := range []string{"", "#12345", "#zzzzzz", "notacolor"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) should fail", bad)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, entry := range Default() {
		parsed, err := Parse(Format(entry.Color))
		if err != nil {
			t.Fatalf("round trip of %s failed: %v", entry.Name, err)
		}
		if parsed != entry.Color {
			t.Fatalf("%s round-tripped to %v", entry.Name, parsed)
		}
	}
}

func TestFormatAlpha(t *testing.T) {
	if got := Format(color.RGBA{255, 0, 0, 255}); got != "#FF0000" {
		t.Fatalf("opaque format = %s", got)
	}
	if got := Format(color.RGBA{255, 0, 0, 128}); got != "#FF000080" {
		t.Fatalf("translucent format = %s", got)
	}
}

func TestName(t *testing.T) {
	if got := Name(color.RGBA{0, 128, 128, 255}); got != "Teal" {
		t.Fatalf("Name = %s", got)
	}
	if got := Name(color.RGBA{1, 2, 3, 255}); got != "#010203" {
		t.Fatalf("unnamed color = %s", got)
	}
}

func TestDefaultIsACopy(t *testing.T) {
	a := Default()
	a[0].Name = "mutated"
	if Default()[0].Name == "mutated" {
		t.Fatal("Default must return a copy")
	}
}
