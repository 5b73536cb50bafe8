package annotate

import (
	"image/color"
	"testing"
)

func TestNumberStampDrawGeometry(t *testing.T) {
	opts := DefaultOptions()
	opts.NumberRadius = 16
	a := NewNumberStamp(Point{X: 0.5, Y: 0.5}, 7, opts)
	s := newFakeSurface()
	a.Draw(s, viewScale(100), 2)

	op, ok := s.find("Ellipse")
	if !ok {
		t.Fatalf("no circle drawn: %v", s.names())
	}
	if op.args[0] != 50 || op.args[1] != 50 {
		t.Errorf("center = (%g,%g), want (50,50)", op.args[0], op.args[1])
	}
	// Radius scales with the view: 16 * 2.
	if op.args[2] != 32 || op.args[3] != 32 {
		t.Errorf("radius = (%g,%g), want (32,32)", op.args[2], op.args[3])
	}
	if s.count("Fill") != 1 {
		t.Fatalf("circle must fill: %v", s.names())
	}

	// "7" measures 10x20 at the fake metrics; label centers on the anchor.
	ft, ok := s.find("FillText")
	if !ok {
		t.Fatalf("no label drawn: %v", s.names())
	}
	if ft.args[0] != 45 || ft.args[1] != 40 {
		t.Errorf("label at (%g,%g), want (45,40)", ft.args[0], ft.args[1])
	}
}

func TestNumberStampDefaultFillWhite(t *testing.T) {
	opts := DefaultOptions()
	opts.PenColor = color.RGBA{R: 200, A: 255}
	a := NewNumberStamp(Point{X: 0.5, Y: 0.5}, 1, opts)
	s := newFakeSurface()
	a.Draw(s, identity, 1)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if s.colors[0] != white {
		t.Fatalf("circle fill = %v, want white", s.colors[0])
	}
	if s.colors[1] != opts.PenColor {
		t.Fatalf("label color = %v, want pen color", s.colors[1])
	}
}

func TestNumberStampExplicitFill(t *testing.T) {
	opts := DefaultOptions()
	fill := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	opts.FillColor = &fill
	a := NewNumberStamp(Point{X: 0.5, Y: 0.5}, 1, opts)
	s := newFakeSurface()
	a.Draw(s, identity, 1)
	if s.colors[0] != fill {
		t.Fatalf("circle fill = %v, want %v", s.colors[0], fill)
	}
}

func TestNumberStampHitRadius(t *testing.T) {
	opts := DefaultOptions()
	opts.NumberRadius = 16
	a := NewNumberStamp(Point{X: 0.5, Y: 0.5}, 1, opts)

	// Hit radius is radius/1000 in normalized space, inclusive.
	if !a.ContainsPoint(0.5, 0.5) {
		t.Error("anchor should hit")
	}
	if !a.ContainsPoint(0.5+0.016, 0.5) {
		t.Error("point at exactly radius/1000 should hit")
	}
	if a.ContainsPoint(0.5+0.017, 0.5) {
		t.Error("point beyond radius/1000 should miss")
	}
}

func TestNumberStampBounds(t *testing.T) {
	opts := DefaultOptions()
	opts.NumberRadius = 16
	a := NewNumberStamp(Point{X: 0.5, Y: 0.5}, 1, opts)
	b := a.Bounds()
	want := 0.5 - 0.016 - DefaultPadding
	if b.MinX != want || b.MinY != want {
		t.Fatalf("bounds = %+v, want min %g", b, want)
	}
}

func TestNumberStampLabelValue(t *testing.T) {
	a := NewNumberStamp(Point{}, 42, DefaultOptions())
	if a.Number() != 42 {
		t.Fatalf("Number() = %d", a.Number())
	}
	if a.CreatedAt().IsZero() {
		t.Fatal("CreatedAt should be set")
	}
}
