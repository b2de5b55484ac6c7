package imgraph

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if !r.Contains(10, 20) || !r.Contains(110, 70) || !r.Contains(50, 40) {
		t.Error("points inside or on the edge must be contained")
	}
	if r.Contains(9.9, 40) || r.Contains(50, 70.1) {
		t.Error("points outside must not be contained")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !a.Intersects(Rect{X: 5, Y: 5, Width: 10, Height: 10}) {
		t.Error("overlapping rects must intersect")
	}
	if !a.Intersects(Rect{X: 10, Y: 0, Width: 5, Height: 10}) {
		t.Error("edge-adjacent rects are considered intersecting")
	}
	if a.Intersects(Rect{X: 11, Y: 0, Width: 5, Height: 5}) {
		t.Error("separated rects must not intersect")
	}
}

func TestRGBConversion(t *testing.T) {
	c := RGB(199, 68, 64)
	if !approxEqual(c.R, 199.0/255, epsilon) || c.A != 1 {
		t.Errorf("RGB = %+v", c)
	}
	if RGBA(0, 0, 0, 0) != (Color{}) {
		t.Error("RGBA(0,0,0,0) should be the zero color")
	}
}

func TestColorIsZero(t *testing.T) {
	if !(Color{}).IsZero() {
		t.Error("zero value not reported zero")
	}
	if RGB(0, 0, 0).IsZero() {
		t.Error("opaque black reported zero")
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}
	got := c.toRGBA()
	if got.A != 127 {
		t.Errorf("A = %d, want 127", got.A)
	}
	if got.R != 127 {
		t.Errorf("R = %d, want premultiplied 127", got.R)
	}
}

func TestGeometryResetKeepsCapacity(t *testing.T) {
	var g Geometry
	g.appendLine([]Vec2{{0, 0}, {1, 1}}, ColorWhite, 1)
	g.appendDots([]Vec2{{0, 0}}, 1, ColorWhite)

	capLines := cap(g.Lines)
	g.Reset()
	if len(g.Lines) != 0 || len(g.Dots) != 0 {
		t.Error("Reset did not empty the geometry")
	}
	if cap(g.Lines) != capLines {
		t.Error("Reset dropped the backing array")
	}
}
