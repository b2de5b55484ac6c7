package imgraph

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is pure opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGB builds an opaque Color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// RGBA builds a Color from 8-bit components including alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: float64(a) / 255}
}

// IsZero reports whether the color is the zero value (fully transparent black).
// Registry entries with a zero color fall back to their plot family's default.
func (c Color) IsZero() bool {
	return c.R == 0 && c.G == 0 && c.B == 0 && c.A == 0
}

// toRGBA converts to a premultiplied-alpha color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, and deltas throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Polyline is an ordered sequence of screen-space points rendered as a
// connected stroke.
type Polyline struct {
	Points    []Vec2
	Color     Color
	Thickness float64
}

// Markers is an unordered set of screen-space dot positions sharing one
// radius and color, used for inequality regions and implicit contours.
type Markers struct {
	Points []Vec2
	Radius float64
	Color  Color
}

// Geometry collects everything one frame produces for the renderer: strokes
// first, then dots on top. The slices may be reused across frames via Reset.
type Geometry struct {
	Lines []Polyline
	Dots  []Markers
}

// Reset empties the geometry while keeping backing arrays for reuse.
func (g *Geometry) Reset() {
	g.Lines = g.Lines[:0]
	g.Dots = g.Dots[:0]
}
