package imgraph

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default zoom clamp range, in pixels per world unit.
const (
	DefaultMinZoom = 10.0
	DefaultMaxZoom = 1000.0
)

// homeAnim holds active view-reset tweens for zoom and pan.
type homeAnim struct {
	tweenZoom *gween.Tween
	tweenPanX *gween.Tween
	tweenPanY *gween.Tween
	doneZoom  bool
	donePan   bool
}

// Viewport maps between the unbounded world plane and canvas pixels.
// The world origin projects to the canvas center plus the pan offset;
// world Y points up while screen Y points down.
//
// A Viewport is session state owned by the single UI thread. Nothing else
// may mutate it concurrently.
type Viewport struct {
	// Zoom is the scale factor in pixels per world unit, clamped to
	// [MinZoom, MaxZoom] by ZoomAt and SetZoom.
	Zoom float64
	// Pan is the pixel-space translation applied on top of the centered
	// origin. Unbounded.
	Pan Vec2
	// Canvas is the screen-space rectangle the plot renders into,
	// refreshed each frame from current window geometry.
	Canvas Rect

	MinZoom float64
	MaxZoom float64

	home *homeAnim
}

// NewViewport creates a viewport over the given canvas with a default zoom
// of 100 pixels per world unit.
func NewViewport(canvas Rect) *Viewport {
	return &Viewport{
		Zoom:    100,
		Canvas:  canvas,
		MinZoom: DefaultMinZoom,
		MaxZoom: DefaultMaxZoom,
	}
}

// origin returns the screen position of the world origin: canvas center
// shifted by the pan offset.
func (v *Viewport) origin() (ox, oy float64) {
	return v.Canvas.X + v.Canvas.Width/2 + v.Pan.X,
		v.Canvas.Y + v.Canvas.Height/2 + v.Pan.Y
}

// WorldToScreen converts world coordinates to screen pixels.
func (v *Viewport) WorldToScreen(wx, wy float64) (sx, sy float64) {
	ox, oy := v.origin()
	return ox + wx*v.Zoom, oy - wy*v.Zoom
}

// ScreenToWorld converts screen pixels to world coordinates. Exact inverse
// of WorldToScreen.
func (v *Viewport) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	ox, oy := v.origin()
	return (sx - ox) / v.Zoom, (oy - sy) / v.Zoom
}

// clampZoom restricts z to [MinZoom, MaxZoom].
func (v *Viewport) clampZoom(z float64) float64 {
	return math.Max(v.MinZoom, math.Min(z, v.MaxZoom))
}

// SetZoom sets the zoom factor, clamped, keeping the world point at the
// canvas center fixed.
func (v *Viewport) SetZoom(z float64) {
	cx := v.Canvas.X + v.Canvas.Width/2
	cy := v.Canvas.Y + v.Canvas.Height/2
	v.ZoomAt(Vec2{X: cx, Y: cy}, z/v.Zoom)
}

// ZoomAt multiplies the zoom by factor (clamped to the zoom range) and
// recomputes the pan offset so the world point under screenPt stays under
// screenPt. Cancels any in-flight home animation.
func (v *Viewport) ZoomAt(screenPt Vec2, factor float64) {
	wx, wy := v.ScreenToWorld(screenPt.X, screenPt.Y)
	v.Zoom = v.clampZoom(v.Zoom * factor)

	// Solve WorldToScreen(wx, wy) == screenPt for the new pan.
	cx := v.Canvas.X + v.Canvas.Width/2
	cy := v.Canvas.Y + v.Canvas.Height/2
	v.Pan.X = screenPt.X - cx - wx*v.Zoom
	v.Pan.Y = screenPt.Y - cy + wy*v.Zoom
	v.home = nil
}

// PanBy translates the view by a pixel delta. Panning is unbounded.
// Cancels any in-flight home animation.
func (v *Viewport) PanBy(delta Vec2) {
	v.Pan = v.Pan.Add(delta)
	v.home = nil
}

// VisibleBounds returns the world-space rectangle currently visible on the
// canvas. Rect Y is the bottom edge so that Y..Y+Height spans upward in
// world terms.
func (v *Viewport) VisibleBounds() Rect {
	x0, y1 := v.ScreenToWorld(v.Canvas.X, v.Canvas.Y)
	x1, y0 := v.ScreenToWorld(v.Canvas.X+v.Canvas.Width, v.Canvas.Y+v.Canvas.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// ScrollHome animates zoom and pan back to the given home view over
// duration seconds.
func (v *Viewport) ScrollHome(zoom float64, duration float32, easeFn ease.TweenFunc) {
	zoom = v.clampZoom(zoom)
	v.home = &homeAnim{
		tweenZoom: gween.New(float32(v.Zoom), float32(zoom), duration, easeFn),
		tweenPanX: gween.New(float32(v.Pan.X), 0, duration, easeFn),
		tweenPanY: gween.New(float32(v.Pan.Y), 0, duration, easeFn),
	}
}

// Update advances the home animation, if any. Called once per frame.
func (v *Viewport) Update(dt float32) {
	if v.home == nil {
		return
	}
	if !v.home.doneZoom {
		val, done := v.home.tweenZoom.Update(dt)
		v.Zoom = float64(val)
		v.home.doneZoom = done
	}
	if !v.home.donePan {
		px, doneX := v.home.tweenPanX.Update(dt)
		py, doneY := v.home.tweenPanY.Update(dt)
		v.Pan = Vec2{X: float64(px), Y: float64(py)}
		v.home.donePan = doneX && doneY
	}
	if v.home.doneZoom && v.home.donePan {
		v.home = nil
	}
}

// Animating reports whether a home animation is in progress.
func (v *Viewport) Animating() bool {
	return v.home != nil
}
