package imgraph

import "math"

// Grid appearance. The grid draws thin light-gray lines on integer
// multiples of the adaptive step, plus solid axes through the origin.
var (
	GridColor = RGB(200, 200, 200)
	AxisColor = RGB(0, 0, 0)
)

const (
	gridMinPixelSpacing = 20.0
	gridThickness       = 1.0
	axisThickness       = 6.0

	// maxGridLines bounds line emission per direction under extreme
	// viewports.
	maxGridLines = 4096
)

// GridStep returns the world-space spacing between grid lines for a zoom
// level: starts at one unit and doubles until lines sit at least
// gridMinPixelSpacing pixels apart.
func GridStep(zoom float64) float64 {
	step := 1.0
	for step*zoom < gridMinPixelSpacing {
		step *= 2
	}
	return step
}

// AppendGrid emits grid lines and axes for the current viewport into out.
// Geometry order matters: the grid is appended first so plots draw on top.
func AppendGrid(view *Viewport, out *Geometry) {
	if view.Zoom <= 0 {
		return
	}
	step := GridStep(view.Zoom)
	b := view.VisibleBounds()

	top := view.Canvas.Y
	bottom := view.Canvas.Y + view.Canvas.Height
	left := view.Canvas.X
	right := view.Canvas.X + view.Canvas.Width

	// Vertical lines on integer multiples of step across the visible
	// x range.
	start := math.Ceil(b.X/step) * step
	for wx, n := start, 0; wx <= b.X+b.Width && n < maxGridLines; wx, n = wx+step, n+1 {
		if wx == 0 {
			continue
		}
		sx, _ := view.WorldToScreen(wx, 0)
		out.appendLine([]Vec2{{X: sx, Y: top}, {X: sx, Y: bottom}}, GridColor, gridThickness)
	}

	// Horizontal lines.
	start = math.Ceil(b.Y/step) * step
	for wy, n := start, 0; wy <= b.Y+b.Height && n < maxGridLines; wy, n = wy+step, n+1 {
		if wy == 0 {
			continue
		}
		_, sy := view.WorldToScreen(0, wy)
		out.appendLine([]Vec2{{X: left, Y: sy}, {X: right, Y: sy}}, GridColor, gridThickness)
	}

	// Axes, drawn over the grid.
	ox, oy := view.WorldToScreen(0, 0)
	out.appendLine([]Vec2{{X: left, Y: oy}, {X: right, Y: oy}}, AxisColor, axisThickness)
	out.appendLine([]Vec2{{X: ox, Y: top}, {X: ox, Y: bottom}}, AxisColor, axisThickness)
}
