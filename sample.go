package imgraph

import "math"

// Config holds the sampling step sizes and iteration budgets. The step
// floors trade plot quality against per-frame cost; they are tunable, not
// semantic. The Max* budgets bound loop counts under extreme zoom-out and
// must stay positive.
type Config struct {
	// ExplicitStep is the world-space x step for y = f(x) curves.
	ExplicitStep float64

	// Parametric domain: t in [ParamMin, ParamMax] at ParamStep,
	// independent of the viewport.
	ParamMin, ParamMax, ParamStep float64

	// Polar domain: theta in [PolarMin, PolarMax] at PolarStep.
	PolarMin, PolarMax, PolarStep float64

	// Inequality grid step is max(RegionStepFloor, RegionStepScale/zoom);
	// dot radius is max(RegionDotMin, zoom/RegionDotDiv).
	RegionStepFloor float64
	RegionStepScale float64
	RegionDotMin    float64
	RegionDotDiv    float64

	// Implicit contour scan step is max(ContourStepFloor,
	// ContourStepScale/zoom); crossings render at ContourDotRadius.
	ContourStepFloor float64
	ContourStepScale float64
	ContourDotRadius float64

	// MaxCurveSamples bounds the sample count of any single curve pass;
	// MaxGridCells bounds the cell count of any single 2D scan. Steps are
	// widened when a budget would be exceeded.
	MaxCurveSamples int
	MaxGridCells    int
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		ExplicitStep: 0.05,

		ParamMin:  -10,
		ParamMax:  10,
		ParamStep: 0.02,

		PolarMin:  0,
		PolarMax:  4 * math.Pi,
		PolarStep: 0.02,

		RegionStepFloor: 0.025,
		RegionStepScale: 1.5,
		RegionDotMin:    1.5,
		RegionDotDiv:    60,

		ContourStepFloor: 0.008,
		ContourStepScale: 1.0,
		ContourDotRadius: 2.5,

		MaxCurveSamples: 1 << 15,
		MaxGridCells:    1 << 19,
	}
}

// finite reports whether v is a usable sample value.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// widenStep grows step so span/step stays within budget.
func widenStep(step, span float64, budget int) float64 {
	if budget <= 0 || step <= 0 || span <= 0 {
		return step
	}
	if span/step > float64(budget) {
		return span / float64(budget)
	}
	return step
}

// widenGridStep grows step so the cell count of a w x h scan stays within
// budget.
func widenGridStep(step, w, h float64, budget int) float64 {
	if budget <= 0 || step <= 0 || w <= 0 || h <= 0 {
		return step
	}
	if (w/step)*(h/step) > float64(budget) {
		return math.Sqrt(w * h / float64(budget))
	}
	return step
}

// SampleExplicit evaluates y = f(x) over the visible world-x range at a
// fixed world step and returns the resulting screen-space polyline points.
// Non-finite samples are dropped. No adaptive refinement: steep gradients
// may alias.
func SampleExplicit(p *Program, view *Viewport, cfg Config) []Vec2 {
	xv := p.Var("x")
	if xv == nil {
		return nil
	}

	b := view.VisibleBounds()
	step := widenStep(cfg.ExplicitStep, b.Width, cfg.MaxCurveSamples)
	if step <= 0 {
		return nil
	}

	pts := make([]Vec2, 0, int(b.Width/step)+2)
	for wx := b.X; wx <= b.X+b.Width; wx += step {
		xv.Set(wx)
		wy := p.Eval()
		if !finite(wy) {
			continue
		}
		sx, sy := view.WorldToScreen(wx, wy)
		pts = append(pts, Vec2{X: sx, Y: sy})
	}
	return pts
}

// SampleParametric evaluates (f(t), g(t)) over the fixed parameter domain
// and returns screen-space polyline points. The domain does not track the
// viewport: parametric curves are not reparameterized by visible range.
func SampleParametric(fx, gx *Program, view *Viewport, cfg Config) []Vec2 {
	tf := fx.Var("t")
	tg := gx.Var("t")
	if tf == nil || tg == nil {
		return nil
	}

	span := cfg.ParamMax - cfg.ParamMin
	step := widenStep(cfg.ParamStep, span, cfg.MaxCurveSamples)
	if step <= 0 || span <= 0 {
		return nil
	}

	pts := make([]Vec2, 0, int(span/step)+2)
	for t := cfg.ParamMin; t <= cfg.ParamMax; t += step {
		tf.Set(t)
		tg.Set(t)
		wx := fx.Eval()
		wy := gx.Eval()
		if !finite(wx) || !finite(wy) {
			continue
		}
		sx, sy := view.WorldToScreen(wx, wy)
		pts = append(pts, Vec2{X: sx, Y: sy})
	}
	return pts
}

// SamplePolar evaluates r = f(theta) over the fixed angular domain and
// returns screen-space polyline points for (r cos theta, r sin theta).
func SamplePolar(p *Program, view *Viewport, cfg Config) []Vec2 {
	tv := p.Var("theta")
	if tv == nil {
		return nil
	}

	span := cfg.PolarMax - cfg.PolarMin
	step := widenStep(cfg.PolarStep, span, cfg.MaxCurveSamples)
	if step <= 0 || span <= 0 {
		return nil
	}

	pts := make([]Vec2, 0, int(span/step)+2)
	for theta := cfg.PolarMin; theta <= cfg.PolarMax; theta += step {
		tv.Set(theta)
		r := p.Eval()
		if !finite(r) {
			continue
		}
		sx, sy := view.WorldToScreen(r*math.Cos(theta), r*math.Sin(theta))
		pts = append(pts, Vec2{X: sx, Y: sy})
	}
	return pts
}

// RegionStep returns the inequality grid step for the given zoom: shrinks
// as zoom grows, floor-clamped to bound point count.
func RegionStep(zoom float64, cfg Config) float64 {
	return math.Max(cfg.RegionStepFloor, cfg.RegionStepScale/zoom)
}

// RegionDotRadius returns the marker radius for inequality regions, sized
// inversely to local point density.
func RegionDotRadius(zoom float64, cfg Config) float64 {
	return math.Max(cfg.RegionDotMin, zoom/cfg.RegionDotDiv)
}

// SampleInequality scans a 2D grid over the visible world rectangle and
// returns a screen-space marker position for every cell where the
// boolean-valued expression evaluates true (exactly 1.0). This rasterizes
// the truth region directly; there is no boundary smoothing.
func SampleInequality(p *Program, view *Viewport, cfg Config) []Vec2 {
	xv := p.Var("x")
	yv := p.Var("y")
	if xv == nil || yv == nil {
		return nil
	}

	b := view.VisibleBounds()
	step := RegionStep(view.Zoom, cfg)
	step = widenGridStep(step, b.Width, b.Height, cfg.MaxGridCells)
	if step <= 0 {
		return nil
	}

	var pts []Vec2
	for wy := b.Y; wy <= b.Y+b.Height; wy += step {
		yv.Set(wy)
		for wx := b.X; wx <= b.X+b.Width; wx += step {
			xv.Set(wx)
			if p.Eval() == 1.0 {
				sx, sy := view.WorldToScreen(wx, wy)
				pts = append(pts, Vec2{X: sx, Y: sy})
			}
		}
	}
	return pts
}

// ContourStep returns the implicit scan step for the given zoom.
func ContourStep(zoom float64, cfg Config) float64 {
	return math.Max(cfg.ContourStepFloor, cfg.ContourStepScale/zoom)
}

// SampleContour locates the zero set of h(x, y) by two independent
// sign-change passes over the visible world rectangle: fixed-y rows
// scanning x, then fixed-x columns scanning y. A sign change between
// consecutive samples is resolved by linear interpolation and emitted as
// one screen-space marker. Running both directions catches branches
// tangent to either scan axis; the result is a point cloud, not connected
// segments.
func SampleContour(p *Program, view *Viewport, cfg Config) []Vec2 {
	xv := p.Var("x")
	yv := p.Var("y")
	if xv == nil || yv == nil {
		return nil
	}

	b := view.VisibleBounds()
	step := ContourStep(view.Zoom, cfg)
	step = widenGridStep(step, b.Width, b.Height, cfg.MaxGridCells/2)
	if step <= 0 {
		return nil
	}

	var pts []Vec2

	// Row pass: fixed y, scan x left to right.
	for wy := b.Y; wy <= b.Y+b.Height; wy += step {
		yv.Set(wy)
		prev := 0.0
		first := true
		for wx := b.X; wx <= b.X+b.Width; wx += step {
			xv.Set(wx)
			curr := p.Eval()
			if !first && prev*curr < 0 {
				t := prev / (prev - curr)
				sx, sy := view.WorldToScreen((wx-step)+t*step, wy)
				pts = append(pts, Vec2{X: sx, Y: sy})
			}
			prev = curr
			first = false
		}
	}

	// Column pass: fixed x, scan y bottom to top.
	for wx := b.X; wx <= b.X+b.Width; wx += step {
		xv.Set(wx)
		prev := 0.0
		first := true
		for wy := b.Y; wy <= b.Y+b.Height; wy += step {
			yv.Set(wy)
			curr := p.Eval()
			if !first && prev*curr < 0 {
				t := prev / (prev - curr)
				sx, sy := view.WorldToScreen(wx, (wy-step)+t*step)
				pts = append(pts, Vec2{X: sx, Y: sy})
			}
			prev = curr
			first = false
		}
	}

	return pts
}
