package imgraph

import (
	"math"
	"testing"
)

func mustCompile(t *testing.T, src string, vars ...string) *Program {
	t.Helper()
	p, err := Compile(src, vars...)
	if err != nil {
		t.Fatalf("Compile(%q): %v", src, err)
	}
	return p
}

func TestSampleExplicitIdentityLine(t *testing.T) {
	v := testViewport()
	cfg := DefaultConfig()
	p := mustCompile(t, "x", "x")

	pts := SampleExplicit(p, v, cfg)
	if len(pts) == 0 {
		t.Fatal("no samples")
	}

	// Screen x strictly increasing, and every sample lies on y = x in
	// world space.
	for i, sp := range pts {
		if i > 0 && sp.X <= pts[i-1].X {
			t.Fatalf("screen x not increasing at %d: %f <= %f", i, sp.X, pts[i-1].X)
		}
		wx, wy := v.ScreenToWorld(sp.X, sp.Y)
		if !approxEqual(wy, wx, 1e-9) {
			t.Fatalf("sample %d off the line: (%f, %f)", i, wx, wy)
		}
	}
}

func TestSampleExplicitCoversVisibleRange(t *testing.T) {
	v := testViewport()
	cfg := DefaultConfig()
	p := mustCompile(t, "0*x", "x")

	pts := SampleExplicit(p, v, cfg)
	b := v.VisibleBounds()
	first, _ := v.ScreenToWorld(pts[0].X, pts[0].Y)
	last, _ := v.ScreenToWorld(pts[len(pts)-1].X, pts[len(pts)-1].Y)

	if !approxEqual(first, b.X, cfg.ExplicitStep) {
		t.Errorf("first sample at x=%f, want near %f", first, b.X)
	}
	if !approxEqual(last, b.X+b.Width, cfg.ExplicitStep+1e-9) {
		t.Errorf("last sample at x=%f, want near %f", last, b.X+b.Width)
	}
}

func TestSampleExplicitDropsNonFinite(t *testing.T) {
	v := testViewport()
	cfg := DefaultConfig()
	p := mustCompile(t, "sqrt(x)", "x")

	pts := SampleExplicit(p, v, cfg)
	for _, sp := range pts {
		wx, _ := v.ScreenToWorld(sp.X, sp.Y)
		if wx < -cfg.ExplicitStep {
			t.Fatalf("got a sample at x=%f where sqrt is undefined", wx)
		}
	}
}

func TestSampleExplicitIterationCap(t *testing.T) {
	v := testViewport()
	v.Zoom = v.MinZoom // widest visible world range
	cfg := DefaultConfig()
	cfg.MaxCurveSamples = 100

	p := mustCompile(t, "x", "x")
	pts := SampleExplicit(p, v, cfg)
	if len(pts) > cfg.MaxCurveSamples+2 {
		t.Errorf("len = %d, want <= %d", len(pts), cfg.MaxCurveSamples+2)
	}
}

func TestSampleParametricCircle(t *testing.T) {
	v := testViewport()
	cfg := DefaultConfig()
	fx := mustCompile(t, "cos(t)", "t")
	gx := mustCompile(t, "sin(t)", "t")

	pts := SampleParametric(fx, gx, v, cfg)
	wantCount := int((cfg.ParamMax-cfg.ParamMin)/cfg.ParamStep) + 1
	if len(pts) < wantCount-2 || len(pts) > wantCount+2 {
		t.Errorf("len = %d, want about %d", len(pts), wantCount)
	}

	// Every sample lies on the unit circle in world space.
	for _, sp := range pts {
		wx, wy := v.ScreenToWorld(sp.X, sp.Y)
		if r := math.Hypot(wx, wy); !approxEqual(r, 1, 1e-9) {
			t.Fatalf("sample at radius %f, want 1", r)
		}
	}
}

func TestSampleParametricDomainIgnoresViewport(t *testing.T) {
	cfg := DefaultConfig()
	fx := mustCompile(t, "t", "t")
	gx := mustCompile(t, "t", "t")

	a := testViewport()
	b := testViewport()
	b.Zoom = 900
	b.Pan = Vec2{X: 5000, Y: -5000}

	if la, lb := len(SampleParametric(fx, gx, a, cfg)), len(SampleParametric(fx, gx, b, cfg)); la != lb {
		t.Errorf("sample count depends on viewport: %d vs %d", la, lb)
	}
}

func TestSamplePolarConstantRadius(t *testing.T) {
	v := testViewport()
	cfg := DefaultConfig()
	p := mustCompile(t, "2 + 0*theta", "theta")

	pts := SamplePolar(p, v, cfg)
	if len(pts) == 0 {
		t.Fatal("no samples")
	}
	for _, sp := range pts {
		wx, wy := v.ScreenToWorld(sp.X, sp.Y)
		if r := math.Hypot(wx, wy); !approxEqual(r, 2, 1e-9) {
			t.Fatalf("sample at radius %f, want 2", r)
		}
	}
}

func TestSampleInequalityUnitDisk(t *testing.T) {
	v := testViewport() // visible world: [-4,4] x [-3,3]
	cfg := DefaultConfig()
	p := mustCompile(t, "x^2 + y^2 < 1", "x", "y")

	pts := SampleInequality(p, v, cfg)
	if len(pts) == 0 {
		t.Fatal("no markers inside the unit disk")
	}
	for _, sp := range pts {
		wx, wy := v.ScreenToWorld(sp.X, sp.Y)
		if wx*wx+wy*wy >= 1 {
			t.Fatalf("marker outside the disk: (%f, %f)", wx, wy)
		}
	}
}

func TestSampleInequalityCountGrowsWithFinerStep(t *testing.T) {
	v := testViewport()
	p := mustCompile(t, "x^2 + y^2 < 1", "x", "y")

	coarse := DefaultConfig()
	coarse.RegionStepFloor = 0.1
	fine := DefaultConfig()
	fine.RegionStepFloor = 0.05

	nc := len(SampleInequality(p, v, coarse))
	nf := len(SampleInequality(p, v, fine))
	if nf <= nc {
		t.Errorf("finer step did not grow marker count: %d -> %d", nc, nf)
	}
}

func TestSampleInequalityCellBudget(t *testing.T) {
	v := testViewport()
	v.Zoom = v.MinZoom
	cfg := DefaultConfig()
	cfg.MaxGridCells = 1000

	// Always true: every scanned cell emits a marker.
	p := mustCompile(t, "x^2 + y^2 > -1", "x", "y")
	pts := SampleInequality(p, v, cfg)
	// Rounding at the scan edges can exceed the budget by one row/column.
	if len(pts) > cfg.MaxGridCells+100 {
		t.Errorf("len = %d, want bounded near %d", len(pts), cfg.MaxGridCells)
	}
}

func TestSampleContourVerticalLine(t *testing.T) {
	v := testViewport()
	cfg := DefaultConfig()
	p := mustCompile(t, "x - 3", "x", "y")

	pts := SampleContour(p, v, cfg)
	if len(pts) == 0 {
		t.Fatal("no crossings for x = 3")
	}

	step := ContourStep(v.Zoom, cfg)
	for _, sp := range pts {
		wx, _ := v.ScreenToWorld(sp.X, sp.Y)
		if !approxEqual(wx, 3, step) {
			t.Fatalf("crossing at x=%f, want 3 within %f", wx, step)
		}
	}

	// One crossing per scanned row; the column pass finds nothing for a
	// function constant in y.
	b := v.VisibleBounds()
	rows := int(b.Height/step) + 1
	if len(pts) < rows/2 {
		t.Errorf("crossings = %d, want at least one for most of %d rows", len(pts), rows)
	}
}

func TestSampleContourInterpolatesCrossing(t *testing.T) {
	v := testViewport()
	cfg := DefaultConfig()
	// Zero at x = 0.3333..., never on a grid sample.
	p := mustCompile(t, "3*x - 1", "x", "y")

	pts := SampleContour(p, v, cfg)
	if len(pts) == 0 {
		t.Fatal("no crossings")
	}
	for _, sp := range pts {
		wx, _ := v.ScreenToWorld(sp.X, sp.Y)
		// Linear function: interpolation lands on the root exactly.
		if !approxEqual(wx, 1.0/3.0, 1e-6) {
			t.Fatalf("crossing at x=%f, want 1/3", wx)
		}
	}
}

func TestSampleContourCatchesHorizontalBranch(t *testing.T) {
	v := testViewport()
	cfg := DefaultConfig()
	// y = 1: invisible to the row pass (constant along x), caught by the
	// column pass.
	p := mustCompile(t, "y - 1", "x", "y")

	pts := SampleContour(p, v, cfg)
	if len(pts) == 0 {
		t.Fatal("column pass missed the horizontal line")
	}
	for _, sp := range pts {
		_, wy := v.ScreenToWorld(sp.X, sp.Y)
		if !approxEqual(wy, 1, ContourStep(v.Zoom, cfg)) {
			t.Fatalf("crossing at y=%f, want 1", wy)
		}
	}
}

func TestRegionStepAndDotRadius(t *testing.T) {
	cfg := DefaultConfig()

	// High zoom hits the floor; low zoom scales with 1/zoom.
	if got := RegionStep(1000, cfg); got != cfg.RegionStepFloor {
		t.Errorf("RegionStep(1000) = %f, want floor %f", got, cfg.RegionStepFloor)
	}
	if got := RegionStep(10, cfg); !approxEqual(got, 0.15, 1e-12) {
		t.Errorf("RegionStep(10) = %f, want 0.15", got)
	}

	if got := RegionDotRadius(30, cfg); got != cfg.RegionDotMin {
		t.Errorf("RegionDotRadius(30) = %f, want min %f", got, cfg.RegionDotMin)
	}
	if got := RegionDotRadius(600, cfg); !approxEqual(got, 10, 1e-12) {
		t.Errorf("RegionDotRadius(600) = %f, want 10", got)
	}
}

func TestSamplersRejectWrongVariableBinding(t *testing.T) {
	v := testViewport()
	cfg := DefaultConfig()

	// A program bound to the wrong variable set produces no geometry
	// instead of panicking.
	p := mustCompile(t, "x", "x")
	if pts := SamplePolar(p, v, cfg); pts != nil {
		t.Errorf("SamplePolar on an x-bound program = %d points, want none", len(pts))
	}
	if pts := SampleInequality(p, v, cfg); pts != nil {
		t.Errorf("SampleInequality on an x-bound program = %d points, want none", len(pts))
	}
}
