// Package imgraph is an interactive function plotter for [Ebitengine].
//
// ImGraph classifies textual mathematical expressions into one of five
// plot families, compiles them through a scalar-expression evaluator,
// samples them against the current viewport, and renders the resulting
// screen-space geometry, responsive to continuous pan and cursor-anchored
// zoom.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and
// game loop for you:
//
//	p := imgraph.NewPlotter()
//	p.Registry.Add("sin(x)")
//	p.Registry.Add("x^2 + y^2 = 4")
//	imgraph.Run(p, imgraph.RunConfig{
//		Title: "ImGraph", Width: 1024, Height: 768,
//	})
//
// Drag with the left mouse button to pan, scroll to zoom at the cursor,
// press Home to animate back to the origin view.
//
// # Plot families
//
// An expression's text alone decides how it is plotted, first match wins:
//
//   - "(cos(t), sin(t))"  parametric pair over t in [-10, 10]
//   - "x^2 + y^2 < 1"     inequality region, rasterized as dots
//   - "x^2 + y^2 = 4"     implicit curve, zero set of (lhs) - (rhs)
//   - "r = 1 + cos(theta)" polar curve over theta in [0, 4pi]
//   - "sin(x)/x"          explicit y = f(x), the fallback
//
// A malformed expression simply renders nothing until it is edited into
// shape; it never breaks the frame or the other entries.
//
// # Embedding
//
// For full control, implement [ebiten.Game] yourself and drive the pieces
// directly: [Registry.Plot] produces [Geometry] for a [Viewport], and
// [Renderer.Draw] submits it. All sampling is pure with respect to the
// screen, so the engine can back any renderer that consumes polylines and
// point markers.
//
// [Ebitengine]: https://ebitengine.org
package imgraph
