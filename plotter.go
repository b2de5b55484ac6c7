package imgraph

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// ShowHUD enables the FPS/zoom/cursor overlay.
	ShowHUD bool

	// Resizable allows resizing the window. The canvas tracks the window.
	Resizable bool
}

// Plotter is the interactive host: it owns the registry and viewport,
// drives one classify-compile-sample pass per frame, and renders grid,
// curves, and markers. It implements [ebiten.Game].
type Plotter struct {
	Registry *Registry
	View     *Viewport
	Config   Config

	ShowGrid   bool
	ShowHUD    bool
	ClearColor Color

	renderer *Renderer
	geo      Geometry
	input    inputState
}

// NewPlotter creates a plotter with an empty registry and default settings.
func NewPlotter() *Plotter {
	return &Plotter{
		Registry:   NewRegistry(),
		View:       NewViewport(Rect{Width: 800, Height: 600}),
		Config:     DefaultConfig(),
		ShowGrid:   true,
		ClearColor: ColorWhite,
		renderer:   NewRenderer(),
	}
}

// Update advances the view animation and processes pan/zoom input.
// Called once per tick by Ebitengine.
func (p *Plotter) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	p.View.Update(dt)
	p.processInput()
	return nil
}

// Draw runs the per-frame plotting pass and renders it. The canvas is
// refreshed from the screen geometry first so the transform always matches
// the actual window size.
func (p *Plotter) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	p.View.Canvas = Rect{
		X:      float64(b.Min.X),
		Y:      float64(b.Min.Y),
		Width:  float64(b.Dx()),
		Height: float64(b.Dy()),
	}

	screen.Fill(p.ClearColor.toRGBA())

	p.geo.Reset()
	if p.ShowGrid {
		AppendGrid(p.View, &p.geo)
	}
	p.Registry.Plot(p.View, p.Config, &p.geo)
	p.renderer.Draw(screen, &p.geo)

	if p.ShowHUD {
		p.drawHUD(screen)
	}
}

// Layout reports the logical screen size: identical to the window size.
func (p *Plotter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run creates a window and runs the plotter until the window closes.
func Run(p *Plotter, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	p.ShowHUD = p.ShowHUD || cfg.ShowHUD

	if err := ebiten.RunGame(p); err != nil {
		return fmt.Errorf("imgraph: run: %w", err)
	}
	return nil
}
