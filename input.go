package imgraph

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// wheelZoomFactor is the zoom multiplier per scroll-wheel notch.
const wheelZoomFactor = 1.1

// homeAnimDuration is the length of the animated view reset, in seconds.
const homeAnimDuration = 0.35

// inputState tracks the pan drag and key edges between frames.
type inputState struct {
	panning      bool
	lastX, lastY float64
	homeWasDown  bool
}

// processInput drives the viewport from pointer and wheel
// input: left-drag pans, the wheel zooms anchored at the cursor, and the
// Home key animates back to the origin view.
func (p *Plotter) processInput() {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	cursor := Vec2{X: sx, Y: sy}

	// Wheel zoom, anchored at the cursor so the world point under it
	// stays put.
	if _, wheelY := ebiten.Wheel(); wheelY != 0 && p.View.Canvas.Contains(sx, sy) {
		p.View.ZoomAt(cursor, math.Pow(wheelZoomFactor, wheelY))
	}

	// Drag pan state machine. A drag begun on the canvas keeps panning
	// even if the cursor leaves it.
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case pressed && !p.input.panning:
		if p.View.Canvas.Contains(sx, sy) {
			p.input.panning = true
			p.input.lastX = sx
			p.input.lastY = sy
		}
	case pressed && p.input.panning:
		if sx != p.input.lastX || sy != p.input.lastY {
			p.View.PanBy(Vec2{X: sx - p.input.lastX, Y: sy - p.input.lastY})
			p.input.lastX = sx
			p.input.lastY = sy
		}
	case !pressed && p.input.panning:
		p.input.panning = false
	}

	// Home key: animated reset to the centered default view.
	homeDown := ebiten.IsKeyPressed(ebiten.KeyHome)
	if homeDown && !p.input.homeWasDown {
		p.View.ScrollHome(100, homeAnimDuration, ease.OutQuad)
	}
	p.input.homeWasDown = homeDown
}
