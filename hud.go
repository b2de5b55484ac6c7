package imgraph

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawHUD overlays frame rate, zoom, and the cursor's world position in
// the top-left corner. Debug output only; uses the ebitenutil debug font.
func (p *Plotter) drawHUD(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	wx, wy := p.View.ScreenToWorld(float64(mx), float64(my))
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\nzoom: %.1f px/unit\ncursor: (%.3f, %.3f)",
		ebiten.ActualFPS(), ebiten.ActualTPS(), p.View.Zoom, wx, wy))
}
