package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/ambient-scenes/internal/logs"
)

func (g *Game) handleKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.music.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) && g.carousel != nil {
		if err := g.openImagesDialog(); err != nil {
			logs.ErrorLogger.Printf("images: %v", err)
			g.lastErr = err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.field != nil {
		if err := g.openMusicDialog(); err != nil {
			logs.ErrorLogger.Printf("music: %v", err)
			g.lastErr = err
		}
	}
	return nil
}

// handlePointer routes the left button: a press and release on the
// carousel panel advances it, a drag anywhere else orbits the camera.
func (g *Game) handlePointer() {
	mouseX, mouseY := ebiten.CursorPosition()
	overPanel := g.carousel != nil && inRect(mouseX, mouseY, g.panel)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if overPanel {
			g.panelPressed = true
		} else if g.orbit != nil {
			g.orbit.BeginDrag(float64(mouseX), float64(mouseY))
		}
	}

	if g.orbit != nil && g.orbit.Dragging() {
		g.orbit.Drag(float64(mouseX), float64(mouseY), float64(g.opts.Height))
	}

	if _, dy := ebiten.Wheel(); dy != 0 && g.orbit != nil {
		g.orbit.Zoom(math.Pow(0.95, dy))
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.panelPressed && overPanel {
			g.carousel.Advance()
		}
		g.panelPressed = false
		if g.orbit != nil {
			g.orbit.EndDrag()
		}
	}
}
