package game

import (
	"image"

	"github.com/iburimskiy/ambient-scenes/internal/config"
)

// panelRect is where the carousel draws for a scene on a w x h screen.
func panelRect(scene config.Scene, w, h int) image.Rectangle {
	switch scene {
	case config.SceneCarousel:
		return image.Rect(0, 0, w, h)
	case config.ScenePage:
		pw := int(float64(w) * config.PanelWidth)
		ph := int(float64(h) * config.PanelHeight)
		x := (w - pw) / 2
		y := (h - ph) / 2
		return image.Rect(x, y, x+pw, y+ph)
	default:
		return image.Rectangle{}
	}
}

func inRect(x, y int, r image.Rectangle) bool {
	return image.Pt(x, y).In(r)
}

func hasDance(scene config.Scene) bool {
	return scene == config.SceneDance || scene == config.ScenePage
}

func hasCarousel(scene config.Scene) bool {
	return scene == config.SceneCarousel || scene == config.ScenePage
}
