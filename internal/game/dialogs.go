package game

import (
	"errors"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/ambient-scenes/internal/logs"
)

func (g *Game) openImagesDialog() error {
	files, err := zenity.SelectFileMultiple(
		zenity.Title("Open Images"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.webp"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	logs.InfoLogger.Printf("carousel: %d images selected", len(files))
	g.carousel.SetImages(files)
	g.textures.Forget(g.carousel.Locators())
	return nil
}

func (g *Game) openMusicDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	return g.music.Play(filename)
}
