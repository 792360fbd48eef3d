package render

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	_ "golang.org/x/image/webp"

	"github.com/iburimskiy/ambient-scenes/internal/logs"
)

// Textures loads carousel images on first use. A locator that fails to
// load is logged once and then treated as an image that draws nothing.
type Textures struct {
	// FS, when set, resolves locators inside it instead of the OS file system.
	FS fs.FS

	images map[string]*ebiten.Image
}

func NewTextures(fsys fs.FS) *Textures {
	return &Textures{FS: fsys, images: map[string]*ebiten.Image{}}
}

func (t *Textures) Get(locator string) *ebiten.Image {
	if img, ok := t.images[locator]; ok {
		return img
	}
	img, err := t.load(locator)
	if err != nil {
		logs.ErrorLogger.Printf("loading %q: %v", locator, err)
		img = nil
	}
	t.images[locator] = img
	return img
}

// Forget drops every texture not in keep.
func (t *Textures) Forget(keep []string) {
	live := make(map[string]bool, len(keep))
	for _, l := range keep {
		live[l] = true
	}
	for l, img := range t.images {
		if live[l] {
			continue
		}
		if img != nil {
			img.Deallocate()
		}
		delete(t.images, l)
	}
}

func (t *Textures) load(locator string) (*ebiten.Image, error) {
	if t.FS != nil {
		img, _, err := ebitenutil.NewImageFromFileSystem(t.FS, locator)
		return img, err
	}
	img, _, err := ebitenutil.NewImageFromFile(locator)
	return img, err
}
