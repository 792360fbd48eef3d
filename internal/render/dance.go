package render

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/ambient-scenes/internal/camera"
	"github.com/iburimskiy/ambient-scenes/internal/particles"
	"github.com/iburimskiy/ambient-scenes/internal/starfield"
)

const starSpriteSize = 32

// minPointSize keeps far points from vanishing; GL rasterises points of at
// least one pixel.
const minPointSize = 1

// Dance draws the starfield and the particle cloud through an orbiting
// camera.
type Dance struct {
	Camera     *camera.Perspective
	Background color.Color

	points *quadBatch
	stars  *quadBatch

	// star sprites by Params.Fade
	sprites map[bool]*ebiten.Image
}

func NewDance(cam *camera.Perspective, background string) (*Dance, error) {
	bg, err := ParseColorString(background)
	if err != nil {
		return nil, err
	}
	return &Dance{
		Camera:     cam,
		Background: bg,
		points:     newQuadBatch(whiteSubImage, ebiten.BlendLighter),
		stars:      newQuadBatch(whiteSubImage, ebiten.BlendLighter),
		sprites:    map[bool]*ebiten.Image{},
	}, nil
}

// Draw renders into dst. Either layer may be nil.
func (d *Dance) Draw(dst *ebiten.Image, field *particles.Field, stars *starfield.Stars) {
	if d.Background != nil {
		dst.Fill(d.Background)
	}
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w <= 0 || h <= 0 {
		return
	}
	ox, oy := float32(b.Min.X), float32(b.Min.Y)

	if stars != nil {
		d.stars.src = d.starSprite(stars)
		proj := d.Camera.Projector(mgl64.Ident4(), w, h)
		for i := 0; i < stars.Len(); i++ {
			p := mgl64.Vec3{float64(stars.Positions[i*3]), float64(stars.Positions[i*3+1]), float64(stars.Positions[i*3+2])}
			x, y, depth, ok := proj.Project(p)
			if !ok {
				continue
			}
			size := math.Max(stars.PointSize(i, depth), minPointSize)
			d.stars.add(dst, ox+float32(x), oy+float32(y), float32(size),
				stars.Colors[i*3], stars.Colors[i*3+1], stars.Colors[i*3+2], 1)
		}
		d.stars.flush(dst)
	}

	if field != nil {
		buf := field.Buffer()
		mat := field.Material
		proj := d.Camera.Projector(field.Model(), w, h)
		d.points.op.Blend = pointBlend(mat)
		alpha := float32(mat.Opacity)
		for i := 0; i < buf.Len(); i++ {
			px, py, pz := buf.Position(i)
			x, y, depth, ok := proj.Project(mgl64.Vec3{float64(px), float64(py), float64(pz)})
			if !ok {
				continue
			}
			size := mat.Size
			if mat.SizeAttenuation {
				size = proj.PointSize(mat.Size, depth)
			}
			size = math.Max(size, minPointSize)
			r, g, bl := buf.Color(i)
			d.points.add(dst, ox+float32(x), oy+float32(y), float32(size), r, g, bl, alpha)
		}
		d.points.flush(dst)
	}
}

// pointBlend is additive for glowing materials and plain alpha blending
// otherwise.
func pointBlend(m particles.Material) ebiten.Blend {
	if m.Additive {
		return ebiten.BlendLighter
	}
	return ebiten.BlendSourceOver
}

func (d *Dance) starSprite(s *starfield.Stars) *ebiten.Image {
	fade := s.Params.Fade
	if img, ok := d.sprites[fade]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(starSpritePixels(s))
	d.sprites[fade] = img
	return img
}

// starSpritePixels bakes the star falloff of s into a texture.
func starSpritePixels(s *starfield.Stars) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, starSpriteSize, starSpriteSize))
	for y := 0; y < starSpriteSize; y++ {
		for x := 0; x < starSpriteSize; x++ {
			dx := (float64(x)+0.5)/starSpriteSize - 0.5
			dy := (float64(y)+0.5)/starSpriteSize - 0.5
			a := s.Alpha(math.Hypot(dx, dy))
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(math.Round(a * 255))})
		}
	}
	return img
}
