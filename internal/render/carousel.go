package render

import (
	_ "embed"
	"image"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/ambient-scenes/internal/camera"
	"github.com/iburimskiy/ambient-scenes/internal/carousel"
	"github.com/iburimskiy/ambient-scenes/internal/config"
)

//go:embed rounded.kage
var roundedShaderSrc []byte

// Planes fainter than one 8-bit step are not drawn.
const minVisibleOpacity = 1.0 / 255

// Carousel draws carousel elements as rounded, cover-fitted image planes.
type Carousel struct {
	Camera *camera.Perspective
	Corner float64 // world units
	Images *Textures

	shader *ebiten.Shader
	order  []int
}

func NewCarousel(cam *camera.Perspective, images *Textures) (*Carousel, error) {
	shader, err := ebiten.NewShader(roundedShaderSrc)
	if err != nil {
		return nil, err
	}
	return &Carousel{
		Camera: cam,
		Corner: config.CarouselCornerSize,
		Images: images,
		shader: shader,
	}, nil
}

// Viewport returns the world-space size visible through the camera on a
// target of the given pixel size. It is read when elements are created.
func (r *Carousel) Viewport(rect image.Rectangle) carousel.Viewport {
	return carousel.ViewportFunc(func() (float64, float64) {
		if rect.Dy() == 0 {
			return 0, 0
		}
		return r.Camera.Viewport(float64(rect.Dx()) / float64(rect.Dy()))
	})
}

// Draw renders c into dst, back to front.
func (r *Carousel) Draw(dst *ebiten.Image, c *carousel.Carousel) {
	elems := c.Elements()
	if len(elems) == 0 {
		return
	}
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w <= 0 || h <= 0 {
		return
	}
	proj := r.Camera.Projector(mgl64.Ident4(), w, h)

	r.order = r.order[:0]
	for i := range elems {
		r.order = append(r.order, i)
	}
	sort.SliceStable(r.order, func(i, j int) bool {
		return elems[r.order[i]].Z < elems[r.order[j]].Z
	})

	for _, i := range r.order {
		e := elems[i]
		if e.Opacity < minVisibleOpacity || e.Width <= 0 || e.Height <= 0 {
			continue
		}
		tex := r.Images.Get(e.Locator)
		if tex == nil {
			continue
		}
		r.drawPlane(dst, proj, e, tex, float32(b.Min.X), float32(b.Min.Y))
	}
}

func (r *Carousel) drawPlane(dst *ebiten.Image, proj *camera.Projector, e carousel.Element, tex *ebiten.Image, ox, oy float32) {
	hw, hh := e.Width/2, e.Height/2
	corners := [4]mgl64.Vec3{
		{-hw, hh, e.Z},
		{hw, hh, e.Z},
		{-hw, -hh, e.Z},
		{hw, -hh, e.Z},
	}

	tb := tex.Bounds()
	crop := CoverCrop(tb.Dx(), tb.Dy(), e.Width, e.Height)
	srcX := [4]float32{crop.X0, crop.X1, crop.X0, crop.X1}
	srcY := [4]float32{crop.Y0, crop.Y0, crop.Y1, crop.Y1}
	for i := range srcX {
		srcX[i] += float32(tb.Min.X)
		srcY[i] += float32(tb.Min.Y)
	}

	var vertices [4]ebiten.Vertex
	for i, p := range corners {
		x, y, _, ok := proj.Project(p)
		if !ok {
			return
		}
		vertices[i] = ebiten.Vertex{
			DstX: ox + float32(x), DstY: oy + float32(y),
			SrcX: srcX[i], SrcY: srcY[i],
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}

	op := &ebiten.DrawTrianglesShaderOptions{}
	op.Images[0] = tex
	op.Uniforms = planeUniforms(crop, r.Corner, e)
	dst.DrawTrianglesShader(vertices[:], []uint16{0, 1, 2, 1, 3, 2}, r.shader, op)
}

// planeUniforms feeds rounded.kage. CropOrigin is relative to the image's
// own origin; the shader subtracts imageSrc0Origin from srcPos to match.
func planeUniforms(crop Crop, corner float64, e carousel.Element) map[string]any {
	return map[string]any{
		"CropOrigin": []float32{crop.X0, crop.Y0},
		"CropSize":   []float32{crop.X1 - crop.X0, crop.Y1 - crop.Y0},
		"Radius":     []float32{cornerFraction(corner, e.Width), cornerFraction(corner, e.Height)},
		"Opacity":    float32(e.Opacity),
	}
}

// Crop is a source rectangle in texture pixels.
type Crop struct {
	X0, Y0, X1, Y1 float32
}

// CoverCrop returns the centred part of a texW x texH image that has the
// plane's aspect ratio, so the image covers the plane without stretching.
func CoverCrop(texW, texH int, planeW, planeH float64) Crop {
	tw, th := float64(texW), float64(texH)
	if tw <= 0 || th <= 0 || planeW <= 0 || planeH <= 0 {
		return Crop{X1: float32(tw), Y1: float32(th)}
	}
	planeAspect := planeW / planeH
	texAspect := tw / th
	if texAspect > planeAspect {
		cw := th * planeAspect
		x0 := (tw - cw) / 2
		return Crop{X0: float32(x0), Y0: 0, X1: float32(x0 + cw), Y1: float32(th)}
	}
	ch := tw / planeAspect
	y0 := (th - ch) / 2
	return Crop{X0: 0, Y0: float32(y0), X1: float32(tw), Y1: float32(y0 + ch)}
}

// cornerFraction is the corner radius as a fraction of a side, capped at
// half the side and kept above zero for the shader's division.
func cornerFraction(radius, side float64) float32 {
	f := radius / side
	if f > 0.5 {
		f = 0.5
	}
	if f < 1e-4 {
		f = 1e-4
	}
	return float32(f)
}
