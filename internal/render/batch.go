package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vertex buffers are flushed before the uint16 index space runs out.
const maxBatchQuads = 16000

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// quadBatch collects screen-aligned textured quads and draws them with a
// single DrawTriangles call per flush.
type quadBatch struct {
	vertices []ebiten.Vertex
	indices  []uint16
	src      *ebiten.Image
	op       ebiten.DrawTrianglesOptions
}

func newQuadBatch(src *ebiten.Image, blend ebiten.Blend) *quadBatch {
	b := &quadBatch{src: src}
	b.op.Blend = blend
	b.op.ColorScaleMode = ebiten.ColorScaleModeStraightAlpha
	return b
}

// add queues a square of side size centred at (x, y) in straight-alpha rgba.
func (b *quadBatch) add(dst *ebiten.Image, x, y, size float32, r, g, bl, a float32) {
	if len(b.vertices)/4 >= maxBatchQuads {
		b.flush(dst)
	}
	half := size / 2
	bounds := b.src.Bounds()
	sx0, sy0 := float32(bounds.Min.X), float32(bounds.Min.Y)
	sx1, sy1 := float32(bounds.Max.X), float32(bounds.Max.Y)

	base := uint16(len(b.vertices))
	b.vertices = append(b.vertices,
		ebiten.Vertex{DstX: x - half, DstY: y - half, SrcX: sx0, SrcY: sy0, ColorR: r, ColorG: g, ColorB: bl, ColorA: a},
		ebiten.Vertex{DstX: x + half, DstY: y - half, SrcX: sx1, SrcY: sy0, ColorR: r, ColorG: g, ColorB: bl, ColorA: a},
		ebiten.Vertex{DstX: x - half, DstY: y + half, SrcX: sx0, SrcY: sy1, ColorR: r, ColorG: g, ColorB: bl, ColorA: a},
		ebiten.Vertex{DstX: x + half, DstY: y + half, SrcX: sx1, SrcY: sy1, ColorR: r, ColorG: g, ColorB: bl, ColorA: a},
	)
	b.indices = append(b.indices, base, base+1, base+2, base+1, base+3, base+2)
}

func (b *quadBatch) flush(dst *ebiten.Image) {
	if len(b.vertices) == 0 {
		return
	}
	dst.DrawTriangles(b.vertices, b.indices, b.src, &b.op)
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}
