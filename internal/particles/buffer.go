package particles

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Buffer holds flat xyz positions and rgb colours, three floats per point.
type Buffer struct {
	Positions []float32
	Colors    []float32
}

func (b *Buffer) Len() int {
	return len(b.Positions) / 3
}

func (b *Buffer) Position(i int) (x, y, z float32) {
	return b.Positions[i*3], b.Positions[i*3+1], b.Positions[i*3+2]
}

func (b *Buffer) Color(i int) (r, g, bl float32) {
	return b.Colors[i*3], b.Colors[i*3+1], b.Colors[i*3+2]
}

// Shell is the spherical shell the points are placed in.
type Shell struct {
	MinRadius, MaxRadius float64
}

// Generate fills a buffer of count points. The radius is uniform in the
// shell, the direction is uniform over the sphere surface (polar angle from
// acos of a uniform draw), and the colour mixes from and to in linear RGB
// with a draw of its own.
func Generate(count int, rng *rand.Rand, shell Shell, from, to colorful.Color) *Buffer {
	b := &Buffer{
		Positions: make([]float32, count*3),
		Colors:    make([]float32, count*3),
	}
	for i := 0; i < count; i++ {
		r := shell.MinRadius + rng.Float64()*(shell.MaxRadius-shell.MinRadius)
		theta := 2 * math.Pi * rng.Float64()
		phi := math.Acos(2*rng.Float64() - 1)

		b.Positions[i*3] = float32(r * math.Sin(phi) * math.Cos(theta))
		b.Positions[i*3+1] = float32(r * math.Sin(phi) * math.Sin(theta))
		b.Positions[i*3+2] = float32(r * math.Cos(phi))

		c := from.BlendLinearRgb(to, rng.Float64())
		b.Colors[i*3] = float32(c.R)
		b.Colors[i*3+1] = float32(c.G)
		b.Colors[i*3+2] = float32(c.B)
	}
	return b
}
