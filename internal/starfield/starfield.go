// Package starfield is the static star backdrop behind the particle cloud.
// Stars are generated once from a fixed seed and never move; only a global
// twinkle factor changes with time.
package starfield

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/ambient-scenes/internal/config"
	"github.com/iburimskiy/ambient-scenes/internal/frameloop"
)

type Loop interface {
	OnFrame(cb func(frameloop.Frame)) frameloop.Registration
}

type Params struct {
	Count      int
	Radius     float64 // inner radius of the star shell
	Depth      float64 // thickness of the shell
	Factor     float64 // size multiplier
	Saturation float64
	Fade       bool // soft round points
	Speed      float64
	Seed       int64
}

func DefaultParams() Params {
	return Params{
		Count:      config.StarCount,
		Radius:     config.StarRadius,
		Depth:      config.StarDepth,
		Factor:     config.StarFactor,
		Saturation: config.StarSaturation,
		Fade:       true,
		Speed:      config.StarSpeed,
		Seed:       config.StarSeed,
	}
}

type Stars struct {
	Params    Params
	Positions []float32
	Colors    []float32
	Sizes     []float32

	// Time drives the twinkle; it advances by delta*Speed each frame.
	Time float64

	reg frameloop.Registration
}

// New generates the stars. Each star sits a little closer than the one
// before it, starting from Radius+Depth, in a direction uniform over the
// sphere; its hue walks the colour wheel with its index.
func New(p Params) *Stars {
	rng := rand.New(rand.NewSource(p.Seed))
	s := &Stars{
		Params:    p,
		Positions: make([]float32, 0, p.Count*3),
		Colors:    make([]float32, 0, p.Count*3),
		Sizes:     make([]float32, p.Count),
	}
	for i := range s.Sizes {
		s.Sizes[i] = float32((0.5 + 0.5*rng.Float64()) * p.Factor)
	}

	r := p.Radius + p.Depth
	increment := 0.0
	if p.Count > 0 {
		increment = p.Depth / float64(p.Count)
	}
	for i := 0; i < p.Count; i++ {
		r -= increment * rng.Float64()
		phi := math.Acos(1 - rng.Float64()*2)
		theta := rng.Float64() * 2 * math.Pi

		sinPhi := math.Sin(phi)
		s.Positions = append(s.Positions,
			float32(r*sinPhi*math.Sin(theta)),
			float32(r*math.Cos(phi)),
			float32(r*sinPhi*math.Cos(theta)),
		)

		c := colorful.Hsl(float64(i)/float64(p.Count)*360, p.Saturation, 0.9)
		s.Colors = append(s.Colors, float32(c.R), float32(c.G), float32(c.B))
	}
	return s
}

func (s *Stars) Len() int {
	return len(s.Sizes)
}

// Twinkle is the size multiplier shared by all stars at the current time.
func (s *Stars) Twinkle() float64 {
	return 3 + math.Sin(s.Time+100)
}

// PointSize is a star's on-screen size at the given view depth.
func (s *Stars) PointSize(i int, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return float64(s.Sizes[i]) * (30 / depth) * s.Twinkle()
}

// Alpha is the opacity at distance d from a point's centre, d in [0, 0.5]
// of the point's size. Without fade points are hard squares.
func (s *Stars) Alpha(d float64) float64 {
	if !s.Params.Fade {
		return 1
	}
	return 1 / (1 + math.Exp(16*(d-0.25)))
}

func (s *Stars) Mount(loop Loop) {
	if s.reg != nil {
		return
	}
	s.reg = loop.OnFrame(func(f frameloop.Frame) {
		s.Time += f.Delta.Seconds() * s.Params.Speed
	})
}

func (s *Stars) Unmount() {
	if s.reg != nil {
		s.reg.Dispose()
		s.reg = nil
	}
}
