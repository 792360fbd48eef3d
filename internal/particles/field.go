// Package particles is the ambient point cloud: a one-time generated buffer
// of coloured points in a spherical shell, turned and scaled as a whole as
// a pure function of elapsed time.
package particles

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	css "github.com/mazznoer/csscolorparser"

	"github.com/iburimskiy/ambient-scenes/internal/config"
	"github.com/iburimskiy/ambient-scenes/internal/frameloop"
)

type Loop interface {
	OnFrame(cb func(frameloop.Frame)) frameloop.Registration
}

// Params are the inputs the buffer is generated from.
type Params struct {
	Count int
	Seed  int64
	Shell Shell
	From  string // CSS colour
	To    string
}

func DefaultParams(seed int64) Params {
	return Params{
		Count: config.ParticleCount,
		Seed:  seed,
		Shell: Shell{MinRadius: config.ParticleMinRadius, MaxRadius: config.ParticleMaxRadius},
		From:  config.ParticleColorFrom,
		To:    config.ParticleColorTo,
	}
}

// Material describes how the points are drawn.
type Material struct {
	Size            float64
	Opacity         float64
	SizeAttenuation bool
	Additive        bool
}

func DefaultMaterial() Material {
	return Material{
		Size:            config.ParticleSize,
		Opacity:         config.ParticleOpacity,
		SizeAttenuation: true,
		Additive:        true,
	}
}

type Field struct {
	Material  Material
	RotationY float64
	Scale     float64

	params   Params
	from, to colorful.Color

	buf         *Buffer
	bufParams   Params
	generations int

	reg frameloop.Registration
}

func NewField(p Params) (*Field, error) {
	f := &Field{Material: DefaultMaterial(), Scale: 1}
	if err := f.SetParams(p); err != nil {
		return nil, err
	}
	return f, nil
}

// SetParams changes the generation inputs. The buffer is regenerated on the
// next Buffer call only if they differ from the ones it was built from.
func (f *Field) SetParams(p Params) error {
	if p.Count < 0 {
		return fmt.Errorf("negative particle count %d", p.Count)
	}
	if p.Shell.MinRadius < 0 || p.Shell.MaxRadius < p.Shell.MinRadius {
		return fmt.Errorf("invalid shell [%v, %v]", p.Shell.MinRadius, p.Shell.MaxRadius)
	}
	from, err := parseColor(p.From)
	if err != nil {
		return err
	}
	to, err := parseColor(p.To)
	if err != nil {
		return err
	}
	f.params = p
	f.from, f.to = from, to
	return nil
}

func (f *Field) Params() Params {
	return f.params
}

// Buffer returns the point buffer, generating it on first use.
func (f *Field) Buffer() *Buffer {
	if f.buf == nil || f.bufParams != f.params {
		rng := rand.New(rand.NewSource(f.params.Seed))
		f.buf = Generate(f.params.Count, rng, f.params.Shell, f.from, f.to)
		f.bufParams = f.params
		f.generations++
	}
	return f.buf
}

// Generations counts how many times the buffer was built.
func (f *Field) Generations() int {
	return f.generations
}

// Update sets the cloud transform for elapsed seconds. Both values depend
// on elapsed time only, never on the number of frames.
func (f *Field) Update(elapsed float64) {
	f.RotationY = Rotation(elapsed)
	f.Scale = Pulse(elapsed)
}

func Rotation(elapsed float64) float64 {
	return elapsed * config.ParticleSpin
}

func Pulse(elapsed float64) float64 {
	return 1 + math.Sin(elapsed*config.ParticlePulseSpeed)*config.ParticlePulseDepth
}

// Model is the cloud's model matrix: rotation about Y after uniform scale.
func (f *Field) Model() mgl64.Mat4 {
	return mgl64.HomogRotate3DY(f.RotationY).Mul4(mgl64.Scale3D(f.Scale, f.Scale, f.Scale))
}

// Mount generates the buffer and starts updating the transform every frame.
func (f *Field) Mount(loop Loop) {
	if f.reg != nil {
		return
	}
	f.Buffer()
	f.reg = loop.OnFrame(func(fr frameloop.Frame) { f.Update(fr.Seconds()) })
}

func (f *Field) Unmount() {
	if f.reg != nil {
		f.reg.Dispose()
		f.reg = nil
	}
}

func parseColor(s string) (colorful.Color, error) {
	c, err := css.Parse(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("particle colour %q: %w", s, err)
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}, nil
}
