// Package camera holds the perspective camera shared by the scenes: view and
// projection matrices, world-to-screen projection and the visible viewport
// size used to size carousel planes.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Perspective struct {
	FovY     float64 // vertical field of view, degrees
	Near     float64
	Far      float64
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
}

// New returns a camera at position looking at the origin, with the
// near/far planes three.js uses by default.
func New(fovY float64, position mgl64.Vec3) *Perspective {
	return &Perspective{
		FovY:     fovY,
		Near:     0.1,
		Far:      1000,
		Position: position,
		Up:       mgl64.Vec3{0, 1, 0},
	}
}

func (c *Perspective) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Perspective) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// Distance from the camera to its target.
func (c *Perspective) Distance() float64 {
	return c.Position.Sub(c.Target).Len()
}

// Viewport returns the world-space size visible on the plane through the
// target, facing the camera.
func (c *Perspective) Viewport(aspect float64) (width, height float64) {
	height = 2 * c.Distance() * math.Tan(mgl64.DegToRad(c.FovY)/2)
	return height * aspect, height
}

// Projector caches the matrices for one frame.
type Projector struct {
	cam        *Perspective
	modelView  mgl64.Mat4
	projection mgl64.Mat4
	w, h       float64
}

// Projector prepares projection of points given in model space.
func (c *Perspective) Projector(model mgl64.Mat4, w, h float64) *Projector {
	return &Projector{
		cam:        c,
		modelView:  c.View().Mul4(model),
		projection: c.Projection(w / h),
		w:          w,
		h:          h,
	}
}

// Project maps p to screen pixels with the origin at the top left. depth is
// the distance along the view axis. ok is false for points outside the
// near/far range.
func (p *Projector) Project(v mgl64.Vec3) (x, y, depth float64, ok bool) {
	eye := p.modelView.Mul4x1(v.Vec4(1))
	depth = -eye.Z()
	if depth < p.cam.Near || depth > p.cam.Far {
		return 0, 0, depth, false
	}
	clip := p.projection.Mul4x1(eye)
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	x = (ndcX + 1) / 2 * p.w
	y = (1 - ndcY) / 2 * p.h
	return x, y, depth, true
}

// PointSize is the on-screen size in pixels of a size-attenuated point:
// size * (screen height / 2) / depth, as three.js PointsMaterial does it.
func (p *Projector) PointSize(size, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return size * p.h / 2 / depth
}
