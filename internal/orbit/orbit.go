// Package orbit moves a camera on a sphere around its target: drag to
// rotate, optional auto-rotation while idle, damped motion, no zoom.
package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/ambient-scenes/internal/camera"
	"github.com/iburimskiy/ambient-scenes/internal/config"
	"github.com/iburimskiy/ambient-scenes/internal/frameloop"
	"github.com/iburimskiy/ambient-scenes/internal/mathx"
)

const polarEpsilon = 1e-6

type Loop interface {
	OnFrame(cb func(frameloop.Frame)) frameloop.Registration
}

type Controls struct {
	AutoRotate      bool
	AutoRotateSpeed float64 // one turn per 60/speed seconds
	RotateSpeed     float64
	Damping         float64 // 0 disables damping
	EnableZoom      bool

	Target mgl64.Vec3
	Radius float64
	Theta  float64 // azimuth around +Y, 0 looks down -Z
	Phi    float64 // polar angle from +Y

	dTheta, dPhi float64

	dragging     bool
	lastX, lastY float64

	reg frameloop.Registration
}

// New places the controls at position, orbiting target.
func New(position, target mgl64.Vec3) *Controls {
	c := &Controls{
		AutoRotate:      true,
		AutoRotateSpeed: config.OrbitAutoRotateSpeed,
		RotateSpeed:     config.OrbitRotateSpeed,
		Damping:         config.OrbitDamping,
		Target:          target,
	}
	offset := position.Sub(target)
	c.Radius = offset.Len()
	if c.Radius > 0 {
		c.Theta = math.Atan2(offset.X(), offset.Z())
		c.Phi = math.Acos(mathx.Clamp(offset.Y()/c.Radius, -1, 1))
	}
	return c
}

func (c *Controls) Dragging() bool {
	return c.dragging
}

func (c *Controls) BeginDrag(x, y float64) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

// Drag rotates by the pointer movement since the last call. A drag across
// the full viewport height is one full turn at RotateSpeed 1.
func (c *Controls) Drag(x, y, viewportHeight float64) {
	if !c.dragging || viewportHeight <= 0 {
		return
	}
	dx, dy := x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y
	c.rotateLeft(2 * math.Pi * dx / viewportHeight * c.RotateSpeed)
	c.rotateUp(2 * math.Pi * dy / viewportHeight * c.RotateSpeed)
}

func (c *Controls) EndDrag() {
	c.dragging = false
}

// Zoom changes the orbit radius by factor, when zoom is enabled.
func (c *Controls) Zoom(factor float64) {
	if !c.EnableZoom || factor <= 0 {
		return
	}
	c.Radius *= factor
}

// Update applies pending rotation for a frame of dt seconds.
func (c *Controls) Update(dt float64) {
	if c.AutoRotate && !c.dragging {
		c.rotateLeft(c.autoRotationAngle(dt))
	}

	if c.Damping > 0 {
		c.Theta += c.dTheta * c.Damping
		c.Phi += c.dPhi * c.Damping
		c.dTheta *= 1 - c.Damping
		c.dPhi *= 1 - c.Damping
	} else {
		c.Theta += c.dTheta
		c.Phi += c.dPhi
		c.dTheta, c.dPhi = 0, 0
	}
	c.Phi = mathx.Clamp(c.Phi, polarEpsilon, math.Pi-polarEpsilon)
}

func (c *Controls) autoRotationAngle(dt float64) float64 {
	return 2 * math.Pi / 60 * c.AutoRotateSpeed * dt
}

func (c *Controls) rotateLeft(angle float64) {
	c.dTheta -= angle
}

func (c *Controls) rotateUp(angle float64) {
	c.dPhi -= angle
}

// Position is the camera position for the current angles.
func (c *Controls) Position() mgl64.Vec3 {
	sinPhi := math.Sin(c.Phi)
	return c.Target.Add(mgl64.Vec3{
		c.Radius * sinPhi * math.Sin(c.Theta),
		c.Radius * math.Cos(c.Phi),
		c.Radius * sinPhi * math.Cos(c.Theta),
	})
}

// Apply writes the orbit into cam.
func (c *Controls) Apply(cam *camera.Perspective) {
	cam.Target = c.Target
	cam.Position = c.Position()
}

// Mount updates the controls and cam every frame.
func (c *Controls) Mount(loop Loop, cam *camera.Perspective) {
	if c.reg != nil {
		return
	}
	c.reg = loop.OnFrame(func(f frameloop.Frame) {
		c.Update(f.Delta.Seconds())
		c.Apply(cam)
	})
}

func (c *Controls) Unmount() {
	if c.reg != nil {
		c.reg.Dispose()
		c.reg = nil
	}
}
