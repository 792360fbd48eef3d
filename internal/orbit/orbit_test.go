package orbit

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/ambient-scenes/internal/camera"
	"github.com/iburimskiy/ambient-scenes/internal/frameloop"
)

func TestNewFromPosition(t *testing.T) {
	c := New(mgl64.Vec3{0, 0, 6}, mgl64.Vec3{})
	if c.Radius != 6 || c.Theta != 0 || math.Abs(c.Phi-math.Pi/2) > 1e-12 {
		t.Fatalf("unexpected spherical coords r=%v θ=%v φ=%v", c.Radius, c.Theta, c.Phi)
	}
	if p := c.Position(); !p.ApproxEqualThreshold(mgl64.Vec3{0, 0, 6}, 1e-12) {
		t.Fatalf("position %v", p)
	}
}

func TestAutoRotateRate(t *testing.T) {
	c := New(mgl64.Vec3{0, 0, 6}, mgl64.Vec3{})
	c.Damping = 0
	for i := 0; i < 60; i++ {
		c.Update(1.0 / 60)
	}
	want := -2 * math.Pi / 60 * 0.3
	if math.Abs(c.Theta-want) > 1e-12 {
		t.Fatalf("theta after 1s %v, want %v", c.Theta, want)
	}
}

func TestDampedAutoRotateConverges(t *testing.T) {
	c := New(mgl64.Vec3{0, 0, 6}, mgl64.Vec3{})
	prev := c.Theta
	var step float64
	for i := 0; i < 2000; i++ {
		c.Update(1.0 / 60)
		step = c.Theta - prev
		prev = c.Theta
	}
	want := -2 * math.Pi / 60 * 0.3 / 60
	if math.Abs(step-want) > 1e-9 {
		t.Fatalf("steady step %v, want %v", step, want)
	}
}

func TestDragPausesAutoRotate(t *testing.T) {
	c := New(mgl64.Vec3{0, 0, 6}, mgl64.Vec3{})
	c.Damping = 0
	c.BeginDrag(100, 100)
	c.Update(1)
	if c.Theta != 0 {
		t.Fatalf("auto-rotated while dragging: %v", c.Theta)
	}

	// dragging half the viewport height to the right turns half a circle
	c.Drag(400, 100, 600)
	c.Update(0)
	if math.Abs(c.Theta+math.Pi) > 1e-12 {
		t.Fatalf("theta after drag %v", c.Theta)
	}
	c.EndDrag()
	c.Drag(500, 100, 600)
	c.Update(0)
	if math.Abs(c.Theta+math.Pi) > 1e-12 {
		t.Fatalf("drag after EndDrag moved the camera")
	}
}

func TestPolarClamp(t *testing.T) {
	c := New(mgl64.Vec3{0, 0, 6}, mgl64.Vec3{})
	c.Damping = 0
	c.BeginDrag(0, 0)
	c.Drag(0, 10000, 600)
	c.Update(0)
	if c.Phi <= 0 || c.Phi > 1e-5 {
		t.Fatalf("phi not clamped at the pole: %v", c.Phi)
	}
	c.Drag(0, -20000, 600)
	c.Update(0)
	if c.Phi >= math.Pi || c.Phi < math.Pi-1e-5 {
		t.Fatalf("phi not clamped at the other pole: %v", c.Phi)
	}
}

func TestZoomDisabled(t *testing.T) {
	c := New(mgl64.Vec3{0, 0, 6}, mgl64.Vec3{})
	c.Zoom(0.5)
	if c.Radius != 6 {
		t.Fatalf("zoom changed radius to %v", c.Radius)
	}
	c.EnableZoom = true
	c.Zoom(0.5)
	if c.Radius != 3 {
		t.Fatalf("enabled zoom radius %v", c.Radius)
	}
}

func TestMountMovesCamera(t *testing.T) {
	cam := camera.New(60, mgl64.Vec3{0, 0, 6})
	c := New(cam.Position, cam.Target)
	loop := frameloop.New()
	c.Mount(loop, cam)
	for i := 0; i < 120; i++ {
		loop.Advance(16 * time.Millisecond)
	}
	if cam.Position.ApproxEqualThreshold(mgl64.Vec3{0, 0, 6}, 1e-6) {
		t.Fatalf("camera did not move")
	}
	if math.Abs(cam.Position.Len()-6) > 1e-9 {
		t.Fatalf("camera left the orbit: %v", cam.Position.Len())
	}
	c.Unmount()
	before := cam.Position
	loop.Advance(time.Second)
	if cam.Position != before {
		t.Fatalf("camera moved after unmount")
	}
}
