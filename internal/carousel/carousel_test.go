package carousel

import (
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/ambient-scenes/internal/frameloop"
)

func fixedViewport(w, h float64) Viewport {
	return ViewportFunc(func() (float64, float64) { return w, h })
}

func mounted(t *testing.T, locators []string) (*Carousel, *frameloop.Loop) {
	t.Helper()
	loop := frameloop.New()
	c := New(locators)
	c.Mount(loop, fixedViewport(4, 2))
	return c, loop
}

func TestCursorAfterAdvances(t *testing.T) {
	for n := 1; n <= 5; n++ {
		locators := make([]string, n)
		for i := range locators {
			locators[i] = string(rune('a'+i)) + ".png"
		}
		c := New(locators)
		for k := 0; k < 3*n+2; k++ {
			if c.Cursor() != k%n {
				t.Fatalf("n=%d k=%d cursor=%d", n, k, c.Cursor())
			}
			c.Advance()
		}
	}
}

func TestEmptyCarouselIsInert(t *testing.T) {
	for _, locators := range [][]string{nil, {}} {
		c, loop := mounted(t, locators)
		if c.Len() != 0 || len(c.Elements()) != 0 {
			t.Fatalf("expected no elements")
		}
		if f, tm := loop.Len(); f != 0 || tm != 0 {
			t.Fatalf("empty carousel registered %d frame callbacks and %d timers", f, tm)
		}
		c.Advance()
		loop.Advance(time.Minute)
		if c.Cursor() != 0 {
			t.Fatalf("cursor moved on an empty carousel")
		}
		c.Unmount()
	}
}

func TestElementsSizedFromViewport(t *testing.T) {
	c, _ := mounted(t, []string{"a.png", "b.png"})
	for _, e := range c.Elements() {
		if math.Abs(e.Width-3.8) > 1e-12 || math.Abs(e.Height-1.9) > 1e-12 {
			t.Fatalf("element %q sized %vx%v", e.Locator, e.Width, e.Height)
		}
	}
}

func TestElementsStartOpaque(t *testing.T) {
	c := New([]string{"a.png", "b.png", "c.png"})
	for _, e := range c.Elements() {
		if e.Opacity != 1 || e.Z != 0 {
			t.Fatalf("element %q starts at opacity %v z %v", e.Locator, e.Opacity, e.Z)
		}
	}

	c.Update()
	e := c.Elements()
	if e[0].Opacity != 1 {
		t.Fatalf("active element opacity %v, want 1", e[0].Opacity)
	}
	for _, inactive := range e[1:] {
		if math.Abs(inactive.Opacity-0.95) > 1e-15 {
			t.Fatalf("inactive %q opacity %v after one step, want 0.95", inactive.Locator, inactive.Opacity)
		}
	}
}

func TestSmoothingSteps(t *testing.T) {
	c := New([]string{"a.png", "b.png"})
	c.elements[0].Opacity = 0
	c.elements[1].Opacity = 0
	c.Update()
	e := c.Elements()
	if math.Abs(e[0].Opacity-0.05) > 1e-15 {
		t.Fatalf("opacity after one step %v, want 0.05", e[0].Opacity)
	}
	c.Update()
	e = c.Elements()
	if math.Abs(e[0].Opacity-0.0975) > 1e-15 {
		t.Fatalf("opacity after two steps %v, want 0.0975", e[0].Opacity)
	}
	if e[1].Opacity != 0 {
		t.Fatalf("inactive element gained opacity: %v", e[1].Opacity)
	}
}

func TestSmoothingApproachesWithoutOvershoot(t *testing.T) {
	c := New([]string{"a.png", "b.png", "c.png"})
	// make the inactive ones start visible
	for _, e := range c.elements[1:] {
		e.Opacity = 1
		e.Z = 0.1
	}
	prev := c.Elements()
	for frame := 0; frame < 600; frame++ {
		c.Update()
		cur := c.Elements()
		if cur[0].Opacity < prev[0].Opacity || cur[0].Opacity > 1 {
			t.Fatalf("active opacity not monotone at frame %d: %v -> %v", frame, prev[0].Opacity, cur[0].Opacity)
		}
		if cur[0].Z < prev[0].Z || cur[0].Z > 0.1 {
			t.Fatalf("active depth not monotone at frame %d: %v -> %v", frame, prev[0].Z, cur[0].Z)
		}
		for i := 1; i < 3; i++ {
			if cur[i].Opacity > prev[i].Opacity || cur[i].Opacity < 0 {
				t.Fatalf("inactive opacity not monotone at frame %d", frame)
			}
			if cur[i].Z > prev[i].Z || cur[i].Z < -0.1 {
				t.Fatalf("inactive depth not monotone at frame %d", frame)
			}
		}
		prev = cur
	}
	if math.Abs(prev[0].Opacity-1) > 1e-6 || math.Abs(prev[0].Z-0.1) > 1e-6 {
		t.Fatalf("active element did not converge: %+v", prev[0])
	}
	if prev[1].Opacity > 1e-6 || math.Abs(prev[1].Z+0.1) > 1e-6 {
		t.Fatalf("inactive element did not converge: %+v", prev[1])
	}
}

func TestMountedFrameUpdatesAndTimer(t *testing.T) {
	c, loop := mounted(t, []string{"a.png", "b.png", "c.png"})

	loop.Advance(16 * time.Millisecond)
	if e := c.Elements()[1]; math.Abs(e.Opacity-0.95) > 1e-15 {
		t.Fatalf("frame callback did not smooth: %+v", e)
	}

	loop.Advance(3500*time.Millisecond - 16*time.Millisecond)
	if c.Cursor() != 1 {
		t.Fatalf("timer did not advance, cursor %d", c.Cursor())
	}
	loop.Advance(3500 * time.Millisecond)
	loop.Advance(3500 * time.Millisecond)
	if c.Cursor() != 0 {
		t.Fatalf("timer did not wrap, cursor %d", c.Cursor())
	}
}

func TestClickDoesNotResetTimer(t *testing.T) {
	c, loop := mounted(t, []string{"a.png", "b.png", "c.png"})
	loop.Advance(3 * time.Second)
	c.Advance()
	loop.Advance(500 * time.Millisecond)
	if c.Cursor() != 2 {
		t.Fatalf("expected click plus tick, cursor %d", c.Cursor())
	}
}

func TestClickTickClickScenario(t *testing.T) {
	c, loop := mounted(t, []string{"a.png", "b.png", "c.png"})
	if c.Cursor() != 0 {
		t.Fatalf("initial cursor %d", c.Cursor())
	}
	c.Advance()
	if c.Cursor() != 1 {
		t.Fatalf("after click cursor %d", c.Cursor())
	}
	loop.Advance(3500 * time.Millisecond)
	if c.Cursor() != 2 {
		t.Fatalf("after tick cursor %d", c.Cursor())
	}
	c.Advance()
	if c.Cursor() != 0 {
		t.Fatalf("after second click cursor %d", c.Cursor())
	}
}

func TestUnmountStopsEverything(t *testing.T) {
	c, loop := mounted(t, []string{"a.png", "b.png"})
	before := c.Elements()
	c.Unmount()
	if f, tm := loop.Len(); f != 0 || tm != 0 {
		t.Fatalf("registrations left after unmount: %d %d", f, tm)
	}
	loop.Advance(time.Minute)
	if c.Cursor() != 0 || c.Elements()[1] != before[1] {
		t.Fatalf("carousel changed after unmount")
	}
}

func TestSetImagesRestartsTimerOnLengthChange(t *testing.T) {
	c, loop := mounted(t, []string{"a.png", "b.png"})
	loop.Advance(3 * time.Second)

	c.SetImages([]string{"a.png", "b.png", "c.png"})
	if f, tm := loop.Len(); f != 1 || tm != 1 {
		t.Fatalf("expected one frame callback and one timer, got %d %d", f, tm)
	}
	// the old timer would have fired at 3.5s
	loop.Advance(time.Second)
	if c.Cursor() != 0 {
		t.Fatalf("stale timer fired, cursor %d", c.Cursor())
	}
	loop.Advance(2500 * time.Millisecond)
	if c.Cursor() != 1 {
		t.Fatalf("restarted timer did not fire, cursor %d", c.Cursor())
	}
	loop.Advance(7 * time.Second)
	if c.Cursor() != 0 {
		t.Fatalf("timer used a stale length, cursor %d", c.Cursor())
	}
}

func TestSetImagesSameLengthKeepsTimer(t *testing.T) {
	c, loop := mounted(t, []string{"a.png", "b.png"})
	loop.Advance(3 * time.Second)
	c.SetImages([]string{"b.png", "z.png"})
	loop.Advance(500 * time.Millisecond)
	if c.Cursor() != 1 {
		t.Fatalf("timer was restarted, cursor %d", c.Cursor())
	}
}

func TestSetImagesKeepsStateByLocator(t *testing.T) {
	c, loop := mounted(t, []string{"a.png", "b.png"})
	for i := 0; i < 10; i++ {
		loop.Advance(16 * time.Millisecond)
	}
	before := c.Elements()[0]

	c.SetImages([]string{"new.png", "a.png"})
	after := c.Elements()
	if after[1] != before {
		t.Fatalf("a.png lost its state: %+v vs %+v", after[1], before)
	}
	if after[0].Opacity != 1 || after[0].Z != 0 || after[0].Width == 0 {
		t.Fatalf("new element not fresh or not sized: %+v", after[0])
	}
}

func TestSetImagesCursorOutOfRange(t *testing.T) {
	c, loop := mounted(t, []string{"a.png", "b.png", "c.png"})
	c.Advance()
	c.Advance()
	c.SetImages([]string{"a.png"})
	if c.Cursor() != 0 {
		t.Fatalf("cursor %d outside a set of 1", c.Cursor())
	}

	c.SetImages(nil)
	if f, tm := loop.Len(); f != 0 || tm != 0 {
		t.Fatalf("empty set kept registrations: %d %d", f, tm)
	}
	c.SetImages([]string{"x.png", "y.png"})
	if f, tm := loop.Len(); f != 1 || tm != 1 {
		t.Fatalf("refilled set did not subscribe: %d %d", f, tm)
	}
}
