// Package carousel cycles through a set of images, one active at a time.
// Every image keeps a plane mounted for the whole life of the carousel;
// only its opacity and depth move, smoothed toward the targets each frame.
//
// The package holds no drawing code. internal/render draws the elements.
package carousel

import (
	"time"

	"github.com/iburimskiy/ambient-scenes/internal/config"
	"github.com/iburimskiy/ambient-scenes/internal/frameloop"
	"github.com/iburimskiy/ambient-scenes/internal/mathx"
)

// Loop is the part of frameloop.Loop the carousel needs.
type Loop interface {
	OnFrame(cb func(frameloop.Frame)) frameloop.Registration
	Every(period time.Duration, fn func()) frameloop.Registration
}

// Viewport reports the world-space size visible at the carousel plane.
type Viewport interface {
	Size() (width, height float64)
}

type ViewportFunc func() (width, height float64)

func (f ViewportFunc) Size() (width, height float64) { return f() }

// Element is the visual state of one image.
type Element struct {
	Locator string
	Opacity float64
	Z       float64
	Width   float64
	Height  float64
}

type Carousel struct {
	Interval  time.Duration
	Smoothing float64
	Fill      float64

	elements []*Element
	cursor   int

	loop     Loop
	viewport Viewport
	frameReg frameloop.Registration
	timerReg frameloop.Registration
}

// New returns an unmounted carousel over locators. A nil or empty list
// gives a carousel that draws nothing.
func New(locators []string) *Carousel {
	c := &Carousel{
		Interval:  config.CarouselInterval,
		Smoothing: config.CarouselSmoothing,
		Fill:      config.CarouselFill,
	}
	for _, l := range locators {
		c.elements = append(c.elements, newElement(l))
	}
	return c
}

// newElement starts fully opaque at rest depth; inactive planes fade out
// from there.
func newElement(locator string) *Element {
	return &Element{Locator: locator, Opacity: 1}
}

func (c *Carousel) Len() int {
	return len(c.elements)
}

func (c *Carousel) Cursor() int {
	return c.cursor
}

func (c *Carousel) Mounted() bool {
	return c.loop != nil
}

// Elements returns copies of the element states in locator order.
func (c *Carousel) Elements() []Element {
	out := make([]Element, len(c.elements))
	for i, e := range c.elements {
		out[i] = *e
	}
	return out
}

func (c *Carousel) Locators() []string {
	out := make([]string, len(c.elements))
	for i, e := range c.elements {
		out[i] = e.Locator
	}
	return out
}

// Mount sizes the elements from viewport and starts the frame update and
// the advance timer on loop. Mounting twice is a no-op.
func (c *Carousel) Mount(loop Loop, viewport Viewport) {
	if c.Mounted() {
		return
	}
	c.loop = loop
	c.viewport = viewport
	for _, e := range c.elements {
		c.size(e)
	}
	c.subscribe()
}

// Unmount stops the timer and the frame update. Element state is kept.
func (c *Carousel) Unmount() {
	c.unsubscribe()
	c.loop = nil
	c.viewport = nil
}

// Advance moves the cursor to the next image, wrapping after the last.
// Timer ticks and clicks both land here; a click does not reset the timer.
func (c *Carousel) Advance() {
	if len(c.elements) == 0 {
		return
	}
	c.cursor = mathx.Wrap(c.cursor+1, len(c.elements))
}

// Update moves every element one smoothing step toward its target.
func (c *Carousel) Update() {
	for i, e := range c.elements {
		opacity, z := c.target(i)
		e.Opacity = mathx.Lerp(e.Opacity, opacity, c.Smoothing)
		e.Z = mathx.Lerp(e.Z, z, c.Smoothing)
	}
}

func (c *Carousel) target(i int) (opacity, z float64) {
	if i == c.cursor {
		return 1, config.CarouselActiveZ
	}
	return 0, config.CarouselInactiveZ
}

// SetImages replaces the image set. Elements whose locator survives keep
// their visual state; new ones start opaque like on mount. A change of length restarts
// the timer so it never works with a stale length. The cursor goes back to
// 0 when it falls outside the new set.
func (c *Carousel) SetImages(locators []string) {
	oldLen := len(c.elements)

	pool := make(map[string][]*Element, len(c.elements))
	for _, e := range c.elements {
		pool[e.Locator] = append(pool[e.Locator], e)
	}
	next := make([]*Element, 0, len(locators))
	for _, l := range locators {
		if reuse := pool[l]; len(reuse) > 0 {
			next = append(next, reuse[0])
			pool[l] = reuse[1:]
			continue
		}
		e := newElement(l)
		if c.Mounted() {
			c.size(e)
		}
		next = append(next, e)
	}
	c.elements = next

	if c.cursor >= len(c.elements) {
		c.cursor = 0
	}

	if c.Mounted() && oldLen != len(c.elements) {
		c.unsubscribe()
		c.subscribe()
	}
}

func (c *Carousel) size(e *Element) {
	w, h := c.viewport.Size()
	e.Width = w * c.Fill
	e.Height = h * c.Fill
}

func (c *Carousel) subscribe() {
	if len(c.elements) == 0 {
		return
	}
	c.frameReg = c.loop.OnFrame(func(frameloop.Frame) { c.Update() })
	c.timerReg = c.loop.Every(c.Interval, c.Advance)
}

func (c *Carousel) unsubscribe() {
	if c.frameReg != nil {
		c.frameReg.Dispose()
		c.frameReg = nil
	}
	if c.timerReg != nil {
		c.timerReg.Dispose()
		c.timerReg = nil
	}
}
