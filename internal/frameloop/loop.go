// Package frameloop is the render-loop capability the scenes are built on:
// per-frame callbacks and recurring timers driven by one elapsed clock.
//
// A Loop is not safe for concurrent use; it lives on the host's update
// goroutine like everything it drives.
package frameloop

import "time"

// Frame is passed to every frame callback.
type Frame struct {
	Elapsed time.Duration // since the loop started
	Delta   time.Duration // since the previous frame
}

func (f Frame) Seconds() float64 {
	return f.Elapsed.Seconds()
}

// Registration undoes an OnFrame or Every call.
type Registration interface {
	Dispose()
}

type entry struct {
	loop     *Loop
	onFrame  func(Frame)
	onTick   func()
	period   time.Duration
	next     time.Duration
	disposed bool
}

func (e *entry) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.loop.dirty = true
}

type Loop struct {
	elapsed time.Duration
	frames  uint64

	frameEntries []*entry
	timerEntries []*entry
	dirty        bool
}

func New() *Loop {
	return &Loop{}
}

func (l *Loop) Elapsed() time.Duration {
	return l.elapsed
}

// Frames returns how many times Advance ran.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// OnFrame registers cb to run once per Advance, after timers.
// Callbacks added while a frame is running start on the next frame.
func (l *Loop) OnFrame(cb func(Frame)) Registration {
	e := &entry{loop: l, onFrame: cb}
	l.frameEntries = append(l.frameEntries, e)
	return e
}

// Every runs fn each time another full period of loop time has passed,
// counting from the moment of registration. Non-positive periods panic.
func (l *Loop) Every(period time.Duration, fn func()) Registration {
	if period <= 0 {
		panic("frameloop: non-positive timer period")
	}
	e := &entry{loop: l, onTick: fn, period: period, next: l.elapsed + period}
	l.timerEntries = append(l.timerEntries, e)
	return e
}

// Advance moves the clock forward by delta, fires due timers and runs the
// frame callbacks. Negative deltas count as zero.
func (l *Loop) Advance(delta time.Duration) {
	if delta < 0 {
		delta = 0
	}
	l.elapsed += delta
	l.frames++

	timers := l.timerEntries
	for _, e := range timers {
		for !e.disposed && e.next <= l.elapsed {
			e.next += e.period
			e.onTick()
		}
	}

	frame := Frame{Elapsed: l.elapsed, Delta: delta}
	callbacks := l.frameEntries
	for _, e := range callbacks {
		if e.disposed {
			continue
		}
		e.onFrame(frame)
	}

	l.compact()
}

// Len returns the number of live registrations (frame callbacks, timers).
func (l *Loop) Len() (frames, timers int) {
	for _, e := range l.frameEntries {
		if !e.disposed {
			frames++
		}
	}
	for _, e := range l.timerEntries {
		if !e.disposed {
			timers++
		}
	}
	return frames, timers
}

// Dispose drops every registration. The clock keeps its value.
func (l *Loop) Dispose() {
	for _, e := range l.frameEntries {
		e.disposed = true
	}
	for _, e := range l.timerEntries {
		e.disposed = true
	}
	l.frameEntries = nil
	l.timerEntries = nil
	l.dirty = false
}

func (l *Loop) compact() {
	if !l.dirty {
		return
	}
	l.frameEntries = keepLive(l.frameEntries)
	l.timerEntries = keepLive(l.timerEntries)
	l.dirty = false
}

func keepLive(entries []*entry) []*entry {
	write := 0
	for _, e := range entries {
		if !e.disposed {
			entries[write] = e
			write++
		}
	}
	for i := write; i < len(entries); i++ {
		entries[i] = nil
	}
	return entries[:write]
}
