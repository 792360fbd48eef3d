package starfield

import (
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/ambient-scenes/internal/frameloop"
)

func TestGenerate(t *testing.T) {
	s := New(DefaultParams())
	if s.Len() != 5000 || len(s.Positions) != 15000 || len(s.Colors) != 15000 {
		t.Fatalf("unexpected sizes %d %d %d", s.Len(), len(s.Positions), len(s.Colors))
	}
	for i := 0; i < s.Len(); i++ {
		x, y, z := s.Positions[i*3], s.Positions[i*3+1], s.Positions[i*3+2]
		r := math.Sqrt(float64(x*x + y*y + z*z))
		if r < 100-1e-3 || r > 150+1e-3 {
			t.Fatalf("star %d at radius %v", i, r)
		}
		if sz := s.Sizes[i]; sz < 2 || sz > 4 {
			t.Fatalf("star %d size %v", i, sz)
		}
		// saturation 0 gives grey at lightness 0.9
		if c := s.Colors[i*3]; math.Abs(float64(c)-0.9) > 1e-5 || s.Colors[i*3+1] != c || s.Colors[i*3+2] != c {
			t.Fatalf("star %d colour %v", i, s.Colors[i*3:i*3+3])
		}
	}
}

func TestSeedIsFixed(t *testing.T) {
	a := New(DefaultParams())
	b := New(DefaultParams())
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] {
			t.Fatalf("stars differ at %d", i)
		}
	}
}

func TestRadiusShrinksMonotonically(t *testing.T) {
	s := New(DefaultParams())
	prev := math.Inf(1)
	for i := 0; i < s.Len(); i++ {
		x, y, z := s.Positions[i*3], s.Positions[i*3+1], s.Positions[i*3+2]
		r := math.Sqrt(float64(x*x + y*y + z*z))
		if r > prev+1e-3 {
			t.Fatalf("star %d further out than star %d", i, i-1)
		}
		prev = r
	}
}

func TestTwinkleAndFade(t *testing.T) {
	s := New(Params{Count: 1, Radius: 1, Depth: 1, Factor: 1, Fade: true, Speed: 2})
	loop := frameloop.New()
	s.Mount(loop)
	loop.Advance(500 * time.Millisecond)
	if math.Abs(s.Time-1) > 1e-12 {
		t.Fatalf("time %v, want 1", s.Time)
	}
	if tw := s.Twinkle(); tw < 2 || tw > 4 {
		t.Fatalf("twinkle %v", tw)
	}
	if a := s.Alpha(0); a < 0.98 {
		t.Fatalf("centre alpha %v", a)
	}
	if a := s.Alpha(0.5); a > 0.02 {
		t.Fatalf("edge alpha %v", a)
	}
	s.Unmount()
	loop.Advance(time.Second)
	if math.Abs(s.Time-1) > 1e-12 {
		t.Fatalf("time moved after unmount")
	}

	s.Params.Fade = false
	if s.Alpha(0.5) != 1 {
		t.Fatalf("hard points should be opaque")
	}
}
