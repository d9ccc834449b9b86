package game

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

func TestRandom_RangeStaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := NewRandom(rapid.Int64Range(1, 1<<40).Draw(t, "seed"))
		min := rapid.Float64Range(-1e4, 1e4).Draw(t, "min")
		span := rapid.Float64Range(1e-3, 1e4).Draw(t, "span")
		max := min + span

		for i := 0; i < 200; i++ {
			v := r.Range(min, max)
			if v < min || v >= max {
				t.Fatalf("Range(%v, %v) = %v, out of [min,max)", min, max, v)
			}
		}
	})
}

func TestRandom_RangeDegenerate(t *testing.T) {
	r := NewRandom(7)
	if got := r.Range(5, 5); got != 5 {
		t.Errorf("Range(5, 5) = %v, want 5", got)
	}
	if got := r.Range(5, 1); got != 5 {
		t.Errorf("Range(5, 1) = %v, want 5", got)
	}
}

func TestRandom_Unit(t *testing.T) {
	r := NewRandom(42)
	for i := 0; i < 10000; i++ {
		if v := r.Unit(); v < 0 || v >= 1 {
			t.Fatalf("Unit() = %v, want [0,1)", v)
		}
	}
}

func TestRandom_Duration(t *testing.T) {
	r := NewRandom(3)
	for i := 0; i < 1000; i++ {
		d := r.Duration(2*time.Second, 4*time.Second)
		if d < 2*time.Second || d >= 4*time.Second {
			t.Fatalf("Duration = %v, want [2s,4s)", d)
		}
	}
}

func TestRandom_SameSeedSameSequence(t *testing.T) {
	a, b := NewRandom(99), NewRandom(99)
	for i := 0; i < 50; i++ {
		if x, y := a.Range(0, 10), b.Range(0, 10); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}
