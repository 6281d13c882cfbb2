package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 32; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestRNGRange(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 1000; i++ {
		v := r.Range(-4, 4)
		if v < -4 || v >= 4 {
			t.Fatalf("value %v outside [-4, 4)", v)
		}
	}
	if got := r.Range(2, 2); got != 2 {
		t.Fatalf("degenerate range returned %v, want 2", got)
	}
}
