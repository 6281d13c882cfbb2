package render

import "testing"

func TestSpeciesColorFixedSet(t *testing.T) {
	seen := map[[4]uint8]bool{}
	for s := 0; s < 3; s++ {
		c := SpeciesColor(s)
		key := [4]uint8{c.R, c.G, c.B, c.A}
		if seen[key] {
			t.Fatalf("species %d shares a colour with a lower species", s)
		}
		seen[key] = true
	}
}

func TestSpeciesColorFallback(t *testing.T) {
	fallback := SpeciesColor(3)
	for _, s := range []int{4, 7, 100, -1} {
		if got := SpeciesColor(s); got != fallback {
			t.Fatalf("species %d colour %v, want fallback %v", s, got, fallback)
		}
	}
}
