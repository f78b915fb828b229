package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 32; i++ {
		if x, y := a.IntN(100), b.IntN(100); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}

	a.Seed(7)
	c := NewRNG(7)
	if a.IntN(1000) != c.IntN(1000) {
		t.Fatal("Seed should rewind to the same stream")
	}
	if a.IntN(0) != 0 || a.IntN(-4) != 0 {
		t.Fatal("IntN must return 0 for empty ranges")
	}
}
