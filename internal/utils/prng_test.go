package utils

import "testing"

func TestPRNGServiceIsReproducible(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 10; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}

func TestChanceDoesNotDrawForZero(t *testing.T) {
	a, b := NewPRNGService(7), NewPRNGService(7)
	if a.Chance(0) || a.Chance(-1) {
		t.Fatal("Chance(<=0) = true")
	}
	if x, y := a.Float64(), b.Float64(); x != y {
		t.Errorf("Chance(0) consumed a draw: %v != %v", x, y)
	}
	if !a.Chance(1) {
		t.Error("Chance(1) = false")
	}
}
