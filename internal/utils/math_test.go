package utils

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct{ v, want float64 }{
		{-5, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{130, 100},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 100); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(255, 0, 0.5); got != 127.5 {
		t.Errorf("Lerp midpoint = %v", got)
	}
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp start = %v", got)
	}
}
