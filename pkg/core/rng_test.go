package core

import (
	"math"
	"testing"
)

func TestAngleRangeAndDeterminism(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 1000; i++ {
		x, y := a.Angle(), b.Angle()
		if x != y {
			t.Fatalf("draw %d differs for the same seed: %f vs %f", i, x, y)
		}
		if x < 0 || x >= 2*math.Pi {
			t.Fatalf("angle %f outside [0, 2π)", x)
		}
	}
}
