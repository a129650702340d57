package geometry

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -1)

	if got := a.Add(b); got != V(4, 1) {
		t.Errorf("Add = %v, want (4,1)", got)
	}
	if got := a.Sub(b); got != V(-2, 3) {
		t.Errorf("Sub = %v, want (-2,3)", got)
	}
	if got := a.Mul(2); got != V(2, 4) {
		t.Errorf("Mul = %v, want (2,4)", got)
	}
}

func TestDistance(t *testing.T) {
	a := V(0, 0)
	b := V(3, 4)
	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := a.Length(); got != 0 {
		t.Errorf("Length of zero vector = %v, want 0", got)
	}
}

func TestLerp(t *testing.T) {
	a := V(0, 0)
	b := V(10, 20)

	tests := []struct {
		t    float64
		want Vec2
	}{
		{0, V(0, 0)},
		{1, V(10, 20)},
		{0.5, V(5, 10)},
		{0.25, V(2.5, 5)},
	}
	for _, tc := range tests {
		if got := a.Lerp(b, tc.t); got != tc.want {
			t.Errorf("Lerp(t=%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := V(0.1, 0.7)
	b := V(1234.5678, -99.25)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); !almostEqual(got.X, b.X) || !almostEqual(got.Y, b.Y) {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
