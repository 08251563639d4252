package geom

import (
	"math"
	"testing"
)

func TestVecOps(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: -1, Y: 2}

	if got := a.Add(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != 5 {
		t.Errorf("Dot: got %f", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len: got %f", got)
	}
}

func TestNorm(t *testing.T) {
	v := Vec2{X: 0, Y: -3}
	n := v.Norm()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("unit length, got %f", n.Len())
	}
	if n.Y != -1 {
		t.Errorf("direction preserved, got %v", n)
	}

	zero := Vec2{}
	if zero.Norm() != (Vec2{}) {
		t.Error("zero vector should normalize to zero")
	}
}

func TestPerp(t *testing.T) {
	v := Vec2{X: 1, Y: 0}
	p := v.Perp()
	if p != (Vec2{X: 0, Y: 1}) {
		t.Errorf("expected (0,1), got %v", p)
	}
	if v.Dot(p) != 0 {
		t.Error("perpendicular should have zero dot product")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}

	for _, tt := range tests {
		if got := Wrap(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Wrap(%f): expected %f, got %f", tt.in, tt.want, got)
		}
	}
}

func TestInWindow(t *testing.T) {
	width := math.Pi / 5

	tests := []struct {
		name   string
		theta  float64
		center float64
		want   bool
	}{
		{"dead center", 1.0, 1.0, true},
		{"just inside", 1.0 + width/2 - 1e-6, 1.0, true},
		{"just outside", 1.0 + width/2 + 1e-6, 1.0, false},
		{"opposite side", 1.0 + math.Pi, 1.0, false},
		{"wraps below zero", -0.05, 0.0, true},
		{"wraps above 2pi", 0.05, 2*math.Pi - 0.05, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InWindow(tt.theta, tt.center, width); got != tt.want {
				t.Errorf("InWindow(%f, %f): expected %v, got %v", tt.theta, tt.center, tt.want, got)
			}
		})
	}
}

func TestFromPolar(t *testing.T) {
	v := FromPolar(math.Pi/2, 2)
	if math.Abs(v.X) > 1e-12 || math.Abs(v.Y-2) > 1e-12 {
		t.Errorf("expected (0,2), got %v", v)
	}
}
