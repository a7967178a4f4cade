package core

import "testing"

func TestBoundsContains(t *testing.T) {
	b := Bounds{MinX: 50, MaxX: 350, MinY: 150, MaxY: 600}

	tests := []struct {
		name     string
		v        Vec
		expected bool
	}{
		{name: "inside", v: Vec{X: 100, Y: 300}, expected: true},
		{name: "min corner inclusive", v: Vec{X: 50, Y: 150}, expected: true},
		{name: "max x exclusive", v: Vec{X: 350, Y: 300}, expected: false},
		{name: "max y exclusive", v: Vec{X: 100, Y: 600}, expected: false},
		{name: "above box", v: Vec{X: 100, Y: 100}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.v); got != tt.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tt.v, got, tt.expected)
			}
		})
	}
}

func TestBoundsLerpFraction(t *testing.T) {
	b := Bounds{MinX: 50, MaxX: 350, MinY: 150, MaxY: 600}

	v := b.Lerp(0.5, 0.25)
	if v.X != 200 || v.Y != 262.5 {
		t.Errorf("Lerp(0.5, 0.25) = %v, expected {200 262.5}", v)
	}

	fx, fy := b.Fraction(v)
	if fx != 0.5 || fy != 0.25 {
		t.Errorf("Fraction(%v) = (%v, %v), expected (0.5, 0.25)", v, fx, fy)
	}

	// Out-of-box points clamp
	fx, fy = b.Fraction(Vec{X: 0, Y: 1000})
	if fx != 0 || fy != 1 {
		t.Errorf("Fraction clamp = (%v, %v), expected (0, 1)", fx, fy)
	}
}

func TestRectContainsAndGrow(t *testing.T) {
	r := NewRect(10, 5, 4, 3)

	if !r.Contains(10, 5) {
		t.Error("Top-left corner should be inside")
	}
	if r.Contains(14, 5) {
		t.Error("Right edge is exclusive")
	}

	g := r.Grow(1)
	if !g.Contains(9, 4) || !g.Contains(14, 8) {
		t.Errorf("Grow(1) = %+v does not cover the margin", g)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp returned unexpected values")
	}
	if ClampF(1.5, 0, 1) != 1 || ClampF(-0.5, 0, 1) != 0 {
		t.Error("ClampF returned unexpected values")
	}
}
