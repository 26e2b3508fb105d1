package gielis

import (
	"math"
	"testing"
)

func TestRadiusDefaultAtZero(t *testing.T) {
	p := DefaultParams()
	if r := Radius(0, p); r != 1 {
		t.Errorf("Radius(0) = %v, want 1", r)
	}
	if got := Sample(0, p); got != Pt(100, 0) {
		t.Errorf("Sample(0) = %v, want (100,0)", got)
	}
}

func TestRadiusCircle(t *testing.T) {
	// m=0 collapses the formula to r = (1/a^n2)^(-1/n1) = a for n1=n2.
	p := DefaultParams()
	p.M = 0
	p.A = 2
	p.N2 = 2
	p.N1 = 2
	for _, phi := range []float64{0, 0.3, 1, math.Pi, 5} {
		if r := Radius(phi, p); math.Abs(r-2) > 1e-12 {
			t.Errorf("Radius(%v) = %v, want 2", phi, r)
		}
	}
}

func TestRadiusDegenerate(t *testing.T) {
	// Both terms underflow to zero, so r = 0^(-1/n1) = +Inf.
	p := DefaultParams()
	p.A, p.B = 1e6, 1e6
	p.N2, p.N3 = 100, 100
	if r := Radius(0.5, p); !math.IsInf(r, 1) {
		t.Errorf("Radius = %v, want +Inf", r)
	}
}

func TestSample3D(t *testing.T) {
	p := DefaultParams3D()
	x, y, z := Sample3D(0, 0, p)
	if x != 1 || y != 0 || z != 0 {
		t.Errorf("Sample3D(0,0) = (%v,%v,%v), want (1,0,0)", x, y, z)
	}

	// The north pole collapses onto the z axis.
	x, y, z = Sample3D(0.7, math.Pi/2, p)
	r2 := Radius3D(math.Pi/2, p)
	if math.Abs(x) > 1e-12 || math.Abs(y) > 1e-12 || math.Abs(z-r2) > 1e-12 {
		t.Errorf("Sample3D at pole = (%v,%v,%v), want (0,0,%v)", x, y, z, r2)
	}
}
