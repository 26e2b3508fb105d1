package gielis

import "math"

// superRadius evaluates the Gielis superformula
//
//	r(θ) = ( |cos(mθ/4)/a|^n2 + |sin(mθ/4)/b|^n3 )^(-1/n1)
//
// Absolute values are taken before exponentiation so the bases are never
// negative. The result is not sanitised: degenerate exponents yield ±Inf or NaN.
func superRadius(theta, m, a, b, n1, n2, n3 float64) float64 {
	sin, cos := math.Sincos(m * theta / 4)
	t1 := math.Pow(math.Abs(cos/a), n2)
	t2 := math.Pow(math.Abs(sin/b), n3)
	return math.Pow(t1+t2, -1/n1)
}

// Radius returns the superformula radius of p at angle phi.
// The caller guarantees p.A and p.B are non-zero.
func Radius(phi float64, p Params) float64 {
	return superRadius(phi, p.M, p.A, p.B, p.N1, p.N2, p.N3)
}

// Sample returns the outline point of p at angle phi, rotated by p.Rotation
// and scaled by p.Scale.
func Sample(phi float64, p Params) Point {
	r := Radius(phi, p)
	sin, cos := math.Sincos(phi + p.Rotation)
	return Point{
		X: r * cos * p.Scale,
		Y: r * sin * p.Scale,
	}
}

// Radius3D returns the superformula radius of the 3D parameters at theta.
// A[0] divides the cosine term and A[1] the sine term.
func Radius3D(theta float64, p Params3D) float64 {
	return superRadius(theta, p.M, p.A[0], p.A[1], p.N1, p.N2, p.N3)
}

// Sample3D returns the spherical product of the radii at longitude u in
// [-π, π] and latitude v in [-π/2, π/2].
func Sample3D(u, v float64, p Params3D) (x, y, z float64) {
	r1 := Radius3D(u, p)
	r2 := Radius3D(v, p)
	sinU, cosU := math.Sincos(u)
	sinV, cosV := math.Sincos(v)
	x = r1 * cosU * r2 * cosV
	y = r1 * sinU * r2 * cosV
	z = r2 * sinV
	return x, y, z
}
