package gielis

import (
	"fmt"
	"math"
)

// Outline is the sampled closed outline of a 2D shape, in the shape's local
// frame (before its position and the viewport are applied).
type Outline struct {
	// Vertices holds the finite samples in angle order.
	Vertices []Point

	// Skipped counts samples left out because they were NaN or infinite.
	Skipped int
}

// BuildOutline samples p.Points angles evenly over [0, 2π) and returns the
// resulting outline. Invalid parameters are rejected with an error that
// matches ErrInvalidParameter; non-finite samples are skipped.
func BuildOutline(p Params) (Outline, error) {
	if err := p.Validate(); err != nil {
		return Outline{}, err
	}
	o := Outline{Vertices: make([]Point, 0, p.Points)}
	n := float64(p.Points)
	for i := 0; i < p.Points; i++ {
		phi := float64(i) / n * math.Pi * 2
		pt := Sample(phi, p)
		if !pt.IsFinite() {
			o.Skipped++
			continue
		}
		o.Vertices = append(o.Vertices, pt)
	}
	return o, nil
}

// Err returns an error matching ErrNonFiniteSample when samples were skipped.
func (o Outline) Err() error {
	if o.Skipped == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d samples skipped", ErrNonFiniteSample, o.Skipped, o.Skipped+len(o.Vertices))
}

// Path converts the outline into a closed path: a move to the first vertex,
// a line to every following vertex and a close.
func (o Outline) Path() *Path {
	p := NewPath()
	if len(o.Vertices) == 0 {
		return p
	}
	for i, v := range o.Vertices {
		if i == 0 {
			p.MoveTo(v.X, v.Y)
			continue
		}
		p.LineTo(v.X, v.Y)
	}
	p.Close()
	return p
}

// Contains reports whether pt (in the outline's local frame) lies inside the
// outline under the non-zero fill rule.
func (o Outline) Contains(pt Point) bool {
	if len(o.Vertices) < 3 {
		return false
	}
	path := o.Path()
	lo, hi := path.Bounds()
	if pt.X < lo.X || pt.X > hi.X || pt.Y < lo.Y || pt.Y > hi.Y {
		return false
	}
	return path.Winding(pt) != 0
}
