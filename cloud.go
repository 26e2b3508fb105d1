package gielis

import (
	"fmt"
	"math"

	"github.com/soypat/geometry/ms3"
)

// CloudStep is the angular grid step of the 3D surface in both directions.
const CloudStep = 0.05

// Grid sizes of the 3D sampling: u over [-π, π], v over [-π/2, π/2].
var (
	cloudUSteps = int(math.Floor(2*math.Pi/CloudStep)) + 1
	cloudVSteps = int(math.Floor(math.Pi/CloudStep)) + 1
)

// Cloud is an unordered 3D point cloud of the spherical-product surface.
// Points are float32 so they can be handed to a renderer as-is.
type Cloud struct {
	Points  []ms3.Vec
	Skipped int
}

// BuildCloud samples the fixed angular grid and returns every finite point,
// u in the outer loop and v in the inner loop.
func BuildCloud(p Params3D) (Cloud, error) {
	if err := p.Validate(); err != nil {
		return Cloud{}, err
	}
	c := Cloud{Points: make([]ms3.Vec, 0, cloudUSteps*cloudVSteps)}
	for i := 0; i < cloudUSteps; i++ {
		u := -math.Pi + float64(i)*CloudStep
		for j := 0; j < cloudVSteps; j++ {
			v := -math.Pi/2 + float64(j)*CloudStep
			x, y, z := Sample3D(u, v, p)
			if !isFinite(x) || !isFinite(y) || !isFinite(z) {
				c.Skipped++
				continue
			}
			c.Points = append(c.Points, ms3.Vec{X: float32(x), Y: float32(y), Z: float32(z)})
		}
	}
	return c, nil
}

// Err returns an error matching ErrNonFiniteSample when samples were skipped.
func (c Cloud) Err() error {
	if c.Skipped == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d samples skipped", ErrNonFiniteSample, c.Skipped, c.Skipped+len(c.Points))
}

// Bounds returns the bounding box of the cloud. An empty cloud has a zero box.
func (c Cloud) Bounds() ms3.Box {
	if len(c.Points) == 0 {
		return ms3.Box{}
	}
	box := ms3.Box{Min: c.Points[0], Max: c.Points[0]}
	for _, pt := range c.Points[1:] {
		box.Min = ms3.MinElem(box.Min, pt)
		box.Max = ms3.MaxElem(box.Max, pt)
	}
	return box
}

// Positions flattens the cloud into x,y,z triples.
func (c Cloud) Positions() []float32 {
	out := make([]float32, 0, 3*len(c.Points))
	for _, pt := range c.Points {
		out = append(out, pt.X, pt.Y, pt.Z)
	}
	return out
}
