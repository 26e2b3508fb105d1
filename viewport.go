package gielis

// Viewport defaults.
const (
	MinZoom  = 0.1
	MaxZoom  = 10
	ZoomStep = 0.1
	PanStep  = 10
)

// Viewport is the pan/zoom transform applied to the whole scene, outside
// every shape's own position.
type Viewport struct {
	Zoom float64
	Pan  Point

	// Width and Height are the screen size; the world origin maps to the
	// screen centre at zero pan.
	Width, Height float64
}

// Matrix returns the world-to-screen transform:
//
//	Translate(centre) · Scale(zoom) · Translate(pan)
func (v Viewport) Matrix() Matrix {
	return Translate(v.Width/2, v.Height/2).
		Multiply(Scale(v.Zoom, v.Zoom)).
		Multiply(Translate(v.Pan.X, v.Pan.Y))
}

// ShapeMatrix composes the viewport with a shape position. The position is
// applied innermost.
func (v Viewport) ShapeMatrix(position Point) Matrix {
	return v.Matrix().Multiply(Translate(position.X, position.Y))
}

// ScreenToWorld maps a screen point back into world space.
func (v Viewport) ScreenToWorld(p Point) Point {
	return v.Matrix().Invert().TransformPoint(p)
}

func clampZoom(z, lo, hi float64) float64 {
	if z < lo {
		return lo
	}
	if z > hi {
		return hi
	}
	return z
}

// Direction is a discrete pan direction.
type Direction int

const (
	PanLeft Direction = iota
	PanRight
	PanUp
	PanDown
)

func (d Direction) vector() Point {
	switch d {
	case PanLeft:
		return Point{X: -1}
	case PanRight:
		return Point{X: 1}
	case PanUp:
		return Point{Y: -1}
	case PanDown:
		return Point{Y: 1}
	}
	return Point{}
}
