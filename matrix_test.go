package gielis

import (
	"math"
	"testing"
)

func TestMatrixMultiplyOrder(t *testing.T) {
	// Scale(2)·Translate(10, 20) translates first, then scales.
	m := Scale(2, 2).Multiply(Translate(10, 20))
	got := m.TransformPoint(Pt(1, 1))
	want := Pt(22, 42)
	if got != want {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(-5, 7)},
		{"scale", Scale(3, 0.5)},
		{"rotate", Matrix{A: 0.5, B: -math.Sqrt(3) / 2, D: math.Sqrt(3) / 2, E: 0.5}},
		{"composed", Translate(400, 300).Multiply(Scale(2.5, 2.5)).Multiply(Translate(-12, 9))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pt(13.25, -4.5)
			back := tt.m.Invert().TransformPoint(tt.m.TransformPoint(p))
			if back.Distance(p) > 1e-9 {
				t.Errorf("round trip = %v, want %v", back, p)
			}
		})
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	if Scale(0, 1).Invert() != Identity() {
		t.Error("singular matrix should invert to identity")
	}
}

func TestMatrixTransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(100, 100).Multiply(Scale(2, 2))
	if got := m.TransformVector(Pt(1, 0)); got != Pt(2, 0) {
		t.Errorf("TransformVector = %v, want (2,0)", got)
	}
	if got := m.ScaleFactor(); got != 2 {
		t.Errorf("ScaleFactor = %v, want 2", got)
	}
}
