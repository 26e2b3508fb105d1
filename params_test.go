package gielis

import (
	"errors"
	"math"
	"testing"
)

func TestParamKeysOrder(t *testing.T) {
	want := []string{
		"a", "b", "m", "n1", "n2", "n3", "scale", "rotation", "points",
		"fillOpacity", "strokeWidth",
		"fillNoiseScale", "fillNoiseStrength", "strokeNoiseScale", "strokeNoiseStrength",
	}
	diff(t, want, ParamKeys())

	list := DefaultParams().List()
	for i, pv := range list {
		if pv.Key != want[i] {
			t.Errorf("List()[%d].Key = %q, want %q", i, pv.Key, want[i])
		}
	}
	if list[8].Value != 1000 {
		t.Errorf("default points = %v, want 1000", list[8].Value)
	}
}

func TestParamRangeFor(t *testing.T) {
	tests := []struct {
		key  string
		want ParamRange
	}{
		{"points", ParamRange{Min: 10, Max: 2000, Step: 10}},
		{"scale", ParamRange{Min: 0, Max: 1000, Step: 0.1}},
		{"a", ParamRange{Min: 0, Max: 10, Step: 0.1}},
		{"strokeNoiseStrength", ParamRange{Min: 0, Max: 10, Step: 0.1}},
		{"bogus", ParamRange{Min: 0, Max: 10, Step: 0.1}},
	}
	for _, tt := range tests {
		if got := ParamRangeFor(tt.key); got != tt.want {
			t.Errorf("ParamRangeFor(%q) = %+v, want %+v", tt.key, got, tt.want)
		}
	}
}

func TestParamsWith(t *testing.T) {
	p := DefaultParams()

	q, err := p.With("n1", 0.25)
	if err != nil {
		t.Fatal(err)
	}
	if q.N1 != 0.25 || p.N1 != 1 {
		t.Errorf("With must copy: got q.N1=%v p.N1=%v", q.N1, p.N1)
	}

	q, err = p.With("points", 12)
	if err != nil || q.Points != 12 {
		t.Fatalf("With(points, 12) = %d, %v", q.Points, err)
	}
	if v, ok := q.Get("points"); !ok || v != 12 {
		t.Errorf("Get(points) = %v, %v", v, ok)
	}

	bad := []struct {
		key   string
		value float64
	}{
		{"a", 0},
		{"b", -1},
		{"n1", 0},
		{"scale", 0},
		{"points", 2},
		{"points", 10.5},
		{"points", math.Inf(1)},
		{"points", 1e12},
		{"fillOpacity", 1.5},
		{"strokeWidth", -0.1},
		{"m", math.NaN()},
	}
	for _, tt := range bad {
		_, err := p.With(tt.key, tt.value)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("With(%q, %v) err = %v, want ErrInvalidParameter", tt.key, tt.value, err)
			continue
		}
		var pe *ParamError
		if !errors.As(err, &pe) || pe.Key != tt.key {
			t.Errorf("With(%q, %v) ParamError key = %+v", tt.key, tt.value, pe)
		}
	}

	if _, err := p.With("nope", 1); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("unknown key err = %v, want ErrUnknownParam", err)
	}
}

func TestParams3D(t *testing.T) {
	p := DefaultParams3D()
	diff(t, []string{"a0", "a1", "m", "n1", "n2", "n3"}, Param3DKeys())

	q, err := p.With("a1", 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if q.A[1] != 0.5 || q.A[0] != 1 {
		t.Errorf("With(a1) = %+v", q.A)
	}
	if got := q.List()[1]; got != (ParamValue{Key: "a1", Value: 0.5}) {
		t.Errorf("List()[1] = %+v", got)
	}

	if _, err := p.With("a0", 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("a0=0 err = %v", err)
	}
	if _, err := p.With("scale", 1); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("scale err = %v", err)
	}

	if r := Param3DRangeFor("m"); r != (ParamRange{Min: 0, Max: 10, Step: 1}) {
		t.Errorf("range m = %+v", r)
	}
	if r := Param3DRangeFor("a0"); r != (ParamRange{Min: 0.1, Max: 2, Step: 0.1}) {
		t.Errorf("range a0 = %+v", r)
	}
	if r := Param3DRangeFor("n2"); r != (ParamRange{Min: 0.1, Max: 5, Step: 0.1}) {
		t.Errorf("range n2 = %+v", r)
	}
}
