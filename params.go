package gielis

import (
	"fmt"
	"math"
)

// Params is the 2D superformula parameter set of one shape.
//
// Field order is the declaration order exposed to editors through
// ParamKeys and ListParams.
type Params struct {
	A, B                float64
	M                   float64
	N1, N2, N3          float64
	Scale               float64
	Rotation            float64 // radians
	Points              int
	FillOpacity         float64
	StrokeWidth         float64
	FillNoiseScale      float64
	FillNoiseStrength   float64
	StrokeNoiseScale    float64
	StrokeNoiseStrength float64
}

// DefaultParams returns the parameters a new shape starts with.
func DefaultParams() Params {
	return Params{
		A: 1, B: 1,
		M:  6,
		N1: 1, N2: 1, N3: 1,
		Scale:       100,
		Rotation:    0,
		Points:      1000,
		FillOpacity: 0.5,
		StrokeWidth: 1,
	}
}

// ParamValue is one key/value pair of a parameter listing.
type ParamValue struct {
	Key   string
	Value float64
}

// ParamRange is the editing range of a parameter.
type ParamRange struct {
	Min, Max, Step float64
}

type paramField struct {
	key string
	get func(*Params) float64
	set func(*Params, float64)
}

var paramFields = [...]paramField{
	{"a", func(p *Params) float64 { return p.A }, func(p *Params, v float64) { p.A = v }},
	{"b", func(p *Params) float64 { return p.B }, func(p *Params, v float64) { p.B = v }},
	{"m", func(p *Params) float64 { return p.M }, func(p *Params, v float64) { p.M = v }},
	{"n1", func(p *Params) float64 { return p.N1 }, func(p *Params, v float64) { p.N1 = v }},
	{"n2", func(p *Params) float64 { return p.N2 }, func(p *Params, v float64) { p.N2 = v }},
	{"n3", func(p *Params) float64 { return p.N3 }, func(p *Params, v float64) { p.N3 = v }},
	{"scale", func(p *Params) float64 { return p.Scale }, func(p *Params, v float64) { p.Scale = v }},
	{"rotation", func(p *Params) float64 { return p.Rotation }, func(p *Params, v float64) { p.Rotation = v }},
	{"points", func(p *Params) float64 { return float64(p.Points) }, func(p *Params, v float64) { p.Points = int(v) }},
	{"fillOpacity", func(p *Params) float64 { return p.FillOpacity }, func(p *Params, v float64) { p.FillOpacity = v }},
	{"strokeWidth", func(p *Params) float64 { return p.StrokeWidth }, func(p *Params, v float64) { p.StrokeWidth = v }},
	{"fillNoiseScale", func(p *Params) float64 { return p.FillNoiseScale }, func(p *Params, v float64) { p.FillNoiseScale = v }},
	{"fillNoiseStrength", func(p *Params) float64 { return p.FillNoiseStrength }, func(p *Params, v float64) { p.FillNoiseStrength = v }},
	{"strokeNoiseScale", func(p *Params) float64 { return p.StrokeNoiseScale }, func(p *Params, v float64) { p.StrokeNoiseScale = v }},
	{"strokeNoiseStrength", func(p *Params) float64 { return p.StrokeNoiseStrength }, func(p *Params, v float64) { p.StrokeNoiseStrength = v }},
}

func lookupParam(key string) (paramField, bool) {
	for _, f := range paramFields {
		if f.key == key {
			return f, true
		}
	}
	return paramField{}, false
}

// ParamKeys returns the parameter keys in declaration order.
func ParamKeys() []string {
	keys := make([]string, len(paramFields))
	for i, f := range paramFields {
		keys[i] = f.key
	}
	return keys
}

// List returns the parameters as ordered key/value pairs.
func (p Params) List() []ParamValue {
	out := make([]ParamValue, len(paramFields))
	for i, f := range paramFields {
		out[i] = ParamValue{Key: f.key, Value: f.get(&p)}
	}
	return out
}

// Get returns the value stored under key.
func (p Params) Get(key string) (float64, bool) {
	f, ok := lookupParam(key)
	if !ok {
		return 0, false
	}
	return f.get(&p), true
}

// With returns a copy of p with key set to value. The result is validated.
func (p Params) With(key string, value float64) (Params, error) {
	f, ok := lookupParam(key)
	if !ok {
		return p, fmt.Errorf("%w: %q", ErrUnknownParam, key)
	}
	if key == "points" {
		if value != math.Trunc(value) {
			return p, &ParamError{Key: key, Value: value, Reason: "must be an integer"}
		}
		if math.Abs(value) > math.MaxInt32 {
			return p, &ParamError{Key: key, Value: value, Reason: "out of range"}
		}
	}
	f.set(&p, value)
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// ParamRangeFor returns the editing range of key. Unknown keys get the
// generic [0, 10] range.
func ParamRangeFor(key string) ParamRange {
	switch key {
	case "points":
		return ParamRange{Min: 10, Max: 2000, Step: 10}
	case "scale":
		return ParamRange{Min: 0, Max: 1000, Step: 0.1}
	default:
		return ParamRange{Min: 0, Max: 10, Step: 0.1}
	}
}

// Validate reports the first value the evaluator cannot work with.
func (p Params) Validate() error {
	for _, f := range paramFields {
		if v := f.get(&p); !isFinite(v) {
			return &ParamError{Key: f.key, Value: v, Reason: "must be finite"}
		}
	}
	switch {
	case p.A <= 0:
		return &ParamError{Key: "a", Value: p.A, Reason: "must be positive"}
	case p.B <= 0:
		return &ParamError{Key: "b", Value: p.B, Reason: "must be positive"}
	case p.N1 <= 0:
		return &ParamError{Key: "n1", Value: p.N1, Reason: "must be positive"}
	case p.Scale <= 0:
		return &ParamError{Key: "scale", Value: p.Scale, Reason: "must be positive"}
	case p.Points < 3:
		return &ParamError{Key: "points", Value: float64(p.Points), Reason: "must be at least 3"}
	case p.FillOpacity < 0 || p.FillOpacity > 1:
		return &ParamError{Key: "fillOpacity", Value: p.FillOpacity, Reason: "must be within [0, 1]"}
	case p.StrokeWidth < 0:
		return &ParamError{Key: "strokeWidth", Value: p.StrokeWidth, Reason: "must not be negative"}
	}
	return nil
}

// Params3D is the parameter set of the 3D spherical-product surface.
type Params3D struct {
	A          [2]float64 // cosine and sine denominators
	M          float64
	N1, N2, N3 float64
}

// DefaultParams3D returns the initial 3D parameters.
func DefaultParams3D() Params3D {
	return Params3D{A: [2]float64{1, 1}, M: 6, N1: 1, N2: 1, N3: 1}
}

var param3DKeys = [...]string{"a0", "a1", "m", "n1", "n2", "n3"}

// Param3DKeys returns the 3D parameter keys in declaration order.
func Param3DKeys() []string {
	return param3DKeys[:]
}

func (p *Params3D) field(key string) *float64 {
	switch key {
	case "a0":
		return &p.A[0]
	case "a1":
		return &p.A[1]
	case "m":
		return &p.M
	case "n1":
		return &p.N1
	case "n2":
		return &p.N2
	case "n3":
		return &p.N3
	}
	return nil
}

// List returns the 3D parameters as ordered key/value pairs.
func (p Params3D) List() []ParamValue {
	out := make([]ParamValue, 0, len(param3DKeys))
	for _, k := range param3DKeys {
		out = append(out, ParamValue{Key: k, Value: *p.field(k)})
	}
	return out
}

// With returns a copy of p with key set to value. The result is validated.
func (p Params3D) With(key string, value float64) (Params3D, error) {
	f := p.field(key)
	if f == nil {
		return p, fmt.Errorf("%w: %q", ErrUnknownParam, key)
	}
	*f = value
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// Validate reports the first value the 3D evaluator cannot work with.
func (p Params3D) Validate() error {
	for _, k := range param3DKeys {
		if v := *p.field(k); !isFinite(v) {
			return &ParamError{Key: k, Value: v, Reason: "must be finite"}
		}
	}
	switch {
	case p.A[0] <= 0:
		return &ParamError{Key: "a0", Value: p.A[0], Reason: "must be positive"}
	case p.A[1] <= 0:
		return &ParamError{Key: "a1", Value: p.A[1], Reason: "must be positive"}
	case p.N1 <= 0:
		return &ParamError{Key: "n1", Value: p.N1, Reason: "must be positive"}
	}
	return nil
}

// Param3DRangeFor returns the editing range of a 3D parameter key.
func Param3DRangeFor(key string) ParamRange {
	switch key {
	case "a0", "a1":
		return ParamRange{Min: 0.1, Max: 2, Step: 0.1}
	case "m":
		return ParamRange{Min: 0, Max: 10, Step: 1}
	default:
		return ParamRange{Min: 0.1, Max: 5, Step: 0.1}
	}
}
