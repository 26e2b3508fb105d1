package gielis

import (
	"image/color"
	"log/slog"
	"sync"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// ColorSettings drive the 3D mode: a background and a two-stop gradient
// along y applied per point.
type ColorSettings struct {
	Background string
	Start      string
	End        string
}

// DefaultColorSettings returns black background with a red-to-blue gradient.
func DefaultColorSettings() ColorSettings {
	return ColorSettings{Background: "#000000", Start: "#ff0000", End: "#0000ff"}
}

// GradientColors returns one RGB triple per point, interpolated linearly
// between start and end by t = clamp((y+1)/2, 0, 1).
func GradientColors(c Cloud, start, end colorful.Color) []float32 {
	out := make([]float32, 0, 3*len(c.Points))
	for _, pt := range c.Points {
		t := math32.Max(0, math32.Min(1, (pt.Y+1)/2))
		col := lerpRGB(start, end, float64(t))
		out = append(out, float32(col.R), float32(col.G), float32(col.B))
	}
	return out
}

// Surface is the 3D single-surface mode: one parameter set, its point cloud
// and per-point colours. Every parameter or colour change recomputes the
// whole cloud; readers never see a cloud that does not match the params.
type Surface struct {
	edit sync.Mutex // serialises read-modify-apply edits

	mu        sync.RWMutex
	params    Params3D
	colors    ColorSettings
	cloud     Cloud
	vertexRGB []float32
	bg        color.RGBA
}

// NewSurface creates a surface with default parameters and colours.
func NewSurface() *Surface {
	s := &Surface{}
	// Defaults are valid.
	_ = s.apply(DefaultParams3D(), DefaultColorSettings())
	return s
}

func (s *Surface) apply(p Params3D, cs ColorSettings) error {
	start, err := parseColorful(cs.Start)
	if err != nil {
		return err
	}
	end, err := parseColorful(cs.End)
	if err != nil {
		return err
	}
	bg, err := ParseHex(cs.Background)
	if err != nil {
		return err
	}
	cloud, err := BuildCloud(p)
	if err != nil {
		return err
	}
	if serr := cloud.Err(); serr != nil {
		Logger().Warn("gielis: partial point cloud", slog.Any("err", serr))
	}
	rgb := GradientColors(cloud, start, end)

	s.mu.Lock()
	s.params = p
	s.colors = cs
	s.cloud = cloud
	s.vertexRGB = rgb
	s.bg = bg
	s.mu.Unlock()

	Logger().Debug("gielis: point cloud rebuilt", slog.Int("points", len(cloud.Points)))
	return nil
}

// UpdateParam sets one 3D parameter and recomputes the cloud. Invalid values
// are rejected and leave the surface unchanged.
func (s *Surface) UpdateParam(key string, value float64) error {
	s.edit.Lock()
	defer s.edit.Unlock()

	s.mu.RLock()
	p, cs := s.params, s.colors
	s.mu.RUnlock()

	next, err := p.With(key, value)
	if err != nil {
		Logger().Warn("gielis: rejected parameter", slog.String("key", key), slog.Float64("value", value), slog.Any("err", err))
		return err
	}
	return s.apply(next, cs)
}

// SetParams replaces the whole parameter set.
func (s *Surface) SetParams(p Params3D) error {
	s.edit.Lock()
	defer s.edit.Unlock()

	s.mu.RLock()
	cs := s.colors
	s.mu.RUnlock()
	return s.apply(p, cs)
}

// SetColors replaces the colour settings. Unparsable colours return
// ErrInvalidColor and leave the surface unchanged.
func (s *Surface) SetColors(cs ColorSettings) error {
	s.edit.Lock()
	defer s.edit.Unlock()

	s.mu.RLock()
	p := s.params
	s.mu.RUnlock()
	return s.apply(p, cs)
}

// Params returns the current parameters.
func (s *Surface) Params() Params3D {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

// ColorSettings returns the current colour settings.
func (s *Surface) ColorSettings() ColorSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.colors
}

// Cloud returns the current point cloud. The points are shared read-only.
func (s *Surface) Cloud() Cloud {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloud
}

// Colors returns the per-point RGB triples matching Cloud().Points.
func (s *Surface) Colors() []float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vertexRGB
}

// Snapshot returns the cloud and its colours from the same revision.
func (s *Surface) Snapshot() (Cloud, []float32) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloud, s.vertexRGB
}

// Background returns the parsed background colour.
func (s *Surface) Background() color.RGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bg
}
