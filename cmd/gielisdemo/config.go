package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the demo's TOML configuration.
type Config struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Scene   string `toml:"scene"`   // 2D output PNG, empty to skip
	Surface string `toml:"surface"` // 3D output PNG, empty to skip
	Labels  bool   `toml:"labels"`

	LogLevel   string `toml:"log_level"`
	Background string `toml:"background"`

	Viewport  ViewportConfig `toml:"viewport"`
	Shapes    []ShapeConfig  `toml:"shape"`
	Surface3D SurfaceConfig  `toml:"surface3d"`
}

// ViewportConfig sets the initial pan and zoom.
type ViewportConfig struct {
	Zoom float64    `toml:"zoom"`
	Pan  [2]float64 `toml:"pan"`
}

// ShapeConfig describes one shape to add. Shapes are added in order, each
// offset from the previously added one.
type ShapeConfig struct {
	ID     string             `toml:"id"`
	Offset [2]float64         `toml:"offset"`
	Color  string             `toml:"color"`
	Params map[string]float64 `toml:"params"`
}

// SurfaceConfig drives the 3D render.
type SurfaceConfig struct {
	Params     map[string]float64 `toml:"params"`
	Background string             `toml:"background"`
	Start      string             `toml:"start"`
	End        string             `toml:"end"`
	Yaw        float32            `toml:"yaw"`
	Pitch      float32            `toml:"pitch"`
	DotSize    float64            `toml:"dot_size"`
}

// DefaultConfig returns a configuration that renders three shapes and the
// default surface.
func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		Scene:      "scene.png",
		Surface:    "surface.png",
		LogLevel:   "info",
		Background: "#ffffff",
		Viewport:   ViewportConfig{Zoom: 1},
		Shapes: []ShapeConfig{
			{ID: "hexagon"},
			{ID: "star", Offset: [2]float64{220, 0}, Params: map[string]float64{"m": 5, "n1": 0.3, "n2": 0.3, "n3": 0.3}},
			{ID: "flower", Offset: [2]float64{-440, 0}, Params: map[string]float64{"m": 8, "n1": 0.5, "n2": 1.5, "n3": 1.5, "fillNoiseScale": 0.2, "fillNoiseStrength": 0.3}},
		},
		Surface3D: SurfaceConfig{
			Background: "#000000",
			Start:      "#ff0000",
			End:        "#0000ff",
			Yaw:        0.6,
			Pitch:      0.4,
		},
	}
}

// LoadConfig decodes a TOML file onto DefaultConfig, so keys absent from the
// file keep their defaults and present keys win even when zero or empty.
// Unknown keys are rejected. A [[shape]] table replaces the default shape
// list.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("gielisdemo: read config: %w", err)
	}

	shapes := cfg.Shapes
	cfg.Shapes = nil
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("gielisdemo: parse %s: %w", path, err)
	}
	if cfg.Shapes == nil {
		cfg.Shapes = shapes
	}
	return cfg, cfg.Validate()
}

// Validate checks the values that cannot be corrected later.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("gielisdemo: invalid size %dx%d", c.Width, c.Height)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("gielisdemo: log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
