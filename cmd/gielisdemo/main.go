// Command gielisdemo renders a superformula scene and the 3D surface to PNG.
//
// Usage:
//
//	gielisdemo [-config demo.toml] [-width 800] [-height 600] [-scene scene.png] [-surface surface.png]
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/gogpu/gielis"
	"github.com/gogpu/gielis/render"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("gielisdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "TOML config file")
		width      = fs.Int("width", 0, "image width (overrides config)")
		height     = fs.Int("height", 0, "image height (overrides config)")
		scenePath  = fs.String("scene", "", "2D output file (overrides config)")
		surface    = fs.String("surface", "", "3D output file (overrides config)")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			return err
		}
	}
	// Only flags given on the command line override the file, so -scene=""
	// disables the 2D output.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "scene":
			cfg.Scene = *scenePath
		case "surface":
			cfg.Surface = *surface
		}
	})
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	gielis.SetLogger(logger)
	defer gielis.SetLogger(nil)

	if cfg.Scene != "" {
		if err := renderScene(cfg); err != nil {
			return err
		}
		logger.Info("scene saved", slog.String("path", cfg.Scene), slog.Int("shapes", len(cfg.Shapes)))
	}
	if cfg.Surface != "" {
		if err := renderSurface(cfg); err != nil {
			return err
		}
		logger.Info("surface saved", slog.String("path", cfg.Surface))
	}
	return nil
}

// buildRegistry adds the configured shapes in order.
func buildRegistry(cfg Config) (*gielis.Registry, error) {
	reg := gielis.NewRegistry()
	for i, sc := range cfg.Shapes {
		s := reg.AddShape(gielis.Pt(sc.Offset[0], sc.Offset[1]))
		id := s.ID
		if sc.ID != "" {
			if err := reg.RenameShape(id, sc.ID); err != nil {
				return nil, fmt.Errorf("gielisdemo: shape %d: %w", i, err)
			}
			id = reg.ActiveID()
		}
		if sc.Color != "" {
			if err := reg.SetColor(id, sc.Color); err != nil {
				return nil, fmt.Errorf("gielisdemo: shape %q: %w", id, err)
			}
		}
		for _, key := range slices.Sorted(maps.Keys(sc.Params)) {
			if err := reg.UpdateParam(id, key, sc.Params[key]); err != nil {
				return nil, fmt.Errorf("gielisdemo: shape %q: %w", id, err)
			}
		}
	}
	return reg, nil
}

func renderScene(cfg Config) error {
	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}
	ctrl := gielis.NewController(reg, gielis.WithViewportSize(float64(cfg.Width), float64(cfg.Height)))
	ctrl.SetZoom(cfg.Viewport.Zoom)
	ctrl.PanBy(cfg.Viewport.Pan[0], cfg.Viewport.Pan[1])

	bg, err := gielis.ParseHex(cfg.Background)
	if err != nil {
		return fmt.Errorf("gielisdemo: background: %w", err)
	}
	textures := gielis.NewTextureStore(reg, gielis.DefaultTextureCapacity)
	scene, err := render.BuildScene(reg, ctrl, textures, render.SceneOptions{Background: bg, Labels: cfg.Labels})
	if err != nil {
		return err
	}

	target := render.NewPixmapTarget(cfg.Width, cfg.Height)
	if err := render.NewSoftwareRenderer().Render(target, scene); err != nil {
		return err
	}
	return savePNG(cfg.Scene, target.Image())
}

func renderSurface(cfg Config) error {
	surface := gielis.NewSurface()
	sc := cfg.Surface3D

	p := surface.Params()
	for _, key := range slices.Sorted(maps.Keys(sc.Params)) {
		var err error
		if p, err = p.With(key, sc.Params[key]); err != nil {
			return fmt.Errorf("gielisdemo: surface: %w", err)
		}
	}
	if err := surface.SetParams(p); err != nil {
		return fmt.Errorf("gielisdemo: surface: %w", err)
	}
	if err := surface.SetColors(gielis.ColorSettings{Background: sc.Background, Start: sc.Start, End: sc.End}); err != nil {
		return fmt.Errorf("gielisdemo: surface colours: %w", err)
	}

	scene := render.BuildSurfaceScene(surface, cfg.Width, cfg.Height, render.Camera{Yaw: sc.Yaw, Pitch: sc.Pitch, DotSize: sc.DotSize})
	target := render.NewPixmapTarget(cfg.Width, cfg.Height)
	if err := render.NewSoftwareRenderer().Render(target, scene); err != nil {
		return err
	}
	return savePNG(cfg.Surface, target.Image())
}

func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
