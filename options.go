package gielis

import (
	"math/rand/v2"
	"time"
)

// RegistryOption configures a Registry during creation.
//
// Example:
//
//	// Deterministic ids and colours for tests
//	reg := gielis.NewRegistry(
//	    gielis.WithClock(func() time.Time { return time.UnixMilli(1) }),
//	    gielis.WithRand(rand.New(rand.NewPCG(1, 2))),
//	)
type RegistryOption func(*registryOptions)

type registryOptions struct {
	clock func() time.Time
	rng   *rand.Rand
}

func defaultRegistryOptions() registryOptions {
	return registryOptions{
		clock: time.Now,
		rng:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
	}
}

// WithClock sets the time source used to generate shape ids.
func WithClock(now func() time.Time) RegistryOption {
	return func(o *registryOptions) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithRand sets the random source used to pick shape colours.
func WithRand(rng *rand.Rand) RegistryOption {
	return func(o *registryOptions) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// ControllerOption configures a Controller during creation.
//
// Example:
//
//	ctrl := gielis.NewController(reg,
//	    gielis.WithViewportSize(1280, 720),
//	    gielis.WithZoomLimits(0.5, 4),
//	)
type ControllerOption func(*controllerOptions)

type controllerOptions struct {
	minZoom, maxZoom float64
	zoomStep         float64
	panStep          float64
	width, height    float64
}

func defaultControllerOptions() controllerOptions {
	return controllerOptions{
		minZoom:  MinZoom,
		maxZoom:  MaxZoom,
		zoomStep: ZoomStep,
		panStep:  PanStep,
	}
}

// WithZoomLimits sets the zoom clamp range. Invalid ranges are ignored.
func WithZoomLimits(lo, hi float64) ControllerOption {
	return func(o *controllerOptions) {
		if lo > 0 && hi >= lo {
			o.minZoom, o.maxZoom = lo, hi
		}
	}
}

// WithZoomStep sets the zoom change of one ZoomIn/ZoomOut.
func WithZoomStep(step float64) ControllerOption {
	return func(o *controllerOptions) {
		if step > 0 {
			o.zoomStep = step
		}
	}
}

// WithPanStep sets the pan distance of one PanStep, in screen units.
func WithPanStep(step float64) ControllerOption {
	return func(o *controllerOptions) {
		if step > 0 {
			o.panStep = step
		}
	}
}

// WithViewportSize sets the initial screen size; its centre is where the
// world origin appears at zero pan.
func WithViewportSize(width, height float64) ControllerOption {
	return func(o *controllerOptions) {
		o.width, o.height = width, height
	}
}
