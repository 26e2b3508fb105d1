// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"cmp"
	"fmt"
	"image/color"
	"log/slog"
	"slices"

	"github.com/chewxy/math32"
	"github.com/gogpu/gielis"
	"github.com/soypat/geometry/ms3"
)

// SceneOptions controls BuildScene.
type SceneOptions struct {
	// Background clears the target first when non-nil.
	Background color.Color

	// Labels draws each shape id next to its origin.
	Labels bool
}

// BuildScene composes the registry's shapes, in render order, as seen through
// the controller's viewport.
func BuildScene(reg *gielis.Registry, ctrl *gielis.Controller, textures *gielis.TextureStore, opts SceneOptions) (*Scene, error) {
	scene := NewScene()
	if opts.Background != nil {
		scene.Clear(opts.Background)
	}

	vp := ctrl.Viewport()
	for _, s := range reg.Shapes() {
		m := vp.ShapeMatrix(s.Position)
		path := s.Outline.Path().Transform(m)

		fill, err := textures.TileFor(s, gielis.ChannelFill)
		if err != nil {
			return nil, fmt.Errorf("render: fill texture of %q: %w", s.ID, err)
		}
		stroke, err := textures.TileFor(s, gielis.ChannelStroke)
		if err != nil {
			return nil, fmt.Errorf("render: stroke texture of %q: %w", s.ID, err)
		}

		scene.Fill(path, Paint{Pattern: NewTilePattern(fill.Pixmap, m), Opacity: s.Params.FillOpacity})
		scene.Stroke(path, s.Params.StrokeWidth*m.ScaleFactor(), Paint{Pattern: NewTilePattern(stroke.Pixmap, m), Opacity: 1})

		if opts.Labels {
			c, err := gielis.ParseHex(s.Color)
			if err != nil {
				c = color.RGBA{A: 255}
			}
			scene.Label(s.ID, m.TransformPoint(gielis.Point{}), c)
		}
	}

	gielis.Logger().Debug("render: scene built",
		slog.Int("shapes", reg.Len()), slog.Int("commands", scene.Len()), slog.Float64("zoom", vp.Zoom))
	return scene, nil
}

// Camera orients the 3D preview. Angles are in radians.
type Camera struct {
	Yaw   float32 // about the vertical axis
	Pitch float32 // about the horizontal screen axis

	// Fill is the fraction of the smaller target side the cloud spans.
	// Zero means 0.8.
	Fill float32

	// DotSize is the edge of each point in pixels. Zero means 2.
	DotSize float64
}

// BuildSurfaceScene projects the surface's point cloud orthographically onto
// a width×height target. The cloud's y axis points up on screen. Points are
// drawn far to near so nearer points cover farther ones.
func BuildSurfaceScene(surface *gielis.Surface, width, height int, cam Camera) *Scene {
	scene := NewScene()
	scene.Clear(surface.Background())

	cloud, rgb := surface.Snapshot()
	if len(cloud.Points) == 0 {
		return scene
	}

	fill := cam.Fill
	if fill <= 0 {
		fill = 0.8
	}
	dot := cam.DotSize
	if dot <= 0 {
		dot = 2
	}

	box := cloud.Bounds()
	extent := ms3.MaxElem(ms3.AbsElem(box.Min), ms3.AbsElem(box.Max))
	radius := math32.Max(extent.X, math32.Max(extent.Y, extent.Z))
	if radius == 0 {
		radius = 1
	}
	scale := fill * float32(min(width, height)) / (2 * radius)
	cx, cy := float32(width)/2, float32(height)/2

	yaw := ms3.RotationMat4(cam.Yaw, ms3.Vec{Y: 1})
	pitch := ms3.RotationMat4(cam.Pitch, ms3.Vec{X: 1})

	type projected struct {
		dot   Dot
		depth float32
	}
	pts := make([]projected, len(cloud.Points))
	for i, p := range cloud.Points {
		q := pitch.MulPosition(yaw.MulPosition(p))
		pts[i] = projected{
			dot: Dot{
				X:     float64(cx + q.X*scale),
				Y:     float64(cy - q.Y*scale),
				Color: rgbAt(rgb, i),
			},
			depth: q.Z,
		}
	}
	// Larger z is nearer the viewer.
	slices.SortStableFunc(pts, func(a, b projected) int { return cmp.Compare(a.depth, b.depth) })

	dots := make([]Dot, len(pts))
	for i, p := range pts {
		dots[i] = p.dot
	}
	scene.Dots(dots, dot)
	return scene
}

func rgbAt(rgb []float32, i int) color.RGBA {
	if 3*i+2 >= len(rgb) {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{
		R: unit8(rgb[3*i]),
		G: unit8(rgb[3*i+1]),
		B: unit8(rgb[3*i+2]),
		A: 255,
	}
}

// unit8 maps [0, 1] to [0, 255] with rounding.
func unit8(v float32) uint8 {
	return uint8(math32.Round(math32.Max(0, math32.Min(1, v)) * 255))
}
