// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render rasterizes gielis scenes on the CPU.
//
// It is the preview path of the library: the same registry, controller and
// texture store that drive an interactive front end are turned into a Scene
// and painted into an *image.RGBA. GPU surfaces are owned by the host and are
// out of scope here.
//
// # Core Types
//
//   - RenderTarget: where rendering output goes (PixmapTarget wraps *image.RGBA)
//   - Scene: a retained list of draw commands in screen space
//   - Renderer: executes a Scene on a target (SoftwareRenderer)
//
// # Building Scenes
//
// BuildScene composes the 2D shapes: each outline is transformed by the
// viewport and the shape position, filled with its noise tile at the shape's
// fill opacity and stroked with its stroke tile. Tiles repeat in the shape's
// own coordinate space, so they pan and zoom with it.
//
// BuildSurfaceScene projects the 3D point cloud orthographically through a
// Camera and draws every point in its gradient colour, far points first.
//
// # Example
//
//	reg := gielis.NewRegistry()
//	reg.AddShape(gielis.Point{})
//	ctrl := gielis.NewController(reg, gielis.WithViewportSize(800, 600))
//	textures := gielis.NewTextureStore(reg, 0)
//
//	scene, err := render.BuildScene(reg, ctrl, textures, render.SceneOptions{})
//	if err != nil {
//	    return err
//	}
//	target := render.NewPixmapTarget(800, 600)
//	if err := render.NewSoftwareRenderer().Render(target, scene); err != nil {
//	    return err
//	}
//	img := target.Image()
package render
