// Package gielis evaluates the Gielis superformula and manages an
// interactive scene of superformula shapes.
//
// # Overview
//
// The package is the geometry and scene-transform engine behind a shape
// sculpting editor. It produces geometry and colour buffers; drawing them is
// left to a renderer (see the render sub-package for a CPU preview).
//
//	reg := gielis.NewRegistry()
//	s := reg.AddShape(gielis.Point{})
//	_ = reg.UpdateParam(s.ID, "m", 5)
//
//	ctrl := gielis.NewController(reg, gielis.WithViewportSize(800, 600))
//	ctrl.PointerDownAt(gielis.PointerEvent{X: 400, Y: 300})
//	ctrl.PointerMove(gielis.PointerEvent{X: 450, Y: 300})
//	ctrl.PointerUp(gielis.PointerEvent{})
//
// # Architecture
//
//   - Evaluator: Radius, Sample, Radius3D, Sample3D
//   - Geometry: BuildOutline (closed 2D outline, Path), BuildCloud (3D points)
//   - Textures: Noise2D, NoiseTile, TextureStore
//   - Scene: Registry (shapes, active shape), Controller (viewport, gestures)
//   - 3D mode: Surface (params, cloud, gradient colours)
//
// # Coordinate System
//
// World space has its origin at the screen centre at zero pan. Y increases
// down. The render transform of a shape is
//
//	Translate(screen centre) · Scale(zoom) · Translate(pan) · Translate(position)
//
// so the viewport is always applied outside every shape's own position.
package gielis
