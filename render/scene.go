// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gielis"
)

// Paint describes how a filled or stroked area is coloured.
type Paint struct {
	// Color is used when Pattern is nil.
	Color color.Color

	// Pattern is sampled in screen space when set.
	Pattern image.Image

	// Opacity scales the coverage, in [0, 1].
	Opacity float64
}

// SolidPaint returns an opaque paint of a single colour.
func SolidPaint(c color.Color) Paint {
	return Paint{Color: c, Opacity: 1}
}

func (p Paint) source() image.Image {
	if p.Pattern != nil {
		return p.Pattern
	}
	if p.Color == nil {
		return image.Black
	}
	return image.NewUniform(p.Color)
}

// Dot is one projected point of a point cloud.
type Dot struct {
	X, Y  float64
	Color color.RGBA
}

// Scene represents a retained list of drawing commands in screen space.
//
// Example:
//
//	scene := render.NewScene()
//	scene.Clear(color.White)
//	scene.Fill(path, render.SolidPaint(color.Black))
//	renderer.Render(target, scene)
type Scene struct {
	commands []drawCommand
}

// drawCommand represents a single drawing operation.
type drawCommand struct {
	op    drawOp
	path  *gielis.Path
	paint Paint
	width float64 // stroke width or dot size
	text  string
	at    gielis.Point
	dots  []Dot
}

// drawOp is the type of drawing operation.
type drawOp uint8

const (
	opClear drawOp = iota
	opFill
	opStroke
	opLabel
	opDots
)

// NewScene creates a new empty Scene.
func NewScene() *Scene {
	return &Scene{commands: make([]drawCommand, 0, 16)}
}

// Reset clears the scene for reuse.
func (s *Scene) Reset() {
	s.commands = s.commands[:0]
}

// Len returns the number of recorded commands.
func (s *Scene) Len() int {
	return len(s.commands)
}

// IsEmpty reports whether the scene has no commands.
func (s *Scene) IsEmpty() bool {
	return len(s.commands) == 0
}

// Clear fills the whole target with c.
func (s *Scene) Clear(c color.Color) {
	s.commands = append(s.commands, drawCommand{op: opClear, paint: SolidPaint(c)})
}

// Fill fills path using the non-zero winding rule.
func (s *Scene) Fill(path *gielis.Path, paint Paint) {
	if path == nil || len(path.Elements()) == 0 || paint.Opacity <= 0 {
		return
	}
	s.commands = append(s.commands, drawCommand{op: opFill, path: path, paint: paint})
}

// Stroke outlines path with a line of the given width in pixels.
func (s *Scene) Stroke(path *gielis.Path, width float64, paint Paint) {
	if path == nil || len(path.Elements()) == 0 || width <= 0 || paint.Opacity <= 0 {
		return
	}
	s.commands = append(s.commands, drawCommand{op: opStroke, path: path, width: width, paint: paint})
}

// Label draws text with its baseline starting at at.
func (s *Scene) Label(text string, at gielis.Point, c color.Color) {
	if text == "" {
		return
	}
	s.commands = append(s.commands, drawCommand{op: opLabel, text: text, at: at, paint: SolidPaint(c)})
}

// Dots draws square points of the given size, in slice order.
func (s *Scene) Dots(dots []Dot, size float64) {
	if len(dots) == 0 {
		return
	}
	if size < 1 {
		size = 1
	}
	s.commands = append(s.commands, drawCommand{op: opDots, dots: dots, width: size})
}
