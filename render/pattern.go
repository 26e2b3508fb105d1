// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gielis"
)

// tilePattern repeats a texture tile in a shape's local coordinate space.
// Screen pixels are mapped back through the inverse of the shape matrix, so
// the pattern follows pan, zoom and drag.
type tilePattern struct {
	tile *gielis.Pixmap
	inv  gielis.Matrix // screen to shape-local
}

// NewTilePattern returns an image that repeats tile in the space m maps to
// the screen.
func NewTilePattern(tile *gielis.Pixmap, m gielis.Matrix) image.Image {
	return &tilePattern{tile: tile, inv: m.Invert()}
}

func (p *tilePattern) ColorModel() color.Model { return color.RGBAModel }

// Bounds is unbounded in practice; the renderer clips to the target.
func (p *tilePattern) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (p *tilePattern) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

// RGBAAt samples the tile at the centre of screen pixel (x, y).
func (p *tilePattern) RGBAAt(x, y int) color.RGBA {
	w, h := p.tile.Width(), p.tile.Height()
	if w == 0 || h == 0 {
		return color.RGBA{}
	}
	local := p.inv.TransformPoint(gielis.Pt(float64(x)+0.5, float64(y)+0.5))
	return p.tile.RGBAAt(wrap(local.X, w), wrap(local.Y, h))
}

// wrap maps v onto [0, n) with floored modulo.
func wrap(v float64, n int) int {
	if !(v > -1e15 && v < 1e15) {
		return 0
	}
	i := int(math.Floor(v)) % n
	if i < 0 {
		i += n
	}
	return i
}
