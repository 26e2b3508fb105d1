// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image"
	"math"

	"github.com/gogpu/gielis"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// SoftwareRenderer is a CPU-based renderer built on golang.org/x/image/vector.
//
// Fills and strokes are rasterized into an anti-aliased coverage mask, scaled
// by the paint opacity and composited source-over. Labels use the fixed
// basicfont face.
//
// Example:
//
//	renderer := render.NewSoftwareRenderer()
//	target := render.NewPixmapTarget(800, 600)
//	renderer.Render(target, scene)
//	img := target.Image()
type SoftwareRenderer struct {
	// rast is reused for path coverage.
	rast *vector.Rasterizer

	// mask receives the coverage of one command.
	mask *image.Alpha

	// lastWidth and lastHeight track the rasterizer dimensions.
	lastWidth, lastHeight int

	face font.Face
}

// NewSoftwareRenderer creates a new CPU-based software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{face: basicfont.Face7x13}
}

// Render draws the scene to the target.
func (r *SoftwareRenderer) Render(target RenderTarget, scene *Scene) error {
	if target == nil {
		return errors.New("render: nil target")
	}
	dst := target.Image()
	if dst == nil {
		return errors.New("render: target has no image")
	}
	if scene == nil || scene.IsEmpty() {
		return nil
	}

	r.ensureRasterizer(target.Width(), target.Height())

	for _, cmd := range scene.commands {
		switch cmd.op {
		case opClear:
			draw.Draw(dst, dst.Bounds(), cmd.paint.source(), image.Point{}, draw.Src)

		case opFill:
			r.rast.Reset(r.lastWidth, r.lastHeight)
			if addPath(r.rast, cmd.path) {
				r.composite(dst, cmd.paint)
			}

		case opStroke:
			r.rast.Reset(r.lastWidth, r.lastHeight)
			if addStroke(r.rast, cmd.path, cmd.width) {
				r.composite(dst, cmd.paint)
			}

		case opLabel:
			d := font.Drawer{
				Dst:  dst,
				Src:  cmd.paint.source(),
				Face: r.face,
				Dot:  fixed.P(int(math.Round(cmd.at.X)), int(math.Round(cmd.at.Y))),
			}
			d.DrawString(cmd.text)

		case opDots:
			renderDots(dst, cmd.dots, cmd.width)
		}
	}
	return nil
}

// Flush ensures all rendering is complete.
// For the software renderer, this is a no-op as operations are synchronous.
func (r *SoftwareRenderer) Flush() error {
	return nil
}

// Capabilities returns the renderer's capabilities.
func (r *SoftwareRenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		IsGPU:                false,
		SupportsAntialiasing: true,
		SupportsTextures:     true,
		SupportsText:         true,
	}
}

// ensureRasterizer sizes the rasterizer and mask for the target dimensions.
func (r *SoftwareRenderer) ensureRasterizer(width, height int) {
	if r.rast == nil || r.lastWidth != width || r.lastHeight != height {
		r.rast = vector.NewRasterizer(width, height)
		r.mask = image.NewAlpha(image.Rect(0, 0, width, height))
		r.lastWidth = width
		r.lastHeight = height
	}
}

// composite rasterizes the current path into the mask, applies the opacity
// and blends the paint through it.
func (r *SoftwareRenderer) composite(dst *image.RGBA, paint Paint) {
	clear(r.mask.Pix)
	r.rast.Draw(r.mask, r.mask.Bounds(), image.Opaque, image.Point{})

	if op := paint.Opacity; op < 1 {
		for i, a := range r.mask.Pix {
			r.mask.Pix[i] = uint8(math.Round(float64(a) * op))
		}
	}
	draw.DrawMask(dst, dst.Bounds(), paint.source(), image.Point{}, r.mask, image.Point{}, draw.Over)
}

// addPath feeds the path's subpaths to the rasterizer. It reports whether
// anything was added.
func addPath(z *vector.Rasterizer, p *gielis.Path) bool {
	added := false
	open := false
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gielis.MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(float32(e.Point.X), float32(e.Point.Y))
			open = true
		case gielis.LineTo:
			if open {
				z.LineTo(float32(e.Point.X), float32(e.Point.Y))
				added = true
			}
		case gielis.Close:
			if open {
				z.ClosePath()
				open = false
			}
		}
	}
	if open {
		z.ClosePath()
	}
	return added
}

// addStroke adds one quad per segment, each offset by half the width along
// the segment normal. Every quad has the same orientation, so overlaps at
// joins accumulate instead of cancelling.
func addStroke(z *vector.Rasterizer, p *gielis.Path, width float64) bool {
	half := width / 2
	added := false

	var start, cur gielis.Point
	have := false
	segment := func(a, b gielis.Point) {
		d := b.Sub(a)
		l := math.Hypot(d.X, d.Y)
		if l == 0 {
			return
		}
		n := gielis.Pt(-d.Y/l*half, d.X/l*half)
		p0, p1 := a.Add(n), b.Add(n)
		p2, p3 := b.Sub(n), a.Sub(n)
		z.MoveTo(float32(p0.X), float32(p0.Y))
		z.LineTo(float32(p1.X), float32(p1.Y))
		z.LineTo(float32(p2.X), float32(p2.Y))
		z.LineTo(float32(p3.X), float32(p3.Y))
		z.ClosePath()
		added = true
	}

	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gielis.MoveTo:
			start, cur, have = e.Point, e.Point, true
		case gielis.LineTo:
			if have {
				segment(cur, e.Point)
				cur = e.Point
			}
		case gielis.Close:
			if have {
				segment(cur, start)
				cur = start
			}
		}
	}
	return added
}

// renderDots paints opaque squares centred on each dot.
func renderDots(dst *image.RGBA, dots []Dot, size float64) {
	bounds := dst.Bounds()
	half := size / 2
	for _, d := range dots {
		x0 := int(math.Floor(d.X - half))
		y0 := int(math.Floor(d.Y - half))
		rect := image.Rect(x0, y0, x0+int(math.Ceil(size)), y0+int(math.Ceil(size))).Intersect(bounds)
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			for x := rect.Min.X; x < rect.Max.X; x++ {
				dst.SetRGBA(x, y, d.Color)
			}
		}
	}
}
