package gielis

import (
	"image/color"
	"math"
)

// TileSize is the edge length of a noise texture tile in pixels.
const TileSize = 100

// Noise2D is a hash-based pseudo-random field. Coordinates are quantised by
// scale before hashing, so the field is constant over 1/scale cells. The
// result lies in (-1, 1); the remainder keeps the sign of the hashed sine.
func Noise2D(x, y, scale float64) float64 {
	X := math.Floor(x * scale)
	Y := math.Floor(y * scale)
	// Explicit conversions keep the sum from being fused into an FMA.
	return math.Mod(math.Sin(float64(X*12.9898)+float64(Y*78.233))*43758.5453, 1)
}

// NoiseTile generates a TileSize×TileSize tile: every RGB channel of base is
// shifted by Noise2D·strength·255 and clamped to [0, 255]; alpha is opaque.
// The same (scale, strength, base) always yields the same pixels.
func NoiseTile(scale, strength float64, base color.Color) *Pixmap {
	r, g, b, _ := base.RGBA()
	br, bg, bb := float64(r>>8), float64(g>>8), float64(b>>8)

	pm := NewPixmap(TileSize, TileSize)
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			d := Noise2D(float64(x), float64(y), scale) * strength * 255
			pm.SetRGBA(x, y, color.RGBA{
				R: clampChannel(br + d),
				G: clampChannel(bg + d),
				B: clampChannel(bb + d),
				A: 255,
			})
		}
	}
	return pm
}

// clampChannel rounds half to even and clamps to a byte, like a clamped
// 8-bit pixel store. NaN maps to 0.
func clampChannel(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.RoundToEven(v))
}
