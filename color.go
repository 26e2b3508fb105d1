package gielis

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Saturation and lightness of randomly picked shape colours.
const (
	randomSaturation = 0.7
	randomLightness  = 0.5
)

// ParseHex parses "#rrggbb" or "#rgb" (the leading '#' is optional) into an
// opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	c, err := parseColorful(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// NormalizeHex parses s and returns it in canonical "#rrggbb" form.
func NormalizeHex(s string) (string, error) {
	c, err := parseColorful(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

func parseColorful(s string) (colorful.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	// colorful.Hex scans with fmt and accepts short or trailing digits.
	if len(s) != 4 && len(s) != 7 {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// RandomHue returns a colour with a random hue at fixed saturation and
// lightness, as "#rrggbb".
func RandomHue(rng *rand.Rand) string {
	h := rng.Float64() * 360
	return colorful.Hsl(h, randomSaturation, randomLightness).Clamped().Hex()
}

// lerpRGB linearly interpolates between two colours in RGB.
func lerpRGB(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendRgb(b, t)
}
