// Package palette maps scene depth to display colors for the
// wireframe renderer.
package palette

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Depth coloring sweeps hue 200°→260° and lightness 30%→70% across the
// normalized depth range.
const (
	depthHueMin   = 200.0
	depthHueMax   = 260.0
	depthLightMin = 30.0
	depthLightMax = 70.0
	depthSat      = 100.0
)

// HSLHex converts an HSL color (h in degrees, s and l in percent) to a
// "#rrggbb" string.
func HSLHex(h, s, l float64) string {
	return colorful.Hsl(h, s/100, l/100).Hex()
}

// DepthColor maps a depth value to a hex color against the given
// bounds. The normalized value is not clamped: depths outside
// [minZ, maxZ] extrapolate the hue and lightness ramps.
func DepthColor(z, minZ, maxZ float64) string {
	t := (z - minZ) / (maxZ - minZ)
	hue := depthHueMin + t*(depthHueMax-depthHueMin)
	light := depthLightMin + t*(depthLightMax-depthLightMin)
	return HSLHex(hue, depthSat, light)
}

// Lerp interpolates two hex colors channel-wise in RGB space. t is not
// clamped to [0, 1].
func Lerp(a, b string, t float64) (string, error) {
	ca, err := colorful.Hex(a)
	if err != nil {
		return "", fmt.Errorf("parse color %q: %w", a, err)
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return "", fmt.Errorf("parse color %q: %w", b, err)
	}
	return colorful.Color{
		R: ca.R + t*(cb.R-ca.R),
		G: ca.G + t*(cb.G-ca.G),
		B: ca.B + t*(cb.B-ca.B),
	}.Hex(), nil
}

// RGBA parses a "#rrggbb" string into an opaque color.RGBA for the
// drawing backends.
func RGBA(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
