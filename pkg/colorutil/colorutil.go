// Package colorutil provides shared color utilities for overlay rendering.
package colorutil

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Common overlay colors used throughout the application.
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255} // Default shape color
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}   // Glow
	Green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}     // Node highlight
	Cyan   = color.RGBA{R: 0, G: 255, B: 255, A: 255}   // Outline
)

// RGBA is a color with float components in [0, 1], the form handed to the
// renderer for every sample of a layer.
type RGBA struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

// FromColor converts any color.Color to RGBA, keeping its alpha.
func FromColor(c color.Color) RGBA {
	_, _, _, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	cf, _ := colorful.MakeColor(c)
	return RGBA{
		R: float32(cf.R),
		G: float32(cf.G),
		B: float32(cf.B),
		A: float32(a) / 0xffff,
	}
}

// Hex parses a "#rrggbb" string into an opaque RGBA.
func Hex(s string) (RGBA, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, errors.Wrapf(err, "parse color %q", s)
	}
	return RGBA{R: float32(cf.R), G: float32(cf.G), B: float32(cf.B), A: 1}, nil
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float32) RGBA {
	c.A = a
	return c
}

// Hex formats the color channels as "#rrggbb", dropping alpha.
func (c RGBA) Hex() string {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().Hex()
}

// RGBA8 converts to a non-premultiplied 8-bit color.
func (c RGBA) RGBA8() color.NRGBA {
	r, g, b := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(c.A*255 + 0.5)}
}
