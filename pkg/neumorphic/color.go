package neumorphic

import (
	"math"

	"github.com/go-drift/neumorphic/pkg/rendering"
)

const (
	brightFactor = 1.1
	dimFactor    = 0.9
)

// Manipulate scales the red, green and blue channels of c by factor,
// rounding half away from zero and clamping to [0, 255]. Alpha is kept.
func Manipulate(c rendering.Color, factor float64) rendering.Color {
	return rendering.RGBA(
		scaleChannel(c.Red(), factor),
		scaleChannel(c.Green(), factor),
		scaleChannel(c.Blue(), factor),
		c.Alpha(),
	)
}

// Bright returns the light-side shadow color for c.
func Bright(c rendering.Color) rendering.Color {
	return Manipulate(c, brightFactor)
}

// Dim returns the dark-side shadow color for c.
func Dim(c rendering.Color) rendering.Color {
	return Manipulate(c, dimFactor)
}

func scaleChannel(v uint8, factor float64) uint8 {
	scaled := math.Round(float64(v) * factor)
	return uint8(math.Min(255, math.Max(0, scaled)))
}
