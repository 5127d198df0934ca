package rendering

// Paint describes how to draw a shape on the canvas.
//
// A zero-value Paint draws nothing (transparent color, Alpha 0).
// Use DefaultPaint for a basic opaque white fill.
type Paint struct {
	Color    Color
	Gradient *Gradient // If set, overrides Color for the fill

	// Alpha is the overall opacity 0.0-1.0.
	Alpha float64

	// Shadow, when set, draws a blurred, offset, single-colored copy of the
	// filled area beneath the fill. The shadow uses the same coverage as the
	// fill, so an inverse path yields an inward shadow.
	Shadow *ShadowLayer
}

// DefaultPaint returns a basic opaque white fill paint.
func DefaultPaint() Paint {
	return Paint{
		Color: ColorWhite,
		Alpha: 1.0,
	}
}

// SolidPaint returns an opaque fill paint of the given color.
func SolidPaint(color Color) Paint {
	paint := DefaultPaint()
	paint.Color = color
	return paint
}

// HasGradient reports whether the fill comes from a usable gradient.
func (p Paint) HasGradient() bool {
	return p.Gradient.IsValid()
}
