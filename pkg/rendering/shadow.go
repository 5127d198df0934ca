package rendering

// ShadowLayer is a blurred copy of a shape drawn underneath it, offset from
// the shape and tinted with a single color.
//
// BlurRadius is passed to the backend exactly as given. Backends treat a
// radius at or below zero as an unblurred (hard-edged) shadow.
type ShadowLayer struct {
	Color      Color
	Offset     Offset
	BlurRadius float64 // sigma = blurRadius * 0.5
}

// NewShadowLayer creates a shadow with the given blur radius, offset and color.
func NewShadowLayer(blurRadius, dx, dy float64, color Color) *ShadowLayer {
	return &ShadowLayer{
		Color:      color,
		Offset:     Offset{X: dx, Y: dy},
		BlurRadius: blurRadius,
	}
}

// Sigma returns the gaussian blur sigma for the shadow.
// Returns 0 if BlurRadius is zero or negative.
func (s ShadowLayer) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}
