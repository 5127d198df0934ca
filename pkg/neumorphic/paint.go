package neumorphic

import "github.com/go-drift/neumorphic/pkg/rendering"

const (
	// ShadowOffsetDP is the distance, in dp, each shadow is displaced along
	// both axes.
	ShadowOffsetDP = 10
	// ShadowRadiusDP is the base blur radius, in dp, before the level
	// amplifier is applied.
	ShadowRadiusDP = 20
)

// PaintInput is everything DerivePaints reads.
type PaintInput struct {
	State       State
	Level       int
	BaseColor   rendering.Color
	BrightColor rendering.Color
	DimColor    rendering.Color
	Width       float64
	Height      float64
	// Offset is the shadow displacement in pixels.
	Offset float64
	// BaseRadius is the unamplified blur radius in pixels.
	BaseRadius float64
}

// Paints holds the paint for each contour of a panel.
type Paints struct {
	Base   rendering.Paint
	Bright rendering.Paint
	Dim    rendering.Paint
	// BlurRadius is the amplified radius shared by both shadows.
	BlurRadius float64
}

// ShadowBlurRadius amplifies base by level tenths of itself. The amplifier
// is added for raised states and subtracted for StatePressed. The result is
// not clamped and may be negative.
func ShadowBlurRadius(base float64, level int, state State) float64 {
	sign := 1.0
	if state == StatePressed {
		sign = -1
	}
	return base + float64(level)*(base/10)*sign
}

// DerivePaints chooses the fill and shadow of every contour.
//
// The base is solid for flat and pressed panels. Concave panels blend from
// the dim color at (0,0) to the bright color at (width,height); convex panels
// blend the other way. The bright and dim paints always fill with the base
// color and carry the shadow: bright toward (-offset,-offset), dim toward
// (+offset,+offset).
func DerivePaints(in PaintInput) Paints {
	blur := ShadowBlurRadius(in.BaseRadius, in.Level, in.State)

	base := rendering.SolidPaint(in.BaseColor)
	switch in.State {
	case StateConcave:
		base.Gradient = diagonalGradient(in.Width, in.Height, in.DimColor, in.BrightColor)
	case StateConvex:
		base.Gradient = diagonalGradient(in.Width, in.Height, in.BrightColor, in.DimColor)
	}

	bright := rendering.SolidPaint(in.BaseColor)
	bright.Shadow = rendering.NewShadowLayer(blur, -in.Offset, -in.Offset, in.BrightColor)

	dim := rendering.SolidPaint(in.BaseColor)
	dim.Shadow = rendering.NewShadowLayer(blur, in.Offset, in.Offset, in.DimColor)

	return Paints{Base: base, Bright: bright, Dim: dim, BlurRadius: blur}
}

func diagonalGradient(width, height float64, from, to rendering.Color) *rendering.Gradient {
	return rendering.NewLinearGradient(
		rendering.Offset{},
		rendering.Offset{X: width, Y: height},
		[]rendering.GradientStop{
			{Position: 0, Color: from},
			{Position: 1, Color: to},
		},
	)
}
