package rendering

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// GradientType describes the gradient variant.
type GradientType int

const (
	// GradientTypeNone indicates no gradient is applied.
	GradientTypeNone GradientType = iota
	// GradientTypeLinear indicates a linear gradient.
	GradientTypeLinear
)

// String returns a human-readable representation of the gradient type.
func (t GradientType) String() string {
	switch t {
	case GradientTypeNone:
		return "none"
	case GradientTypeLinear:
		return "linear"
	default:
		return fmt.Sprintf("GradientType(%d)", int(t))
	}
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines a gradient between two points.
type LinearGradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// Gradient describes a linear gradient. Colors outside the start/end range
// repeat the nearest stop (clamp tiling).
type Gradient struct {
	Type   GradientType
	Linear LinearGradient
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) *Gradient {
	return &Gradient{
		Type: GradientTypeLinear,
		Linear: LinearGradient{
			Start: start,
			End:   end,
			Stops: cloneGradientStops(stops),
		},
	}
}

// Stops returns the gradient stops for the configured type.
func (g *Gradient) Stops() []GradientStop {
	if g == nil {
		return nil
	}
	if g.Type != GradientTypeLinear {
		return nil
	}
	return g.Linear.Stops
}

// IsValid reports whether the gradient has usable stops.
func (g *Gradient) IsValid() bool {
	if g == nil {
		return false
	}
	stops := g.Stops()
	if len(stops) < 2 {
		return false
	}
	for _, stop := range stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	return true
}

// ColorAt returns the gradient color at the given point.
// Invalid gradients return ColorTransparent.
func (g *Gradient) ColorAt(p Offset) Color {
	if !g.IsValid() {
		return ColorTransparent
	}
	var t float64
	s, e := g.Linear.Start, g.Linear.End
	dx, dy := e.X-s.X, e.Y-s.Y
	if lenSq := dx*dx + dy*dy; lenSq > 0 {
		t = ((p.X-s.X)*dx + (p.Y-s.Y)*dy) / lenSq
	}
	return lerpStops(g.Stops(), math.Max(0, math.Min(1, t)))
}

func lerpStops(stops []GradientStop, t float64) Color {
	if t <= stops[0].Position {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Position {
			continue
		}
		span := b.Position - a.Position
		if span <= 0 {
			return b.Color
		}
		return blendColors(a.Color, b.Color, (t-a.Position)/span)
	}
	return stops[len(stops)-1].Color
}

// blendColors interpolates RGB in sRGB space and alpha linearly.
func blendColors(a, b Color, t float64) Color {
	ar, ag, ab, aa := a.RGBAF()
	br, bg, bb, ba := b.RGBAF()
	c := colorful.Color{R: ar, G: ag, B: ab}.BlendRgb(colorful.Color{R: br, G: bg, B: bb}, t)
	r, g, bl := c.RGB255()
	alpha := aa + (ba-aa)*t
	return RGBA(r, g, bl, uint8(math.Round(alpha*maxByte)))
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}
