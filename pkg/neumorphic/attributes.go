package neumorphic

import "github.com/go-drift/neumorphic/pkg/rendering"

// Attributes are the initial settings of a panel as supplied by a markup
// layer. Shape and State hold discrete codes (see ParseShape and
// ParseState); an empty or unrecognized code keeps the default.
type Attributes struct {
	Shape string
	State string
	// BackgroundColor defaults to opaque white when nil.
	BackgroundColor *rendering.Color
	// CornerRadius is in pixels and defaults to 0 when nil.
	CornerRadius *float64
	// Width and Height are the preferred size in pixels. Zero sizes the
	// panel to its largest child along that axis.
	Width  float64
	Height float64
	// Density converts dp to pixels for the shadow offset and radius.
	// Zero means 1.
	Density float64
}

// resolved holds attribute values after defaults are applied.
type resolved struct {
	shape        Shape
	state        State
	baseColor    rendering.Color
	cornerRadius float64
	width        float64
	height       float64
	density      float64
}

func (a Attributes) resolve() resolved {
	r := resolved{
		shape:     ShapeRectangle,
		state:     StateFlat,
		baseColor: rendering.ColorWhite,
		width:     a.Width,
		height:    a.Height,
		density:   1,
	}
	if shape, ok := ParseShape(a.Shape); ok {
		r.shape = shape
	}
	if state, ok := ParseState(a.State); ok {
		r.state = state
	}
	if a.BackgroundColor != nil {
		r.baseColor = *a.BackgroundColor
	}
	if a.CornerRadius != nil && *a.CornerRadius > 0 {
		r.cornerRadius = *a.CornerRadius
	}
	if a.Density > 0 {
		r.density = a.Density
	}
	return r
}
