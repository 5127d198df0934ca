package neumorphic

// Shape selects the contour generator of a panel.
type Shape int

const (
	// ShapeRectangle is a rounded rectangle spanning the panel bounds.
	ShapeRectangle Shape = iota
	// ShapeCircle is a circle centered in the panel bounds.
	ShapeCircle
)

func (s Shape) String() string {
	switch s {
	case ShapeRectangle:
		return "rectangle"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// State selects the fill style and shadow polarity of a panel.
type State int

const (
	// StateFlat fills the base with the solid base color.
	StateFlat State = iota
	// StateConcave fills the base with a dim to bright gradient.
	StateConcave
	// StateConvex fills the base with a bright to dim gradient.
	StateConvex
	// StatePressed inverts the shadow layers into an inset glow.
	StatePressed
)

func (s State) String() string {
	switch s {
	case StateFlat:
		return "flat"
	case StateConcave:
		return "concave"
	case StateConvex:
		return "convex"
	case StatePressed:
		return "pressed"
	default:
		return "unknown"
	}
}

// States lists every state in rotation order.
var States = []State{StateFlat, StateConcave, StateConvex, StatePressed}

// ParseShape maps a discrete shape code to a Shape.
// "0" is a rectangle and "1" a circle; other codes report false.
func ParseShape(code string) (Shape, bool) {
	switch code {
	case "0":
		return ShapeRectangle, true
	case "1":
		return ShapeCircle, true
	}
	return ShapeRectangle, false
}

// ParseState maps a discrete state code ("0" through "3") to a State.
func ParseState(code string) (State, bool) {
	switch code {
	case "0":
		return StateFlat, true
	case "1":
		return StateConcave, true
	case "2":
		return StateConvex, true
	case "3":
		return StatePressed, true
	}
	return StateFlat, false
}

// NextState returns the state following s in the rotation
// flat, concave, convex, pressed and back to flat.
func NextState(s State) State {
	switch s {
	case StateFlat:
		return StateConcave
	case StateConcave:
		return StateConvex
	case StateConvex:
		return StatePressed
	default:
		return StateFlat
	}
}
