// Package neumorphic renders soft-UI panels: a rounded rectangle or circle
// whose base fill sits between a bright shadow cast toward the light (up and
// to the left) and a dim shadow cast away from it.
//
// A [Panel] is a render object. Its level, the sum of its own polarity and
// that of its nearest panel ancestor, widens the shadow blur as panels nest
// and narrows it for pressed panels:
//
//	card := neumorphic.New(neumorphic.Attributes{State: "1", CornerRadius: &r})
//	button := neumorphic.New(neumorphic.Attributes{Shape: "1"})
//	card.AddChild(button) // button.Level() == 2
//
// Geometry and paints are derived state. They are rebuilt whenever the shape,
// state or laid out size changes and are never shared between panels.
package neumorphic
