// Package widgets provides the non-panel render boxes used to arrange
// neumorphic panels: Padding, Column and Center.
//
// Each box answers the nearest-panel query by forwarding it to its parent,
// so a panel below a container takes its level from the panel above the
// container:
//
//	card := neumorphic.New(neumorphic.Attributes{})
//	pad := widgets.NewPadding(layout.EdgeInsetsAll(24))
//	card.AddChild(pad)
//	pad.SetChild(neumorphic.New(neumorphic.Attributes{})) // level 2
//
// Attach containers to their parent before giving them children; a panel's
// level is computed once, when it is attached.
package widgets
