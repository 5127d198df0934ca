package widgets

import (
	"github.com/go-drift/neumorphic/pkg/layout"
	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/rendering"
)

// adoptChild detaches old, attaches child below parent and hands it the
// parent's pipeline owner.
func adoptChild(parent *layout.RenderBoxBase, old, child layout.RenderBox) {
	if old != nil {
		layout.SetParentOnChild(old, nil)
	}
	if child == nil {
		return
	}
	layout.SetParentOnChild(child, parent.Self())
	if owner := parent.Owner(); owner != nil {
		layout.AttachOwner(child, owner)
	}
}

// forwardNearestPanel answers the nearest-panel query on behalf of a
// container by asking its parent.
func forwardNearestPanel(parent layout.RenderObject) neumorphic.Nestable {
	return neumorphic.NearestPanel(parent)
}

// localPosition converts position into child coordinates.
func localPosition(position rendering.Offset, child layout.RenderObject) rendering.Offset {
	offset := layout.ChildOffset(child)
	return rendering.Offset{X: position.X - offset.X, Y: position.Y - offset.Y}
}
