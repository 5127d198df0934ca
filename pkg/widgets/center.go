package widgets

import (
	"github.com/go-drift/neumorphic/pkg/layout"
	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/rendering"
)

// RenderCenter expands to its constraints and centers its child.
// On an unbounded axis it shrinks to the child.
type RenderCenter struct {
	layout.RenderBoxBase
	child layout.RenderBox
}

// NewCenter creates a centering box with no child.
func NewCenter() *RenderCenter {
	r := &RenderCenter{}
	r.SetSelf(r)
	return r
}

// SetChild replaces the child.
func (r *RenderCenter) SetChild(child layout.RenderBox) {
	adoptChild(&r.RenderBoxBase, r.child, child)
	r.child = child
}

// Child returns the current child, if any.
func (r *RenderCenter) Child() layout.RenderBox {
	return r.child
}

// NearestPanel forwards to the parent.
func (r *RenderCenter) NearestPanel() neumorphic.Nestable {
	return forwardNearestPanel(r.Parent())
}

func (r *RenderCenter) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *RenderCenter) PerformLayout() {
	constraints := r.Constraints()
	target := rendering.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight}

	if r.child == nil {
		if !constraints.HasBoundedWidth() {
			target.Width = 0
		}
		if !constraints.HasBoundedHeight() {
			target.Height = 0
		}
		r.SetSize(constraints.Constrain(target))
		return
	}

	r.child.Layout(constraints.Loosen(), true)
	childSize := r.child.Size()
	if !constraints.HasBoundedWidth() {
		target.Width = childSize.Width
	}
	if !constraints.HasBoundedHeight() {
		target.Height = childSize.Height
	}
	size := constraints.Constrain(target)
	r.SetSize(size)
	r.child.SetParentData(&layout.BoxParentData{Offset: rendering.Offset{
		X: (size.Width - childSize.Width) / 2,
		Y: (size.Height - childSize.Height) / 2,
	}})
}

func (r *RenderCenter) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, layout.ChildOffset(r.child))
	}
}

func (r *RenderCenter) HitTest(position rendering.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) || r.child == nil {
		return false
	}
	// Hits outside the child pass through to whatever is below.
	return r.child.HitTest(localPosition(position, r.child), result)
}
