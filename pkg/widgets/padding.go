package widgets

import (
	"github.com/go-drift/neumorphic/pkg/layout"
	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/rendering"
)

// RenderPadding insets its child by fixed edge insets.
//
// The child is constrained to the remaining space after padding is applied.
// Without a child the box is the size of the padding.
type RenderPadding struct {
	layout.RenderBoxBase
	child   layout.RenderBox
	padding layout.EdgeInsets
}

// NewPadding creates a padding box with no child.
func NewPadding(padding layout.EdgeInsets) *RenderPadding {
	r := &RenderPadding{padding: padding}
	r.SetSelf(r)
	return r
}

// SetChild replaces the child.
func (r *RenderPadding) SetChild(child layout.RenderBox) {
	adoptChild(&r.RenderBoxBase, r.child, child)
	r.child = child
}

// Child returns the current child, if any.
func (r *RenderPadding) Child() layout.RenderBox {
	return r.child
}

// Padding returns the insets.
func (r *RenderPadding) Padding() layout.EdgeInsets {
	return r.padding
}

// SetPadding changes the insets and schedules layout.
func (r *RenderPadding) SetPadding(padding layout.EdgeInsets) {
	if r.padding == padding {
		return
	}
	r.padding = padding
	r.MarkNeedsLayout()
}

// NearestPanel forwards to the parent.
func (r *RenderPadding) NearestPanel() neumorphic.Nestable {
	return forwardNearestPanel(r.Parent())
}

func (r *RenderPadding) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *RenderPadding) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Constrain(rendering.Size{
			Width:  r.padding.Horizontal(),
			Height: r.padding.Vertical(),
		}))
		return
	}
	r.child.Layout(constraints.Deflate(r.padding), true) // true: we read child.Size()
	childSize := r.child.Size()
	r.SetSize(constraints.Constrain(rendering.Size{
		Width:  childSize.Width + r.padding.Horizontal(),
		Height: childSize.Height + r.padding.Vertical(),
	}))
	r.child.SetParentData(&layout.BoxParentData{
		Offset: rendering.Offset{X: r.padding.Left, Y: r.padding.Top},
	})
}

func (r *RenderPadding) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, layout.ChildOffset(r.child))
	}
}

func (r *RenderPadding) HitTest(position rendering.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil && r.child.HitTest(localPosition(position, r.child), result) {
		return true
	}
	result.Add(r)
	return true
}
