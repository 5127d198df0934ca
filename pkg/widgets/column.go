package widgets

import (
	"math"
	"slices"

	"github.com/go-drift/neumorphic/pkg/layout"
	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/rendering"
)

// RenderColumn stacks children vertically, spacing them evenly and
// centering each one horizontally. Its width is that of the widest child.
type RenderColumn struct {
	layout.RenderBoxBase
	children []layout.RenderBox
	spacing  float64
}

// NewColumn creates an empty column with the given gap between children.
func NewColumn(spacing float64) *RenderColumn {
	r := &RenderColumn{spacing: math.Max(0, spacing)}
	r.SetSelf(r)
	return r
}

// AddChild appends child to the bottom of the column.
func (r *RenderColumn) AddChild(child layout.RenderBox) {
	if child == nil {
		return
	}
	r.children = append(r.children, child)
	adoptChild(&r.RenderBoxBase, nil, child)
}

// RemoveChild detaches child from the column.
func (r *RenderColumn) RemoveChild(child layout.RenderBox) {
	i := slices.Index(r.children, child)
	if i < 0 {
		return
	}
	r.children = slices.Delete(r.children, i, i+1)
	layout.SetParentOnChild(child, nil)
	r.MarkNeedsLayout()
}

// Children returns the children top to bottom.
func (r *RenderColumn) Children() []layout.RenderBox {
	return r.children
}

// Spacing returns the gap between children.
func (r *RenderColumn) Spacing() float64 {
	return r.spacing
}

// NearestPanel forwards to the parent.
func (r *RenderColumn) NearestPanel() neumorphic.Nestable {
	return forwardNearestPanel(r.Parent())
}

func (r *RenderColumn) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}

func (r *RenderColumn) PerformLayout() {
	constraints := r.Constraints()
	childConstraints := constraints.Loosen()

	height, width := 0.0, 0.0
	for i, child := range r.children {
		if i > 0 {
			height += r.spacing
		}
		child.Layout(childConstraints, true) // true: we read child.Size()
		childSize := child.Size()
		height += childSize.Height
		width = math.Max(width, childSize.Width)
	}
	size := constraints.Constrain(rendering.Size{Width: width, Height: height})
	r.SetSize(size)

	y := 0.0
	for _, child := range r.children {
		childSize := child.Size()
		child.SetParentData(&layout.BoxParentData{
			Offset: rendering.Offset{X: (size.Width - childSize.Width) / 2, Y: y},
		})
		y += childSize.Height + r.spacing
	}
}

func (r *RenderColumn) Paint(ctx *layout.PaintContext) {
	for _, child := range r.children {
		ctx.PaintChild(child, layout.ChildOffset(child))
	}
}

func (r *RenderColumn) HitTest(position rendering.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	for i := len(r.children) - 1; i >= 0; i-- {
		child := r.children[i]
		if child.HitTest(localPosition(position, child), result) {
			return true
		}
	}
	return false
}
