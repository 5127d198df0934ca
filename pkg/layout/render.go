package layout

import "github.com/go-drift/neumorphic/pkg/rendering"

// RenderObject handles layout, painting, and hit testing.
type RenderObject interface {
	Layout(constraints Constraints, parentUsesSize bool)
	Size() rendering.Size
	Paint(ctx *PaintContext)
	HitTest(position rendering.Offset, result *HitTestResult) bool
	ParentData() any
	SetParentData(data any)
	MarkNeedsLayout()
	MarkNeedsPaint()
	SetOwner(owner *PipelineOwner)
}

// RenderBox is a RenderObject with box layout.
type RenderBox interface {
	RenderObject
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	// VisitChildren calls the visitor function for each child.
	VisitChildren(visitor func(RenderObject))
}

// BoxParentData stores the offset for a child in a box layout.
type BoxParentData struct {
	Offset rendering.Offset
}

// RenderBoxBase provides base behavior for render boxes.
//
// Embedders call SetSelf with the concrete value right after construction
// and implement PerformLayout, which Layout invokes when the box is dirty or
// its constraints changed.
type RenderBoxBase struct {
	size             rendering.Size
	parentData       any
	owner            *PipelineOwner
	self             RenderObject
	parent           RenderObject // weak back-reference, never owning
	depth            int          // root = 0
	relayoutBoundary RenderObject
	needsLayout      bool
	needsPaint       bool
	constraints      Constraints
}

// Size returns the current size of the render box.
func (r *RenderBoxBase) Size() rendering.Size {
	return r.size
}

// SetSize updates the render box size and schedules a repaint when it changes.
func (r *RenderBoxBase) SetSize(size rendering.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.MarkNeedsPaint()
}

// ParentData returns the parent-assigned data for this render box.
func (r *RenderBoxBase) ParentData() any {
	return r.parentData
}

// SetParentData assigns parent-controlled data to this render box.
func (r *RenderBoxBase) SetParentData(data any) {
	r.parentData = data
}

// MarkNeedsLayout marks this render box as needing layout.
//
// Dirtiness walks up to the nearest relayout boundary, which is scheduled
// with the owner. Every node on the way is marked so layout reaches the
// changed node when the boundary lays out again.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.needsLayout {
		return
	}
	r.needsLayout = true

	if r.owner == nil || r.self == nil {
		return
	}
	if r.relayoutBoundary == r.self {
		r.owner.ScheduleLayout(r.self)
		return
	}
	if r.parent != nil {
		r.parent.MarkNeedsLayout()
		return
	}
	r.owner.ScheduleLayout(r.self)
}

// MarkNeedsPaint marks this render box as needing paint and requests a
// frame from the owner through the root.
func (r *RenderBoxBase) MarkNeedsPaint() {
	r.needsPaint = true
	if r.parent != nil {
		r.parent.MarkNeedsPaint()
		return
	}
	if r.owner != nil && r.self != nil {
		r.owner.SchedulePaint(r.self)
	}
}

// SetOwner assigns the pipeline owner for scheduling layout and paint.
func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) {
	r.owner = owner
}

// Owner returns the pipeline owner, if attached.
func (r *RenderBoxBase) Owner() *PipelineOwner {
	return r.owner
}

// SetSelf registers the concrete render object for scheduling.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsLayout = true
	r.needsPaint = true
}

// Self returns the concrete render object registered via SetSelf.
func (r *RenderBoxBase) Self() RenderObject {
	return r.self
}

// Parent returns the parent render object.
func (r *RenderBoxBase) Parent() RenderObject {
	return r.parent
}

// SetParent sets the parent render object and computes depth.
// Cached layout state from the previous tree position is discarded.
func (r *RenderBoxBase) SetParent(parent RenderObject) {
	if r.parent == parent {
		return
	}
	r.parent = parent
	if parent == nil {
		r.depth = 0
	} else if getter, ok := parent.(interface{ Depth() int }); ok {
		r.depth = getter.Depth() + 1
	} else {
		r.depth = 1
	}
	r.relayoutBoundary = nil
	r.constraints = Constraints{}
	r.needsLayout = true
	r.needsPaint = true
}

// Depth returns the tree depth (root = 0).
func (r *RenderBoxBase) Depth() int {
	return r.depth
}

// RelayoutBoundary returns the cached nearest relayout boundary.
func (r *RenderBoxBase) RelayoutBoundary() RenderObject {
	return r.relayoutBoundary
}

// NeedsLayout returns true if this render box needs layout.
func (r *RenderBoxBase) NeedsLayout() bool {
	return r.needsLayout
}

// NeedsPaint returns true if this render box needs painting.
func (r *RenderBoxBase) NeedsPaint() bool {
	return r.needsPaint
}

// ClearNeedsPaint marks this render object as painted.
func (r *RenderBoxBase) ClearNeedsPaint() {
	r.needsPaint = false
}

// Constraints returns the last received constraints.
func (r *RenderBoxBase) Constraints() Constraints {
	return r.constraints
}

// Layout records the relayout boundary and delegates to PerformLayout.
//
// A box is a relayout boundary when its constraints are tight, it is the
// root, or its parent does not read its size. Layout is skipped when the box
// is clean and receives the same constraints as last time.
func (r *RenderBoxBase) Layout(constraints Constraints, parentUsesSize bool) {
	if constraints.IsTight() || r.parent == nil || !parentUsesSize {
		r.relayoutBoundary = r.self
	} else if getter, ok := r.parent.(interface{ RelayoutBoundary() RenderObject }); ok {
		r.relayoutBoundary = getter.RelayoutBoundary()
	}

	if !r.needsLayout && r.constraints == constraints {
		return
	}
	r.constraints = constraints
	r.needsLayout = false

	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// SetParentOnChild sets the parent reference on a child render object.
// It marks both the old and new parent as needing layout when the parent changes.
func SetParentOnChild(child, parent RenderObject) {
	if child == nil {
		return
	}
	setter, ok := child.(interface{ SetParent(RenderObject) })
	if !ok {
		return
	}
	currentParent := ParentOf(child)
	if currentParent == parent {
		return
	}
	setter.SetParent(parent)
	if currentParent != nil {
		currentParent.MarkNeedsLayout()
	}
	if parent != nil {
		parent.MarkNeedsLayout()
	}
}

// ParentOf returns the parent of a render object, or nil at the root or
// when the object does not track its parent.
func ParentOf(obj RenderObject) RenderObject {
	if getter, ok := obj.(interface{ Parent() RenderObject }); ok {
		return getter.Parent()
	}
	return nil
}

// AttachOwner assigns owner to root and every descendant reachable through
// ChildVisitor.
func AttachOwner(root RenderObject, owner *PipelineOwner) {
	if root == nil {
		return
	}
	root.SetOwner(owner)
	if visitor, ok := root.(ChildVisitor); ok {
		visitor.VisitChildren(func(child RenderObject) {
			AttachOwner(child, owner)
		})
	}
}

// ChildOffset extracts the offset from a child's box parent data.
func ChildOffset(child RenderObject) rendering.Offset {
	if child == nil {
		return rendering.Offset{}
	}
	if data, ok := child.ParentData().(*BoxParentData); ok {
		return data.Offset
	}
	return rendering.Offset{}
}

// WithinBounds checks if a position is within the given size.
func WithinBounds(position rendering.Offset, size rendering.Size) bool {
	return position.X >= 0 && position.Y >= 0 && position.X <= size.Width && position.Y <= size.Height
}
