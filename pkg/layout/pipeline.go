package layout

import "slices"

// PipelineOwner tracks render objects that need layout or paint.
//
// Relayout boundaries are scheduled here by MarkNeedsLayout; the root is
// scheduled for paint by MarkNeedsPaint. A frame driver calls
// FlushLayoutForRoot, paints, then FlushPaint.
type PipelineOwner struct {
	dirtyLayout    []RenderObject
	dirtyLayoutSet map[RenderObject]bool
	dirtyPaint     map[RenderObject]struct{}
	needsLayout    bool
	needsPaint     bool
}

// ScheduleLayout marks a relayout boundary as needing layout.
func (p *PipelineOwner) ScheduleLayout(object RenderObject) {
	if p.dirtyLayoutSet == nil {
		p.dirtyLayoutSet = make(map[RenderObject]bool)
	}
	if p.dirtyLayoutSet[object] {
		return
	}
	p.dirtyLayoutSet[object] = true
	p.dirtyLayout = append(p.dirtyLayout, object)
	p.needsLayout = true
	p.needsPaint = true
}

// SchedulePaint marks a render object as needing paint.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	if p.dirtyPaint == nil {
		p.dirtyPaint = make(map[RenderObject]struct{})
	}
	p.dirtyPaint[object] = struct{}{}
	p.needsPaint = true
}

// NeedsLayout reports if any render objects need layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return p.needsLayout
}

// NeedsPaint reports if any render objects need paint.
func (p *PipelineOwner) NeedsPaint() bool {
	return p.needsPaint
}

// FlushLayoutForRoot lays out root with the given constraints, then any
// boundaries scheduled while doing so.
func (p *PipelineOwner) FlushLayoutForRoot(root RenderObject, constraints Constraints) {
	if root == nil {
		return
	}
	root.Layout(constraints, false)
	p.flushDirtyBoundaries()
	p.dirtyLayout = nil
	p.dirtyLayoutSet = nil
	p.needsLayout = false
}

// flushDirtyBoundaries lays out scheduled boundaries parents first, so a
// child already laid out by its parent's pass is skipped.
func (p *PipelineOwner) flushDirtyBoundaries() {
	for len(p.dirtyLayout) > 0 {
		slices.SortFunc(p.dirtyLayout, func(a, b RenderObject) int {
			return getDepth(a) - getDepth(b)
		})
		dirty := p.dirtyLayout
		p.dirtyLayout = nil
		p.dirtyLayoutSet = nil

		for _, node := range dirty {
			if layouter, ok := node.(interface {
				NeedsLayout() bool
				Constraints() Constraints
			}); ok && layouter.NeedsLayout() {
				node.Layout(layouter.Constraints(), false)
			}
		}
	}
}

func getDepth(obj RenderObject) int {
	if getter, ok := obj.(interface{ Depth() int }); ok {
		return getter.Depth()
	}
	return 0
}

// FlushPaint clears the paint schedule and the needsPaint flag of every
// node in root's subtree.
func (p *PipelineOwner) FlushPaint(root RenderObject) {
	clearNeedsPaint(root)
	p.dirtyPaint = nil
	p.needsPaint = false
}

func clearNeedsPaint(obj RenderObject) {
	if obj == nil {
		return
	}
	if clearer, ok := obj.(interface{ ClearNeedsPaint() }); ok {
		clearer.ClearNeedsPaint()
	}
	if visitor, ok := obj.(ChildVisitor); ok {
		visitor.VisitChildren(clearNeedsPaint)
	}
}
