package neumorphic

import (
	"math"
	"slices"

	"github.com/go-drift/neumorphic/pkg/layout"
	"github.com/go-drift/neumorphic/pkg/rendering"
)

// Panel is a render object drawing a neumorphic shape behind its children.
//
// Children are stacked at the panel origin and laid out with the panel's
// loosened constraints. Create panels with New.
type Panel struct {
	layout.RenderBoxBase
	children []layout.RenderBox

	shape        Shape
	state        State
	baseColor    rendering.Color
	brightColor  rendering.Color
	dimColor     rendering.Color
	cornerRadius float64
	width        float64
	height       float64
	density      float64
	level        int

	geometry Geometry
	paints   Paints
}

// New creates a detached panel from attrs. Its level is its own
// contribution until it is attached to a parent.
func New(attrs Attributes) *Panel {
	r := attrs.resolve()
	p := &Panel{
		shape:        r.shape,
		state:        r.state,
		cornerRadius: r.cornerRadius,
		width:        r.width,
		height:       r.height,
		density:      r.density,
	}
	p.SetSelf(p)
	p.setColors(r.baseColor)
	p.level = CalculateLevel(p.state, nil)
	p.rebuild()
	return p
}

// SetParent attaches the panel below parent and computes its level from
// the nearest panel ancestor at that moment. Later changes to ancestors do
// not reach the panel; call Refresh for that. Detaching (a nil parent)
// drops the level back to the panel's own term.
func (p *Panel) SetParent(parent layout.RenderObject) {
	p.RenderBoxBase.SetParent(parent)
	p.level = CalculateLevel(p.state, NearestPanel(parent))
	p.rebuild()
}

// NearestPanel returns the panel itself.
func (p *Panel) NearestPanel() Nestable {
	return p
}

// Shape returns the contour kind.
func (p *Panel) Shape() Shape {
	return p.shape
}

// SetShape changes the contour kind and requests a repaint.
func (p *Panel) SetShape(shape Shape) {
	p.shape = shape
	p.rebuild()
	p.MarkNeedsPaint()
}

// State returns the visual state.
func (p *Panel) State() State {
	return p.state
}

// SetState changes the visual state, recomputes the level against the
// current ancestors, and requests a repaint. Descendant levels are left
// as they were.
func (p *Panel) SetState(state State) {
	p.state = state
	p.level = CalculateLevel(state, NearestPanel(p.Parent()))
	p.rebuild()
	p.MarkNeedsPaint()
}

// Level returns the level computed at the last attach or state change.
func (p *Panel) Level() int {
	return p.level
}

// Refresh recomputes the level of p and then of every panel below it,
// parents before children, so each sees its ancestors' current levels.
func (p *Panel) Refresh() {
	p.level = CalculateLevel(p.state, NearestPanel(p.Parent()))
	p.rebuild()
	p.MarkNeedsPaint()
	for _, child := range p.children {
		refreshSubtree(child)
	}
}

// refresher is a node that recomputes its own subtree's levels.
type refresher interface {
	Refresh()
}

func refreshSubtree(obj layout.RenderObject) {
	if r, ok := obj.(refresher); ok {
		r.Refresh()
		return
	}
	if visitor, ok := obj.(layout.ChildVisitor); ok {
		visitor.VisitChildren(refreshSubtree)
	}
}

// BaseColor returns the fill color.
func (p *Panel) BaseColor() rendering.Color {
	return p.baseColor
}

// SetBaseColor changes the fill color, derives new shadow colors and
// requests a repaint.
func (p *Panel) SetBaseColor(color rendering.Color) {
	p.setColors(color)
	p.rebuild()
	p.MarkNeedsPaint()
}

// BrightColor returns the light-side shadow color.
func (p *Panel) BrightColor() rendering.Color {
	return p.brightColor
}

// DimColor returns the dark-side shadow color.
func (p *Panel) DimColor() rendering.Color {
	return p.dimColor
}

func (p *Panel) setColors(base rendering.Color) {
	p.baseColor = base
	p.brightColor = Bright(base)
	p.dimColor = Dim(base)
}

// CornerRadius returns the rectangle corner radius in pixels.
func (p *Panel) CornerRadius() float64 {
	return p.cornerRadius
}

// SetCornerRadius changes the rectangle corner radius.
// Negative values are treated as zero.
func (p *Panel) SetCornerRadius(radius float64) {
	p.cornerRadius = math.Max(0, radius)
	p.rebuild()
	p.MarkNeedsPaint()
}

// Density returns the pixels per dp used for shadow metrics.
func (p *Panel) Density() float64 {
	return p.density
}

// ShadowOffset returns the shadow displacement in pixels.
func (p *Panel) ShadowOffset() float64 {
	return ShadowOffsetDP * p.density
}

// ShadowRadius returns the unamplified blur radius in pixels.
func (p *Panel) ShadowRadius() float64 {
	return ShadowRadiusDP * p.density
}

// Geometry returns the contours for the current shape, state and size.
func (p *Panel) Geometry() Geometry {
	return p.geometry
}

// Paints returns the paints for the current state, level and colors.
func (p *Panel) Paints() Paints {
	return p.paints
}

// rebuild derives geometry and paints from the current fields.
func (p *Panel) rebuild() {
	size := p.Size()
	p.geometry = BuildGeometry(p.shape, p.state, size.Width, size.Height, p.cornerRadius)
	p.paints = DerivePaints(PaintInput{
		State:       p.state,
		Level:       p.level,
		BaseColor:   p.baseColor,
		BrightColor: p.brightColor,
		DimColor:    p.dimColor,
		Width:       size.Width,
		Height:      size.Height,
		Offset:      p.ShadowOffset(),
		BaseRadius:  p.ShadowRadius(),
	})
}

// AddChild appends child and attaches it to the panel.
func (p *Panel) AddChild(child layout.RenderBox) {
	if child == nil {
		return
	}
	p.children = append(p.children, child)
	layout.SetParentOnChild(child, p)
	if owner := p.Owner(); owner != nil {
		layout.AttachOwner(child, owner)
	}
}

// RemoveChild detaches child from the panel. A detached panel's level
// falls back to its own term, while panels below it keep theirs until
// Refresh.
func (p *Panel) RemoveChild(child layout.RenderBox) {
	i := slices.Index(p.children, child)
	if i < 0 {
		return
	}
	p.children = slices.Delete(p.children, i, i+1)
	layout.SetParentOnChild(child, nil)
	p.MarkNeedsLayout()
}

// Children returns the panel's children in paint order.
func (p *Panel) Children() []layout.RenderBox {
	return p.children
}

// VisitChildren calls visitor for each child.
func (p *Panel) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range p.children {
		visitor(child)
	}
}

// PerformLayout sizes the panel to its preferred size, falling back to its
// largest child per axis, and rebuilds geometry for the new size.
func (p *Panel) PerformLayout() {
	constraints := p.Constraints()
	preferred := constraints.Constrain(rendering.Size{Width: p.width, Height: p.height})

	childConstraints := constraints.Loosen()
	if p.width > 0 {
		childConstraints.MaxWidth = preferred.Width
	}
	if p.height > 0 {
		childConstraints.MaxHeight = preferred.Height
	}

	var content rendering.Size
	for _, child := range p.children {
		child.Layout(childConstraints, true)
		childSize := child.Size()
		content.Width = math.Max(content.Width, childSize.Width)
		content.Height = math.Max(content.Height, childSize.Height)
		child.SetParentData(&layout.BoxParentData{})
	}

	size := content
	if p.width > 0 {
		size.Width = p.width
	}
	if p.height > 0 {
		size.Height = p.height
	}
	p.SetSize(constraints.Constrain(size))
	p.rebuild()
}

// Paint draws the shadows and base in state order, then the children.
// A pressed panel clips itself and its children to the base contour.
func (p *Panel) Paint(ctx *layout.PaintContext) {
	canvas := ctx.Canvas
	g, paints := p.geometry, p.paints
	if p.state == StatePressed {
		canvas.Save()
		defer canvas.Restore()
		canvas.ClipPath(g.Base)
		canvas.DrawPath(g.Base, paints.Base)
		canvas.DrawPath(g.Bright, paints.Bright)
		canvas.DrawPath(g.Dim, paints.Dim)
	} else {
		canvas.DrawPath(g.Bright, paints.Bright)
		canvas.DrawPath(g.Dim, paints.Dim)
		canvas.DrawPath(g.Base, paints.Base)
	}
	for _, child := range p.children {
		ctx.PaintChild(child, layout.ChildOffset(child))
	}
}

// HitTest reports whether position falls inside the panel's shape,
// testing children first, topmost last-added.
func (p *Panel) HitTest(position rendering.Offset, result *layout.HitTestResult) bool {
	if !p.contains(position) {
		return false
	}
	for i := len(p.children) - 1; i >= 0; i-- {
		child := p.children[i]
		offset := layout.ChildOffset(child)
		local := rendering.Offset{X: position.X - offset.X, Y: position.Y - offset.Y}
		if child.HitTest(local, result) {
			break
		}
	}
	result.Add(p)
	return true
}

func (p *Panel) contains(position rendering.Offset) bool {
	size := p.Size()
	if !layout.WithinBounds(position, size) {
		return false
	}
	if p.shape != ShapeCircle {
		return true
	}
	r := math.Min(size.Width, size.Height) / 2
	dx, dy := position.X-size.Width/2, position.Y-size.Height/2
	return dx*dx+dy*dy <= r*r
}
