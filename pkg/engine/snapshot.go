package engine

import (
	"github.com/go-drift/neumorphic/pkg/layout"
	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/rendering"
)

// FrameSnapshot captures the resolved panel geometry of the last frame.
type FrameSnapshot struct {
	FrameID uint64          `json:"frameId"`
	Width   float64         `json:"width"`
	Height  float64         `json:"height"`
	Panels  []PanelSnapshot `json:"panels"`
}

// PanelSnapshot holds the canvas-space bounds and derived style of one panel.
type PanelSnapshot struct {
	Name        string  `json:"name,omitempty"`
	Depth       int     `json:"depth"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Shape       string  `json:"shape"`
	State       string  `json:"state"`
	Level       int     `json:"level"`
	BlurRadius  float64 `json:"blurRadius"`
	Offset      float64 `json:"offset"`
	BaseColor   string  `json:"baseColor"`
	BrightColor string  `json:"brightColor"`
	DimColor    string  `json:"dimColor"`
}

// Snapshot describes every panel in paint order. name labels each panel
// and may be nil.
func (e *Engine) Snapshot(name func(*neumorphic.Panel) string) FrameSnapshot {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()

	snap := FrameSnapshot{FrameID: e.frames, Width: e.size.Width, Height: e.size.Height}
	var walk func(obj layout.RenderObject, origin rendering.Offset)
	walk = func(obj layout.RenderObject, origin rendering.Offset) {
		if panel, ok := obj.(*neumorphic.Panel); ok {
			snap.Panels = append(snap.Panels, panelSnapshot(panel, origin, name))
		}
		if visitor, ok := obj.(layout.ChildVisitor); ok {
			visitor.VisitChildren(func(child layout.RenderObject) {
				offset := layout.ChildOffset(child)
				walk(child, origin.Translate(offset.X, offset.Y))
			})
		}
	}
	if e.root != nil {
		walk(e.root, rendering.Offset{})
	}
	return snap
}

func panelSnapshot(p *neumorphic.Panel, origin rendering.Offset, name func(*neumorphic.Panel) string) PanelSnapshot {
	size := p.Size()
	ps := PanelSnapshot{
		Depth:       p.Depth(),
		X:           origin.X,
		Y:           origin.Y,
		Width:       size.Width,
		Height:      size.Height,
		Shape:       p.Shape().String(),
		State:       p.State().String(),
		Level:       p.Level(),
		BlurRadius:  p.Paints().BlurRadius,
		Offset:      p.ShadowOffset(),
		BaseColor:   p.BaseColor().String(),
		BrightColor: p.BrightColor().String(),
		DimColor:    p.DimColor().String(),
	}
	if name != nil {
		ps.Name = name(p)
	}
	return ps
}
