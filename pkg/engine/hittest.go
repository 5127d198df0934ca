package engine

import (
	"github.com/go-drift/neumorphic/pkg/layout"
	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/rendering"
)

// HitTest returns the render objects under the canvas position (x, y),
// deepest first. The tree must have been laid out by a previous frame.
func (e *Engine) HitTest(x, y float64) []layout.RenderObject {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()

	if e.root == nil {
		return nil
	}
	result := &layout.HitTestResult{}
	if !e.root.HitTest(rendering.Offset{X: x, Y: y}, result) {
		return nil
	}
	return result.Entries
}

// PanelAt returns the deepest panel under (x, y), or nil.
func (e *Engine) PanelAt(x, y float64) *neumorphic.Panel {
	for _, entry := range e.HitTest(x, y) {
		if panel, ok := entry.(*neumorphic.Panel); ok {
			return panel
		}
	}
	return nil
}
