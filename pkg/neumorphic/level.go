package neumorphic

import "github.com/go-drift/neumorphic/pkg/layout"

// Nestable is implemented by anything that contributes to a descendant
// panel's level.
type Nestable interface {
	Level() int
}

// PanelScope answers the nearest panel at or above a node.
//
// Panels return themselves. Containers that may sit between panels
// forward their parent's answer, so a panel never inspects concrete
// ancestor types.
type PanelScope interface {
	NearestPanel() Nestable
}

// NearestPanel walks up from obj (inclusive) to the first node that
// implements PanelScope and returns its answer, or nil when there is none.
func NearestPanel(obj layout.RenderObject) Nestable {
	for obj != nil {
		if scope, ok := obj.(PanelScope); ok {
			return scope.NearestPanel()
		}
		obj = layout.ParentOf(obj)
	}
	return nil
}

// LevelFromState returns a panel's own contribution to its level:
// -1 when pressed, +1 otherwise.
func LevelFromState(state State) int {
	if state == StatePressed {
		return -1
	}
	return 1
}

// CalculateLevel adds the own contribution of state to the ancestor's
// level. A nil ancestor contributes nothing.
func CalculateLevel(state State, ancestor Nestable) int {
	if ancestor == nil {
		return LevelFromState(state)
	}
	return ancestor.Level() + LevelFromState(state)
}
