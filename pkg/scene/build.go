package scene

import (
	"fmt"

	"github.com/go-drift/neumorphic/pkg/errors"
	"github.com/go-drift/neumorphic/pkg/layout"
	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/rendering"
	"github.com/go-drift/neumorphic/pkg/widgets"
)

// DefaultBackground is the canvas color used when a scene names none.
var DefaultBackground = rendering.RGB(0xE0, 0xE5, 0xEC)

// Options control how a document is built.
type Options struct {
	// Density overrides the document density when positive.
	Density float64
}

// Scene is a built render tree and the canvas it was described with.
type Scene struct {
	Width      float64
	Height     float64
	Density    float64
	Background rendering.Color
	Root       layout.RenderBox
	// Panels lists every panel in tree order, parents first.
	Panels []*neumorphic.Panel

	names map[*neumorphic.Panel]string
}

// Name returns the name given to p in the document, or "".
func (s *Scene) Name(p *neumorphic.Panel) string {
	return s.names[p]
}

// Panel returns the panel called name, or nil.
func (s *Scene) Panel(name string) *neumorphic.Panel {
	for p, n := range s.names {
		if n == name {
			return p
		}
	}
	return nil
}

// Build creates the render tree for doc.
//
// Nodes are attached to their parent before their own children are built,
// so every panel computes its level against a complete ancestor chain.
// Unrecognized shape or state codes and malformed panel colors keep the
// attribute default and are reported through errors.Report.
func Build(doc *Document, opts Options) (*Scene, error) {
	if doc == nil || doc.Root == nil {
		return nil, &errors.Error{Op: "scene.Build", Kind: errors.KindParsing, Err: fmt.Errorf("missing root node")}
	}
	s := &Scene{
		Width:      doc.Width,
		Height:     doc.Height,
		Density:    doc.Density,
		Background: DefaultBackground,
		names:      make(map[*neumorphic.Panel]string),
	}
	if opts.Density > 0 {
		s.Density = opts.Density
	}
	if s.Density <= 0 {
		s.Density = 1
	}
	if doc.Background != "" {
		bg, err := ParseColor(doc.Background)
		if err != nil {
			return nil, &errors.Error{Op: "scene.Build", Kind: errors.KindParsing, Err: err}
		}
		s.Background = bg
	}

	b := &builder{scene: s}
	if err := b.build(doc.Root, "root", func(box layout.RenderBox) { s.Root = box }); err != nil {
		return nil, &errors.Error{Op: "scene.Build", Kind: errors.KindParsing, Err: err}
	}
	return s, nil
}

type builder struct {
	scene *Scene
}

// build creates the object for n, hands it to attach, then builds the
// children into it. path locates n in error messages.
func (b *builder) build(n *Node, path string, attach func(layout.RenderBox)) error {
	kids := n.Children
	if n.Child != nil {
		kids = append(append([]Node(nil), kids...), *n.Child)
	}

	switch n.Type {
	case TypePanel, "":
		p := neumorphic.New(b.attributes(n, path))
		attach(p)
		b.scene.Panels = append(b.scene.Panels, p)
		if n.Name != "" {
			b.scene.names[p] = n.Name
		}
		return b.buildAll(kids, path, p.AddChild)

	case TypeColumn:
		col := widgets.NewColumn(n.Spacing)
		attach(col)
		return b.buildAll(kids, path, col.AddChild)

	case TypePadding:
		pad := widgets.NewPadding(layout.EdgeInsets(n.Padding))
		attach(pad)
		if len(kids) > 1 {
			return fmt.Errorf("%s: padding takes a single child, got %d", path, len(kids))
		}
		return b.buildAll(kids, path, pad.SetChild)

	case TypeCenter:
		center := widgets.NewCenter()
		attach(center)
		if len(kids) > 1 {
			return fmt.Errorf("%s: center takes a single child, got %d", path, len(kids))
		}
		return b.buildAll(kids, path, center.SetChild)
	}
	return &errors.ParseError{
		Field: path + ".type",
		Value: n.Type,
		Want:  fmt.Sprintf("%q, %q, %q or %q", TypePanel, TypeColumn, TypePadding, TypeCenter),
	}
}

func (b *builder) buildAll(nodes []Node, path string, attach func(layout.RenderBox)) error {
	for i := range nodes {
		if err := b.build(&nodes[i], fmt.Sprintf("%s[%d]", path, i), attach); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) attributes(n *Node, path string) neumorphic.Attributes {
	attrs := neumorphic.Attributes{
		Shape:        n.Shape,
		State:        n.State,
		CornerRadius: n.CornerRadius,
		Width:        n.Width,
		Height:       n.Height,
		Density:      b.scene.Density,
	}
	if n.Shape != "" {
		if _, ok := neumorphic.ParseShape(n.Shape); !ok {
			reportAttribute(path+".shape", n.Shape, `"0" or "1"`)
		}
	}
	if n.State != "" {
		if _, ok := neumorphic.ParseState(n.State); !ok {
			reportAttribute(path+".state", n.State, `"0", "1", "2" or "3"`)
		}
	}
	if n.BackgroundColor != "" {
		c, err := ParseColor(n.BackgroundColor)
		if err != nil {
			reportAttribute(path+".background_color", n.BackgroundColor, colorFormats)
		} else {
			attrs.BackgroundColor = &c
		}
	}
	return attrs
}

func reportAttribute(field, value, want string) {
	errors.Report(&errors.Error{
		Op:   "scene.Build",
		Kind: errors.KindParsing,
		Err:  &errors.ParseError{Field: field, Value: value, Want: want},
	})
}
