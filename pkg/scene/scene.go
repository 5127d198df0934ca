// Package scene loads YAML descriptions of panel trees and builds them into
// render objects.
//
// A scene names its canvas size and background and holds a tree of nodes.
// Panel attributes use the same discrete codes as markup layouts:
//
//	width: 360
//	height: 240
//	root:
//	  type: column
//	  spacing: 24
//	  children:
//	    - type: panel
//	      name: card
//	      shape: "0"
//	      state: "1"
//	      corner_radius: 16
//	      width: 200
//	      height: 120
package scene

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/neumorphic/pkg/errors"
	"github.com/go-drift/neumorphic/pkg/layout"
)

// Node types.
const (
	TypePanel   = "panel"
	TypeColumn  = "column"
	TypePadding = "padding"
	TypeCenter  = "center"
)

// Document is a parsed scene file.
type Document struct {
	Width      float64 `yaml:"width,omitempty"`
	Height     float64 `yaml:"height,omitempty"`
	Density    float64 `yaml:"density,omitempty"`
	Background string  `yaml:"background,omitempty"`
	Root       *Node   `yaml:"root"`
}

// Node is one element of the scene tree.
type Node struct {
	Type string `yaml:"type"`
	// Name identifies a panel in tool output and demo logs.
	Name string `yaml:"name,omitempty"`

	// Panel attributes.
	Shape           string   `yaml:"shape,omitempty"`
	State           string   `yaml:"state,omitempty"`
	BackgroundColor string   `yaml:"background_color,omitempty"`
	CornerRadius    *float64 `yaml:"corner_radius,omitempty"`
	Width           float64  `yaml:"width,omitempty"`
	Height          float64  `yaml:"height,omitempty"`

	// Container attributes.
	Spacing float64 `yaml:"spacing,omitempty"`
	Padding Insets  `yaml:"padding,omitempty"`

	Child    *Node  `yaml:"child,omitempty"`
	Children []Node `yaml:"children,omitempty"`
}

// Insets accepts either a single number applied to every edge or a mapping
// with left, top, right and bottom keys.
type Insets layout.EdgeInsets

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *Insets) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var all float64
		if err := value.Decode(&all); err != nil {
			return fmt.Errorf("line %d: padding must be a number or a mapping", value.Line)
		}
		*i = Insets(layout.EdgeInsetsAll(all))
		return nil
	}
	var edges struct {
		Left   float64 `yaml:"left"`
		Top    float64 `yaml:"top"`
		Right  float64 `yaml:"right"`
		Bottom float64 `yaml:"bottom"`
	}
	if err := value.Decode(&edges); err != nil {
		return err
	}
	*i = Insets(layout.EdgeInsets{Left: edges.Left, Top: edges.Top, Right: edges.Right, Bottom: edges.Bottom})
	return nil
}

// Parse decodes a scene document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, &errors.Error{Op: "scene.Parse", Kind: errors.KindParsing, Err: err}
	}
	if doc.Root == nil {
		return nil, &errors.Error{Op: "scene.Parse", Kind: errors.KindParsing, Err: fmt.Errorf("missing root node")}
	}
	return &doc, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.Error{Op: "scene.Load", Kind: errors.KindConfig, Path: path, Err: err}
	}
	doc, err := Parse(data)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.Op = "scene.Load"
			e.Path = path
		}
		return nil, err
	}
	return doc, nil
}
