package scene

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/neumorphic/pkg/errors"
	"github.com/go-drift/neumorphic/pkg/layout"
	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/rendering"
	"github.com/go-drift/neumorphic/pkg/widgets"
)

const nested = `
width: 360
height: 360
background: "#E0E5ECFF"
root:
  type: column
  spacing: 24
  children:
    - type: panel
      name: card
      shape: "0"
      state: "1"
      background_color: "#E0E5EC"
      corner_radius: 16
      width: 200
      height: 120
      children:
        - type: padding
          padding: 24
          child:
            type: panel
            name: knob
            shape: "1"
            state: "3"
    - type: panel
      name: button
      state: "2"
`

type capture struct {
	errs []*errors.Error
}

func (c *capture) HandleError(err *errors.Error)      { c.errs = append(c.errs, err) }
func (c *capture) HandlePanic(err *errors.PanicError) {}

func TestParseAndBuild(t *testing.T) {
	doc, err := Parse([]byte(nested))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s, err := Build(doc, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s.Width != 360 || s.Height != 360 || s.Density != 1 {
		t.Errorf("canvas = %vx%v@%v", s.Width, s.Height, s.Density)
	}
	if s.Background != rendering.RGB(0xE0, 0xE5, 0xEC) {
		t.Errorf("background = %s", s.Background)
	}
	if _, ok := s.Root.(*widgets.RenderColumn); !ok {
		t.Fatalf("root = %T, want column", s.Root)
	}
	if len(s.Panels) != 3 {
		t.Fatalf("got %d panels, want 3", len(s.Panels))
	}

	card, knob, button := s.Panel("card"), s.Panel("knob"), s.Panel("button")
	if card == nil || knob == nil || button == nil {
		t.Fatal("named panels missing")
	}
	if card.State() != neumorphic.StateConcave || card.CornerRadius() != 16 {
		t.Errorf("card = %s radius %v", card.State(), card.CornerRadius())
	}
	if knob.Shape() != neumorphic.ShapeCircle || knob.State() != neumorphic.StatePressed {
		t.Errorf("knob = %s/%s", knob.Shape(), knob.State())
	}
	if card.Level() != 1 || knob.Level() != 0 || button.Level() != 1 {
		t.Errorf("levels = %d/%d/%d, want 1/0/1", card.Level(), knob.Level(), button.Level())
	}
	if s.Name(knob) != "knob" {
		t.Errorf("Name(knob) = %q", s.Name(knob))
	}
}

func TestBuild_LevelsTopDown(t *testing.T) {
	doc, err := Parse([]byte(`
root:
  type: panel
  child:
    type: center
    child:
      type: panel
      child: {type: panel, name: deep}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s, err := Build(doc, Options{Density: 3})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	deep := s.Panel("deep")
	if deep.Level() != 3 {
		t.Errorf("deep level = %d, want 3", deep.Level())
	}
	if deep.Density() != 3 {
		t.Errorf("density = %v, want 3", deep.Density())
	}
}

func TestBuild_PaddingForms(t *testing.T) {
	doc, err := Parse([]byte(`
root:
  type: column
  children:
    - {type: padding, padding: 8}
    - type: padding
      padding: {left: 1, top: 2, right: 3, bottom: 4}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s, err := Build(doc, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	kids := s.Root.(*widgets.RenderColumn).Children()
	if got := kids[0].(*widgets.RenderPadding).Padding(); got != layout.EdgeInsetsAll(8) {
		t.Errorf("scalar padding = %+v", got)
	}
	if got := kids[1].(*widgets.RenderPadding).Padding(); got != (layout.EdgeInsets{Left: 1, Top: 2, Right: 3, Bottom: 4}) {
		t.Errorf("mapping padding = %+v", got)
	}
}

func TestBuild_UnknownCodesKeepDefaults(t *testing.T) {
	h := &capture{}
	errors.SetHandler(h)
	defer errors.SetHandler(nil)

	doc, err := Parse([]byte(`
root: {type: panel, shape: "5", state: "7", background_color: "blue"}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s, err := Build(doc, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	p := s.Panels[0]
	if p.Shape() != neumorphic.ShapeRectangle || p.State() != neumorphic.StateFlat || p.BaseColor() != rendering.ColorWhite {
		t.Errorf("panel = %s/%s/%s, want defaults", p.Shape(), p.State(), p.BaseColor())
	}
	if len(h.errs) != 3 {
		t.Fatalf("reported %d problems, want 3", len(h.errs))
	}
	var pe *errors.ParseError
	if !stderrors.As(h.errs[0], &pe) || pe.Field != "root.shape" || pe.Value != "5" {
		t.Errorf("first report = %v", h.errs[0])
	}
	if h.errs[0].Kind != errors.KindParsing {
		t.Errorf("kind = %s, want parsing", h.errs[0].Kind)
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown type", "root: {type: grid}"},
		{"padding with two children", "root: {type: padding, children: [{type: panel}, {type: panel}]}"},
		{"bad background", "background: nope\nroot: {type: panel}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			_, err = Build(doc, Options{})
			var e *errors.Error
			if !stderrors.As(err, &e) || e.Kind != errors.KindParsing {
				t.Errorf("Build error = %v, want a parsing error", err)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for name, src := range map[string]string{
		"missing root":  "width: 10",
		"unknown field": "root: {type: panel, colour: red}",
		"bad padding":   "root: {type: padding, padding: [1, 2]}",
		"not yaml":      "root: [",
	} {
		if _, err := Parse([]byte(src)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte(nested), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindConfig || e.Path == "" {
		t.Errorf("missing file error = %v", err)
	}
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Error("missing file error should wrap os.ErrNotExist")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want rendering.Color
		ok   bool
	}{
		{"#E0E5EC", rendering.RGB(0xE0, 0xE5, 0xEC), true},
		{"#e0e5ec80", rendering.RGBA(0xE0, 0xE5, 0xEC, 0x80), true},
		{"#FFF", rendering.ColorWhite, true},
		{"0x80FF0000", rendering.RGBA(0xFF, 0, 0, 0x80), true},
		{" #000000 ", rendering.ColorBlack, true},
		{"red", 0, false},
		{"#12345", 0, false},
		{"#E0E5ECZZ", 0, false},
		{"0xFFF", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseColor(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseColor(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if got := FormatColor(rendering.RGBA(1, 2, 3, 4)); got != "#01020304" {
		t.Errorf("FormatColor = %q", got)
	}
}
