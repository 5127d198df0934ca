package cmd

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/neumorphic/pkg/errors"
)

const cardScene = `
width: 240
height: 200
root:
  type: center
  child:
    type: panel
    name: card
    state: "1"
    corner_radius: 12
    width: 120
    height: 80
    child:
      type: padding
      padding: 20
      child: {type: panel, name: dot, shape: "1", state: "3", width: 40, height: 40}
`

// setup runs the test in a fresh directory holding card.yaml and captures
// command output.
func setup(t *testing.T) *bytes.Buffer {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, "card.yaml"), []byte(cardScene), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func decodePNG(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestParseRenderFlags(t *testing.T) {
	pos, opts, err := parseRenderFlags([]string{"a.yaml", "--out", "x.png", "--width=320", "--density", "2", "--ops"})
	if err != nil {
		t.Fatalf("parseRenderFlags: %v", err)
	}
	if len(pos) != 1 || pos[0] != "a.yaml" {
		t.Errorf("positional = %v", pos)
	}
	if opts.out != "x.png" || opts.width != 320 || opts.density != 2 || !opts.ops {
		t.Errorf("opts = %+v", opts)
	}

	for _, bad := range [][]string{
		{"--width", "-1"},
		{"--height", "tall"},
		{"--out"},
		{"--colour", "red"},
	} {
		if _, _, err := parseRenderFlags(bad); err == nil {
			t.Errorf("parseRenderFlags(%v) should fail", bad)
		}
	}
}

func TestRender(t *testing.T) {
	out := setup(t)
	if err := Execute([]string{"render", "card.yaml"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if w, h := decodePNG(t, "card.png"); w != 240 || h != 200 {
		t.Errorf("image = %dx%d, want 240x200", w, h)
	}
	if !strings.Contains(out.String(), "2 panels") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRender_ConfigAndFlags(t *testing.T) {
	setup(t)
	config := "render:\n  width: 500\n  height: 500\n  output: configured.png\n"
	if err := os.WriteFile("neumorph.yaml", []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Execute([]string{"render", "card.yaml", "--height", "90"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	// Scene width beats the config; the height flag beats both.
	if w, h := decodePNG(t, "configured.png"); w != 240 || h != 90 {
		t.Errorf("image = %dx%d, want 240x90", w, h)
	}
}

func TestRender_MissingScene(t *testing.T) {
	setup(t)
	if err := Execute([]string{"render", "nope.yaml"}); err == nil {
		t.Error("expected an error for a missing scene")
	}
	if err := Execute([]string{"render"}); err == nil {
		t.Error("expected an error without a scene argument")
	}
}

func TestInspect(t *testing.T) {
	out := setup(t)
	if err := Execute([]string{"inspect", "card.yaml", "--ops"}); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	var report struct {
		Snapshot struct {
			Panels []struct {
				Name  string  `json:"name"`
				X     float64 `json:"x"`
				Y     float64 `json:"y"`
				State string  `json:"state"`
				Level int     `json:"level"`
			} `json:"panels"`
		} `json:"snapshot"`
		Ops []struct {
			Op string `json:"op"`
		} `json:"ops"`
	}
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	panels := report.Snapshot.Panels
	if len(panels) != 2 {
		t.Fatalf("got %d panels, want 2", len(panels))
	}
	if panels[0].Name != "card" || panels[0].X != 60 || panels[0].Y != 60 || panels[0].State != "concave" {
		t.Errorf("card = %+v", panels[0])
	}
	if panels[1].Name != "dot" || panels[1].X != 80 || panels[1].Y != 80 || panels[1].Level != 0 {
		t.Errorf("dot = %+v", panels[1])
	}
	if len(report.Ops) == 0 || report.Ops[0].Op != "clear" {
		t.Errorf("ops = %+v", report.Ops)
	}
}

func TestStates(t *testing.T) {
	out := setup(t)
	if err := Execute([]string{"states", "--shape", "1", "--out", "circles.png"}); err != nil {
		t.Fatalf("states: %v", err)
	}
	if w, h := decodePNG(t, "circles.png"); w != 196 || h != 640 {
		t.Errorf("image = %dx%d, want 196x640", w, h)
	}
	if !strings.Contains(out.String(), "4 states") {
		t.Errorf("output = %q", out.String())
	}
	if err := Execute([]string{"states", "--shape", "2"}); err == nil {
		t.Error("expected an error for an unknown shape")
	}
}

func TestExecute_HelpAndVersion(t *testing.T) {
	out := setup(t)
	if err := Execute([]string{"--version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("version output = %q", out.String())
	}

	out.Reset()
	if err := Execute(nil); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"render", "inspect", "states", "version"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help should list %s", name)
		}
	}

	if err := Execute([]string{"frobnicate"}); err == nil {
		t.Error("expected an error for an unknown command")
	}
}

func TestRunCommand_RecoversPanics(t *testing.T) {
	var log bytes.Buffer
	prev := errors.SetHandler(&errors.LogHandler{Out: &log})
	defer errors.SetHandler(prev)

	boom := &Command{Name: "boom", Run: func([]string) error { panic("scene exploded") }}
	err := runCommand(boom, nil)

	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindPanic || e.Op != "cmd.boom" {
		t.Fatalf("err = %v, want a KindPanic error for cmd.boom", err)
	}
	if got, want := log.String(), "[neumorph panic] cmd.boom: scene exploded\n"; got != want {
		t.Errorf("log = %q, want %q", got, want)
	}

	ok := &Command{Name: "ok", Run: func([]string) error { return nil }}
	if err := runCommand(ok, nil); err != nil {
		t.Errorf("runCommand(ok) = %v", err)
	}
}
