package engine

import (
	"bytes"
	stderrors "errors"
	"image/png"
	"testing"

	"github.com/go-drift/neumorphic/pkg/errors"
	"github.com/go-drift/neumorphic/pkg/layout"
	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/rendering"
	"github.com/go-drift/neumorphic/pkg/widgets"
)

var background = rendering.RGB(0xE0, 0xE5, 0xEC)

// centered returns an engine drawing a single 100x100 panel in the middle
// of a 300x300 canvas, so the panel spans (100,100)-(200,200).
func centered(state neumorphic.State) (*Engine, *neumorphic.Panel) {
	e := New(300, 300, background)
	center := widgets.NewCenter()
	bg := background
	panel := neumorphic.New(neumorphic.Attributes{Width: 100, Height: 100, BackgroundColor: &bg})
	center.SetChild(panel)
	panel.SetState(state)
	e.SetRoot(center)
	return e, panel
}

func TestDrawFrame_RaisedShadows(t *testing.T) {
	e, _ := centered(neumorphic.StateFlat)
	img, err := e.DrawFrame()
	if err != nil {
		t.Fatalf("DrawFrame: %v", err)
	}
	if got := img.RGBAAt(150, 150); got.R != 0xE0 || got.G != 0xE5 || got.B != 0xEC {
		t.Errorf("panel center = %v, want base color", got)
	}
	if got := img.RGBAAt(2, 2); got.R != 0xE0 {
		t.Errorf("canvas corner = %v, want background", got)
	}
	if got := img.RGBAAt(95, 95).R; got <= 0xE0 {
		t.Errorf("light side red = %d, want brighter than background", got)
	}
	if got := img.RGBAAt(205, 205).R; got >= 0xE0 {
		t.Errorf("dark side red = %d, want darker than background", got)
	}
}

func TestDrawFrame_PressedGlowsInside(t *testing.T) {
	e, _ := centered(neumorphic.StatePressed)
	img, err := e.DrawFrame()
	if err != nil {
		t.Fatalf("DrawFrame: %v", err)
	}
	if got := img.RGBAAt(102, 102).R; got >= 0xE0 {
		t.Errorf("inner top-left red = %d, want darker than base", got)
	}
	if got := img.RGBAAt(197, 197).R; got <= 0xE0 {
		t.Errorf("inner bottom-right red = %d, want brighter than base", got)
	}
	if got := img.RGBAAt(95, 95).R; got != 0xE0 {
		t.Errorf("outside red = %d, want untouched background", got)
	}
}

func TestDrawFrame_PressedClipsChildren(t *testing.T) {
	e, panel := centered(neumorphic.StatePressed)
	bg := background
	panel.AddChild(neumorphic.New(neumorphic.Attributes{Width: 100, Height: 100, BackgroundColor: &bg}))
	img, err := e.DrawFrame()
	if err != nil {
		t.Fatalf("DrawFrame: %v", err)
	}
	// A raised child would cast shadows past its parent on both sides.
	for _, pt := range [][2]int{{95, 95}, {205, 205}, {150, 95}, {205, 150}} {
		if got := img.RGBAAt(pt[0], pt[1]); got.R != 0xE0 || got.G != 0xE5 || got.B != 0xEC {
			t.Errorf("pixel %v = %v, want background outside the pressed contour", pt, got)
		}
	}
}

func TestRecord_Ops(t *testing.T) {
	e, _ := centered(neumorphic.StateConvex)
	list, err := e.Record()
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	ops := list.Ops()
	if ops[0].Op != "clear" || ops[0].Params["color"] != background.String() {
		t.Errorf("first op = %+v, want clear to background", ops[0])
	}
	var gradients int
	for _, op := range ops {
		if _, ok := op.Params["gradient"]; ok {
			gradients++
		}
	}
	if gradients != 1 {
		t.Errorf("got %d gradient fills, want 1", gradients)
	}
	if list.Size() != (rendering.Size{Width: 300, Height: 300}) {
		t.Errorf("list size = %+v", list.Size())
	}
}

func TestFrameScheduling(t *testing.T) {
	e, panel := centered(neumorphic.StateFlat)
	if !e.NeedsFrame() {
		t.Fatal("new engine should need a frame")
	}
	if _, err := e.DrawFrame(); err != nil {
		t.Fatal(err)
	}
	if e.NeedsFrame() {
		t.Error("no frame should be pending after drawing")
	}
	panel.SetState(neumorphic.NextState(panel.State()))
	if !e.NeedsFrame() {
		t.Error("state change should schedule a frame")
	}
	if e.Frames() != 1 {
		t.Errorf("frames = %d, want 1", e.Frames())
	}
}

func TestResize_Relayout(t *testing.T) {
	e, panel := centered(neumorphic.StateFlat)
	if _, err := e.DrawFrame(); err != nil {
		t.Fatal(err)
	}
	e.Resize(500, 200)
	if !e.NeedsFrame() {
		t.Error("resize should schedule a frame")
	}
	img, err := e.DrawFrame()
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 500 || b.Dy() != 200 {
		t.Errorf("image bounds = %v", b)
	}
	if got := layout.ChildOffset(panel); got != (rendering.Offset{X: 200, Y: 50}) {
		t.Errorf("panel offset = %+v, want (200,50)", got)
	}
}

func TestHitTest(t *testing.T) {
	e, panel := centered(neumorphic.StateFlat)
	if _, err := e.DrawFrame(); err != nil {
		t.Fatal(err)
	}
	if got := e.PanelAt(150, 150); got != panel {
		t.Errorf("PanelAt(center) = %v, want panel", got)
	}
	if got := e.PanelAt(10, 10); got != nil {
		t.Errorf("PanelAt(corner) = %v, want nil", got)
	}
	if New(10, 10, background).HitTest(1, 1) != nil {
		t.Error("engine without root should hit nothing")
	}
}

func TestSnapshot(t *testing.T) {
	e := New(300, 300, background)
	outer := neumorphic.New(neumorphic.Attributes{Width: 200, Height: 200})
	e.SetRoot(outer)
	pad := widgets.NewPadding(layout.EdgeInsetsAll(20))
	outer.AddChild(pad)
	inner := neumorphic.New(neumorphic.Attributes{Shape: "1", Width: 50, Height: 50})
	pad.SetChild(inner)
	if _, err := e.DrawFrame(); err != nil {
		t.Fatal(err)
	}

	snap := e.Snapshot(func(p *neumorphic.Panel) string {
		if p == inner {
			return "knob"
		}
		return ""
	})
	if snap.FrameID != 1 || len(snap.Panels) != 2 {
		t.Fatalf("snapshot = %+v", snap)
	}
	got := snap.Panels[1]
	if got.Name != "knob" || got.X != 20 || got.Y != 20 || got.Width != 50 {
		t.Errorf("inner snapshot = %+v", got)
	}
	if got.Level != 2 || got.Shape != "circle" || got.BlurRadius != 24 {
		t.Errorf("inner style = %+v", got)
	}
}

type panicky struct {
	layout.RenderBoxBase
}

func (p *panicky) PerformLayout()                 { p.SetSize(rendering.Size{Width: 1, Height: 1}) }
func (p *panicky) Paint(ctx *layout.PaintContext) { panic("paint failed") }
func (p *panicky) HitTest(rendering.Offset, *layout.HitTestResult) bool {
	return false
}

type silent struct{ panics int }

func (s *silent) HandleError(*errors.Error)      {}
func (s *silent) HandlePanic(*errors.PanicError) { s.panics++ }

func TestDrawFrame_RecoversPanics(t *testing.T) {
	h := &silent{}
	errors.SetHandler(h)
	defer errors.SetHandler(nil)

	e := New(10, 10, background)
	root := &panicky{}
	root.SetSelf(root)
	e.SetRoot(root)

	_, err := e.DrawFrame()
	var de *errors.Error
	if !stderrors.As(err, &de) || de.Kind != errors.KindPanic || de.Op != "engine.DrawFrame" {
		t.Fatalf("err = %v, want a panic error", err)
	}
	var pe *errors.PanicError
	if !stderrors.As(err, &pe) || pe.Value != "paint failed" {
		t.Errorf("err = %v, want it to carry the panic value", err)
	}
	if h.panics != 1 {
		t.Errorf("reported %d panics, want 1", h.panics)
	}

	// The engine stays usable after a failed frame.
	e.SetRoot(nil)
	if _, err := e.DrawFrame(); err != nil {
		t.Errorf("frame after recovery: %v", err)
	}
}

func TestWritePNG(t *testing.T) {
	e, _ := centered(neumorphic.StateConcave)
	img, err := e.DrawFrame()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}
