package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-drift/neumorphic/pkg/engine"
	"github.com/go-drift/neumorphic/pkg/layout"
	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/scene"
)

const (
	defaultWidth   = 480
	defaultHeight  = 640
	screenshotFile = "neumorph-demo.png"
)

// Game adapts an engine to ebiten. All calls happen on ebiten's game
// goroutine.
type Game struct {
	scene  *scene.Scene
	engine *engine.Engine

	frame         *ebiten.Image
	width, height int
}

// NewGame builds doc and prepares an engine sized to it.
func NewGame(doc *scene.Document) (*Game, error) {
	s, err := scene.Build(doc, scene.Options{})
	if err != nil {
		return nil, err
	}
	g := &Game{scene: s, width: int(s.Width), height: int(s.Height)}
	if g.width <= 0 {
		g.width = defaultWidth
	}
	if g.height <= 0 {
		g.height = defaultHeight
	}
	g.engine = engine.New(float64(g.width), float64(g.height), s.Background)
	g.engine.SetRoot(s.Root)
	return g, nil
}

// WindowSize returns the initial window size in device-independent pixels.
func (g *Game) WindowSize() (int, int) {
	return g.width, g.height
}

func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.cycle(float64(x), float64(y))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.refresh()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.screenshot()
	}
	return nil
}

// cycle advances the deepest panel under (x, y) to its next state.
func (g *Game) cycle(x, y float64) {
	panel := g.engine.PanelAt(x, y)
	if panel == nil {
		return
	}
	from := panel.State()
	panel.SetState(neumorphic.NextState(from))
	log.Printf("%s: %s -> %s (level %d)", g.label(panel), from, panel.State(), panel.Level())
}

// refresh recomputes levels from every top-level panel down.
func (g *Game) refresh() {
	for _, panel := range g.scene.Panels {
		if neumorphic.NearestPanel(layout.ParentOf(panel)) == nil {
			panel.Refresh()
		}
	}
	log.Printf("levels refreshed")
}

func (g *Game) screenshot() {
	img, err := g.engine.DrawFrame()
	if err != nil {
		log.Printf("screenshot: %v", err)
		return
	}
	if err := engine.SavePNG(screenshotFile, img); err != nil {
		log.Printf("screenshot: %v", err)
		return
	}
	log.Printf("saved %s", screenshotFile)
}

func (g *Game) label(p *neumorphic.Panel) string {
	if name := g.scene.Name(p); name != "" {
		return name
	}
	return "panel"
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil || g.engine.NeedsFrame() {
		img, err := g.engine.DrawFrame()
		if err != nil {
			log.Printf("draw: %v", err)
			return
		}
		b := img.Bounds()
		if g.frame == nil || g.frame.Bounds().Dx() != b.Dx() || g.frame.Bounds().Dy() != b.Dy() {
			if g.frame != nil {
				g.frame.Deallocate()
			}
			g.frame = ebiten.NewImage(b.Dx(), b.Dy())
		}
		g.frame.WritePixels(img.Pix)
	}
	screen.DrawImage(g.frame, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// The logical screen tracks the window; a resize relays out the scene.
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.engine.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
