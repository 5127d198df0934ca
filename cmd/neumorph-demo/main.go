// Command neumorph-demo shows a scene in a window. Clicking a panel moves
// it to the next state: flat, concave, convex, pressed, then flat again.
//
// Usage:
//
//	neumorph-demo [scene.yaml]
//
// Keys: R recomputes every panel's level from the current tree, S saves a
// screenshot to neumorph-demo.png.
package main

import (
	_ "embed"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-drift/neumorphic/pkg/scene"
)

//go:embed default.yaml
var defaultScene []byte

func loadScene(args []string) (*scene.Document, error) {
	if len(args) > 0 {
		return scene.Load(args[0])
	}
	return scene.Parse(defaultScene)
}

func main() {
	doc, err := loadScene(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	g, err := NewGame(doc)
	if err != nil {
		log.Fatal(err)
	}

	w, h := g.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("neumorph demo - click a panel")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
