package cmd

import (
	"fmt"

	"github.com/go-drift/neumorphic/pkg/engine"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a scene to PNG",
		Long: `Render a YAML scene file to a PNG image.

The canvas size, density and background come from the flags, then the scene
file, then neumorph.yaml, then the built-in defaults (400x300 at density 1).
The image is written to --out, the configured output, or <scene>.png.

Flags:
  --out FILE          Output image path
  --width N           Canvas width in pixels
  --height N          Canvas height in pixels
  --density N         Pixels per dp for shadow offset and blur
  --background COLOR  Canvas color (#RRGGBB, #RRGGBBAA or 0xAARRGGBB)`,
		Usage: "neumorph render <scene.yaml> [flags]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	positional, opts, err := parseRenderFlags(args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("a scene file is required\n\nUsage: neumorph render <scene.yaml> [flags]")
	}
	path := positional[0]

	c, err := prepareScene(path, opts)
	if err != nil {
		return err
	}
	img, err := c.engine.DrawFrame()
	if err != nil {
		return err
	}

	out := opts.out
	if out == "" {
		out = c.cfg.OutputFor(path)
	}
	if err := engine.SavePNG(out, img); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Rendered %s (%s, %d panels) -> %s\n",
		path, describeSize(c.engine.Size()), len(c.scene.Panels), out)
	return nil
}
