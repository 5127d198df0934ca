package cmd

import (
	"fmt"

	"github.com/go-drift/neumorphic/pkg/engine"
	"github.com/go-drift/neumorphic/pkg/layout"
	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/scene"
	"github.com/go-drift/neumorphic/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "states",
		Short: "Render every panel state side by side",
		Long: `Render one panel per state (flat, concave, convex, pressed) stacked
top to bottom, to compare how each state is drawn.

Flags:
  --shape CODE        0 for rounded rectangles (default), 1 for circles
  --out FILE          Output image path (default states.png)
  --density N         Pixels per dp for shadow offset and blur
  --background COLOR  Canvas and panel color`,
		Usage: "neumorph states [flags]",
		Run:   runStates,
	})
}

const (
	statesPanelWidth  = 160
	statesPanelHeight = 100
	statesGap         = 48
)

func runStates(args []string) error {
	_, opts, err := parseRenderFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	density := firstPositive(opts.density, cfg.Density)
	background := cfg.Background
	if opts.background != "" {
		if background, err = scene.ParseColor(opts.background); err != nil {
			return err
		}
	}
	shape := opts.shape
	if shape == "" {
		shape = "0"
	}
	if _, ok := neumorphic.ParseShape(shape); !ok {
		return fmt.Errorf("--shape must be 0 or 1, got %q", shape)
	}

	w, h := float64(statesPanelWidth), float64(statesPanelHeight)
	if shape == "1" {
		w = h
	}
	gap := statesGap * density
	width := w + 2*gap
	height := 4*h + 5*gap

	root := widgets.NewPadding(layout.EdgeInsetsSymmetric(gap, gap))
	column := widgets.NewColumn(gap)
	root.SetChild(column)
	radius := 16 * density
	for i := range neumorphic.States {
		bg := background
		column.AddChild(neumorphic.New(neumorphic.Attributes{
			Shape:           shape,
			State:           fmt.Sprint(i),
			BackgroundColor: &bg,
			CornerRadius:    &radius,
			Width:           w,
			Height:          h,
			Density:         density,
		}))
	}

	e := engine.New(width, height, background)
	e.SetRoot(root)
	img, err := e.DrawFrame()
	if err != nil {
		return err
	}
	out := opts.out
	if out == "" {
		out = "states.png"
	}
	if err := engine.SavePNG(out, img); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Rendered %d states (%s) -> %s\n", len(neumorphic.States), describeSize(e.Size()), out)
	return nil
}
