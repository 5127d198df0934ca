package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/go-drift/neumorphic/pkg/engine"
	"github.com/go-drift/neumorphic/pkg/rendering"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Print panel geometry as JSON",
		Long: `Lay out a scene and print, as JSON, the canvas-space bounds of every
panel with its state, level, blur radius and derived colors.

Flags:
  --ops               Include the recorded draw calls
  --width N           Canvas width in pixels
  --height N          Canvas height in pixels
  --density N         Pixels per dp for shadow offset and blur`,
		Usage: "neumorph inspect <scene.yaml> [flags]",
		Run:   runInspect,
	})
}

type inspectReport struct {
	Scene    string                `json:"scene"`
	Snapshot engine.FrameSnapshot  `json:"snapshot"`
	Ops      []rendering.DisplayOp `json:"ops,omitempty"`
}

func runInspect(args []string) error {
	positional, opts, err := parseRenderFlags(args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("a scene file is required\n\nUsage: neumorph inspect <scene.yaml> [flags]")
	}

	c, err := prepareScene(positional[0], opts)
	if err != nil {
		return err
	}
	list, err := c.engine.Record()
	if err != nil {
		return err
	}

	report := inspectReport{
		Scene:    positional[0],
		Snapshot: c.engine.Snapshot(c.scene.Name),
	}
	if opts.ops {
		report.Ops = list.Ops()
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, string(data))
	return nil
}
