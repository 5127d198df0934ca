package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/neumorphic/cmd/neumorph/internal/config"
	"github.com/go-drift/neumorphic/pkg/engine"
	"github.com/go-drift/neumorphic/pkg/rendering"
	"github.com/go-drift/neumorphic/pkg/scene"
)

// renderOptions are the canvas flags shared by the rendering commands.
// Zero values defer to the scene file, then to neumorph.yaml.
type renderOptions struct {
	out        string
	width      float64
	height     float64
	density    float64
	background string
	shape      string
	ops        bool
}

// parseRenderFlags splits args into positional arguments and options.
// Value flags accept both "--flag value" and "--flag=value".
func parseRenderFlags(args []string) ([]string, renderOptions, error) {
	var opts renderOptions
	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			positional = append(positional, arg)
			continue
		}
		name, value, hasValue := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		if name == "ops" {
			opts.ops = true
			continue
		}
		if !hasValue {
			if i+1 >= len(args) {
				return nil, opts, fmt.Errorf("--%s requires a value", name)
			}
			value = args[i+1]
			i++
		}

		var err error
		switch name {
		case "out", "o":
			opts.out = value
		case "width":
			opts.width, err = parsePositive(name, value)
		case "height":
			opts.height, err = parsePositive(name, value)
		case "density":
			opts.density, err = parsePositive(name, value)
		case "background":
			opts.background = value
		case "shape":
			opts.shape = value
		default:
			return nil, opts, fmt.Errorf("unknown flag --%s", name)
		}
		if err != nil {
			return nil, opts, err
		}
	}
	return positional, opts, nil
}

func parsePositive(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("--%s must be a positive number, got %q", name, value)
	}
	return v, nil
}

// canvas is a scene resolved against flags and configuration, ready to draw.
type canvas struct {
	cfg    *config.Resolved
	scene  *scene.Scene
	engine *engine.Engine
}

func loadConfig() (*config.Resolved, error) {
	root, err := config.FindProjectRoot()
	if err != nil {
		return nil, err
	}
	return config.Resolve(root, Version)
}

// prepareScene loads the scene at path and sizes an engine for it.
// Flags win over the scene file, which wins over neumorph.yaml.
func prepareScene(path string, opts renderOptions) (*canvas, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	doc, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	density := firstPositive(opts.density, doc.Density, cfg.Density)
	s, err := scene.Build(doc, scene.Options{Density: density})
	if err != nil {
		return nil, err
	}

	width := firstPositive(opts.width, doc.Width, cfg.Width)
	height := firstPositive(opts.height, doc.Height, cfg.Height)
	background := cfg.Background
	if doc.Background != "" {
		background = s.Background
	}
	if opts.background != "" {
		if background, err = scene.ParseColor(opts.background); err != nil {
			return nil, err
		}
	}

	e := engine.New(width, height, background)
	e.SetRoot(s.Root)
	return &canvas{cfg: cfg, scene: s, engine: e}, nil
}

func firstPositive(values ...float64) float64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func describeSize(size rendering.Size) string {
	return fmt.Sprintf("%dx%d", int(size.Width), int(size.Height))
}
