package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	nerrors "github.com/go-drift/neumorphic/pkg/errors"
	"github.com/go-drift/neumorphic/pkg/rendering"
	"github.com/go-drift/neumorphic/pkg/scene"
)

// FileName is the optional configuration file looked up by the CLI.
const FileName = "neumorph.yaml"

// Defaults applied by Resolve.
const (
	DefaultWidth   = 400
	DefaultHeight  = 300
	DefaultDensity = 1
)

// Config represents the optional neumorph.yaml configuration.
type Config struct {
	// MinVersion is the oldest CLI version, in semver form, that may
	// render this project.
	MinVersion string       `yaml:"min_version,omitempty"`
	Render     RenderConfig `yaml:"render"`
}

// RenderConfig contains canvas settings.
type RenderConfig struct {
	Width      float64 `yaml:"width,omitempty"`
	Height     float64 `yaml:"height,omitempty"`
	Density    float64 `yaml:"density,omitempty"`
	Background string  `yaml:"background,omitempty"`
	Output     string  `yaml:"output,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	Width      float64
	Height     float64
	Density    float64
	Background rendering.Color
	// Output is the configured output file, or "" to derive one per scene.
	Output string
}

// LoadOptional reads neumorph.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, &nerrors.Error{Op: "config.LoadOptional", Kind: nerrors.KindConfig, Path: path, Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &nerrors.Error{Op: "config.LoadOptional", Kind: nerrors.KindConfig, Path: path, Err: err}
	}
	return &cfg, nil
}

// Resolve loads neumorph.yaml (if present) and resolves defaults.
// version is the running CLI version, checked against min_version.
func Resolve(dir, version string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	if err := checkVersion(cfg.MinVersion, version); err != nil {
		return nil, &nerrors.Error{Op: "config.Resolve", Kind: nerrors.KindConfig, Path: filepath.Join(dir, FileName), Err: err}
	}

	r := &Resolved{
		Root:       dir,
		Width:      positiveOr(cfg.Render.Width, DefaultWidth),
		Height:     positiveOr(cfg.Render.Height, DefaultHeight),
		Density:    positiveOr(cfg.Render.Density, DefaultDensity),
		Background: scene.DefaultBackground,
		Output:     strings.TrimSpace(cfg.Render.Output),
	}
	if bg := strings.TrimSpace(cfg.Render.Background); bg != "" {
		c, err := scene.ParseColor(bg)
		if err != nil {
			return nil, &nerrors.Error{Op: "config.Resolve", Kind: nerrors.KindConfig, Path: filepath.Join(dir, FileName), Err: err}
		}
		r.Background = c
	}
	return r, nil
}

// OutputFor returns the image path for scenePath: the configured output
// when set, otherwise the scene file name with a .png extension.
func (r *Resolved) OutputFor(scenePath string) string {
	if r.Output != "" {
		return r.Output
	}
	base := filepath.Base(scenePath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
}

// FindProjectRoot walks up from the current directory to find neumorph.yaml.
// Without one it returns the current directory.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

func checkVersion(minVersion, version string) error {
	minVersion = strings.TrimSpace(minVersion)
	if minVersion == "" {
		return nil
	}
	if !semver.IsValid(minVersion) {
		return fmt.Errorf("min_version %q is not a semantic version (e.g. v0.1.0)", minVersion)
	}
	if !semver.IsValid(version) {
		return nil
	}
	if semver.Compare(version, minVersion) < 0 {
		return fmt.Errorf("project requires neumorph %s or newer, this is %s", minVersion, version)
	}
	return nil
}

func positiveOr(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
