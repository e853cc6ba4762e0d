package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/GalaxAI/unicodeplots/canvas"
	"github.com/GalaxAI/unicodeplots/plot"
)

const (
	DefaultWidth      = 60.0
	DefaultHeight     = 20.0
	DefaultResolution = 1.0
)

// Config is the YAML-backed plot configuration consumed by the CLI.
// CLI flags override file values.
type Config struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Resolution float64 `yaml:"resolution"`
	OriginX    float64 `yaml:"origin_x"`
	OriginY    float64 `yaml:"origin_y"`
	XFlip      bool    `yaml:"xflip"`
	YFlip      bool    `yaml:"yflip"`
	XScale     string  `yaml:"xscale"` // "", "log2", "log10", "ln"
	YScale     string  `yaml:"yscale"`
	AutoFit    *bool   `yaml:"auto_fit"`

	Title  string   `yaml:"title"`
	XLabel string   `yaml:"xlabel"`
	YLabel string   `yaml:"ylabel"`
	Border string   `yaml:"border"` // "single", "double", "ascii", "none"
	Colors []string `yaml:"colors"` // palette names or "#rrggbb"
	ASCII  bool     `yaml:"ascii"`  // fall back to plain ASCII rendering
}

func DefaultConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Resolution: DefaultResolution,
		Border:     string(plot.BorderSingle),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var scaleFuncs = map[string]canvas.ScaleFunc{
	"":      canvas.Identity,
	"log2":  math.Log2,
	"log10": math.Log10,
	"ln":    math.Log,
}

// ScaleByName resolves a named axis scale function.
func ScaleByName(name string) (canvas.ScaleFunc, error) {
	f, ok := scaleFuncs[name]
	if !ok {
		return nil, fmt.Errorf("unknown scale %q (supported: log2, log10, ln)", name)
	}
	return f, nil
}

// CanvasParams converts the config into viewport parameters.
func (c *Config) CanvasParams() (canvas.Params, error) {
	xscale, err := ScaleByName(c.XScale)
	if err != nil {
		return canvas.Params{}, fmt.Errorf("xscale: %w", err)
	}
	yscale, err := ScaleByName(c.YScale)
	if err != nil {
		return canvas.Params{}, fmt.Errorf("yscale: %w", err)
	}

	p := canvas.Params{
		Width:      c.Width,
		Height:     c.Height,
		Resolution: c.Resolution,
		OriginX:    c.OriginX,
		OriginY:    c.OriginY,
		XFlip:      c.XFlip,
		YFlip:      c.YFlip,
		XScale:     xscale,
		YScale:     yscale,
	}
	return p, p.Validate()
}

// ColorCycle resolves the configured color names into palette values.
// An empty list keeps the default cycle.
func (c *Config) ColorCycle() ([]canvas.Color, error) {
	if len(c.Colors) == 0 {
		return plot.DefaultColors, nil
	}
	cycle := make([]canvas.Color, 0, len(c.Colors))
	for _, name := range c.Colors {
		if len(name) > 0 && name[0] == '#' {
			col, err := canvas.ColorFromHex(name)
			if err != nil {
				return nil, err
			}
			cycle = append(cycle, col)
			continue
		}
		col, ok := canvas.ColorByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown color %q", name)
		}
		cycle = append(cycle, col)
	}
	return cycle, nil
}

// AutoFitEnabled reports the auto-fit setting, defaulting to true.
func (c *Config) AutoFitEnabled() bool {
	return c.AutoFit == nil || *c.AutoFit
}
