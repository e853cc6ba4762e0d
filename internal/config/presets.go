package config

import "sort"

// Presets are named ready-made plot configurations selectable from the
// CLI. A preset replaces the built-in defaults; explicit flags still
// override individual fields.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"compact": {
		Width: 40, Height: 12, Resolution: 1,
		Border: "none",
	},
	"wide": {
		Width: 120, Height: 24, Resolution: 1,
		Border: "single",
	},
	"log": {
		Width: 60, Height: 20, Resolution: 1,
		YScale: "log10", Border: "single",
	},
	"mono": {
		Width: 60, Height: 20, Resolution: 1,
		Border: "ascii", Colors: []string{"white"},
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	copied := *cfg
	copied.Colors = append([]string(nil), cfg.Colors...)
	return &copied
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
