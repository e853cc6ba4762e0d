package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the live viewer.
type Theme struct {
	Name   string
	Header lipgloss.Color
	Border lipgloss.Color
	Label  lipgloss.Color
	Value  lipgloss.Color
	Help   lipgloss.Color
	Stroke string // plot stroke, matched to the nearest palette color
}

var themes = []Theme{
	{
		Name:   "default",
		Header: lipgloss.Color("86"),
		Border: lipgloss.Color("240"),
		Label:  lipgloss.Color("245"),
		Value:  lipgloss.Color("252"),
		Help:   lipgloss.Color("240"),
		Stroke: "#00ff00",
	},
	{
		Name:   "cyberpunk",
		Header: lipgloss.Color("#00ffff"),
		Border: lipgloss.Color("#444466"),
		Label:  lipgloss.Color("#888899"),
		Value:  lipgloss.Color("#00ccff"),
		Help:   lipgloss.Color("#666688"),
		Stroke: "#ff00ff",
	},
	{
		Name:   "retro",
		Header: lipgloss.Color("#00ff00"),
		Border: lipgloss.Color("#005500"),
		Label:  lipgloss.Color("#00cc00"),
		Value:  lipgloss.Color("#88ff88"),
		Help:   lipgloss.Color("#005500"),
		Stroke: "#00ff00",
	},
	{
		Name:   "ocean",
		Header: lipgloss.Color("#00ccff"),
		Border: lipgloss.Color("#004466"),
		Label:  lipgloss.Color("#5599bb"),
		Value:  lipgloss.Color("#ccffff"),
		Help:   lipgloss.Color("#336677"),
		Stroke: "#0000ff",
	},
}

// ThemeNames lists the available theme names in cycle order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
