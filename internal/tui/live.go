package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GalaxAI/unicodeplots/canvas"
	"github.com/GalaxAI/unicodeplots/plot"
)

const (
	// Fixed output geometry: 96x32 dot pixels, 48x8 cells.
	viewWidth  = 96
	viewHeight = 32

	// Visible x window, in function-domain units.
	window = 4 * math.Pi

	defaultFPS     = 30
	defaultSamples = 240
)

type TickMsg time.Time

// Model animates a function plot: each tick advances the visible
// window and redraws it on a fresh canvas.
type Model struct {
	name    string
	f       func(float64) float64
	fps     int
	samples int

	t        float64
	speed    float64
	running  bool
	themeIdx int
}

// NewModel builds a live viewer for the named function.
func NewModel(name string, f func(float64) float64, fps int) Model {
	if fps <= 0 {
		fps = defaultFPS
	}
	return Model{
		name:    name,
		f:       f,
		fps:     fps,
		samples: defaultSamples,
		speed:   1.0,
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.t = 0
			m.speed = 1.0
		case "t":
			m.themeIdx = (m.themeIdx + 1) % len(themes)
		case "+", "=":
			m.speed = math.Min(8, m.speed*1.25)
		case "-", "_":
			m.speed = math.Max(0.125, m.speed/1.25)
		}
	case TickMsg:
		if m.running {
			m.t += m.speed / float64(m.fps)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	theme := themes[m.themeIdx]

	stroke, err := canvas.ColorFromHex(theme.Stroke)
	if err != nil {
		stroke = canvas.ColorGreen
	}

	p := plot.NewLine().
		WithParams(canvas.Params{Width: viewWidth, Height: viewHeight, Resolution: 1}).
		WithColors(stroke).
		AddFunc(m.t, m.t+window, m.samples, m.f)

	rendered, err := p.Render()
	if err != nil {
		return "render error: " + err.Error()
	}

	canvasView := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(rendered)

	headerStyle := lipgloss.NewStyle().Foreground(theme.Header).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(theme.Label).Width(8)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Value)
	helpStyle := lipgloss.NewStyle().Foreground(theme.Help)

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.2fx", m.speed)) + "\n")
	s.WriteString(labelStyle.Render("FPS") + valueStyle.Render(fmt.Sprintf("%d", m.fps)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(theme.Name) + "\n")
	s.WriteString(helpStyle.Render("\nSP:Pause R:Reset Q:Quit\nT:Theme +/-:Speed"))

	statsView := lipgloss.NewStyle().Padding(1, 2).Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
