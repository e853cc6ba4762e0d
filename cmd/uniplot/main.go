package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/GalaxAI/unicodeplots/canvas"
	"github.com/GalaxAI/unicodeplots/internal/config"
	"github.com/GalaxAI/unicodeplots/internal/tui"
	"github.com/GalaxAI/unicodeplots/plot"
)

var (
	configFile string
	preset     string
	width      float64
	height     float64
	resolution float64
	xflip      bool
	yflip      bool
	xscale     string
	yscale     string
	title      string
	border     string
	colors     []string
	ascii      bool
	marker     string
	noFit      bool
	fps        int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "uniplot",
		Short: "unicode braille plots in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the example gallery when no command given
			return runDemo(cmd, args)
		},
	}

	lineCmd := &cobra.Command{
		Use:   "line [file.csv]",
		Short: "plot CSV data (file or stdin) as a line chart",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLine,
	}
	lineCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	lineCmd.Flags().StringVar(&preset, "preset", "", "named plot preset (see 'uniplot presets')")
	lineCmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "canvas width (dot pixels at resolution 1)")
	lineCmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "canvas height (dot pixels at resolution 1)")
	lineCmd.Flags().Float64Var(&resolution, "resolution", config.DefaultResolution, "dot pixels per logical unit")
	lineCmd.Flags().BoolVar(&xflip, "xflip", false, "flip the x axis")
	lineCmd.Flags().BoolVar(&yflip, "yflip", false, "flip the y axis")
	lineCmd.Flags().StringVar(&xscale, "xscale", "", "x axis scale (log2, log10, ln)")
	lineCmd.Flags().StringVar(&yscale, "yscale", "", "y axis scale (log2, log10, ln)")
	lineCmd.Flags().StringVar(&title, "title", "", "plot title")
	lineCmd.Flags().StringVar(&border, "border", string(plot.BorderSingle), "border style (single, double, ascii, none)")
	lineCmd.Flags().StringSliceVar(&colors, "color", nil, "series color cycle (names or #rrggbb)")
	lineCmd.Flags().BoolVar(&ascii, "ascii", false, "render plain ASCII instead of braille glyphs")
	lineCmd.Flags().StringVar(&marker, "marker", "", "draw with a marker rune instead of braille dots")
	lineCmd.Flags().BoolVar(&noFit, "no-fit", false, "disable bounding-box auto-fit")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "show the example gallery",
		RunE:  runDemo,
	}

	liveCmd := &cobra.Command{
		Use:   "live [sin|cos|wave|damped]",
		Short: "animate a function plot",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&fps, "fps", 30, "frame rate")

	paletteCmd := &cobra.Command{
		Use:   "palette",
		Short: "list the color palette",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range canvas.PaletteColors() {
				fmt.Printf("%3d  %-7s %s\n", int(c), c, c.Apply("██████"))
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list the plot presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("%-8s %gx%g border=%s\n", name, p.Width, p.Height, p.Border)
			}
			return nil
		},
	}

	rootCmd.AddCommand(lineCmd, demoCmd, liveCmd, paletteCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runLine(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset %q (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override config values
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("resolution") {
		cfg.Resolution = resolution
	}
	if cmd.Flags().Changed("xflip") {
		cfg.XFlip = xflip
	}
	if cmd.Flags().Changed("yflip") {
		cfg.YFlip = yflip
	}
	if cmd.Flags().Changed("xscale") {
		cfg.XScale = xscale
	}
	if cmd.Flags().Changed("yscale") {
		cfg.YScale = yscale
	}
	if cmd.Flags().Changed("title") {
		cfg.Title = title
	}
	if cmd.Flags().Changed("border") {
		cfg.Border = border
	}
	if cmd.Flags().Changed("color") {
		cfg.Colors = colors
	}
	if cmd.Flags().Changed("ascii") {
		cfg.ASCII = ascii
	}
	if cmd.Flags().Changed("no-fit") {
		fit := !noFit
		cfg.AutoFit = &fit
	}

	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	columns, names, err := readColumns(in)
	if err != nil {
		return err
	}
	if len(columns) == 0 || len(columns[0]) == 0 {
		return fmt.Errorf("no data to plot")
	}

	if cfg.ASCII {
		return renderASCII(columns, cfg)
	}
	return renderBraille(columns, names, cfg)
}

// readColumns parses CSV into columns. A non-numeric first row is
// treated as a header and returned as column names.
func readColumns(r io.Reader) ([][]float64, []string, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("empty input")
	}

	var names []string
	if _, err := strconv.ParseFloat(strings.TrimSpace(records[0][0]), 64); err != nil {
		names = records[0]
		records = records[1:]
	}

	if len(records) == 0 {
		return nil, names, nil
	}
	columns := make([][]float64, len(records[0]))
	for _, rec := range records {
		for i, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("bad numeric field %q: %w", field, err)
			}
			columns[i] = append(columns[i], v)
		}
	}
	return columns, names, nil
}

func renderASCII(columns [][]float64, cfg *config.Config) error {
	// asciigraph plots y sequences only; with 2+ columns the first
	// (x) column is dropped.
	series := columns
	if len(columns) > 1 {
		series = columns[1:]
	}

	opts := []asciigraph.Option{
		asciigraph.Height(int(cfg.Height)),
		asciigraph.Width(int(cfg.Width)),
	}
	if cfg.Title != "" {
		opts = append(opts, asciigraph.Caption(cfg.Title))
	}
	fmt.Println(asciigraph.PlotMany(series, opts...))
	return nil
}

func renderBraille(columns [][]float64, names []string, cfg *config.Config) error {
	params, err := cfg.CanvasParams()
	if err != nil {
		return err
	}
	cycle, err := cfg.ColorCycle()
	if err != nil {
		return err
	}

	p := plot.NewLine().
		WithParams(params).
		WithColors(cycle...).
		WithAutoFit(cfg.AutoFitEnabled())
	if marker != "" {
		p.WithStyle(canvas.MarkerStyle([]rune(marker)[0]))
	}

	if len(columns) == 1 {
		p.AddY(columns[0])
	} else {
		for _, ys := range columns[1:] {
			if err := p.AddXY(columns[0], ys); err != nil {
				return err
			}
		}
	}

	rendered, err := p.Render()
	if err != nil {
		return err
	}

	lines := strings.Split(rendered, "\n")
	box := plot.NewBorderBox(lipgloss.Width(lines[0]), len(lines), plot.BorderStyle(cfg.Border)).
		SetTitle(cfg.Title).
		SetXLabel(cfg.XLabel).
		SetYLabel(cfg.YLabel)

	minX, maxX, minY, maxY := p.Bounds()
	box.SetRanges(minX, maxX, minY, maxY)

	if len(names) > 1 {
		for i, name := range names[1:] {
			key := cycle[i%len(cycle)].Apply("⠤⠤")
			box.AddLegendItem(key, name)
		}
	}

	fmt.Println(box.Frame(rendered))
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	head := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	params := canvas.Params{Width: 60, Height: 16, Resolution: 1}
	show := func(caption string, p *plot.LinePlot) error {
		out, err := p.Render()
		if err != nil {
			return err
		}
		fmt.Println(head.Render(caption))
		fmt.Println(out)
		fmt.Println()
		return nil
	}

	simple := plot.NewLine().WithParams(params)
	if err := simple.AddXY([]float64{1, 2, 7}, []float64{9, -6, 8}); err != nil {
		return err
	}
	if err := show("simple linear", simple); err != nil {
		return err
	}

	trig := plot.NewLine().WithParams(params).
		AddFunc(-math.Pi, 2*math.Pi, 120, math.Sin).
		AddFunc(-math.Pi, 2*math.Pi, 120, math.Cos)
	if err := show("sin + cos", trig); err != nil {
		return err
	}

	xs := make([]float64, 10)
	ys := make([]float64, 10)
	for i := range xs {
		xs[i] = float64(i + 1)
		ys[i] = math.Pow(2, xs[i])
	}

	linear := plot.NewLine().WithParams(params)
	if err := linear.AddXY(xs, ys); err != nil {
		return err
	}
	if err := show("exponential, linear scale", linear); err != nil {
		return err
	}

	logParams := params
	logParams.YScale = math.Log2
	logPlot := plot.NewLine().WithParams(logParams)
	if err := logPlot.AddXY(xs, ys); err != nil {
		return err
	}
	return show("exponential, log2 scale", logPlot)
}

func runLive(cmd *cobra.Command, args []string) error {
	name := "sin"
	if len(args) == 1 {
		name = args[0]
	}

	var f func(float64) float64
	switch name {
	case "sin":
		f = math.Sin
	case "cos":
		f = math.Cos
	case "wave":
		f = func(x float64) float64 { return math.Sin(x) + 0.5*math.Sin(3*x) }
	case "damped":
		f = func(x float64) float64 { return math.Exp(-0.1*x) * math.Sin(2*x) }
	default:
		return fmt.Errorf("unknown function: %s (available: sin, cos, wave, damped)", name)
	}

	p := tea.NewProgram(tui.NewModel(name, f, fps))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
