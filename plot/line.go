package plot

import (
	"math"

	"github.com/GalaxAI/unicodeplots/canvas"
)

// DefaultColors is the series color cycle.
var DefaultColors = []canvas.Color{
	canvas.ColorGreen,
	canvas.ColorRed,
	canvas.ColorBlue,
	canvas.ColorYellow,
}

// LinePlot draws one or more series as connected line segments on a
// braille canvas. With auto-fit enabled (the default) the data bounds
// are mapped onto the configured viewport before drawing; otherwise
// the Params are used as-is.
type LinePlot struct {
	params  canvas.Params
	style   canvas.Style
	autoFit bool
	colors  []canvas.Color
	series  []Series
}

// NewLine returns an empty line plot with default viewport, braille
// style, auto-fit enabled and the default color cycle.
func NewLine() *LinePlot {
	return &LinePlot{
		params:  canvas.DefaultParams(),
		style:   canvas.StyleBraille,
		autoFit: true,
		colors:  DefaultColors,
	}
}

// WithParams sets the viewport. The width, height and resolution fix
// the output size even when auto-fit remaps the data onto it.
func (p *LinePlot) WithParams(params canvas.Params) *LinePlot {
	p.params = params
	return p
}

// WithAutoFit toggles mapping the data bounds onto the viewport.
func (p *LinePlot) WithAutoFit(enabled bool) *LinePlot {
	p.autoFit = enabled
	return p
}

// WithColors replaces the series color cycle.
func (p *LinePlot) WithColors(colors ...canvas.Color) *LinePlot {
	if len(colors) > 0 {
		p.colors = colors
	}
	return p
}

// WithStyle selects the glyph style.
func (p *LinePlot) WithStyle(style canvas.Style) *LinePlot {
	p.style = style
	return p
}

// AddSeries appends a series to the plot.
func (p *LinePlot) AddSeries(s Series) *LinePlot {
	p.series = append(p.series, s)
	return p
}

// AddXY appends a series from paired slices.
func (p *LinePlot) AddXY(xs, ys []float64) error {
	s, err := NewXYData(xs, ys)
	if err != nil {
		return err
	}
	p.series = append(p.series, s)
	return nil
}

// AddY appends a series of y values indexed by position.
func (p *LinePlot) AddY(ys []float64) *LinePlot {
	return p.AddSeries(YData(ys))
}

// AddFunc appends f sampled at n uniform points over [min, max].
func (p *LinePlot) AddFunc(min, max float64, n int, f func(float64) float64) *LinePlot {
	return p.AddSeries(FuncSeries{Min: min, Max: max, N: n, F: f})
}

// Bounds returns the data bounds across all series in scaled space
// (after the viewport's scale functions), with degenerate ranges
// expanded by ±0.5. Non-finite samples are ignored; an empty plot
// reports the unit square.
func (p *LinePlot) Bounds() (minX, maxX, minY, maxY float64) {
	xscale := p.params.XScale
	if xscale == nil {
		xscale = canvas.Identity
	}
	yscale := p.params.YScale
	if yscale == nil {
		yscale = canvas.Identity
	}

	found := false
	for _, s := range p.series {
		for i := 0; i < s.Len(); i++ {
			x, y := s.XY(i)
			sx, sy := xscale(x), yscale(y)
			if math.IsNaN(sx) || math.IsInf(sx, 0) || math.IsNaN(sy) || math.IsInf(sy, 0) {
				continue
			}
			if !found {
				minX, maxX, minY, maxY = sx, sx, sy, sy
				found = true
				continue
			}
			minX = math.Min(minX, sx)
			maxX = math.Max(maxX, sx)
			minY = math.Min(minY, sy)
			maxY = math.Max(maxY, sy)
		}
	}
	if !found {
		return 0, 1, 0, 1
	}

	// A flat range would make the canvas transform divide by zero.
	if minX == maxX {
		minX -= 0.5
		maxX += 0.5
	}
	if minY == maxY {
		minY -= 0.5
		maxY += 0.5
	}
	return minX, maxX, minY, maxY
}

// Render draws all series and serializes the canvas.
//
// The configured Params fix the output size (pixel grid); with auto-fit
// enabled the data bounds are folded into the axis scale functions, so
// the full viewport always shows the full data range.
func (p *LinePlot) Render() (string, error) {
	params := p.params
	if p.autoFit && len(p.series) > 0 {
		minX, maxX, minY, maxY := p.Bounds()

		xscale := params.XScale
		if xscale == nil {
			xscale = canvas.Identity
		}
		yscale := params.YScale
		if yscale == nil {
			yscale = canvas.Identity
		}

		// Compose the fit into the scale functions: a scaled sample at
		// minX lands on the viewport origin, one at maxX on origin+width.
		originX, width := params.OriginX, params.Width
		originY, height := params.OriginY, params.Height
		params.XScale = func(x float64) float64 {
			return originX + width*(xscale(x)-minX)/(maxX-minX)
		}
		params.YScale = func(y float64) float64 {
			return originY + height*(yscale(y)-minY)/(maxY-minY)
		}
	}

	cv, err := canvas.NewWithStyle(params, p.style)
	if err != nil {
		return "", err
	}

	for idx, s := range p.series {
		color := p.colors[idx%len(p.colors)]
		if s.Len() == 1 {
			x, y := s.XY(0)
			cv.Point(x, y, color)
			continue
		}
		for i := 1; i < s.Len(); i++ {
			x0, y0 := s.XY(i - 1)
			x1, y1 := s.XY(i)
			cv.Line(x0, y0, x1, y1, color)
		}
	}
	return cv.Render(), nil
}
