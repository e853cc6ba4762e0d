package canvas

import (
	"math"
	"strings"
)

// supersample is the fixed factor lines are rasterized at before
// downscaling. Bresenham at native dot resolution can skip cells on
// steep diagonals; walking at 8x guarantees every touched dot pixel is
// recorded.
const supersample = 8

// cell is one character position of the output grid: a glyph rune that
// dot bits are ORed into (or a marker rune) and the color of the last
// draw that touched it.
type cell struct {
	glyph rune
	color Color
}

// Canvas is the rendering surface: a rows x cols grid of dot cells plus
// the coordinate transform from logical data space to pixel space.
// It is mutated in place by draw calls and serialized by Render.
type Canvas struct {
	params Params
	style  Style

	pixelWidth  int
	pixelHeight int
	rows, cols  int

	cells [][]cell
}

// New creates a braille canvas for the given viewport.
func New(p Params) (*Canvas, error) {
	return NewWithStyle(p, StyleBraille)
}

// NewWithStyle creates a canvas using the given glyph style. The pixel
// dimensions are ceil(span * resolution) aligned up to the style's cell
// size, so the grid always covers the whole viewport.
func NewWithStyle(p Params, s Style) (*Canvas, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.XScale == nil {
		p.XScale = Identity
	}
	if p.YScale == nil {
		p.YScale = Identity
	}

	pw := alignUp(int(math.Ceil(p.Width*p.Resolution)), s.CellWidth)
	ph := alignUp(int(math.Ceil(p.Height*p.Resolution)), s.CellHeight)

	c := &Canvas{
		params:      p,
		style:       s,
		pixelWidth:  pw,
		pixelHeight: ph,
		rows:        ph / s.CellHeight,
		cols:        pw / s.CellWidth,
	}
	c.cells = make([][]cell, c.rows)
	for i := range c.cells {
		c.cells[i] = make([]cell, c.cols)
		for j := range c.cells[i] {
			c.cells[i][j] = cell{glyph: s.blank(), color: ColorInvalid}
		}
	}
	return c, nil
}

// alignUp rounds v up to the next multiple of m.
func alignUp(v, m int) int {
	if r := v % m; r != 0 {
		return v + (m - r)
	}
	return v
}

// Params returns the viewport the canvas was built from.
func (c *Canvas) Params() Params { return c.params }

// PixelWidth returns the dot-pixel width of the canvas.
func (c *Canvas) PixelWidth() int { return c.pixelWidth }

// PixelHeight returns the dot-pixel height of the canvas.
func (c *Canvas) PixelHeight() int { return c.pixelHeight }

// Rows returns the character-cell height of the output.
func (c *Canvas) Rows() int { return c.rows }

// Cols returns the character-cell width of the output.
func (c *Canvas) Cols() int { return c.cols }

// toPixelX converts a logical x coordinate to dot-pixel space.
func (c *Canvas) toPixelX(x float64) float64 {
	u := (c.params.XScale(x) - c.params.OriginX) / c.params.Width
	if c.params.XFlip {
		u = 1 - u
	}
	return u * float64(c.pixelWidth)
}

// toPixelY converts a logical y coordinate to dot-pixel space. The
// unflipped branch inverts: logical up is pixel down (top origin).
func (c *Canvas) toPixelY(y float64) float64 {
	u := (c.params.YScale(y) - c.params.OriginY) / c.params.Height
	if !c.params.YFlip {
		u = 1 - u
	}
	return u * float64(c.pixelHeight)
}

// SetPixel lights the dot at (px, py) in dot-pixel coordinates and sets
// the owning cell's color (last write wins, no blending). Coordinates
// outside the grid are dropped silently so partially off-canvas draws
// keep their in-bounds portion.
func (c *Canvas) SetPixel(px, py int, col Color) {
	// Explicit negative check: Go integer division truncates toward
	// zero, so px/CellWidth would map small negatives to column 0.
	if px < 0 || py < 0 {
		return
	}
	cx := px / c.style.CellWidth
	cy := py / c.style.CellHeight
	if cx >= c.cols || cy >= c.rows {
		return
	}

	cl := &c.cells[cy][cx]
	if c.style.marker != 0 {
		cl.glyph = c.style.marker
	} else {
		cl.glyph |= c.style.bits[py%c.style.CellHeight][px%c.style.CellWidth]
	}
	cl.color = col.Normalize()
}

// Point sets the dot under the logical coordinate (x, y).
func (c *Canvas) Point(x, y float64, col Color) {
	px := c.toPixelX(x)
	py := c.toPixelY(y)
	if !isFinite(px) || !isFinite(py) {
		return
	}
	c.SetPixel(int(math.Floor(px)), int(math.Floor(py)), col)
}

// Line draws a straight segment between two logical coordinates,
// lighting every dot cell the ideal segment passes through. Endpoints
// whose transform is NaN or Inf (a scale function evaluated outside its
// domain) drop the segment silently.
func (c *Canvas) Line(x1, y1, x2, y2 float64, col Color) {
	px1 := c.toPixelX(x1) * supersample
	py1 := c.toPixelY(y1) * supersample
	px2 := c.toPixelX(x2) * supersample
	py2 := c.toPixelY(y2) * supersample
	if !isFinite(px1) || !isFinite(py1) || !isFinite(px2) || !isFinite(py2) {
		return
	}

	c.drawSegment(
		int(math.Round(px1)), int(math.Round(py1)),
		int(math.Round(px2)), int(math.Round(py2)),
		col,
	)
}

type dot struct{ x, y int }

// drawSegment walks Bresenham over supersampled coordinates, collects
// the distinct downscaled dot pixels, and lights each once. A
// zero-length segment lights exactly one dot.
func (c *Canvas) drawSegment(x0, y0, x1, y1 int, col Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	seen := make(map[dot]struct{})
	for {
		seen[dot{floorDiv(x0, supersample), floorDiv(y0, supersample)}] = struct{}{}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	for d := range seen {
		c.SetPixel(d.x, d.y, col)
	}
}

// Clear resets every cell to the empty glyph with no color.
func (c *Canvas) Clear() {
	blank := cell{glyph: c.style.blank(), color: ColorInvalid}
	for i := range c.cells {
		for j := range c.cells[i] {
			c.cells[i][j] = blank
		}
	}
}

// Render serializes the grid: rows joined by newlines, each cell's
// glyph wrapped in its color escape. Pure and idempotent.
func (c *Canvas) Render() string {
	var b strings.Builder
	b.Grow(c.rows * (c.cols*3 + 1))
	for i, row := range c.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cl := range row {
			b.WriteString(cl.color.Apply(string(cl.glyph)))
		}
	}
	return b.String()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// floorDiv divides rounding toward negative infinity, matching the
// downscale a supersampled coordinate needs for negative (off-canvas)
// positions.
func floorDiv(v, m int) int {
	q := v / m
	if v%m != 0 && (v < 0) != (m < 0) {
		q--
	}
	return q
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
