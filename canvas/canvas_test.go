package canvas

import (
	"math"
	"math/bits"
	"regexp"
	"strings"
	"testing"
)

var sgrRE = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripSGR(s string) string { return sgrRE.ReplaceAllString(s, "") }

// dotCount sums the lit dots across all braille cells.
func dotCount(c *Canvas) int {
	n := 0
	for _, row := range c.cells {
		for _, cl := range row {
			n += bits.OnesCount8(uint8(cl.glyph & 0xff))
		}
	}
	return n
}

// cellMask returns the 8-bit dot mask of a braille cell.
func cellMask(c *Canvas, row, col int) uint8 {
	return uint8(c.cells[row][col].glyph & 0xff)
}

func mustNew(t *testing.T, p Params) *Canvas {
	t.Helper()
	c, err := New(p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestPixelAlignment(t *testing.T) {
	tests := []struct {
		name               string
		params             Params
		wantPW, wantPH     int
		wantCols, wantRows int
	}{
		{"10x10", Params{Width: 10, Height: 10, Resolution: 1}, 10, 12, 5, 3},
		{"default", DefaultParams(), 128, 64, 64, 16},
		{"odd both", Params{Width: 7, Height: 5, Resolution: 1}, 8, 8, 4, 2},
		{"fractional res", Params{Width: 10, Height: 10, Resolution: 0.3}, 4, 4, 2, 1},
		{"high res", Params{Width: 3, Height: 3, Resolution: 2.5}, 8, 8, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustNew(t, tt.params)
			if c.PixelWidth()%2 != 0 || c.PixelHeight()%4 != 0 {
				t.Errorf("pixel dims %dx%d not aligned to 2x4", c.PixelWidth(), c.PixelHeight())
			}
			if c.PixelWidth() != tt.wantPW || c.PixelHeight() != tt.wantPH {
				t.Errorf("pixel dims = %dx%d, want %dx%d", c.PixelWidth(), c.PixelHeight(), tt.wantPW, tt.wantPH)
			}
			if c.Cols() != tt.wantCols || c.Rows() != tt.wantRows {
				t.Errorf("grid = %dx%d cells, want %dx%d", c.Cols(), c.Rows(), tt.wantCols, tt.wantRows)
			}
		})
	}
}

func TestTransformFlips(t *testing.T) {
	// One braille cell: 2x4 dot pixels over a 2x4 logical viewport.
	base := Params{Width: 2, Height: 4, Resolution: 1}

	t.Run("top origin", func(t *testing.T) {
		c := mustNew(t, base)
		c.Point(0, 0.5, ColorWhite)
		if got := cellMask(c, 0, 0); got != 0x40 {
			t.Errorf("mask = %#02x, want 0x40 (bottom-left dot)", got)
		}
	})

	t.Run("yflip", func(t *testing.T) {
		p := base
		p.YFlip = true
		c := mustNew(t, p)
		c.Point(0, 0.5, ColorWhite)
		if got := cellMask(c, 0, 0); got != 0x01 {
			t.Errorf("mask = %#02x, want 0x01 (top-left dot)", got)
		}
	})

	t.Run("xflip", func(t *testing.T) {
		p := base
		p.XFlip = true
		c := mustNew(t, p)
		c.Point(0.5, 0.5, ColorWhite)
		if got := cellMask(c, 0, 0); got != 0x80 {
			t.Errorf("mask = %#02x, want 0x80 (bottom-right dot)", got)
		}
	})
}

func TestScaleFunc(t *testing.T) {
	p := Params{Width: 3, Height: 4, Resolution: 1, XScale: math.Log2}
	c := mustNew(t, p)

	c.Point(2, 2, ColorWhite) // log2(2) = 1, inside [0,3)
	if dotCount(c) != 1 {
		t.Fatalf("dot count = %d, want 1", dotCount(c))
	}

	// log2 of a non-positive value is NaN: the dot is dropped silently.
	c.Point(-1, 2, ColorWhite)
	c.Point(0, 2, ColorWhite)
	if dotCount(c) != 1 {
		t.Errorf("NaN-scaled points changed the grid (dots = %d)", dotCount(c))
	}

	c.Line(-1, 2, 2, 2, ColorWhite)
	if dotCount(c) != 1 {
		t.Errorf("line with NaN endpoint changed the grid (dots = %d)", dotCount(c))
	}
}

func TestDiagonalLineScenario(t *testing.T) {
	c := mustNew(t, Params{Width: 10, Height: 10, Resolution: 1})
	c.Line(0, 0, 9, 9, ColorRed)

	out := c.Render()
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("render has %d lines, want 3", len(lines))
	}

	lit := 0
	for i, line := range lines {
		glyphs := []rune(stripSGR(line))
		if len(glyphs) != 5 {
			t.Fatalf("line %d has %d glyphs, want 5", i, len(glyphs))
		}
		for _, g := range glyphs {
			if g < 0x2800 || g > 0x28ff {
				t.Fatalf("glyph %U outside the Braille Patterns block", g)
			}
			if g != 0x2800 {
				lit++
			}
		}
	}
	if lit < 3 {
		t.Errorf("diagonal lit %d cells, want at least one per row", lit)
	}

	if got := strings.Count(out, "\x1b[38;5;196m"); got != lit {
		t.Errorf("%d red escapes for %d lit cells", got, lit)
	}
	if strings.Count(out, "\x1b[0m") != lit {
		t.Error("every colored cell should reset attributes")
	}
}

func TestRenderIdempotent(t *testing.T) {
	c := mustNew(t, Params{Width: 20, Height: 10, Resolution: 1})
	c.Line(2, 1, 18, 9, ColorGreen)
	c.Point(5, 5, ColorBlue)

	first := c.Render()
	second := c.Render()
	if first != second {
		t.Error("Render is not idempotent")
	}
}

func TestRenderEmpty(t *testing.T) {
	c := mustNew(t, Params{Width: 4, Height: 8, Resolution: 1})
	out := c.Render()
	want := strings.Repeat("⠀", 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("empty render has %d lines, want 2", len(lines))
	}
	for _, line := range lines {
		if line != want {
			t.Errorf("empty render line = %q, want %q", line, want)
		}
	}
}

func TestOffCanvasLinePartial(t *testing.T) {
	c := mustNew(t, Params{Width: 10, Height: 10, Resolution: 1})
	c.Line(5, 5, 50, 50, ColorYellow)

	if dotCount(c) == 0 {
		t.Error("partially off-canvas line should render its in-bounds portion")
	}
	if got := len(strings.Split(c.Render(), "\n")); got != 3 {
		t.Errorf("render has %d lines, want 3", got)
	}
}

func TestClear(t *testing.T) {
	c := mustNew(t, Params{Width: 10, Height: 10, Resolution: 1})
	fresh := c.Render()

	c.Line(0, 0, 9, 9, ColorRed)
	if c.Render() == fresh {
		t.Fatal("draw did not change the render")
	}

	c.Clear()
	if c.Render() != fresh {
		t.Error("Clear did not restore the empty state")
	}
}
