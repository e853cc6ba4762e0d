package canvas

import (
	"reflect"
	"strings"
	"testing"
)

func TestBrailleBitTable(t *testing.T) {
	tests := []struct {
		px, py int
		want   uint8
	}{
		{0, 0, 0x01},
		{0, 1, 0x02},
		{0, 2, 0x04},
		{0, 3, 0x40},
		{1, 0, 0x08},
		{1, 1, 0x10},
		{1, 2, 0x20},
		{1, 3, 0x80},
	}

	for _, tt := range tests {
		c := mustNew(t, Params{Width: 2, Height: 4, Resolution: 1})
		c.SetPixel(tt.px, tt.py, ColorWhite)
		if got := cellMask(c, 0, 0); got != tt.want {
			t.Errorf("SetPixel(%d,%d) mask = %#02x, want %#02x", tt.px, tt.py, got, tt.want)
		}
	}
}

func TestSetPixelOutOfBoundsIsNoop(t *testing.T) {
	c := mustNew(t, Params{Width: 10, Height: 10, Resolution: 1})
	c.SetPixel(3, 3, ColorGreen)
	before := make([][]cell, len(c.cells))
	for i, row := range c.cells {
		before[i] = append([]cell(nil), row...)
	}

	outside := [][2]int{
		{-1, 0}, {0, -1}, {-5, -5},
		{c.PixelWidth(), 0}, {0, c.PixelHeight()},
		{c.PixelWidth() + 100, c.PixelHeight() + 100},
	}
	for _, p := range outside {
		c.SetPixel(p[0], p[1], ColorRed)
	}

	if !reflect.DeepEqual(c.cells, before) {
		t.Error("out-of-bounds SetPixel mutated the grid")
	}
}

func TestSetPixelAccumulatesDotsOverwritesColor(t *testing.T) {
	c := mustNew(t, Params{Width: 2, Height: 4, Resolution: 1})

	c.SetPixel(0, 0, ColorGreen)
	c.SetPixel(1, 3, ColorRed)

	if got := cellMask(c, 0, 0); got != 0x01|0x80 {
		t.Errorf("mask = %#02x, want OR of both dots", got)
	}
	if got := c.cells[0][0].color; got != ColorRed {
		t.Errorf("color = %v, want the second writer's color", got)
	}
}

func TestSetPixelCoercesInvalidColor(t *testing.T) {
	c := mustNew(t, Params{Width: 2, Height: 4, Resolution: 1})
	c.SetPixel(0, 0, Color(42))

	if got := c.cells[0][0].color; got != ColorInvalid {
		t.Errorf("color = %v, want invalid sentinel", got)
	}
	if !strings.Contains(c.Render(), "⠁") {
		t.Error("dot should render uncolored, not vanish")
	}
	if strings.Contains(c.Render(), "\x1b[") {
		t.Error("invalid color must not emit an escape sequence")
	}
}

func TestZeroLengthLine(t *testing.T) {
	c := mustNew(t, Params{Width: 10, Height: 10, Resolution: 1})
	c.Line(4, 5, 4, 5, ColorBlue)

	if got := dotCount(c); got != 1 {
		t.Errorf("zero-length line lit %d dots, want exactly 1", got)
	}
}

func TestOverlappingLinesUnionMasksLastColor(t *testing.T) {
	p := Params{Width: 10, Height: 10, Resolution: 1}

	first := mustNew(t, p)
	first.Line(0, 0, 9, 9, ColorGreen)

	second := mustNew(t, p)
	second.Line(0, 9, 9, 0, ColorRed)

	both := mustNew(t, p)
	both.Line(0, 0, 9, 9, ColorGreen)
	both.Line(0, 9, 9, 0, ColorRed)

	shared := 0
	for row := 0; row < both.Rows(); row++ {
		for col := 0; col < both.Cols(); col++ {
			m1 := cellMask(first, row, col)
			m2 := cellMask(second, row, col)
			if got := cellMask(both, row, col); got != m1|m2 {
				t.Errorf("cell (%d,%d) mask = %#02x, want %#02x", row, col, got, m1|m2)
			}

			want := ColorInvalid
			switch {
			case m2 != 0:
				want = ColorRed
			case m1 != 0:
				want = ColorGreen
			}
			if got := both.cells[row][col].color; got != want {
				t.Errorf("cell (%d,%d) color = %v, want %v", row, col, got, want)
			}
			if m1 != 0 && m2 != 0 {
				shared++
			}
		}
	}
	if shared == 0 {
		t.Fatal("crossing diagonals should share at least one cell")
	}
}

func TestMarkerStyle(t *testing.T) {
	p := Params{Width: 4, Height: 4, Resolution: 1}
	c, err := NewWithStyle(p, MarkerStyle('*'))
	if err != nil {
		t.Fatalf("NewWithStyle: %v", err)
	}

	if c.Rows() != 4 || c.Cols() != 4 {
		t.Fatalf("marker grid = %dx%d cells, want 4x4", c.Cols(), c.Rows())
	}

	c.Point(0.5, 0.5, ColorYellow)
	out := c.Render()
	if !strings.Contains(out, "*") {
		t.Error("marker point did not render")
	}
	if !strings.Contains(out, "\x1b[38;5;226m*\x1b[0m") {
		t.Error("marker should carry its color escape")
	}
}

func TestMarkerStyleDefaultRune(t *testing.T) {
	c, err := NewWithStyle(Params{Width: 2, Height: 2, Resolution: 1}, MarkerStyle(0))
	if err != nil {
		t.Fatalf("NewWithStyle: %v", err)
	}
	c.Point(0.5, 0.5, ColorInvalid)
	if !strings.ContainsRune(c.Render(), DefaultMarker) {
		t.Error("zero marker should fall back to the default marker rune")
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		v, m, want int
	}{
		{0, 8, 0},
		{7, 8, 0},
		{8, 8, 1},
		{-1, 8, -1},
		{-8, 8, -1},
		{-9, 8, -2},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.v, tt.m); got != tt.want {
			t.Errorf("floorDiv(%d,%d) = %d, want %d", tt.v, tt.m, got, tt.want)
		}
	}
}
