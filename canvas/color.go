package canvas

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an ANSI 256-color palette index used to tint a cell.
// Only the named palette values below are valid; anything else is
// coerced to ColorInvalid when written to a cell and renders without
// an escape sequence.
type Color int

// ColorInvalid marks an uncolored cell.
const ColorInvalid Color = -1

// Named palette values (ANSI 256-color indices).
const (
	ColorBlack  Color = 0
	ColorWhite  Color = 15
	ColorBlue   Color = 21
	ColorGreen  Color = 46
	ColorPurple Color = 129
	ColorRed    Color = 196
	ColorOrange Color = 208
	ColorYellow Color = 226
)

var colorNames = map[Color]string{
	ColorBlack:  "black",
	ColorWhite:  "white",
	ColorBlue:   "blue",
	ColorGreen:  "green",
	ColorPurple: "purple",
	ColorRed:    "red",
	ColorOrange: "orange",
	ColorYellow: "yellow",
}

// paletteRGB holds the sRGB value each palette index maps to in the
// standard xterm 256-color table.
var paletteRGB = map[Color]colorful.Color{
	ColorBlack:  {R: 0, G: 0, B: 0},
	ColorWhite:  {R: 1, G: 1, B: 1},
	ColorBlue:   {R: 0, G: 0, B: 1},
	ColorGreen:  {R: 0, G: 1, B: 0},
	ColorPurple: {R: 0xaf / 255.0, G: 0, B: 1},
	ColorRed:    {R: 1, G: 0, B: 0},
	ColorOrange: {R: 1, G: 0x87 / 255.0, B: 0},
	ColorYellow: {R: 1, G: 1, B: 0},
}

// Valid reports whether c is one of the named palette values.
func (c Color) Valid() bool {
	_, ok := colorNames[c]
	return ok
}

// Normalize coerces out-of-palette values to ColorInvalid.
func (c Color) Normalize() Color {
	if c.Valid() {
		return c
	}
	return ColorInvalid
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "invalid"
}

// Apply wraps text in the color's SGR escape sequence. Invalid (and any
// out-of-palette) colors return the text unchanged.
func (c Color) Apply(text string) string {
	if !c.Valid() {
		return text
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", int(c), text)
}

// ColorFromRGB returns the palette value nearest to the given sRGB
// components, by CIE Lab distance.
func ColorFromRGB(r, g, b uint8) Color {
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best := ColorInvalid
	bestDist := 0.0
	for c, rgb := range paletteRGB {
		d := target.DistanceLab(rgb)
		if best == ColorInvalid || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// ColorFromHex parses a hex color string ("#rrggbb") and returns the
// nearest palette value.
func ColorFromHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return ColorInvalid, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return ColorFromRGB(r, g, b), nil
}

// ColorByName resolves a palette color from its lowercase name.
func ColorByName(name string) (Color, bool) {
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}
	return ColorInvalid, false
}

// PaletteColors returns the named palette values in ascending index order.
func PaletteColors() []Color {
	return []Color{
		ColorBlack, ColorWhite, ColorBlue, ColorGreen,
		ColorPurple, ColorRed, ColorOrange, ColorYellow,
	}
}
