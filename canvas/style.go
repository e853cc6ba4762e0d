package canvas

// Braille Patterns: 2x4 dots per cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Codepoint = brailleBase + dot mask. The mapping is fixed by the
// Unicode Braille Patterns block; any other ordering renders wrong
// glyphs without failing.
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase rune = 0x2800

// DefaultMarker is the marker rune used when MarkerStyle is given zero.
const DefaultMarker rune = '•'

// Style describes how dot pixels map onto character cells. It is
// selected once at canvas construction.
type Style struct {
	CellWidth  int // dot pixels per cell, horizontal
	CellHeight int // dot pixels per cell, vertical

	// bits indexes [y][x] within the cell for dot styles. nil for
	// marker styles.
	bits *[4][2]rune

	// marker, when non-zero, replaces the whole cell glyph instead of
	// accumulating dots.
	marker rune
}

// StyleBraille packs 2x4 dot pixels per cell using the Unicode Braille
// Patterns block. This is the default style.
var StyleBraille = Style{CellWidth: 2, CellHeight: 4, bits: &brailleBits}

// MarkerStyle renders one dot pixel per cell using the given rune.
func MarkerStyle(marker rune) Style {
	if marker == 0 {
		marker = DefaultMarker
	}
	return Style{CellWidth: 1, CellHeight: 1, marker: marker}
}

// blank returns the glyph of an untouched cell.
func (s Style) blank() rune {
	if s.marker != 0 {
		return ' '
	}
	return brailleBase
}
