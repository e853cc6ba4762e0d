package plot

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BorderStyle selects the character set a BorderBox draws with.
type BorderStyle string

const (
	BorderSingle BorderStyle = "single"
	BorderDouble BorderStyle = "double"
	BorderASCII  BorderStyle = "ascii"
	BorderNone   BorderStyle = "none"
)

type borderChars struct {
	horizontal  string
	vertical    string
	topLeft     string
	topRight    string
	bottomLeft  string
	bottomRight string
}

func charsFor(style BorderStyle) borderChars {
	switch style {
	case BorderDouble:
		return borderChars{"═", "║", "╔", "╗", "╚", "╝"}
	case BorderASCII:
		return borderChars{"-", "|", "+", "+", "+", "+"}
	case BorderSingle:
		return borderChars{"─", "│", "┌", "┐", "└", "┘"}
	default:
		return borderChars{" ", " ", " ", " ", " ", " "}
	}
}

// LegendEntry is one key/description pair below the plot.
type LegendEntry struct {
	Key, Description string
}

// BorderBox frames rendered plot text with a border, centered title,
// y-value gutter on the left, x-range footer and optional legend.
type BorderBox struct {
	width  int // plot area width in character cells
	height int // plot area height in character cells

	title  string
	xLabel string
	yLabel string

	xRange, yRange [2]float64
	hasRanges      bool

	legend []LegendEntry
	chars  borderChars
}

// NewBorderBox creates a frame for a width x height cell plot area.
func NewBorderBox(width, height int, style BorderStyle) *BorderBox {
	return &BorderBox{width: width, height: height, chars: charsFor(style)}
}

// SetBorderStyle switches the border character set.
func (b *BorderBox) SetBorderStyle(style BorderStyle) *BorderBox {
	b.chars = charsFor(style)
	return b
}

// SetTitle sets the centered title in the top border.
func (b *BorderBox) SetTitle(title string) *BorderBox {
	b.title = title
	return b
}

// SetXLabel sets the x-axis label under the footer.
func (b *BorderBox) SetXLabel(label string) *BorderBox {
	b.xLabel = label
	return b
}

// SetYLabel sets the y-axis label beside the middle row.
func (b *BorderBox) SetYLabel(label string) *BorderBox {
	b.yLabel = label
	return b
}

// SetRanges records the data ranges shown in the gutters.
func (b *BorderBox) SetRanges(xMin, xMax, yMin, yMax float64) *BorderBox {
	b.xRange = [2]float64{xMin, xMax}
	b.yRange = [2]float64{yMin, yMax}
	b.hasRanges = true
	return b
}

// AddLegendItem appends a legend line rendered below the frame.
func (b *BorderBox) AddLegendItem(key, description string) *BorderBox {
	b.legend = append(b.legend, LegendEntry{Key: key, Description: description})
	return b
}

// margins returns the left gutter widths: total, y-label part, y-value part.
func (b *BorderBox) margins() (left, labelW, valueW int) {
	if b.yLabel != "" {
		labelW = len(b.yLabel) + 1
	}
	if b.hasRanges {
		lo := fmt.Sprintf("%.1f", b.yRange[0])
		hi := fmt.Sprintf("%.1f", b.yRange[1])
		valueW = max(len(lo), len(hi)) + 1
	}
	return labelW + valueW, labelW, valueW
}

// Render frames the given plot lines and returns the framed lines.
// Content lines may contain SGR escapes; padding is escape-aware.
func (b *BorderBox) Render(content []string) []string {
	left, labelW, valueW := b.margins()
	pad := strings.Repeat(" ", left)

	out := make([]string, 0, len(content)+6+len(b.legend))
	out = append(out, b.renderTop(pad))

	for i, line := range content {
		labelPart := strings.Repeat(" ", labelW)
		if b.yLabel != "" && i == b.height/2 {
			labelPart = " " + b.yLabel
		}

		valuePart := strings.Repeat(" ", valueW)
		if b.hasRanges && (i == 0 || i == b.height-1) {
			v := b.yRange[1]
			if i == b.height-1 {
				v = b.yRange[0]
			}
			valuePart = fmt.Sprintf("%*s", valueW, fmt.Sprintf("%.1f", v))
		}

		if fill := b.width - lipgloss.Width(line); fill > 0 {
			line += strings.Repeat(" ", fill)
		}
		out = append(out, labelPart+valuePart+b.chars.vertical+" "+line+" "+b.chars.vertical)
	}

	out = append(out, pad+b.chars.bottomLeft+strings.Repeat(b.chars.horizontal, b.width+2)+b.chars.bottomRight)

	if b.hasRanges {
		out = append(out, b.renderXAxis(pad))
	}
	if b.xLabel != "" {
		out = append(out, pad+" "+center(b.xLabel, b.width))
	}
	out = append(out, b.renderLegend(pad)...)
	return out
}

// Frame is a convenience wrapper that splits, frames and rejoins text.
func (b *BorderBox) Frame(plot string) string {
	return strings.Join(b.Render(strings.Split(plot, "\n")), "\n")
}

func (b *BorderBox) renderTop(pad string) string {
	inner := b.width + 2
	if b.title == "" {
		return pad + b.chars.topLeft + strings.Repeat(b.chars.horizontal, inner) + b.chars.topRight
	}

	title := " " + b.title + " "
	avail := inner - lipgloss.Width(title)
	if avail < 0 {
		avail = 0
	}
	leftSeg := avail / 2
	return pad + b.chars.topLeft +
		strings.Repeat(b.chars.horizontal, leftSeg) +
		title +
		strings.Repeat(b.chars.horizontal, avail-leftSeg) +
		b.chars.topRight
}

func (b *BorderBox) renderXAxis(pad string) string {
	lo := fmt.Sprintf("%.2f", b.xRange[0])
	hi := fmt.Sprintf("%.2f", b.xRange[1])
	gap := b.width + 2 - len(lo) - len(hi)
	if gap < 1 {
		gap = 1
	}
	return pad + lo + strings.Repeat(" ", gap) + hi
}

func (b *BorderBox) renderLegend(pad string) []string {
	if len(b.legend) == 0 {
		return nil
	}
	lines := []string{"", pad + "Legend:"}
	for _, e := range b.legend {
		lines = append(lines, pad+e.Key+" - "+e.Description)
	}
	return lines
}

func center(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
