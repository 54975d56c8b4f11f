package components

import (
	"fmt"
	"strings"

	"github.com/sdhar150/crossing-counties/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ScatterChart plots y values against evenly spaced x labels on a character
// grid. Used for the income-by-household-size chart.
func ScatterChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	maxVal := values[0]
	minVal := values[0]
	for _, v := range values[1:] {
		if v > maxVal {
			maxVal = v
		}
		if v < minVal {
			minVal = v
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	// Pad the range so extreme points don't sit on the frame.
	span := maxVal - minVal
	top := maxVal + span*0.05
	bottom := minVal - span*0.05
	if bottom < 0 {
		bottom = 0
	}

	yLabelW := len(chartLabel(top)) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}
	plotW := width - yLabelW - 1
	if plotW < len(values) {
		plotW = len(values)
	}

	// Column position per point, spread across the plot width.
	cols := make([]int, len(values))
	for i := range values {
		if len(values) == 1 {
			cols[i] = plotW / 2
			continue
		}
		cols[i] = i * (plotW - 1) / (len(values) - 1)
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	dotStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	fillStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := height - 1; row >= 0; row-- {
		rowTop := bottom + (top-bottom)*float64(row+1)/float64(height)
		rowBottom := bottom + (top-bottom)*float64(row)/float64(height)

		// Y label on the top and middle rows
		label := ""
		switch row {
		case height - 1:
			label = chartLabel(top)
		case height / 2:
			label = chartLabel((top + bottom) / 2)
		case 0:
			label = chartLabel(bottom)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		line := make([]bool, plotW)
		for i, v := range values {
			if v >= rowBottom && v < rowTop || (row == height-1 && v >= rowTop) {
				line[cols[i]] = true
			}
		}

		run := 0
		flush := func(dot bool) {
			if run == 0 {
				return
			}
			if dot {
				b.WriteString(dotStyle.Render(strings.Repeat("●", run)))
			} else {
				b.WriteString(fillStyle.Render(strings.Repeat(" ", run)))
			}
			run = 0
		}
		current := false
		for _, dot := range line {
			if dot != current {
				flush(current)
				current = dot
			}
			run++
		}
		flush(current)
		b.WriteString("\n")
	}

	// X axis and labels under their columns
	b.WriteString(axisStyle.Render(strings.Repeat(" ", yLabelW)))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", plotW)))

	if len(labels) == len(values) {
		buf := make([]byte, plotW)
		for i := range buf {
			buf[i] = ' '
		}
		for i, lbl := range labels {
			pos := cols[i]
			if pos+len(lbl) > plotW {
				pos = plotW - len(lbl)
			}
			if pos >= 0 {
				copy(buf[pos:pos+len(lbl)], lbl)
			}
		}
		b.WriteString("\n")
		b.WriteString(fillStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}
