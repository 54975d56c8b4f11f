package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/sdhar150/crossing-counties/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var barBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(barBlocks)-2))
		if idx >= len(barBlocks)-1 {
			idx = len(barBlocks) - 2
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(barBlocks[idx+1])
	}

	return style.Render(buf.String())
}

// BarChart renders a vertical bar chart with a labeled y-axis.
// Bars with too many values to fit are downsampled.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	return renderBars([][]float64{values}, labels, []lipgloss.Color{color}, width, height)
}

// PairedBarChart renders two interleaved series per label, e.g. county rent
// next to the national average.
func PairedBarChart(a, b []float64, labels []string, colorA, colorB lipgloss.Color, width, height int) string {
	return renderBars([][]float64{a, b}, labels, []lipgloss.Color{colorA, colorB}, width, height)
}

func renderBars(series [][]float64, labels []string, colors []lipgloss.Color, width, height int) string {
	if len(series) == 0 || len(series[0]) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(series[0], colors[0])
	}

	t := theme.Active

	// Interleave the series into one bar list, remembering each bar's color
	// and which label group it belongs to.
	n := len(series[0])
	groups := len(series)
	var bars []float64
	var barColor []lipgloss.Color
	for i := 0; i < n; i++ {
		for s := range series {
			bars = append(bars, series[s][i])
			barColor = append(barColor, colors[s])
		}
	}

	maxVal := 0.0
	for _, v := range bars {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	step := tickStep(maxVal)
	ceiling := math.Ceil(maxVal/step) * step
	if ceiling <= 0 {
		ceiling = 1
	}

	yLabelW := len(chartLabel(ceiling)) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}
	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	// Downsample whole label groups when they cannot fit at 1 cell per bar
	// plus a gap per group.
	for n*(groups+1)-1 > chartW && n > 2 {
		keep := (chartW + 1) / (groups + 1)
		if keep < 2 {
			keep = 2
		}
		var sBars []float64
		var sColors []lipgloss.Color
		sLabels := make([]string, keep)
		for i := 0; i < keep; i++ {
			src := i * (n - 1) / (keep - 1)
			for s := range series {
				sBars = append(sBars, series[s][src])
				sColors = append(sColors, colors[s])
			}
			if len(labels) == n {
				sLabels[i] = labels[src]
			}
		}
		bars, barColor, labels, n = sBars, sColors, sLabels, keep
	}

	barW := (chartW - (n - 1)) / (n * groups)
	if barW < 1 {
		barW = 1
	}
	if barW > 6 {
		barW = 6
	}
	axisLen := n*groups*barW + (n - 1)

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	gapStyle := lipgloss.NewStyle().Background(t.Surface)

	ticks := make(map[int]string)
	nTicks := int(math.Round(ceiling / step))
	if nTicks < 1 {
		nTicks = 1
	}
	for i := 1; i <= nTicks; i++ {
		row := int(math.Round(float64(i) / float64(nTicks) * float64(height)))
		ticks[row] = chartLabel(step * float64(i))
	}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(height)
		rowBottom := ceiling * float64(row-1) / float64(height)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, ticks[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range bars {
			if i > 0 && i%groups == 0 {
				b.WriteString(gapStyle.Render(" "))
			}
			style := lipgloss.NewStyle().Foreground(barColor[i]).Background(t.Surface)
			switch {
			case v >= rowTop:
				b.WriteString(style.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx < 1 {
					idx = 1
				}
				if idx > 8 {
					idx = 8
				}
				b.WriteString(style.Render(strings.Repeat(string(barBlocks[idx]), barW)))
			default:
				b.WriteString(gapStyle.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	// X axis
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	// X labels, one per group where they fit
	if len(labels) == n {
		buf := make([]byte, axisLen)
		for i := range buf {
			buf[i] = ' '
		}
		groupW := groups*barW + 1
		lastEnd := -1
		for i, lbl := range labels {
			pos := i * groupW
			end := pos + len(lbl)
			if pos <= lastEnd || end > axisLen {
				continue
			}
			copy(buf[pos:end], lbl)
			lastEnd = end
		}
		b.WriteString("\n")
		labelStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		b.WriteString(gapStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(labelStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}

// tickStep computes a nice tick interval targeting ~4 ticks.
func tickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 4
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func chartLabel(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
