// Package plot builds browser-rendered comparison charts with plotly.
package plot

import (
	"fmt"
	"os/exec"
	"time"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/MetalBlueberry/go-plotly/offline"
)

// Plot wraps a plotly figure and its layout.
type Plot struct {
	Fig *grob.Fig
	Lay *grob.Layout
}

// Opt configures a Plot at construction time.
type Opt func(p *Plot) *Plot

// New builds an empty figure and applies the options.
func New(opt ...Opt) *Plot {
	fig := &grob.Fig{}
	lay := &grob.Layout{}
	fig.Layout = lay
	p := &Plot{Fig: fig, Lay: lay}
	for _, o := range opt {
		p = o(p)
	}

	return p
}

// WithTitle sets the figure title.
func WithTitle(title string) Opt {
	return func(p *Plot) *Plot { p.Lay.Title = &grob.LayoutTitle{Text: title}; return p }
}

// WithXLabel sets the x-axis title.
func WithXLabel(label string) Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Xaxis == nil {
			p.Lay.Xaxis = &grob.LayoutXaxis{}
		}
		p.Lay.Xaxis.Title = &grob.LayoutXaxisTitle{Text: label}
		return p
	}
}

// WithYLabel sets the y-axis title.
func WithYLabel(label string) Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Yaxis == nil {
			p.Lay.Yaxis = &grob.LayoutYaxis{}
		}
		p.Lay.Yaxis.Title = &grob.LayoutYaxisTitle{Text: label}
		return p
	}
}

// WithSize sets the figure dimensions in pixels.
func WithSize(w, h float64) Opt {
	if w < 0 || h < 0 {
		panic(fmt.Errorf("negative plot size"))
	}
	return func(p *Plot) *Plot {
		p.Lay.Width = w
		p.Lay.Height = h
		return p
	}
}

// WithLegend toggles the legend.
func WithLegend(show bool) Opt {
	return func(p *Plot) *Plot {
		if show {
			p.Lay.Showlegend = grob.True
		} else {
			p.Lay.Showlegend = grob.False
		}

		return p
	}
}

// AddBars adds a named bar series over categorical x values.
func (p *Plot) AddBars(seriesName string, x []string, y []float64, color string) {
	p.Lay.Barmode = grob.BarBarmodeGroup
	tr := &grob.Bar{Name: seriesName, X: x, Y: y,
		Marker: &grob.BarMarker{Color: color}}
	p.Fig.AddTraces(tr)
}

// AddPoints adds a named marker-mode scatter series.
func (p *Plot) AddPoints(seriesName string, x, y []float64, color string) {
	tr := &grob.Scatter{Name: seriesName, X: x, Y: y,
		Mode: grob.ScatterModeMarkers, Marker: &grob.ScatterMarker{Color: color}}
	p.Fig.AddTraces(tr)
}

// WriteHTML renders the figure to a standalone HTML file.
func (p *Plot) WriteHTML(fileName string) error {
	offline.ToHtml(p.Fig, fileName)
	return nil
}

// OpenInBrowser opens a rendered chart file. An empty browser falls back
// to xdg-open.
func OpenInBrowser(browser, fileName string) error {
	if browser == "" {
		browser = "xdg-open"
	}

	cmd := exec.Command(browser, fileName)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s: %w", fileName, err)
	}

	// need to pause while the browser picks up the file
	time.Sleep(time.Second)

	return nil
}
