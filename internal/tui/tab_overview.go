package tui

import (
	"fmt"
	"strings"

	"github.com/sdhar150/crossing-counties/internal/cli"
	"github.com/sdhar150/crossing-counties/internal/model"
	"github.com/sdhar150/crossing-counties/internal/pipeline"
	"github.com/sdhar150/crossing-counties/internal/tui/components"
	"github.com/sdhar150/crossing-counties/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	records := a.data.Records
	report := a.data.Report
	stats := pipeline.MarketSummary(records, a.bedrooms)
	var b strings.Builder

	// Row 1: Metric cards
	cards := []components.Metric{
		{Label: "Counties", Value: cli.FormatNumber(int64(stats.Counties)), Note: fmt.Sprintf("of %s rows read", cli.FormatNumber(int64(report.RowsIn)))},
		{Label: "Mean " + cli.BedroomLabel(a.bedrooms), Value: cli.FormatMoney(stats.Mean), Note: "per month"},
		{Label: "Median " + cli.BedroomLabel(a.bedrooms), Value: cli.FormatMoney(stats.Median), Note: "per month"},
		{Label: "Range", Value: cli.FormatMoney(stats.Min) + " – " + cli.FormatMoney(stats.Max), Note: "min / max"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Average rent by state
	states := pipeline.StatesOf(records, a.bedrooms)
	vals := make([]float64, len(states))
	labels := make([]string, len(states))
	for i, s := range states {
		vals[i] = s.AvgRent
		labels[i] = s.StateCode
	}
	chartInnerW := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Average %s Rent by State", cli.BedroomLabel(a.bedrooms)),
		components.BarChart(vals, labels, t.Blue, chartInnerW, 10),
		cw,
	))
	b.WriteString("\n")

	// Row 3: National spread across unit sizes + cleaning summary
	halves := components.LayoutRow(cw, 2)

	sizeVals := make([]float64, model.MaxBedrooms+1)
	sizeLabels := make([]string, model.MaxBedrooms+1)
	for br := 0; br <= model.MaxBedrooms; br++ {
		sizeVals[br] = a.natAvgs[br]
		sizeLabels[br] = cli.BedroomLabel(br)
	}
	sizeCard := components.ContentCard(
		"National Average by Unit Size",
		components.BarChart(sizeVals, sizeLabels, t.Accent, components.CardInnerWidth(halves[0]), 8),
		halves[0],
	)

	var totalImputed int
	for _, n := range report.Imputed {
		totalImputed += n
	}
	var cleanBody strings.Builder
	fmt.Fprintf(&cleanBody, "Rows read        %s\n", cli.FormatNumber(int64(report.RowsIn)))
	fmt.Fprintf(&cleanBody, "Counties kept    %s\n", cli.FormatNumber(int64(report.RowsOut)))
	fmt.Fprintf(&cleanBody, "Duplicate FIPS   %s\n", cli.FormatNumber(int64(report.DuplicateFIPS)))
	fmt.Fprintf(&cleanBody, "Missing identity %s\n", cli.FormatNumber(int64(report.MissingIdent)))
	fmt.Fprintf(&cleanBody, "Imputed rents    %s\n", cli.FormatNumber(int64(totalImputed)))
	fmt.Fprintf(&cleanBody, "Load time        %s", a.loadTime.Round(loadTimeResolution))
	cleanCard := components.ContentCard("Workbook Cleaning", cleanBody.String(), halves[1])

	b.WriteString(components.CardRow([]string{sizeCard, cleanCard}))

	return b.String()
}
