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

func (a App) renderCountyTab(cw int) string {
	t := theme.Active

	if a.profile == nil {
		hintStyle := "\n  No county selected.\n\n  Press [s] to pick a state and county,\n  or choose one from the Browse tab.\n"
		return components.ContentCard("County", hintStyle, cw)
	}

	p := *a.profile
	aff := pipeline.Affordability(p, a.data.Records, a.bedrooms)
	var b strings.Builder

	// Row 1: Metric cards
	ratioNote := fmt.Sprintf("%s of national avg", cli.FormatRatio(aff.RatioToAverage))
	incomeValue := "no data"
	incomeNote := ""
	pctValue := "n/a"
	pctNote := ""
	if p.HasIncome() {
		incomeValue = cli.FormatMoney(aff.BenchmarkIncome)
		incomeNote = "4-person household"
		pctValue = cli.FormatPercent(aff.PercentOfIncome)
		pctNote = "annual rent / income"
	}
	cards := []components.Metric{
		{Label: p.Rent.CountyName + ", " + p.Rent.StateCode, Value: cli.FormatMoney(aff.MonthlyRent), Note: cli.BedroomLabel(a.bedrooms) + " per month"},
		{Label: "Annual Rent", Value: cli.FormatMoney(aff.AnnualRent), Note: ratioNote},
		{Label: "Median Income", Value: incomeValue, Note: incomeNote},
		{Label: "Rent Burden", Value: pctValue, Note: pctNote},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: County vs national averages across unit sizes
	county := make([]float64, model.MaxBedrooms+1)
	national := make([]float64, model.MaxBedrooms+1)
	labels := make([]string, model.MaxBedrooms+1)
	for br := 0; br <= model.MaxBedrooms; br++ {
		county[br] = p.Rent.Rents[br]
		national[br] = a.natAvgs[br]
		labels[br] = cli.BedroomLabel(br)
	}
	title := p.Rent.CountyName + " vs National Average"
	if imputed := imputedLabels(p.Rent); imputed != "" {
		title += "  (" + imputed + " imputed)"
	}
	b.WriteString(components.ContentCard(
		title,
		components.PairedBarChart(county, national, labels, t.Accent, t.Blue, components.CardInnerWidth(cw), 10),
		cw,
	))
	b.WriteString("\n")

	// Row 3: Income by household size
	if p.HasIncome() {
		vals := make([]float64, model.HouseholdSizes)
		sizeLabels := make([]string, model.HouseholdSizes)
		for i := 0; i < model.HouseholdSizes; i++ {
			vals[i] = p.Income.Incomes[i]
			sizeLabels[i] = cli.FormatHousehold(i + 1)
		}
		b.WriteString(components.ContentCard(
			"Median Income by Household Size",
			components.ScatterChart(vals, sizeLabels, t.Green, components.CardInnerWidth(cw), 9),
			cw,
		))
	} else {
		noteStyle := "\n  No income sheet for state " + p.Rent.StateCode + ".\n  Rent metrics are shown without affordability ratios.\n"
		b.WriteString(components.ContentCard("Median Income", noteStyle, cw))
	}

	return b.String()
}

// imputedLabels lists the unit sizes whose rent was median-imputed.
func imputedLabels(r model.RentRecord) string {
	var parts []string
	for br := 0; br <= model.MaxBedrooms; br++ {
		if r.Imputed[br] {
			parts = append(parts, cli.BedroomLabel(br))
		}
	}
	return strings.Join(parts, ", ")
}
