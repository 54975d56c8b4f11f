package plot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sdhar150/crossing-counties/internal/cli"
	"github.com/sdhar150/crossing-counties/internal/model"
)

// Flexoki accents, matching the TUI theme.
const (
	colorAccent = "#3AA99F"
	colorBlue   = "#4385BE"
)

// RentComparison builds a grouped bar figure of a county's rents against
// the national average, per bedroom count.
func RentComparison(p model.CountyProfile, averages [model.MaxBedrooms + 1]float64) *Plot {
	fig := New(
		WithTitle(fmt.Sprintf("Fair market rent: %s, %s", p.Rent.CountyName, p.Rent.StateCode)),
		WithXLabel("Unit size"),
		WithYLabel("Monthly rent (USD)"),
		WithLegend(true),
		WithSize(900, 520),
	)

	labels := make([]string, model.MaxBedrooms+1)
	county := make([]float64, model.MaxBedrooms+1)
	national := make([]float64, model.MaxBedrooms+1)
	for br := 0; br <= model.MaxBedrooms; br++ {
		labels[br] = cli.BedroomLabel(br)
		county[br] = p.Rent.Rents[br]
		national[br] = averages[br]
	}

	fig.AddBars(p.Rent.CountyName, labels, county, colorAccent)
	fig.AddBars("National average", labels, national, colorBlue)
	return fig
}

// IncomeBySize builds a scatter figure of the 40% annual median income per
// household size, mirroring the dashboard's income chart.
func IncomeBySize(p model.CountyProfile) *Plot {
	fig := New(
		WithTitle(fmt.Sprintf("40%% annual median income by household size in %s, %s",
			p.Rent.CountyName, p.Rent.StateCode)),
		WithXLabel("Household size"),
		WithYLabel("Annual income (USD)"),
		WithLegend(false),
		WithSize(900, 520),
	)

	if !p.HasIncome() {
		return fig
	}

	x := make([]float64, model.HouseholdSizes)
	y := make([]float64, model.HouseholdSizes)
	for i := 0; i < model.HouseholdSizes; i++ {
		x[i] = float64(i + 1)
		y[i] = p.Income.Incomes[i]
	}

	fig.AddPoints("40% median income", x, y, colorAccent)
	return fig
}

// ExportCounty writes both county figures to HTML files in dir (the
// system temp dir when empty) and returns their paths.
func ExportCounty(p model.CountyProfile, averages [model.MaxBedrooms + 1]float64, dir string) ([]string, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	base := fmt.Sprintf("crossing-counties-%s", p.Rent.FIPS)
	rentPath := filepath.Join(dir, base+"-rent.html")
	if err := RentComparison(p, averages).WriteHTML(rentPath); err != nil {
		return nil, err
	}
	paths := []string{rentPath}

	if p.HasIncome() {
		incomePath := filepath.Join(dir, base+"-income.html")
		if err := IncomeBySize(p).WriteHTML(incomePath); err != nil {
			return paths, err
		}
		paths = append(paths, incomePath)
	}

	return paths, nil
}
