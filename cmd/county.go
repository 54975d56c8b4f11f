package cmd

import (
	"fmt"
	"os"

	"github.com/sdhar150/crossing-counties/internal/cli"
	"github.com/sdhar150/crossing-counties/internal/model"
	"github.com/sdhar150/crossing-counties/internal/pipeline"

	"github.com/spf13/cobra"
)

var countyCmd = &cobra.Command{
	Use:   "county <fips>",
	Short: "Affordability report for one county",
	Args:  cobra.ExactArgs(1),
	RunE:  runCounty,
}

func init() {
	rootCmd.AddCommand(countyCmd)
}

func runCounty(cmd *cobra.Command, args []string) error {
	result, cfg, err := loadData()
	if err != nil {
		return err
	}
	warnIncomeMissing(result)

	br, err := bedrooms(cmd, cfg)
	if err != nil {
		return err
	}

	profile, err := result.Profile(args[0])
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s, %s  (FIPS %s)",
		profile.Rent.CountyName, profile.Rent.StateCode, profile.Rent.FIPS)))
	fmt.Println()
	fmt.Print(renderCountyReport(profile, result, br))

	return nil
}

// renderCountyReport builds the full plain-text county report.
// Shared with the compare command, which renders two of these side by side.
func renderCountyReport(p model.CountyProfile, result *pipeline.LoadResult, br int) string {
	aff := pipeline.Affordability(p, result.Records, br)

	rows := [][]string{}
	for b := 0; b <= model.MaxBedrooms; b++ {
		val := cli.FormatMoney(p.Rent.Rents[b])
		if p.Rent.Imputed[b] {
			val += " *"
		}
		rows = append(rows, []string{cli.BedroomLabel(b), val})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows,
		[]string{"National avg " + cli.BedroomLabel(br), cli.FormatMoney(aff.NationalAverage)},
		[]string{"Ratio to average", cli.FormatRatio(aff.RatioToAverage)},
	)

	if p.HasIncome() {
		rows = append(rows, []string{"---"},
			[]string{"4-person 40% income", cli.FormatMoney(aff.BenchmarkIncome)},
			[]string{"Rent as % of income", cli.FormatPercent(aff.PercentOfIncome)},
		)
	}

	out := cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	})

	imputed := false
	for _, im := range p.Rent.Imputed {
		imputed = imputed || im
	}
	if imputed {
		out += cli.RenderNote("* imputed from the national column median") + "\n"
	}

	if p.HasIncome() {
		out += "\n  40% income by household size (1-8)\n"
		out += "  " + cli.RenderSparkline(p.Income.Incomes[:]) + "\n"
		for i, v := range p.Income.Incomes {
			out += fmt.Sprintf("    %d person: %s\n", i+1, cli.FormatMoney(v))
		}
	} else {
		out += cli.RenderNote("no income data for this county") + "\n"
	}

	return out
}

// warnIncomeMissing prints a non-fatal stderr note when the income workbook
// was not located.
func warnIncomeMissing(result *pipeline.LoadResult) {
	if result.Paths.IncomePath == "" && !flagQuiet {
		fmt.Fprintln(os.Stderr, "  Income workbook not found; reports omit income data")
	}
}
