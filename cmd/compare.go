package cmd

import (
	"fmt"

	"github.com/sdhar150/crossing-counties/internal/cli"
	"github.com/sdhar150/crossing-counties/internal/model"
	"github.com/sdhar150/crossing-counties/internal/pipeline"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <fips> <fips>",
	Short: "Compare two counties side by side",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	result, cfg, err := loadData()
	if err != nil {
		return err
	}
	warnIncomeMissing(result)

	br, err := bedrooms(cmd, cfg)
	if err != nil {
		return err
	}

	left, err := result.Profile(args[0])
	if err != nil {
		return err
	}
	right, err := result.Profile(args[1])
	if err != nil {
		return err
	}

	affL := pipeline.Affordability(left, result.Records, br)
	affR := pipeline.Affordability(right, result.Records, br)

	name := func(p model.CountyProfile) string {
		return fmt.Sprintf("%s, %s", p.Rent.CountyName, p.Rent.StateCode)
	}

	rows := [][]string{
		{"FIPS", left.Rent.FIPS, right.Rent.FIPS},
	}
	for b := 0; b <= model.MaxBedrooms; b++ {
		rows = append(rows, []string{
			cli.BedroomLabel(b) + " rent",
			cli.FormatMoney(left.Rent.Rents[b]),
			cli.FormatMoney(right.Rent.Rents[b]),
		})
	}
	rows = append(rows, []string{"---"},
		[]string{"Ratio to natl avg", cli.FormatRatio(affL.RatioToAverage), cli.FormatRatio(affR.RatioToAverage)},
		[]string{"4-person 40% income", compareIncome(affL), compareIncome(affR)},
		[]string{"Rent as % of income", comparePct(affL), comparePct(affR)},
	)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("Comparing %s bedrooms: %s vs %s",
		cli.BedroomLabel(br), name(left), name(right))))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", name(left), name(right)},
		Rows:    rows,
	}))

	return nil
}

func compareIncome(a model.Affordability) string {
	if a.BenchmarkIncome <= 0 {
		return "no data"
	}
	return cli.FormatMoney(a.BenchmarkIncome)
}

func comparePct(a model.Affordability) string {
	if a.BenchmarkIncome <= 0 {
		return "no data"
	}
	return cli.FormatPercent(a.PercentOfIncome)
}
