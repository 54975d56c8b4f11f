package cmd

import (
	"fmt"

	"github.com/sdhar150/crossing-counties/internal/cli"
	"github.com/sdhar150/crossing-counties/internal/model"
	"github.com/sdhar150/crossing-counties/internal/pipeline"

	"github.com/spf13/cobra"
)

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "National rent summary per unit size",
	RunE:  runMarket,
}

func init() {
	rootCmd.AddCommand(marketCmd)
}

func runMarket(_ *cobra.Command, _ []string) error {
	result, _, err := loadData()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, model.MaxBedrooms+1)
	for br := 0; br <= model.MaxBedrooms; br++ {
		ms := pipeline.MarketSummary(result.Records, br)
		rows = append(rows, []string{
			cli.BedroomLabel(br),
			cli.FormatMoney(ms.Mean),
			cli.FormatMoney(ms.Median),
			cli.FormatMoney(ms.Min),
			cli.FormatMoney(ms.Max),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("NATIONAL FAIR MARKET RENT  %d counties", len(result.Records))))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Unit", "Mean", "Median", "Min", "Max"},
		Rows:    rows,
	}))

	return nil
}
