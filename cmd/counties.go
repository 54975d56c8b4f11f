package cmd

import (
	"fmt"
	"strings"

	"github.com/sdhar150/crossing-counties/internal/cli"
	"github.com/sdhar150/crossing-counties/internal/model"
	"github.com/sdhar150/crossing-counties/internal/pipeline"

	"github.com/spf13/cobra"
)

var countiesCmd = &cobra.Command{
	Use:   "counties <state>",
	Short: "Cleaned rent table for one state",
	Args:  cobra.ExactArgs(1),
	RunE:  runCounties,
}

func init() {
	rootCmd.AddCommand(countiesCmd)
}

func runCounties(_ *cobra.Command, args []string) error {
	result, _, err := loadData()
	if err != nil {
		return err
	}

	state := strings.ToUpper(args[0])
	records := pipeline.CountiesOf(result.Records, state)
	if len(records) == 0 {
		fmt.Printf("\n  No counties found for state %q.\n", state)
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := []string{r.FIPS, r.CountyName}
		for br := 0; br <= model.MaxBedrooms; br++ {
			row = append(row, cli.FormatMoney(r.Rents[br]))
		}
		rows = append(rows, row)
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%s  (%d counties)", state, len(records)),
		Headers: []string{"FIPS", "County", "Studio", "1 BR", "2 BR", "3 BR", "4 BR"},
		Rows:    rows,
	}))

	return nil
}
