package cmd

import (
	"fmt"

	"github.com/sdhar150/crossing-counties/internal/cli"
	"github.com/sdhar150/crossing-counties/internal/pipeline"

	"github.com/spf13/cobra"
)

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "Average rent per state",
	RunE:  runStates,
}

func init() {
	rootCmd.AddCommand(statesCmd)
}

func runStates(cmd *cobra.Command, _ []string) error {
	result, cfg, err := loadData()
	if err != nil {
		return err
	}

	br, err := bedrooms(cmd, cfg)
	if err != nil {
		return err
	}

	states := pipeline.StatesOf(result.Records, br)

	maxAvg := 0.0
	for _, s := range states {
		if s.AvgRent > maxAvg {
			maxAvg = s.AvgRent
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("Average %s rent by state", cli.BedroomLabel(br))))
	fmt.Println()
	for _, s := range states {
		label := fmt.Sprintf("%s (%d)", s.StateCode, s.Counties)
		fmt.Println(cli.RenderHorizontalBar(label, cli.FormatMoney(s.AvgRent), s.AvgRent, maxAvg, 9, 40))
	}
	fmt.Println()

	return nil
}
