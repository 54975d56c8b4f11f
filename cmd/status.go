package cmd

import (
	"fmt"

	"github.com/sdhar150/crossing-counties/internal/cli"
	"github.com/sdhar150/crossing-counties/internal/config"
	"github.com/sdhar150/crossing-counties/internal/model"
	"github.com/sdhar150/crossing-counties/internal/pipeline"
	"github.com/sdhar150/crossing-counties/internal/source"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Workbook discovery and cleaning report",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	paths, locErr := source.Locate(cfg, flagDataDir)

	fmt.Println()
	fmt.Println(cli.RenderTitle("WORKBOOK STATUS"))
	fmt.Println()

	mark := func(found bool) string {
		if found {
			return "yes"
		}
		return "-"
	}

	probeRows := make([][]string, 0, len(paths.Probed))
	for _, p := range paths.Probed {
		probeRows = append(probeRows, []string{p.Dir, mark(p.RentFound), mark(p.IncomeFound)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Search paths",
		Headers: []string{"Directory", "Rent", "Income"},
		Rows:    probeRows,
	}))
	fmt.Println()

	if locErr != nil {
		fmt.Println(cli.RenderNote(locErr.Error()))
		return nil
	}
	if paths.IncomePath == "" {
		fmt.Println(cli.RenderNote("income workbook not found; income lookups will report no data"))
	}

	rows, err := source.LoadRentWorkbook(paths.RentPath, cfg.Workbooks.RentSheet)
	if err != nil {
		fmt.Println(cli.RenderNote(err.Error()))
		return nil
	}
	_, rep := pipeline.CleanRents(rows)

	imputed := 0
	for _, n := range rep.Imputed {
		imputed += n
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Cleaning  (sheet %s)", cfg.Workbooks.RentSheet),
		Headers: []string{"Step", "Rows"},
		Rows: [][]string{
			{"Raw rows", fmt.Sprintf("%d", rep.RowsIn)},
			{"Duplicate FIPS dropped", fmt.Sprintf("%d", rep.DuplicateFIPS)},
			{"Missing identity dropped", fmt.Sprintf("%d", rep.MissingIdent)},
			{"Rent values imputed", fmt.Sprintf("%d", imputed)},
			{"Cleaned counties", fmt.Sprintf("%d", rep.RowsOut)},
		},
	}))

	medianRows := make([][]string, 0, model.MaxBedrooms+1)
	for br := 0; br <= model.MaxBedrooms; br++ {
		medianRows = append(medianRows, []string{
			cli.BedroomLabel(br),
			cli.FormatMoney(rep.ColumnMedians[br]),
			fmt.Sprintf("%d", rep.Imputed[br]),
		})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Imputation medians",
		Headers: []string{"Unit", "Median", "Imputed"},
		Rows:    medianRows,
	}))

	return nil
}
