package cmd

import (
	"fmt"
	"os"

	"github.com/sdhar150/crossing-counties/internal/config"
	"github.com/sdhar150/crossing-counties/internal/model"
	"github.com/sdhar150/crossing-counties/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagDataDir  string
	flagBedrooms int
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "crossing-counties",
	Short: "County rent and income comparison",
	Long: "Considering moving? Compare HUD fair market rents and Treasury\n" +
		"median income thresholds across US counties.",
	RunE: runMarket,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding the rent and income workbooks")
	rootCmd.PersistentFlags().IntVarP(&flagBedrooms, "bedrooms", "b", 2, "Bedroom count for comparisons (0 = studio)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadData is the shared loading path used by all commands: resolve the
// workbooks, parse the rent sheet, clean it.
func loadData() (*pipeline.LoadResult, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loading rent workbook...\n")
	}

	result, err := pipeline.Load(cfg, flagDataDir)
	if err != nil {
		return nil, cfg, err
	}

	if !flagQuiet {
		rep := result.Report
		fmt.Fprintf(os.Stderr, "\r  Cleaned %d counties (%d duplicates, %d incomplete dropped)\n",
			rep.RowsOut, rep.DuplicateFIPS, rep.MissingIdent)
	}

	return result, cfg, nil
}

// bedrooms resolves the selected bedroom count: the flag when given,
// otherwise the configured default.
func bedrooms(cmd *cobra.Command, cfg config.Config) (int, error) {
	br := flagBedrooms
	if !cmd.Flags().Changed("bedrooms") && cfg.General.DefaultBedrooms > 0 {
		br = cfg.General.DefaultBedrooms
	}
	if br < 0 || br > model.MaxBedrooms {
		return 0, fmt.Errorf("bedrooms must be between 0 and %d, got %d", model.MaxBedrooms, br)
	}
	return br, nil
}
