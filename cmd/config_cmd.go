package cmd

import (
	"fmt"

	"github.com/sdhar150/crossing-counties/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		fmt.Printf("Config file: %s", config.ConfigPath())
		if !config.Exists() {
			fmt.Print("  (not written, showing defaults)")
		}
		fmt.Println()
		fmt.Println()
		fmt.Printf("  default_bedrooms = %d\n", cfg.General.DefaultBedrooms)
		fmt.Printf("  data_dir         = %q\n", cfg.General.DataDir)
		fmt.Printf("  browser          = %q\n", cfg.General.Browser)
		fmt.Printf("  rent_file        = %q\n", cfg.Workbooks.RentFile)
		fmt.Printf("  rent_sheet       = %q\n", cfg.Workbooks.RentSheet)
		fmt.Printf("  income_file      = %q\n", cfg.Workbooks.IncomeFile)
		fmt.Printf("  search_paths     = %v\n", cfg.Workbooks.SearchPaths)
		fmt.Printf("  theme            = %q\n", cfg.Appearance.Theme)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(_ *cobra.Command, _ []string) error {
		if config.Exists() {
			return fmt.Errorf("config already exists at %s", config.ConfigPath())
		}
		if err := config.Save(config.DefaultConfig()); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", config.ConfigPath())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
