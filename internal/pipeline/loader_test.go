package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/sdhar150/crossing-counties/internal/config"

	"github.com/xuri/excelize/v2"
)

// writeFixtures writes a small rent workbook and matching income workbook
// into a temp dir and returns a config pointed at it.
func writeFixtures(t *testing.T) (config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.General.DataDir = ""
	cfg.Workbooks.SearchPaths = nil

	rent := excelize.NewFile()
	rentRows := [][]interface{}{
		{"fips", "state", "stusps", "countyname", "hud_area_name", "fmr_0", "fmr_1", "fmr_2", "fmr_3", "fmr_4"},
		{"1001", "1", "AL", "Autauga County", "", 700, 800, 1000, 1300, 1500},
		{"1003", "1", "AL", "Baldwin County", "", 750, 850, 1100, 1400, 1600},
		{"48201", "48", "TX", "Harris County", "Houston MSA", 1100, 1250, 1500, 2000, 2400},
	}
	if err := rent.SetSheetName("Sheet1", cfg.Workbooks.RentSheet); err != nil {
		t.Fatal(err)
	}
	for i, row := range rentRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := rent.SetSheetRow(cfg.Workbooks.RentSheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := rent.SaveAs(filepath.Join(dir, cfg.Workbooks.RentFile)); err != nil {
		t.Fatal(err)
	}
	rent.Close()

	income := excelize.NewFile()
	incomeRows := [][]interface{}{
		{"FY 2025 Median Family Income Estimates"},
		{"Locality", "State", "HUD Area", "fips", "1", "2", "3", "4", "5", "6", "7", "8"},
		{"Alabama", "AL", "Statewide", "", 50000, 57000, 64000, 71000, 77000, 82000, 88000, 94000},
		{"Autauga County", "AL", "", "1001", 30000, 34000, 38500, 42800, 46200, 49600, 53000, 56500},
	}
	if err := income.SetSheetName("Sheet1", "AL"); err != nil {
		t.Fatal(err)
	}
	for i, row := range incomeRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := income.SetSheetRow("AL", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := income.SaveAs(filepath.Join(dir, cfg.Workbooks.IncomeFile)); err != nil {
		t.Fatal(err)
	}
	income.Close()

	return cfg, dir
}

func TestLoad(t *testing.T) {
	cfg, dir := writeFixtures(t)

	result, err := Load(cfg, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Records) != 3 {
		t.Fatalf("records = %d, want 3", len(result.Records))
	}
	if result.Records[0].FIPS != "01001" {
		t.Errorf("FIPS = %q, want 01001 (zero-padded through the pipeline)", result.Records[0].FIPS)
	}
	if result.Paths.IncomePath == "" {
		t.Error("income workbook should be located alongside the rent workbook")
	}
}

func TestLoad_MissingWorkbook(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.DataDir = ""
	cfg.Workbooks.SearchPaths = nil

	if _, err := Load(cfg, t.TempDir()); err == nil {
		t.Fatal("expected error when the rent workbook is absent")
	}
}

func TestLoadResult_Profile(t *testing.T) {
	cfg, dir := writeFixtures(t)

	result, err := Load(cfg, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Autauga has an income row; the join should pick it up.
	p, err := result.Profile("1001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.HasIncome() {
		t.Fatal("expected income data for 01001")
	}
	if p.Income.Income(4) != 42800 {
		t.Errorf("Income(4) = %v, want 42800", p.Income.Income(4))
	}

	// Harris has no TX sheet in the income workbook: rent-only profile.
	p, err = result.Profile("48201")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.HasIncome() {
		t.Error("expected no income data for 48201")
	}
	if p.Rent.CountyName != "Harris County" {
		t.Errorf("CountyName = %q", p.Rent.CountyName)
	}

	// Unknown county is an error.
	if _, err := result.Profile("99999"); err == nil {
		t.Error("expected error for unknown fips")
	}
}
