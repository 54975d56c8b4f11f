package source

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook creates a temp .xlsx with one sheet holding the given rows
// and returns its path.
func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatal(err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "workbook.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

var rentHeader = []interface{}{
	"fips", "state", "stusps", "countyname", "hud_area_name",
	"fmr_0", "fmr_1", "fmr_2", "fmr_3", "fmr_4",
}

func TestLoadRentWorkbook(t *testing.T) {
	path := writeWorkbook(t, "FY25_FMRs_revised", [][]interface{}{
		rentHeader,
		{"01001", "01", "al", "Autauga County", "Montgomery, AL MSA", 800, 900, 1000, 1300, 1500},
	})

	rows, err := LoadRentWorkbook(path, "FY25_FMRs_revised")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}

	r := rows[0]
	if r.FIPS != "01001" {
		t.Errorf("FIPS = %q, want 01001", r.FIPS)
	}
	if r.StateCode != "AL" {
		t.Errorf("StateCode = %q, want AL (uppercased)", r.StateCode)
	}
	if r.CountyName != "Autauga County" {
		t.Errorf("CountyName = %q", r.CountyName)
	}
	if r.MetroArea != "Montgomery, AL MSA" {
		t.Errorf("MetroArea = %q", r.MetroArea)
	}
	for br, want := range []float64{800, 900, 1000, 1300, 1500} {
		if !r.RentSet[br] || r.Rents[br] != want {
			t.Errorf("Rents[%d] = %v (set %v), want %v", br, r.Rents[br], r.RentSet[br], want)
		}
	}
}

func TestLoadRentWorkbook_HeaderCaseAndOrder(t *testing.T) {
	// Columns shuffled and uppercased; the loader matches by name.
	path := writeWorkbook(t, "rents", [][]interface{}{
		{"CountyName", "FMR_2", "FMR_0", "FMR_1", "FMR_3", "FMR_4", "STUSPS", "FIPS"},
		{"Baldwin County", 1100, 850, 950, 1400, 1600, "AL", "01003"},
	})

	rows, err := LoadRentWorkbook(path, "rents")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].Rents[2] != 1100 {
		t.Errorf("Rents[2] = %v, want 1100", rows[0].Rents[2])
	}
	if rows[0].FIPS != "01003" {
		t.Errorf("FIPS = %q, want 01003", rows[0].FIPS)
	}
}

func TestLoadRentWorkbook_MissingRequiredColumn(t *testing.T) {
	path := writeWorkbook(t, "rents", [][]interface{}{
		{"fips", "stusps", "fmr_0", "fmr_1", "fmr_2", "fmr_3", "fmr_4"},
		{"01001", "AL", 800, 900, 1000, 1300, 1500},
	})

	_, err := LoadRentWorkbook(path, "rents")
	if err == nil {
		t.Fatal("expected error for missing countyname column")
	}
	if !strings.Contains(err.Error(), "countyname") {
		t.Errorf("error %q should name the missing column", err)
	}
}

func TestLoadRentWorkbook_OptionalColumnsAbsent(t *testing.T) {
	// state and hud_area_name are optional.
	path := writeWorkbook(t, "rents", [][]interface{}{
		{"fips", "stusps", "countyname", "fmr_0", "fmr_1", "fmr_2", "fmr_3", "fmr_4"},
		{"01001", "AL", "Autauga County", 800, 900, 1000, 1300, 1500},
	})

	rows, err := LoadRentWorkbook(path, "rents")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].StateFIPS != "" || rows[0].MetroArea != "" {
		t.Errorf("optional fields = %q/%q, want empty", rows[0].StateFIPS, rows[0].MetroArea)
	}
}

func TestLoadRentWorkbook_UnparseableRentLeftUnset(t *testing.T) {
	path := writeWorkbook(t, "rents", [][]interface{}{
		rentHeader,
		{"01001", "01", "AL", "Autauga County", "", "n/a", "", 1000, 1300, 1500},
	})

	rows, err := LoadRentWorkbook(path, "rents")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := rows[0]
	if r.RentSet[0] || r.RentSet[1] {
		t.Error("unparseable or empty cells must leave RentSet false")
	}
	if !r.RentSet[2] || r.Rents[2] != 1000 {
		t.Errorf("Rents[2] = %v (set %v), want 1000", r.Rents[2], r.RentSet[2])
	}
}

func TestLoadRentWorkbook_WrongSheet(t *testing.T) {
	path := writeWorkbook(t, "rents", [][]interface{}{rentHeader})

	if _, err := LoadRentWorkbook(path, "nope"); err == nil {
		t.Fatal("expected error for missing sheet")
	}
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"1250", 1250, true},
		{"$1,250", 1250, true},
		{" $2,500.50 ", 2500.50, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"$", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseMoney(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("parseMoney(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
