package source

import (
	"testing"
)

// incomeRows builds the fixed income sheet layout: a title row, a header
// row, a statewide aggregate row, then county rows.
func incomeRows(counties ...[]interface{}) [][]interface{} {
	rows := [][]interface{}{
		{"FY 2025 Median Family Income Estimates"},
		{"Locality", "State", "HUD Area", "fips", "1", "2", "3", "4", "5", "6", "7", "8"},
		{"Alabama", "AL", "Statewide", "", 50000, 57000, 64000, 71000, 77000, 82000, 88000, 94000},
	}
	return append(rows, counties...)
}

func TestLoadStateIncome(t *testing.T) {
	path := writeWorkbook(t, "AL", incomeRows(
		[]interface{}{"Autauga County", "al", "Montgomery, AL MSA", "1001", 30000, 34000, 38500, 42800, 46200, 49600, 53000, 56500},
		[]interface{}{"Baldwin County", "AL", "Baldwin County", "01003", 32000, 36500, 41000, 45600, 49200, 52800, 56500, 60200},
	))

	records, err := LoadStateIncome(path, "al")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2 (aggregate row dropped)", len(records))
	}

	r := records[0]
	if r.FIPS != "01001" {
		t.Errorf("FIPS = %q, want 01001 (zero-padded)", r.FIPS)
	}
	if r.StateCode != "AL" {
		t.Errorf("StateCode = %q, want AL (uppercased)", r.StateCode)
	}
	if r.Locality != "Autauga County" {
		t.Errorf("Locality = %q", r.Locality)
	}
	if r.Incomes[0] != 30000 || r.Incomes[7] != 56500 {
		t.Errorf("Incomes = %v", r.Incomes)
	}
	if got := r.Income(4); got != 42800 {
		t.Errorf("Income(4) = %v, want 42800", got)
	}
}

func TestLoadStateIncome_MissingSheetIsSilent(t *testing.T) {
	path := writeWorkbook(t, "AL", incomeRows())

	records, err := LoadStateIncome(path, "PR")
	if err != nil {
		t.Fatalf("missing sheet must not error, got %v", err)
	}
	if records != nil {
		t.Errorf("records = %v, want nil", records)
	}
}

func TestLoadStateIncome_SkipsUnusableRows(t *testing.T) {
	path := writeWorkbook(t, "AL", incomeRows(
		[]interface{}{"No FIPS Town", "AL", "", "", 30000, 34000, 38500, 42800, 46200, 49600, 53000, 56500},
		[]interface{}{"All Zero County", "AL", "", "1005", 0, 0, 0, 0, 0, 0, 0, 0},
		[]interface{}{"Good County", "AL", "", "1007", 28000, 32000, 36000, 40000, 43200, 46400, 49600, 52800},
	))

	records, err := LoadStateIncome(path, "AL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].FIPS != "01007" {
		t.Errorf("kept %q, want 01007", records[0].FIPS)
	}
}

func TestLookupIncome(t *testing.T) {
	path := writeWorkbook(t, "AL", incomeRows(
		[]interface{}{"Autauga County", "AL", "", "1001", 30000, 34000, 38500, 42800, 46200, 49600, 53000, 56500},
	))

	rec, ok, err := LookupIncome(path, "AL", "1001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a match for unpadded fips")
	}
	if rec.Incomes[3] != 42800 {
		t.Errorf("Incomes[3] = %v, want 42800", rec.Incomes[3])
	}

	if _, ok, _ := LookupIncome(path, "AL", "99999"); ok {
		t.Error("unknown fips should not match")
	}
}
