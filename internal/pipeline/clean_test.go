package pipeline

import (
	"testing"

	"github.com/sdhar150/crossing-counties/internal/source"
)

// rawRow builds a RawRentRow with all five rents set to the given values.
// A rent of 0 is left unset (missing cell).
func rawRow(fips, state, county string, rents ...float64) source.RawRentRow {
	r := source.RawRentRow{
		FIPS:       fips,
		StateCode:  state,
		CountyName: county,
	}
	for i, v := range rents {
		if i > 4 {
			break
		}
		if v != 0 {
			r.Rents[i] = v
			r.RentSet[i] = true
		}
	}
	return r
}

func TestCleanRents_ZeroPadsFIPS(t *testing.T) {
	rows := []source.RawRentRow{
		rawRow("1001", "AL", "Autauga County", 800, 900, 1000, 1300, 1500),
	}
	rows[0].StateFIPS = "1"

	records, _ := CleanRents(rows)
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].FIPS != "01001" {
		t.Errorf("FIPS = %q, want 01001", records[0].FIPS)
	}
	if records[0].StateFIPS != "01" {
		t.Errorf("StateFIPS = %q, want 01", records[0].StateFIPS)
	}
}

func TestCleanRents_DedupKeepsFirst(t *testing.T) {
	rows := []source.RawRentRow{
		rawRow("1001", "AL", "Autauga County", 800, 900, 1000, 1300, 1500),
		// Same county, padded spelling. Must collide with the first row.
		rawRow("01001", "AL", "Autauga County (dup)", 999, 999, 999, 999, 999),
		rawRow("01003", "AL", "Baldwin County", 850, 950, 1100, 1400, 1600),
	}

	records, report := CleanRents(rows)
	if report.DuplicateFIPS != 1 {
		t.Errorf("DuplicateFIPS = %d, want 1", report.DuplicateFIPS)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].CountyName != "Autauga County" {
		t.Errorf("kept %q, want first occurrence", records[0].CountyName)
	}
	if records[0].Rents[0] != 800 {
		t.Errorf("Rents[0] = %v, want 800 (first occurrence wins)", records[0].Rents[0])
	}
}

func TestCleanRents_ImputesColumnMedian(t *testing.T) {
	rows := []source.RawRentRow{
		rawRow("01001", "AL", "Autauga County", 800, 800, 800, 800, 800),
		rawRow("01003", "AL", "Baldwin County", 1000, 1000, 1000, 1000, 1000),
		rawRow("01005", "AL", "Barbour County", 1200, 1200, 1200, 1200, 1200),
		// 2BR missing entirely.
		rawRow("01007", "AL", "Bibb County", 700, 750, 0, 900, 950),
	}

	records, report := CleanRents(rows)
	if len(records) != 4 {
		t.Fatalf("records = %d, want 4", len(records))
	}

	// Valid 2BR entries are 800, 1000, 1200.
	if report.ColumnMedians[2] != 1000 {
		t.Errorf("ColumnMedians[2] = %v, want 1000", report.ColumnMedians[2])
	}

	bibb := records[3]
	if bibb.Rents[2] != 1000 {
		t.Errorf("imputed 2BR = %v, want 1000", bibb.Rents[2])
	}
	if !bibb.Imputed[2] {
		t.Error("Imputed[2] = false, want true")
	}
	if bibb.Imputed[0] || bibb.Imputed[1] {
		t.Error("valid columns must not be flagged imputed")
	}
	if report.Imputed[2] != 1 {
		t.Errorf("report.Imputed[2] = %d, want 1", report.Imputed[2])
	}
}

func TestCleanRents_NonPositiveTreatedMissing(t *testing.T) {
	rows := []source.RawRentRow{
		rawRow("01001", "AL", "Autauga County", 800, 900, 1000, 1300, 1500),
		rawRow("01003", "AL", "Baldwin County", 900, 950, 1100, 1350, 1550),
	}
	// A sentinel negative rent must be replaced, not kept.
	rows[1].Rents[4] = -4
	rows[1].RentSet[4] = true

	records, _ := CleanRents(rows)
	for _, r := range records {
		for br, v := range r.Rents {
			if v <= 0 {
				t.Errorf("%s bedroom %d: rent %v after cleaning", r.FIPS, br, v)
			}
		}
	}
	if !records[1].Imputed[4] {
		t.Error("negative rent not flagged imputed")
	}
	if records[1].Rents[4] != 1500 {
		t.Errorf("imputed 4BR = %v, want 1500 (median of single valid entry)", records[1].Rents[4])
	}
}

func TestCleanRents_DropsMissingIdentity(t *testing.T) {
	rows := []source.RawRentRow{
		rawRow("01001", "AL", "Autauga County", 800, 900, 1000, 1300, 1500),
		rawRow("01003", "AL", "", 850, 950, 1100, 1400, 1600),          // no county name
		rawRow("01005", "", "Barbour County", 700, 750, 850, 900, 950), // no state
		rawRow("", "AL", "Bibb County", 700, 750, 850, 900, 950),       // no fips
	}

	records, report := CleanRents(rows)
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if report.MissingIdent != 3 {
		t.Errorf("MissingIdent = %d, want 3", report.MissingIdent)
	}
	if report.RowsIn != 4 || report.RowsOut != 1 {
		t.Errorf("RowsIn/RowsOut = %d/%d, want 4/1", report.RowsIn, report.RowsOut)
	}
}

func TestCleanRents_EmptyColumnKeepsZero(t *testing.T) {
	// No row has a 3BR value: nothing to impute from.
	rows := []source.RawRentRow{
		rawRow("01001", "AL", "Autauga County", 800, 900, 1000, 0, 1500),
		rawRow("01003", "AL", "Baldwin County", 850, 950, 1100, 0, 1600),
	}

	records, report := CleanRents(rows)
	if report.ColumnMedians[3] != 0 {
		t.Errorf("ColumnMedians[3] = %v, want 0", report.ColumnMedians[3])
	}
	for _, r := range records {
		if r.Rents[3] != 0 || r.Imputed[3] {
			t.Errorf("%s: Rents[3] = %v Imputed = %v, want 0/false", r.FIPS, r.Rents[3], r.Imputed[3])
		}
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{1500}, 1500},
		{"odd middle element", []float64{1200, 800, 1000}, 1000},
		{"even midpoint", []float64{1000, 800}, 900},
		{"four values", []float64{700, 1200, 800, 1000}, 900},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := median(tt.xs); got != tt.want {
				t.Errorf("median(%v) = %v, want %v", tt.xs, got, tt.want)
			}
		})
	}
}

func TestCleanRents_EvenCountMedianInterpolates(t *testing.T) {
	rows := []source.RawRentRow{
		rawRow("01001", "AL", "Autauga County", 800, 900, 800, 1300, 1500),
		rawRow("01003", "AL", "Baldwin County", 850, 950, 1000, 1400, 1600),
		rawRow("01005", "AL", "Barbour County", 700, 750, 0, 900, 950),
	}

	_, report := CleanRents(rows)
	if report.ColumnMedians[2] != 900 {
		t.Errorf("ColumnMedians[2] = %v, want 900 (midpoint of 800 and 1000)", report.ColumnMedians[2])
	}
}
