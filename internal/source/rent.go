package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Rent sheet columns, matched case-insensitively against the header row.
var rentColumns = []string{
	"fips", "state", "stusps", "countyname", "hud_area_name",
	"fmr_0", "fmr_1", "fmr_2", "fmr_3", "fmr_4",
}

// requiredRentColumns must all be present for a load to succeed.
var requiredRentColumns = []string{
	"fips", "stusps", "countyname",
	"fmr_0", "fmr_1", "fmr_2", "fmr_3", "fmr_4",
}

// LoadRentWorkbook reads the named sheet of the HUD FMR workbook and returns
// its rows unmodified apart from cell parsing. Cleaning (deduplication,
// imputation, zero-padding) happens downstream.
func LoadRentWorkbook(path, sheet string) ([]RawRentRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening rent workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	cols, err := mapRentHeader(rows[0])
	if err != nil {
		return nil, err
	}

	var out []RawRentRow
	for _, row := range rows[1:] {
		r := RawRentRow{
			FIPS:       cell(row, cols["fips"]),
			StateFIPS:  cell(row, cols["state"]),
			StateCode:  strings.ToUpper(cell(row, cols["stusps"])),
			CountyName: cell(row, cols["countyname"]),
			MetroArea:  cell(row, cols["hud_area_name"]),
		}
		for br := 0; br <= 4; br++ {
			raw := cell(row, cols[fmt.Sprintf("fmr_%d", br)])
			if v, ok := parseMoney(raw); ok {
				r.Rents[br] = v
				r.RentSet[br] = true
			}
		}
		out = append(out, r)
	}

	return out, nil
}

// mapRentHeader resolves column indices by header name. Optional columns
// map to -1; missing required columns are an error.
func mapRentHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(rentColumns))
	for _, name := range rentColumns {
		cols[name] = -1
	}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if _, ok := cols[name]; ok && cols[name] == -1 {
			cols[name] = i
		}
	}

	var missing []string
	for _, name := range requiredRentColumns {
		if cols[name] == -1 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("rent sheet missing columns: %s", strings.Join(missing, ", "))
	}

	return cols, nil
}

// cell returns the trimmed cell at idx, or "" when the row is short or the
// column is absent.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseMoney parses a dollar cell, tolerating "$" prefixes and thousands
// separators.
func parseMoney(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
