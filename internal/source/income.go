package source

import (
	"fmt"
	"strings"

	"github.com/sdhar150/crossing-counties/internal/model"

	"github.com/xuri/excelize/v2"
)

// Income workbook layout: one sheet per state named by USPS code.
// Row 1 is a title, row 2 the headers, row 3 a statewide aggregate;
// county rows start at row 4. Only the first 12 columns matter:
// locality, state, HUD area, fips, then incomes for household sizes 1-8.
const (
	incomeDataStart = 3 // 0-based index of the first county row
	incomeColFIPS   = 3
	incomeColFirst  = 4
)

// LoadStateIncome loads and cleans the income rows for one state.
// A missing sheet is not an error: the caller sees an empty result,
// surfaced to the user as "no data".
func LoadStateIncome(path, stateCode string) ([]model.IncomeRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening income workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := strings.ToUpper(strings.TrimSpace(stateCode))
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) <= incomeDataStart {
		return nil, nil
	}

	var out []model.IncomeRecord
	for _, row := range rows[incomeDataStart:] {
		fips := model.PadFIPS(cell(row, incomeColFIPS), 5)
		if fips == "" {
			continue
		}

		rec := model.IncomeRecord{
			FIPS:      fips,
			Locality:  cell(row, 0),
			StateCode: strings.ToUpper(cell(row, 1)),
			HUDArea:   cell(row, 2),
		}

		any := false
		for i := 0; i < model.HouseholdSizes; i++ {
			if v, ok := parseMoney(cell(row, incomeColFirst+i)); ok && v > 0 {
				rec.Incomes[i] = v
				any = true
			}
		}
		if !any {
			continue
		}

		out = append(out, rec)
	}

	return out, nil
}

// LookupIncome loads the state sheet and filters to a single county.
// Returns ok=false when the sheet or the fips is absent.
func LookupIncome(path, stateCode, fips string) (model.IncomeRecord, bool, error) {
	records, err := LoadStateIncome(path, stateCode)
	if err != nil {
		return model.IncomeRecord{}, false, err
	}

	want := model.PadFIPS(fips, 5)
	for _, rec := range records {
		if rec.FIPS == want {
			return rec, true, nil
		}
	}
	return model.IncomeRecord{}, false, nil
}
