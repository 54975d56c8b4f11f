// Package pipeline cleans the raw rent rows and derives market statistics.
package pipeline

import (
	"sort"

	"github.com/sdhar150/crossing-counties/internal/model"
	"github.com/sdhar150/crossing-counties/internal/source"
)

// CleanReport summarizes what the cleaning pass did.
type CleanReport struct {
	RowsIn        int
	RowsOut       int
	DuplicateFIPS int
	MissingIdent  int    // rows dropped for missing county/state/fips
	Imputed       [5]int // per bedroom column
	ColumnMedians [5]float64
}

// CleanRents turns raw rent rows into the cleaned in-memory table.
// In order: drop duplicate fips keeping the first occurrence, treat rents
// <= 0 (or unparseable) as missing, impute missing values with the column
// median of valid entries, drop rows still missing county/state/fips, and
// zero-pad the FIPS codes.
func CleanRents(rows []source.RawRentRow) ([]model.RentRecord, CleanReport) {
	report := CleanReport{RowsIn: len(rows)}

	// Dedup on the unpadded fips so "1001" and "01001" collide.
	seen := make(map[string]struct{}, len(rows))
	var deduped []source.RawRentRow
	for _, r := range rows {
		key := model.PadFIPS(r.FIPS, 5)
		if key != "" {
			if _, dup := seen[key]; dup {
				report.DuplicateFIPS++
				continue
			}
			seen[key] = struct{}{}
		}
		deduped = append(deduped, r)
	}

	// Column medians over valid entries only.
	for br := 0; br <= model.MaxBedrooms; br++ {
		var valid []float64
		for _, r := range deduped {
			if r.RentSet[br] && r.Rents[br] > 0 {
				valid = append(valid, r.Rents[br])
			}
		}
		report.ColumnMedians[br] = median(valid)
	}

	var out []model.RentRecord
	for _, r := range deduped {
		if r.CountyName == "" || r.StateCode == "" || r.FIPS == "" {
			report.MissingIdent++
			continue
		}

		rec := model.RentRecord{
			FIPS:       model.PadFIPS(r.FIPS, 5),
			StateFIPS:  model.PadFIPS(r.StateFIPS, 2),
			StateCode:  r.StateCode,
			CountyName: r.CountyName,
			MetroArea:  r.MetroArea,
		}
		for br := 0; br <= model.MaxBedrooms; br++ {
			if r.RentSet[br] && r.Rents[br] > 0 {
				rec.Rents[br] = r.Rents[br]
				continue
			}
			// Missing or sentinel value: impute the column median. A column
			// with no valid entries at all keeps zero.
			if report.ColumnMedians[br] > 0 {
				rec.Rents[br] = report.ColumnMedians[br]
				rec.Imputed[br] = true
				report.Imputed[br]++
			}
		}

		out = append(out, rec)
	}

	report.RowsOut = len(out)
	return out, report
}

// median returns the median of xs, or 0 for an empty slice. An even count
// takes the midpoint of the two middle values. xs is sorted in place.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sort.Float64s(xs)
	mid := len(xs) / 2
	if len(xs)%2 == 1 {
		return xs[mid]
	}
	return (xs[mid-1] + xs[mid]) / 2
}
