package pipeline

import (
	"sort"
	"strings"

	"github.com/sdhar150/crossing-counties/internal/model"

	"gonum.org/v1/gonum/stat"
)

// MonthsPerYear converts monthly rent to annual rent.
const MonthsPerYear = 12

// BenchmarkHousehold is the household size whose 40% income threshold
// anchors the affordability percentage.
const BenchmarkHousehold = 4

// NationalAverage returns the arithmetic mean of the given bedroom column
// across all cleaned counties.
func NationalAverage(records []model.RentRecord, bedrooms int) float64 {
	if len(records) == 0 || bedrooms < 0 || bedrooms > model.MaxBedrooms {
		return 0
	}
	vals := make([]float64, len(records))
	for i, r := range records {
		vals[i] = r.Rents[bedrooms]
	}
	return stat.Mean(vals, nil)
}

// MarketSummary computes national summary statistics for one bedroom column.
func MarketSummary(records []model.RentRecord, bedrooms int) model.MarketStats {
	ms := model.MarketStats{Bedrooms: bedrooms, Counties: len(records)}
	if len(records) == 0 || bedrooms < 0 || bedrooms > model.MaxBedrooms {
		return ms
	}

	vals := make([]float64, len(records))
	for i, r := range records {
		vals[i] = r.Rents[bedrooms]
	}
	sort.Float64s(vals)

	ms.Min = vals[0]
	ms.Max = vals[len(vals)-1]
	ms.Mean = stat.Mean(vals, nil)
	ms.Median = median(vals)
	return ms
}

// Affordability derives the comparison metrics for one county profile at a
// bedroom selection. The percent-of-income baseline is the 4-person 40%
// median income; it stays zero when the profile has no income data.
func Affordability(p model.CountyProfile, records []model.RentRecord, bedrooms int) model.Affordability {
	a := model.Affordability{
		Bedrooms:        bedrooms,
		MonthlyRent:     p.Rent.Rents[bedrooms],
		NationalAverage: NationalAverage(records, bedrooms),
	}
	a.AnnualRent = a.MonthlyRent * MonthsPerYear

	if a.NationalAverage > 0 {
		a.RatioToAverage = a.MonthlyRent / a.NationalAverage
	}

	if p.HasIncome() {
		a.BenchmarkIncome = p.Income.Income(BenchmarkHousehold)
		if a.BenchmarkIncome > 0 {
			a.PercentOfIncome = a.AnnualRent / a.BenchmarkIncome * 100
		}
	}

	return a
}

// StatesOf returns per-state aggregates sorted by state code.
func StatesOf(records []model.RentRecord, bedrooms int) []model.StateStats {
	byState := make(map[string]*model.StateStats)
	sums := make(map[string]float64)
	for _, r := range records {
		ss, ok := byState[r.StateCode]
		if !ok {
			ss = &model.StateStats{StateCode: r.StateCode}
			byState[r.StateCode] = ss
		}
		ss.Counties++
		sums[r.StateCode] += r.Rents[bedrooms]
	}

	out := make([]model.StateStats, 0, len(byState))
	for code, ss := range byState {
		if ss.Counties > 0 {
			ss.AvgRent = sums[code] / float64(ss.Counties)
		}
		out = append(out, *ss)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StateCode < out[j].StateCode })
	return out
}

// CountiesOf filters the cleaned table to one state, sorted by county name.
func CountiesOf(records []model.RentRecord, stateCode string) []model.RentRecord {
	code := strings.ToUpper(strings.TrimSpace(stateCode))
	var out []model.RentRecord
	for _, r := range records {
		if r.StateCode == code {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CountyName < out[j].CountyName })
	return out
}

// FindByFIPS returns the rent record for a county, zero-padding the query.
func FindByFIPS(records []model.RentRecord, fips string) (model.RentRecord, bool) {
	want := model.PadFIPS(fips, 5)
	for _, r := range records {
		if r.FIPS == want {
			return r, true
		}
	}
	return model.RentRecord{}, false
}

// SearchCounties returns records whose county name or FIPS contains the
// query, case-insensitively. An empty query returns everything.
func SearchCounties(records []model.RentRecord, query string) []model.RentRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}
	var out []model.RentRecord
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.CountyName), q) ||
			strings.Contains(strings.ToLower(r.StateCode), q) ||
			strings.Contains(r.FIPS, q) {
			out = append(out, r)
		}
	}
	return out
}
