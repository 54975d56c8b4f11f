package model

// MarketStats holds national summary statistics for one bedroom column.
type MarketStats struct {
	Bedrooms int
	Counties int
	Mean     float64
	Median   float64
	Min      float64
	Max      float64
}

// Affordability holds the derived affordability metrics for one county
// at a given bedroom selection.
type Affordability struct {
	Bedrooms        int
	MonthlyRent     float64
	AnnualRent      float64
	NationalAverage float64
	RatioToAverage  float64

	// BenchmarkIncome is the 4-person 40% median income used as the
	// affordability baseline. Zero when no income data exists.
	BenchmarkIncome float64

	// PercentOfIncome is annual rent as a percentage of BenchmarkIncome.
	PercentOfIncome float64
}

// StateStats holds per-state aggregates over the cleaned rent table.
type StateStats struct {
	StateCode string
	Counties  int
	AvgRent   float64 // average rent for the selected bedroom column
}
