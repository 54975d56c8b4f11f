// Package source locates and parses the HUD rent and Treasury income workbooks.
package source

// RawRentRow is one row of the rent sheet before cleaning.
type RawRentRow struct {
	FIPS       string
	StateFIPS  string
	StateCode  string
	CountyName string
	MetroArea  string

	// Rents holds the parsed fmr_0..fmr_4 values. RentSet is false where
	// the cell was empty or not numeric.
	Rents   [5]float64
	RentSet [5]bool
}

// Probe records one directory checked during workbook discovery.
type Probe struct {
	Dir         string
	RentFound   bool
	IncomeFound bool
}

// Paths holds the resolved workbook locations.
// IncomePath is empty when the income workbook was not found anywhere;
// income lookups then report no data instead of failing.
type Paths struct {
	RentPath   string
	IncomePath string
	Probed     []Probe
}
