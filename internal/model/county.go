// Package model defines domain types for county rent and income data.
package model

// MaxBedrooms is the largest bedroom count in the FMR data.
// Index 0 is a studio (efficiency) unit.
const MaxBedrooms = 4

// HouseholdSizes is the number of household-size buckets in the income data.
const HouseholdSizes = 8

// RentRecord holds the cleaned fair market rents for one county.
type RentRecord struct {
	FIPS       string // 5-digit county FIPS
	StateFIPS  string // 2-digit state FIPS
	StateCode  string // USPS code, e.g. "OH"
	CountyName string
	MetroArea  string

	// Rents is indexed by bedroom count, 0 (studio) through 4.
	Rents [MaxBedrooms + 1]float64

	// Imputed marks bedroom columns whose value was replaced by the
	// column median during cleaning.
	Imputed [MaxBedrooms + 1]bool
}

// IncomeRecord holds the 40% annual median income thresholds for one county,
// by household size 1 through 8.
type IncomeRecord struct {
	FIPS      string
	Locality  string
	StateCode string
	HUDArea   string

	Incomes [HouseholdSizes]float64
}

// Income returns the threshold for the given household size (1-8).
func (r IncomeRecord) Income(householdSize int) float64 {
	if householdSize < 1 || householdSize > HouseholdSizes {
		return 0
	}
	return r.Incomes[householdSize-1]
}

// CountyProfile is the query-time join of a county's rent and income data.
// Income is nil when the county has no row in the income workbook.
type CountyProfile struct {
	Rent   RentRecord
	Income *IncomeRecord
}

// HasIncome reports whether income data was found for this county.
func (p CountyProfile) HasIncome() bool {
	return p.Income != nil
}
