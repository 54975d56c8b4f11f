package pipeline

import (
	"fmt"

	"github.com/sdhar150/crossing-counties/internal/config"
	"github.com/sdhar150/crossing-counties/internal/model"
	"github.com/sdhar150/crossing-counties/internal/source"
)

// LoadResult holds the output of the rent loading pipeline.
type LoadResult struct {
	Records []model.RentRecord
	Report  CleanReport
	Paths   source.Paths
}

// Load locates the workbooks, parses the rent sheet, and cleans it into the
// in-memory table. Runs once per process start; the TUI re-runs it on
// refresh.
func Load(cfg config.Config, dataDir string) (*LoadResult, error) {
	paths, err := source.Locate(cfg, dataDir)
	if err != nil {
		return nil, err
	}

	rows, err := source.LoadRentWorkbook(paths.RentPath, cfg.Workbooks.RentSheet)
	if err != nil {
		return nil, err
	}

	records, report := CleanRents(rows)
	if len(records) == 0 {
		return nil, fmt.Errorf("rent sheet %q cleaned to zero rows", cfg.Workbooks.RentSheet)
	}

	return &LoadResult{Records: records, Report: report, Paths: paths}, nil
}

// Profile joins one county's rent record with its income record at query
// time. The income workbook is opened lazily, only for the county's state
// sheet. A missing income workbook, sheet, or row yields a profile without
// income rather than an error.
func (lr *LoadResult) Profile(fips string) (model.CountyProfile, error) {
	rent, ok := FindByFIPS(lr.Records, fips)
	if !ok {
		return model.CountyProfile{}, fmt.Errorf("no county with FIPS %s", model.PadFIPS(fips, 5))
	}

	p := model.CountyProfile{Rent: rent}
	if lr.Paths.IncomePath == "" {
		return p, nil
	}

	inc, found, err := source.LookupIncome(lr.Paths.IncomePath, rent.StateCode, rent.FIPS)
	if err != nil {
		return p, err
	}
	if found {
		p.Income = &inc
	}
	return p, nil
}
