package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sdhar150/crossing-counties/internal/config"
)

// Locate resolves the rent and income workbooks by probing an ordered list
// of candidate directories. dataDir (the --data-dir flag) is checked first
// when set, then the configured data dir, the configured search paths, and
// finally the XDG data directory.
//
// The rent workbook is required: Locate returns an error naming every
// probed directory when it is absent. The income workbook is optional.
func Locate(cfg config.Config, dataDir string) (Paths, error) {
	var candidates []string
	if dataDir != "" {
		candidates = append(candidates, dataDir)
	}
	if cfg.General.DataDir != "" {
		candidates = append(candidates, cfg.General.DataDir)
	}
	candidates = append(candidates, cfg.Workbooks.SearchPaths...)
	candidates = append(candidates, config.DataDir())

	var p Paths
	seen := make(map[string]struct{})
	for _, dir := range candidates {
		dir = filepath.Clean(dir)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}

		probe := Probe{Dir: dir}

		rentPath := filepath.Join(dir, cfg.Workbooks.RentFile)
		if fileExists(rentPath) {
			probe.RentFound = true
			if p.RentPath == "" {
				p.RentPath = rentPath
			}
		}

		incomePath := filepath.Join(dir, cfg.Workbooks.IncomeFile)
		if fileExists(incomePath) {
			probe.IncomeFound = true
			if p.IncomePath == "" {
				p.IncomePath = incomePath
			}
		}

		p.Probed = append(p.Probed, probe)
	}

	if p.RentPath == "" {
		dirs := make([]string, len(p.Probed))
		for i, pr := range p.Probed {
			dirs[i] = pr.Dir
		}
		return p, fmt.Errorf("rent workbook %s not found in any of: %s",
			cfg.Workbooks.RentFile, strings.Join(dirs, ", "))
	}

	return p, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
