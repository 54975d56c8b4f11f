package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sdhar150/crossing-counties/internal/config"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
}

func locateConfig(searchPaths ...string) config.Config {
	cfg := config.DefaultConfig()
	cfg.General.DataDir = ""
	cfg.Workbooks.SearchPaths = searchPaths
	return cfg
}

func TestLocate_FlagDirWinsOverSearchPaths(t *testing.T) {
	flagDir := t.TempDir()
	searchDir := t.TempDir()
	cfg := locateConfig(searchDir)

	touch(t, flagDir, cfg.Workbooks.RentFile)
	touch(t, searchDir, cfg.Workbooks.RentFile)

	paths, err := Locate(cfg, flagDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paths.RentPath != filepath.Join(flagDir, cfg.Workbooks.RentFile) {
		t.Errorf("RentPath = %q, want the flag dir copy", paths.RentPath)
	}
}

func TestLocate_IncomeOptional(t *testing.T) {
	dir := t.TempDir()
	cfg := locateConfig(dir)
	touch(t, dir, cfg.Workbooks.RentFile)

	paths, err := Locate(cfg, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paths.IncomePath != "" {
		t.Errorf("IncomePath = %q, want empty", paths.IncomePath)
	}
}

func TestLocate_WorkbooksInDifferentDirs(t *testing.T) {
	rentDir := t.TempDir()
	incomeDir := t.TempDir()
	cfg := locateConfig(rentDir, incomeDir)

	touch(t, rentDir, cfg.Workbooks.RentFile)
	touch(t, incomeDir, cfg.Workbooks.IncomeFile)

	paths, err := Locate(cfg, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paths.IncomePath != filepath.Join(incomeDir, cfg.Workbooks.IncomeFile) {
		t.Errorf("IncomePath = %q", paths.IncomePath)
	}
}

func TestLocate_RentMissingNamesProbedDirs(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	cfg := locateConfig(a, b)

	_, err := Locate(cfg, "")
	if err == nil {
		t.Fatal("expected error when the rent workbook is nowhere")
	}
	if !strings.Contains(err.Error(), a) || !strings.Contains(err.Error(), b) {
		t.Errorf("error %q should list every probed dir", err)
	}
}

func TestLocate_DirectoryDoesNotCount(t *testing.T) {
	dir := t.TempDir()
	cfg := locateConfig(dir)

	// A directory with the workbook's name is not a workbook.
	if err := os.Mkdir(filepath.Join(dir, cfg.Workbooks.RentFile), 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := Locate(cfg, ""); err == nil {
		t.Fatal("expected error when only a directory matches the name")
	}
}
