package config

import (
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DefaultBedrooms = 3
	cfg.General.DataDir = "/srv/hud"
	cfg.Workbooks.RentSheet = "FY26_FMRs"
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.DefaultBedrooms != 3 {
		t.Errorf("DefaultBedrooms = %d, want 3", loaded.General.DefaultBedrooms)
	}
	if loaded.General.DataDir != "/srv/hud" {
		t.Errorf("DataDir = %q", loaded.General.DataDir)
	}
	if loaded.Workbooks.RentSheet != "FY26_FMRs" {
		t.Errorf("RentSheet = %q", loaded.Workbooks.RentSheet)
	}
	if loaded.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q", loaded.Appearance.Theme)
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DefaultBedrooms != 2 {
		t.Errorf("DefaultBedrooms = %d, want default 2", cfg.General.DefaultBedrooms)
	}
	if cfg.Workbooks.RentFile != "Fair_Market_Rents.xlsx" {
		t.Errorf("RentFile = %q", cfg.Workbooks.RentFile)
	}
}

func TestConfigPath_UsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := filepath.Join(dir, "crossing-counties", "config.toml")
	if got := ConfigPath(); got != want {
		t.Errorf("ConfigPath() = %q, want %q", got, want)
	}
}
