// Package config loads and saves crossing-counties configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all crossing-counties configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Workbooks  WorkbooksConfig  `toml:"workbooks"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultBedrooms int    `toml:"default_bedrooms"`
	DataDir         string `toml:"data_dir,omitempty"`
	Browser         string `toml:"browser,omitempty"`
}

// WorkbooksConfig names the input workbooks and where to look for them.
type WorkbooksConfig struct {
	RentFile    string   `toml:"rent_file"`
	RentSheet   string   `toml:"rent_sheet"`
	IncomeFile  string   `toml:"income_file"`
	SearchPaths []string `toml:"search_paths"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultBedrooms: 2,
		},
		Workbooks: WorkbooksConfig{
			RentFile:    "Fair_Market_Rents.xlsx",
			RentSheet:   "FY25_FMRs_revised",
			IncomeFile:  "Income_Data.xlsx",
			SearchPaths: []string{".", "data"},
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "crossing-counties")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "crossing-counties")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory, the last place
// workbook discovery looks.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "crossing-counties")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "crossing-counties")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
