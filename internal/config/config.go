// =============================================================================
// Catalog Converter - Configuration Module
// =============================================================================
//
// This module loads the tool configuration. The original pipeline scripts
// hard-coded every path; here the paths live in a YAML config file, with
// the built-in defaults reproducing the original layout relative to the
// project root. Command-line flags override individual values on top of
// whatever the file provides.
//
// CONFIGURATION FILE (config.yaml):
//
//   log_level: info
//   split:
//     workbook_path: GameData.xlsx
//     output_dir: Assets/_Temp/CSV
//   merge:
//     catalog_path: Assets/file_catalog_updated.csv
//     workbook_path: "Assets/Starkiller Base Command - File Catalog Updated.xlsx"
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the full tool configuration.
type Config struct {
	// LogLevel controls the verbosity of diagnostic logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Split holds the settings for the split command.
	Split SplitConfig `yaml:"split"`

	// Merge holds the settings for the merge command.
	Merge MergeConfig `yaml:"merge"`
}

// SplitConfig holds the settings for the workbook-to-CSV converter.
type SplitConfig struct {
	// WorkbookPath is the XLSX workbook to split.
	// Default: "GameData.xlsx"
	WorkbookPath string `yaml:"workbook_path"`

	// OutputDir is the directory that receives one CSV per sheet. It is
	// created (with parents) if missing.
	// Default: "Assets/_Temp/CSV"
	OutputDir string `yaml:"output_dir"`
}

// MergeConfig holds the settings for the catalog-to-workbook converter.
type MergeConfig struct {
	// CatalogPath is the catalog CSV to merge. It must contain a column
	// literally named "Category".
	// Default: "Assets/file_catalog_updated.csv"
	CatalogPath string `yaml:"catalog_path"`

	// WorkbookPath is the XLSX workbook to create.
	// Default: "Assets/Starkiller Base Command - File Catalog Updated.xlsx"
	WorkbookPath string `yaml:"workbook_path"`
}

// =============================================================================
// LOADING FUNCTIONS
// =============================================================================

// Default returns the built-in configuration, matching the paths the
// original pipeline scripts used.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from a YAML file and fills in defaults for
// any unset values. The file must exist; callers that treat the config
// file as optional should fall back to Default when it is absent.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Split.WorkbookPath == "" {
		cfg.Split.WorkbookPath = "GameData.xlsx"
	}
	if cfg.Split.OutputDir == "" {
		cfg.Split.OutputDir = "Assets/_Temp/CSV"
	}
	if cfg.Merge.CatalogPath == "" {
		cfg.Merge.CatalogPath = "Assets/file_catalog_updated.csv"
	}
	if cfg.Merge.WorkbookPath == "" {
		cfg.Merge.WorkbookPath = "Assets/Starkiller Base Command - File Catalog Updated.xlsx"
	}
}

// validate rejects configurations the converters cannot act on.
func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}
	return nil
}
