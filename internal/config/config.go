/*
PURPOSE:
  Defines the configuration structure and loading logic for the
  solver-stats CLI: which fields go into the table, where exports land.

REQUIREMENTS:
  User-specified:
  - Allow configuring the tabular field list without recompiling.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Sensible defaults must work with no config file at all.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default file is not an error (falls back to defaults).

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Field names in the config use the same vocabulary as the tabular
    renderer (status, iter, neval_obj, ...); validation happens at
    render time, not here.

USAGE:
  cfg, err := config.Load("solver_stats.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new output options are needed, add to Config struct and update
    Load() defaults.

RELATED FILES:
  - internal/cli/root.go
  - internal/engine/render.go

MAINTENANCE:
  - Update when adding new output tuning parameters.
*/

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for the solver-stats CLI.
type Config struct {
	// Fields is the ordered list of column names for tabular output.
	Fields []string `yaml:"fields"`
	// OutputDir and CSVFile control the optional CSV export of render.
	OutputDir string `yaml:"output_dir"`
	CSVFile   string `yaml:"csv_file"`
	// FullReport additionally prints the multi-line report per record.
	FullReport bool `yaml:"full_report"`
	// LogLevel: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Fields:     []string{"status", "iter", "neval_obj", "neval_grad", "objective", "dual_feas", "elapsed_time"},
		OutputDir:  ".",
		CSVFile:    "",
		FullReport: false,
		LogLevel:   "info",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		// Search for defaults
		defaults := []string{"solver_stats.yaml", "solver-stats.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			// No config file found, return default
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
