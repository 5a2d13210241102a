package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load discovers a config file, merges it with defaults, applies environment
// variable overrides, validates the result, and returns the final config.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom loads config using the given directory as the root for file
// discovery. This is the testable entry point; Load() calls it with os.Getwd().
func LoadFrom(dir string) (*Config, error) {
	path, err := discoverConfigPath(dir)
	if err != nil {
		return nil, fmt.Errorf("config discovery: %w", err)
	}
	return build(path)
}

// LoadFile loads config from an explicit path, skipping discovery. The file
// must exist.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	return build(path)
}

func build(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
		resolvePaths(&cfg, filepath.Dir(path))
	}

	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigPath searches the discovery chain and returns the first config
// file that exists. Returns empty string if none found (defaults-only mode).
func discoverConfigPath(dir string) (string, error) {
	// 1. ./dogsearch.yaml (relative to dir)
	local := filepath.Join(dir, "dogsearch.yaml")
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	// 2. ~/.config/dogsearch/config.yaml
	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil // can't resolve home, skip
	}
	user := filepath.Join(home, ".config", "dogsearch", "config.yaml")
	if _, err := os.Stat(user); err == nil {
		return user, nil
	}

	return "", nil
}

// loadFromFile reads and unmarshals a YAML config file.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}

// merge deep-merges override onto base. Scalar fields override when non-zero.
// Pointer-to-bool fields override when non-nil.
func merge(base *Config, override *Config) {
	// Source
	if override.Source.Kind != "" {
		base.Source.Kind = override.Source.Kind
	}
	if override.Source.Path != "" {
		base.Source.Path = override.Source.Path
	}

	// UI
	if override.UI.Placeholder != "" {
		base.UI.Placeholder = override.UI.Placeholder
	}
	if override.UI.CharLimit != 0 {
		base.UI.CharLimit = override.UI.CharLimit
	}
	if override.UI.FilterResults != nil {
		base.UI.FilterResults = override.UI.FilterResults
	}
	if override.UI.ShowCount != nil {
		base.UI.ShowCount = override.UI.ShowCount
	}

	// Log
	if override.Log.File != "" {
		base.Log.File = override.Log.File
	}
}

// resolvePaths makes relative paths in a config file relative to the file's
// own directory.
func resolvePaths(cfg *Config, dir string) {
	if cfg.Source.Path != "" && !filepath.IsAbs(cfg.Source.Path) {
		cfg.Source.Path = filepath.Join(dir, cfg.Source.Path)
	}
	if cfg.Log.File != "" && !filepath.IsAbs(cfg.Log.File) {
		cfg.Log.File = filepath.Join(dir, cfg.Log.File)
	}
}

// applyEnvOverrides applies DOGSEARCH_* environment variables on top of the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DOGSEARCH_SOURCE"); v != "" {
		cfg.Source.Kind = v
	}
	if v := os.Getenv("DOGSEARCH_SOURCE_PATH"); v != "" {
		cfg.Source.Path = v
		if os.Getenv("DOGSEARCH_SOURCE") == "" {
			cfg.Source.Kind = SourceFile
		}
	}
	if v := os.Getenv("DOGSEARCH_FILTER"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UI.FilterResults = boolPtr(b)
		} else {
			fmt.Fprintf(os.Stderr, "warning: DOGSEARCH_FILTER=%q is not a valid boolean, ignoring\n", v)
		}
	}
	if v := os.Getenv("DOGSEARCH_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
