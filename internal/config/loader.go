package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the user and local directories.
const FileName = "target-practice.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.target-practice/config.yaml ->
// ./configs/target-practice.yaml -> embedded default -> Default().
// Values missing from a file keep their defaults. Paths are expanded
// and the result is validated.
func Load(customPath string) (Config, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	cfg.ExpandPaths()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", cfg.Source, err)
	}
	return cfg, nil
}

func load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		path := ExpandHome(customPath)
		data, err := os.ReadFile(path)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		cfg.Source = path
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			cfg.Source = path
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Source = "embedded"
	return cfg, nil
}

// parse decodes data over the built-in defaults.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".target-practice", "config.yaml")
}

// Dir returns the per-user data directory, ~/.target-practice.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: home directory: %w", err)
	}
	return filepath.Join(home, ".target-practice"), nil
}
