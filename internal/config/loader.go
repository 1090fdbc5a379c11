package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LocalPath is the project-local config file, relative to the working directory.
const LocalPath = "configs/sdlbase.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.sdlbase/config.yaml -> ./configs/sdlbase.yaml -> embedded default.
// Values missing from a file keep their defaults. A custom path that cannot
// be read or parsed is an error; the other locations are skipped silently.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data, formatOf(customPath))
		if err != nil {
			return Default(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data, "yaml"); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := Parse(data, "yaml"); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML, "yaml")
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// Parse decodes data in the given format ("yaml" or "toml") on top of Default().
func Parse(data []byte, format string) (Config, error) {
	cfg := Default()
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	case "yaml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported format %q", format)
	}
	return cfg, nil
}

// formatOf picks the decoder from a file extension. Anything that is not
// .toml is read as YAML.
func formatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}
	return "yaml"
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sdlbase", filename)
}
