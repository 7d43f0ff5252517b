package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "ducks.yaml"

// Load loads the Dutiful Ducks configuration.
// Search order: customPath -> ~/.ducks/configs/ducks.yaml -> ./configs/ducks.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (DucksConfig, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports where the config came from.
// The source is a file path or "embedded".
func LoadWithSource(customPath string) (DucksConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DucksConfig{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DucksConfig{}, "", fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or malformed files fall through to the next candidate.
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultDucksYAML)
	if err != nil {
		return DefaultDucksConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (DucksConfig, error) {
	cfg := DefaultDucksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DucksConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DucksConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ducks", "configs", filename)
}
