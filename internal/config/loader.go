package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceBase is reported by Load when no file was found and the base
// configuration is used unchanged.
const SourceBase = "preset"

// Load reads the snake configuration on top of base.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> base.
// Keys absent from the file keep their base values. The returned string names
// the file that was applied. The result is validated.
func Load(customPath string, base SnakeConfig) (SnakeConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data, base)
		if err != nil {
			return base, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return base, "", fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{"configs/snake.yaml"}
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	// Unreadable or malformed optional files are skipped
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := decode(data, base)
		if err != nil {
			continue
		}
		if err := cfg.Validate(); err != nil {
			return base, "", fmt.Errorf("%s: %w", path, err)
		}
		return cfg, path, nil
	}

	if err := base.Validate(); err != nil {
		return base, "", err
	}
	return base, SourceBase, nil
}

// decode unmarshals data over a copy of base, rejecting unknown keys.
func decode(data []byte, base SnakeConfig) (SnakeConfig, error) {
	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// An empty document leaves the base untouched
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return base, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
