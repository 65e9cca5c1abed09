package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the classic configuration from the embedded YAML.
func DefaultSnakeConfig() SnakeConfig {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return fallbackSnakeConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

func fallbackSnakeConfig() SnakeConfig {
	return SnakeConfig{
		GridSize:           20,
		TickIntervalMs:     150,
		InitialBodyLength:  3,
		MaxFruitRejections: 64,
	}
}
