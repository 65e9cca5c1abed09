// Package config provides YAML-based configuration loading and validation
// for the snake game.
package config

import (
	"fmt"
	"time"
)

// Validation limits.
const (
	MinGridSize       = 2
	MaxGridSize       = 64
	MinTickIntervalMs = 10
)

// SnakeConfig contains the startup configuration of a game.
// It is fixed once the game is constructed.
type SnakeConfig struct {
	GridSize           int   `yaml:"gridSize"`           // Cells per side
	TickIntervalMs     int   `yaml:"tickIntervalMs"`     // Advance period
	InitialBodyLength  int   `yaml:"initialBodyLength"`  // Starting segment length
	Seed               int64 `yaml:"seed"`               // RNG seed, 0 = time-based
	MaxFruitRejections int   `yaml:"maxFruitRejections"` // Random draws before free-cell fallback
}

// TickInterval returns the advance period as a duration.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// Cells returns the total number of grid cells.
func (c SnakeConfig) Cells() int {
	return c.GridSize * c.GridSize
}

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	if c.GridSize < MinGridSize || c.GridSize > MaxGridSize {
		return fmt.Errorf("config: gridSize %d out of range [%d, %d]", c.GridSize, MinGridSize, MaxGridSize)
	}
	if c.TickIntervalMs < MinTickIntervalMs {
		return fmt.Errorf("config: tickIntervalMs %d below minimum %d", c.TickIntervalMs, MinTickIntervalMs)
	}
	if c.InitialBodyLength < 1 || c.InitialBodyLength > c.GridSize {
		return fmt.Errorf("config: initialBodyLength %d out of range [1, %d]", c.InitialBodyLength, c.GridSize)
	}
	if c.MaxFruitRejections < 0 {
		return fmt.Errorf("config: maxFruitRejections %d must not be negative", c.MaxFruitRejections)
	}
	return nil
}
