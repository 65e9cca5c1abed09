package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagConfig   string
	flagGridSize int
	flagTick     int
	flagLength   int
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play snake",
	Long: `Start a game on the given board preset (default: classic).

Controls:
  Arrows/WASD/hjkl  - Steer (any direction also starts the game)
  R                 - Restart (after game over or a win)
  ?                 - Toggle full help
  Q/Ctrl+C          - Quit

Configuration is read from --config, ~/.snake/config.yaml or
./configs/snake.yaml, on top of the preset. Flags override the file.

Examples:
  snake play
  snake play tiny
  snake play --grid-size 12 --length 4
  snake play --tick 90 --seed 7
  snake play --config ./my-snake.yaml --log-file snake.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addConfigFlags(playCmd)
}

// addConfigFlags registers the flags that shape the game configuration.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().IntVar(&flagGridSize, "grid-size", 0, "Cells per side (overrides config)")
	cmd.Flags().IntVar(&flagTick, "tick", 0, "Advance interval in milliseconds (overrides config)")
	cmd.Flags().IntVar(&flagLength, "length", 0, "Initial snake length (overrides config)")
}

// resolveConfig builds the effective configuration for a preset:
// preset -> config file -> flags. Returns the config and the file applied.
func resolveConfig(cmd *cobra.Command, args []string) (config.SnakeConfig, string, error) {
	presetID := registry.DefaultPreset
	if len(args) > 0 {
		presetID = args[0]
	}

	if !registry.Exists(presetID) {
		return config.SnakeConfig{}, "", fmt.Errorf("unknown preset %q", presetID)
	}
	preset, err := registry.Get(presetID)
	if err != nil {
		return config.SnakeConfig{}, "", err
	}

	cfg, source, err := config.Load(flagConfig, preset.Config)
	if err != nil {
		return cfg, "", err
	}

	if cmd.Flags().Changed("grid-size") {
		cfg.GridSize = flagGridSize
	}
	if cmd.Flags().Changed("tick") {
		cfg.TickIntervalMs = flagTick
	}
	if cmd.Flags().Changed("length") {
		cfg.InitialBodyLength = flagLength
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	return cfg, source, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, source, err := resolveConfig(cmd, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available presets.")
		os.Exit(1)
	}
	logger.Debug("configuration loaded", "source", source, "grid", cfg.GridSize,
		"tick_ms", cfg.TickIntervalMs, "length", cfg.InitialBodyLength)

	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// Warn early if the board will not fit; the game shows a notice until resized
	needW, needH := tui.BoardSize(cfg.GridSize)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH+1) {
		logger.Warn("terminal smaller than the board", "have", fmt.Sprintf("%dx%d", w, h),
			"need", fmt.Sprintf("%dx%d", needW, needH+1))
	}

	// Stderr shares the terminal with the alt screen
	if flagLogFile == "" {
		logger.SetOutput(io.Discard)
	}

	game := snake.New(cfg)
	if err := tui.Run(game, cfg.TickInterval(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
