package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board presets",
	Long:  `Shows the board presets that can be passed to 'snake play'.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	presets := registry.List()

	fmt.Println("Available presets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-14s  %5s  %6s\n", maxIDLen, "ID", "Title", "Tick", "Length")
	fmt.Printf("  %-*s  %-14s  %5s  %6s\n", maxIDLen, "--", "-----", "----", "------")

	for _, p := range presets {
		marker := ""
		if p.ID == registry.DefaultPreset {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %-14s  %3dms  %6d%s\n", maxIDLen, p.ID, p.Title,
			p.Config.TickIntervalMs, p.Config.InitialBodyLength, marker)
	}

	fmt.Println()
	fmt.Println("Run 'snake play <id>' to play on a preset.")
}
