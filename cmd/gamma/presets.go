package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamma/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available board presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.LoadPresets(flagPresetsFile)
		if err != nil {
			logger.Warn("could not load presets, using built-in defaults", "error", err)
			cfg = config.DefaultConfig()
		}

		names := cfg.Names()
		sort.Strings(names)

		for _, name := range names {
			p, _ := cfg.Get(name)
			fmt.Printf("%-12s %3dx%-3d %d players, max %d areas\n",
				name, p.Width, p.Height, p.Players, p.MaxAreas)
		}
		return nil
	},
}
