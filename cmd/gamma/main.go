// gamma is a terminal implementation of the Gamma territorial board
// game for several players sharing one keyboard.
//
// Usage:
//
//	gamma                    - Read the setup line from stdin
//	gamma --preset duel      - Start an interactive game from a preset
//	gamma --presets <path>   - Use a custom presets file
//
// The setup line is "B width height players max_areas" for batch mode
// or "I width height players max_areas" for interactive mode. In batch
// mode the commands are:
//
//	m player x y    - place a piece
//	g player x y    - golden move: capture an opponent's cell
//	b player        - print the player's cell count
//	f player        - print how many cells the player can still take
//	q player        - print 1 if the player's golden move is usable
//	p               - print the board
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagPreset      string
	flagPresetsFile string
	flagQuiet       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gamma",
	Short: "Gamma - a multi-player territorial board game",
	Long: `Gamma is a territorial board game played on a rectangular grid.
Players take turns claiming cells; each player's territory may split
into at most a configured number of connected areas, and each player
holds a single golden move that captures an opponent's cell.

Without flags, gamma reads a setup line from stdin selecting batch
mode (B, a scriptable command protocol) or interactive mode (I, a
full-screen cursor-driven game).

Examples:
  echo "B 4 2 2 3" | gamma
  gamma --preset duel
  gamma --preset skirmish --presets my-presets.yaml`,
	RunE:         runRoot,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Start an interactive game from a named board preset")
	rootCmd.PersistentFlags().StringVar(&flagPresetsFile, "presets", "", "Path to a presets YAML file")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "Suppress startup diagnostics")

	rootCmd.AddCommand(presetsCmd)
}
