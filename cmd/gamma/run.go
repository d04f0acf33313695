package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gamma/internal/batchio"
	"github.com/vovakirdan/gamma/internal/config"
	"github.com/vovakirdan/gamma/internal/engine"
	"github.com/vovakirdan/gamma/internal/tui"
)

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "gamma",
	})
	if flagQuiet {
		logger.SetLevel(log.ErrorLevel)
	}
	return logger
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	if flagPreset != "" {
		return runFromPreset(logger)
	}

	sc := bufio.NewScanner(os.Stdin)
	var line uint64
	var header batchio.Header
	var game *engine.Game
	for game == nil {
		var ok bool
		header, ok = batchio.ReadHeader(sc, &line, os.Stderr)
		if !ok {
			// Input ended before a valid setup line; not an error.
			return nil
		}
		g, err := engine.New(header.Width, header.Height, header.Players, header.MaxAreas)
		if err != nil {
			// The engine rejected the parameters (a board too large to
			// allocate): report the line and read the next one.
			fmt.Fprintf(os.Stderr, "ERROR %d\n", line)
			continue
		}
		game = g
	}
	defer game.Close()

	if header.Mode == 'B' {
		batchio.Run(game, sc, &line, os.Stdout, os.Stderr)
		return nil
	}
	return runInteractive(game, logger)
}

// runFromPreset starts an interactive game directly from a named
// preset, skipping the stdin setup line.
func runFromPreset(logger *log.Logger) error {
	cfg, err := config.LoadPresets(flagPresetsFile)
	if err != nil {
		logger.Warn("could not load presets, using built-in defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	preset, ok := cfg.Get(flagPreset)
	if !ok {
		return fmt.Errorf("unknown preset %q (known: %v)", flagPreset, cfg.Names())
	}
	if !preset.Valid() {
		return fmt.Errorf("preset %q has out-of-range parameters: %+v", flagPreset, preset)
	}

	logger.Info("starting game",
		"preset", flagPreset,
		"board", fmt.Sprintf("%dx%d", preset.Width, preset.Height),
		"players", preset.Players,
		"max_areas", preset.MaxAreas)

	game, err := engine.New(preset.Width, preset.Height, preset.Players, preset.MaxAreas)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}
	defer game.Close()

	return runInteractive(game, logger)
}

func runInteractive(game *engine.Game, logger *log.Logger) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal on stdin")
	}

	// Warn when the board will not fit; the game is still playable by
	// resizing the terminal.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		first, rest := game.CellWidths()
		needW := first + rest*int(game.BoardWidth()-1)
		needH := int(game.BoardHeight()) + 4 // board plus status lines
		if needW > w || needH > h {
			logger.Warn("board is larger than the terminal",
				"need", fmt.Sprintf("%dx%d", needW, needH),
				"have", fmt.Sprintf("%dx%d", w, h))
		}
	}

	ended, err := tui.Run(game)
	if err != nil {
		return fmt.Errorf("interactive mode failed: %w", err)
	}

	// Print the final position on the normal screen buffer, whether
	// the game finished or the player quit early.
	fmt.Print(game.Board())
	if ended {
		printSummary(game)
	}
	return nil
}

// printSummary lists every player's final cell count.
func printSummary(game *engine.Game) {
	for p := uint32(1); p <= game.PlayersNumber(); p++ {
		fmt.Printf("Player %d: %d fields\n", p, game.BusyFields(p))
	}
}
