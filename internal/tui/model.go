// Package tui implements the interactive driver: a Bubble Tea model
// that moves a cursor over the board, applies moves for the current
// player, and advances turn order from the engine's queries.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gamma/internal/engine"
)

// Model is the Bubble Tea model for an interactive game.
type Model struct {
	game     *engine.Game
	cursorX  uint32
	cursorY  uint32
	current  uint32
	quitting bool
	ended    bool // no player can move anymore
}

// NewModel creates a model positioned at the bottom-left corner with
// player 1 to move.
func NewModel(game *engine.Game) Model {
	return Model{
		game:    game,
		current: 1,
	}
}

// Ended reports whether the game ran out of players able to move.
func (m Model) Ended() bool {
	return m.ended
}

// Init implements tea.Model. The game is purely input-driven, so
// there is no tick loop to start.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}
	return m, nil
}

// handleKey processes keyboard input. Space, g and c all end the
// current player's turn whether or not the engine accepted the move.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+d", "q":
		m.quitting = true
		return m, tea.Quit

	case "up":
		if m.cursorY+1 < m.game.BoardHeight() {
			m.cursorY++
		}
	case "down":
		if m.cursorY > 0 {
			m.cursorY--
		}
	case "right":
		if m.cursorX+1 < m.game.BoardWidth() {
			m.cursorX++
		}
	case "left":
		if m.cursorX > 0 {
			m.cursorX--
		}

	case " ":
		m.game.Move(m.current, m.cursorX, m.cursorY)
		return m.advanceTurn()
	case "g", "G":
		m.game.GoldenMove(m.current, m.cursorX, m.cursorY)
		return m.advanceTurn()
	case "c", "C":
		return m.advanceTurn()
	}

	return m, nil
}

// advanceTurn hands the turn to the next player in cyclic order who
// can still act: someone with free fields or an unspent, usable
// golden move. When nobody qualifies the game is over.
func (m Model) advanceTurn() (tea.Model, tea.Cmd) {
	players := m.game.PlayersNumber()

	for i := uint32(0); i < players; i++ {
		candidate := (m.current+i)%players + 1
		if m.game.FreeFields(candidate) > 0 || m.game.GoldenPossible(candidate) {
			m.current = candidate
			return m, nil
		}
	}

	m.ended = true
	m.quitting = true
	return m, tea.Quit
}

// View renders the board with the cursor highlighted, followed by the
// current player's standing.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderBoard() + m.renderStatus()
}

// Run starts the Bubble Tea program for the given game and reports
// whether the game ended on its own (as opposed to the player
// quitting).
func Run(game *engine.Game) (bool, error) {
	p := tea.NewProgram(
		NewModel(game),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.Ended(), nil
	}
	return false, nil
}
