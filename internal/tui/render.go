package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cursorStyle highlights the cell under the cursor.
var cursorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("1")).
	Background(lipgloss.Color("13"))

// playerStyles colours pieces by owner so neighboring territories are
// easy to tell apart. Ids past the palette wrap around.
var playerStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// renderBoard draws the grid with per-player colours and the cursor
// cell highlighted, highest row first.
func (m Model) renderBoard() string {
	first, rest := m.game.CellWidths()

	var sb strings.Builder
	buf := make([]byte, 0, rest)

	height := m.game.BoardHeight()
	width := m.game.BoardWidth()
	for row := uint32(0); row < height; row++ {
		y := height - 1 - row
		for x := uint32(0); x < width; x++ {
			fieldWidth := rest
			if x == 0 {
				fieldWidth = first
			}

			var owner uint32
			buf, owner = m.game.AppendCell(buf[:0], x, y, fieldWidth)
			cell := string(buf)

			switch {
			case x == m.cursorX && y == m.cursorY:
				sb.WriteString(cursorStyle.Render(cell))
			case owner != 0:
				style := playerStyles[(owner-1)%uint32(len(playerStyles))]
				sb.WriteString(style.Render(cell))
			default:
				sb.WriteString(cell)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// renderStatus draws the current player's standing below the board.
func (m Model) renderStatus() string {
	golden := ""
	if m.game.GoldenPossible(m.current) {
		golden = "  golden move available (g)"
	}
	return fmt.Sprintf("Player %d%s\nFree fields %d\nBusy fields %d\n%s",
		m.current,
		golden,
		m.game.FreeFields(m.current),
		m.game.BusyFields(m.current),
		statusStyle.Render("arrows: move  space: place  g: golden  c: skip  q: quit"),
	)
}
