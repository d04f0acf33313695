package engine

import (
	"strconv"
	"strings"
)

// decimalWidth returns the number of decimal digits in n (1 for 0).
func decimalWidth(n uint32) int {
	w := 1
	for n >= 10 {
		n /= 10
		w++
	}
	return w
}

// maxOwnerOnBoard returns the highest player id occupying any cell,
// or 0 for an empty board.
func (g *Game) maxOwnerOnBoard() uint32 {
	var max uint32
	for i, n := uint32(0), g.board.NumCells(); i < n; i++ {
		if owner := g.board.AtIndex(i).Owner; owner > max {
			max = owner
		}
	}
	return max
}

// maxOwnerInColumn returns the highest player id occupying a cell in
// column x, or 0 if the column is entirely empty.
func (g *Game) maxOwnerInColumn(x uint32) uint32 {
	var max uint32
	for y := uint32(0); y < g.height; y++ {
		if owner := g.ownerAt(int64(x), int64(y)); owner > max {
			max = owner
		}
	}
	return max
}

// CellWidths returns the rendering width of column 0 and of every
// other column. While every on-board player id is a single digit both
// are 1 and cells pack tightly. Once a multi-digit id appears on the
// board, columns 1.. widen to the id width plus one space of left
// padding so adjacent ids do not run together; column 0 needs no
// padding and uses just the width of the widest id it contains.
func (g *Game) CellWidths() (first, rest int) {
	if g == nil {
		return 1, 1
	}
	idWidth := decimalWidth(g.maxOwnerOnBoard())
	if idWidth == 1 {
		return 1, 1
	}
	first = decimalWidth(g.maxOwnerInColumn(0))
	return first, idWidth + 1
}

// AppendCell appends the rendering of cell (x,y) to dst, right-aligned
// in fieldWidth characters: the owner's decimal id, or '.' when the
// cell is empty. It returns the extended buffer and the cell's owner
// (0 for empty), so a caller colouring per cell knows whose cell it
// just drew. Out-of-bounds coordinates append nothing.
func (g *Game) AppendCell(dst []byte, x, y uint32, fieldWidth int) ([]byte, uint32) {
	if g == nil || !g.isWithinBoard(int64(x), int64(y)) {
		return dst, 0
	}

	owner := g.ownerAt(int64(x), int64(y))
	text := "."
	if owner != 0 {
		text = strconv.FormatUint(uint64(owner), 10)
	}
	for pad := fieldWidth - len(text); pad > 0; pad-- {
		dst = append(dst, ' ')
	}
	return append(dst, text...), owner
}

// Board renders the whole board as text: height lines, each ending in
// '\n', highest row first, columns left to right. The caller owns the
// returned string. Returns "" for a nil Game.
func (g *Game) Board() string {
	if g == nil {
		return ""
	}

	first, rest := g.CellWidths()

	var sb strings.Builder
	sb.Grow((first + rest*int(g.width-1) + 1) * int(g.height))

	buf := make([]byte, 0, rest)
	for y := int64(g.height) - 1; y >= 0; y-- {
		for x := uint32(0); x < g.width; x++ {
			width := rest
			if x == 0 {
				width = first
			}
			buf, _ = g.AppendCell(buf[:0], x, uint32(y), width)
			sb.Write(buf)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
