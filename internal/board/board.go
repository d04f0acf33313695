// Package board provides the dense 2-D cell grid the engine places
// pieces on: allocation, bounds checking, and neighbor access.
package board

import (
	"errors"
	"math"
)

// ErrOutOfMemory is returned by New when the requested board would
// need more cells than MaxCells. width*height is widened to uint64
// before the check so a 32-bit overflow can never hide an oversized
// board.
var ErrOutOfMemory = errors.New("board: out of memory")

// MaxCells bounds the size of a board this implementation will
// allocate. It is far larger than any board a terminal or a batch
// test fixture will plausibly use, and exists only to give
// New a real failure path to exercise instead of letting an
// enormous width*height silently exhaust the process.
const MaxCells = 1 << 28

// Cell is one square of the grid. Owner 0 means the cell is empty;
// union-find bookkeeping for area membership lives in a same-indexed
// dsu.Forest owned by the caller, not in Cell itself.
type Cell struct {
	Owner uint32
}

// Empty reports whether the cell is unowned.
func (c Cell) Empty() bool {
	return c.Owner == 0
}

// Offset is a neighbor displacement. Offsets lists the 4-neighborhood
// in the canonical order every neighbor iteration over the board uses,
// so ordering and tie-break rules stay deterministic.
type Offset struct{ DX, DY int64 }

var Offsets = [4]Offset{
	{DX: 1, DY: 0},
	{DX: -1, DY: 0},
	{DX: 0, DY: 1},
	{DX: 0, DY: -1},
}

// Board is a fixed width*height dense grid of cells.
type Board struct {
	Width, Height uint32
	cells         []Cell
}

// New allocates a Width x Height board with every cell empty.
func New(width, height uint32) (*Board, error) {
	total := uint64(width) * uint64(height)
	if total == 0 || total > MaxCells || total > uint64(math.MaxInt32) {
		return nil, ErrOutOfMemory
	}
	return &Board{
		Width:  width,
		Height: height,
		cells:  make([]Cell, total),
	}, nil
}

// InBounds reports whether (x,y) lies on the board. Coordinates are
// signed so callers may probe x-1/y-1 from the edge without a
// separate guard.
func (b *Board) InBounds(x, y int64) bool {
	return x >= 0 && y >= 0 && x < int64(b.Width) && y < int64(b.Height)
}

// Index returns the flat cell index for (x,y) and whether it is on
// the board.
func (b *Board) Index(x, y int64) (uint32, bool) {
	if !b.InBounds(x, y) {
		return 0, false
	}
	return uint32(y)*b.Width + uint32(x), true
}

// At returns the cell at (x,y) and whether it was in bounds. A call
// on an out-of-bounds position returns the zero Cell and false.
func (b *Board) At(x, y int64) (Cell, bool) {
	i, ok := b.Index(x, y)
	if !ok {
		return Cell{}, false
	}
	return b.cells[i], true
}

// AtIndex returns the cell at the given flat index.
func (b *Board) AtIndex(i uint32) Cell {
	return b.cells[i]
}

// SetOwner assigns owner to the cell at (x,y). An out-of-bounds
// coordinate leaves the board unchanged.
func (b *Board) SetOwner(x, y int64, owner uint32) {
	i, ok := b.Index(x, y)
	if !ok {
		return
	}
	b.cells[i] = Cell{Owner: owner}
}

// NumCells returns the total number of cells on the board.
func (b *Board) NumCells() uint32 {
	return uint32(len(b.cells))
}

// XY decomposes a flat index back into board coordinates.
func (b *Board) XY(i uint32) (x, y int64) {
	return int64(i % b.Width), int64(i / b.Width)
}
