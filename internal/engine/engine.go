// Package engine implements the Gamma game-state engine: the board,
// per-player statistics, the ordinary and golden move, the query
// layer, and the text renderer. It is the sole surface the drivers
// (batch, interactive) call.
package engine

import (
	"errors"

	"github.com/vovakirdan/gamma/internal/board"
	"github.com/vovakirdan/gamma/internal/dsu"
	"github.com/vovakirdan/gamma/internal/player"
)

// ErrOutOfMemory is returned by New when the board cannot be
// allocated (see board.ErrOutOfMemory).
var ErrOutOfMemory = errors.New("engine: out of memory")

// Game is the engine façade: it owns the board, the disjoint-set
// forest tracking area membership, and the player table.
type Game struct {
	width, height uint32
	maxAreas      uint32
	occupied      uint64

	board   *board.Board
	forest  *dsu.Forest
	players *player.Table
}

// New constructs a game. width, height, playersNum and maxAreas must
// all be at least 1; on any invalid argument, or on allocation
// failure, New returns (nil, error) and never a partially built Game.
func New(width, height, playersNum, maxAreas uint32) (*Game, error) {
	if width == 0 || height == 0 || playersNum == 0 || maxAreas == 0 {
		return nil, errors.New("engine: invalid arguments")
	}

	b, err := board.New(width, height)
	if err != nil {
		return nil, ErrOutOfMemory
	}

	return &Game{
		width:    width,
		height:   height,
		maxAreas: maxAreas,
		board:    b,
		forest:   dsu.New(b.NumCells()),
		players:  player.NewTable(playersNum),
	}, nil
}

// Close releases the game's resources. It is idempotent and safe to
// call on a nil Game.
func (g *Game) Close() error {
	if g == nil {
		return nil
	}
	g.board = nil
	g.forest = nil
	g.players = nil
	return nil
}

// BoardWidth returns the board's width, or 0 for a nil Game.
func (g *Game) BoardWidth() uint32 {
	if g == nil {
		return 0
	}
	return g.width
}

// BoardHeight returns the board's height, or 0 for a nil Game.
func (g *Game) BoardHeight() uint32 {
	if g == nil {
		return 0
	}
	return g.height
}

// PlayersNumber returns the number of players, or 0 for a nil Game.
func (g *Game) PlayersNumber() uint32 {
	if g == nil {
		return 0
	}
	return g.players.Len()
}

// cellIndex returns the flat cell index for (x,y) as uint32 inputs,
// widening to the board's signed-coordinate Index underneath.
func (g *Game) cellIndex(x, y uint32) (uint32, bool) {
	return g.board.Index(int64(x), int64(y))
}

// isWithinBoard takes signed coordinates so callers probing x-1/y-1
// near the edge never need a separate guard.
func (g *Game) isWithinBoard(x, y int64) bool {
	return g.board.InBounds(x, y)
}

// neighbors returns the 4-neighborhood of (x,y) in the canonical
// order from board.Offsets.
func (g *Game) neighbors(x, y int64) [4]struct{ X, Y int64 } {
	var out [4]struct{ X, Y int64 }
	for i, off := range board.Offsets {
		out[i] = struct{ X, Y int64 }{x + off.DX, y + off.DY}
	}
	return out
}

// ownerAt returns the owner of (x,y), or 0 if out of bounds or empty.
func (g *Game) ownerAt(x, y int64) uint32 {
	c, ok := g.board.At(x, y)
	if !ok {
		return 0
	}
	return c.Owner
}

// belongsToPlayer reports whether (x,y) is on the board, occupied,
// and owned by p.
func (g *Game) belongsToPlayer(x, y int64, p uint32) bool {
	c, ok := g.board.At(x, y)
	return ok && !c.Empty() && c.Owner == p
}

// hasNeighbor reports whether any of the 4-neighbors of (x,y) is
// owned by p.
func (g *Game) hasNeighbor(x, y int64, p uint32) bool {
	for _, n := range g.neighbors(x, y) {
		if g.belongsToPlayer(n.X, n.Y, p) {
			return true
		}
	}
	return false
}

// wouldExceedAreasLimit reports whether placing player at (x,y) would
// push them past maxAreas: they are already at the limit and the new
// cell would start a brand new area (no neighbor already belongs to
// them).
func (g *Game) wouldExceedAreasLimit(x, y int64, p uint32) bool {
	stats, _ := g.players.Get(p)
	if stats.Areas < g.maxAreas {
		return false
	}
	return !g.hasNeighbor(x, y, p)
}

// newBorderEmptyCount counts empty neighbors of (x,y) that have no
// neighbor already owned by p: cells that become border-empty for p
// as a consequence of placing at (x,y).
func (g *Game) newBorderEmptyCount(x, y int64, p uint32) int {
	count := 0
	for _, n := range g.neighbors(x, y) {
		c, ok := g.board.At(n.X, n.Y)
		if !ok || !c.Empty() {
			continue
		}
		if !g.hasNeighbor(n.X, n.Y, p) {
			count++
		}
	}
	return count
}

// unionWithMonochromeNeighbors unions (x,y) with every 4-neighbor
// already owned by the same player as (x,y), returning the number of
// unions that actually merged two previously disjoint sets.
func (g *Game) unionWithMonochromeNeighbors(x, y int64) int {
	idx, ok := g.board.Index(x, y)
	if !ok {
		return 0
	}
	owner := g.board.AtIndex(idx).Owner
	merged := 0
	for _, n := range g.neighbors(x, y) {
		if !g.belongsToPlayer(n.X, n.Y, owner) {
			continue
		}
		ni, _ := g.board.Index(n.X, n.Y)
		if g.forest.Union(idx, ni) {
			merged++
		}
	}
	return merged
}
