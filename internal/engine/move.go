package engine

// Move attempts to place player's piece at (x,y). Returns true iff
// the move was legal and applied; on any invalid argument or illegal
// move, the game is left unchanged and Move returns false.
func (g *Game) Move(p, x, y uint32) bool {
	if g == nil || !g.players.Valid(p) {
		return false
	}
	ix, iy := int64(x), int64(y)
	if !g.isWithinBoard(ix, iy) {
		return false
	}

	idx, _ := g.board.Index(ix, iy)
	cell := g.board.AtIndex(idx)
	if !cell.Empty() {
		return false
	}
	if g.wouldExceedAreasLimit(ix, iy, p) {
		return false
	}

	stats, _ := g.players.Get(p)

	delta := g.newBorderEmptyCount(ix, iy, p)

	g.board.SetOwner(ix, iy, p)
	g.forest.Reset(idx)

	g.occupied++
	stats.OccupiedFields++
	stats.Areas++

	stats.Areas -= uint32(g.unionWithMonochromeNeighbors(ix, iy))

	stats.BorderEmptyFields += uint64(delta)

	g.decrementNeighborBorders(ix, iy)

	return true
}

// decrementNeighborBorders decrements border_empty_fields by 1 for
// every distinct player owning a neighbor of (x,y): that cell just
// stopped being an empty neighbor of theirs. De-duplicated by player
// id, not by cell, so a player touching (x,y) twice loses only one.
func (g *Game) decrementNeighborBorders(x, y int64) {
	var seen [4]uint32
	seenLen := 0

	for _, n := range g.neighbors(x, y) {
		c, ok := g.board.At(n.X, n.Y)
		if !ok || c.Empty() {
			continue
		}
		owner := c.Owner

		dup := false
		for i := 0; i < seenLen; i++ {
			if seen[i] == owner {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		seen[seenLen] = owner
		seenLen++

		if stats, ok := g.players.Get(owner); ok {
			stats.BorderEmptyFields--
		}
	}
}
