package engine

// GoldenMove replaces the owner of an already-occupied cell with
// player, subject to the once-per-game limit and a transactional
// re-validation of every player's area count. Returns true iff the
// move was applied; a rejected move leaves the game unchanged.
func (g *Game) GoldenMove(p, x, y uint32) bool {
	if g == nil || !g.players.Valid(p) {
		return false
	}
	ix, iy := int64(x), int64(y)
	if !g.isWithinBoard(ix, iy) {
		return false
	}

	idx, _ := g.board.Index(ix, iy)
	cell := g.board.AtIndex(idx)
	if cell.Empty() || cell.Owner == p {
		return false
	}

	stats, _ := g.players.Get(p)
	if stats.GoldenMoveDone {
		return false
	}
	if g.wouldExceedAreasLimit(ix, iy, p) {
		return false
	}

	deltaGain := g.newBorderEmptyCount(ix, iy, p)
	previous := cell.Owner

	g.board.SetOwner(ix, iy, p)
	if !g.reindexAreas() {
		g.board.SetOwner(ix, iy, previous)
		g.reindexAreas()
		return false
	}

	prevStats, _ := g.players.Get(previous)

	stats.OccupiedFields++
	stats.BorderEmptyFields += uint64(deltaGain)
	stats.GoldenMoveDone = true

	deltaLose := g.newBorderEmptyCount(ix, iy, previous)
	prevStats.OccupiedFields--
	prevStats.BorderEmptyFields -= uint64(deltaLose)

	return true
}

// reindexAreas is the only O(width*height) step of any move. It
// rebuilds every player's area count and the disjoint-set forest
// from scratch, then reports whether every player is still within
// maxAreas. Used exclusively by GoldenMove: removing a cell from the
// previous owner's territory can split it into up to four sub-regions,
// which incremental bookkeeping cannot track cheaply.
func (g *Game) reindexAreas() bool {
	players := g.players.All()
	for i := range players {
		players[i].Areas = 0
	}

	n := g.board.NumCells()
	for i := uint32(0); i < n; i++ {
		cell := g.board.AtIndex(i)
		if cell.Empty() {
			continue
		}
		g.forest.Reset(i)
		if stats, ok := g.players.Get(cell.Owner); ok {
			stats.Areas++
		}
	}

	for i := uint32(0); i < n; i++ {
		cell := g.board.AtIndex(i)
		if cell.Empty() {
			continue
		}
		x, y := g.board.XY(i)
		merged := g.unionWithMonochromeNeighbors(x, y)
		if stats, ok := g.players.Get(cell.Owner); ok {
			stats.Areas -= uint32(merged)
		}
	}

	for i := range players {
		if players[i].Areas > g.maxAreas {
			return false
		}
	}
	return true
}
