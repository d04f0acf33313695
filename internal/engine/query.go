package engine

// BusyFields returns the number of cells owned by player, or 0 on a
// nil Game or invalid player id.
func (g *Game) BusyFields(p uint32) uint64 {
	if g == nil {
		return 0
	}
	stats, ok := g.players.Get(p)
	if !ok {
		return 0
	}
	return stats.OccupiedFields
}

// FreeFields returns the number of cells player could legally take
// with an ordinary move. Below the areas limit every empty cell is a
// candidate; at the limit only cells bordering the player's existing
// territory are.
func (g *Game) FreeFields(p uint32) uint64 {
	if g == nil {
		return 0
	}
	stats, ok := g.players.Get(p)
	if !ok {
		return 0
	}

	if stats.Areas < g.maxAreas {
		total := uint64(g.width) * uint64(g.height)
		return total - g.occupied
	}
	return stats.BorderEmptyFields
}

// GoldenPossible reports whether player still holds their golden move
// and at least one other player owns a cell to take. It does not check
// that a concrete golden move would survive the areas limit, so a true
// result does not guarantee any particular GoldenMove call succeeds.
func (g *Game) GoldenPossible(p uint32) bool {
	if g == nil {
		return false
	}
	stats, ok := g.players.Get(p)
	if !ok {
		return false
	}
	if stats.GoldenMoveDone {
		return false
	}

	for q, all := uint32(0), g.players.All(); q < uint32(len(all)); q++ {
		if q+1 != p && all[q].OccupiedFields > 0 {
			return true
		}
	}
	return false
}
