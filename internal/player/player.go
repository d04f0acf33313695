// Package player holds the per-player counters the engine maintains
// incrementally: occupied cells, disjoint areas, border-empty cells,
// and whether the golden move has been spent.
package player

// Stats is the mutable record for one player. BorderEmptyFields
// counts empty cells with at least one neighbor owned by the player:
// cells where a placement extends existing territory instead of
// starting a new area.
type Stats struct {
	OccupiedFields    uint64
	Areas             uint32
	BorderEmptyFields uint64
	GoldenMoveDone    bool
}

// Table is the player table of a game. Player ids run 1..n and map
// to slice index p-1.
type Table struct {
	stats []Stats
}

// NewTable creates a zero-valued table for n players.
func NewTable(n uint32) *Table {
	return &Table{stats: make([]Stats, n)}
}

// Len returns the number of players the table was built for.
func (t *Table) Len() uint32 {
	return uint32(len(t.stats))
}

// Valid reports whether p is a valid player id for this table.
func (t *Table) Valid(p uint32) bool {
	return p >= 1 && p <= t.Len()
}

// Get returns a pointer to p's stats and whether p is valid. The
// pointer is nil when p is invalid.
func (t *Table) Get(p uint32) (*Stats, bool) {
	if !t.Valid(p) {
		return nil, false
	}
	return &t.stats[p-1], true
}

// All returns the underlying stats slice, indexed 0..Len()-1.
func (t *Table) All() []Stats {
	return t.stats
}
