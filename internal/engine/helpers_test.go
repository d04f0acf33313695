package engine

import (
	"testing"

	"github.com/vovakirdan/gamma/internal/player"
)

// gameState is a full copy of everything a move may touch, used to
// assert that rejected operations leave the game untouched.
type gameState struct {
	owners   []uint32
	stats    []player.Stats
	occupied uint64
}

func snapshot(g *Game) gameState {
	s := gameState{
		owners:   make([]uint32, g.board.NumCells()),
		stats:    append([]player.Stats(nil), g.players.All()...),
		occupied: g.occupied,
	}
	for i := range s.owners {
		s.owners[i] = g.board.AtIndex(uint32(i)).Owner
	}
	return s
}

func requireUnchanged(t *testing.T, g *Game, before gameState) {
	t.Helper()

	if g.occupied != before.occupied {
		t.Errorf("occupied = %d, expected %d", g.occupied, before.occupied)
	}
	for i, owner := range before.owners {
		if got := g.board.AtIndex(uint32(i)).Owner; got != owner {
			x, y := g.board.XY(uint32(i))
			t.Errorf("cell (%d,%d) owner = %d, expected %d", x, y, got, owner)
		}
	}
	for i, st := range before.stats {
		if got := g.players.All()[i]; got != st {
			t.Errorf("player %d stats = %+v, expected %+v", i+1, got, st)
		}
	}
}

// areasOf reads the maintained area counter for p.
func areasOf(g *Game, p uint32) uint32 {
	stats, _ := g.players.Get(p)
	return stats.Areas
}

// countAreasBFS counts p's 4-connected components by flood fill,
// independently of the union-find bookkeeping.
func countAreasBFS(g *Game, p uint32) int {
	n := g.board.NumCells()
	visited := make([]bool, n)
	areas := 0

	for start := uint32(0); start < n; start++ {
		if visited[start] || g.board.AtIndex(start).Owner != p {
			continue
		}
		areas++

		queue := []uint32{start}
		visited[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			x, y := g.board.XY(cur)
			for _, nb := range g.neighbors(x, y) {
				i, ok := g.board.Index(nb.X, nb.Y)
				if !ok || visited[i] || g.board.AtIndex(i).Owner != p {
					continue
				}
				visited[i] = true
				queue = append(queue, i)
			}
		}
	}
	return areas
}

// countBorderEmpty counts empty cells with at least one neighbor owned
// by p, independently of the maintained counter.
func countBorderEmpty(g *Game, p uint32) int {
	count := 0
	for i, n := uint32(0), g.board.NumCells(); i < n; i++ {
		if !g.board.AtIndex(i).Empty() {
			continue
		}
		x, y := g.board.XY(i)
		if g.hasNeighbor(x, y, p) {
			count++
		}
	}
	return count
}

// requireInvariants cross-checks every maintained counter against a
// from-scratch recount of the board.
func requireInvariants(t *testing.T, g *Game) {
	t.Helper()

	var totalBusy uint64
	for p := uint32(1); p <= g.players.Len(); p++ {
		stats, _ := g.players.Get(p)

		if got := countAreasBFS(g, p); uint32(got) != stats.Areas {
			t.Errorf("player %d: areas counter = %d, BFS found %d", p, stats.Areas, got)
		}
		if stats.Areas > g.maxAreas {
			t.Errorf("player %d: areas = %d exceeds limit %d", p, stats.Areas, g.maxAreas)
		}
		if got := countBorderEmpty(g, p); uint64(got) != stats.BorderEmptyFields {
			t.Errorf("player %d: border counter = %d, recount found %d",
				p, stats.BorderEmptyFields, got)
		}

		var owned uint64
		for i, n := uint32(0), g.board.NumCells(); i < n; i++ {
			if g.board.AtIndex(i).Owner == p {
				owned++
			}
		}
		if owned != stats.OccupiedFields {
			t.Errorf("player %d: occupied counter = %d, recount found %d",
				p, stats.OccupiedFields, owned)
		}
		totalBusy += stats.OccupiedFields
	}

	if totalBusy != g.occupied {
		t.Errorf("occupied = %d, per-player sum = %d", g.occupied, totalBusy)
	}
}
