package engine

import "testing"

func TestMoveBasicGame(t *testing.T) {
	g, err := New(4, 2, 2, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()

	moves := []struct {
		player, x, y uint32
		expected     bool
	}{
		{1, 0, 0, true},
		{2, 3, 1, true},
		{1, 1, 0, true},
		{1, 1, 0, false}, // occupied
		{2, 1, 0, false}, // occupied by someone else
	}
	for i, m := range moves {
		if got := g.Move(m.player, m.x, m.y); got != m.expected {
			t.Errorf("move %d: Move(%d, %d, %d) = %v, expected %v",
				i, m.player, m.x, m.y, got, m.expected)
		}
	}

	if got := g.BusyFields(1); got != 2 {
		t.Errorf("BusyFields(1) = %d, expected 2", got)
	}
	if got := g.BusyFields(2); got != 1 {
		t.Errorf("BusyFields(2) = %d, expected 1", got)
	}
	if got := g.FreeFields(1); got != 5 {
		t.Errorf("FreeFields(1) = %d, expected 5", got)
	}
}

func TestMoveInvalidArguments(t *testing.T) {
	g, err := New(3, 3, 2, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()

	tests := []struct {
		name         string
		player, x, y uint32
	}{
		{"player zero", 0, 0, 0},
		{"player too large", 3, 0, 0},
		{"x out of range", 1, 3, 0},
		{"y out of range", 1, 0, 3},
		{"both out of range", 1, 9, 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := snapshot(g)
			if g.Move(tc.player, tc.x, tc.y) {
				t.Errorf("Move(%d, %d, %d) = true, expected false", tc.player, tc.x, tc.y)
			}
			requireUnchanged(t, g, before)
		})
	}
}

func TestMoveAreasLimit(t *testing.T) {
	g, err := New(2, 2, 2, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()

	if !g.Move(1, 0, 0) {
		t.Fatal("Move(1, 0, 0) = false, expected true")
	}

	// A diagonal placement would start a second area.
	before := snapshot(g)
	if g.Move(1, 1, 1) {
		t.Error("Move(1, 1, 1) = true, expected false (second area)")
	}
	requireUnchanged(t, g, before)

	if got := g.BusyFields(1); got != 1 {
		t.Errorf("BusyFields(1) = %d, expected 1", got)
	}

	// Extending the existing area stays legal at the limit.
	if !g.Move(1, 1, 0) {
		t.Error("Move(1, 1, 0) = false, expected true (adjacent cell)")
	}
}

func TestMoveAtLimitOnFullRow(t *testing.T) {
	g, err := New(3, 1, 2, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()

	if !g.Move(1, 0, 0) {
		t.Fatal("Move(1, 0, 0) failed")
	}
	if !g.Move(2, 1, 0) {
		t.Fatal("Move(2, 1, 0) failed")
	}
	// Second disjoint area for player 1, exactly at the limit.
	if !g.Move(1, 2, 0) {
		t.Fatal("Move(1, 2, 0) = false, expected true at the areas limit")
	}

	// Board is full; every further placement fails.
	for x := uint32(0); x < 3; x++ {
		if g.Move(1, x, 0) {
			t.Errorf("Move(1, %d, 0) = true on a full board", x)
		}
	}
}

func TestMoveBorderBookkeeping(t *testing.T) {
	g, err := New(4, 4, 2, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()

	// Center placement: 4 fresh border-empty cells for player 1.
	if !g.Move(1, 1, 1) {
		t.Fatal("Move(1, 1, 1) failed")
	}
	if got := countBorderEmpty(g, 1); got != 4 {
		t.Errorf("border-empty(1) = %d, expected 4", got)
	}

	// Player 2 takes a neighbor: player 1 loses one border-empty cell,
	// player 2 gains three (the fourth neighbor of (2,1) is taken).
	if !g.Move(2, 2, 1) {
		t.Fatal("Move(2, 2, 1) failed")
	}
	if got := countBorderEmpty(g, 1); got != 3 {
		t.Errorf("border-empty(1) = %d, expected 3", got)
	}
	if got := countBorderEmpty(g, 2); got != 3 {
		t.Errorf("border-empty(2) = %d, expected 3", got)
	}

	// Both players are at the areas limit, so FreeFields must report
	// exactly the maintained border counters.
	if got := g.FreeFields(1); got != 3 {
		t.Errorf("FreeFields(1) = %d, expected 3", got)
	}
	if got := g.FreeFields(2); got != 3 {
		t.Errorf("FreeFields(2) = %d, expected 3", got)
	}
}

func TestMoveMergesAreas(t *testing.T) {
	g, err := New(5, 1, 1, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()

	// Two disjoint cells, then the bridge between them.
	g.Move(1, 0, 0)
	g.Move(1, 2, 0)
	if got := areasOf(g, 1); got != 2 {
		t.Fatalf("areas = %d before bridge, expected 2", got)
	}

	g.Move(1, 1, 0)
	if got := areasOf(g, 1); got != 1 {
		t.Errorf("areas = %d after bridge, expected 1", got)
	}
	if got := countAreasBFS(g, 1); got != 1 {
		t.Errorf("BFS areas = %d after bridge, expected 1", got)
	}
}

func TestMoveDoesNotTouchOtherPlayers(t *testing.T) {
	g, err := New(4, 4, 3, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()

	g.Move(2, 0, 0)
	g.Move(3, 3, 3)

	busy2, busy3 := g.BusyFields(2), g.BusyFields(3)
	areas2, areas3 := areasOf(g, 2), areasOf(g, 3)

	if !g.Move(1, 1, 1) {
		t.Fatal("Move(1, 1, 1) failed")
	}

	if g.BusyFields(1) != 1 {
		t.Errorf("BusyFields(1) = %d, expected 1", g.BusyFields(1))
	}
	if g.BusyFields(2) != busy2 || g.BusyFields(3) != busy3 {
		t.Error("a move by player 1 changed another player's cell count")
	}
	if areasOf(g, 2) != areas2 || areasOf(g, 3) != areas3 {
		t.Error("a move by player 1 changed another player's area count")
	}
}
