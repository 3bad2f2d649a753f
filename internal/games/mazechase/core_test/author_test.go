package core_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/mazechase/internal/games/mazechase/core"
)

func TestDefaultMazeBorders(t *testing.T) {
	m := core.BuildDefaultMaze(21, 28)
	g := m.Grid
	tr := g.TunnelRow()

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			p := core.At(row, col)
			if !g.IsBorder(p) {
				continue
			}
			tunnel := row == tr && (col == 0 || col == g.Cols-1)
			if tunnel && g.At(p) != core.Open {
				t.Errorf("tunnel cell %v should be open", p)
			}
			if !tunnel && g.At(p) != core.Wall {
				t.Errorf("border cell %v should be a wall", p)
			}
		}
	}
}

func TestDefaultMazeSeeding(t *testing.T) {
	m := core.BuildDefaultMaze(21, 28)

	for _, p := range m.Spawns() {
		if m.Grid.At(p) != core.Open {
			t.Errorf("spawn %v should be open", p)
		}
	}

	if got := m.Special.Count(); got != 2 {
		t.Errorf("expected 2 specials, got %d", got)
	}
	for _, p := range []core.CellPos{core.At(10, 5), core.At(10, 22)} {
		if !m.Special.Get(p) {
			t.Errorf("expected special at %v", p)
		}
		if m.Common.Get(p) {
			t.Errorf("cell %v holds both item kinds", p)
		}
	}

	if got := m.Common.Count(); got != 306 {
		t.Errorf("expected 306 commons, got %d", got)
	}
	if got := m.Remaining(); got != 308 {
		t.Errorf("expected 308 remaining, got %d", got)
	}

	for _, p := range m.Sanctuary.Cells() {
		if m.ItemAt(p) != core.ItemNone {
			t.Errorf("sanctuary cell %v holds an item", p)
		}
	}

	for row := 0; row < m.Grid.Rows; row++ {
		for col := 0; col < m.Grid.Cols; col++ {
			p := core.At(row, col)
			if m.ItemAt(p) != core.ItemNone && m.Grid.At(p) == core.Wall {
				t.Errorf("item placed on wall %v", p)
			}
		}
	}
}

func TestSeedingSkipsIsolatedPocket(t *testing.T) {
	m := core.MustParseLayout(
		"#########",
		"#S------#",
		"#-####--#",
		"#-#--#--#",
		"#-####--#",
		"#-------#",
		"#########",
	)
	pocket := []core.CellPos{core.At(3, 3), core.At(3, 4)}
	house := core.CellRect{R0: 5, C0: 6, R1: 5, C1: 7}

	common, special := core.SeedCollectibles(m.Grid, m.SeekerSpawn, house, []core.CellPos{core.At(3, 3), core.At(1, 7)})

	for _, p := range pocket {
		if common.Get(p) || special.Get(p) {
			t.Errorf("isolated cell %v should stay empty", p)
		}
	}
	if !special.Get(core.At(1, 7)) {
		t.Error("reachable landmark should hold a special")
	}
	if special.Get(core.At(3, 3)) {
		t.Error("unreachable landmark must not hold a special")
	}
	if common.Get(core.At(5, 6)) || common.Get(core.At(5, 7)) {
		t.Error("sanctuary cells must stay empty")
	}
	if !common.Get(m.SeekerSpawn) {
		t.Error("spawn cell is reachable and should be seeded")
	}
}

func TestReachableDoesNotWrap(t *testing.T) {
	m := core.MustParseLayout(
		"#####",
		"-#S#-",
		"#####",
	)
	reach := core.Reachable(m.Grid, m.SeekerSpawn)

	if !reach.Get(m.SeekerSpawn) {
		t.Error("seed should be reachable")
	}
	if reach.Get(core.At(1, 0)) || reach.Get(core.At(1, 4)) {
		t.Error("flood fill must not cross the horizontal wrap")
	}
	if reach.Count() != 1 {
		t.Errorf("expected 1 reachable cell, got %d", reach.Count())
	}
}

func TestParseLayout(t *testing.T) {
	m, err := core.ParseLayout([]string{
		"######",
		"#So.P#",
		"######",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.SeekerSpawn != core.At(1, 1) {
		t.Errorf("seeker spawn = %v", m.SeekerSpawn)
	}
	if len(m.PursuerSpawns) != 1 || m.PursuerSpawns[0] != core.At(1, 4) {
		t.Errorf("pursuer spawns = %v", m.PursuerSpawns)
	}
	if m.ItemAt(core.At(1, 2)) != core.ItemSpecial || m.ItemAt(core.At(1, 3)) != core.ItemCommon {
		t.Error("items not parsed")
	}
	if got := strings.Join(core.FormatLayout(m), "\n"); got != "######\n#So.P#\n######" {
		t.Errorf("FormatLayout mismatch:\n%s", got)
	}
}

func TestParseLayoutErrors(t *testing.T) {
	testCases := []struct {
		name  string
		lines []string
		code  string
	}{
		{"empty", nil, "EMPTY_LAYOUT"},
		{"ragged", []string{"###", "#S"}, "RAGGED_LAYOUT"},
		{"unknown char", []string{"#S?#"}, "UNKNOWN_CHAR"},
		{"no seeker", []string{"#..#"}, "SEEKER_SPAWN"},
		{"two seekers", []string{"#SS#"}, "SEEKER_SPAWN"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.ParseLayout(tc.lines)
			if err == nil {
				t.Fatal("expected error")
			}
			verr, ok := err.(core.ValidationError)
			if !ok {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if verr.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, verr.Code)
			}
		})
	}
}
