package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase"
	mazecore "github.com/vovakirdan/mazechase/internal/games/mazechase/core"
	"github.com/vovakirdan/mazechase/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) (Model, *mazechase.Game) {
	t.Helper()
	g := mazechase.NewWithConfig(config.DefaultMazeConfig())
	m := NewModel(g, store, nil, core.DefaultConfig())
	m.Init()
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return model
}

func TestModelLeavesRoomForHelp(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if m.screen.Height() != 23 {
		t.Errorf("expected game height 23, got %d", m.screen.Height())
	}
	view := m.View()
	if !strings.Contains(view, "MAZE CHASE") {
		t.Error("game not rendered")
	}
	if !strings.Contains(view, "editor") {
		t.Error("help footer missing")
	}
}

func TestModelKeysReachGameOnTick(t *testing.T) {
	m, g := newTestModel(t, nil)
	m = update(t, m, runeKey('e'))
	if g.State().Editing {
		t.Fatal("keys apply on the next tick")
	}
	m = update(t, m, TickMsg{})
	if !g.State().Editing {
		t.Fatal("editor should be open after the tick")
	}
	if m.input.Control().Has(core.ActionToggleEditor) {
		t.Error("input should be cleared after the tick")
	}
	if !m.state.Editing {
		t.Error("model should track the game state")
	}
}

func TestModelMousePaints(t *testing.T) {
	m, g := newTestModel(t, nil)
	m = update(t, m, runeKey('e'))
	m = update(t, m, runeKey('z'))
	m = update(t, m, TickMsg{})

	// Cell (1,1) sits at columns 2-3 under the HUD row.
	m = update(t, m, tea.MouseMsg{X: 2, Y: 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m = update(t, m, tea.MouseMsg{X: 4, Y: 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	update(t, m, tea.MouseMsg{X: 6, Y: 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})

	draft := g.Sim().State().Draft
	if draft.Grid.At(mazecore.At(1, 1)) != mazecore.Wall || draft.Grid.At(mazecore.At(1, 2)) != mazecore.Wall {
		t.Error("press and drag should paint")
	}
	if draft.Grid.At(mazecore.At(1, 3)) != mazecore.Open {
		t.Error("release must not paint")
	}
}

func TestPointerAction(t *testing.T) {
	testCases := []struct {
		name     string
		msg      tea.MouseMsg
		expected core.PointerAction
	}{
		{"left press", tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, core.PointerPress},
		{"left drag", tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}, core.PointerDrag},
		{"left release", tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}, core.PointerRelease},
		{"right press", tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress}, core.PointerRelease},
		{"hover", tea.MouseMsg{Button: tea.MouseButtonNone, Action: tea.MouseActionMotion}, core.PointerRelease},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := pointerAction(tc.msg); got != tc.expected {
				t.Errorf("got %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	m, g := newTestModel(t, nil)
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg{})
	}
	clock := g.Sim().State().Clock

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("unexpected screen %dx%d", m.screen.Width(), m.screen.Height())
	}
	if g.Sim().State().Clock != clock {
		t.Error("resize must not restart the round")
	}
}

func TestModelSavesFinishedRound(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	m, g := newTestModel(t, store)
	st := g.Sim().State()
	st.Seeker().Score = 420
	st.Phase = mazecore.PhaseOver
	st.Winner = mazecore.WinnerPursuers

	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	scores, err := store.TopScores(mazechase.GameID, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 420 {
		t.Errorf("expected one score of 420, got %+v", scores)
	}
	rounds, err := store.RecentRounds(mazechase.GameID, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rounds) != 1 || rounds[0].Winner != "pursuers" || rounds[0].Remaining != 308 {
		t.Errorf("unexpected rounds %+v", rounds)
	}

	// A restart arms saving for the next round.
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if m.saved {
		t.Error("restart should clear the saved flag")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model renders nothing")
	}
}
