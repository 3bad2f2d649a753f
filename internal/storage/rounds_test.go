package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndListRounds(t *testing.T) {
	store := openTestStore(t)

	rounds := []RoundResult{
		{GameID: "mazechase", Winner: "pursuers", Score: 420, Remaining: 200, Duration: 31.5},
		{GameID: "mazechase", Winner: "seeker", Score: 3510, PursuersCaught: 3, Duration: 140.2, CustomMaze: true},
		{GameID: "other", Winner: "seeker", Score: 10},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	got, err := store.RecentRounds("mazechase", 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 rounds, got %d", len(got))
	}

	// Newest first
	latest := got[0]
	if latest.Winner != "seeker" || latest.Score != 3510 || latest.PursuersCaught != 3 {
		t.Errorf("Unexpected latest round: %+v", latest)
	}
	if !latest.CustomMaze || got[1].CustomMaze {
		t.Error("custom maze flag not stored")
	}
	if got[1].Duration != 31.5 || got[1].Remaining != 200 {
		t.Errorf("Unexpected first round: %+v", got[1])
	}
	if latest.CreatedAt.IsZero() {
		t.Error("created_at should be populated")
	}
}

func TestRecentRoundsLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		store.SaveRound(RoundResult{GameID: "mazechase", Winner: "seeker", Score: i})
	}

	got, err := store.RecentRounds("mazechase", 3)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Expected 3 rounds, got %d", len(got))
	}
	if got[0].Score != 4 {
		t.Errorf("Expected newest round first, got score %d", got[0].Score)
	}
}

func TestWinCounts(t *testing.T) {
	store := openTestStore(t)

	counts, err := store.WinCounts("mazechase")
	if err != nil {
		t.Fatalf("WinCounts() failed: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("Expected no wins on an empty store, got %v", counts)
	}

	for _, w := range []string{"seeker", "pursuers", "pursuers"} {
		store.SaveRound(RoundResult{GameID: "mazechase", Winner: w})
	}

	counts, err = store.WinCounts("mazechase")
	if err != nil {
		t.Fatalf("WinCounts() failed: %v", err)
	}
	if counts["seeker"] != 1 || counts["pursuers"] != 2 {
		t.Errorf("Unexpected counts: %v", counts)
	}
}

func TestSaveRoundRequiresWinner(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRound(RoundResult{GameID: "mazechase"}); err == nil {
		t.Error("Expected error for a round without a winner")
	}
}
