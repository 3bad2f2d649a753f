package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenCreatesNestedDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), ".mazechase", "data", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file not created: %v", err)
	}

	// Reopening runs the migrations again on an existing schema.
	store.Close()
	again, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	again.Close()
}

func TestTopScores(t *testing.T) {
	store := openTestStore(t)

	// Seeker scores from a session: two rounds lost early, one cleared maze.
	for _, s := range []int{420, 3510, 180, 420} {
		if _, err := store.SaveScore("mazechase", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("elsewhere", 9999)

	testCases := []struct {
		name     string
		limit    int
		expected []int
	}{
		{"best first", 2, []int{3510, 420}},
		{"ties keep insertion order", 3, []int{3510, 420, 420}},
		{"zero lists all", 0, []int{3510, 420, 420, 180}},
		{"limit beyond count", 50, []int{3510, 420, 420, 180}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := store.TopScores("mazechase", tc.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(got) != len(tc.expected) {
				t.Fatalf("expected %d scores, got %d", len(tc.expected), len(got))
			}
			for i, want := range tc.expected {
				if got[i].Score != want || got[i].GameID != "mazechase" {
					t.Errorf("row %d: expected %d, got %+v", i, want, got[i])
				}
			}
		})
	}

	if got, _ := store.TopScores("elsewhere", 0); len(got) != 1 {
		t.Errorf("scores of another game leaked: %v", got)
	}
}

func TestSummary(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Summary("mazechase")
	if err != nil {
		t.Fatalf("Summary() on empty store failed: %v", err)
	}
	if empty.Scores != 0 || empty.Rounds != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("expected empty summary, got %+v", empty)
	}

	rounds := []RoundResult{
		{GameID: "mazechase", Winner: "pursuers", Score: 420, Remaining: 250, PursuersCaught: 1, Duration: 30},
		{GameID: "mazechase", Winner: "seeker", Score: 3510, PursuersCaught: 4, Duration: 150.5, CustomMaze: true},
		{GameID: "mazechase", Winner: "pursuers", Remaining: 308, Duration: 2},
	}
	for _, r := range rounds {
		if r.Score > 0 {
			store.SaveScore(r.GameID, r.Score)
		}
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	sum, err := store.Summary("mazechase")
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Scores != 2 || sum.BestScore != 3510 || sum.AvgScore != 1965 {
		t.Errorf("unexpected score totals: %+v", sum)
	}
	if sum.Rounds != 3 || sum.Caught != 5 || sum.PlayTime != 182.5 {
		t.Errorf("unexpected round totals: %+v", sum)
	}
	if sum.LastPlayed.IsZero() {
		t.Error("last played should come from the newest round")
	}
}

func TestClearHistory(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("mazechase", 420)
	store.SaveRound(RoundResult{GameID: "mazechase", Winner: "pursuers", Score: 420})
	store.SaveScore("elsewhere", 10)
	store.SaveRound(RoundResult{GameID: "elsewhere", Winner: "seeker", Score: 10})

	if err := store.ClearHistory("mazechase"); err != nil {
		t.Fatalf("ClearHistory() failed: %v", err)
	}

	sum, err := store.Summary("mazechase")
	if err != nil {
		t.Fatal(err)
	}
	if sum.Scores != 0 || sum.Rounds != 0 {
		t.Errorf("history not cleared: %+v", sum)
	}

	other, err := store.Summary("elsewhere")
	if err != nil {
		t.Fatal(err)
	}
	if other.Scores != 1 || other.Rounds != 1 {
		t.Errorf("clearing one game touched another: %+v", other)
	}
}
