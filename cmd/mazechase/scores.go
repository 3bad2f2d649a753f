package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazechase/internal/games/mazechase"
	"github.com/vovakirdan/mazechase/internal/platform/tui"
	"github.com/vovakirdan/mazechase/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent rounds",
	Long: `Display the top seeker scores, the latest rounds and the win tally.

Examples:
  mazechase scores
  mazechase scores --limit 20
  mazechase scores --limit 0     # every recorded score
  mazechase scores --tui
  mazechase scores --clear       # forget all scores and rounds`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rows per section, 0 for all")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded scores and rounds")
	scoresCmd.MarkFlagsMutuallyExclusive("tui", "clear")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearHistory(mazechase.GameID); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		fmt.Println("Score history cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, mazechase.GameID, width, height)
	}

	scores, err := store.TopScores(mazechase.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Maze Chase")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mazechase play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if sum, err := store.Summary(mazechase.GameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Average: %.0f  Rounds: %d  Pursuers caught: %d  Play time: %s\n",
			sum.BestScore, sum.AvgScore, sum.Rounds, sum.Caught, formatPlayTime(sum.PlayTime))
		if !sum.LastPlayed.IsZero() {
			fmt.Printf("Last played: %s\n", sum.LastPlayed.Format("2006-01-02 15:04"))
		}
	}

	rounds, err := store.RecentRounds(mazechase.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}
	if len(rounds) > 0 {
		fmt.Println()
		fmt.Println("Recent Rounds")
		fmt.Println()
		fmt.Printf("  %-9s  %-6s  %-4s  %-6s  %-7s  %-7s  %s\n", "Winner", "Score", "Left", "Caught", "Time", "Maze", "Date")
		for _, r := range rounds {
			maze := "default"
			if r.CustomMaze {
				maze = "custom"
			}
			fmt.Printf("  %-9s  %-6d  %-4d  %-6d  %-7s  %-7s  %s\n",
				r.Winner, r.Score, r.Remaining, r.PursuersCaught,
				fmt.Sprintf("%.1fs", r.Duration), maze, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	wins, err := store.WinCounts(mazechase.GameID)
	if err == nil && len(wins) > 0 {
		fmt.Println()
		fmt.Printf("Wins: seeker %d, pursuers %d\n", wins["seeker"], wins["pursuers"])
	}
	return nil
}

// formatPlayTime renders simulated seconds as minutes and seconds.
func formatPlayTime(secs float64) string {
	total := int(secs + 0.5)
	return fmt.Sprintf("%dm%02ds", total/60, total%60)
}
