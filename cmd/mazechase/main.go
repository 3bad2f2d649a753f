// mazechase is a four-player maze chase for one shared terminal keyboard,
// with an in-game maze editor.
//
// Usage:
//
//	mazechase play             - Play a round
//	mazechase scores           - Show high scores and recent rounds
//	mazechase config print     - Print the effective configuration
//	mazechase config validate  - Validate a configuration file
//	mazechase keys             - Show key bindings
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.mazechase/scores.db)
//	--log <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/mazechase/internal/games/mazechase"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagLogPath string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Maze Chase - one seeker, three pursuers, one keyboard",
	Long: `Maze Chase is a local four-player game played in the terminal.
The seeker clears every collectible in the maze while three pursuers
try to catch it. Press E during play to edit the maze.

Available commands:
  play     - Play a round
  scores   - View high scores and recent rounds
  config   - Print or validate configuration
  keys     - Show key bindings

Examples:
  mazechase play
  mazechase play --difficulty hard
  mazechase scores --tui
  mazechase config print > my-maze.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazechase/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log every gameplay event")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
}
