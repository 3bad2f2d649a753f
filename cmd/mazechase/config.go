package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/games/mazechase"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/core"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or validate configuration",
}

var configPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration play would use, after the search order and
any difficulty preset are applied. The output is a valid config file.

Examples:
  mazechase config print
  mazechase config print --difficulty hard
  mazechase config print --config ./my-maze.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigPrint,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigValidate,
}

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Print the default maze layout",
	Long: `Print the default maze for the configured board size.

Legend:
  #  wall       -  open, empty
  .  common     o  special
  S  seeker     P  pursuer`,
	Args: cobra.NoArgs,
	RunE: runMaze,
}

func init() {
	for _, c := range []*cobra.Command{configPrintCmd, mazeCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	}
	configPrintCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	configCmd.AddCommand(configPrintCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(mazeCmd)
}

func runConfigPrint(cmd *cobra.Command, args []string) error {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	mazechase.SetConfigPath(flagConfig)
	mazechase.SetDifficultyPreset(flagDifficulty)

	cfg, err := mazechase.LoadConfig()
	if err != nil {
		return err
	}
	out, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	if _, err := config.LoadMaze(args[0]); err != nil {
		return err
	}
	fmt.Printf("%s: ok\n", args[0])
	return nil
}

func runMaze(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadMaze(flagConfig)
	if err != nil {
		return err
	}
	m := core.BuildDefaultMaze(cfg.Board.Rows, cfg.Board.Cols)
	fmt.Println(strings.Join(core.FormatLayout(m), "\n"))
	fmt.Printf("\n%dx%d, %d collectibles\n", cfg.Board.Rows, cfg.Board.Cols, m.Remaining())
	return nil
}
