// mazeescape is a tile platformer: reach the exit, collect coins, avoid lava
// and patrolling enemies.
//
// Usage:
//
//	mazeescape play [level]               - Open the game window
//	mazeescape levels [--show]            - List levels and their lock state
//	mazeescape plan <level>               - Place hazards and print the grid
//	mazeescape simulate <level> <script>  - Run a level headless from scripted input
//	mazeescape history [level]            - Show recorded runs
//
// Global flags:
//
//	--seed <value>       - Hazard placement seed (0 = random)
//	--hazards <n>        - Override the level's hazard count
//	--db <path>          - Run history database (default: ~/.mazeescape/history.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	cfg "github.com/automoto/mazeescape/config"
)

var (
	// Global flags
	flagSeed     int64
	flagHazards  int
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazeescape",
	Short: "Escape The Maze - a tile platformer",
	Long: `Escape The Maze is a small platformer. Run and jump to the exit of
each level, pick up coins on the way and keep away from lava and patrols.
Completing a level unlocks the next one.

Examples:
  mazeescape play
  mazeescape levels --show
  mazeescape plan 4 --seed 7
  mazeescape simulate 1 "R*80"`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Hazard placement seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagHazards, "hazards", -1, "Override the level's hazard count")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", cfg.Storage.HistoryPath, "Path to the run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(historyCmd)
}

// setup installs the default logger and copies global flags into config.
func setup(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazeescape",
		Level:           level,
	})
	log.SetDefault(logger)

	cfg.Debug.Seed = flagSeed
	cfg.Debug.Hazards = flagHazards
	cfg.Storage.HistoryPath = flagDBPath
	return nil
}
