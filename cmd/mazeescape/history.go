package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/automoto/mazeescape/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [level]",
	Short: "Show recorded runs",
	Long: `Lists the most recent runs, newest first, with per-level totals
when a level is given. --clear deletes the listed runs instead.

Examples:
  mazeescape history
  mazeescape history 3 --limit 5
  mazeescape history 3 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the runs instead of listing them")
}

func runHistory(cmd *cobra.Command, args []string) error {
	level := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("level %q: not a level number", args[0])
		}
		level = n
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(level); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	runs, err := store.RecentRuns(level, flagHistoryLimit)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Recent runs"))
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-5s  %-16s  %-9s  %-5s  %-6s  %s\n", "Date", "Level", "Name", "Outcome", "Coins", "Ticks", "Skin")
	fmt.Printf("  %-16s  %-5s  %-16s  %-9s  %-5s  %-6s  %s\n", "----", "-----", "----", "-------", "-----", "-----", "----")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-5d  %-16s  %-9s  %-5d  %-6d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Level, r.LevelName, r.Outcome, r.Coins, r.Ticks, r.Skin)
	}

	if level == 0 {
		return nil
	}
	stats, err := store.Stats(level)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Attempts: %d   Completions: %d   Most coins: %d\n", stats.Attempts, stats.Completions, stats.MostCoins)
	if stats.BestTicks > 0 {
		fmt.Printf("Fastest: %d ticks\n", stats.BestTicks)
	}
	return nil
}
