package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/automoto/mazeescape/assets"
	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/shared/progression"
)

var flagShowGrid bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels and whether they are unlocked",
	Long: `Shows every level in the table with its hazard count and lock state
from the saved progress. --show also draws each level's grid.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagShowGrid, "show", false, "Draw each level grid")
}

func runLevels(cmd *cobra.Command, args []string) error {
	table, err := assets.LoadLevelTable()
	if err != nil {
		return err
	}
	progress := loadProgress(table.Len())

	fmt.Println(titleStyle.Render("Levels"))
	fmt.Printf("  %-3s  %-16s  %-7s  %s\n", "#", "Name", "Hazards", "State")
	fmt.Printf("  %-3s  %-16s  %-7s  %s\n", "-", "----", "-------", "-----")
	for i, def := range table.Levels {
		n := i + 1
		state := "locked"
		if progress.IsUnlocked(n) {
			state = "open"
		}
		fmt.Printf("  %-3d  %-16s  %-7d  %s\n", n, def.Name, def.Hazards, state)
		if flagShowGrid {
			fmt.Println(renderGrid(def.Grid, nil))
		}
	}
	if flagShowGrid {
		fmt.Println(legend())
	}

	fmt.Println()
	fmt.Printf("Coins: %d   Skin: %s\n", progress.Coins, progress.Skin)
	return nil
}

// loadProgress reads the saved progression, falling back to a fresh state.
func loadProgress(levels int) *progression.State {
	store, err := progression.OpenStore(cfg.Storage.AppName)
	if err != nil {
		log.Warn("could not open saved progress", "err", err)
		return progression.NewState(levels)
	}
	st, err := store.Load(levels)
	if err != nil {
		log.Warn("could not read saved progress", "err", err)
	}
	return st
}
