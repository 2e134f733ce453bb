package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/automoto/mazeescape/assets"
	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/systems"
)

var flagDebugBoxes bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Open the game window",
	Long: `Opens the game at the level select screen. With a level number the
game starts directly in that level, which must already be unlocked.

Keys: arrows or A/D to run, space to jump, P to pause, Esc to leave the
level, F3 to show collision boxes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDebugBoxes, "boxes", false, "Draw collision boxes")
}

func runPlay(cmd *cobra.Command, args []string) error {
	table, err := assets.LoadLevelTable()
	if err != nil {
		return err
	}

	if err := systems.InitPersistence(table.Len()); err != nil {
		log.Debug("persistence", "err", err)
	}
	if err := systems.InitHistory(cfg.Storage.HistoryPath); err != nil {
		log.Debug("history", "err", err)
	}
	defer systems.ClosePersistence()

	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("level %q: not a number", args[0])
		}
		if _, err := table.Level(n); err != nil {
			return err
		}
		if !systems.Progress().IsUnlocked(n) {
			return fmt.Errorf("level %d is locked", n)
		}
		cfg.Debug.SkipMenu = true
		cfg.Debug.StartLevel = n
	}
	cfg.Debug.ShowBoxes = flagDebugBoxes

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetTPS(cfg.C.TPS)

	return ebiten.RunGame(NewGame(table))
}
