package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/automoto/mazeescape/assets"
	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/shared/progression"
	"github.com/automoto/mazeescape/shared/session"
	"github.com/automoto/mazeescape/storage"
)

var (
	flagSimTPS  int
	flagSimSkin string
	flagSimSave bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <level> <script>",
	Short: "Run a level without a window from scripted input",
	Long: `Plays a level headless. The script is a list of space separated
steps, one tick each: L (left), R (right), J (jump), LJ / RJ (run and jump),
. (idle) and Q (quit). Append *N to repeat a step N times. The run ends as
aborted when the script runs out.

With --save the coins are added to the saved progress, a win unlocks the
next level and the run is written to the history database.

Examples:
  mazeescape simulate 1 "R*80"
  mazeescape simulate 3 "R*20 RJ R*30" --seed 3 --tps 60`,
	Args: cobra.ExactArgs(2),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTPS, "tps", 0, "Ticks per second (0 = as fast as possible)")
	simulateCmd.Flags().StringVar(&flagSimSkin, "skin", "", "Skin to record the run with")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Persist progress and record the run")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("level %q: not a number", args[0])
	}
	script, err := session.ParseScript(args[1])
	if err != nil {
		return err
	}
	table, err := assets.LoadLevelTable()
	if err != nil {
		return err
	}
	def, err := table.Level(n)
	if err != nil {
		return err
	}

	hazards := def.Hazards
	if flagHazards >= 0 {
		hazards = flagHazards
	}

	var store *progression.Store
	progress := progression.NewState(table.Len())
	if flagSimSave {
		store, err = progression.OpenStore(cfg.Storage.AppName)
		if err != nil {
			return err
		}
		if progress, err = store.Load(table.Len()); err != nil {
			log.Warn("starting from fresh progress", "err", err)
		}
	}

	opts := session.Options{
		Config:   cfg.SessionConfig(),
		TickRate: flagSimTPS,
	}
	if flagSeed != 0 {
		opts.Rand = rand.New(rand.NewSource(flagSeed))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := session.RunLevel(ctx, def.Grid, hazards, flagSimSkin, progress, script, opts)
	if err != nil {
		return err
	}

	fmt.Printf("%s after %d ticks (%d script steps), %d coins\n", res.Outcome, res.Ticks, script.Len(), res.Coins)

	if !flagSimSave {
		return nil
	}
	if res.Outcome == session.OutcomeCompleted && progress.CompleteLevel(n) {
		fmt.Printf("Level %d unlocked\n", n+1)
	}
	if err := store.Save(progress); err != nil {
		return err
	}
	return recordSimulatedRun(n, def.Name, hazards, progress.Skin, res)
}

func recordSimulatedRun(n int, name string, hazards int, skin string, res session.Result) error {
	if flagSimSkin != "" {
		skin = flagSimSkin
	}
	history, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer history.Close()

	_, err = history.RecordRun(storage.Run{
		Level:     n,
		LevelName: name,
		Outcome:   res.Outcome.String(),
		Coins:     res.Coins,
		Ticks:     res.Ticks,
		Hazards:   hazards,
		Skin:      skin,
	})
	return err
}
