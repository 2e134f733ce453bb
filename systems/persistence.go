package systems

import (
	"github.com/charmbracelet/log"

	"github.com/automoto/mazeescape/components"
	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/shared/progression"
	"github.com/automoto/mazeescape/storage"
)

var progressStore *progression.Store
var progress *progression.State
var history *storage.Store

// InitPersistence opens the gdata save for progression and loads it for a
// table of the given size. When the save cannot be opened the game still
// runs, keeping progress in memory only.
func InitPersistence(levels int) error {
	store, err := progression.OpenStore(cfg.Storage.AppName)
	if err != nil {
		log.Warn("progress will not be saved", "err", err)
		store = progression.NewStore(progression.MemoryKV{})
	}
	progressStore = store

	st, loadErr := store.Load(levels)
	progress = st
	if loadErr != nil {
		log.Warn("starting from fresh progress", "err", loadErr)
	}
	if err != nil {
		return err
	}
	return loadErr
}

// UseProgress installs an already loaded state and store.
func UseProgress(store *progression.Store, st *progression.State) {
	progressStore = store
	progress = st
}

// InitHistory opens the run history database. A failure only disables history.
func InitHistory(path string) error {
	h, err := storage.Open(path)
	if err != nil {
		log.Warn("run history disabled", "path", path, "err", err)
		return err
	}
	history = h
	return nil
}

// ClosePersistence flushes progress and closes the history database.
func ClosePersistence() {
	SaveProgress()
	if history != nil {
		if err := history.Close(); err != nil {
			log.Warn("closing run history", "err", err)
		}
		history = nil
	}
}

// Progress returns the live progression state, creating an in-memory one
// when persistence was never initialised.
func Progress() *progression.State {
	if progress == nil {
		progress = progression.NewState(0)
	}
	return progress
}

// SaveProgress writes the progression state if a store is open.
func SaveProgress() {
	if progressStore == nil || progress == nil {
		return
	}
	if err := progressStore.Save(progress); err != nil {
		log.Warn("could not save progress", "err", err)
	}
}

// recordRun persists a finished level once: progress to gdata, the run to
// the history database.
func recordRun(level *components.LevelData) {
	if level.Recorded || level.Run == nil {
		return
	}
	level.Recorded = true
	SaveProgress()

	if history == nil {
		return
	}
	res := level.Run.Result()
	_, err := history.RecordRun(storage.Run{
		Level:     level.Index,
		LevelName: level.Def.Name,
		Outcome:   res.Outcome.String(),
		Coins:     res.Coins,
		Ticks:     res.Ticks,
		Hazards:   level.Hazards,
		Skin:      level.Run.Skin,
	})
	if err != nil {
		log.Warn("could not record run", "level", level.Index, "err", err)
	}
}
