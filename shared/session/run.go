package session

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/automoto/mazeescape/shared/leveldata"
	"github.com/automoto/mazeescape/shared/placement"
	"github.com/automoto/mazeescape/shared/progression"
)

// InputSource yields one Input per tick. ok is false once it has nothing
// more to give, which ends the run as aborted.
type InputSource interface {
	Next() (in Input, ok bool)
}

// InputFunc adapts a function to InputSource.
type InputFunc func() (Input, bool)

func (f InputFunc) Next() (Input, bool) { return f() }

// Options control RunLevel.
type Options struct {
	Config
	// Rand drives the hazard shuffle. Nil seeds from the clock.
	Rand *rand.Rand
	// TickRate paces the loop in ticks per second. Zero runs as fast as possible.
	TickRate int
}

// Prepare places hazardCount patrols on grid and builds the level.
func Prepare(grid leveldata.Grid, hazardCount int, rng *rand.Rand, cfg Config) (*leveldata.Model, error) {
	planned, chosen := placement.Plan(grid, hazardCount, rng, cfg.Placement)
	log.Debug("placed patrols", "requested", hazardCount, "placed", len(chosen))
	return leveldata.Build(planned, cfg.OriginX, cfg.OriginY, cfg.TileSize, cfg.Level)
}

// RunLevel plays grid to the end. The level is built with hazardCount extra
// patrols; skin overrides the skin selected in progress when not empty.
// Cancelling ctx aborts the run. The error is only set when the level cannot
// be built.
func RunLevel(ctx context.Context, grid leveldata.Grid, hazardCount int, skin string, progress *progression.State, src InputSource, opts Options) (Result, error) {
	model, err := Prepare(grid, hazardCount, opts.Rand, opts.Config)
	if err != nil {
		return Result{}, err
	}

	s := New(model, progress, opts.Player)
	if skin != "" {
		s.Skin = skin
	}

	var tick <-chan time.Time
	if opts.TickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(opts.TickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				s.Abort()
				return s.Result(), nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			s.Abort()
			return s.Result(), nil
		}

		in, ok := src.Next()
		if !ok {
			in = Input{Quit: true}
		}
		if s.Step(in).Terminal() {
			return s.Result(), nil
		}
	}
}
