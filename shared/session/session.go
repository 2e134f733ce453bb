// Package session runs one level: it owns the tick order, the trigger checks
// and the terminal outcome. It knows nothing about drawing or input devices.
package session

import (
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"

	"github.com/automoto/mazeescape/shared/actors"
	"github.com/automoto/mazeescape/shared/leveldata"
	"github.com/automoto/mazeescape/shared/placement"
	"github.com/automoto/mazeescape/shared/progression"
)

// Outcome is the state of a level run.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeCompleted
	OutcomeDefeated
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeCompleted:
		return "completed"
	case OutcomeDefeated:
		return "defeated"
	case OutcomeAborted:
		return "aborted"
	}
	return "unknown"
}

// Terminal reports whether the run has ended.
func (o Outcome) Terminal() bool {
	return o != OutcomeRunning
}

const (
	tagPlayer = "player"
	tagCoin   = "coin"
	tagExit   = "exit"
)

// Input is one tick of player input.
type Input struct {
	actors.Controls
	Quit bool
}

// Config gathers the tunables a run needs.
type Config struct {
	OriginX  int
	OriginY  int
	TileSize int

	Player    actors.PlayerConfig
	Level     leveldata.Options
	Placement placement.Rules
}

// DefaultConfig matches the values in package config.
func DefaultConfig() Config {
	return Config{
		TileSize:  50,
		Player:    actors.DefaultPlayerConfig(),
		Level:     leveldata.DefaultOptions(),
		Placement: placement.DefaultRules(),
	}
}

// Coin is a collectible with its live state.
type Coin struct {
	leveldata.Collectible
	Collected bool

	obj *resolv.Object
}

// Result summarizes a finished run.
type Result struct {
	Outcome Outcome
	Coins   int // collected this run; zero when aborted
	Ticks   int
}

// Session is a level in play.
type Session struct {
	Level  *leveldata.Model
	Player *actors.Player
	Coins  []*Coin
	Skin   string

	progress  *progression.State
	space     *resolv.Space
	playerObj *resolv.Object
	env       actors.Surroundings

	outcome Outcome
	coins   int
	ticks   int
}

// New starts a run on model. Collected coins are added to progress as soon
// as they are picked up; progress may be nil.
func New(model *leveldata.Model, progress *progression.State, cfg actors.PlayerConfig) *Session {
	s := &Session{
		Level:    model,
		progress: progress,
		env:      model.Surroundings(),
	}
	if progress != nil {
		s.Skin = progress.Skin
	}

	x, y := model.SpawnPosition(cfg.Width, cfg.Height)
	s.Player = actors.NewPlayer(x, y, cfg)

	bounds := model.Bounds()
	s.space = resolv.NewSpace(bounds.Right(), bounds.Bottom(), model.TileSize, model.TileSize)

	for _, c := range model.Collectibles {
		coin := &Coin{Collectible: c}
		coin.obj = resolv.NewObject(float64(c.Rect.X), float64(c.Rect.Y), float64(c.Rect.W), float64(c.Rect.H), tagCoin)
		coin.obj.Data = coin
		s.space.Add(coin.obj)
		s.Coins = append(s.Coins, coin)
	}

	if model.HasExit {
		t := model.ExitTrigger
		s.space.Add(resolv.NewObject(float64(t.X), float64(t.Y), float64(t.W), float64(t.H), tagExit))
	}

	r := s.Player.Rect
	s.playerObj = resolv.NewObject(float64(r.X), float64(r.Y), float64(r.W), float64(r.H), tagPlayer)
	s.space.Add(s.playerObj)

	return s
}

// Step advances the run by one tick: patrols, then the player, then coins,
// then the terminal checks. Steps after the run ended are ignored.
func (s *Session) Step(in Input) Outcome {
	if s.outcome.Terminal() {
		return s.outcome
	}
	if in.Quit {
		s.Abort()
		return s.outcome
	}

	s.ticks++
	for _, p := range s.Level.Patrols {
		p.Update()
	}

	defeated := s.Player.Update(in.Controls, s.env)
	s.syncPlayer()

	// Coins commit before the outcome so a coin grabbed on a fatal tick is kept.
	s.collect()

	switch {
	case defeated || s.fellOut():
		s.finish(OutcomeDefeated)
	case s.reachedExit():
		s.finish(OutcomeCompleted)
	}
	return s.outcome
}

// Abort ends a running level without completing it.
func (s *Session) Abort() {
	if !s.outcome.Terminal() {
		s.finish(OutcomeAborted)
	}
}

// Outcome returns the current state of the run.
func (s *Session) Outcome() Outcome { return s.outcome }

// Ticks returns the number of simulated ticks.
func (s *Session) Ticks() int { return s.ticks }

// CoinsCollected is the per-level coin count.
func (s *Session) CoinsCollected() int { return s.coins }

// Result reports the run so far.
func (s *Session) Result() Result {
	r := Result{Outcome: s.outcome, Coins: s.coins, Ticks: s.ticks}
	if s.outcome == OutcomeAborted {
		r.Coins = 0
	}
	return r
}

func (s *Session) finish(o Outcome) {
	s.outcome = o
	log.Info("level finished", "outcome", o, "coins", s.coins, "ticks", s.ticks)
}

func (s *Session) syncPlayer() {
	s.playerObj.X = float64(s.Player.Rect.X)
	s.playerObj.Y = float64(s.Player.Rect.Y)
	s.playerObj.Update()
}

func (s *Session) collect() {
	check := s.playerObj.Check(0, 0, tagCoin)
	if check == nil {
		return
	}
	for _, obj := range check.ObjectsByTags(tagCoin) {
		coin, ok := obj.Data.(*Coin)
		if !ok || coin.Collected || !coin.Rect.Intersects(s.Player.Rect) {
			continue
		}
		coin.Collected = true
		s.space.Remove(obj)
		s.coins++
		if s.progress != nil {
			s.progress.AddCoins(1)
		}
	}
}

func (s *Session) reachedExit() bool {
	if !s.Level.HasExit {
		return false
	}
	if s.playerObj.Check(0, 0, tagExit) == nil {
		return false
	}
	return s.Player.Rect.Intersects(s.Level.ExitTrigger)
}

// fellOut reports whether the player dropped below the level.
func (s *Session) fellOut() bool {
	return s.Player.Rect.Top() >= s.Level.Bounds().Bottom()
}
