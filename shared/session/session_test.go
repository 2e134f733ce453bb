package session

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/automoto/mazeescape/shared/actors"
	"github.com/automoto/mazeescape/shared/gamemath"
	"github.com/automoto/mazeescape/shared/leveldata"
	"github.com/automoto/mazeescape/shared/progression"
)

func grid(t *testing.T, rows ...string) leveldata.Grid {
	t.Helper()
	g, err := leveldata.ParseRows(rows)
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	return g
}

func build(t *testing.T, g leveldata.Grid) *leveldata.Model {
	t.Helper()
	cfg := DefaultConfig()
	m, err := leveldata.Build(g, cfg.OriginX, cfg.OriginY, cfg.TileSize, cfg.Level)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return m
}

func runUntilDone(t *testing.T, s *Session, in Input, limit int) Outcome {
	t.Helper()
	for i := 0; i < limit; i++ {
		if out := s.Step(in); out.Terminal() {
			return out
		}
	}
	t.Fatalf("run still going after %d ticks, player at %v", limit, s.Player.Rect)
	return OutcomeRunning
}

func right() Input { return Input{Controls: actors.Controls{Right: true}} }

func TestWalkToExitCompletes(t *testing.T) {
	m := build(t, grid(t,
		"......",
		".9.57.",
		"111111",
	))
	progress := progression.NewState(1)
	s := New(m, progress, actors.DefaultPlayerConfig())

	if out := runUntilDone(t, s, right(), 100); out != OutcomeCompleted {
		t.Fatalf("outcome = %v, want completed", out)
	}
	res := s.Result()
	if res.Coins != 1 || progress.Coins != 1 {
		t.Fatalf("coins: run=%d total=%d, want 1/1", res.Coins, progress.Coins)
	}
	if !s.Coins[0].Collected {
		t.Fatal("coin not marked collected")
	}
	if res.Ticks != s.Ticks() || res.Ticks == 0 {
		t.Fatalf("ticks = %d", res.Ticks)
	}
}

func TestExitTileIsWalkable(t *testing.T) {
	m := build(t, grid(t,
		"......",
		".9..7.",
		"111111",
	))
	s := New(m, nil, actors.DefaultPlayerConfig())
	runUntilDone(t, s, right(), 100)
	if !s.Player.Rect.Intersects(m.ExitTrigger) {
		t.Fatalf("completed without touching the trigger: %v vs %v", s.Player.Rect, m.ExitTrigger)
	}
}

func TestCollapsedExitTriggerNeverCompletes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level.ExitInset = cfg.TileSize / 2
	m, err := leveldata.Build(grid(t,
		"1....1",
		"19..71",
		"111111",
	), cfg.OriginX, cfg.OriginY, cfg.TileSize, cfg.Level)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !m.ExitTrigger.Empty() {
		t.Fatalf("ExitTrigger = %v, want empty", m.ExitTrigger)
	}

	s := New(m, nil, actors.DefaultPlayerConfig())
	for i := 0; i < 100; i++ {
		if out := s.Step(right()); out != OutcomeRunning {
			t.Fatalf("tick %d: outcome = %v, want running", i, out)
		}
	}
}

func TestLavaDefeats(t *testing.T) {
	m := build(t, grid(t,
		"......",
		".9....",
		"111411",
	))
	s := New(m, nil, actors.DefaultPlayerConfig())
	if out := runUntilDone(t, s, right(), 100); out != OutcomeDefeated {
		t.Fatalf("outcome = %v, want defeated", out)
	}

	// Later input changes nothing.
	before := s.Player.Rect
	if out := s.Step(right()); out != OutcomeDefeated || s.Player.Rect != before {
		t.Fatal("step after defeat had an effect")
	}
}

func TestCoinOnFatalTickIsKept(t *testing.T) {
	m := build(t, grid(t,
		"......",
		".95...",
		"111111",
	))
	// Lava under the player's feet and the coin inside the player on tick one.
	m.Hazards = append(m.Hazards, gamemath.NewRect(50, 100, 50, 10))
	m.Collectibles[0].Rect = gamemath.NewRect(60, 60, 20, 20)

	progress := progression.NewState(1)
	s := New(m, progress, actors.DefaultPlayerConfig())

	if out := s.Step(Input{}); out != OutcomeDefeated {
		t.Fatalf("outcome = %v, want defeated", out)
	}
	if progress.Coins != 1 || s.CoinsCollected() != 1 {
		t.Fatalf("coin lost on fatal tick: total=%d run=%d", progress.Coins, s.CoinsCollected())
	}
}

func TestPatrolMovesBeforePlayerCheck(t *testing.T) {
	m := build(t, grid(t,
		"......",
		".9....",
		"111111",
	))
	// Hit box right edge sits on the player's left edge until the patrol steps.
	m.Patrols = []*actors.Patrol{
		actors.NewPatrol(gamemath.NewRect(10, 50, 50, 50), actors.DefaultPatrolConfig(), nil),
	}
	s := New(m, nil, actors.DefaultPlayerConfig())

	if s.Player.Rect.X != 55 {
		t.Fatalf("player spawned at x=%d", s.Player.Rect.X)
	}
	if m.Patrols[0].HitRect().Intersects(s.Player.Rect) {
		t.Fatal("setup: patrol already touching")
	}
	if out := s.Step(Input{}); out != OutcomeDefeated {
		t.Fatalf("outcome = %v, want defeated on the patrol's post-move position", out)
	}
}

func TestQuitAborts(t *testing.T) {
	m := build(t, grid(t,
		"......",
		".95...",
		"111111",
	))
	progress := progression.NewState(1)
	s := New(m, progress, actors.DefaultPlayerConfig())

	for i := 0; i < 20 && s.CoinsCollected() == 0; i++ {
		s.Step(right())
	}
	if s.CoinsCollected() != 1 {
		t.Fatal("setup: coin not collected")
	}
	if out := s.Step(Input{Quit: true}); out != OutcomeAborted {
		t.Fatalf("outcome = %v, want aborted", out)
	}
	if got := s.Result().Coins; got != 0 {
		t.Fatalf("aborted run reports %d coins", got)
	}
	if progress.Coins != 1 {
		t.Fatalf("global total dropped to %d", progress.Coins)
	}
}

func TestFallingOutOfLevelDefeats(t *testing.T) {
	m := build(t, grid(t,
		".9.",
		"...",
	))
	s := New(m, nil, actors.DefaultPlayerConfig())
	if out := runUntilDone(t, s, Input{}, 200); out != OutcomeDefeated {
		t.Fatalf("outcome = %v, want defeated", out)
	}
}

func TestRunLevel(t *testing.T) {
	corridor := grid(t,
		"..........",
		"..........",
		"..........",
		".9.....7..",
		"1111111111",
	)

	tests := []struct {
		name   string
		script string
		want   Outcome
	}{
		{name: "walk to exit", script: "R*80", want: OutcomeCompleted},
		{name: "quit", script: "R*3 Q R*60", want: OutcomeAborted},
		{name: "script runs out", script: ".*5", want: OutcomeAborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, err := ParseScript(tt.script)
			if err != nil {
				t.Fatal(err)
			}
			opts := Options{Config: DefaultConfig(), Rand: rand.New(rand.NewSource(12345))}
			res, err := RunLevel(context.Background(), corridor, 0, "", progression.NewState(1), script, opts)
			if err != nil {
				t.Fatalf("RunLevel: %v", err)
			}
			if res.Outcome != tt.want {
				t.Fatalf("outcome = %v, want %v", res.Outcome, tt.want)
			}
		})
	}
}

func TestRunLevelCancelled(t *testing.T) {
	g := grid(t,
		".9..7",
		"11111",
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	idle := InputFunc(func() (Input, bool) { return Input{}, true })
	res, err := RunLevel(ctx, g, 0, "", nil, idle, Options{Config: DefaultConfig(), TickRate: 60})
	if err != nil {
		t.Fatalf("RunLevel: %v", err)
	}
	if res.Outcome != OutcomeAborted {
		t.Fatalf("outcome = %v, want aborted", res.Outcome)
	}
}

func TestRunLevelConfigurationError(t *testing.T) {
	idle := InputFunc(func() (Input, bool) { return Input{}, true })
	_, err := RunLevel(context.Background(), leveldata.Grid{{0, 7}, {1, 1}}, 0, "", nil, idle, Options{Config: DefaultConfig()})
	if !errors.Is(err, leveldata.ErrMissingSpawn) {
		t.Fatalf("err = %v, want ErrMissingSpawn", err)
	}
}

func TestNewUsesSelectedSkin(t *testing.T) {
	model, err := Prepare(grid(t, ".9.", "111"), 0, nil, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	progress := progression.NewState(1)
	if s := New(model, progress, actors.DefaultPlayerConfig()); s.Skin != progression.DefaultSkin {
		t.Fatalf("Skin = %q, want the selected skin", s.Skin)
	}
}
