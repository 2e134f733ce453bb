package leveldata

import (
	"errors"
	"testing"

	"github.com/automoto/mazeescape/shared/gamemath"
)

func mustRows(t *testing.T, rows ...string) Grid {
	t.Helper()
	g, err := ParseRows(rows)
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	return g
}

func TestBuildCategorizesTiles(t *testing.T) {
	grid := mustRows(t,
		"9.5.7",
		"..3..",
		"21412",
	)
	m, err := Build(grid, 10, 20, 50, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	wantSolids := []gamemath.Rect{
		gamemath.NewRect(10, 120, 50, 50),
		gamemath.NewRect(60, 120, 50, 50),
		gamemath.NewRect(160, 120, 50, 50),
		gamemath.NewRect(210, 120, 50, 50),
	}
	if len(m.Solids) != len(wantSolids) {
		t.Fatalf("got %d solids, want %d", len(m.Solids), len(wantSolids))
	}
	for i, want := range wantSolids {
		if m.Solids[i] != want {
			t.Errorf("solid %d = %v, want %v", i, m.Solids[i], want)
		}
	}

	if len(m.Hazards) != 1 || m.Hazards[0] != gamemath.NewRect(110, 120, 50, 50) {
		t.Errorf("hazards = %v", m.Hazards)
	}
	if len(m.Tiles) != 5 {
		t.Errorf("got %d drawable tiles, want 5", len(m.Tiles))
	}
	if len(m.Collectibles) != 1 || m.Collectibles[0].Rect != gamemath.NewRect(122, 32, 26, 26) {
		t.Errorf("collectibles = %+v", m.Collectibles)
	}
	if len(m.Patrols) != 1 || m.Patrols[0].Rect != gamemath.NewRect(110, 70, 50, 50) {
		t.Errorf("patrols = %+v", m.Patrols)
	}
	if m.Spawn != (Cell{Row: 0, Col: 0}) {
		t.Errorf("spawn = %v", m.Spawn)
	}
	if !m.HasExit || m.Exit != (Cell{Row: 0, Col: 4}) {
		t.Errorf("exit = %v (has %v)", m.Exit, m.HasExit)
	}
	if m.ExitTrigger != gamemath.NewRect(220, 30, 30, 30) {
		t.Errorf("exit trigger = %v", m.ExitTrigger)
	}
	if got := m.Bounds(); got != gamemath.NewRect(10, 20, 250, 150) {
		t.Errorf("bounds = %v", got)
	}
}

func TestBuildConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		want error
	}{
		{name: "nil grid", grid: nil, want: ErrEmptyGrid},
		{name: "empty row", grid: Grid{{}}, want: ErrEmptyGrid},
		{name: "ragged", grid: Grid{{9, 0}, {1}}, want: ErrRaggedGrid},
		{name: "no spawn", grid: Grid{{0, 7}, {1, 1}}, want: ErrMissingSpawn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Build(tt.grid, 0, 0, 50, DefaultOptions())
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if m != nil {
				t.Fatal("partial model returned with error")
			}
		})
	}
}

func TestBuildDuplicatesLastWins(t *testing.T) {
	grid := mustRows(t,
		"9.7..",
		"...79",
		"11111",
	)
	m, err := Build(grid, 0, 0, 50, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m.Spawn != (Cell{Row: 1, Col: 4}) {
		t.Errorf("spawn = %v, want last scanned", m.Spawn)
	}
	if m.Exit != (Cell{Row: 1, Col: 3}) {
		t.Errorf("exit = %v, want last scanned", m.Exit)
	}
}

func TestBuildUnknownCodesAreEmpty(t *testing.T) {
	grid := Grid{
		{9, 6, 8},
		{1, 1, 1},
	}
	m, err := Build(grid, 0, 0, 50, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(m.Solids) != 3 || len(m.Tiles) != 3 || len(m.Collectibles) != 0 || m.HasExit {
		t.Fatalf("unknown codes produced entities: %+v", m)
	}
}

func TestBuildPatrolSeesEarlierSolidsOnly(t *testing.T) {
	grid := mustRows(t,
		"9.1..",
		"1.3.1",
		"11111",
	)
	m, err := Build(grid, 0, 0, 50, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := m.Patrols[0].Solids()
	if len(got) != 2 {
		t.Fatalf("patrol saw %d solids, want 2", len(got))
	}
	if len(m.Solids) != 8 {
		t.Fatalf("model has %d solids, want 8", len(m.Solids))
	}
}

func TestCollisionSolidsSkipExitTrigger(t *testing.T) {
	grid := mustRows(t,
		"9..17",
		"11111",
	)

	m, err := Build(grid, 0, 0, 50, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(m.CollisionSolids()) != len(m.Solids) {
		t.Fatal("inset exit trigger should not exclude neighbours")
	}

	opts := DefaultOptions()
	opts.ExitInset = -5
	m, err = Build(grid, 0, 0, 50, opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// The widened trigger reaches the wall at (0,3) and two floor tiles.
	if got, want := len(m.CollisionSolids()), len(m.Solids)-3; got != want {
		t.Fatalf("got %d collision solids, want %d", got, want)
	}
	for _, s := range m.CollisionSolids() {
		if s.Intersects(m.ExitTrigger) {
			t.Fatalf("collision solid %v overlaps exit trigger %v", s, m.ExitTrigger)
		}
	}
}

func TestSpawnPosition(t *testing.T) {
	grid := mustRows(t,
		"..",
		".9",
		"11",
	)
	m, err := Build(grid, 0, 0, 50, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	x, y := m.SpawnPosition(40, 50)
	if x != 55 || y != 50 {
		t.Fatalf("SpawnPosition = (%d, %d), want (55, 50)", x, y)
	}
}
