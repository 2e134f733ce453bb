package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazeescape/shared/actors"
	"github.com/automoto/mazeescape/shared/leveldata"
	"github.com/automoto/mazeescape/shared/placement"
	"github.com/automoto/mazeescape/shared/session"
)

// Render layers, drawn in ascending order.
const (
	Default ecs.LayerID = iota
	LayerTiles
	LayerCoins
	LayerPatrols
	LayerPlayer
	LayerHUD
	LayerOverlay
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// LevelConfig describes where the grid sits on screen and how its
// triggers are sized.
type LevelConfig struct {
	TileSize        int
	OriginX         int
	OriginY         int
	ExitInset       int // pixels trimmed from each side of the exit cell
	CollectibleSize int // 0 means half a tile

	TablePath string // level table inside the embedded assets
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Width  int
	Height int

	// Movement
	MoveSpeed    int
	JumpImpulse  int
	Gravity      int
	MaxFallSpeed int

	// Lava tiles are this many pixels taller than their collision box
	LavaTolerance int
}

// PatrolConfig contains patrol enemy configuration
type PatrolConfig struct {
	Range        int
	Speed        int
	HitboxShrink int // subtracted from width and height
}

// PlacementConfig contains the hazard planner's rules
type PlacementConfig struct {
	FirstRow         int
	Headroom         int
	MinSpawnDistance int
	MinExitDistance  int
	MinRowGap        int
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	// Ticks of horizontal input per frame advance
	WalkCooldown int

	// Tween durations in seconds
	CoinBobDuration  float32
	CoinBobHeight    float32
	ExitGlowDuration float32
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HUDMargin      float64
	HUDTextBgColor color.RGBA
	HUDTextColor   color.RGBA
	CoinIconSize   float32

	// Placeholder colours used when a sprite is missing
	TileColors   map[leveldata.TileCode]color.RGBA
	PlayerColor  color.RGBA
	PatrolColor  color.RGBA
	CoinColor    color.RGBA
	ExitColor    color.RGBA
	Background   color.RGBA
	SpriteFolder string
}

// LevelSelectConfig contains level selection screen configuration
type LevelSelectConfig struct {
	Columns       int
	ButtonWidth   int
	ButtonHeight  int
	Padding       int
	TitleText     string
	LockedText    string
	ButtonIdle    color.RGBA
	ButtonHover   color.RGBA
	ButtonPressed color.RGBA
	ButtonLocked  color.RGBA
	TextColor     color.RGBA
}

// GameOverConfig contains game over overlay configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// LevelCompleteConfig contains level complete overlay configuration
type LevelCompleteConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	HintColor    color.RGBA
	TitleY       float64
	MessageY     float64
	HintY        float64
	Title        string
	Message      string
	UnlockedText string
	ContinueHint string
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// StorageConfig names the on-disk stores
type StorageConfig struct {
	AppName     string // gdata save namespace
	HistoryPath string // sqlite run history
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool // start straight into StartLevel
	StartLevel int
	ShowBoxes  bool // draw collision rectangles
	Seed       int64
	Hazards    int // overrides the table's hazard count when >= 0
}

// Global configuration instances
var C *Config
var Level LevelConfig
var Player PlayerConfig
var Patrol PatrolConfig
var Placement PlacementConfig
var Animation AnimationConfig
var UI UIConfig
var LevelSelect LevelSelectConfig
var GameOver GameOverConfig
var LevelComplete LevelCompleteConfig
var Pause PauseConfig
var Storage StorageConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Grey         = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	SkyBlue      = color.RGBA{R: 120, G: 180, B: 230, A: 255}
)

func init() {
	C = &Config{
		Width:  1000,
		Height: 600,
		Title:  "Escape The Maze",
		TPS:    60,
	}

	Level = LevelConfig{
		TileSize:        50,
		OriginX:         0,
		OriginY:         0,
		ExitInset:       10,
		CollectibleSize: 0,
		TablePath:       "levels/levels.yaml",
	}

	Player = PlayerConfig{
		Width:         40,
		Height:        50,
		MoveSpeed:     5,
		JumpImpulse:   -15,
		Gravity:       1,
		MaxFallSpeed:  10,
		LavaTolerance: 5,
	}

	Patrol = PatrolConfig{
		Range:        100,
		Speed:        1,
		HitboxShrink: 10,
	}

	Placement = PlacementConfig{
		FirstRow:         2,
		Headroom:         2,
		MinSpawnDistance: 3,
		MinExitDistance:  2,
		MinRowGap:        2,
	}

	Animation = AnimationConfig{
		WalkCooldown:     5,
		CoinBobDuration:  0.6,
		CoinBobHeight:    4,
		ExitGlowDuration: 0.9,
	}

	UI = UIConfig{
		HUDMargin:      10,
		HUDTextBgColor: BlackOverlay,
		HUDTextColor:   White,
		CoinIconSize:   10,
		TileColors: map[leveldata.TileCode]color.RGBA{
			leveldata.TileDirt:  {R: 120, G: 80, B: 40, A: 255},
			leveldata.TileGrass: {R: 60, G: 160, B: 60, A: 255},
			leveldata.TileLava:  {R: 230, G: 70, B: 20, A: 255},
		},
		PlayerColor:  LightBlue,
		PatrolColor:  LightRed,
		CoinColor:    Yellow,
		ExitColor:    BrightGreen,
		Background:   SkyBlue,
		SpriteFolder: "sprites",
	}

	LevelSelect = LevelSelectConfig{
		Columns:       5,
		ButtonWidth:   150,
		ButtonHeight:  60,
		Padding:       20,
		TitleText:     "Select a Level",
		LockedText:    "Locked",
		ButtonIdle:    DarkBlue,
		ButtonHover:   LightBlue,
		ButtonPressed: color.RGBA{R: 40, G: 70, B: 120, A: 255},
		ButtonLocked:  Grey,
		TextColor:     White,
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 200},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            200,
		MenuStartY:        280,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Retry", "Level Select"},
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightGreen,
		TextColor:    White,
		HintColor:    White,
		TitleY:       200,
		MessageY:     260,
		HintY:        360,
		Title:        "Level Complete!",
		Message:      "Coins collected: %d",
		UnlockedText: "Level %d unlocked",
		ContinueHint: "Press ENTER to continue",
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Quit Level"},
	}

	Storage = StorageConfig{
		AppName:     "mazeescape",
		HistoryPath: "~/.mazeescape/history.db",
	}

	Debug = DebugConfig{
		StartLevel: 1,
		Hazards:    -1,
	}
}

// PlayerActorConfig converts the player tunables for package actors.
func PlayerActorConfig() actors.PlayerConfig {
	frames := [3]int{}
	for state, def := range PlayerAnimations {
		frames[state] = def.Frames
	}
	return actors.PlayerConfig{
		Width:            Player.Width,
		Height:           Player.Height,
		MoveSpeed:        Player.MoveSpeed,
		Gravity:          Player.Gravity,
		MaxFallSpeed:     Player.MaxFallSpeed,
		JumpImpulse:      Player.JumpImpulse,
		WalkAnimCooldown: Animation.WalkCooldown,
		FrameCounts:      frames,
		LavaTolerance:    Player.LavaTolerance,
	}
}

// SessionConfig gathers every tunable a level run needs.
func SessionConfig() session.Config {
	return session.Config{
		OriginX:  Level.OriginX,
		OriginY:  Level.OriginY,
		TileSize: Level.TileSize,
		Player:   PlayerActorConfig(),
		Level: leveldata.Options{
			Patrol: actors.PatrolConfig{
				Range:        Patrol.Range,
				Speed:        Patrol.Speed,
				HitboxShrink: Patrol.HitboxShrink,
			},
			ExitInset:       Level.ExitInset,
			CollectibleSize: Level.CollectibleSize,
		},
		Placement: placement.Rules{
			TileSize:         Level.TileSize,
			MoveRange:        Patrol.Range,
			FirstRow:         Placement.FirstRow,
			Headroom:         Placement.Headroom,
			MinSpawnDistance: Placement.MinSpawnDistance,
			MinExitDistance:  Placement.MinExitDistance,
			MinRowGap:        Placement.MinRowGap,
		},
	}
}
