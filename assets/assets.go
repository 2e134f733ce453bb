package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelFS exposes the embedded level files.
func LevelFS() fs.FS {
	return assetFS
}

// LoadLevelTable reads the embedded level table.
func LoadLevelTable() (*leveldata.Table, error) {
	return leveldata.LoadTable(assetFS, config.Level.TablePath)
}

// MustLoadLevelTable is LoadLevelTable for startup paths.
func MustLoadLevelTable() *leveldata.Table {
	t, err := LoadLevelTable()
	if err != nil {
		panic(fmt.Sprintf("Failed to load level table: %v", err))
	}
	return t
}

// SpriteLoader reads PNG sprites from a directory and caches them. Missing
// or broken files are replaced by a flat placeholder so a build without art
// still plays.
type SpriteLoader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

// NewSpriteLoader loads sprites from fsys. A nil fsys only yields placeholders.
func NewSpriteLoader(fsys fs.FS) *SpriteLoader {
	return &SpriteLoader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

// NewDiskSpriteLoader loads sprites from config.UI.SpriteFolder on disk.
func NewDiskSpriteLoader() *SpriteLoader {
	if _, err := os.Stat(config.UI.SpriteFolder); err != nil {
		log.Warn("sprite folder not found, drawing placeholders", "dir", config.UI.SpriteFolder)
		return NewSpriteLoader(nil)
	}
	return NewSpriteLoader(os.DirFS(config.UI.SpriteFolder))
}

// Image returns the sprite at name, or a placeholder of size w x h filled
// with fallback.
func (l *SpriteLoader) Image(name string, w, h int, fallback color.Color) *ebiten.Image {
	if img, ok := l.cache[name]; ok {
		return img
	}

	img, err := l.load(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn("using placeholder sprite", "name", name, "err", err)
		}
		img = ebiten.NewImage(w, h)
		img.Fill(fallback)
	}
	l.cache[name] = img
	return img
}

// Frame returns frame i of the player animation for skin.
func (l *SpriteLoader) Frame(skin string, state config.StateID, i, w, h int, fallback color.Color) *ebiten.Image {
	def := config.PlayerAnimations[state]
	name := path.Join(skin, fmt.Sprintf("%s%03d.png", def.Prefix, i))
	return l.Image(name, w, h, fallback)
}

func (l *SpriteLoader) load(name string) (*ebiten.Image, error) {
	if l.fsys == nil {
		return nil, fs.ErrNotExist
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

var (
	defaultSprites     *SpriteLoader
	defaultSpritesOnce sync.Once
)

// Sprites returns the process-wide disk sprite loader.
func Sprites() *SpriteLoader {
	defaultSpritesOnce.Do(func() {
		defaultSprites = NewDiskSpriteLoader()
	})
	return defaultSprites
}
