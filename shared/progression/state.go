// Package progression tracks what the player has unlocked across levels:
// level locks, the coin total and cosmetic skins. State is passed explicitly
// to whoever needs it; nothing here is global.
package progression

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSkin       = errors.New("unknown skin")
	ErrSkinNotOwned      = errors.New("skin not owned")
	ErrInsufficientCoins = errors.New("not enough coins")
)

// DefaultSkin is owned from the start.
const DefaultSkin = "ninja"

// Skin is a purchasable sprite set.
type Skin struct {
	ID    string
	Name  string
	Price int
}

// Catalog lists the skins on sale.
type Catalog []Skin

// Find looks a skin up by ID.
func (c Catalog) Find(id string) (Skin, bool) {
	for _, s := range c {
		if s.ID == id {
			return s, true
		}
	}
	return Skin{}, false
}

// State is the persistent progression of one player.
type State struct {
	Unlocked []bool          `json:"unlocked"` // index 0 is level 1
	Coins    int             `json:"coins"`
	Skin     string          `json:"skin"`
	Owned    map[string]bool `json:"owned"`
}

// NewState returns a fresh state with only level 1 open.
func NewState(levels int) *State {
	s := &State{}
	s.Normalize(levels)
	return s
}

// Normalize fits the state to a table of n levels and restores the defaults
// a loaded save may be missing.
func (s *State) Normalize(levels int) {
	switch {
	case len(s.Unlocked) < levels:
		s.Unlocked = append(s.Unlocked, make([]bool, levels-len(s.Unlocked))...)
	case len(s.Unlocked) > levels:
		s.Unlocked = s.Unlocked[:levels]
	}
	if levels > 0 {
		s.Unlocked[0] = true
	}
	if s.Owned == nil {
		s.Owned = map[string]bool{}
	}
	s.Owned[DefaultSkin] = true
	if s.Skin == "" || !s.Owned[s.Skin] {
		s.Skin = DefaultSkin
	}
	if s.Coins < 0 {
		s.Coins = 0
	}
}

// Levels returns the number of levels tracked.
func (s *State) Levels() int { return len(s.Unlocked) }

// IsUnlocked reports whether level (1-based) can be played.
func (s *State) IsUnlocked(level int) bool {
	return level >= 1 && level <= len(s.Unlocked) && s.Unlocked[level-1]
}

// UnlockedCount returns how many levels are open.
func (s *State) UnlockedCount() int {
	n := 0
	for _, u := range s.Unlocked {
		if u {
			n++
		}
	}
	return n
}

// CompleteLevel records a win on level and opens the next one. It reports
// whether a level was newly unlocked.
func (s *State) CompleteLevel(level int) bool {
	next := level + 1
	if !s.IsUnlocked(level) || next > len(s.Unlocked) || s.Unlocked[next-1] {
		return false
	}
	s.Unlocked[next-1] = true
	return true
}

// AddCoins adds n to the persistent total.
func (s *State) AddCoins(n int) {
	if n > 0 {
		s.Coins += n
	}
}

// Owns reports whether skin id has been bought.
func (s *State) Owns(id string) bool {
	return s.Owned[id]
}

// BuySkin pays for skin id. Buying an owned skin is a no-op.
func (s *State) BuySkin(catalog Catalog, id string) error {
	skin, ok := catalog.Find(id)
	if !ok {
		return fmt.Errorf("buy %q: %w", id, ErrUnknownSkin)
	}
	if s.Owns(id) {
		return nil
	}
	if s.Coins < skin.Price {
		return fmt.Errorf("buy %q for %d, have %d: %w", id, skin.Price, s.Coins, ErrInsufficientCoins)
	}
	s.Coins -= skin.Price
	if s.Owned == nil {
		s.Owned = map[string]bool{}
	}
	s.Owned[id] = true
	return nil
}

// SelectSkin switches the active skin. The skin must be owned.
func (s *State) SelectSkin(id string) error {
	if !s.Owns(id) {
		return fmt.Errorf("select %q: %w", id, ErrSkinNotOwned)
	}
	s.Skin = id
	return nil
}
