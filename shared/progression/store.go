package progression

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// KV is the item store progression is saved in. *gdata.Manager satisfies it.
type KV interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store loads and saves State.
type Store struct {
	kv KV
}

// NewStore wraps an item store.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// OpenStore opens the per-user gdata store for appName.
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open progression store: %w", err)
	}
	return NewStore(m), nil
}

// Load returns the saved state fitted to a table of levels. A missing save
// yields a fresh state; an unreadable one is reported and replaced by a
// fresh state so the game can still start.
func (s *Store) Load(levels int) (*State, error) {
	data, err := s.kv.LoadItem(progressKey)
	if err != nil {
		return NewState(levels), fmt.Errorf("load progression: %w", err)
	}
	if len(data) == 0 {
		return NewState(levels), nil
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		log.Warn("discarding unreadable progression save", "err", err)
		return NewState(levels), fmt.Errorf("parse progression: %w", err)
	}
	st.Normalize(levels)
	return &st, nil
}

// Save writes the state.
func (s *Store) Save(st *State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode progression: %w", err)
	}
	if err := s.kv.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("save progression: %w", err)
	}
	return nil
}

// MemoryKV is an in-process item store for runs that must not touch the
// user's save.
type MemoryKV map[string][]byte

func (m MemoryKV) LoadItem(key string) ([]byte, error) {
	return m[key], nil
}

func (m MemoryKV) SaveItem(key string, data []byte) error {
	m[key] = append([]byte(nil), data...)
	return nil
}
