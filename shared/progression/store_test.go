package progression

import (
	"errors"
	"testing"
)

type failingKV struct{ err error }

func (f failingKV) LoadItem(string) ([]byte, error) { return nil, f.err }
func (f failingKV) SaveItem(string, []byte) error   { return f.err }

func TestStoreRoundTrip(t *testing.T) {
	kv := MemoryKV{}
	store := NewStore(kv)

	s, err := store.Load(5)
	if err != nil {
		t.Fatalf("Load on empty store: %v", err)
	}
	s.CompleteLevel(1)
	s.AddCoins(7)
	if err := store.Save(s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load(5)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.IsUnlocked(2) || got.Coins != 7 || got.Skin != DefaultSkin {
		t.Fatalf("loaded %+v", got)
	}
}

func TestStoreLoadCorruptSave(t *testing.T) {
	kv := MemoryKV{progressKey: []byte("{not json")}
	s, err := NewStore(kv).Load(3)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if s == nil || s.UnlockedCount() != 1 {
		t.Fatalf("corrupt save should still yield a fresh state, got %+v", s)
	}
}

func TestStoreErrorsAreWrapped(t *testing.T) {
	boom := errors.New("disk on fire")
	store := NewStore(failingKV{err: boom})

	if _, err := store.Load(1); !errors.Is(err, boom) {
		t.Fatalf("Load err = %v", err)
	}
	if err := store.Save(NewState(1)); !errors.Is(err, boom) {
		t.Fatalf("Save err = %v", err)
	}
}
