package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nexicon/nexicon-cli/pkg/models"
	"github.com/nexicon/nexicon-cli/pkg/store"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	slot, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt() error = %v", err)
	}

	snap := store.Seed()
	snap.ThemePreference = "dark"
	snap.CurrentUser = &models.User{ID: "user1", Handle: "rohanmehta"}

	if err := slot.Save(snap); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded := slot.Load()
	if loaded == nil {
		t.Fatal("Load() = nil, want snapshot")
	}
	if loaded.ThemePreference != "dark" {
		t.Errorf("theme = %q, want dark", loaded.ThemePreference)
	}
	if loaded.CurrentUser == nil || loaded.CurrentUser.ID != "user1" {
		t.Errorf("current user = %+v, want user1", loaded.CurrentUser)
	}
	if len(loaded.Posts) != len(snap.Posts) {
		t.Errorf("posts = %d, want %d", len(loaded.Posts), len(snap.Posts))
	}
	if len(loaded.Chats) != len(snap.Chats) {
		t.Errorf("chats = %d, want %d", len(loaded.Chats), len(snap.Chats))
	}
}

func TestLoadMissingSlot(t *testing.T) {
	t.Parallel()

	slot, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt() error = %v", err)
	}

	if got := slot.Load(); got != nil {
		t.Errorf("Load() on empty dir = %+v, want nil", got)
	}
}

func TestLoadCorruptSlot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	slot, err := OpenAt(dir)
	if err != nil {
		t.Fatalf("OpenAt() error = %v", err)
	}

	path := filepath.Join(dir, SlotKey+".json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("write corrupt slot: %v", err)
	}

	if got := slot.Load(); got != nil {
		t.Errorf("Load() on corrupt slot = %+v, want nil", got)
	}
}

func TestLoadWrongVersion(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	slot, err := OpenAt(dir)
	if err != nil {
		t.Fatalf("OpenAt() error = %v", err)
	}

	path := filepath.Join(dir, SlotKey+".json")
	if err := os.WriteFile(path, []byte(`{"version": 99, "state": {"users": []}}`), 0600); err != nil {
		t.Fatalf("write slot: %v", err)
	}

	if got := slot.Load(); got != nil {
		t.Errorf("Load() on wrong version = %+v, want nil", got)
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	slot, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt() error = %v", err)
	}

	if err := slot.Save(store.Seed()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := slot.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := slot.Load(); got != nil {
		t.Error("Load() after Clear() returned a snapshot")
	}

	// Clearing an already-empty slot is fine.
	if err := slot.Clear(); err != nil {
		t.Errorf("second Clear() error = %v", err)
	}
}

func TestSlotSatisfiesPersister(t *testing.T) {
	t.Parallel()

	slot, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt() error = %v", err)
	}

	// Wired as the store's persister, mutations land on disk.
	st := store.New(store.Seed(), slot)
	st.SetThemePreference("dark")

	loaded := slot.Load()
	if loaded == nil {
		t.Fatal("Load() = nil after store mutation")
	}
	if loaded.ThemePreference != "dark" {
		t.Errorf("mirrored theme = %q, want dark", loaded.ThemePreference)
	}
}

func TestOpenUsesEnvDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NEXICON_CONFIG_DIR", dir)

	slot, err := Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if slot.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", slot.Dir(), dir)
	}
}
