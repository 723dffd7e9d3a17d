// Package storage mirrors the store snapshot to a durable local slot.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nexicon/nexicon-cli/pkg/store"
)

const (
	// SlotKey is the fixed namespace the snapshot is persisted under.
	SlotKey = "nexicon-storage"
	// slotVersion guards against reading snapshots written by an
	// incompatible schema.
	slotVersion = 1
)

// envelope is the on-disk shape of the slot.
type envelope struct {
	Version int             `json:"version"`
	State   *store.Snapshot `json:"state"`
}

// Slot is a single key-value persistence slot backed by a JSON file.
type Slot struct {
	dir string
}

// Open resolves the data directory (NEXICON_CONFIG_DIR, falling back to
// ~/.nexicon) and returns a slot bound to it.
func Open() (*Slot, error) {
	if dir := os.Getenv("NEXICON_CONFIG_DIR"); dir != "" {
		return OpenAt(dir)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home dir: %w", err)
	}
	return OpenAt(filepath.Join(homeDir, ".nexicon"))
}

// OpenAt returns a slot bound to an explicit directory, creating it if
// needed.
func OpenAt(dir string) (*Slot, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Slot{dir: dir}, nil
}

// Dir returns the directory the slot writes into.
func (s *Slot) Dir() string {
	return s.dir
}

func (s *Slot) path() string {
	return filepath.Join(s.dir, SlotKey+".json")
}

// Save serializes the snapshot into the slot. Satisfies store.Persister.
func (s *Slot) Save(snap *store.Snapshot) error {
	data, err := json.MarshalIndent(envelope{Version: slotVersion, State: snap}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(s.path(), data, 0600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Load reads the persisted snapshot. A missing, unparseable or
// wrong-version slot means "no prior state" and returns nil — never an
// error.
func (s *Slot) Load() *store.Snapshot {
	data, err := os.ReadFile(s.path())
	if err != nil {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil
	}
	if env.Version != slotVersion || env.State == nil {
		return nil
	}
	return env.State
}

// Clear removes the slot from disk.
func (s *Slot) Clear() error {
	if _, err := os.Stat(s.path()); os.IsNotExist(err) {
		return nil
	}
	if err := os.Remove(s.path()); err != nil {
		return fmt.Errorf("remove snapshot: %w", err)
	}
	return nil
}
