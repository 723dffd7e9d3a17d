// Package context manages the 'this' keyword resolution for CLI commands.
package context

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ContextTTL is the time-to-live for context entries (1 hour).
const ContextTTL = time.Hour

var (
	mu        sync.RWMutex
	globalCtx *Context
)

// Context represents the current CLI context.
type Context struct {
	LastID    string    `json:"last_id"`
	LastType  string    `json:"last_type"` // "post", "story", "chat", "user"
	UpdatedAt time.Time `json:"updated_at"`
}

func contextPath() (string, error) {
	dir := os.Getenv("NEXICON_CONFIG_DIR")
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		dir = filepath.Join(homeDir, ".nexicon")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return filepath.Join(dir, "context.json"), nil
}

// Load reads the context from disk.
func Load() (*Context, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalCtx != nil {
		if time.Since(globalCtx.UpdatedAt) > ContextTTL {
			globalCtx = nil
		} else {
			return globalCtx, nil
		}
	}

	path, err := contextPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("no context available")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read context file: %w", err)
	}

	var ctx Context
	if err := json.Unmarshal(data, &ctx); err != nil {
		return nil, fmt.Errorf("parse context: %w", err)
	}

	if time.Since(ctx.UpdatedAt) > ContextTTL {
		return nil, fmt.Errorf("context expired")
	}

	globalCtx = &ctx
	return globalCtx, nil
}

// Save persists the context to disk.
func Save(ctx *Context) error {
	mu.Lock()
	defer mu.Unlock()

	path, err := contextPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(ctx, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal context: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write context file: %w", err)
	}

	globalCtx = ctx
	return nil
}

// Clear removes the context from disk and memory.
func Clear() error {
	mu.Lock()
	defer mu.Unlock()

	path, err := contextPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove context file: %w", err)
		}
	}

	globalCtx = nil
	return nil
}

// Set sets the current context to an object.
func Set(id, typ string) error {
	return Save(&Context{
		LastID:    id,
		LastType:  typ,
		UpdatedAt: time.Now(),
	})
}

// Get returns the current context ID and type.
func Get() (string, string, error) {
	ctx, err := Load()
	if err != nil {
		return "", "", err
	}
	return ctx.LastID, ctx.LastType, nil
}

// GetID returns just the current context ID.
func GetID() (string, error) {
	id, _, err := Get()
	return id, err
}

// ResolveTarget resolves a target string (could be "this" or an ID).
// Returns the resolved ID and whether it came from context.
func ResolveTarget(target string) (string, bool, error) {
	if target == "this" {
		id, err := GetID()
		if err != nil {
			return "", false, fmt.Errorf("no context available: use an explicit ID")
		}
		return id, true, nil
	}
	return target, false, nil
}
