// Package config handles local configuration management.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu         sync.RWMutex
	globalCfg  *Config
	configPath string
)

// Config represents the CLI configuration.
type Config struct {
	RenderFormat    string            `json:"render_format,omitempty"`
	DefaultReaction string            `json:"default_reaction,omitempty"`
	CustomSettings  map[string]string `json:"custom,omitempty"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		RenderFormat:    "auto",
		DefaultReaction: "like",
		CustomSettings:  make(map[string]string),
	}
}

// Dir resolves the data directory: NEXICON_CONFIG_DIR, falling back to
// ~/.nexicon.
func Dir() (string, error) {
	if dir := os.Getenv("NEXICON_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".nexicon"), nil
}

// Load reads the configuration from disk, creating defaults if needed.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalCfg != nil {
		return globalCfg, nil
	}

	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	configPath = filepath.Join(dir, "config.json")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		globalCfg = Default()
		if err := save(globalCfg); err != nil {
			return nil, fmt.Errorf("save default config: %w", err)
		}
		return globalCfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.CustomSettings == nil {
		cfg.CustomSettings = make(map[string]string)
	}

	globalCfg = &cfg
	return globalCfg, nil
}

// save writes the config to disk.
func save(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Get retrieves a config value by key.
func Get(key string) (string, error) {
	mu.RLock()
	defer mu.RUnlock()

	if globalCfg == nil {
		return "", fmt.Errorf("config not loaded")
	}

	switch key {
	case "render.format":
		return globalCfg.RenderFormat, nil
	case "reaction.default":
		return globalCfg.DefaultReaction, nil
	default:
		if val, ok := globalCfg.CustomSettings[key]; ok {
			return val, nil
		}
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

// Set updates a config value by key.
func Set(key, value string) error {
	mu.Lock()
	defer mu.Unlock()

	if globalCfg == nil {
		return fmt.Errorf("config not loaded")
	}

	switch key {
	case "render.format":
		globalCfg.RenderFormat = value
	case "reaction.default":
		globalCfg.DefaultReaction = value
	default:
		globalCfg.CustomSettings[key] = value
	}

	return save(globalCfg)
}

// List returns all config key-value pairs.
func List() (map[string]string, error) {
	mu.RLock()
	defer mu.RUnlock()

	if globalCfg == nil {
		return nil, fmt.Errorf("config not loaded")
	}

	result := make(map[string]string)
	result["render.format"] = globalCfg.RenderFormat
	result["reaction.default"] = globalCfg.DefaultReaction
	for k, v := range globalCfg.CustomSettings {
		result[k] = v
	}
	return result, nil
}
