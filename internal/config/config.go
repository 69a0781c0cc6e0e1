// Package config loads and saves the taches configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	perrors "github.com/zhubert/taches/internal/errors"
	"github.com/zhubert/taches/internal/logger"
	"github.com/zhubert/taches/internal/tasks"
)

// DefaultInitialList is loaded at startup when no initial list is configured
const DefaultInitialList = "inbox"

// PathEnv overrides the config file location
const PathEnv = "TACHES_CONFIG"

// Config holds the application configuration
type Config struct {
	Theme                string           `json:"theme,omitempty"`                 // UI theme name (e.g., "dark-purple", "nord")
	InitialList          string           `json:"initial_list,omitempty"`          // List UID selected on startup
	NotificationsEnabled bool             `json:"notifications_enabled,omitempty"` // Desktop notification when a list is cleared
	Lists                []tasks.TaskList `json:"lists,omitempty"`                 // Seed data; the built-in seed is used when empty

	mu       sync.RWMutex
	filePath string
}

// New returns a config with defaults that will be saved to path
func New(path string) *Config {
	return &Config{
		InitialList: DefaultInitialList,
		Lists:       []tasks.TaskList{},
		filePath:    path,
	}
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taches"), nil
}

// DefaultPath returns $TACHES_CONFIG, or ~/.taches/config.json
func DefaultPath() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFrom reads the config at path. A missing file yields defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := New(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.WithComponent("config").Debug("no config file, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	// Must happen before Validate, which only reads
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.WithComponent("config").Debug("config loaded", "path", path, "lists", len(cfg.Lists))
	return cfg, nil
}

// ensureInitialized fills zero values left by unmarshaling. Not thread-safe;
// only called from LoadFrom before the config is shared.
func (c *Config) ensureInitialized() {
	if c.Lists == nil {
		c.Lists = []tasks.TaskList{}
	}
	if c.InitialList == "" {
		c.InitialList = c.defaultListLocked()
	}
}

// defaultListLocked is the first configured list, or DefaultInitialList for
// the built-in seed. Must be called with mu held or before sharing.
func (c *Config) defaultListLocked() string {
	if len(c.Lists) > 0 {
		return c.Lists[0].UID
	}
	return DefaultInitialList
}

// Validate checks that the config is internally consistent
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seed := c.Lists
	if len(seed) == 0 {
		seed = tasks.DefaultSeed()
	} else if _, err := tasks.New(seed); err != nil {
		return perrors.ConfigInvalid(fmt.Sprintf("lists: %v", err))
	}

	if c.InitialList == "" {
		return nil
	}
	for _, l := range seed {
		if l.UID == c.InitialList {
			return nil
		}
	}
	return perrors.ConfigInvalid(fmt.Sprintf("initial_list %q names no list", c.InitialList))
}

// Save writes the config to its file. The file is replaced atomically.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return perrors.ConfigSaveFailed("", fmt.Errorf("no file path"))
	}

	dir := filepath.Dir(c.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	if err := tmp.Close(); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.Rename(tmpName, c.filePath); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the file the config is read from and saved to
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Seed returns the configured lists, or the built-in seed when none are set
func (c *Config) Seed() []tasks.TaskList {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.Lists) == 0 {
		return tasks.DefaultSeed()
	}
	out := make([]tasks.TaskList, len(c.Lists))
	for i, l := range c.Lists {
		out[i] = tasks.TaskList{UID: l.UID, Name: l.Name, Tasks: append([]tasks.Task(nil), l.Tasks...)}
	}
	return out
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetInitialList returns the list selected on startup
func (c *Config) GetInitialList() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.InitialList == "" {
		return c.defaultListLocked()
	}
	return c.InitialList
}

// SetInitialList sets the list selected on startup. An empty uid selects the
// first list.
func (c *Config) SetInitialList(uid string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.InitialList = uid
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}
