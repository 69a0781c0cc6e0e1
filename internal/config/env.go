package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	perrors "github.com/zhubert/taches/internal/errors"
	"github.com/zhubert/taches/internal/logger"
)

// Environment variables read by ApplyEnv
const (
	EnvPrefix        = "TACHES"
	EnvTheme         = EnvPrefix + "_THEME"
	EnvInitialList   = EnvPrefix + "_INITIAL_LIST"
	EnvNotifications = EnvPrefix + "_NOTIFICATIONS"
)

// LoadEnv loads a .env file into the process environment. Variables already
// set are not overwritten. A missing file is not an error.
func LoadEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil {
		logger.WithComponent("config").Debug("loaded env file", "path", path)
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return perrors.ConfigLoadFailed(path, err)
}

// ApplyEnv overrides file values with TACHES_* environment variables.
// Unparseable booleans are ignored.
func (c *Config) ApplyEnv() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := os.LookupEnv(EnvTheme); ok && v != "" {
		c.Theme = v
	}
	if v, ok := os.LookupEnv(EnvInitialList); ok && v != "" {
		c.InitialList = v
	}
	if v, ok := os.LookupEnv(EnvNotifications); ok {
		c.NotificationsEnabled = parseBoolWithFallback(v, c.NotificationsEnabled)
	}
}

// Overrides holds command line flag values. Nil fields leave the config alone.
type Overrides struct {
	Theme         *string
	InitialList   *string
	Notifications *bool
}

// ApplyOverrides applies flag values and re-validates
func (c *Config) ApplyOverrides(o *Overrides) error {
	if o != nil {
		c.mu.Lock()
		if o.Theme != nil {
			c.Theme = *o.Theme
		}
		if o.InitialList != nil {
			c.InitialList = *o.InitialList
		}
		if o.Notifications != nil {
			c.NotificationsEnabled = *o.Notifications
		}
		c.mu.Unlock()
	}
	return c.Validate()
}

func parseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}
