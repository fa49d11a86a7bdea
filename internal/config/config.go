package config

import (
	"errors"
	"fmt"
	"time"

	"salvage/internal/logging"

	"go.uber.org/zap/zapcore"
)

// Config holds the settings of one salvage invocation. It is built from the
// command line and handed to the scan explicitly.
type Config struct {
	// Directory holding the SALV_*.asset files.
	Root string

	// Number of -v flags given.
	Verbosity int

	// Keep running and rescan when matching files change.
	Watch bool

	// Quiet period after the last change before a rescan.
	Debounce time.Duration
}

// DefaultDebounce is the watch quiet period when none is set.
const DefaultDebounce = 250 * time.Millisecond

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Debounce: DefaultDebounce,
	}
}

// Validate reports the first setting that cannot drive a scan.
func (c *Config) Validate() error {
	if c.Root == "" {
		return errors.New("salvage data path required")
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity must not be negative: %d", c.Verbosity)
	}
	if c.Watch && c.Debounce <= 0 {
		return fmt.Errorf("watch debounce must be positive: %s", c.Debounce)
	}
	return nil
}

// LogLevel returns the log threshold selected by Verbosity.
func (c *Config) LogLevel() zapcore.Level {
	return logging.LevelForVerbosity(c.Verbosity)
}
