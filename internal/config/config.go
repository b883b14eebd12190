// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file ($XDG_CONFIG_HOME/todo/todo.toml or ~/.config/todo/todo.toml)
// 3. Project config file (todo.toml or .todo.toml in the working directory)
// 4. Environment variables (TODO_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasks/internal/dialog"
	"github.com/idilsaglam/tasks/internal/logging"
)

// Default values.
const (
	DefaultTheme     = "classic"
	DefaultCharLimit = 200
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Themes accepted by the theme key.
var Themes = []string{"classic", "neon", "mono"}

// Config holds the full configuration.
type Config struct {
	// Display
	Theme     string `toml:"theme"`
	Locale    string `toml:"locale"`
	Group     bool   `toml:"group"`
	NoColor   bool   `toml:"no_color"`
	AltScreen bool   `toml:"alt_screen"`

	// Input
	CharLimit int `toml:"char_limit"`

	// Logging configuration
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	LogFile   string `toml:"log_file"`

	// Files that were read, in load order (computed)
	Files []string `toml:"-"`
}

func setDefaults(cfg *Config) {
	cfg.Theme = DefaultTheme
	cfg.Locale = dialog.DefaultLocale
	cfg.AltScreen = true
	cfg.CharLimit = DefaultCharLimit
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// Default returns a config holding only built-in defaults.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Validate rejects values the rest of the app cannot use.
func (c *Config) Validate() error {
	if !contains(Themes, strings.ToLower(c.Theme)) {
		return fmt.Errorf("theme %q: must be one of %s", c.Theme, strings.Join(Themes, ", "))
	}
	if _, err := dialog.Locale(c.Locale); err != nil {
		return err
	}
	if c.CharLimit <= 0 {
		return fmt.Errorf("char_limit must be positive, got %d", c.CharLimit)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return err
	}
	return nil
}

// Texts returns the dialog strings for the configured locale.
func (c *Config) Texts() dialog.Texts { return dialog.MustLocale(c.Locale) }

// LogOptions converts the logging keys for logging.New.
func (c *Config) LogOptions() logging.Options {
	opts := logging.DefaultOptions()
	opts.Level = c.LogLevel
	opts.Format = c.LogFormat
	opts.ReportTimestamp = c.LogFile != ""
	return opts
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
