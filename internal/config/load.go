package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load builds the configuration from defaults, config files, environment
// and the flags in args. fs receives the flag definitions so callers can
// print usage; remaining positional args are left in fs.Args().
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. User config file
	if p := findUserConfigFile(); p != "" {
		if err := loadConfigFile(cfg, p); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", p, err)
		}
	}

	// 3. Project config file (overrides user config)
	if p := findProjectConfigFile(); p != "" {
		if err := loadConfigFile(cfg, p); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", p, err)
		}
	}

	// 4. Environment
	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}

	// 5. Flags
	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	cfg.LogFile = expandPath(cfg.LogFile)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadConfigFile decodes TOML from path over the values already in cfg.
func loadConfigFile(cfg *Config, path string) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	cfg.Files = append(cfg.Files, path)
	return nil
}

// loadFromEnv overrides config from TODO_* environment variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TODO_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TODO_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TODO_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TODO_NO_COLOR"); v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("TODO_NO_COLOR: %w", err)
		}
		cfg.NoColor = b
	}
	return nil
}

// parseFlags defines the root flags on fs and parses args into cfg.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("todo", flag.ContinueOnError)
	}
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme (classic|neon|mono)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "dialog language (pt-BR|en)")
	fs.BoolVar(&cfg.Group, "group", cfg.Group, "group output by pending/done")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colors")
	fs.BoolVar(&cfg.AltScreen, "alt-screen", cfg.AltScreen, "run the TUI in the alternate screen")
	fs.IntVar(&cfg.CharLimit, "char-limit", cfg.CharLimit, "maximum title length in the TUI input")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text|json|logfmt)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "append logs to this file")
	return fs.Parse(args)
}
