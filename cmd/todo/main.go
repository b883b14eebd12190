package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/tasks/internal/cli"
	"github.com/idilsaglam/tasks/internal/config"
	"github.com/idilsaglam/tasks/internal/logging"
)

func main() {
	// Root flags (apply to every subcommand)
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.Usage = func() {
		cli.PrintHelp(os.Stderr)
		fmt.Fprintln(os.Stderr)
		fs.PrintDefaults()
	}
	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "todo:", err)
		os.Exit(2)
	}

	// The TUI owns the terminal; without a log file its logs are dropped.
	args := fs.Args()
	var fallback io.Writer = os.Stderr
	if len(args) == 0 || args[0] == "tui" {
		fallback = io.Discard
	}
	logger, closer, err := logging.Open(cfg.LogFile, fallback, cfg.LogOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, "todo:", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "files", cfg.Files, "theme", cfg.Theme, "locale", cfg.Locale)

	// Hand the remaining args to the CLI runner.
	code := cli.Run(args, cli.Options{
		Config: cfg,
		Logger: logger,
	})
	closer.Close()
	os.Exit(code)
}
