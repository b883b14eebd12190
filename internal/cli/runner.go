package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasks/internal/config"
	"github.com/idilsaglam/tasks/internal/store"
	"github.com/idilsaglam/tasks/internal/tui"
	"github.com/idilsaglam/tasks/internal/ui"
)

// Options carry the loaded config and the process streams.
type Options struct {
	Config *config.Config
	Logger *log.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o *Options) defaults() {
	if o.Config == nil {
		o.Config = config.Default()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// With no subcommand it starts the interactive list.
func Run(args []string, opt Options) int {
	opt.defaults()
	ui.SetColorForcing(false, opt.Config.NoColor)
	ui.SetTheme(opt.Config.Theme)

	cmd, a := "tui", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "tui":
		if len(a) != 0 {
			ui.Fail(opt.Stderr, "usage: todo tui")
			return 2
		}
		return doTUI(opt)

	case "run":
		if len(a) > 1 {
			ui.Fail(opt.Stderr, "usage: todo run [script]")
			return 2
		}
		path := "-"
		if len(a) == 1 {
			path = a[0]
		}
		return doScript(path, opt)
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - a tiny in-memory task list

Usage:
  todo [flags] [subcommand] [args]

Subcommands:
  tui                Interactive list (default)
  run [script]       Apply intents from a script file, or stdin when omitted or "-"

Script lines:
  add <title...>     Add a task (duplicate titles are rejected)
  toggle <n>         Toggle done for the task at 1-based position n
  rm <n>             Ask to remove task n; the next line answers (sim|nao)
  edit <n> <title>   Edit the title of task n
  ls                 Print the list
  # ...              Comment

Flags:
  --theme --locale --group --no-color --alt-screen --char-limit
  --log-level --log-format --log-file

Tasks live in memory only; every run starts with an empty list.
`)
}

func doTUI(opt Options) int {
	cfg := opt.Config
	err := tui.Run(store.New(store.WithLogger(opt.Logger)), tui.Options{
		Texts:     cfg.Texts(),
		Logger:    opt.Logger,
		CharLimit: cfg.CharLimit,
		AltScreen: cfg.AltScreen,
		Input:     opt.Stdin,
		Output:    opt.Stdout,
	})
	if err != nil {
		ui.Fail(opt.Stderr, "tui: "+err.Error())
		return 1
	}
	return 0
}

func doScript(path string, opt Options) int {
	in := opt.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			ui.Fail(opt.Stderr, "open script: "+err.Error())
			return 1
		}
		defer f.Close()
		in = f
	}

	s := NewScript(store.New(store.WithLogger(opt.Logger)), ScriptOptions{
		Texts:  opt.Config.Texts(),
		Group:  opt.Config.Group,
		Logger: opt.Logger,
		Out:    opt.Stdout,
		Err:    opt.Stderr,
	})
	failed, err := s.Exec(in)
	if err != nil {
		ui.Fail(opt.Stderr, "read script: "+err.Error())
		return 1
	}
	if failed > 0 {
		return 1
	}
	return 0
}
