package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasks/internal/app"
	"github.com/idilsaglam/tasks/internal/dialog"
	"github.com/idilsaglam/tasks/internal/model"
	"github.com/idilsaglam/tasks/internal/store"
	"github.com/idilsaglam/tasks/internal/ui"
)

// ScriptOptions tune a Script.
type ScriptOptions struct {
	Texts  dialog.Texts
	Group  bool // ls grouped by pending/done
	Logger *log.Logger
	Out    io.Writer
	Err    io.Writer
}

// Script feeds line-based intents to an App, one line per event.
type Script struct {
	app   *app.App
	texts dialog.Texts
	group bool
	log   *log.Logger
	out   io.Writer
	err   io.Writer

	lines *bufio.Scanner
	line  int
}

// NewScript wraps s in an App driven by script lines.
func NewScript(s *store.Store, opt ScriptOptions) *Script {
	if opt.Out == nil {
		opt.Out = io.Discard
	}
	if opt.Err == nil {
		opt.Err = io.Discard
	}
	if opt.Logger == nil {
		opt.Logger = log.New(io.Discard)
	}
	a := app.New(s, app.Options{Texts: opt.Texts, Logger: opt.Logger})
	return &Script{
		app:   a,
		texts: a.Texts(),
		group: opt.Group,
		log:   opt.Logger,
		out:   opt.Out,
		err:   opt.Err,
	}
}

// App exposes the driven App.
func (s *Script) App() *app.App { return s.app }

// Exec runs every line of in and returns how many lines failed.
// A failed line is reported and skipped; only read errors abort.
func (s *Script) Exec(in io.Reader) (int, error) {
	s.lines = bufio.NewScanner(in)
	s.line = 0
	failed := 0
	for {
		text, ok := s.next()
		if !ok {
			break
		}
		text = strings.TrimSpace(text)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := s.exec(text); err != nil {
			failed++
			ui.Fail(s.err, fmt.Sprintf("line %d: %v", s.line, err))
			s.log.Debug("script line failed", "line", s.line, "err", err)
		}
	}
	return failed, s.lines.Err()
}

func (s *Script) next() (string, bool) {
	if !s.lines.Scan() {
		return "", false
	}
	s.line++
	return s.lines.Text(), true
}

func (s *Script) exec(text string) error {
	cmd, rest, _ := strings.Cut(text, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "add":
		if rest == "" {
			return fmt.Errorf("usage: add <title...>")
		}
		return s.add(rest)

	case "toggle", "done":
		t, err := s.task(rest)
		if err != nil {
			return err
		}
		s.app.ToggleTaskDone(t.ID)
		ui.OK(s.out, "toggled")
		return nil

	case "rm":
		t, err := s.task(rest)
		if err != nil {
			return err
		}
		return s.remove(t)

	case "edit":
		n, title, _ := strings.Cut(rest, " ")
		title = strings.TrimSpace(title)
		if title == "" {
			return fmt.Errorf("usage: edit <n> <title...>")
		}
		t, err := s.task(n)
		if err != nil {
			return err
		}
		if !s.app.StartEditing(t.ID) || !s.app.CommitEditing(t.ID, title) {
			return fmt.Errorf("edit: task %d is not editable", t.ID)
		}
		ui.OK(s.out, "edited")
		return nil

	case "ls":
		s.list()
		return nil
	}
	return fmt.Errorf("unknown intent %q", cmd)
}

func (s *Script) add(title string) error {
	if alert, ok := s.app.AddTask(title); !ok {
		ui.Warn(s.out, alert.Title+": "+alert.Body)
		return nil
	}
	ui.OK(s.out, "added")
	return nil
}

// remove asks for confirmation; the answer is the next script line.
// End of input or an empty line dismisses the prompt.
func (s *Script) remove(t model.Task) error {
	prompt, ok := s.app.RequestRemoveTask(t.ID)
	if !ok {
		return fmt.Errorf("rm: task %d cannot be removed now", t.ID)
	}
	fmt.Fprintln(s.out, ui.C(ui.Current().Accent, prompt.String()))

	answer, _ := s.next()
	if strings.TrimSpace(answer) == "" {
		s.app.DismissRemove()
		ui.OK(s.out, "kept")
		return nil
	}
	choice, ok := prompt.Match(answer)
	if !ok {
		s.app.DismissRemove()
		return fmt.Errorf("rm: unknown answer %q", strings.TrimSpace(answer))
	}
	if s.app.AnswerRemove(choice) {
		ui.OK(s.out, "removed")
	} else {
		ui.OK(s.out, "kept")
	}
	return nil
}

// task resolves a 1-based position.
func (s *Script) task(arg string) (model.Task, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return model.Task{}, fmt.Errorf("not a number: %q", arg)
	}
	tasks := s.app.Tasks()
	if n < 1 || n > len(tasks) {
		return model.Task{}, fmt.Errorf("index out of range: have %d, got %d", len(tasks), n)
	}
	return tasks[n-1], nil
}

// -------------- rendering helpers --------------

func (s *Script) list() {
	tasks := s.app.Tasks()
	th := ui.Current()

	d, p := model.Stats(tasks)
	header := fmt.Sprintf("%s %d  %s %d  %s %d",
		ui.C(th.Title, s.texts.Header), s.app.Count(),
		ui.C(th.Success, th.SymDone), d,
		ui.C(th.Pending, th.SymUnchecked), p,
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(th.Muted, ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")
	if s.group {
		lines = append(lines, s.groupLines(tasks)...)
	} else {
		lines = append(lines, s.flatLines(tasks)...)
	}
	ui.Panel(s.out, lines)
}

func (s *Script) flatLines(tasks []model.Task) []string {
	if len(tasks) == 0 {
		return []string{ui.C(ui.Current().Muted, s.texts.Empty)}
	}
	th := ui.Current()
	out := make([]string, 0, len(tasks))
	for i, t := range tasks {
		idx := fmt.Sprintf("%2d.", s.position(t.ID, i))
		box, color := th.BoxUnchecked, th.Muted
		if t.Done {
			box, color = th.BoxChecked, th.Success
		}
		title := t.Title
		if r := []rune(title); len(r) > 80 {
			title = string(r[:77]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s", ui.C(ui.Dim, idx), ui.C(color, box), title))
	}
	return out
}

// position is the 1-based index of id in the full list, so grouped output
// still shows the number scripts address it by.
func (s *Script) position(id int64, fallback int) int {
	for i, t := range s.app.Tasks() {
		if t.ID == id {
			return i + 1
		}
	}
	return fallback + 1
}

func (s *Script) groupLines(tasks []model.Task) []string {
	var pend, done []model.Task
	for _, t := range tasks {
		if t.Done {
			done = append(done, t)
		} else {
			pend = append(pend, t)
		}
	}
	th := ui.Current()
	var lines []string
	lines = append(lines, ui.C(th.Accent, s.texts.PendingLabel))
	if len(pend) == 0 {
		lines = append(lines, ui.C(th.Muted, "(-)"))
	} else {
		lines = append(lines, s.flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(th.Accent, s.texts.DoneLabel))
	if len(done) == 0 {
		lines = append(lines, ui.C(th.Muted, "(-)"))
	} else {
		lines = append(lines, s.flatLines(done)...)
	}
	return lines
}
