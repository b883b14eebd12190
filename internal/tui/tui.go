// Package tui is the interactive terminal shell around the task list.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasks/internal/app"
	"github.com/idilsaglam/tasks/internal/dialog"
	"github.com/idilsaglam/tasks/internal/model"
	"github.com/idilsaglam/tasks/internal/store"
)

// Options tune the interactive program.
type Options struct {
	Texts     dialog.Texts
	Logger    *log.Logger
	CharLimit int
	AltScreen bool
	Input     io.Reader
	Output    io.Writer
}

// taskItem adapts model.Task to bubbles/list.Item
type taskItem struct {
	ID   int64
	Text string
	Done bool
}

func (i taskItem) FilterValue() string { return i.Text }

// inputFocus is the editing hook: the shared text input gains focus when
// an item enters Editing and loses it when the item returns to Viewing.
type inputFocus struct {
	ti  *textinput.Model
	cmd tea.Cmd
}

func (f *inputFocus) Focus(int64) { f.cmd = f.ti.Focus() }
func (f *inputFocus) Blur(int64)  { f.ti.Blur() }

// take returns the blink command produced by the last Focus.
func (f *inputFocus) take() tea.Cmd {
	cmd := f.cmd
	f.cmd = nil
	return cmd
}

type modelTUI struct {
	app   *app.App
	list  list.Model
	ti    *textinput.Model // shared text input (used for add & edit)
	focus *inputFocus
	keys  *keyMap
	texts dialog.Texts
	log   *log.Logger

	width, height int

	// Inline add
	adding bool
	addErr string

	// Inline edit of the item whose controller is Editing
	editing bool
	editID  int64
	editErr string

	// Modal surfaces
	alert   *dialog.Alert
	confirm *dialog.Confirm
	choice  int
}

// Custom delegate to control how items render (single line)
type itemDelegate struct {
	app *app.App
	ti  *textinput.Model
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(taskItem)

	box := mutedStyle.Render(boxUnchecked)
	text := it.Text
	if it.Done {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	if !d.app.RemoveEnabled(it.ID) {
		// editing in place; the trash action is greyed out
		fmt.Fprint(w, prefix+box+" "+d.ti.View()+" "+mutedStyle.Render("✎"))
		return
	}
	fmt.Fprint(w, prefix+box+" "+text)
}

func newModel(s *store.Store, opts Options) modelTUI {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Texts == (dialog.Texts{}) {
		opts.Texts = dialog.MustLocale(dialog.DefaultLocale)
	}
	if opts.CharLimit <= 0 {
		opts.CharLimit = 200
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = opts.CharLimit
	focus := &inputFocus{ti: &ti}

	a := app.New(s, app.Options{Texts: opts.Texts, Hooks: focus, Logger: logger})
	keys := newKeyMap()

	l := list.New(nil, itemDelegate{app: a, ti: &ti}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")
	l.AdditionalShortHelpKeys = keys.listHelp
	l.AdditionalFullHelpKeys = keys.listHelp

	m := modelTUI{
		app:    a,
		list:   l,
		ti:     &ti,
		focus:  focus,
		keys:   &keys,
		texts:  opts.Texts,
		log:    logger,
		width:  80,
		height: 24,
	}
	m.refresh()
	return m
}

// Run starts the Bubble Tea list over s and blocks until the user quits.
func Run(s *store.Store, opts Options) error {
	m := newModel(s, opts)

	var progOpts []tea.ProgramOption
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(m, progOpts...)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := finalModel.(modelTUI); ok {
		m.log.Info("session ended", "tasks", fm.app.Count())
	}
	return nil
}

// Update and View implement Bubble Tea's Model on modelTUI
func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		return m, nil
	}
	km, isKey := msg.(tea.KeyMsg)

	switch {
	case m.alert != nil && isKey:
		m.alert = nil
		return m, nil
	case m.confirm != nil:
		if isKey {
			return m.updateConfirm(km)
		}
		return m, nil
	case m.adding:
		return m.updateAdd(msg)
	case m.editing:
		return m.updateEdit(msg)
	}

	if isKey && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(km, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(km, m.keys.Toggle):
			if it, ok := m.selected(); ok {
				m.app.ToggleTaskDone(it.ID)
				return m, m.refresh()
			}
			return m, nil
		case key.Matches(km, m.keys.Remove):
			if it, ok := m.selected(); ok {
				if c, ok := m.app.RequestRemoveTask(it.ID); ok {
					m.confirm, m.choice = &c, c.Default
				}
			}
			return m, nil
		case key.Matches(km, m.keys.Add):
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			m.ti.Placeholder = "New task title..."
			return m, m.ti.Focus()
		case key.Matches(km, m.keys.Edit):
			return m.startEdit()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// add mode
func (m modelTUI) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.Submit):
			title := m.ti.Value()
			if strings.TrimSpace(title) == "" {
				m.addErr = "Title cannot be empty"
				return m, nil
			}
			m.adding = false
			m.ti.SetValue("")
			m.ti.Blur()
			if alert, ok := m.app.AddTask(title); !ok {
				m.alert = &alert
				return m, nil
			}
			cmd := m.refresh()
			m.list.Select(len(m.list.Items()) - 1)
			return m, cmd
		case key.Matches(km, m.keys.Cancel):
			m.adding = false
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	*m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m modelTUI) startEdit() (tea.Model, tea.Cmd) {
	it, ok := m.selected()
	if !ok || !m.app.StartEditing(it.ID) {
		return m, nil
	}
	c, _ := m.app.Editor(it.ID)
	m.editing, m.editID, m.editErr = true, it.ID, ""
	m.ti.SetValue(c.Buffer())
	m.ti.CursorEnd()
	m.ti.Placeholder = "Edit task title..."
	m.keys.Remove.SetEnabled(false)
	return m, m.focus.take()
}

// edit mode; keystrokes feed the item's working title
func (m modelTUI) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.Submit):
			title := m.ti.Value()
			if strings.TrimSpace(title) == "" {
				m.editErr = "Title cannot be empty"
				return m, nil
			}
			m.app.CommitEditing(m.editID, title)
			m.endEdit()
			return m, m.refresh()
		case key.Matches(km, m.keys.Cancel):
			m.app.CancelEditing(m.editID)
			m.endEdit()
			return m, nil
		}
	}
	var cmd tea.Cmd
	*m.ti, cmd = m.ti.Update(msg)
	m.app.UpdateEditing(m.editID, m.ti.Value())
	return m, cmd
}

func (m *modelTUI) endEdit() {
	m.editing, m.editID, m.editErr = false, 0, ""
	m.ti.SetValue("")
	m.keys.Remove.SetEnabled(true)
}

// confirm dialog; nothing is removed until a destructive choice is made
func (m modelTUI) updateConfirm(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.confirm.Choices)
	switch {
	case key.Matches(km, m.keys.Yes):
		for _, ch := range m.confirm.Choices {
			if ch.Destructive() {
				return m.answer(ch)
			}
		}
	case key.Matches(km, m.keys.No):
		return m.answer(m.confirm.Cancel())
	case key.Matches(km, m.keys.Left):
		m.choice = (m.choice + n - 1) % n
	case key.Matches(km, m.keys.Right):
		m.choice = (m.choice + 1) % n
	case key.Matches(km, m.keys.Submit):
		return m.answer(m.confirm.Choices[m.choice])
	}
	return m, nil
}

func (m modelTUI) answer(ch dialog.Choice) (tea.Model, tea.Cmd) {
	m.confirm = nil
	if !m.app.AnswerRemove(ch) {
		return m, nil
	}
	return m, m.refresh()
}

func (m modelTUI) selected() (taskItem, bool) {
	it, ok := m.list.SelectedItem().(taskItem)
	return it, ok
}

// refresh rebuilds the list items and header from the current snapshot.
func (m *modelTUI) refresh() tea.Cmd {
	tasks := m.app.Tasks()
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskItem{ID: t.ID, Text: t.Title, Done: t.Done})
	}

	dn, pn := model.Stats(tasks)
	m.list.Title = fmt.Sprintf("%s %d   %s %d  %s %d",
		m.texts.Header, m.app.Count(),
		successStyle.Render("✔"), dn,
		pendingStyle.Render("•"), pn,
	)
	cmd := m.list.SetItems(items)
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	return cmd
}

func (m modelTUI) View() string {
	listHeight := m.height - 4
	if m.adding || m.confirm != nil || m.alert != nil {
		listHeight = m.height - 8
	}
	m.list.SetSize(m.width-4, listHeight)

	content := m.list.View()
	switch {
	case m.confirm != nil:
		content += "\n" + m.confirmView()
	case m.alert != nil:
		body := errorStyle.Render(m.alert.Title) + "\n" + m.alert.Body
		content += "\n" + barStyle(lipgloss.Color("9")).Render(body)
	case m.adding:
		title := "Add new task"
		if m.addErr != "" {
			title += " - " + errorStyle.Render(m.addErr)
		}
		content += "\n" + barStyle(lipgloss.Color("8")).Render(title+"\n> "+m.ti.View())
	case m.editing && m.editErr != "":
		content += "\n" + errorStyle.Render(m.editErr)
	}
	return panelString(content)
}

func (m modelTUI) confirmView() string {
	c := m.confirm
	buttons := make([]string, 0, len(c.Choices))
	for i, ch := range c.Choices {
		style := choiceStyle
		if ch.Destructive() {
			style = destructiveChoiceStyle
		}
		if i == m.choice {
			style = style.Reverse(true)
		}
		buttons = append(buttons, style.Render(ch.Label))
	}
	body := accentStyle.Render(c.Title) + "\n" + c.Body + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
	return barStyle(lipgloss.Color("12")).Render(body)
}
