// Package app is the intent surface a presentation shell talks to.
//
// It owns the task store, the per-item editing registry and the single
// pending remove confirmation. Intents are handled one at a time.
package app

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasks/internal/dialog"
	"github.com/idilsaglam/tasks/internal/editing"
	"github.com/idilsaglam/tasks/internal/model"
	"github.com/idilsaglam/tasks/internal/store"
)

// App binds the store to the editing controllers and the confirm flow.
type App struct {
	store   *store.Store
	editors *editing.Registry
	texts   dialog.Texts
	log     *log.Logger

	pending   *dialog.Confirm
	pendingID int64
}

// Options tune an App. Zero values fall back to defaults.
type Options struct {
	Texts  dialog.Texts
	Hooks  editing.Hooks
	Logger *log.Logger
}

// New wires an App around s.
func New(s *store.Store, opts Options) *App {
	texts := opts.Texts
	if texts == (dialog.Texts{}) {
		texts = dialog.MustLocale(dialog.DefaultLocale)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &App{
		store:   s,
		editors: editing.NewRegistry(opts.Hooks),
		texts:   texts,
		log:     logger,
	}
}

// Tasks is the ordered snapshot to render.
func (a *App) Tasks() []model.Task { return a.store.Tasks() }

// Count is the number of tasks for the header.
func (a *App) Count() int { return a.store.Len() }

// Texts returns the dialog strings in use.
func (a *App) Texts() dialog.Texts { return a.texts }

// AddTask appends title. A duplicate returns the alert to show and
// ok=false; nothing is added then.
func (a *App) AddTask(title string) (dialog.Alert, bool) {
	_, err := a.store.AddTask(title)
	if errors.Is(err, store.ErrDuplicateTitle) {
		a.log.Info("duplicate task title", "title", title)
		return a.texts.DuplicateAlert(), false
	}
	a.sync()
	return dialog.Alert{}, true
}

// ToggleTaskDone flips done on id.
func (a *App) ToggleTaskDone(id int64) {
	a.store.ToggleTaskDone(id)
	a.sync()
}

// RequestRemoveTask starts the confirm flow for id and returns the prompt.
// It returns ok=false without prompting when the item is being edited or
// does not exist. A prompt already pending is dismissed.
func (a *App) RequestRemoveTask(id int64) (dialog.Confirm, bool) {
	if !a.RemoveEnabled(id) {
		a.log.Debug("remove disabled", "id", id)
		return dialog.Confirm{}, false
	}
	if _, found := a.store.Get(id); !found {
		return dialog.Confirm{}, false
	}
	if a.pending != nil {
		a.DismissRemove()
	}
	c := a.texts.RemoveConfirm()
	a.pending, a.pendingID = &c, id
	return c, true
}

// Pending returns the confirmation awaiting an answer, if any.
func (a *App) Pending() (dialog.Confirm, int64, bool) {
	if a.pending == nil {
		return dialog.Confirm{}, 0, false
	}
	return *a.pending, a.pendingID, true
}

// AnswerRemove resolves the pending confirmation. Only a destructive choice
// removes the task; it reports whether a removal happened.
func (a *App) AnswerRemove(choice dialog.Choice) bool {
	if a.pending == nil {
		return false
	}
	id := a.pendingID
	a.pending, a.pendingID = nil, 0
	if !choice.Destructive() {
		a.log.Debug("remove declined", "id", id)
		return false
	}
	a.store.RemoveTask(id)
	a.editors.Forget(id)
	a.sync()
	return true
}

// DismissRemove drops the pending confirmation without removing anything.
func (a *App) DismissRemove() {
	if a.pending != nil {
		a.AnswerRemove(a.pending.Cancel())
	}
}

// RemoveEnabled is false while id is being edited.
func (a *App) RemoveEnabled(id int64) bool { return !a.editors.Editing(id) }

// Editor returns the controller of id, or false when the task is gone.
func (a *App) Editor(id int64) (*editing.Controller, bool) {
	t, found := a.store.Get(id)
	if !found {
		return nil, false
	}
	return a.editors.For(t), true
}

// StartEditing puts id in edit mode.
func (a *App) StartEditing(id int64) bool {
	c, ok := a.Editor(id)
	return ok && c.Start()
}

// UpdateEditing replaces the working title of id. It is refused unless
// the item is editing.
func (a *App) UpdateEditing(id int64, title string) bool {
	c, ok := a.editors.Lookup(id)
	return ok && c.SetBuffer(title)
}

// CancelEditing discards the working title of id.
func (a *App) CancelEditing(id int64) bool {
	c, ok := a.editors.Lookup(id)
	return ok && c.Cancel()
}

// CommitEditing stores newTitle as the title of id and leaves edit mode.
func (a *App) CommitEditing(id int64, newTitle string) bool {
	c, ok := a.editors.Lookup(id)
	if !ok || !c.SetBuffer(newTitle) {
		return false
	}
	c.Commit(a.store)
	a.sync()
	return true
}

// sync lets controllers follow the latest store snapshot.
func (a *App) sync() { a.editors.Reconcile(a.store.Tasks()) }
