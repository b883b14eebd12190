// Package store holds the in-memory task list.
//
// State is volatile: a new Store starts empty and nothing is written to disk.
// Every mutation replaces the backing slice, so a slice returned by Tasks
// is never changed by later calls.
package store

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasks/internal/model"
)

// Store is the single source of truth for the task collection.
// It is not safe for concurrent use; callers process intents one at a time.
type Store struct {
	tasks []model.Task
	ids   *Clock
	log   *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the id clock, mostly for tests.
func WithClock(c *Clock) Option {
	return func(s *Store) { s.ids = c }
}

// WithLogger sets the logger used for mutation debug logs.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		tasks: []model.Task{},
		ids:   NewClock(nil),
		log:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tasks returns the current snapshot in insertion order.
func (s *Store) Tasks() []model.Task { return s.tasks }

// Len is the number of tasks, shown in the header.
func (s *Store) Len() int { return len(s.tasks) }

// Get looks a task up by id.
func (s *Store) Get(id int64) (model.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// findByTitle returns the first task whose title matches exactly.
func (s *Store) findByTitle(title string) (model.Task, bool) {
	for _, t := range s.tasks {
		if t.Title == title {
			return t, true
		}
	}
	return model.Task{}, false
}

// AddTask appends a new pending task. The title is stored as given.
// A title already present in the list is rejected with *DuplicateTitleError
// and the list is left untouched.
func (s *Store) AddTask(title string) (model.Task, error) {
	if existing, found := s.findByTitle(title); found {
		s.log.Debug("add rejected", "title", title, "existing", existing.ID)
		return model.Task{}, &DuplicateTitleError{Title: title, ExistingID: existing.ID}
	}
	t := model.Task{ID: s.ids.Next(), Title: title}

	next := make([]model.Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	s.tasks = append(next, t)
	s.log.Debug("task added", "id", t.ID, "title", t.Title)
	return t, nil
}

// ToggleTaskDone flips done on the matching task. Unknown ids are ignored.
func (s *Store) ToggleTaskDone(id int64) {
	s.replace(id, func(t *model.Task) {
		t.Done = !t.Done
		s.log.Debug("task toggled", "id", id, "done", t.Done)
	})
}

// EditTask replaces the title of the matching task. Unlike AddTask it does
// not check for duplicate titles. Unknown ids are ignored.
func (s *Store) EditTask(id int64, title string) {
	s.replace(id, func(t *model.Task) {
		t.Title = title
		s.log.Debug("task edited", "id", id, "title", title)
	})
}

// RemoveTask drops the matching task and keeps the order of the rest.
// It does not ask for confirmation; see dialog.Confirm. Unknown ids are ignored.
func (s *Store) RemoveTask(id int64) {
	next := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID == id {
			s.log.Debug("task removed", "id", id, "title", t.Title)
			continue
		}
		next = append(next, t)
	}
	s.tasks = next
}

// replace copies every task into a fresh slice and applies fn to the match.
func (s *Store) replace(id int64, fn func(*model.Task)) {
	next := make([]model.Task, len(s.tasks))
	copy(next, s.tasks)
	for i := range next {
		if next[i].ID == id {
			fn(&next[i])
		}
	}
	s.tasks = next
}
