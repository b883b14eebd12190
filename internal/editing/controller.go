// Package editing tracks whether a task item's title is being edited.
package editing

// State of a Controller.
type State int

const (
	Viewing State = iota
	Editing
)

func (s State) String() string {
	if s == Editing {
		return "editing"
	}
	return "viewing"
}

// TaskEditor receives committed titles. *store.Store satisfies it.
type TaskEditor interface {
	EditTask(id int64, title string)
}

// Hooks run on state entry. Focus fires once when a controller enters
// Editing, Blur once when it returns to Viewing.
type Hooks interface {
	Focus(id int64)
	Blur(id int64)
}

type noHooks struct{}

func (noHooks) Focus(int64) {}
func (noHooks) Blur(int64)  {}

// Controller is the edit state of one task item.
type Controller struct {
	id     int64
	title  string // task's current title
	buffer string
	state  State
	hooks  Hooks
}

// NewController starts in Viewing with the buffer equal to title.
func NewController(id int64, title string, hooks Hooks) *Controller {
	if hooks == nil {
		hooks = noHooks{}
	}
	return &Controller{id: id, title: title, buffer: title, hooks: hooks}
}

func (c *Controller) ID() int64      { return c.id }
func (c *Controller) State() State   { return c.state }
func (c *Controller) Editing() bool  { return c.state == Editing }
func (c *Controller) Buffer() string { return c.buffer }

// RemoveEnabled is false while editing so a delete cannot race the edit.
func (c *Controller) RemoveEnabled() bool { return c.state == Viewing }

// Start enters Editing. It returns false if already editing.
func (c *Controller) Start() bool {
	if c.state == Editing {
		return false
	}
	c.state = Editing
	c.hooks.Focus(c.id)
	return true
}

// SetBuffer changes the working title. The surface is read-only while
// Viewing, so it returns false and keeps the buffer then.
func (c *Controller) SetBuffer(s string) bool {
	if c.state != Editing {
		return false
	}
	c.buffer = s
	return true
}

// Cancel discards the working title and returns to Viewing.
func (c *Controller) Cancel() bool {
	if c.state != Editing {
		return false
	}
	c.buffer = c.title
	c.enterViewing()
	return true
}

// Commit sends the working title to ed and returns to Viewing.
func (c *Controller) Commit(ed TaskEditor) bool {
	if c.state != Editing {
		return false
	}
	ed.EditTask(c.id, c.buffer)
	c.title = c.buffer
	c.enterViewing()
	return true
}

// Sync records an outside change to the task's title. The buffer follows it
// only while Viewing; an in-progress edit is never clobbered.
func (c *Controller) Sync(title string) {
	c.title = title
	if c.state == Viewing {
		c.buffer = title
	}
}

func (c *Controller) enterViewing() {
	c.state = Viewing
	c.hooks.Blur(c.id)
}
