package editing

import "github.com/idilsaglam/tasks/internal/model"

// Registry maps task ids to their controllers. Each item's state is
// independent; resetting one never touches another.
type Registry struct {
	items map[int64]*Controller
	hooks Hooks
}

// NewRegistry passes hooks to every controller it creates.
func NewRegistry(hooks Hooks) *Registry {
	return &Registry{items: map[int64]*Controller{}, hooks: hooks}
}

// For returns the controller of task, creating it in Viewing if needed.
func (r *Registry) For(task model.Task) *Controller {
	c, ok := r.items[task.ID]
	if !ok {
		c = NewController(task.ID, task.Title, r.hooks)
		r.items[task.ID] = c
	}
	return c
}

// Lookup returns the controller of id if one exists.
func (r *Registry) Lookup(id int64) (*Controller, bool) {
	c, ok := r.items[id]
	return c, ok
}

// Editing reports whether the item id is in Editing.
func (r *Registry) Editing(id int64) bool {
	c, ok := r.items[id]
	return ok && c.Editing()
}

// Forget drops the controller of id.
func (r *Registry) Forget(id int64) { delete(r.items, id) }

// Len is the number of tracked items.
func (r *Registry) Len() int { return len(r.items) }

// Reconcile brings the registry in line with a store snapshot: controllers
// of vanished tasks are dropped, the rest see the task's current title.
func (r *Registry) Reconcile(tasks []model.Task) {
	seen := make(map[int64]struct{}, len(tasks))
	for _, t := range tasks {
		seen[t.ID] = struct{}{}
		if c, ok := r.items[t.ID]; ok {
			c.Sync(t.Title)
		}
	}
	for id := range r.items {
		if _, ok := seen[id]; !ok {
			delete(r.items, id)
		}
	}
}
