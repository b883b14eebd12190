package model

// Task is the domain model for a todo entry.
// Treat it as a value: the store hands out copies and never mutates a Task
// that a previous snapshot still holds.
type Task struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Stats counts done and pending tasks.
func Stats(tasks []Task) (done, pending int) {
	for _, t := range tasks {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
