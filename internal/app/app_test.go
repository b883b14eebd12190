package app

import (
	"reflect"
	"testing"

	"github.com/idilsaglam/tasks/internal/dialog"
	"github.com/idilsaglam/tasks/internal/model"
	"github.com/idilsaglam/tasks/internal/store"
)

type focusLog struct{ events []string }

func (f *focusLog) Focus(int64) { f.events = append(f.events, "focus") }
func (f *focusLog) Blur(int64)  { f.events = append(f.events, "blur") }

func newApp(t *testing.T, titles ...string) (*App, []model.Task) {
	t.Helper()
	a := New(store.New(), Options{})
	for _, title := range titles {
		if _, ok := a.AddTask(title); !ok {
			t.Fatalf("unexpected duplicate %q", title)
		}
	}
	return a, a.Tasks()
}

func TestAddTaskDuplicate(t *testing.T) {
	a, _ := newApp(t, "X")
	alert, ok := a.AddTask("X")
	if ok {
		t.Fatal("expected duplicate to be rejected")
	}
	if alert.Title != "Task já cadastrada" || alert.Body != "Você não pode cadastar uma task com o mesmo nome" {
		t.Errorf("unexpected alert: %+v", alert)
	}
	if a.Count() != 1 {
		t.Errorf("expected 1 task, got %d", a.Count())
	}
}

func TestAddTaskLocalizedAlert(t *testing.T) {
	a := New(store.New(), Options{Texts: dialog.MustLocale("en")})
	a.AddTask("X")
	alert, _ := a.AddTask("X")
	if alert.Title != "Task already registered" {
		t.Errorf("expected english alert, got %+v", alert)
	}
}

func TestRemoveFlow(t *testing.T) {
	t.Run("confirm removes and keeps order", func(t *testing.T) {
		a, tasks := newApp(t, "a", "b", "c")
		prompt, ok := a.RequestRemoveTask(tasks[1].ID)
		if !ok {
			t.Fatal("expected prompt")
		}
		if prompt.Title != "Remover item" || prompt.Cancel().Label != "nao" {
			t.Errorf("unexpected prompt: %+v", prompt)
		}
		if a.Count() != 3 {
			t.Fatal("expected no removal before an answer")
		}
		yes, _ := prompt.Match("sim")
		if !a.AnswerRemove(yes) {
			t.Fatal("expected removal")
		}
		got := a.Tasks()
		if len(got) != 2 || got[0].Title != "a" || got[1].Title != "c" {
			t.Errorf("expected [a c], got %+v", got)
		}
		if _, _, pending := a.Pending(); pending {
			t.Error("expected no pending prompt")
		}
	})

	t.Run("declining leaves the list unchanged", func(t *testing.T) {
		a, tasks := newApp(t, "a", "b")
		prompt, _ := a.RequestRemoveTask(tasks[0].ID)
		if a.AnswerRemove(prompt.Cancel()) {
			t.Fatal("expected no removal")
		}
		if !reflect.DeepEqual(tasks, a.Tasks()) {
			t.Errorf("expected %+v, got %+v", tasks, a.Tasks())
		}
	})

	t.Run("dismissing leaves the list unchanged", func(t *testing.T) {
		a, tasks := newApp(t, "a")
		a.RequestRemoveTask(tasks[0].ID)
		a.DismissRemove()
		if a.Count() != 1 {
			t.Errorf("expected 1 task, got %d", a.Count())
		}
		if a.AnswerRemove(dialog.Choice{Style: dialog.StyleDestructive}) {
			t.Error("expected answer without a pending prompt to be ignored")
		}
	})

	t.Run("new request replaces the pending one", func(t *testing.T) {
		a, tasks := newApp(t, "a", "b")
		a.RequestRemoveTask(tasks[0].ID)
		a.RequestRemoveTask(tasks[1].ID)
		_, id, ok := a.Pending()
		if !ok || id != tasks[1].ID {
			t.Fatalf("expected pending removal of %d, got %d", tasks[1].ID, id)
		}
	})

	t.Run("disabled while editing", func(t *testing.T) {
		a, tasks := newApp(t, "a")
		id := tasks[0].ID
		a.StartEditing(id)
		if a.RemoveEnabled(id) {
			t.Fatal("expected remove disabled")
		}
		if _, ok := a.RequestRemoveTask(id); ok {
			t.Fatal("expected no prompt while editing")
		}
		a.CancelEditing(id)
		if _, ok := a.RequestRemoveTask(id); !ok {
			t.Fatal("expected prompt after cancel")
		}
	})

	t.Run("missing id", func(t *testing.T) {
		a, _ := newApp(t, "a")
		if _, ok := a.RequestRemoveTask(99); ok {
			t.Error("expected no prompt for a missing id")
		}
	})
}

func TestEditingFlow(t *testing.T) {
	t.Run("commit updates the title", func(t *testing.T) {
		hooks := &focusLog{}
		a := New(store.New(), Options{Hooks: hooks})
		a.AddTask("Old")
		a.ToggleTaskDone(a.Tasks()[0].ID)
		before := a.Tasks()[0]

		if !a.StartEditing(before.ID) {
			t.Fatal("expected StartEditing to succeed")
		}
		if !a.CommitEditing(before.ID, "New Title") {
			t.Fatal("expected CommitEditing to succeed")
		}
		after := a.Tasks()[0]
		if after.Title != "New Title" || after.ID != before.ID || after.Done != before.Done {
			t.Errorf("unexpected task: %+v", after)
		}
		c, _ := a.Editor(before.ID)
		if c.Editing() {
			t.Error("expected viewing after commit")
		}
		if !reflect.DeepEqual(hooks.events, []string{"focus", "blur"}) {
			t.Errorf("expected focus then blur, got %v", hooks.events)
		}
	})

	t.Run("cancel keeps the title", func(t *testing.T) {
		a, tasks := newApp(t, "Keep")
		id := tasks[0].ID
		a.StartEditing(id)
		if !a.UpdateEditing(id, "draft") {
			t.Fatal("expected buffer update while editing")
		}
		a.CancelEditing(id)
		if got := a.Tasks()[0].Title; got != "Keep" {
			t.Errorf("expected Keep, got %q", got)
		}
		c, _ := a.Editor(id)
		if c.Buffer() != "Keep" {
			t.Errorf("expected buffer reset, got %q", c.Buffer())
		}
	})

	t.Run("commit without start is refused", func(t *testing.T) {
		a, tasks := newApp(t, "a")
		if a.CommitEditing(tasks[0].ID, "b") {
			t.Fatal("expected commit to be refused while viewing")
		}
		if a.UpdateEditing(tasks[0].ID, "b") {
			t.Fatal("expected update to be refused while viewing")
		}
		if a.Tasks()[0].Title != "a" {
			t.Error("expected title unchanged")
		}
	})

	t.Run("editing is per item", func(t *testing.T) {
		a, tasks := newApp(t, "a", "b")
		a.StartEditing(tasks[0].ID)
		if !a.RemoveEnabled(tasks[1].ID) {
			t.Error("expected other item unaffected")
		}
	})

	t.Run("missing id", func(t *testing.T) {
		a, _ := newApp(t)
		if a.StartEditing(1) || a.CancelEditing(1) || a.CommitEditing(1, "x") {
			t.Error("expected all editing intents on a missing id to be refused")
		}
	})

	t.Run("edit may duplicate another title", func(t *testing.T) {
		a, tasks := newApp(t, "a", "b")
		a.StartEditing(tasks[1].ID)
		a.CommitEditing(tasks[1].ID, "a")
		if a.Tasks()[1].Title != "a" {
			t.Errorf("expected duplicate title via edit, got %q", a.Tasks()[1].Title)
		}
	})
}

func TestToggleMissingID(t *testing.T) {
	a, tasks := newApp(t, "a")
	a.ToggleTaskDone(12345)
	if !reflect.DeepEqual(tasks, a.Tasks()) {
		t.Errorf("expected unchanged, got %+v", a.Tasks())
	}
}
