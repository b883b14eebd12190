package editing

import (
	"testing"

	"github.com/idilsaglam/tasks/internal/model"
)

// recordingHooks counts focus events per item.
type recordingHooks struct {
	focus map[int64]int
	blur  map[int64]int
}

func newRecordingHooks() *recordingHooks {
	return &recordingHooks{focus: map[int64]int{}, blur: map[int64]int{}}
}

func (h *recordingHooks) Focus(id int64) { h.focus[id]++ }
func (h *recordingHooks) Blur(id int64)  { h.blur[id]++ }

// fakeEditor records EditTask calls.
type fakeEditor struct {
	calls []string
	ids   []int64
}

func (f *fakeEditor) EditTask(id int64, title string) {
	f.ids = append(f.ids, id)
	f.calls = append(f.calls, title)
}

func TestControllerStart(t *testing.T) {
	hooks := newRecordingHooks()
	c := NewController(1, "Buy milk", hooks)

	if c.State() != Viewing {
		t.Fatalf("expected initial state viewing, got %s", c.State())
	}
	if c.Buffer() != "Buy milk" {
		t.Fatalf("expected buffer to mirror title, got %q", c.Buffer())
	}
	if !c.Start() {
		t.Fatal("expected Start to succeed")
	}
	if c.Start() {
		t.Error("expected second Start to be refused")
	}
	if hooks.focus[1] != 1 {
		t.Errorf("expected exactly one focus, got %d", hooks.focus[1])
	}
	if c.RemoveEnabled() {
		t.Error("expected remove to be disabled while editing")
	}
}

func TestControllerBufferReadOnlyWhileViewing(t *testing.T) {
	c := NewController(1, "a", nil)
	if c.SetBuffer("b") {
		t.Fatal("expected SetBuffer to be refused while viewing")
	}
	if c.Buffer() != "a" {
		t.Errorf("expected buffer unchanged, got %q", c.Buffer())
	}
}

func TestControllerCancel(t *testing.T) {
	hooks := newRecordingHooks()
	ed := &fakeEditor{}
	c := NewController(7, "original", hooks)

	c.Start()
	c.SetBuffer("changed")
	if !c.Cancel() {
		t.Fatal("expected Cancel to succeed")
	}
	if c.Buffer() != "original" {
		t.Errorf("expected buffer reverted, got %q", c.Buffer())
	}
	if c.State() != Viewing || !c.RemoveEnabled() {
		t.Error("expected viewing with remove enabled")
	}
	if hooks.blur[7] != 1 {
		t.Errorf("expected exactly one blur, got %d", hooks.blur[7])
	}
	if len(ed.calls) != 0 {
		t.Errorf("expected no edit on cancel, got %v", ed.calls)
	}
	if c.Cancel() {
		t.Error("expected Cancel while viewing to be refused")
	}
	if hooks.blur[7] != 1 {
		t.Errorf("expected no extra blur, got %d", hooks.blur[7])
	}
}

func TestControllerCommit(t *testing.T) {
	hooks := newRecordingHooks()
	ed := &fakeEditor{}
	c := NewController(3, "old", hooks)

	if c.Commit(ed) {
		t.Fatal("expected Commit while viewing to be refused")
	}

	c.Start()
	c.SetBuffer("New Title")
	if !c.Commit(ed) {
		t.Fatal("expected Commit to succeed")
	}
	if len(ed.calls) != 1 || ed.calls[0] != "New Title" || ed.ids[0] != 3 {
		t.Fatalf("unexpected edits: ids=%v titles=%v", ed.ids, ed.calls)
	}
	if c.State() != Viewing {
		t.Errorf("expected viewing after commit, got %s", c.State())
	}
	if hooks.focus[3] != 1 || hooks.blur[3] != 1 {
		t.Errorf("expected one focus and one blur, got %d/%d", hooks.focus[3], hooks.blur[3])
	}
}

func TestControllerSync(t *testing.T) {
	t.Run("buffer tracks title while viewing", func(t *testing.T) {
		c := NewController(1, "a", nil)
		c.Sync("b")
		if c.Buffer() != "b" {
			t.Errorf("expected buffer b, got %q", c.Buffer())
		}
	})

	t.Run("buffer is kept while editing", func(t *testing.T) {
		c := NewController(1, "a", nil)
		c.Start()
		c.SetBuffer("typing")
		c.Sync("b")
		if c.Buffer() != "typing" {
			t.Errorf("expected in-progress edit kept, got %q", c.Buffer())
		}
		c.Cancel()
		if c.Buffer() != "b" {
			t.Errorf("expected cancel to revert to current title b, got %q", c.Buffer())
		}
	})
}

func TestRegistry(t *testing.T) {
	hooks := newRecordingHooks()
	r := NewRegistry(hooks)
	a := model.Task{ID: 1, Title: "a"}
	b := model.Task{ID: 2, Title: "b"}

	ca := r.For(a)
	if r.For(a) != ca {
		t.Fatal("expected For to return the same controller")
	}
	cb := r.For(b)
	ca.Start()
	if !r.Editing(1) || r.Editing(2) {
		t.Fatal("expected only item 1 to be editing")
	}
	if cb.State() != Viewing {
		t.Error("expected item 2 unaffected")
	}

	ca.SetBuffer("draft")
	r.Reconcile([]model.Task{{ID: 1, Title: "a2"}})
	if _, ok := r.Lookup(2); ok {
		t.Error("expected controller of removed task to be dropped")
	}
	if ca.Buffer() != "draft" {
		t.Errorf("expected draft kept, got %q", ca.Buffer())
	}
	if r.Len() != 1 {
		t.Errorf("expected 1 controller, got %d", r.Len())
	}

	r.Forget(1)
	if r.Editing(1) {
		t.Error("expected forgotten item not to be editing")
	}
}
