package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 0, 10, "░░░░░░░░░░   0%"},
		{1, 2, 10, "█████░░░░░  50%"},
		{3, 3, 5, "█████ 100%"},
		{1, 1, 2, "█████ 100%"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
			t.Errorf("ProgressBar(%d, %d, %d): got %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}

func TestPanel(t *testing.T) {
	SetTheme("mono")
	defer func() {
		SetColorForcing(false, false)
		SetTheme("classic")
	}()

	var buf bytes.Buffer
	Panel(&buf, []string{"Tarefas", "[x] ação"})
	want := strings.Join([]string{
		"+----------+",
		"| Tarefas  |",
		"| [x] ação |",
		"+----------+",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestColorDisabled(t *testing.T) {
	SetColorForcing(true, true)
	defer SetColorForcing(false, false)
	if got := C(fgRed, "x"); got != "x" {
		t.Errorf("expected plain text, got %q", got)
	}
}

func TestColorForced(t *testing.T) {
	SetColorForcing(true, false)
	defer SetColorForcing(false, false)
	if got := C(fgRed, "x"); got != fgRed+"x"+reset {
		t.Errorf("expected colored text, got %q", got)
	}
}
