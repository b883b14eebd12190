package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("writes at or above level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(&buf, Options{Level: "info", Format: "logfmt", Prefix: "todo"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		l.Debug("hidden")
		l.Info("task added", "id", 42)
		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("expected debug to be filtered, got %q", out)
		}
		if !strings.Contains(out, "task added") || !strings.Contains(out, "id=42") {
			t.Errorf("expected structured info line, got %q", out)
		}
	})

	t.Run("unknown level returns error", func(t *testing.T) {
		if _, err := New(io.Discard, Options{Level: "loud"}); err == nil {
			t.Fatal("expected error for unknown level, got nil")
		}
	})

	t.Run("unknown format returns error", func(t *testing.T) {
		if _, err := New(io.Discard, Options{Level: "info", Format: "xml"}); err == nil {
			t.Fatal("expected error for unknown format, got nil")
		}
	})
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.log")
	opts := DefaultOptions()
	opts.Level = "debug"

	l, closer, err := Open(path, io.Discard, opts)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	l.Debug("hello")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("expected log file to contain message, got %q", data)
	}
}
