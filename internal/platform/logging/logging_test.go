package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewWithWriterWritesNamedEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, "site", LevelInfo)
	if err != nil {
		t.Fatalf("NewWithWriter() error = %v", err)
	}
	logger.Info("listening", zap.String("addr", "localhost:8080"))
	_ = logger.Sync()

	line := buf.String()
	for _, marker := range []string{"INFO", "site", "listening", "localhost:8080"} {
		if !strings.Contains(line, marker) {
			t.Fatalf("log line missing %q: %q", marker, line)
		}
	}
}

func TestNewWithWriterFiltersDebugAtInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, "site", LevelInfo)
	if err != nil {
		t.Fatalf("NewWithWriter() error = %v", err)
	}
	logger.Debug("hidden")
	_ = logger.Sync()
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestNewWithWriterNoneIsSilent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, "site", LevelNone)
	if err != nil {
		t.Fatalf("NewWithWriter() error = %v", err)
	}
	logger.Error("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	if _, err := New("site", "loud"); err == nil {
		t.Fatal("expected unknown level error")
	}
}
