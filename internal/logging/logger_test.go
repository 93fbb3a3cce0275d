package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("chatty"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("pipeline started")
	_ = logger.Sync()

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, line)
	}
	if entry["message"] != "pipeline started" {
		t.Errorf("expected message field, got %v", entry)
	}
	if entry["level"] != "info" {
		t.Errorf("expected lowercase level, got %v", entry["level"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("warn", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("suppressed")
	logger.Warn("kept")
	_ = logger.Sync()

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Error("info entry should be filtered at warn level")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn entry should be emitted")
	}
}
