package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_InvalidFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Error("New() with format xml should fail")
	}
}

func TestNew_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zsync.log")

	logger, err := New(Options{Format: "JSON", Output: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("hidden")
	logger.Info("Found full reviews")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1:\n%s", len(lines), data)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "Found full reviews" || entry["level"] != "info" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNew_VerboseLogsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zsync.log")

	logger, err := New(Options{Verbose: true, Output: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("Processed full review")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "DEBUG") || !strings.Contains(string(data), "Processed full review") {
		t.Errorf("log = %q", data)
	}
}
