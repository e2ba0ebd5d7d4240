package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger_CreatesDirAndWritesJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	log, err := NewLogger(dir)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	log.Info("probe_checked_from_logging_test")
	if err := log.Sync(); err != nil {
		t.Logf("sync: %v (ok on some platforms)", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	line := string(b)
	if !strings.Contains(line, `"msg":"probe_checked_from_logging_test"`) || !strings.Contains(line, `"ts":`) {
		t.Fatalf("unexpected log line: %q", line)
	}
}

func TestNewLogger_BadDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(f, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	// a regular file cannot be used as a directory
	if _, err := NewLogger(filepath.Join(f, "logs")); err == nil {
		t.Fatalf("expected error")
	}
}
