package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager when output is disabled")
	}

	// All operations on the nil manager are no-ops
	if err := om.WriteWindow(WindowStats{}); err != nil {
		t.Errorf("WriteWindow on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager failed: %v", err)
	}

	if err := om.WriteWindow(WindowStats{WindowEndGen: 100, Alive: 42}); err != nil {
		t.Fatalf("first WriteWindow failed: %v", err)
	}
	if err := om.WriteWindow(WindowStats{WindowEndGen: 200, Alive: 40}); err != nil {
		t.Fatalf("second WriteWindow failed: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatalf("reading telemetry.csv: %v", err)
	}
	content := string(data)

	// Header exactly once, then one line per window
	if strings.Count(content, "window_end") != 1 {
		t.Errorf("expected one header row, got:\n%s", content)
	}
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) != 3 {
		t.Errorf("expected header + 2 records, got %d lines", len(lines))
	}
}
