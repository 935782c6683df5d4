package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func reset(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetVerbose(false)
		SetTimestamps(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	reset(t)

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	buf := reset(t)
	SetVerbose(true)

	Debug("test message %s", "arg")

	if got := buf.String(); got != "[DEBUG] test message arg\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := reset(t)

	Debug("hidden")
	Info("hidden")
	Section("hidden")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestWarnAndError_AlwaysWritten(t *testing.T) {
	buf := reset(t)

	Warn("careful %d", 1)
	Error("broken %d", 2)

	want := "[WARN] careful 1\n[ERROR] broken 2\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSection(t *testing.T) {
	buf := reset(t)
	SetVerbose(true)

	Section("Upload")

	if got := buf.String(); got != "\n=== Upload ===\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestTimestamps(t *testing.T) {
	buf := reset(t)
	now = func() time.Time { return time.Date(2025, 11, 10, 9, 30, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })
	SetTimestamps(true)

	Warn("stamped")

	if got := buf.String(); got != "2025-11-10T09:30:00Z [WARN] stamped\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestOpenFile(t *testing.T) {
	reset(t)
	path := filepath.Join(t.TempDir(), "docanalyzer.log")

	closeFn, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	Error("to file")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasSuffix(string(data), "[ERROR] to file\n") {
		t.Errorf("unexpected file content: %q", data)
	}
}

func TestOpenFile_BadPath(t *testing.T) {
	reset(t)
	if _, err := OpenFile(filepath.Join(t.TempDir(), "missing", "x.log")); err == nil {
		t.Error("expected error for missing directory")
	}
}
