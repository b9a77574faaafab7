package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("debug message", nil)
	l.Info("info message", nil)
	l.Warn("warn message", nil)
	l.Error("error message", nil, nil)

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("debug message should be discarded below minimum level")
	}
	if strings.Contains(output, "info message") {
		t.Error("info message should be discarded below minimum level")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("warn message should be logged")
	}
	if !strings.Contains(output, "error message") {
		t.Error("error message should be logged")
	}
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf)

	l.Info("season scraped", Fields{"season": "Advent", "readings": 12})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}

	if entry.Level != string(LevelInfo) {
		t.Errorf("expected level %s, got %s", LevelInfo, entry.Level)
	}
	if entry.Message != "season scraped" {
		t.Errorf("expected message 'season scraped', got %q", entry.Message)
	}
	if entry.Fields["season"] != "Advent" {
		t.Errorf("expected season field 'Advent', got %v", entry.Fields["season"])
	}
	if entry.Timestamp == "" {
		t.Error("expected timestamp to be set")
	}
}

func TestLoggerError(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf)

	l.Error("fetch failed", Fields{"season": "Lent"}, errTest)

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	if entry.Error != "boom" {
		t.Errorf("expected error 'boom', got %q", entry.Error)
	}
}

var errTest = errBoom{}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
