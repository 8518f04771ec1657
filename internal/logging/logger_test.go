package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("scan complete", "mods", 3, "dominant", "Forge")
	out := buf.String()

	for _, want := range []string{"INFO", "scan complete", "mods=3", "dominant=Forge"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestNewConsoleLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info line should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn line missing")
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("moved to backup", "file", "a.jar")

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("not valid JSON: %v\n%s", err, buf.String())
	}
	if decoded["msg"] != "moved to backup" {
		t.Errorf("msg = %v", decoded["msg"])
	}
	if decoded["level"] != "info" {
		t.Errorf("level = %v", decoded["level"])
	}
	if _, ok := decoded["ts"]; !ok {
		t.Error("ts key missing")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConsoleHandlerAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.With("run_id", "abc").WithGroup("cleanup").Info("done", "moved", 2)
	out := buf.String()

	if !strings.Contains(out, "run_id=abc") {
		t.Errorf("carried attr missing: %s", out)
	}
	if !strings.Contains(out, "cleanup.moved=2") {
		t.Errorf("group prefix missing: %s", out)
	}
}

func TestNewNopIsSilent(t *testing.T) {
	logger := NewNop()
	logger.Error("nothing should happen")
}
