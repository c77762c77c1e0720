package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWritesTimestampedJSON(t *testing.T) {
	var b strings.Builder
	log := New(&b, zerolog.InfoLevel)
	log.Info().Str("deck", "mixed").Msg("session start")

	var event map[string]any
	if err := json.Unmarshal([]byte(b.String()), &event); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, b.String())
	}
	if event["message"] != "session start" {
		t.Fatalf("message = %v, want session start", event["message"])
	}
	if event["deck"] != "mixed" {
		t.Fatalf("deck = %v, want mixed", event["deck"])
	}
	if _, ok := event["time"]; !ok {
		t.Fatal("log line missing timestamp")
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var b strings.Builder
	log := New(&b, zerolog.WarnLevel)
	log.Info().Msg("dropped")
	if b.Len() != 0 {
		t.Fatalf("info event not filtered: %q", b.String())
	}
}

func TestOpenCreatesDirAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "flipdeck.log")

	log, close1, err := Open(path, zerolog.InfoLevel)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	log.Info().Msg("first")
	close1()

	log, close2, err := Open(path, zerolog.InfoLevel)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	log.Info().Msg("second")
	close2()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Fatalf("log has %d lines, want 2 (reopen should append)", got)
	}
}
