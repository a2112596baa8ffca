package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil))
	return NewSlogLogger(l), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		records = append(records, rec)
	}
	return records
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Info(ctx, "inf", "a", 1)
	log.Warn(ctx, "wrn", "b", 2)
	log.Error(ctx, "err", "c", 3)

	records := decodeLines(t, buf)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	tests := []struct {
		level string
		msg   string
		key   string
		val   float64
	}{
		{"INFO", "inf", "a", 1},
		{"WARN", "wrn", "b", 2},
		{"ERROR", "err", "c", 3},
	}

	for i, tc := range tests {
		rec := records[i]
		if rec["level"] != tc.level {
			t.Fatalf("record %d: expected level %s, got %v", i, tc.level, rec["level"])
		}
		if rec["msg"] != tc.msg {
			t.Fatalf("record %d: expected msg %q, got %v", i, tc.msg, rec["msg"])
		}
		if rec[tc.key] != tc.val {
			t.Fatalf("record %d: expected %s=%v, got %v", i, tc.key, tc.val, rec[tc.key])
		}
	}
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newTestLogger(t)

	child := log.With("module", "http_server")
	child.Info(context.Background(), "hello", "k", "v")

	records := decodeLines(t, buf)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec["module"] != "http_server" {
		t.Fatalf("expected module attribute, got %v", rec["module"])
	}
	if rec["k"] != "v" {
		t.Fatalf("expected k attribute, got %v", rec["k"])
	}
}
