package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewDiscardsWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Config{})
	l.Debug("hidden")
	l.Error("also hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestNewDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Config{Debug: true})
	l.Debug("decoded", "symbol", "0000000000C2x")

	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "symbol=0000000000C2x") {
		t.Fatalf("unexpected log output: %q", out)
	}
	if !strings.Contains(out, "Z ") && !strings.Contains(out, "Z\t") {
		t.Errorf("expected UTC timestamp in %q", out)
	}
}
