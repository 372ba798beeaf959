package demangle

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/skdltmxn/c2filt/filter"
)

func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

func TestToolName(t *testing.T) {
	if got := (&Tool{}).Name(); got != DefaultTool {
		t.Errorf("Name() = %q, want %q", got, DefaultTool)
	}
	if got := New("llvm-cxxfilt").Name(); got != "llvm-cxxfilt" {
		t.Errorf("Name() = %q", got)
	}
}

func TestToolDecode(t *testing.T) {
	requireTool(t, "echo")

	got, err := New("echo", "-n", "decoded:").Decode(context.Background(), "0000000000C2foo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "decoded: 0000000000C2foo" {
		t.Errorf("Decode() = %q", got)
	}
}

func TestToolDecodeFailure(t *testing.T) {
	requireTool(t, "false")

	_, err := New("false").Decode(context.Background(), "0000000000C2foo")
	if !errors.Is(err, filter.ErrDecodeFailure) {
		t.Fatalf("expected ErrDecodeFailure, got %v", err)
	}
	var de *filter.DecodeError
	if !errors.As(err, &de) || de.Symbol != "0000000000C2foo" {
		t.Fatalf("expected DecodeError carrying the symbol, got %#v", err)
	}
}

func TestToolDecodeEmptyOutput(t *testing.T) {
	requireTool(t, "true")

	_, err := New("true").Decode(context.Background(), "0000000000C2foo")
	if filter.KindOf(err) != filter.KindDecodeFailure {
		t.Fatalf("expected DecodeFailure, got %v", err)
	}
}

func TestToolMissing(t *testing.T) {
	cases := []string{
		"c2filt-no-such-demangler",
		filepath.Join(t.TempDir(), "missing-demangler"),
	}
	for _, name := range cases {
		_, err := New(name).Decode(context.Background(), "0000000000C2foo")
		if !errors.Is(err, filter.ErrToolMissing) {
			t.Errorf("%s: expected ErrToolMissing, got %v", name, err)
		}
	}
}

func TestToolCanceled(t *testing.T) {
	requireTool(t, "echo")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New("echo").Decode(ctx, "0000000000C2foo")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
