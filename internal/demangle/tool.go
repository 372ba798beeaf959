// Package demangle decodes mangled symbol names with an external
// demangling tool such as c++filt.
package demangle

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"strings"

	"github.com/skdltmxn/c2filt/filter"
)

// DefaultTool is the demangler used when none is configured.
const DefaultTool = "c++filt"

// Tool runs an external demangler once per symbol.
// It implements filter.Decoder.
type Tool struct {
	// Path is the executable name or path. Defaults to DefaultTool.
	Path string

	// Args are passed before the symbol, e.g. ["--no-params"].
	Args []string
}

var _ filter.Decoder = (*Tool)(nil)

// New returns a Tool for the given executable and extra arguments.
func New(path string, args ...string) *Tool {
	return &Tool{Path: path, Args: args}
}

// Name returns the executable the tool runs.
func (t *Tool) Name() string {
	if t.Path == "" {
		return DefaultTool
	}
	return t.Path
}

// Decode runs the tool with symbol as its last argument and returns its
// trimmed standard output.
//
// The executable is looked up on each call, so a missing tool is only
// noticed when the first symbol is decoded.
func (t *Tool) Decode(ctx context.Context, symbol string) (string, error) {
	name := t.Name()

	args := make([]string, 0, len(t.Args)+1)
	args = append(args, t.Args...)
	args = append(args, symbol)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
			return "", &filter.DecodeError{Kind: filter.KindToolMissing, Tool: name, Err: err}
		case errors.As(err, &exitErr):
			return "", &filter.DecodeError{
				Kind:   filter.KindDecodeFailure,
				Tool:   name,
				Symbol: symbol,
				Stderr: strings.TrimSpace(stderr.String()),
				Err:    err,
			}
		default:
			return "", err
		}
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return "", &filter.DecodeError{Kind: filter.KindDecodeFailure, Tool: name, Symbol: symbol}
	}
	return out, nil
}
