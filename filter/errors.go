package filter

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three failure kinds.
var (
	// ErrNotFound indicates the input file does not exist.
	ErrNotFound = errors.New("filter: input not found")

	// ErrToolMissing indicates the decode tool cannot be located.
	ErrToolMissing = errors.New("filter: decode tool missing")

	// ErrDecodeFailure indicates the decode tool rejected one symbol.
	ErrDecodeFailure = errors.New("filter: decode failed")

	// ErrIsDir indicates the input path names a directory.
	ErrIsDir = errors.New("filter: input is a directory")
)

// ErrorKind classifies errors returned by this package and by decoders.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindToolMissing
	KindDecodeFailure
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindToolMissing:
		return "ToolMissing"
	case KindDecodeFailure:
		return "DecodeFailure"
	default:
		return "Unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindToolMissing:
		return ErrToolMissing
	case KindDecodeFailure:
		return ErrDecodeFailure
	default:
		return nil
	}
}

// DecodeError describes a failed decode invocation.
type DecodeError struct {
	Kind   ErrorKind
	Tool   string // Decode tool name or path
	Symbol string // Symbol being decoded, empty for ToolMissing
	Stderr string // Trimmed standard error of the tool, if any
	Err    error  // Underlying error, if any
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("filter: %s: %s", e.Tool, e.Kind)
	if e.Symbol != "" {
		msg += fmt.Sprintf(" for %q", e.Symbol)
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e.Kind.
func (e *DecodeError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// OpError wraps a file operation failure.
type OpError struct {
	Op   string    // Operation, e.g. "open input"
	Kind ErrorKind // KindNotFound or KindUnknown
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("filter: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e.Kind.
func (e *OpError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the kind of err, or KindUnknown.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrToolMissing):
		return KindToolMissing
	case errors.Is(err, ErrDecodeFailure):
		return KindDecodeFailure
	default:
		return KindUnknown
	}
}
