// Package stream provides line reading utilities for symbol dumps.
package stream

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LineReader reads newline-terminated lines of text.
//
// Input is passed through unchanged unless it starts with a byte order mark:
// a UTF-8 BOM is dropped and UTF-16 input (either endianness) is transcoded
// to UTF-8. Lines have no length limit.
type LineReader struct {
	br   *bufio.Reader
	line int
	err  error
	done bool
}

// NewLineReader creates a LineReader reading from r.
func NewLineReader(r io.Reader) *LineReader {
	dec := unicode.BOMOverride(encoding.Nop.NewDecoder())
	return &LineReader{br: bufio.NewReader(transform.NewReader(r, dec))}
}

// Line returns the 1-based number of the last line returned by Next.
func (r *LineReader) Line() int {
	return r.line
}

// Next returns the next line without its terminator. Lines end at "\n",
// "\r\n" or a lone "\r". It returns io.EOF once the input is exhausted. A
// final line without a terminator is returned as a normal line.
func (r *LineReader) Next() (string, error) {
	if r.done {
		return "", io.EOF
	}

	var b strings.Builder
	read := false
	for {
		c, err := r.br.ReadByte()
		if err != nil {
			r.done = true
			if err != io.EOF {
				r.err = err
				return "", err
			}
			if !read {
				return "", io.EOF
			}
			break
		}
		read = true

		if c == '\n' {
			break
		}
		if c == '\r' {
			if next, err := r.br.Peek(1); err == nil && next[0] == '\n' {
				r.br.Discard(1)
			}
			break
		}
		b.WriteByte(c)
	}

	r.line++
	return b.String(), nil
}

// All returns an iterator over the remaining lines.
// Read errors stop the iteration and are reported by Err.
func (r *LineReader) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			s, err := r.Next()
			if err != nil {
				return
			}
			if !yield(s) {
				return
			}
		}
	}
}

// Err returns the first non-EOF error encountered.
func (r *LineReader) Err() error {
	return r.err
}
