// Package filter selects mangled symbol lines from text input and records
// them next to their demangled form.
package filter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/skdltmxn/c2filt/internal/stream"
)

// OutputFile is the fixed name of the result file, relative to the
// working directory.
const OutputFile = "result.txt"

// Separator terminates every output record.
var Separator = strings.Repeat("-", 80)

// Decoder turns a mangled symbol into its readable form.
//
// Implementations return an error matching ErrDecodeFailure when the symbol
// cannot be decoded and ErrToolMissing when decoding is impossible
// altogether. Any other error is treated as fatal by Run.
type Decoder interface {
	Decode(ctx context.Context, symbol string) (string, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(ctx context.Context, symbol string) (string, error)

// Decode calls f(ctx, symbol).
func (f DecoderFunc) Decode(ctx context.Context, symbol string) (string, error) {
	return f(ctx, symbol)
}

// Stats counts what a run did.
type Stats struct {
	Lines   int // Lines read
	Matched int // Lines matching Pattern
	Decoded int // Records written
	Failed  int // Matched lines whose decode failed
}

// Options configures RunFile.
type Options struct {
	// InputPath names the input file. When empty, Stdin is read.
	InputPath string

	// Stdin is the fallback input. Defaults to os.Stdin.
	Stdin io.Reader

	// OutputPath names the result file. Defaults to OutputFile.
	OutputPath string

	Decoder Decoder
	Logger  *slog.Logger
}

// RunFile opens the input, truncates the output file and runs the filter.
//
// A missing input file is reported as ErrNotFound and a directory as
// ErrIsDir, both before the output file is created. Records written before
// a fatal decoder error are flushed.
func RunFile(ctx context.Context, opts Options) (Stats, error) {
	if opts.Decoder == nil {
		return Stats{}, errors.New("filter: no decoder")
	}

	var in io.Reader
	if opts.InputPath != "" {
		f, err := os.Open(opts.InputPath)
		if err != nil {
			kind := KindUnknown
			if errors.Is(err, fs.ErrNotExist) {
				kind = KindNotFound
			}
			return Stats{}, &OpError{Op: "open input", Kind: kind, Path: opts.InputPath, Err: err}
		}
		defer f.Close()
		if fi, err := f.Stat(); err != nil {
			return Stats{}, &OpError{Op: "open input", Path: opts.InputPath, Err: err}
		} else if fi.IsDir() {
			return Stats{}, &OpError{Op: "open input", Path: opts.InputPath, Err: ErrIsDir}
		}
		in = f
	} else {
		in = opts.Stdin
		if in == nil {
			in = os.Stdin
		}
	}

	outPath := opts.OutputPath
	if outPath == "" {
		outPath = OutputFile
	}
	out, err := os.Create(outPath)
	if err != nil {
		return Stats{}, &OpError{Op: "create output", Path: outPath, Err: err}
	}

	bw := bufio.NewWriter(out)
	stats, runErr := run(ctx, in, bw, opts.Decoder, opts.Logger)

	if err := bw.Flush(); err != nil && runErr == nil {
		runErr = &OpError{Op: "write output", Path: outPath, Err: err}
	}
	if err := out.Close(); err != nil && runErr == nil {
		runErr = &OpError{Op: "close output", Path: outPath, Err: err}
	}
	return stats, runErr
}

// Run reads lines from r and writes one record to w for every line that
// matches Pattern and decodes successfully. Lines are processed once each,
// in order, with one Decode call at a time.
//
// Decode failures skip the line. Any other decoder error stops the run and
// is returned together with the stats so far.
func Run(ctx context.Context, r io.Reader, w io.Writer, dec Decoder) (Stats, error) {
	return run(ctx, r, w, dec, nil)
}

func run(ctx context.Context, r io.Reader, w io.Writer, dec Decoder, log *slog.Logger) (Stats, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var stats Stats
	lr := stream.NewLineReader(r)

	for raw := range lr.All() {
		stats.Lines++
		line := strings.TrimSpace(raw)
		if !Match(line) {
			continue
		}
		stats.Matched++

		if err := ctx.Err(); err != nil {
			return stats, err
		}
		decoded, err := dec.Decode(ctx, line)
		if err == nil {
			decoded = strings.TrimSpace(decoded)
			if decoded == "" {
				err = &DecodeError{Kind: KindDecodeFailure, Tool: "decoder", Symbol: line}
			}
		}
		if err != nil {
			if errors.Is(err, ErrDecodeFailure) {
				stats.Failed++
				log.Debug("decode failed", "line", lr.Line(), "symbol", line, "err", err)
				continue
			}
			return stats, err
		}

		if err := WriteRecord(w, line, decoded); err != nil {
			return stats, fmt.Errorf("filter: write record: %w", err)
		}
		stats.Decoded++
		log.Debug("decoded", "line", lr.Line(), "symbol", line, "decoded", decoded)
	}

	if err := lr.Err(); err != nil {
		return stats, fmt.Errorf("filter: read input: %w", err)
	}
	return stats, nil
}

// WriteRecord writes one output record for line and its decoded form.
func WriteRecord(w io.Writer, line, decoded string) error {
	_, err := fmt.Fprintf(w, "Matched symbol: %s\nDecoded: %s\n%s\n", line, decoded, Separator)
	return err
}
