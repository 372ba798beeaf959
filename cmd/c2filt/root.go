package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/skdltmxn/c2filt/filter"
	"github.com/skdltmxn/c2filt/internal/config"
	"github.com/skdltmxn/c2filt/internal/demangle"
	"github.com/skdltmxn/c2filt/internal/logger"
	"github.com/spf13/cobra"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitNotFound    = 1
	exitUsage       = 2
	exitToolMissing = 127
	exitInterrupted = 130
)

const stdinPrompt = "Reading from stdin (press Ctrl+D to end input on Unix, Ctrl+Z on Windows):"

// exitError carries the diagnostic and exit status for a failed run.
type exitError struct {
	code int
	msg  string
	err  error
}

func (e *exitError) Error() string { return e.msg }

func (e *exitError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	var (
		configFile string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "c2filt [input-file]",
		Short: "Match and demangle C++ symbols from a symbol dump",
		Long: `c2filt scans lines of text for symbols starting with ten zeros and
containing "C2", demangles each match with c++filt, and writes the
matches with their demangled form to result.txt in the current directory.

Without an input file, lines are read from standard input.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return &exitError{code: exitUsage, msg: err.Error(), err: err}
			}
			if debug {
				cfg.Debug = true
			}

			log := logger.New(cmd.ErrOrStderr(), logger.Config{Debug: cfg.Debug})
			tool := demangle.New(cfg.Tool, cfg.Args...)

			opts := filter.Options{
				OutputPath: filter.OutputFile,
				Stdin:      cmd.InOrStdin(),
				Decoder:    tool,
				Logger:     log,
			}
			if len(args) == 1 {
				opts.InputPath = args[0]
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), stdinPrompt)
			}

			log.Debug("run started", "input", opts.InputPath, "output", opts.OutputPath, "tool", tool.Name())
			stats, err := filter.RunFile(cmd.Context(), opts)
			log.Debug("run finished",
				"lines", stats.Lines,
				"matched", stats.Matched,
				"decoded", stats.Decoded,
				"failed", stats.Failed)

			return classify(err, opts.InputPath, tool.Name())
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (default ./"+config.DefaultFile+" if present)")
	cmd.Flags().BoolVar(&debug, "debug", false, "log matching and decoding details to stderr")
	return cmd
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefault(".")
}

func classify(err error, input, tool string) error {
	if err == nil {
		return nil
	}
	switch {
	case filter.KindOf(err) == filter.KindNotFound:
		return &exitError{code: exitNotFound, msg: fmt.Sprintf("File '%s' not found.", input), err: err}
	case filter.KindOf(err) == filter.KindToolMissing:
		return &exitError{code: exitToolMissing, msg: fmt.Sprintf("%s not found. Please ensure it is installed.", tool), err: err}
	case errors.Is(err, context.Canceled):
		return &exitError{code: exitInterrupted, msg: "interrupted", err: err}
	default:
		return &exitError{code: exitFailure, msg: err.Error(), err: err}
	}
}

// execute runs the command and returns the process exit status.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		fmt.Fprintf(stderr, "Error: %s\n", ee.msg)
		return ee.code
	}

	// Argument and flag errors from cobra.
	fmt.Fprintf(stderr, "Error: %v\n", err)
	fmt.Fprint(stderr, cmd.UsageString())
	return exitUsage
}
