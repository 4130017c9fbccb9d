package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shinji-kodama/uuid7time/internal/format"
	"github.com/shinji-kodama/uuid7time/internal/model"
	"github.com/shinji-kodama/uuid7time/internal/uuid7"
)

// ErrItemsFailed reports that at least one candidate failed to decode or
// render. The per-item diagnostics have already been written when this
// is returned, so the CLI layer maps it to exit code 1 without printing
// a second error line.
var ErrItemsFailed = errors.New("one or more UUIDs could not be processed")

// ErrNoInput reports that no candidate was supplied at all: no positional
// arguments and no non-empty input line.
var ErrNoInput = errors.New("no UUID provided")

// Options carries the per-invocation configuration into the driver.
// Threading it explicitly (instead of reading globals) keeps the decode
// and render steps pure and the driver testable against buffers.
type Options struct {
	// Format selects the output rendering for successful items.
	Format model.OutputFormat

	// Quiet suppresses per-item diagnostics on ErrOut.
	Quiet bool

	// Out receives one line per successfully processed candidate.
	Out io.Writer

	// ErrOut receives one diagnostic line per failed candidate.
	ErrOut io.Writer

	// Logger receives debug tracing. Must not be nil; use the discard
	// logger when tracing is off.
	Logger *slog.Logger
}

// Result is the aggregate outcome of one batch run.
type Result struct {
	// Succeeded counts candidates that produced an output line.
	Succeeded int

	// Failed counts candidates that produced a diagnostic.
	Failed int
}

// Err reduces the Result to the error the CLI layer turns into the
// process exit code: nil when every candidate succeeded, ErrNoInput when
// nothing usable was supplied, ErrItemsFailed otherwise.
func (r Result) Err() error {
	if r.Succeeded == 0 && r.Failed == 0 {
		return ErrNoInput
	}
	if r.Failed > 0 {
		return ErrItemsFailed
	}
	return nil
}

// Run processes every candidate in order and returns the aggregate
// Result. Positional arguments take precedence; when none are given,
// each non-empty line of stdin (trimmed of surrounding whitespace,
// including the trailing CR of CRLF input) is one candidate.
//
// Failures are strictly local to their item. A read error on stdin is
// treated as end of input, not as a crash: the items processed so far
// stand, and the Result reflects them.
func Run(opts Options, args []string, stdin io.Reader) Result {
	var res Result

	if len(args) > 0 {
		opts.Logger.Debug("reading candidates from arguments", "count", len(args))
		for _, arg := range args {
			processItem(&opts, strings.TrimSpace(arg), &res)
		}
	} else {
		opts.Logger.Debug("reading candidates from stdin")
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			processItem(&opts, line, &res)
		}
		if err := scanner.Err(); err != nil {
			// Treat a broken input stream as "no further items".
			opts.Logger.Debug("stdin ended early", "error", err)
		}
	}

	if res.Succeeded == 0 && res.Failed == 0 {
		reportError(&opts, fmt.Errorf("no UUID provided (run with --help for usage)"))
	}
	return res
}

// processItem runs the decode → render → emit pipeline for one candidate
// and updates the running counts. No state is shared between items.
func processItem(opts *Options, input string, res *Result) {
	rec, err := uuid7.Extract(input)
	if err != nil {
		reportError(opts, err)
		res.Failed++
		return
	}

	line, err := format.Render(rec, opts.Format)
	if err != nil {
		reportError(opts, err)
		res.Failed++
		return
	}

	opts.Logger.Debug("decoded",
		"uuid", rec.UUID,
		"timestamp_ms", rec.TimestampMilli,
		"iso8601", rec.ISO8601)

	fmt.Fprintln(opts.Out, line)
	res.Succeeded++
}

// reportError writes one diagnostic line to the error stream unless
// quiet mode is set.
func reportError(opts *Options, err error) {
	if opts.Quiet {
		return
	}
	fmt.Fprintf(opts.ErrOut, "Error: %v\n", err)
}
