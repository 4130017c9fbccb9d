// Package cli implements the cobra-based command-line surface of
// uuid7time.
//
// The tool is a single root command: it takes UUID strings as positional
// arguments (or line-delimited stdin when none are given), decodes the
// embedded UUIDv7 timestamp of each, and prints one line per input in the
// selected output format. This file defines the root command, flag
// resolution, and the Execute error-to-exit-code mapping.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/uuid7time/internal/batch"
	"github.com/shinji-kodama/uuid7time/internal/logging"
	"github.com/shinji-kodama/uuid7time/internal/model"
)

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package for --version output.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// rootFlags holds the flag values for the root command.
// These are bound to cobra flags in NewRootCommand.
type rootFlags struct {
	format  string // --format: iso, unix, unix-ms, json
	unix    bool   // --unix: shorthand for --format unix
	unixMS  bool   // --unix-ms: shorthand for --format unix-ms
	jsonOut bool   // --json: shorthand for --format json
	quiet   bool   // --quiet: suppress per-item diagnostics
	verbose bool   // --verbose: debug tracing on stderr
}

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "uuid7time [flags] [UUID]...",
		Short: "Extract timestamps from UUID version 7 identifiers",
		Long: `uuid7time decodes the 48-bit millisecond timestamp embedded in UUID
version 7 identifiers and prints it in a human- or machine-readable form.

UUIDs are taken from positional arguments, or from non-empty lines of
standard input when no arguments are given. One output line is printed
per input, in input order; invalid inputs produce a diagnostic on stderr
and do not stop the batch.

An explicitly set --format always wins over the shorthand flags; among
the shorthands, --unix takes precedence over --unix-ms over --json.

Examples:
  uuid7time 018d5e5e-7b3a-7000-8000-000000000000
  uuid7time --unix 018d5e5e-7b3a-7000-8000-000000000000
  cat uuids.txt | uuid7time --json
  uuid7time -q -f unix-ms < uuids.txt`,

		// Any number of UUID arguments is valid; zero means stdin.
		Args: cobra.ArbitraryArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		// Per-item diagnostics are handled by the batch driver.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Execute formats them itself.
		SilenceErrors: true,

		// Version is displayed when --version / -V is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "iso",
		"Output format: iso, unix, unix-ms, json")
	cmd.Flags().BoolVarP(&flags.unix, "unix", "u", false,
		"Output Unix timestamp in seconds (shorthand for --format unix)")
	cmd.Flags().BoolVarP(&flags.unixMS, "unix-ms", "U", false,
		"Output Unix timestamp in milliseconds (shorthand for --format unix-ms)")
	cmd.Flags().BoolVarP(&flags.jsonOut, "json", "j", false,
		"Output JSON records (shorthand for --format json)")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false,
		"Suppress per-item error messages")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"Enable verbose tracing on stderr")

	// Register the version flag with -V so cobra does not claim -v,
	// which is taken by --verbose.
	cmd.Flags().BoolP("version", "V", false, "Print version and exit")

	return cmd
}

// resolveFormat applies the documented flag precedence: an explicitly
// set --format wins over the boolean shorthands; among the shorthands,
// --unix > --unix-ms > --json. With nothing set, the --format default
// ("iso") applies.
func resolveFormat(formatChanged bool, flags *rootFlags) (model.OutputFormat, error) {
	if !formatChanged {
		switch {
		case flags.unix:
			return model.FormatUnix, nil
		case flags.unixMS:
			return model.FormatUnixMilli, nil
		case flags.jsonOut:
			return model.FormatJSON, nil
		}
	}
	return model.ParseOutputFormat(flags.format)
}

// runRoot is the main logic function for the root command. It resolves
// the output format, then hands the candidates to the batch driver.
func runRoot(cmd *cobra.Command, args []string, flags *rootFlags) error {
	outputFormat, err := resolveFormat(cmd.Flags().Changed("format"), flags)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid output format", err)
	}

	logger := logging.NewLogger(flags.verbose)
	logger.Debug("starting batch",
		"format", outputFormat.String(),
		"quiet", flags.quiet,
		"args", len(args))

	res := batch.Run(batch.Options{
		Format: outputFormat,
		Quiet:  flags.quiet,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
		Logger: logger,
	}, args, cmd.InOrStdin())

	logger.Debug("batch finished", "succeeded", res.Succeeded, "failed", res.Failed)
	return res.Err()
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// Batch failures have already produced their per-item diagnostics, so
// the matching sentinels map straight to exit 1 without a second error
// line. CLIError values carry their own exit codes; anything else gets
// a generic "Error:" line and exit 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, batch.ErrItemsFailed) || errors.Is(err, batch.ErrNoInput) {
			os.Exit(int(model.ExitGeneralError))
		}

		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", cliErr.Error())
			os.Exit(int(cliErr.Code))
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(model.ExitGeneralError))
	}
}
