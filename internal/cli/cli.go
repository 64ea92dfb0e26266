// Package cli implements the protsim command line: a cobra command tree
// whose commands load graphs, run comparisons and write results.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/protsim/internal/ctxlog"
)

// Exit codes.
const (
	ExitRuntime = 1
	ExitUsage   = 2
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

func runtimeError(err error) *ExitError {
	return &ExitError{Code: ExitRuntime, Message: err.Error()}
}

// rootOptions holds the persistent flags.
type rootOptions struct {
	logLevel  string
	logFormat string

	stdout io.Writer
	stderr io.Writer
}

// Execute runs the command tree with args. Every returned error is an
// *ExitError.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

// NewRootCommand builds the protsim command tree.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "protsim",
		Short: "Maximum common substructure search for protein topology graphs",
		Long: `protsim searches common substructures of two protein topology graphs.

It builds the product graph of two GML graphs, enumerates its maximal
cliques with the Bron-Kerbosch algorithm, and reports every clique as a
pair of vertex ID lists, one per input graph.

Examples:
  protsim compare 1abc_A.gml 2xyz_B.gml --largest --filter
  protsim compare 1abc_A.gml 2xyz_B.gml --min-size 8
  protsim product 1abc_A.gml 2xyz_B.gml --dot product.dot
  protsim stats 1abc_A.gml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			logger := newLogger(opts.logLevel, opts.logFormat, opts.stderr)
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Logging level: debug, info, warn or error.")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log output format: text or json.")

	root.AddCommand(
		newCompareCommand(opts),
		newProductCommand(opts),
		newStatsCommand(opts),
	)

	return root
}

func (o *rootOptions) validate() error {
	o.logFormat = strings.ToLower(o.logFormat)
	if o.logFormat != "text" && o.logFormat != "json" {
		return usageError("invalid log-format: must be 'text' or 'json'")
	}

	o.logLevel = strings.ToLower(o.logLevel)
	switch o.logLevel {
	case "debug", "info", "warn", "error":
	default:
		return usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return nil
}
