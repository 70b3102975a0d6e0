// Package cli implements the planar command-line interface.
//
// Commands:
//   - logz: exact log-partition function of a TOML model file
//   - ground: exact ground state and its energy
//   - draw: SVG rendering of the embedded interaction graph
//
// Model files use a small TOML schema: a [model] table with the constant
// offset, one [[coupling]] entry per quadratic term (u, v, j), and a
// [position] table mapping each variable to [x, y] coordinates of a
// crossing-free drawing.
//
// All commands support --verbose (-v) for debug-level logging via
// charmbracelet/log; diagnostics go to stderr, results to stdout.
package cli

import (
	"context"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the planar CLI and returns the first command error.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "planar",
		Short:        "Exact inference on planar Ising models",
		Long:         "planar computes exact log-partition functions and ground states\nof pairwise Ising models on planar graphs via Kasteleyn's Pfaffian method.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLogZCmd())
	root.AddCommand(newGroundCmd())
	root.AddCommand(newDrawCmd())

	return root.ExecuteContext(context.Background())
}

// newLogger builds a timestamped stderr logger at the given level.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext falls back to the default logger so commands never
// receive nil even when context setup was skipped (as in tests).
func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}
	return charmlog.Default()
}
