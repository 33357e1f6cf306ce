package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vsel/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var printed printedError
		if !stderrors.As(err, &printed) {
			errors.PrintError(err)
		}
		os.Exit(1)
	}
}

// printedError marks an error the command has already written out.
type printedError struct{ error }

func (e printedError) Unwrap() error { return e.error }

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vsel",
		Short: "Data-join selections over HTML documents",
		Long: `vsel binds data to HTML documents with select/selectAll/data/attr
plans and reports the update, enter and exit partitions of each join.

  • Run a plan against a file, stdin or an S3 object
  • Serve plans over HTTP and WebSocket
  • Prometheus metrics and OpenTelemetry spans for every join`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		joinCmd(),
		serveCmd(),
		versionCmd(),
	)

	return rootCmd
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
