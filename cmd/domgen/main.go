// Command domgen regenerates treefold's generated sources: the tag
// catalog in pkg/tags and the tuple family in pkg/dom.
package main

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/treefold-dev/treefold/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	setupLogging()

	rootCmd := &cobra.Command{
		Use:   "domgen",
		Short: "Generate treefold's tag catalog and tuple family",
		Long: `domgen regenerates the generated sources checked in under pkg/tags
and pkg/dom.

The output is deterministic - running it multiple times produces identical
output unless the tag catalog or the maximum tuple arity changes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		tagsCmd(),
		tuplesCmd(),
		allCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, errorReport(err))
		os.Exit(1)
	}
}

// errorReport renders a coded error as its multi-line report. Anything
// else gets a one-line fallback.
func errorReport(err error) string {
	var coded *errors.Error
	if stderrors.As(err, &coded) {
		return coded.Format()
	}
	return fmt.Sprintf("domgen: %v\n", err)
}

// setupLogging installs a tinted slog handler on stderr and matches the
// error report's color mode to it.
func setupLogging() {
	w := os.Stderr
	noColor := !isatty.IsTerminal(w.Fd())
	if noColor {
		errors.DisableColors()
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:   slog.LevelInfo,
			NoColor: noColor,
		}),
	))
}
