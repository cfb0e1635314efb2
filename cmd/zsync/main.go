// Package main provides the zsync CLI entry point.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prereview/zsync/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool
	verbose     bool
	logFormat   string

	logger = zap.NewNop()
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command and maps the outcome to an exit code.
func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		outputError(ExitError, "%v", err)
		_ = logger.Sync()
		return ExitError
	}
	_ = logger.Sync()
	return ExitSuccess
}

var rootCmd = &cobra.Command{
	Use:   "zsync",
	Short: "Check PREreview full reviews against their Zenodo records",
	Long: `zsync compares the Zenodo record of every published PREreview full review
with the record the review should have, and prints a unified diff for each
record that needs changes.

It never writes to Zenodo. Run without a subcommand to check every review.

Requires ZENODO_API_KEY in the environment, a .env file, or
~/.config/zsync/config.yml.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setupLogger,
	RunE:              runCheck,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logging.FormatConsole, "Log format: console or json")
	rootCmd.Version = Version
}

func setupLogger(cmd *cobra.Command, args []string) error {
	l, err := logging.New(logging.Options{Verbose: verbose, Format: logFormat})
	if err != nil {
		return err
	}
	logger = l
	return nil
}
