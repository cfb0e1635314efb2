package main

import (
	"github.com/prereview/zsync/internal/reconcile"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Diff every published full review against its Zenodo record",
	Long: `Diff every published full review against its Zenodo record.

This is what zsync does when run without a subcommand. Diffs go to stdout,
progress and warnings to stderr. Finding changes is not an error: the exit
code is 0 whenever the run completes.

Examples:
  zsync check
  zsync check --verbose 2>zsync.log`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}

	reviews, err := newPREreviewClient(cfg)
	if err != nil {
		return err
	}
	records, err := newZenodoClient(cfg)
	if err != nil {
		return err
	}

	pipeline := reconcile.New(reviews, records, cmd.OutOrStdout(), logger)
	_, err = pipeline.Run(cmd.Context())
	return err
}
