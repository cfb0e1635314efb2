package main

import (
	"github.com/prereview/zsync/internal/zenodo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(recordIDCmd)
}

var recordCmd = &cobra.Command{
	Use:   "record <id>",
	Short: "Fetch one Zenodo record",
	Long: `Fetch one Zenodo record and print it in the form zsync compares.

Examples:
  zsync record 1234567
  zsync record 1234567 --human`,
	Args: cobra.ExactArgs(1),
	RunE: runRecord,
}

var recordIDCmd = &cobra.Command{
	Use:   "record-id <doi>",
	Short: "Show the Zenodo record ID a DOI points to",
	Long: `Show the Zenodo record ID a DOI points to.

Works offline. Accepts production (10.5281) and sandbox (10.5072) DOIs.

Examples:
  zsync record-id 10.5281/zenodo.1234567`,
	Args: cobra.ExactArgs(1),
	RunE: runRecordID,
}

func runRecord(cmd *cobra.Command, args []string) error {
	id, err := zenodo.ParseRecordID(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}
	client, err := newZenodoClient(cfg)
	if err != nil {
		return err
	}

	record, err := client.Record(cmd.Context(), id)
	if err != nil {
		return err
	}

	if humanOutput {
		printRecordHuman(cmd.OutOrStdout(), record)
		return nil
	}
	return outputJSON(cmd.OutOrStdout(), record)
}

func runRecordID(cmd *cobra.Command, args []string) error {
	id, err := zenodo.RecordIDFromDOI(args[0])
	if err != nil {
		return err
	}

	if humanOutput {
		outputHuman(cmd.OutOrStdout(), "%d\n", id)
		return nil
	}
	return outputJSON(cmd.OutOrStdout(), RecordIDResponse{DOI: args[0], RecordID: id})
}
