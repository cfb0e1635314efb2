package main

import (
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

// DefaultSearchSize is the page size requested from Zenodo.
const DefaultSearchSize = 20

var (
	searchSize        int
	searchAllVersions bool
	searchCommunity   string
)

func init() {
	searchCmd.Flags().IntVar(&searchSize, "size", DefaultSearchSize, "Number of records to return (one page)")
	searchCmd.Flags().BoolVar(&searchAllVersions, "all-versions", false, "Include every version of each record")
	searchCmd.Flags().StringVar(&searchCommunity, "community", "", "Restrict to a Zenodo community")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search Zenodo records",
	Long: `Search Zenodo records with an Elasticsearch query string.

Only the first page of results is returned.

Examples:
  zsync search 'title:"Review of"' --size 5
  zsync search 'doi:"10.5281/zenodo.1234567"' --all-versions
  zsync search '*' --community prereview-reviews --human`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

// searchQuery builds the query string for a search.
func searchQuery(q string, size int, allVersions bool, community string) url.Values {
	query := url.Values{"q": {q}}
	if size > 0 {
		query.Set("size", strconv.Itoa(size))
	}
	if allVersions {
		query.Set("all_versions", "true")
	}
	if community != "" {
		query.Set("communities", community)
	}
	return query
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}
	client, err := newZenodoClient(cfg)
	if err != nil {
		return err
	}

	records, err := client.Search(cmd.Context(), searchQuery(args[0], searchSize, searchAllVersions, searchCommunity))
	if err != nil {
		return err
	}

	if humanOutput {
		if len(records) == 0 {
			outputHuman(cmd.OutOrStdout(), "No records found\n")
			return nil
		}
		for _, r := range records {
			printRecordHuman(cmd.OutOrStdout(), r)
		}
		return nil
	}
	return outputJSON(cmd.OutOrStdout(), records)
}
