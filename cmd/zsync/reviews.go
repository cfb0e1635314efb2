package main

import (
	"fmt"

	"github.com/prereview/zsync/internal/identifier"
	"github.com/prereview/zsync/internal/prereview"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(personaCmd)
}

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "List published PREreview full reviews",
	Long: `List published PREreview full reviews, in the order zsync checks them.

Does not need a Zenodo API key.

Examples:
  zsync reviews
  zsync reviews --human`,
	Args: cobra.NoArgs,
	RunE: runReviews,
}

var personaCmd = &cobra.Command{
	Use:   "persona <uuid>",
	Short: "Show the persona of a PREreview author",
	Args:  cobra.ExactArgs(1),
	RunE:  runPersona,
}

// summarizeReviews converts reviews to their listing form.
func summarizeReviews(reviews []prereview.FullReview) []ReviewSummary {
	out := make([]ReviewSummary, 0, len(reviews))
	for _, r := range reviews {
		s := ReviewSummary{
			UUID:     r.UUID,
			Preprint: r.Preprint.Handle.String(),
			Title:    r.Preprint.Title,
			Authors:  len(r.Authors),
		}
		if r.DOI != nil {
			s.DOI = *r.DOI
		}
		out = append(out, s)
	}
	return out
}

func runReviews(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(false)
	if err != nil {
		return err
	}
	client, err := newPREreviewClient(cfg)
	if err != nil {
		return err
	}

	reviews, err := client.FullReviews(cmd.Context())
	if err != nil {
		return err
	}
	summaries := summarizeReviews(reviews)

	if humanOutput {
		for _, s := range summaries {
			doi := s.DOI
			if doi == "" {
				doi = "(no DOI)"
			}
			outputHuman(cmd.OutOrStdout(), "%s  %s\n", s.UUID, doi)
			outputHuman(cmd.OutOrStdout(), "   %s\n", truncateString(s.Title, ListTitleMaxLen))
		}
		outputHuman(cmd.OutOrStdout(), "%d reviews\n", len(summaries))
		return nil
	}
	return outputJSON(cmd.OutOrStdout(), summaries)
}

func runPersona(cmd *cobra.Command, args []string) error {
	if !identifier.IsUUID(args[0]) {
		return fmt.Errorf("not a UUID: %q", args[0])
	}

	cfg, err := loadConfig(false)
	if err != nil {
		return err
	}
	client, err := newPREreviewClient(cfg)
	if err != nil {
		return err
	}

	persona, err := client.Persona(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if humanOutput {
		outputHuman(cmd.OutOrStdout(), "%s\n", persona.Name)
		if persona.IsAnonymous {
			outputHuman(cmd.OutOrStdout(), "   anonymous\n")
		}
		if persona.ORCID != "" {
			outputHuman(cmd.OutOrStdout(), "   https://orcid.org/%s\n", persona.ORCID)
		}
		return nil
	}
	return outputJSON(cmd.OutOrStdout(), persona)
}
