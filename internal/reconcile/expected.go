package reconcile

import (
	"strings"

	"github.com/prereview/zsync/internal/prereview"
	"github.com/prereview/zsync/internal/zenodo"
)

const (
	// CommunityMember is the creator name used for anonymous authors and for
	// reviews without authors.
	CommunityMember = "PREreview.org community member"

	// License is the license every review is published under.
	License = "CC-BY-4.0"

	// TitlePrefix precedes the preprint title in a record title.
	TitlePrefix = "Review of "
)

// Mangled forms of U+2019 RIGHT SINGLE QUOTATION MARK seen in preprint
// titles: UTF-8 read as Windows-1252 and as Latin-1.
var titleReplacer = strings.NewReplacer(
	"â€™", "'",
	"â\u0080\u0099", "'",
	"’", "'",
)

// NormalizeTitle replaces right single quotation marks, including their
// mis-encoded forms, with a plain apostrophe.
func NormalizeTitle(title string) string {
	return titleReplacer.Replace(title)
}

// ExpectedRecord derives the record a review should have in Zenodo.
// personas are the review's authors in order. Creators, license, language,
// related identifiers, resource type, title and access rights are
// overwritten; everything else is carried over from existing.
func ExpectedRecord(review prereview.FullReview, existing zenodo.Record, personas []prereview.Persona) zenodo.Record {
	expected := existing
	metadata := existing.Metadata

	metadata.AccessRight = zenodo.AccessRightOpen
	metadata.AccessRightCategory = zenodo.AccessCategorySuccess
	metadata.Creators = creators(personas)
	metadata.License = &zenodo.License{ID: License}
	metadata.Language = zenodo.LanguageEnglish
	metadata.RelatedIdentifiers = nil
	if existing.ConceptDOI != "" {
		metadata.RelatedIdentifiers = []zenodo.RelatedIdentifier{
			{
				Scheme:     zenodo.SchemeDOI,
				Identifier: existing.ConceptDOI,
				Relation:   zenodo.RelationIsVersionOf,
			},
		}
	}
	metadata.ResourceType = zenodo.ResourceType{
		Type:    zenodo.ResourceTypePublication,
		Subtype: zenodo.SubtypeArticle,
	}
	metadata.Title = TitlePrefix + NormalizeTitle(review.Preprint.Title)

	expected.Metadata = metadata
	return expected
}

func creators(personas []prereview.Persona) []zenodo.Creator {
	if len(personas) == 0 {
		return []zenodo.Creator{{Name: CommunityMember}}
	}
	out := make([]zenodo.Creator, 0, len(personas))
	for _, p := range personas {
		name := p.Name
		if p.IsAnonymous {
			name = CommunityMember
		}
		out = append(out, zenodo.Creator{Name: name, ORCID: p.ORCID})
	}
	return out
}
