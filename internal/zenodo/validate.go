package zenodo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"slices"

	"github.com/prereview/zsync/internal/identifier"
)

var (
	accessRights          = []string{"open", "embargoed", "restricted", "closed"}
	accessRightCategories = []string{"danger", "success", "warning"}
	languages             = []string{LanguageEnglish}

	relations = []string{
		"isCitedBy", "cites",
		"isSupplementTo", "isSupplementedBy",
		"isContinuedBy", "continues",
		"isDescribedBy", "describes",
		"hasMetadata", "isMetadataFor",
		"isNewVersionOf", "isPreviousVersionOf",
		"isPartOf", "hasPart",
		"isReferencedBy", "references",
		"isDocumentedBy", "documents",
		"isCompiledBy", "compiles",
		"isVariantFormOf", "isOrignialFormOf",
		"isIdenticalTo", "isAlternateIdentifier",
		"isReviewedBy", "reviews",
		"isDerivedFrom", "isSourceOf",
		"requires", "isRequiredBy",
		"isObsoletedBy", "obsoletes",
		"isPublishedIn", "isVersionOf",
	}

	relatedResourceTypes = []string{"publication-preprint"}

	imageSubtypes = []string{"figure", "plot", "drawing", "diagram", "photo", "other"}

	publicationSubtypes = []string{
		"annotationcollection", "book", "section", "conferencepaper",
		"datamanagementplan", "article", "patent", "preprint",
		"deliverable", "milestone", "proposal", "report",
		"softwaredocumentation", "taxonomictreatment", "technicalnote",
		"thesis", "workingpaper", "other",
	}

	// Resource types without a subtype.
	plainResourceTypes = []string{
		"dataset", "figure", "lesson", "other", "poster",
		"physicalobject", "presentation", "software", "video",
	}
)

// DecodeRecord parses and validates a single record.
func DecodeRecord(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		if errors.Is(err, ErrInvalidRecord) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if err := prepare(&r); err != nil {
		return Record{}, err
	}
	return r, nil
}

// prepare drops values the codec does not carry and validates the rest.
func prepare(r *Record) error {
	if slices.Contains(plainResourceTypes, r.Metadata.ResourceType.Type) {
		r.Metadata.ResourceType.Subtype = ""
	}
	return r.Validate()
}

// EncodeRecord renders a record as two-space indented JSON with a trailing
// newline. HTML characters are left unescaped so titles diff as written.
func EncodeRecord(r Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("encoding record %d: %w", r.ID, err)
	}
	return buf.Bytes(), nil
}

// Validate checks every field against the values Zenodo is known to use.
func (r Record) Validate() error {
	if r.ConceptDOI != "" && !identifier.IsDOI(r.ConceptDOI) {
		return invalid("conceptdoi", r.ConceptDOI, "a DOI")
	}
	if !identifier.IsDOI(r.DOI) {
		return invalid("doi", r.DOI, "a DOI")
	}
	if r.ID <= 0 {
		return invalid("id", r.ID, "a positive integer")
	}
	if !isAbsoluteURL(r.Links.Latest) {
		return invalid("links.latest", r.Links.Latest, "a URL")
	}
	if !isAbsoluteURL(r.Links.LatestHTML) {
		return invalid("links.latest_html", r.Links.LatestHTML, "a URL")
	}
	return r.Metadata.Validate()
}

// Validate checks the metadata block.
func (m Metadata) Validate() error {
	if !slices.Contains(accessRights, m.AccessRight) {
		return invalid("metadata.access_right", m.AccessRight, "an access right")
	}
	if !slices.Contains(accessRightCategories, m.AccessRightCategory) {
		return invalid("metadata.access_right_category", m.AccessRightCategory, "an access right category")
	}
	if len(m.Creators) == 0 {
		return invalid("metadata.creators", m.Creators, "a non-empty list")
	}
	for i, c := range m.Creators {
		if c.ORCID != "" && !identifier.IsORCID(c.ORCID) {
			return invalid(fmt.Sprintf("metadata.creators[%d].orcid", i), c.ORCID, "an ORCID iD")
		}
	}
	if m.Language != "" && !slices.Contains(languages, m.Language) {
		return invalid("metadata.language", m.Language, "a supported language")
	}
	if m.RelatedIdentifiers != nil && len(m.RelatedIdentifiers) == 0 {
		return invalid("metadata.related_identifiers", m.RelatedIdentifiers, "a non-empty list")
	}
	for i, ri := range m.RelatedIdentifiers {
		if err := ri.Validate(); err != nil {
			return fmt.Errorf("metadata.related_identifiers[%d]: %w", i, err)
		}
	}
	return m.ResourceType.Validate()
}

// Validate checks the scheme-specific identifier and the relation.
func (ri RelatedIdentifier) Validate() error {
	switch ri.Scheme {
	case "arxiv":
		if !identifier.IsArxivID(ri.Identifier) {
			return invalid("identifier", ri.Identifier, "an arXiv ID")
		}
	case "doi":
		if !identifier.IsDOI(ri.Identifier) {
			return invalid("identifier", ri.Identifier, "a DOI")
		}
	case "issn", "pmid":
		// Free-form strings.
	case "url":
		if !isAbsoluteURL(ri.Identifier) {
			return invalid("identifier", ri.Identifier, "a URL")
		}
	default:
		return invalid("scheme", ri.Scheme, "a known scheme")
	}
	if !slices.Contains(relations, ri.Relation) {
		return invalid("relation", ri.Relation, "a relation")
	}
	if ri.ResourceType != "" && !slices.Contains(relatedResourceTypes, ri.ResourceType) {
		return invalid("resource_type", ri.ResourceType, "a related resource type")
	}
	return nil
}

// Validate checks the type and, where required, the subtype.
func (rt ResourceType) Validate() error {
	switch {
	case rt.Type == "image":
		if !slices.Contains(imageSubtypes, rt.Subtype) {
			return invalid("metadata.resource_type.subtype", rt.Subtype, "an image subtype")
		}
	case rt.Type == ResourceTypePublication:
		if !slices.Contains(publicationSubtypes, rt.Subtype) {
			return invalid("metadata.resource_type.subtype", rt.Subtype, "a publication subtype")
		}
	case slices.Contains(plainResourceTypes, rt.Type):
	default:
		return invalid("metadata.resource_type.type", rt.Type, "a resource type")
	}
	return nil
}

func invalid(field string, value any, want string) error {
	return fmt.Errorf("%w: %s is %v, want %s", ErrInvalidRecord, field, value, want)
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
