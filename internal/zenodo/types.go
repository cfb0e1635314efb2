// Package zenodo provides a client and record codec for the Zenodo REST API.
package zenodo

// Record is a Zenodo record as zsync reads and compares it.
// Only the fields listed here are decoded; the JSON field order is the
// order used when a record is encoded for diffing.
type Record struct {
	ConceptDOI string   `json:"conceptdoi,omitempty"`
	DOI        string   `json:"doi"`
	ID         int      `json:"id"`
	Links      Links    `json:"links"`
	Metadata   Metadata `json:"metadata"`
}

// Links holds navigation links to the latest version of a record.
type Links struct {
	Latest     string `json:"latest"`
	LatestHTML string `json:"latest_html"`
}

// Metadata is the descriptive metadata block of a record.
type Metadata struct {
	AccessRight         string              `json:"access_right"`
	AccessRightCategory string              `json:"access_right_category"`
	Creators            []Creator           `json:"creators"`
	Description         string              `json:"description"`
	Language            string              `json:"language,omitempty"`
	License             *License            `json:"license,omitempty"`
	RelatedIdentifiers  []RelatedIdentifier `json:"related_identifiers,omitempty"`
	ResourceType        ResourceType        `json:"resource_type"`
	Title               string              `json:"title"`
}

// Creator is an author of a record.
type Creator struct {
	Name  string `json:"name"`
	ORCID string `json:"orcid,omitempty"`
}

// License identifies a record's license, e.g. "CC-BY-4.0".
type License struct {
	ID string `json:"id"`
}

// RelatedIdentifier links a record to another resource.
type RelatedIdentifier struct {
	Identifier   string `json:"identifier"`
	Scheme       string `json:"scheme"`
	Relation     string `json:"relation"`
	ResourceType string `json:"resource_type,omitempty"`
}

// ResourceType classifies a record. Subtype is only used by the image and
// publication types.
type ResourceType struct {
	Subtype string `json:"subtype,omitempty"`
	Type    string `json:"type"`
}

// Values used when building records.
const (
	AccessRightOpen         = "open"
	AccessCategorySuccess   = "success"
	LanguageEnglish         = "eng"
	SchemeDOI               = "doi"
	RelationIsVersionOf     = "isVersionOf"
	ResourceTypePublication = "publication"
	SubtypeArticle          = "article"
)

// SearchResponse is the body of GET /api/records.
type SearchResponse struct {
	Hits struct {
		Hits []Record `json:"hits"`
	} `json:"hits"`
}
