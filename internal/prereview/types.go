// Package prereview provides a client for the PREreview v2 API.
package prereview

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/prereview/zsync/internal/identifier"
)

// FullReview is a published review as returned by /api/v2/full-reviews.
type FullReview struct {
	UUID      string    `json:"uuid"`
	DOI       *string   `json:"doi"`
	Authors   []Author  `json:"authors"`
	Drafts    []Draft   `json:"drafts"`
	Preprint  Preprint  `json:"preprint"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Author references a persona by UUID.
type Author struct {
	UUID string `json:"uuid"`
}

// Draft is one version of a review's text.
type Draft struct {
	Contents string `json:"contents"`
}

// Preprint is the preprint a review is about.
type Preprint struct {
	Handle Handle `json:"handle"`
	Title  string `json:"title"`
}

// Persona is an author's public identity on PREreview.
type Persona struct {
	Name        string `json:"name"`
	IsAnonymous bool   `json:"isAnonymous"`
	ORCID       string `json:"orcid,omitempty"`
}

// Handle schemes.
const (
	SchemeDOI   = "doi"
	SchemeArxiv = "arxiv"
)

// Handle is a scheme-tagged preprint identifier, e.g. "doi:10.1101/123" or
// "arxiv:2106.15928". For arXiv handles Identifier carries the "arXiv:"
// prefix.
type Handle struct {
	Scheme     string
	Identifier string
}

// ParseHandle parses a "scheme:identifier" preprint handle.
func ParseHandle(s string) (Handle, error) {
	scheme, id, ok := strings.Cut(s, ":")
	if !ok || scheme == "" || id == "" {
		return Handle{}, fmt.Errorf("%w: handle %q is not scheme:identifier", ErrInvalidPayload, s)
	}

	switch scheme {
	case SchemeDOI:
		if !identifier.IsDOI(id) {
			return Handle{}, fmt.Errorf("%w: handle %q is not a DOI", ErrInvalidPayload, s)
		}
	case SchemeArxiv:
		id = identifier.ArxivPrefix + id
		if !identifier.IsArxivID(id) {
			return Handle{}, fmt.Errorf("%w: handle %q is not an arXiv ID", ErrInvalidPayload, s)
		}
	default:
		return Handle{}, fmt.Errorf("%w: handle %q has unknown scheme", ErrInvalidPayload, s)
	}
	return Handle{Scheme: scheme, Identifier: id}, nil
}

// String returns the handle in scheme:identifier form.
func (h Handle) String() string {
	if h.Scheme == SchemeArxiv {
		return h.Scheme + ":" + strings.TrimPrefix(h.Identifier, identifier.ArxivPrefix)
	}
	return h.Scheme + ":" + h.Identifier
}

// UnmarshalJSON parses and validates a handle string.
func (h *Handle) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: handle: %v", ErrInvalidPayload, err)
	}
	parsed, err := ParseHandle(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// MarshalJSON renders the handle in scheme:identifier form.
func (h Handle) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// Validate checks identifiers that the JSON decoder cannot.
func (r FullReview) Validate() error {
	if !identifier.IsUUID(r.UUID) {
		return fmt.Errorf("%w: review uuid %q", ErrInvalidPayload, r.UUID)
	}
	if r.DOI != nil && !identifier.IsDOI(*r.DOI) {
		return fmt.Errorf("%w: review %s doi %q", ErrInvalidPayload, r.UUID, *r.DOI)
	}
	for _, a := range r.Authors {
		if !identifier.IsUUID(a.UUID) {
			return fmt.Errorf("%w: review %s author uuid %q", ErrInvalidPayload, r.UUID, a.UUID)
		}
	}
	if len(r.Drafts) == 0 {
		return fmt.Errorf("%w: review %s has no drafts", ErrInvalidPayload, r.UUID)
	}
	if r.Preprint.Handle.Scheme == "" {
		return fmt.Errorf("%w: review %s has no preprint handle", ErrInvalidPayload, r.UUID)
	}
	if r.UpdatedAt.IsZero() {
		return fmt.Errorf("%w: review %s has no updatedAt", ErrInvalidPayload, r.UUID)
	}
	return nil
}

// Validate checks the optional ORCID iD.
func (p Persona) Validate() error {
	if p.ORCID != "" && !identifier.IsORCID(p.ORCID) {
		return fmt.Errorf("%w: persona orcid %q", ErrInvalidPayload, p.ORCID)
	}
	return nil
}
