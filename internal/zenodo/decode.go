package zenodo

import (
	"encoding/json"
	"fmt"

	"github.com/prereview/zsync/internal/jsonfields"
)

// The UnmarshalJSON methods below reject records with missing or null
// keys before the values themselves are validated.

func (r *Record) UnmarshalJSON(data []byte) error {
	if err := checkFields(data, "", []string{"doi", "id", "links", "metadata"}, "conceptdoi"); err != nil {
		return err
	}
	type plain Record
	return json.Unmarshal(data, (*plain)(r))
}

func (l *Links) UnmarshalJSON(data []byte) error {
	if err := checkFields(data, "links.", []string{"latest", "latest_html"}); err != nil {
		return err
	}
	type plain Links
	return json.Unmarshal(data, (*plain)(l))
}

func (m *Metadata) UnmarshalJSON(data []byte) error {
	required := []string{"access_right", "access_right_category", "creators", "description", "resource_type", "title"}
	if err := checkFields(data, "metadata.", required, "language", "license", "related_identifiers"); err != nil {
		return err
	}
	type plain Metadata
	return json.Unmarshal(data, (*plain)(m))
}

func (c *Creator) UnmarshalJSON(data []byte) error {
	if err := checkFields(data, "metadata.creators[].", []string{"name"}, "orcid"); err != nil {
		return err
	}
	type plain Creator
	return json.Unmarshal(data, (*plain)(c))
}

func (l *License) UnmarshalJSON(data []byte) error {
	if err := checkFields(data, "metadata.license.", []string{"id"}); err != nil {
		return err
	}
	type plain License
	return json.Unmarshal(data, (*plain)(l))
}

func (ri *RelatedIdentifier) UnmarshalJSON(data []byte) error {
	if err := checkFields(data, "metadata.related_identifiers[].", []string{"identifier", "scheme", "relation"}, "resource_type"); err != nil {
		return err
	}
	type plain RelatedIdentifier
	return json.Unmarshal(data, (*plain)(ri))
}

func (rt *ResourceType) UnmarshalJSON(data []byte) error {
	if err := checkFields(data, "metadata.resource_type.", []string{"type"}, "subtype"); err != nil {
		return err
	}
	type plain ResourceType
	return json.Unmarshal(data, (*plain)(rt))
}

// checkFields requires every key in required and rejects null for the
// optional keys.
func checkFields(data []byte, path string, required []string, optional ...string) error {
	obj, err := jsonfields.Parse(data)
	if err != nil {
		return fmt.Errorf("%w: %s%v", ErrInvalidRecord, path, err)
	}
	if err := obj.Require(required...); err != nil {
		return fmt.Errorf("%w: %s%w", ErrInvalidRecord, path, err)
	}
	if err := obj.NotNull(optional...); err != nil {
		return fmt.Errorf("%w: %s%w", ErrInvalidRecord, path, err)
	}
	return nil
}
