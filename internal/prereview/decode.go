package prereview

import (
	"encoding/json"
	"fmt"

	"github.com/prereview/zsync/internal/jsonfields"
)

// UnmarshalJSON requires every key of a full review. doi may be null.
func (r *FullReview) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "review")
	if err != nil {
		return err
	}
	if err := obj.Require("authors", "drafts", "preprint", "updatedAt", "uuid"); err != nil {
		return fmt.Errorf("%w: review %w", ErrInvalidPayload, err)
	}
	if err := obj.Present("doi"); err != nil {
		return fmt.Errorf("%w: review %w", ErrInvalidPayload, err)
	}
	type plain FullReview
	return json.Unmarshal(data, (*plain)(r))
}

func (a *Author) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "author", "uuid"); err != nil {
		return err
	}
	type plain Author
	return json.Unmarshal(data, (*plain)(a))
}

func (d *Draft) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "draft", "contents"); err != nil {
		return err
	}
	type plain Draft
	return json.Unmarshal(data, (*plain)(d))
}

func (p *Preprint) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "preprint", "handle", "title"); err != nil {
		return err
	}
	type plain Preprint
	return json.Unmarshal(data, (*plain)(p))
}

// UnmarshalJSON requires name and isAnonymous. orcid may be absent but not null.
func (p *Persona) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "persona")
	if err != nil {
		return err
	}
	if err := obj.Require("isAnonymous", "name"); err != nil {
		return fmt.Errorf("%w: persona %w", ErrInvalidPayload, err)
	}
	if err := obj.NotNull("orcid"); err != nil {
		return fmt.Errorf("%w: persona %w", ErrInvalidPayload, err)
	}
	type plain Persona
	return json.Unmarshal(data, (*plain)(p))
}

func parseObject(data []byte, what string) (jsonfields.Object, error) {
	obj, err := jsonfields.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, what, err)
	}
	return obj, nil
}

func requireFields(data []byte, what string, keys ...string) error {
	obj, err := parseObject(data, what)
	if err != nil {
		return err
	}
	if err := obj.Require(keys...); err != nil {
		return fmt.Errorf("%w: %s %w", ErrInvalidPayload, what, err)
	}
	return nil
}
