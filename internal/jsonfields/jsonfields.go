// Package jsonfields checks which keys a JSON object carries, which
// encoding/json cannot tell apart from zero values.
package jsonfields

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissing indicates a required key is absent.
	ErrMissing = errors.New("missing")

	// ErrNull indicates a key is present with a null value where null is not allowed.
	ErrNull = errors.New("null")
)

// Object is the raw members of a JSON object.
type Object map[string]json.RawMessage

// Parse splits a JSON object into its members. A JSON null yields an empty
// Object, so every required key is reported missing.
func Parse(data []byte) (Object, error) {
	var o Object
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, err
	}
	return o, nil
}

// Require checks that every key is present and not null.
func (o Object) Require(keys ...string) error {
	for _, key := range keys {
		v, ok := o[key]
		if !ok {
			return fmt.Errorf("%s: %w", key, ErrMissing)
		}
		if isNull(v) {
			return fmt.Errorf("%s: %w", key, ErrNull)
		}
	}
	return nil
}

// Present checks that every key is present. Null is allowed.
func (o Object) Present(keys ...string) error {
	for _, key := range keys {
		if _, ok := o[key]; !ok {
			return fmt.Errorf("%s: %w", key, ErrMissing)
		}
	}
	return nil
}

// NotNull checks that optional keys, when present, are not null.
func (o Object) NotNull(keys ...string) error {
	for _, key := range keys {
		if v, ok := o[key]; ok && isNull(v) {
			return fmt.Errorf("%s: %w", key, ErrNull)
		}
	}
	return nil
}

func isNull(v json.RawMessage) bool {
	return string(v) == "null"
}
