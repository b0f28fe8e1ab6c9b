package repository

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a read or update targets a row that
	// does not exist. Deletes of absent rows are not errors.
	ErrNotFound = errors.New("record not found")

	// ErrInvalid is returned when a write carries a value outside one of
	// the closed enumerations; such records are rejected, never stored.
	ErrInvalid = errors.New("invalid value")
)

// marshalJSON encodes a JSON-column value, defaulting nil slices/maps to
// their empty literal so columns never hold SQL NULL or "null".
func marshalJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshalling json column: %w", err)
	}
	s := string(data)
	if s == "null" {
		return "[]", nil
	}
	return s, nil
}

func unmarshalJSON(raw string, v any) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("unmarshalling json column: %w", err)
	}
	return nil
}
