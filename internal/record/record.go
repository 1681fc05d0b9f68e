// Package record provides read access to loosely-typed nested records,
// typically the result of decoding JSON into map[string]any. Field paths
// use dot notation ("customer.name"); lookups fail fast with
// ErrMissingField so callers never see partially-populated values.
package record

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingField marks a required field absent from the source record.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidField marks a field present with an unusable type.
	ErrInvalidField = errors.New("invalid field")
)

// Record is a loosely-typed nested record as decoded from JSON.
type Record map[string]any

// Lookup resolves a dot-separated path against the record.
func (r Record) Lookup(path string) (any, error) {
	parts := strings.Split(path, ".")
	var current any = map[string]any(r)
	for i, part := range parts {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not a nested record", ErrInvalidField, strings.Join(parts[:i], "."))
		}
		value, ok := node[part]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(parts[:i+1], "."))
		}
		current = value
	}
	return current, nil
}

// String reads a string field at path.
func (r Record) String(path string) (string, error) {
	value, err := r.Lookup(path)
	if err != nil {
		return "", err
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a string", ErrInvalidField, path)
	}
	return s, nil
}

// Float reads a numeric field at path. JSON numbers decode as float64;
// plain ints from hand-built records are accepted as well.
func (r Record) Float(path string) (float64, error) {
	value, err := r.Lookup(path)
	if err != nil {
		return 0, err
	}
	switch n := value.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: %s is not a number", ErrInvalidField, path)
	}
}

// Int reads an integral field at path.
func (r Record) Int(path string) (int, error) {
	n, err := r.Float(path)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Slice reads a sequence of nested records at path.
func (r Record) Slice(path string) ([]Record, error) {
	value, err := r.Lookup(path)
	if err != nil {
		return nil, err
	}
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a sequence", ErrInvalidField, path)
	}
	out := make([]Record, 0, len(items))
	for i, item := range items {
		node, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is not a nested record", ErrInvalidField, path, i)
		}
		out = append(out, Record(node))
	}
	return out, nil
}
