// Package canonical provides stable hashing of JSON-shaped values.
// Two values that encode to the same JSON object, regardless of key
// order or Go representation, produce the same hash.
package canonical

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash returns the hex-encoded SHA-256 of the canonical JSON encoding of v.
//
// The value is first round-tripped through encoding/json so that structs,
// maps and their nested combinations all normalise to the same form;
// encoding/json then emits object keys in sorted order with compact
// separators. The result is always a 64-character lowercase hex string.
func Hash(v any) (string, error) {
	normalised, err := normalise(v)
	if err != nil {
		return "", err
	}
	encoded, err := json.Marshal(normalised)
	if err != nil {
		return "", fmt.Errorf("failed to encode canonical form: %w", err)
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:]), nil
}

// normalise converts v into the generic JSON value space (map[string]any,
// []any, float64, string, bool, nil) so that equivalent inputs share one
// representation.
func normalise(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to normalise value: %w", err)
	}
	return out, nil
}
