package breaker

import (
	"context"
	"errors"
)

// IsFailureStatus reports whether an HTTP status code counts as a
// breaker failure. 5xx responses are transport-level faults. Most 4xx
// codes are policy results the client caused and leave the breaker
// untouched; 408, 425 and 429 indicate pressure on the target and count
// as failures.
func IsFailureStatus(code int) bool {
	if code >= 500 {
		return true
	}
	switch code {
	case 408, 425, 429:
		return true
	}
	return false
}

// IsFailureError reports whether a call error counts as a breaker
// failure. Network errors and timeouts do; caller-initiated
// cancellation says nothing about the target's health and does not.
func IsFailureError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return true
}
