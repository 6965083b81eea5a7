package config

import (
	"errors"
	"fmt"
)

// ValidationError describes a single rejected configuration value.
type ValidationError struct {
	Variable string
	Value    string
	Reason   string
}

func newValidationError(variable, value, reason string) *ValidationError {
	return &ValidationError{Variable: variable, Value: value, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Variable, e.Reason)
	}
	return fmt.Sprintf("%s=%q: %s", e.Variable, e.Value, e.Reason)
}

// combineValidationErrors joins every collected error so the operator
// sees all problems in one run instead of fixing them one at a time.
func combineValidationErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
