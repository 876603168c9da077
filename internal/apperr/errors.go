package apperr

import "fmt"

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// ConfigError reports a structural mismatch between what an operation needs
// and how its receiver was constructed, e.g. a snapshot that expects a fixed
// number of fields.
type ConfigError struct {
	Expected int
	Actual   int
	What     string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("expected %d %s, got %d", e.Expected, e.What, e.Actual)
}

func NewConfig(what string, expected, actual int) *ConfigError {
	return &ConfigError{Expected: expected, Actual: actual, What: what}
}
