package service

import "fmt"

// ValidationError reports a request rejected before any write, carrying the
// specific violated constraint.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
