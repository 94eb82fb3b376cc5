package tasks

import "errors"

var (
	ErrNotFound = errors.New("task not found")
	ErrConflict = errors.New("task already exists")
)

// ValidationError reports a field that failed schema validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
