package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound signals a merely-missing record. Read-by-id, update and delete
// return it instead of an infrastructure error.
var ErrNotFound = errors.New("not found")

// ValidationError reports a missing or malformed input field. Field is empty
// when the payload as a whole is absent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConflictError reports a uniqueness violation (duplicate owner email,
// duplicate property name under the same owner).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// ReferenceError reports a foreign reference that names no existing record.
type ReferenceError struct {
	Message string
}

func (e *ReferenceError) Error() string { return e.Message }
