package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a lookup miss where the operation cannot
	// continue without the record.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is the generic authentication failure. It never
	// reveals which part of the credentials was wrong.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict reports a stale collection replace: another writer
	// advanced the version stamp after the caller read the collection.
	ErrConflict = errors.New("conflict")
)

// DuplicateFieldError reports a uniqueness violation during account
// creation. Field is "email" or "phone".
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string {
	switch e.Field {
	case "email":
		return "A user with this Email already exists."
	case "phone":
		return "A user with this Phone number already exists."
	}
	return fmt.Sprintf("A user with this %s already exists.", e.Field)
}
