package store

import (
	"errors"
	"fmt"
)

// ErrDuplicateIdentity is returned when creating or updating a user
// would collide with an existing username or email.
var ErrDuplicateIdentity = errors.New("username or email already in use")

// NotFoundError reports that the requested entity does not exist.
type NotFoundError struct {
	Kind string
	ID   uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// ReferenceNotFoundError reports that a supplied foreign key does not
// resolve to an existing row. It is only returned by writes; nothing
// is persisted when it occurs.
type ReferenceNotFoundError struct {
	Kind string
	ID   uint
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("associated %s %d not found", e.Kind, e.ID)
}

// ValidationError reports malformed input, e.g. pagination bounds.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
