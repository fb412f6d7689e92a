package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument indicates a required identifier or field was
	// missing or malformed; raised before any storage call.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrVersionConflict indicates a versioned write lost a race with a
	// concurrent writer.
	ErrVersionConflict = errors.New("version conflict")
)

// StorageError wraps a failure from the persistence layer. Callers must
// leave their local state unchanged when they receive one.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
