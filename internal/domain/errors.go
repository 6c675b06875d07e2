package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrArticleNotFound is returned when the article service confirmed
	// the article does not exist.
	ErrArticleNotFound = errors.New("article not found")

	// ErrArticleServiceUnavailable is returned when a write cannot proceed
	// because the article's existence could not be verified.
	ErrArticleServiceUnavailable = errors.New("article service unavailable")
)

// ValidationError reports an invalid comment payload. Fields maps a JSON
// field name to the reason it was rejected.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Fields))
}

// StorageError wraps a failure of the persistence layer.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err as a StorageError for operation op.
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
