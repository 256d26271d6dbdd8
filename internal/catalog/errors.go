package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAuthorNotFound is returned when the referenced author does not exist.
	ErrAuthorNotFound = errors.New("author not found")
	// ErrBookNotFound is returned when the referenced book does not exist.
	ErrBookNotFound = errors.New("book not found")
	// ErrDuplicateName means another author already uses this name
	// (case-insensitive). The store's unique index is the source of truth.
	ErrDuplicateName = errors.New("author name already in use")
	// ErrDuplicateTitle means the author already has a book with this title
	// (case-insensitive).
	ErrDuplicateTitle = errors.New("title already exists for this author")
	// ErrDuplicateISBN means another book already uses this ISBN.
	ErrDuplicateISBN = errors.New("isbn already in use")
	// ErrAuthorReference means the book's author_id does not reference a live
	// author. Surfaced by the store's foreign key, never pre-checked.
	ErrAuthorReference = errors.New("author does not exist")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError rejects malformed or missing input before any write.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}
