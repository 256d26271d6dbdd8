package catalog

import (
	"time"
)

// Author is the exclusive parent of its books. Authors are never edited after
// creation; they are only added and deleted.
type Author struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	BirthDate   time.Time  `json:"birth_date"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
}

// Book belongs to exactly one author. ISBN is globally unique.
type Book struct {
	ID              int64  `json:"id"`
	ISBN            string `json:"isbn"`
	Title           string `json:"title"`
	PublicationYear *int   `json:"publication_year,omitempty"`
	CoverURL        string `json:"cover_url"`
	AuthorID        int64  `json:"author_id"`
}

// AddAuthorInput carries the raw form values for AddAuthor. Dates are ISO
// strings (YYYY-MM-DD) and parsed by the service.
type AddAuthorInput struct {
	Name        string `json:"name" validate:"required"`
	BirthDate   string `json:"birth_date" validate:"required"`
	DateOfDeath string `json:"date_of_death"`
}

type AddBookInput struct {
	Title           string `json:"title" validate:"required"`
	ISBN            string `json:"isbn" validate:"required,isbn"`
	PublicationYear int    `json:"publication_year" validate:"required"`
	AuthorID        int64  `json:"author_id" validate:"required"`
}

// AddAuthorResult distinguishes a fresh insert from a duplicate rejection.
// A duplicate is not an error: the request was well-formed, just redundant.
type AddAuthorResult struct {
	Author    Author `json:"author"`
	Duplicate bool   `json:"duplicate"`
	Message   string `json:"message"`
}

type AddBookResult struct {
	Book      Book   `json:"book"`
	Duplicate bool   `json:"duplicate"`
	Message   string `json:"message"`
}

// DeleteAuthorResult reports a refusal (author still owns books) as a
// non-error outcome with Deleted set to false.
type DeleteAuthorResult struct {
	Deleted   bool `json:"deleted"`
	BookCount int  `json:"book_count"`
}

// DeleteBookResult carries the owning author's id so the caller can offer
// author deletion when the last book is gone.
type DeleteBookResult struct {
	Title          string `json:"title"`
	AuthorID       int64  `json:"author_id"`
	AuthorOrphaned bool   `json:"author_orphaned"`
}

// ConfirmDeletionResult is the payload for the delete-author confirmation
// prompt.
type ConfirmDeletionResult struct {
	Author    Author `json:"author"`
	BookCount int    `json:"book_count"`
}
