package catalog

import (
	"context"
)

// DeletedBook reports what a book deletion removed and how many books the
// owning author has left, counted in the same transaction.
type DeletedBook struct {
	Title     string
	AuthorID  int64
	Remaining int
}

// Repository defines the contract for catalog data storage. Implementations
// must make every mutating call atomic: either all of its writes commit, or
// none do.
type Repository interface {
	// CreateAuthor inserts the author and fills in the generated ID.
	// Returns ErrDuplicateName when another author already uses the name.
	CreateAuthor(ctx context.Context, a *Author) error

	// GetAuthor returns the author or ErrAuthorNotFound.
	GetAuthor(ctx context.Context, id int64) (Author, error)

	// CountBooksByAuthor returns how many books the author owns.
	CountBooksByAuthor(ctx context.Context, authorID int64) (int, error)

	// DeleteAuthor deletes the author if it owns zero books and returns the
	// book count observed under lock. A non-zero count means the deletion
	// was refused and nothing changed. Returns ErrAuthorNotFound when the
	// author does not exist.
	DeleteAuthor(ctx context.Context, id int64) (int, error)

	// CreateBook inserts the book and fills in the generated ID. Returns
	// ErrDuplicateTitle, ErrDuplicateISBN, or ErrAuthorReference for the
	// corresponding constraint violations.
	CreateBook(ctx context.Context, b *Book) error

	// DeleteBook deletes the book and counts the author's remaining books in
	// one transaction. Returns ErrBookNotFound when the book does not exist.
	DeleteBook(ctx context.Context, id int64) (DeletedBook, error)
}

// CoverLookup resolves an ISBN to a cover image URL. The contract is total:
// implementations always return a usable URL and never fail.
type CoverLookup interface {
	Lookup(ctx context.Context, isbn string) string
}
