package http

import (
	"context"

	"booklib/internal/catalog"
	"booklib/internal/listing"
)

// CatalogService is the slice of the catalog the handlers need.
type CatalogService interface {
	AddAuthor(ctx context.Context, in catalog.AddAuthorInput) (catalog.AddAuthorResult, error)
	DeleteAuthor(ctx context.Context, id int64) (catalog.DeleteAuthorResult, error)
	ConfirmAuthorDeletion(ctx context.Context, id int64) (catalog.ConfirmDeletionResult, error)
	AddBook(ctx context.Context, in catalog.AddBookInput) (catalog.AddBookResult, error)
	DeleteBook(ctx context.Context, id int64) (catalog.DeleteBookResult, error)
}

// ListingService is the read side backing the browse and picker endpoints.
type ListingService interface {
	ListBooks(ctx context.Context, q listing.Query) ([]listing.BookRow, error)
	ListAuthors(ctx context.Context) ([]listing.AuthorRow, error)
}
