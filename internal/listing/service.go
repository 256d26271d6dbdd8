package listing

import (
	"context"
	"strings"
)

// Repository defines the contract for listing reads.
type Repository interface {
	ListBooks(ctx context.Context, q Query) ([]BookRow, error)
	ListAuthors(ctx context.Context) ([]AuthorRow, error)
}

// Service normalizes listing parameters and delegates to the repository.
// Read-only, no side effects.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListBooks filters the catalog by a case-insensitive substring match on book
// title or author name, and sorts by the requested key. Unrecognized or
// absent sort keys default to title.
func (s *Service) ListBooks(ctx context.Context, q Query) ([]BookRow, error) {
	if q.SortBy != SortAuthor {
		q.SortBy = SortTitle
	}
	q.Search = strings.TrimSpace(q.Search)
	return s.repo.ListBooks(ctx, q)
}

// ListAuthors returns all authors ordered by name.
func (s *Service) ListAuthors(ctx context.Context) ([]AuthorRow, error) {
	return s.repo.ListAuthors(ctx)
}
