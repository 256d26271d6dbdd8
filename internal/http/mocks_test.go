package http

import (
	"context"

	"booklib/internal/catalog"
	"booklib/internal/listing"

	"github.com/stretchr/testify/mock"
)

type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) AddAuthor(ctx context.Context, in catalog.AddAuthorInput) (catalog.AddAuthorResult, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(catalog.AddAuthorResult), args.Error(1)
}

func (m *mockCatalogService) DeleteAuthor(ctx context.Context, id int64) (catalog.DeleteAuthorResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.DeleteAuthorResult), args.Error(1)
}

func (m *mockCatalogService) ConfirmAuthorDeletion(ctx context.Context, id int64) (catalog.ConfirmDeletionResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.ConfirmDeletionResult), args.Error(1)
}

func (m *mockCatalogService) AddBook(ctx context.Context, in catalog.AddBookInput) (catalog.AddBookResult, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(catalog.AddBookResult), args.Error(1)
}

func (m *mockCatalogService) DeleteBook(ctx context.Context, id int64) (catalog.DeleteBookResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.DeleteBookResult), args.Error(1)
}

type mockListingService struct {
	mock.Mock
}

func (m *mockListingService) ListBooks(ctx context.Context, q listing.Query) ([]listing.BookRow, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]listing.BookRow), args.Error(1)
}

func (m *mockListingService) ListAuthors(ctx context.Context) ([]listing.AuthorRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]listing.AuthorRow), args.Error(1)
}
