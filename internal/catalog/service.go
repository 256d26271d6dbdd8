package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// coverLookupTimeout bounds the external cover request so a slow catalog
// cannot stall the add-book flow. The lookup runs before the write
// transaction opens, so no transaction is ever pinned on network I/O.
const coverLookupTimeout = 5 * time.Second

// Service implements the add/delete workflows for authors and books,
// including the orphan-author confirmation flow.
type Service struct {
	repo   Repository
	covers CoverLookup
	logger *zap.Logger
}

func NewService(repo Repository, covers CoverLookup, logger *zap.Logger) *Service {
	return &Service{repo: repo, covers: covers, logger: logger}
}

// AddAuthor validates the input, parses the ISO dates, and inserts the
// author. A name collision (case-insensitive, after trimming) is reported as
// a duplicate outcome with zero rows written.
func (s *Service) AddAuthor(ctx context.Context, in AddAuthorInput) (AddAuthorResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	if verr := validateStruct(in); verr != nil {
		return AddAuthorResult{}, verr
	}

	birth, verr := parseDate("birth_date", in.BirthDate)
	if verr != nil {
		return AddAuthorResult{}, verr
	}

	var death *time.Time
	if in.DateOfDeath != "" {
		d, verr := parseDate("date_of_death", in.DateOfDeath)
		if verr != nil {
			return AddAuthorResult{}, verr
		}
		if d.Before(birth) {
			return AddAuthorResult{}, newValidationError("date_of_death", "date_of_death must not precede birth_date")
		}
		death = &d
	}

	author := Author{Name: in.Name, BirthDate: birth, DateOfDeath: death}
	err := s.repo.CreateAuthor(ctx, &author)
	if errors.Is(err, ErrDuplicateName) {
		return AddAuthorResult{
			Duplicate: true,
			Message:   fmt.Sprintf("Author %q already exists.", in.Name),
		}, nil
	}
	if err != nil {
		s.logger.Error("add author failed", zap.String("name", in.Name), zap.Error(err))
		return AddAuthorResult{}, err
	}

	return AddAuthorResult{
		Author:  author,
		Message: fmt.Sprintf("Author %q was successfully added.", author.Name),
	}, nil
}

// DeleteAuthor deletes the author only when it owns zero books. A refusal is
// an outcome, not an error: the author and all books stay untouched.
func (s *Service) DeleteAuthor(ctx context.Context, id int64) (DeleteAuthorResult, error) {
	bookCount, err := s.repo.DeleteAuthor(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrAuthorNotFound) {
			s.logger.Error("delete author failed", zap.Int64("author_id", id), zap.Error(err))
		}
		return DeleteAuthorResult{}, err
	}
	if bookCount > 0 {
		return DeleteAuthorResult{Deleted: false, BookCount: bookCount}, nil
	}
	return DeleteAuthorResult{Deleted: true}, nil
}

// ConfirmAuthorDeletion is the read-only lookup backing the delete-author
// confirmation prompt.
func (s *Service) ConfirmAuthorDeletion(ctx context.Context, id int64) (ConfirmDeletionResult, error) {
	author, err := s.repo.GetAuthor(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrAuthorNotFound) {
			s.logger.Error("confirm author deletion failed", zap.Int64("author_id", id), zap.Error(err))
		}
		return ConfirmDeletionResult{}, err
	}
	count, err := s.repo.CountBooksByAuthor(ctx, id)
	if err != nil {
		s.logger.Error("count author books failed", zap.Int64("author_id", id), zap.Error(err))
		return ConfirmDeletionResult{}, err
	}
	return ConfirmDeletionResult{Author: author, BookCount: count}, nil
}

// AddBook validates the input, resolves the cover art best-effort, and
// inserts the book. Title collisions under the same author and ISBN
// collisions are reported as duplicate outcomes; a dangling author_id
// surfaces as ErrAuthorReference from the store's foreign key.
func (s *Service) AddBook(ctx context.Context, in AddBookInput) (AddBookResult, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.ISBN = strings.TrimSpace(in.ISBN)
	if verr := validateStruct(in); verr != nil {
		return AddBookResult{}, verr
	}

	coverCtx, cancel := context.WithTimeout(ctx, coverLookupTimeout)
	coverURL := s.covers.Lookup(coverCtx, in.ISBN)
	cancel()

	year := in.PublicationYear
	book := Book{
		ISBN:            in.ISBN,
		Title:           in.Title,
		PublicationYear: &year,
		CoverURL:        coverURL,
		AuthorID:        in.AuthorID,
	}
	err := s.repo.CreateBook(ctx, &book)
	switch {
	case errors.Is(err, ErrDuplicateTitle):
		return AddBookResult{
			Duplicate: true,
			Message:   fmt.Sprintf("Book %q already exists for this author.", in.Title),
		}, nil
	case errors.Is(err, ErrDuplicateISBN):
		return AddBookResult{
			Duplicate: true,
			Message:   fmt.Sprintf("A book with ISBN %q already exists.", in.ISBN),
		}, nil
	case errors.Is(err, ErrAuthorReference):
		return AddBookResult{}, err
	case err != nil:
		s.logger.Error("add book failed", zap.String("title", in.Title), zap.Error(err))
		return AddBookResult{}, err
	}

	return AddBookResult{
		Book:    book,
		Message: fmt.Sprintf("Book %q was successfully added.", book.Title),
	}, nil
}

// DeleteBook deletes the book and reports whether the owning author is now
// orphaned, so the caller can offer author deletion.
func (s *Service) DeleteBook(ctx context.Context, id int64) (DeleteBookResult, error) {
	deleted, err := s.repo.DeleteBook(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrBookNotFound) {
			s.logger.Error("delete book failed", zap.Int64("book_id", id), zap.Error(err))
		}
		return DeleteBookResult{}, err
	}
	return DeleteBookResult{
		Title:          deleted.Title,
		AuthorID:       deleted.AuthorID,
		AuthorOrphaned: deleted.Remaining == 0,
	}, nil
}
