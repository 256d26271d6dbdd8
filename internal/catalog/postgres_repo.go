package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Constraint names from db/migrations. Unique and foreign-key violations on
// these are translated into the catalog error taxonomy, so a race between two
// writers resolves deterministically in the store.
const (
	authorNameConstraint = "authors_name_lower_idx"
	bookTitleConstraint  = "books_author_title_lower_idx"
	bookISBNConstraint   = "books_isbn_key"
	bookAuthorConstraint = "books_author_id_fkey"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) CreateAuthor(ctx context.Context, a *Author) error {
	const sql = `
		INSERT INTO authors (name, birth_date, date_of_death)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.QueryRow(ctx, sql, a.Name, a.BirthDate, a.DateOfDeath).Scan(&a.ID)
	if err != nil {
		if constraintViolated(err, pgUniqueViolation, authorNameConstraint) {
			return ErrDuplicateName
		}
		return fmt.Errorf("insert author: %w", err)
	}
	return nil
}

func (r *PostgresRepo) GetAuthor(ctx context.Context, id int64) (Author, error) {
	const sql = `
		SELECT id, name, birth_date, date_of_death
		FROM authors
		WHERE id = $1`

	var a Author
	err := r.db.QueryRow(ctx, sql, id).Scan(&a.ID, &a.Name, &a.BirthDate, &a.DateOfDeath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Author{}, ErrAuthorNotFound
		}
		return Author{}, fmt.Errorf("get author: %w", err)
	}
	return a, nil
}

func (r *PostgresRepo) CountBooksByAuthor(ctx context.Context, authorID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM books WHERE author_id = $1`, authorID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return count, nil
}

// DeleteAuthor locks the author row, counts its books, and deletes only when
// the count is zero. A refusal rolls back having written nothing.
func (r *PostgresRepo) DeleteAuthor(ctx context.Context, id int64) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var lockedID int64
	err = tx.QueryRow(ctx, `SELECT id FROM authors WHERE id = $1 FOR UPDATE`, id).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrAuthorNotFound
		}
		return 0, fmt.Errorf("lock author: %w", err)
	}

	var bookCount int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM books WHERE author_id = $1`, id).Scan(&bookCount); err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	if bookCount > 0 {
		return bookCount, nil
	}

	if _, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id); err != nil {
		return 0, fmt.Errorf("delete author: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return 0, nil
}

func (r *PostgresRepo) CreateBook(ctx context.Context, b *Book) error {
	const sql = `
		INSERT INTO books (isbn, title, publication_year, book_cover_url, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRow(ctx, sql, b.ISBN, b.Title, b.PublicationYear, b.CoverURL, b.AuthorID).Scan(&b.ID)
	if err != nil {
		switch {
		case constraintViolated(err, pgUniqueViolation, bookTitleConstraint):
			return ErrDuplicateTitle
		case constraintViolated(err, pgUniqueViolation, bookISBNConstraint):
			return ErrDuplicateISBN
		case constraintViolated(err, pgForeignKeyViolation, bookAuthorConstraint):
			return ErrAuthorReference
		}
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// DeleteBook removes the book and counts the author's remaining books in the
// same transaction, so the orphan signal can never observe a half-applied
// deletion.
func (r *PostgresRepo) DeleteBook(ctx context.Context, id int64) (DeletedBook, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return DeletedBook{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var deleted DeletedBook
	err = tx.QueryRow(ctx, `SELECT title, author_id FROM books WHERE id = $1 FOR UPDATE`, id).
		Scan(&deleted.Title, &deleted.AuthorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DeletedBook{}, ErrBookNotFound
		}
		return DeletedBook{}, fmt.Errorf("lock book: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id); err != nil {
		return DeletedBook{}, fmt.Errorf("delete book: %w", err)
	}

	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM books WHERE author_id = $1`, deleted.AuthorID).
		Scan(&deleted.Remaining)
	if err != nil {
		return DeletedBook{}, fmt.Errorf("count remaining books: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return DeletedBook{}, fmt.Errorf("commit: %w", err)
	}
	return deleted, nil
}

func constraintViolated(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code && pgErr.ConstraintName == constraint
}
