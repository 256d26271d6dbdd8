package listing

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) ListBooks(ctx context.Context, q Query) ([]BookRow, error) {
	where := ""
	args := []any{}
	if q.Search != "" {
		where = "WHERE b.title ILIKE $1 OR a.name ILIKE $1"
		args = append(args, "%"+q.Search+"%")
	}

	// books.id breaks ties so the order is deterministic for equal keys.
	order := "b.title ASC, b.id ASC"
	if q.SortBy == SortAuthor {
		order = "a.name ASC, b.id ASC"
	}

	sql := fmt.Sprintf(`
		SELECT b.id, b.isbn, b.title, b.publication_year, b.book_cover_url, b.author_id, a.name
		FROM books b
		JOIN authors a ON a.id = b.author_id
		%s
		ORDER BY %s`, where, order)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var out []BookRow
	for rows.Next() {
		var b BookRow
		if err := rows.Scan(
			&b.ID, &b.ISBN, &b.Title, &b.PublicationYear, &b.CoverURL, &b.AuthorID, &b.AuthorName,
		); err != nil {
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) ListAuthors(ctx context.Context) ([]AuthorRow, error) {
	const sql = `
		SELECT id, name, birth_date, date_of_death
		FROM authors
		ORDER BY name ASC, id ASC`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	defer rows.Close()

	var out []AuthorRow
	for rows.Next() {
		var a AuthorRow
		if err := rows.Scan(&a.ID, &a.Name, &a.BirthDate, &a.DateOfDeath); err != nil {
			return nil, fmt.Errorf("scan author row: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
