// Package store holds cross-cutting persistence concerns: the startup schema
// check that gates serving traffic.
package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// expectedColumns is the exact column set each table must carry. The service
// refuses to start against anything else.
var expectedColumns = map[string][]string{
	"authors": {"id", "name", "birth_date", "date_of_death"},
	"books":   {"id", "isbn", "title", "publication_year", "book_cover_url", "author_id"},
}

// ValidateSchema inspects information_schema and returns an error when tables
// or columns are missing or mismatched. Run cmd/migrate to fix the schema.
func ValidateSchema(ctx context.Context, db *pgxpool.Pool) error {
	for table, want := range expectedColumns {
		got, err := tableColumns(ctx, db, table)
		if err != nil {
			return err
		}
		if len(got) == 0 {
			return fmt.Errorf("missing table %q: apply the migrations in db/migrations", table)
		}
		missing, extra := diffColumns(want, got)
		if len(missing) > 0 || len(extra) > 0 {
			return fmt.Errorf("table %q has incorrect columns (missing: %s, unexpected: %s): apply the migrations in db/migrations",
				table, joinOrNone(missing), joinOrNone(extra))
		}
	}
	return nil
}

func tableColumns(ctx context.Context, db *pgxpool.Pool, table string) ([]string, error) {
	const sql = `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1`

	rows, err := db.Query(ctx, sql, table)
	if err != nil {
		return nil, fmt.Errorf("inspect table %s: %w", table, err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var col string
		if err := rows.Scan(&col); err != nil {
			return nil, fmt.Errorf("inspect table %s: %w", table, err)
		}
		cols = append(cols, col)
	}
	return cols, rows.Err()
}

func diffColumns(want, got []string) (missing, extra []string) {
	wantSet := make(map[string]bool, len(want))
	for _, c := range want {
		wantSet[c] = true
	}
	gotSet := make(map[string]bool, len(got))
	for _, c := range got {
		gotSet[c] = true
	}
	for _, c := range want {
		if !gotSet[c] {
			missing = append(missing, c)
		}
	}
	for _, c := range got {
		if !wantSet[c] {
			extra = append(extra, c)
		}
	}
	return missing, extra
}

func joinOrNone(cols []string) string {
	if len(cols) == 0 {
		return "none"
	}
	sort.Strings(cols)
	return strings.Join(cols, ", ")
}
