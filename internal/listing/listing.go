// Package listing serves the read side of the catalog: the joined
// book+author projection the browse page renders, filtered and sorted.
package listing

import (
	"time"
)

// Sort keys accepted by ListBooks. Anything else falls back to SortTitle.
const (
	SortTitle  = "title"
	SortAuthor = "author"
)

// BookRow is the joined book+author projection needed for display.
type BookRow struct {
	ID              int64  `json:"id"`
	ISBN            string `json:"isbn"`
	Title           string `json:"title"`
	PublicationYear *int   `json:"publication_year,omitempty"`
	CoverURL        string `json:"cover_url"`
	AuthorID        int64  `json:"author_id"`
	AuthorName      string `json:"author_name"`
}

// AuthorRow backs the author picker on the add-book form.
type AuthorRow struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	BirthDate   time.Time  `json:"birth_date"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
}

// Query holds the normalized listing parameters.
type Query struct {
	SortBy string
	Search string
}
