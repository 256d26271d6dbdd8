package http

import (
	"errors"
	"net/http"

	"booklib/internal/catalog"
)

// writeCatalogError maps the catalog error taxonomy onto HTTP responses.
// Store failures are reported generically; the cause is logged at the
// service layer, not exposed to the user.
func writeCatalogError(r *http.Request, w http.ResponseWriter, err error) {
	var verr *catalog.ValidationError
	switch {
	case errors.As(err, &verr):
		details := make([]ErrorDetail, len(verr.Fields))
		for i, f := range verr.Fields {
			details[i] = ErrorDetail{Field: f.Field, Message: f.Message}
		}
		JSONError(r, w, http.StatusBadRequest, "validation_error", "Please fill in all fields correctly.", details)
	case errors.Is(err, catalog.ErrAuthorNotFound):
		JSONError(r, w, http.StatusNotFound, "not_found", "Author not found.", nil)
	case errors.Is(err, catalog.ErrBookNotFound):
		JSONError(r, w, http.StatusNotFound, "not_found", "Book not found.", nil)
	case errors.Is(err, catalog.ErrAuthorReference):
		JSONError(r, w, http.StatusUnprocessableEntity, "unknown_author", "The selected author does not exist.", nil)
	default:
		JSONError(r, w, http.StatusInternalServerError, "database_error", "A database error occurred. No changes were made.", nil)
	}
}

// NotFoundHandler serves the JSON not-found page for unknown resources.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	JSONError(r, w, http.StatusNotFound, "not_found", "The page you requested does not exist.", nil)
}
