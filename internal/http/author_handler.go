package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"booklib/internal/catalog"
)

type AuthorHandler struct {
	catalog CatalogService
	listing ListingService
}

func NewAuthorHandler(catalogSvc CatalogService, listingSvc ListingService) *AuthorHandler {
	return &AuthorHandler{catalog: catalogSvc, listing: listingSvc}
}

// @Summary List authors
// @Description Get all authors ordered by name, for the add-book picker
// @Tags authors
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /authors [get]
func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.listing.ListAuthors(r.Context())
	if err != nil {
		writeCatalogError(r, w, err)
		return
	}
	JSONSuccess(r, w, authors, map[string]interface{}{"count": len(authors)})
}

// @Summary Add author
// @Description Create a new author; a name already in use yields a duplicate outcome
// @Tags authors
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /authors [post]
func (h *AuthorHandler) Add(w http.ResponseWriter, r *http.Request) {
	var in catalog.AddAuthorInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDecodeError(r, w, err)
		return
	}

	res, err := h.catalog.AddAuthor(r.Context(), in)
	if err != nil {
		writeCatalogError(r, w, err)
		return
	}
	if res.Duplicate {
		JSONSuccess(r, w, res, nil)
		return
	}
	JSONSuccessCreated(r, w, res)
}

type deleteAuthorResponse struct {
	Deleted   bool   `json:"deleted"`
	BookCount int    `json:"book_count,omitempty"`
	Message   string `json:"message"`
}

// @Summary Delete author
// @Description Delete an author; refused (not an error) while the author still owns books
// @Tags authors
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /authors/{id} [delete]
func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		JSONError(r, w, http.StatusBadRequest, "invalid_id", "Author id must be a positive integer.", nil)
		return
	}

	res, err := h.catalog.DeleteAuthor(r.Context(), id)
	if err != nil {
		writeCatalogError(r, w, err)
		return
	}

	resp := deleteAuthorResponse{Deleted: res.Deleted}
	if res.Deleted {
		resp.Message = "Author was successfully deleted."
	} else {
		resp.BookCount = res.BookCount
		resp.Message = fmt.Sprintf("Author still owns %d book(s) and was not deleted.", res.BookCount)
	}
	JSONSuccess(r, w, resp, nil)
}

type confirmDeletionResponse struct {
	Author    catalog.Author `json:"author"`
	BookCount int            `json:"book_count"`
	Message   string         `json:"message,omitempty"`
}

// @Summary Confirm author deletion
// @Description Read-only prompt payload before deleting an author
// @Tags authors
// @Produce json
// @Param book_deleted query bool false "Set after a book deletion orphaned the author"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /authors/{id}/confirm-delete [get]
func (h *AuthorHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		JSONError(r, w, http.StatusBadRequest, "invalid_id", "Author id must be a positive integer.", nil)
		return
	}

	res, err := h.catalog.ConfirmAuthorDeletion(r.Context(), id)
	if err != nil {
		writeCatalogError(r, w, err)
		return
	}

	resp := confirmDeletionResponse{Author: res.Author, BookCount: res.BookCount}
	if r.URL.Query().Get("book_deleted") == "true" {
		resp.Message = "A book belonging to this author was just deleted. You may delete the author as well."
	}
	JSONSuccess(r, w, resp, nil)
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil && id > 0
}

// writeDecodeError translates JSON decode failures; type mismatches (e.g. a
// string where an integer is expected) are reported as field-level
// validation errors.
func writeDecodeError(r *http.Request, w http.ResponseWriter, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		details := []ErrorDetail{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type),
		}}
		JSONError(r, w, http.StatusBadRequest, "validation_error", "Please fill in all fields correctly.", details)
		return
	}
	JSONError(r, w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON.", nil)
}
