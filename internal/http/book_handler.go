package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"booklib/internal/catalog"
	"booklib/internal/listing"
)

type BookHandler struct {
	catalog CatalogService
	listing ListingService
}

func NewBookHandler(catalogSvc CatalogService, listingSvc ListingService) *BookHandler {
	return &BookHandler{catalog: catalogSvc, listing: listingSvc}
}

// @Summary List books
// @Description Browse the catalog with optional search and sorting
// @Tags books
// @Produce json
// @Param sort_by query string false "Sort key: title or author" default(title)
// @Param search query string false "Case-insensitive substring match on title or author name"
// @Success 200 {object} map[string]interface{}
// @Router /books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	q := listing.Query{
		SortBy: r.URL.Query().Get("sort_by"),
		Search: r.URL.Query().Get("search"),
	}

	books, err := h.listing.ListBooks(r.Context(), q)
	if err != nil {
		writeCatalogError(r, w, err)
		return
	}
	JSONSuccess(r, w, books, map[string]interface{}{"count": len(books)})
}

// @Summary Add book
// @Description Create a new book; the cover is resolved best-effort from the ISBN
// @Tags books
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /books [post]
func (h *BookHandler) Add(w http.ResponseWriter, r *http.Request) {
	var in catalog.AddBookInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDecodeError(r, w, err)
		return
	}

	res, err := h.catalog.AddBook(r.Context(), in)
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

type deleteBookResponse struct {
	Deleted        bool   `json:"deleted"`
	AuthorID       int64  `json:"author_id"`
	AuthorOrphaned bool   `json:"author_orphaned"`
	Message        string `json:"message"`
}

// @Summary Delete book
// @Description Delete a book; flags the author when its last book is removed
// @Tags books
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		JSONError(r, w, http.StatusBadRequest, "invalid_id", "Book id must be a positive integer.", nil)
		return
	}

	res, err := h.catalog.DeleteBook(r.Context(), id)
	if err != nil {
		writeCatalogError(r, w, err)
		return
	}

	resp := deleteBookResponse{
		Deleted:        true,
		AuthorID:       res.AuthorID,
		AuthorOrphaned: res.AuthorOrphaned,
	}
	if res.AuthorOrphaned {
		resp.Message = fmt.Sprintf("Book %q was deleted. Its author has no more books; you may delete the author as well.", res.Title)
	} else {
		resp.Message = fmt.Sprintf("Book %q was deleted.", res.Title)
	}
	JSONSuccess(r, w, resp, nil)
}
