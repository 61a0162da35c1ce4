package book

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"booktracker/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createBookRequest struct {
	Title       string  `json:"title" validate:"required"`
	Author      string  `json:"author" validate:"required"`
	TotalPages  int     `json:"totalPages" validate:"required,gt=0"`
	Status      string  `json:"status"`
	Price       float64 `json:"price" validate:"gte=0"`
	PagesRead   int     `json:"pagesRead" validate:"gte=0"`
	Format      string  `json:"format"`
	SuggestedBy string  `json:"suggestedBy"`
}

type updatePagesRequest struct {
	// Pointer so that 0 is distinguishable from a missing field.
	PagesRead *int `json:"pagesRead" validate:"required,gte=0"`
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		log.Printf("list books: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Could not fetch books", nil)
		return
	}
	if books == nil {
		books = []Book{}
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Title, author and total pages are required", details)
		return
	}

	created, err := h.service.Create(r.Context(), NewBookInput{
		Title:       req.Title,
		Author:      req.Author,
		TotalPages:  req.TotalPages,
		Status:      Status(req.Status),
		Price:       req.Price,
		PagesRead:   req.PagesRead,
		Format:      Format(req.Format),
		SuggestedBy: req.SuggestedBy,
	})
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			httpx.JSONError(w, http.StatusBadRequest, verr.Error(), nil)
			return
		}
		log.Printf("create book: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Could not create book", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

// UpdatePages handles PATCH /books/{id}/pages
func (h *HTTPHandler) UpdatePages(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req updatePagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Pages read is required", details)
		return
	}

	updated, err := h.service.UpdatePagesRead(r.Context(), id, *req.PagesRead)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Book not found", nil)
			return
		}
		log.Printf("update pages read: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Could not update pages read", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Book not found", nil)
			return
		}
		log.Printf("delete book: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Could not delete book", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Book deleted successfully"})
}

// GetStats handles GET /stats
func (h *HTTPHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		log.Printf("compute stats: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Could not compute statistics", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}
