package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookstore-catalog/internal/domains/book"
	"bookstore-catalog/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// GetBooks handles GET /v1/books?author=<id>.
func (h *BookHandler) GetBooks(c *gin.Context) {
	var authorID *int64
	if raw := c.Query("author"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid author filter")
			return
		}
		authorID = &id
	}

	books, err := h.service.GetBooks(c.Request.Context(), authorID)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	resp := make([]book.BookResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, *b.ToResponse())
	}

	response.Success(c, http.StatusOK, resp)
}

// GetBook handles GET /v1/books/:isbn.
func (h *BookHandler) GetBook(c *gin.Context) {
	isbn := c.Param("isbn")

	b, err := h.service.GetBook(c.Request.Context(), isbn)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, b.ToResponse())
}

// CreateUpdate handles PUT /v1/books/:isbn. Responds 201 when the book
// was created and 200 when an existing one was replaced.
func (h *BookHandler) CreateUpdate(c *gin.Context) {
	isbn := c.Param("isbn")

	var req book.BookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_INPUT", "validation failed", err)
		return
	}

	saved, created, err := h.service.CreateUpdate(c.Request.Context(), isbn, &req)
	if err != nil {
		response.ErrorResponse(c, book.ToHTTPStatus(err), book.ToErrorCode(err), err.Error())
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	response.Success(c, status, saved.ToResponse())
}

// PartialUpdate handles PATCH /v1/books/:isbn.
func (h *BookHandler) PartialUpdate(c *gin.Context) {
	isbn := c.Param("isbn")

	var req book.UpdateBookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.PartialUpdate(c.Request.Context(), isbn, &req)
	if err != nil {
		response.ErrorResponse(c, book.ToHTTPStatus(err), book.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// Delete handles DELETE /v1/books/:isbn. Deleting an absent isbn still
// returns 204.
func (h *BookHandler) Delete(c *gin.Context) {
	isbn := c.Param("isbn")

	if err := h.service.DeleteBook(c.Request.Context(), isbn); err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.NoContent(c)
}
