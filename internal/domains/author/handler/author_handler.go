package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookstore-catalog/internal/domains/author"
	"bookstore-catalog/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// Create handles POST /v1/authors.
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.AuthorRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_INPUT", "validation failed", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// GetAll handles GET /v1/authors.
func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	resp := make([]author.AuthorResponse, 0, len(authors))
	for _, a := range authors {
		resp = append(resp, *a.ToResponse())
	}

	response.Success(c, http.StatusOK, resp)
}

// GetByID handles GET /v1/authors/:id.
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, a.ToResponse())
}

// FullUpdate handles PUT /v1/authors/:id.
func (h *AuthorHandler) FullUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req author.AuthorRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_INPUT", "validation failed", err)
		return
	}

	updated, err := h.service.FullUpdate(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// PartialUpdate handles PATCH /v1/authors/:id.
func (h *AuthorHandler) PartialUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req author.UpdateAuthorRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_INPUT", "validation failed", err)
		return
	}

	updated, err := h.service.PartialUpdate(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// Delete handles DELETE /v1/authors/:id. Deleting an absent id still
// returns 204.
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.NoContent(c)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return 0, false
	}
	return id, true
}
