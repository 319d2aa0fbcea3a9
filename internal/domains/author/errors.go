package author

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrIDAlreadyAssigned signals a create request that carried an id.
	// Ids are assigned by the store, never by the caller.
	ErrIDAlreadyAssigned = errors.New("author id must not be set on create")

	// ErrAuthorNotFound is always wrapped with the id via NotFoundError,
	// rendering as "author with id X not found".
	ErrAuthorNotFound = errors.New("not found")
)

// NotFoundError builds the not-found error for an author id.
func NotFoundError(id int64) error {
	return fmt.Errorf("author with id %d %w", id, ErrAuthorNotFound)
}

// ToErrorCode converts a service error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrIDAlreadyAssigned):
		return "INVALID_INPUT"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts a service error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrIDAlreadyAssigned):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
