package book

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrBookNotFound is always wrapped with the isbn via NotFoundError,
	// rendering as "book with isbn X not found".
	ErrBookNotFound = errors.New("not found")

	// ErrAuthorMissing: the book's author reference does not resolve.
	// Distinct from ErrBookNotFound so the transport can report it as a
	// bad request rather than a missing resource. Wrapped with the id
	// via MissingAuthorError.
	ErrAuthorMissing = errors.New("not found")

	// ErrInvalidAuthorState: a persisted author came back without an id.
	// This is a store invariant violation, never caller input.
	ErrInvalidAuthorState = errors.New("author is invalid: author id must not be null")
)

// NotFoundError builds the not-found error for an isbn.
func NotFoundError(isbn string) error {
	return fmt.Errorf("book with isbn %s %w", isbn, ErrBookNotFound)
}

// MissingAuthorError builds the missing-reference error for an author id.
func MissingAuthorError(authorID int64) error {
	return fmt.Errorf("author with id %d %w", authorID, ErrAuthorMissing)
}

// ToErrorCode converts a service error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrAuthorMissing):
		return "AUTHOR_MISSING"
	case errors.Is(err, ErrInvalidAuthorState):
		return "INVALID_AUTHOR_STATE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts a service error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAuthorMissing):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidAuthorState):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
