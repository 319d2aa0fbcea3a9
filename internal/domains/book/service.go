package book

import "context"

// Service owns the book lifecycle.
type Service interface {
	// GetBook returns ErrBookNotFound when the isbn does not exist.
	GetBook(ctx context.Context, isbn string) (*Book, error)

	// GetBooks returns every book, or only those referencing authorID
	// when it is non-nil. An empty result is not an error.
	GetBooks(ctx context.Context, authorID *int64) ([]Book, error)

	// CreateUpdate is the upsert: create-or-full-replace at the path
	// isbn. The returned flag reports whether the book was created
	// (true) or replaced (false).
	CreateUpdate(ctx context.Context, isbn string, req *BookRequest) (*Book, bool, error)

	// PartialUpdate merges the present patch fields onto the stored
	// book; the author reference stays untouched.
	PartialUpdate(ctx context.Context, isbn string, req *UpdateBookRequest) (*Book, error)

	// DeleteBook is idempotent; deleting an absent isbn succeeds.
	DeleteBook(ctx context.Context, isbn string) error
}
