package book

import "context"

// Repository is the book store contract.
type Repository interface {
	// GetByISBN returns ErrBookNotFound when absent.
	GetByISBN(ctx context.Context, isbn string) (*Book, error)

	GetAll(ctx context.Context) ([]Book, error)

	// GetByAuthor returns the books whose embedded author id matches,
	// via the store's by-author index.
	GetByAuthor(ctx context.Context, authorID int64) ([]Book, error)

	Exists(ctx context.Context, isbn string) (bool, error)

	// Upsert inserts or fully replaces the row for b.ISBN, verifying
	// atomically that the referenced author row still exists.
	Upsert(ctx context.Context, b *Book) (*Book, error)

	// Save replaces an existing row, ErrBookNotFound when absent. No
	// author re-check: a patched book keeps whatever snapshot it holds,
	// even one whose author has since been deleted.
	Save(ctx context.Context, b *Book) (*Book, error)

	// Delete is a no-op when the isbn does not exist.
	Delete(ctx context.Context, isbn string) error
}
