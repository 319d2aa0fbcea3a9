package author

import "context"

// Repository is the author store contract.
type Repository interface {
	// Create inserts a new author and returns it with the assigned id.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID returns ErrAuthorNotFound when absent.
	GetByID(ctx context.Context, id int64) (*Author, error)

	GetAll(ctx context.Context) ([]Author, error)

	// Save replaces the stored row for a.ID.
	Save(ctx context.Context, a *Author) (*Author, error)

	// Delete is a no-op when the id does not exist.
	Delete(ctx context.Context, id int64) error

	Exists(ctx context.Context, id int64) (bool, error)
}
