package author

import "context"

// Service owns the author lifecycle.
type Service interface {
	// Create persists a new author. The request must not carry an id;
	// the store assigns one.
	Create(ctx context.Context, req *AuthorRequest) (*Author, error)

	// FindAll returns every author in the store's natural order.
	FindAll(ctx context.Context) ([]Author, error)

	// FindByID returns ErrAuthorNotFound when the id does not exist.
	FindByID(ctx context.Context, id int64) (*Author, error)

	// FullUpdate replaces the stored author wholesale. The path id wins
	// over any id in the payload.
	FullUpdate(ctx context.Context, id int64, req *AuthorRequest) (*Author, error)

	// PartialUpdate merges the present patch fields onto the stored
	// author. An empty patch persists and returns the entity unchanged.
	PartialUpdate(ctx context.Context, id int64, req *UpdateAuthorRequest) (*Author, error)

	// DeleteByID is idempotent; deleting an absent id succeeds.
	DeleteByID(ctx context.Context, id int64) error
}
