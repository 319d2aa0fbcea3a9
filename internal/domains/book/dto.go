package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BookRequest is the payload for PUT /v1/books/:isbn (create-or-replace).
// Any isbn in the body is overwritten by the path isbn.
type BookRequest struct {
	ISBN        *string          `json:"isbn"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Author      AuthorRefRequest `json:"author"`
}

// AuthorRefRequest references the owning author by id. Name and image are
// accepted for symmetry with the read shape but ignored on write; the
// embedded snapshot is always copied from the resolved author.
type AuthorRefRequest struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Author),
	)
}

func (r AuthorRefRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
	)
}

// UpdateBookRequest is a sparse patch; nil means "leave unchanged". The
// author reference is never alterable through a patch.
type UpdateBookRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

type BookResponse struct {
	ISBN        string                `json:"isbn"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Image       string                `json:"image"`
	Author      AuthorSummaryResponse `json:"author"`
}

type AuthorSummaryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`
}

func (b *Book) ToResponse() *BookResponse {
	return &BookResponse{
		ISBN:        b.ISBN,
		Title:       b.Title,
		Description: b.Description,
		Image:       b.Image,
		Author: AuthorSummaryResponse{
			ID:    b.Author.ID,
			Name:  b.Author.Name,
			Image: b.Author.Image,
		},
	}
}
