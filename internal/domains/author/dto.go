package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AuthorRequest is the payload for create (POST) and full update (PUT).
// On create the id must be absent; on full update any payload id is
// ignored in favor of the path id.
type AuthorRequest struct {
	ID          *int64 `json:"id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Age, validation.Min(0)),
	)
}

// UpdateAuthorRequest is a sparse patch. A nil field means "leave
// unchanged"; there is no way to express "clear this field" beyond
// sending an explicit empty string.
type UpdateAuthorRequest struct {
	Name        *string `json:"name"`
	Age         *int    `json:"age"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Age, validation.Min(0)),
	)
}

type AuthorResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID,
		Name:        a.Name,
		Age:         a.Age,
		Description: a.Description,
		Image:       a.Image,
	}
}
