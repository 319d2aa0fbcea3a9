package book

// Book is the persisted book entity, keyed by the externally supplied
// isbn. The isbn is never generated by the store.
type Book struct {
	ISBN        string        `json:"isbn" db:"isbn"`
	Title       string        `json:"title" db:"title"`
	Description string        `json:"description" db:"description"`
	Image       string        `json:"image" db:"image"`
	Author      AuthorSummary `json:"author"`
}

// AuthorSummary is the denormalized author snapshot embedded in a book.
// It is copied from the author at write time, not a live reference: if
// the author is deleted later the snapshot goes stale and is not
// re-validated on read.
type AuthorSummary struct {
	ID    int64  `json:"id" db:"author_id"`
	Name  string `json:"name,omitempty" db:"author_name"`
	Image string `json:"image,omitempty" db:"author_image"`
}
