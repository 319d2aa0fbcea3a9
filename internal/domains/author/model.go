package author

// Author is the persisted author entity. The store assigns the id on
// creation; every fetched or updated author carries a non-zero id.
type Author struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Age         int    `json:"age" db:"age"`
	Description string `json:"description" db:"description"`
	Image       string `json:"image" db:"image"` // reference/path, not validated
}
