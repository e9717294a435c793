package models

// Book is the single resource this service manages. Ids are assigned by
// the store and never reused.
type Book struct {
	Id     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// CreateBookRequest is the create payload. Id is a pointer so a client
// supplying one (which is forbidden) can be told apart from omitting it.
type CreateBookRequest struct {
	Id     *int   `json:"id"`
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
}

// UpdateBookRequest is the update payload. Empty fields leave the stored
// values untouched.
type UpdateBookRequest struct {
	Id     *int   `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}
