package store

import "bookshelf/models"

// BookStore is the storage contract for books. Implementations own the
// Book records and assign ids; handlers only borrow them per request.
type BookStore interface {
	List() []models.Book
	Get(id int) (models.Book, bool)
	Insert(title, author string) models.Book
	Update(id int, title, author string) (models.Book, bool)
	Delete(id int) bool
	Reset()
	Count() int
}
