package store

import (
	"sync"

	"bookshelf/models"
)

// MemoryBookStore keeps books in an ordered slice. Ids come from a
// monotonic counter and are never reused, so a create after a delete can
// not collide with a live id.
type MemoryBookStore struct {
	mu     sync.RWMutex
	books  []models.Book
	nextId int
}

func CreateMemoryStore() *MemoryBookStore {
	return &MemoryBookStore{nextId: 1}
}

func (s *MemoryBookStore) List() []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Book, len(s.books))
	copy(out, s.books)
	return out
}

func (s *MemoryBookStore) Get(id int) (models.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, book := range s.books {
		if book.Id == id {
			return book, true
		}
	}
	return models.Book{}, false
}

func (s *MemoryBookStore) Insert(title, author string) models.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := models.Book{Id: s.nextId, Title: title, Author: author}
	s.nextId++
	s.books = append(s.books, book)
	return book
}

// Update overwrites only the non-empty fields, leaving the rest as-is.
func (s *MemoryBookStore) Update(id int, title, author string) (models.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.books {
		if s.books[i].Id != id {
			continue
		}
		if title != "" {
			s.books[i].Title = title
		}
		if author != "" {
			s.books[i].Author = author
		}
		return s.books[i], true
	}
	return models.Book{}, false
}

func (s *MemoryBookStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.books {
		if s.books[i].Id == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			return true
		}
	}
	return false
}

func (s *MemoryBookStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = nil
}

func (s *MemoryBookStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.books)
}
