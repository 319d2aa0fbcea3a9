package repository

import (
	"context"
	"sync"

	"bookstore-catalog/internal/domains/book"
)

// memoryRepository is a mutex-guarded in-memory book store, keeping
// insertion order for stable listings. It backs the tests and the
// storeless development mode.
type memoryRepository struct {
	mu    sync.RWMutex
	books map[string]book.Book
	order []string
}

func NewMemoryRepository() book.Repository {
	return &memoryRepository{
		books: make(map[string]book.Book),
	}
}

func (r *memoryRepository) GetByISBN(_ context.Context, isbn string) (*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[isbn]
	if !ok {
		return nil, book.NotFoundError(isbn)
	}

	return &b, nil
}

func (r *memoryRepository) GetAll(_ context.Context) ([]book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]book.Book, 0, len(r.order))
	for _, isbn := range r.order {
		books = append(books, r.books[isbn])
	}

	return books, nil
}

func (r *memoryRepository) GetByAuthor(_ context.Context, authorID int64) ([]book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := []book.Book{}
	for _, isbn := range r.order {
		if b := r.books[isbn]; b.Author.ID == authorID {
			books = append(books, b)
		}
	}

	return books, nil
}

func (r *memoryRepository) Exists(_ context.Context, isbn string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.books[isbn]
	return ok, nil
}

func (r *memoryRepository) Upsert(_ context.Context, b *book.Book) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *b
	if _, ok := r.books[saved.ISBN]; !ok {
		r.order = append(r.order, saved.ISBN)
	}
	r.books[saved.ISBN] = saved

	return &saved, nil
}

func (r *memoryRepository) Save(_ context.Context, b *book.Book) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[b.ISBN]; !ok {
		return nil, book.NotFoundError(b.ISBN)
	}

	saved := *b
	r.books[saved.ISBN] = saved

	return &saved, nil
}

func (r *memoryRepository) Delete(_ context.Context, isbn string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[isbn]; !ok {
		return nil
	}

	delete(r.books, isbn)
	for i, key := range r.order {
		if key == isbn {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
