package repository

import (
	"context"
	"sort"
	"sync"

	"bookstore-catalog/internal/domains/author"
)

// memoryRepository is a mutex-guarded in-memory author store. It backs the
// tests and the storeless development mode.
type memoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	authors map[int64]author.Author
}

func NewMemoryRepository() author.Repository {
	return &memoryRepository{
		authors: make(map[int64]author.Author),
	}
}

func (r *memoryRepository) Create(_ context.Context, a *author.Author) (*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	created := *a
	created.ID = r.nextID
	r.authors[created.ID] = created

	return &created, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*author.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.authors[id]
	if !ok {
		return nil, author.NotFoundError(id)
	}

	return &a, nil
}

func (r *memoryRepository) GetAll(_ context.Context) ([]author.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.authors))
	for id := range r.authors {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	authors := make([]author.Author, 0, len(ids))
	for _, id := range ids {
		authors = append(authors, r.authors[id])
	}

	return authors, nil
}

func (r *memoryRepository) Save(_ context.Context, a *author.Author) (*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.authors[a.ID]; !ok {
		return nil, author.NotFoundError(a.ID)
	}

	saved := *a
	r.authors[saved.ID] = saved

	return &saved, nil
}

func (r *memoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.authors, id)
	return nil
}

func (r *memoryRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.authors[id]
	return ok, nil
}
