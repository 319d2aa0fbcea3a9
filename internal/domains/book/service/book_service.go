package service

import (
	"context"
	"errors"
	"fmt"

	"bookstore-catalog/internal/domains/author"
	"bookstore-catalog/internal/domains/book"
)

// bookService implements book.Service. It depends on the author store for
// referential checks on upsert.
type bookService struct {
	repo    book.Repository
	authors author.Repository
}

func NewBookService(repo book.Repository, authors author.Repository) book.Service {
	return &bookService{
		repo:    repo,
		authors: authors,
	}
}

func (s *bookService) GetBook(ctx context.Context, isbn string) (*book.Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

func (s *bookService) GetBooks(ctx context.Context, authorID *int64) ([]book.Book, error) {
	if authorID != nil {
		return s.repo.GetByAuthor(ctx, *authorID)
	}
	return s.repo.GetAll(ctx)
}

func (s *bookService) CreateUpdate(ctx context.Context, isbn string, req *book.BookRequest) (*book.Book, bool, error) {
	// The existence check and the save are two separate store calls, so
	// two concurrent upserts of the same isbn can both observe
	// wasPreexisting=false and one created flag comes back wrong. The
	// stored row is still consistent; only the flag races.
	wasPreexisting, err := s.repo.Exists(ctx, isbn)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check book existence: %w", err)
	}

	a, err := s.authors.GetByID(ctx, req.Author.ID)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			return nil, false, book.MissingAuthorError(req.Author.ID)
		}
		return nil, false, fmt.Errorf("failed to resolve author: %w", err)
	}

	// A persisted author without an id is a broken store invariant, not
	// caller input.
	if a.ID == 0 {
		return nil, false, book.ErrInvalidAuthorState
	}

	// Path isbn is authoritative over the body; the author snapshot is
	// copied from the resolved author, never taken from the request.
	newBook := &book.Book{
		ISBN:        isbn,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Author: book.AuthorSummary{
			ID:    a.ID,
			Name:  a.Name,
			Image: a.Image,
		},
	}

	saved, err := s.repo.Upsert(ctx, newBook)
	if err != nil {
		return nil, false, err
	}

	return saved, !wasPreexisting, nil
}

func (s *bookService) PartialUpdate(ctx context.Context, isbn string, req *book.UpdateBookRequest) (*book.Book, error) {
	current, err := s.repo.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}

	merged := *current
	if req.Title != nil {
		merged.Title = *req.Title
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.Image != nil {
		merged.Image = *req.Image
	}

	return s.repo.Save(ctx, &merged)
}

func (s *bookService) DeleteBook(ctx context.Context, isbn string) error {
	return s.repo.Delete(ctx, isbn)
}
