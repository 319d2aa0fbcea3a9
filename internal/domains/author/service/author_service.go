package service

import (
	"context"
	"fmt"

	"bookstore-catalog/internal/domains/author"
)

// authorService implements author.Service.
type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *author.AuthorRequest) (*author.Author, error) {
	if req.ID != nil {
		return nil, author.ErrIDAlreadyAssigned
	}

	newAuthor := &author.Author{
		Name:        req.Name,
		Age:         req.Age,
		Description: req.Description,
		Image:       req.Image,
	}

	created, err := s.repo.Create(ctx, newAuthor)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return created, nil
}

func (s *authorService) FindAll(ctx context.Context) ([]author.Author, error) {
	return s.repo.GetAll(ctx)
}

func (s *authorService) FindByID(ctx context.Context, id int64) (*author.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) FullUpdate(ctx context.Context, id int64, req *author.AuthorRequest) (*author.Author, error) {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check author existence: %w", err)
	}
	if !exists {
		return nil, author.NotFoundError(id)
	}

	// Replace semantics: the payload id, if any, is overwritten by the
	// path id.
	updated := &author.Author{
		ID:          id,
		Name:        req.Name,
		Age:         req.Age,
		Description: req.Description,
		Image:       req.Image,
	}

	return s.repo.Save(ctx, updated)
}

func (s *authorService) PartialUpdate(ctx context.Context, id int64, req *author.UpdateAuthorRequest) (*author.Author, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Only non-nil fields overwrite; an all-nil patch still persists and
	// returns the unchanged entity.
	merged := *current
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Age != nil {
		merged.Age = *req.Age
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.Image != nil {
		merged.Image = *req.Image
	}

	return s.repo.Save(ctx, &merged)
}

func (s *authorService) DeleteByID(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
