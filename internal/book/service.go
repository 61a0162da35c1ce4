package book

import (
	"context"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all books, newest first.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// Create validates and constructs a new book and persists it. The store
// assigns the ID.
func (s *Service) Create(ctx context.Context, in NewBookInput) (Book, error) {
	b, err := New(in)
	if err != nil {
		return Book{}, err
	}
	if err := s.repo.Insert(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// UpdatePagesRead loads the book, applies the pages-read change through the
// domain rules (clamping, finished derivation, status promotion) and persists
// the result.
func (s *Service) UpdatePagesRead(ctx context.Context, id string, pagesRead int) (Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Book{}, err
	}
	b.ApplyPagesRead(pagesRead)
	if err := s.repo.UpdateProgress(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Delete removes a book. Deletion is unconditional and irreversible.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Stats returns the aggregate reading statistics.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	return s.repo.Stats(ctx)
}
