package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Stats aggregates the collection-wide reading numbers.
type Stats struct {
	TotalBooks     int `json:"totalBooks"`
	FinishedBooks  int `json:"finishedBooks"`
	TotalPagesRead int `json:"totalPagesRead"`
}

// Repository defines the contract for book data storage.
//
// Implementations must provide atomic per-row writes; the update path relies
// on that, and two racing updates to the same record resolve as
// last-writer-wins.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id string) (Book, error)
	Insert(ctx context.Context, b *Book) error
	UpdateProgress(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (Stats, error)
}
