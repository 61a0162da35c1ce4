package book

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Status is the reading status of a book.
type Status string

const (
	StatusRead             Status = "Read"
	StatusReread           Status = "Re-read"
	StatusDNF              Status = "DNF"
	StatusCurrentlyReading Status = "Currently reading"
	StatusReturnedUnread   Status = "Returned Unread"
	StatusWantToRead       Status = "Want to read"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusRead, StatusReread, StatusDNF, StatusCurrentlyReading, StatusReturnedUnread, StatusWantToRead:
		return true
	default:
		return false
	}
}

// Format is the physical or digital format of a book.
type Format string

const (
	FormatPrint     Format = "Print"
	FormatPDF       Format = "PDF"
	FormatEbook     Format = "Ebook"
	FormatAudioBook Format = "AudioBook"
)

// Valid reports whether f is one of the known formats.
func (f Format) Valid() bool {
	switch f {
	case FormatPrint, FormatPDF, FormatEbook, FormatAudioBook:
		return true
	default:
		return false
	}
}

// ValidationError describes a rejected field on construction.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Book represents one tracked reading item.
//
// Finished is derived from PagesRead and TotalPages and is never set by
// callers directly; every mutation goes through derive so the invariant
// cannot drift.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	TotalPages  int       `json:"totalPages"`
	PagesRead   int       `json:"pagesRead"`
	Status      Status    `json:"status"`
	Price       float64   `json:"price"`
	Format      Format    `json:"format"`
	SuggestedBy string    `json:"suggestedBy"`
	Finished    bool      `json:"finished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewBookInput holds the fields accepted when constructing a Book.
// Zero-valued Status and Format fall back to their defaults.
type NewBookInput struct {
	Title       string
	Author      string
	TotalPages  int
	Status      Status
	Price       float64
	PagesRead   int
	Format      Format
	SuggestedBy string
}

// New constructs a Book from in, applying defaults, clamping PagesRead and
// computing the derived fields. CreatedAt and UpdatedAt are stamped with the
// current time; the ID is assigned later by the store.
func New(in NewBookInput) (Book, error) {
	if in.Title == "" {
		return Book{}, &ValidationError{Field: "title", Message: "is required"}
	}
	if in.Author == "" {
		return Book{}, &ValidationError{Field: "author", Message: "is required"}
	}
	if in.TotalPages <= 0 {
		return Book{}, &ValidationError{Field: "totalPages", Message: "must be a positive number"}
	}
	if in.PagesRead < 0 {
		return Book{}, &ValidationError{Field: "pagesRead", Message: "must not be negative"}
	}
	if in.Price < 0 {
		return Book{}, &ValidationError{Field: "price", Message: "must not be negative"}
	}

	status := in.Status
	if status == "" {
		status = StatusWantToRead
	}
	if !status.Valid() {
		return Book{}, &ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", in.Status)}
	}

	format := in.Format
	if format == "" {
		format = FormatPrint
	}
	if !format.Valid() {
		return Book{}, &ValidationError{Field: "format", Message: fmt.Sprintf("unknown format %q", in.Format)}
	}

	now := time.Now().UTC()
	b := Book{
		Title:       in.Title,
		Author:      in.Author,
		TotalPages:  in.TotalPages,
		PagesRead:   in.PagesRead,
		Status:      status,
		Price:       in.Price,
		Format:      format,
		SuggestedBy: in.SuggestedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	b.derive()
	return b, nil
}

// ProgressPercent returns the reading progress rounded to whole percent.
// A zero TotalPages yields 0 to guard against division by zero.
func (b *Book) ProgressPercent() int {
	if b.TotalPages == 0 {
		return 0
	}
	return int(math.Round(float64(b.PagesRead) / float64(b.TotalPages) * 100))
}

// ApplyPagesRead sets the pages-read counter, recomputes the derived state
// and refreshes UpdatedAt. The record is only mutated in memory; persisting
// the change is the caller's responsibility.
func (b *Book) ApplyPagesRead(pagesRead int) {
	b.PagesRead = pagesRead
	b.derive()
	b.UpdatedAt = time.Now().UTC()
}

// derive clamps PagesRead into [0, TotalPages], recomputes Finished and
// applies the status auto-promotion: once a book is finished its status is
// forced to "Read" unless it is already "Read" or "Re-read". The promotion
// intentionally overrides "DNF" as well; the rule is one-directional and a
// finished book is never demoted.
func (b *Book) derive() {
	if b.PagesRead > b.TotalPages {
		b.PagesRead = b.TotalPages
	}
	if b.PagesRead < 0 {
		b.PagesRead = 0
	}
	b.Finished = b.PagesRead >= b.TotalPages
	if b.Finished && b.Status != StatusRead && b.Status != StatusReread {
		b.Status = StatusRead
	}
}
