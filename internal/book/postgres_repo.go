package book

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

const bookColumns = `id, title, author, total_pages, pages_read, status, price, format, suggested_by, finished, created_at, updated_at`

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.TotalPages, &b.PagesRead, &b.Status,
		&b.Price, &b.Format, &b.SuggestedBy, &b.Finished, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	const query = `
		SELECT ` + bookColumns + `
		FROM books
		ORDER BY created_at DESC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	// Malformed ids cannot match any row, so they are a plain not-found.
	if _, err := uuid.Parse(id); err != nil {
		return Book{}, ErrNotFound
	}

	const query = `
		SELECT ` + bookColumns + `
		FROM books
		WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Insert(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (title, author, total_pages, pages_read, status, price, format, suggested_by, finished, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query,
		b.Title, b.Author, b.TotalPages, b.PagesRead, b.Status,
		b.Price, b.Format, b.SuggestedBy, b.Finished, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
}

func (r *PostgresRepo) UpdateProgress(ctx context.Context, b *Book) error {
	const query = `
		UPDATE books
		SET pages_read = $2, finished = $3, status = $4, updated_at = $5
		WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, b.ID, b.PagesRead, b.Finished, b.Status, b.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	const query = `DELETE FROM books WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Stats(ctx context.Context) (Stats, error) {
	const query = `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE finished),
		       COALESCE(SUM(pages_read), 0)
		FROM books`

	var s Stats
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, query).Scan(&s.TotalBooks, &s.FinishedBooks, &s.TotalPagesRead); err != nil {
		return Stats{}, err
	}
	return s, nil
}
