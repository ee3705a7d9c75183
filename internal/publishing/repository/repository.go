// Package repository persists portal publication attempts.
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	StatusPending   = "pending"
	StatusPublished = "published"
	StatusFailed    = "failed"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create records a pending publication attempt and returns its ID.
func (r *Repository) Create(ctx context.Context, listingID uuid.UUID, portal string) (uuid.UUID, error) {
	id := uuid.New()
	query := `
		INSERT INTO portal_publications (id, listing_id, portal, status)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.pool.Exec(ctx, query, id, listingID, portal, StatusPending); err != nil {
		return uuid.UUID{}, fmt.Errorf("create publication: %w", err)
	}
	return id, nil
}

// MarkPublished flips a pending publication to published.
func (r *Repository) MarkPublished(ctx context.Context, publicationID uuid.UUID) error {
	query := `
		UPDATE portal_publications
		SET status = $2, published_at = NOW()
		WHERE id = $1 AND status = $3`

	if _, err := r.pool.Exec(ctx, query, publicationID, StatusPublished, StatusPending); err != nil {
		return fmt.Errorf("mark published: %w", err)
	}
	return nil
}

// MarkFailed records a failed publication attempt.
func (r *Repository) MarkFailed(ctx context.Context, publicationID uuid.UUID) error {
	query := `UPDATE portal_publications SET status = $2 WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, publicationID, StatusFailed); err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}
	return nil
}
