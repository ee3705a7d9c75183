package repository

import (
	"context"
	"fmt"

	"inmo_crm_backend/internal/operations/domain"

	"github.com/google/uuid"
)

// The four grouped count queries behind the dashboard summary. They share
// no ordering dependency; the service fans them out concurrently.

// ProspectCountsByStatus group-counts a tenant's prospects by
// (status, listing type), scoped through the contact join.
func (r *Repository) ProspectCountsByStatus(ctx context.Context, tenantID uuid.UUID) ([]domain.StatusCount, error) {
	return r.statusCounts(ctx, `
		SELECT p.status, p.listing_type, COUNT(*)
		FROM prospects p
		JOIN contacts c ON c.id = p.contact_id
		WHERE c.organization_id = $1
		GROUP BY p.status, p.listing_type`, tenantID, "prospect counts")
}

// ActiveListingCountsByStatus group-counts a tenant's active, non-draft
// listings by (status, listing type).
func (r *Repository) ActiveListingCountsByStatus(ctx context.Context, tenantID uuid.UUID) ([]domain.StatusCount, error) {
	return r.statusCounts(ctx, `
		SELECT l.status, l.listing_type, COUNT(*)
		FROM listings l
		WHERE l.organization_id = $1 AND l.is_active = true AND l.status <> '`+domain.ListingStatusDraft+`'
		GROUP BY l.status, l.listing_type`, tenantID, "listing counts")
}

// LeadCountsByStatus group-counts a tenant's buyer-type listing contacts
// by (status, attached listing's type). Leads without a listing surface
// with a null listing type; the summary builder drops those rows.
func (r *Repository) LeadCountsByStatus(ctx context.Context, tenantID uuid.UUID) ([]domain.StatusCount, error) {
	return r.statusCounts(ctx, `
		SELECT lc.status, l.listing_type, COUNT(*)
		FROM listing_contacts lc
		JOIN contacts c ON c.id = lc.contact_id
		LEFT JOIN listings l ON l.id = lc.listing_id
		WHERE c.organization_id = $1 AND lc.contact_type = 'buyer'
		GROUP BY lc.status, l.listing_type`, tenantID, "lead counts")
}

// DealCountsByStatus group-counts a tenant's deals by (status, listing
// type), scoped through the listing → property chain.
func (r *Repository) DealCountsByStatus(ctx context.Context, tenantID uuid.UUID) ([]domain.StatusCount, error) {
	return r.statusCounts(ctx, `
		SELECT d.status, l.listing_type, COUNT(*)
		FROM deals d
		JOIN listings l ON l.id = d.listing_id
		JOIN properties pr ON pr.id = l.property_id
		WHERE pr.organization_id = $1
		GROUP BY d.status, l.listing_type`, tenantID, "deal counts")
}

func (r *Repository) statusCounts(ctx context.Context, query string, tenantID uuid.UUID, op string) ([]domain.StatusCount, error) {
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]domain.StatusCount, 0)
	for rows.Next() {
		var row domain.StatusCount
		if err := rows.Scan(&row.Status, &row.ListingType, &row.Count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: %w", op, rows.Err())
	}

	return out, nil
}
