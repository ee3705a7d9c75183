package repository

import (
	"context"
	"fmt"

	"inmo_crm_backend/internal/operations/domain"

	"github.com/google/uuid"
)

// TrackCounts returns the sale/rent/all totals for one operation type,
// ignoring status. A missing listing type counts as a sale, matching the
// card mappers' default.
func (r *Repository) TrackCounts(ctx context.Context, tenantID uuid.UUID, opType domain.OperationType) (domain.TrackCounts, error) {
	var query string
	switch opType {
	case domain.OpProspects:
		query = `
			SELECT
				COUNT(*) FILTER (WHERE COALESCE(p.listing_type, 'Sale') = 'Sale'),
				COUNT(*) FILTER (WHERE COALESCE(p.listing_type, 'Sale') <> 'Sale'),
				COUNT(*)
			FROM prospects p
			JOIN contacts c ON c.id = p.contact_id
			WHERE c.organization_id = $1`
	case domain.OpLeads:
		query = `
			SELECT
				COUNT(*) FILTER (WHERE COALESCE(l.listing_type, 'Sale') = 'Sale'),
				COUNT(*) FILTER (WHERE COALESCE(l.listing_type, 'Sale') <> 'Sale'),
				COUNT(*)
			FROM listing_contacts lc
			JOIN contacts c ON c.id = lc.contact_id
			LEFT JOIN listings l ON l.id = lc.listing_id
			WHERE c.organization_id = $1 AND lc.contact_type = 'buyer'`
	case domain.OpDeals:
		query = `
			SELECT
				COUNT(*) FILTER (WHERE COALESCE(l.listing_type, 'Sale') = 'Sale'),
				COUNT(*) FILTER (WHERE COALESCE(l.listing_type, 'Sale') <> 'Sale'),
				COUNT(*)
			FROM deals d
			JOIN listings l ON l.id = d.listing_id
			JOIN properties pr ON pr.id = l.property_id
			WHERE pr.organization_id = $1`
	default:
		return domain.TrackCounts{}, fmt.Errorf("track counts: unknown operation type %q", opType)
	}

	var counts domain.TrackCounts
	if err := r.pool.QueryRow(ctx, query, tenantID).Scan(&counts.Sale, &counts.Rent, &counts.All); err != nil {
		return domain.TrackCounts{}, fmt.Errorf("track counts: %w", err)
	}

	return counts, nil
}
