// Package repository implements the operation card mappers: each pipeline
// entity (prospect, lead, deal) is fetched with its joins and projected
// into the unified card shape.
package repository

import (
	"context"
	"fmt"
	"strings"

	"inmo_crm_backend/internal/operations/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ProspectCards fetches a tenant's prospects joined to their contacts and
// maps them to operation cards, most recently updated first. Prospects
// without a contact are excluded by the inner join.
func (r *Repository) ProspectCards(ctx context.Context, tenantID uuid.UUID, f domain.Filters) ([]domain.OperationCard, error) {
	query := `
		SELECT p.id, p.status, p.listing_type, c.full_name,
			p.property_type, p.min_bedrooms, p.min_square_meters,
			p.min_price, p.max_price, p.urgency_level, p.source, p.updated_at
		FROM prospects p
		JOIN contacts c ON c.id = p.contact_id
		WHERE c.organization_id = $1`
	args := []any{tenantID}

	if track, ok := f.TrackFilter(); ok {
		args = append(args, string(track))
		query += fmt.Sprintf(" AND p.listing_type = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND p.status = $%d", len(args))
	}
	query += " ORDER BY p.updated_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("prospect cards: %w", err)
	}
	defer rows.Close()

	cards := make([]domain.OperationCard, 0)
	for rows.Next() {
		var (
			card        domain.OperationCard
			listingType *string
			source      *string
			criteria    domain.NeedCriteria
			propType    *string
		)
		if err := rows.Scan(
			&card.ID, &card.Status, &listingType, &card.ContactName,
			&propType, &criteria.MinBedrooms, &criteria.MinSquareMeters,
			&criteria.MinPrice, &criteria.MaxPrice, &card.UrgencyLevel,
			&source, &card.LastActivity,
		); err != nil {
			return nil, fmt.Errorf("prospect cards: %w", err)
		}
		if propType != nil {
			criteria.PropertyType = *propType
		}
		card.Kind = domain.KindProspect
		card.ListingType = domain.DefaultListingType(listingType)
		card.NeedSummary = criteria.Summary()
		if source != nil {
			card.Source = *source
		}
		cards = append(cards, card)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("prospect cards: %w", rows.Err())
	}

	return cards, nil
}

// LeadCards fetches a tenant's buyer-type listing contacts with their
// contact (inner) and listing/property (left) joins. The listing-type
// filter is applied in memory after the query so that a lead not yet
// attached to a listing matches any track filter.
func (r *Repository) LeadCards(ctx context.Context, tenantID uuid.UUID, f domain.Filters) ([]domain.OperationCard, error) {
	query := `
		SELECT lc.id, lc.status, l.listing_type, c.full_name,
			pr.street, pr.city, lc.updated_at
		FROM listing_contacts lc
		JOIN contacts c ON c.id = lc.contact_id
		LEFT JOIN listings l ON l.id = lc.listing_id
		LEFT JOIN properties pr ON pr.id = l.property_id
		WHERE c.organization_id = $1 AND lc.contact_type = 'buyer'`
	args := []any{tenantID}

	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND lc.status = $%d", len(args))
	}
	query += " ORDER BY lc.updated_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("lead cards: %w", err)
	}
	defer rows.Close()

	track, hasTrack := f.TrackFilter()

	cards := make([]domain.OperationCard, 0)
	for rows.Next() {
		var (
			card         domain.OperationCard
			listingType  *string
			street, city *string
		)
		if err := rows.Scan(
			&card.ID, &card.Status, &listingType, &card.ContactName,
			&street, &city, &card.LastActivity,
		); err != nil {
			return nil, fmt.Errorf("lead cards: %w", err)
		}

		// Attached leads must match the track filter; unattached leads pass.
		if hasTrack && listingType != nil && domain.ListingType(*listingType) != track {
			continue
		}

		card.Kind = domain.KindLead
		card.ListingType = domain.DefaultListingType(listingType)
		card.ListingAddress = joinAddress(street, city)
		cards = append(cards, card)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("lead cards: %w", rows.Err())
	}

	return cards, nil
}

// DealCards fetches a tenant's deals with their listing and property
// (both inner; a deal always has both). The card amount is the listing
// price, not a negotiated closing figure.
func (r *Repository) DealCards(ctx context.Context, tenantID uuid.UUID, f domain.Filters) ([]domain.OperationCard, error) {
	query := `
		SELECT d.id, d.status, l.listing_type, c.full_name,
			pr.street, pr.city, l.price, d.close_date, d.updated_at
		FROM deals d
		JOIN listings l ON l.id = d.listing_id
		JOIN properties pr ON pr.id = l.property_id
		LEFT JOIN contacts c ON c.id = d.contact_id
		WHERE pr.organization_id = $1`
	args := []any{tenantID}

	if track, ok := f.TrackFilter(); ok {
		args = append(args, string(track))
		query += fmt.Sprintf(" AND l.listing_type = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND d.status = $%d", len(args))
	}
	query += " ORDER BY d.updated_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("deal cards: %w", err)
	}
	defer rows.Close()

	cards := make([]domain.OperationCard, 0)
	for rows.Next() {
		var (
			card         domain.OperationCard
			listingType  *string
			contactName  *string
			street, city *string
		)
		if err := rows.Scan(
			&card.ID, &card.Status, &listingType, &contactName,
			&street, &city, &card.Amount, &card.CloseDate, &card.LastActivity,
		); err != nil {
			return nil, fmt.Errorf("deal cards: %w", err)
		}
		card.Kind = domain.KindDeal
		card.ListingType = domain.DefaultListingType(listingType)
		card.ListingAddress = joinAddress(street, city)
		if contactName != nil {
			card.ContactName = *contactName
			card.Participants = []string{*contactName}
		}
		cards = append(cards, card)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("deal cards: %w", rows.Err())
	}

	return cards, nil
}

func joinAddress(parts ...*string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != nil && strings.TrimSpace(*p) != "" {
			out = append(out, strings.TrimSpace(*p))
		}
	}
	return strings.Join(out, ", ")
}
