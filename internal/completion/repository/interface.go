package repository

import (
	"context"

	"inmo_crm_backend/internal/completion/domain"

	"github.com/google/uuid"
)

// ListingReader is the read surface the completion service depends on.
type ListingReader interface {
	ListingView(ctx context.Context, tenantID, listingID uuid.UUID) (domain.Listing, error)
}
