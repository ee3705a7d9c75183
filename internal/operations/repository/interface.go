package repository

import (
	"context"

	"inmo_crm_backend/internal/operations/domain"

	"github.com/google/uuid"
)

// CardFetcher is the read surface the operations service depends on.
// The concrete implementation queries Postgres; tests substitute a stub.
type CardFetcher interface {
	ProspectCards(ctx context.Context, tenantID uuid.UUID, f domain.Filters) ([]domain.OperationCard, error)
	LeadCards(ctx context.Context, tenantID uuid.UUID, f domain.Filters) ([]domain.OperationCard, error)
	DealCards(ctx context.Context, tenantID uuid.UUID, f domain.Filters) ([]domain.OperationCard, error)

	TrackCounts(ctx context.Context, tenantID uuid.UUID, opType domain.OperationType) (domain.TrackCounts, error)

	ProspectCountsByStatus(ctx context.Context, tenantID uuid.UUID) ([]domain.StatusCount, error)
	ActiveListingCountsByStatus(ctx context.Context, tenantID uuid.UUID) ([]domain.StatusCount, error)
	LeadCountsByStatus(ctx context.Context, tenantID uuid.UUID) ([]domain.StatusCount, error)
	DealCountsByStatus(ctx context.Context, tenantID uuid.UUID) ([]domain.StatusCount, error)
}
