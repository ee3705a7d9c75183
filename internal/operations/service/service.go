// Package service orchestrates the operations pipeline aggregations:
// kanban boards, per-track counts, and the two-track dashboard summary.
package service

import (
	"context"
	"fmt"

	"inmo_crm_backend/internal/operations/domain"
	"inmo_crm_backend/internal/operations/repository"
	"inmo_crm_backend/platform/apperr"
	"inmo_crm_backend/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	repo repository.CardFetcher
	log  *logger.Logger
}

func New(repo repository.CardFetcher, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// KanbanData fetches the cards for one operation type and partitions them
// into the fixed status columns. Fetch failures are logged with the query
// inputs and propagated; there is no partial board.
func (s *Service) KanbanData(ctx context.Context, tenantID uuid.UUID, opType domain.OperationType, f domain.Filters) (domain.KanbanData, error) {
	if !opType.Valid() {
		return domain.KanbanData{}, apperr.BadRequest(fmt.Sprintf("unknown operation type %q", opType))
	}

	cards, err := s.fetchCards(ctx, tenantID, opType, f)
	if err != nil {
		s.log.QueryError("kanban_data", err,
			"tenant_id", tenantID.String(),
			"operation_type", string(opType),
			"listing_type", f.ListingType,
			"status", f.Status,
		)
		return domain.KanbanData{}, apperr.Wrap(apperr.KindInternal, "failed to load board", err)
	}

	return domain.BuildKanban(opType, cards), nil
}

// OperationCounts returns the per-track totals for one operation type.
// Counts back a dashboard widget, so a failed query degrades to zeros
// instead of failing the page; the error is still logged.
func (s *Service) OperationCounts(ctx context.Context, tenantID uuid.UUID, opType domain.OperationType) domain.TrackCounts {
	counts, err := s.repo.TrackCounts(ctx, tenantID, opType)
	if err != nil {
		s.log.QueryError("operation_counts", err,
			"tenant_id", tenantID.String(),
			"operation_type", string(opType),
		)
		return domain.TrackCounts{}
	}
	return counts
}

// Summary runs the four grouped count queries concurrently and folds them
// into the two-track dashboard summary. Any single failure fails the
// whole summary; partially fetched counts are discarded.
func (s *Service) Summary(ctx context.Context, tenantID uuid.UUID) (domain.OperacionesSummary, error) {
	var in domain.SummaryInput

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		in.Prospects, err = s.repo.ProspectCountsByStatus(gctx, tenantID)
		return err
	})
	g.Go(func() error {
		var err error
		in.Listings, err = s.repo.ActiveListingCountsByStatus(gctx, tenantID)
		return err
	})
	g.Go(func() error {
		var err error
		in.Leads, err = s.repo.LeadCountsByStatus(gctx, tenantID)
		return err
	})
	g.Go(func() error {
		var err error
		in.Deals, err = s.repo.DealCountsByStatus(gctx, tenantID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.QueryError("operaciones_summary", err, "tenant_id", tenantID.String())
		return domain.OperacionesSummary{}, apperr.Wrap(apperr.KindInternal, "failed to load summary", err)
	}

	return domain.BuildSummary(in), nil
}

func (s *Service) fetchCards(ctx context.Context, tenantID uuid.UUID, opType domain.OperationType, f domain.Filters) ([]domain.OperationCard, error) {
	switch opType {
	case domain.OpProspects:
		return s.repo.ProspectCards(ctx, tenantID, f)
	case domain.OpLeads:
		return s.repo.LeadCards(ctx, tenantID, f)
	default:
		return s.repo.DealCards(ctx, tenantID, f)
	}
}
