// Package service evaluates listing completion for a stored listing.
package service

import (
	"context"
	"errors"

	"inmo_crm_backend/internal/completion/domain"
	"inmo_crm_backend/internal/completion/repository"
	"inmo_crm_backend/platform/apperr"
	"inmo_crm_backend/platform/logger"

	"github.com/google/uuid"
)

type Service struct {
	repo repository.ListingReader
	log  *logger.Logger
}

func New(repo repository.ListingReader, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Completion loads the tenant's listing view and runs the rule table
// over it.
func (s *Service) Completion(ctx context.Context, tenantID, listingID uuid.UUID) (domain.CompletionResult, error) {
	view, err := s.repo.ListingView(ctx, tenantID, listingID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.CompletionResult{}, apperr.NotFound("listing not found")
	}
	if err != nil {
		s.log.QueryError("listing_completion", err,
			"tenant_id", tenantID.String(),
			"listing_id", listingID.String(),
		)
		return domain.CompletionResult{}, apperr.Wrap(apperr.KindInternal, "failed to load listing", err)
	}

	return domain.Calculate(view), nil
}
