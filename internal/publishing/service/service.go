// Package service gates portal publication on listing completion and
// hands accepted listings to the job queue.
package service

import (
	"context"

	completion "inmo_crm_backend/internal/completion/domain"
	"inmo_crm_backend/internal/scheduler"
	"inmo_crm_backend/platform/apperr"
	"inmo_crm_backend/platform/logger"

	"github.com/google/uuid"
)

// CompletionChecker evaluates a stored listing against the rule table.
type CompletionChecker interface {
	Completion(ctx context.Context, tenantID, listingID uuid.UUID) (completion.CompletionResult, error)
}

// PublicationStore records publication attempts.
type PublicationStore interface {
	Create(ctx context.Context, listingID uuid.UUID, portal string) (uuid.UUID, error)
}

// PublishResponse acknowledges an accepted publication request.
type PublishResponse struct {
	PublicationID uuid.UUID `json:"publicationId"`
	ListingID     uuid.UUID `json:"listingId"`
	Portal        string    `json:"portal"`
	Status        string    `json:"status"`
}

type Service struct {
	checker   CompletionChecker
	store     PublicationStore
	scheduler scheduler.PublishScheduler
	log       *logger.Logger
}

func New(checker CompletionChecker, store PublicationStore, sched scheduler.PublishScheduler, log *logger.Logger) *Service {
	return &Service{checker: checker, store: store, scheduler: sched, log: log}
}

// Publish refuses listings with pending mandatory fields; otherwise it
// records the attempt and enqueues the portal job.
func (s *Service) Publish(ctx context.Context, tenantID, listingID uuid.UUID, portal string) (PublishResponse, error) {
	if s.scheduler == nil {
		return PublishResponse{}, apperr.New(apperr.KindInternal, "portal publishing is not configured")
	}

	result, err := s.checker.Completion(ctx, tenantID, listingID)
	if err != nil {
		return PublishResponse{}, err
	}

	if !result.CanPublishToPortals {
		return PublishResponse{}, apperr.Validation("listing is not ready for publication").
			WithDetails(map[string]any{"pendingMandatoryFields": result.PendingMandatoryLabels()})
	}

	publicationID, err := s.store.Create(ctx, listingID, portal)
	if err != nil {
		s.log.QueryError("create_publication", err,
			"tenant_id", tenantID.String(),
			"listing_id", listingID.String(),
		)
		return PublishResponse{}, apperr.Wrap(apperr.KindInternal, "failed to record publication", err)
	}

	payload := scheduler.PortalPublishPayload{
		PublicationID: publicationID.String(),
		ListingID:     listingID.String(),
		TenantID:      tenantID.String(),
		Portal:        portal,
	}
	if err := s.scheduler.EnqueuePortalPublish(ctx, payload); err != nil {
		s.log.Error("failed to enqueue portal publish", "error", err, "publication_id", publicationID.String())
		return PublishResponse{}, apperr.Wrap(apperr.KindInternal, "failed to enqueue publication", err)
	}

	return PublishResponse{
		PublicationID: publicationID,
		ListingID:     listingID,
		Portal:        portal,
		Status:        "pending",
	}, nil
}
