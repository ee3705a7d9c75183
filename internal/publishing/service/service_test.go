package service

import (
	"context"
	"errors"
	"testing"

	completion "inmo_crm_backend/internal/completion/domain"
	"inmo_crm_backend/internal/scheduler"
	"inmo_crm_backend/platform/apperr"
	"inmo_crm_backend/platform/logger"

	"github.com/google/uuid"
)

type stubChecker struct {
	result completion.CompletionResult
	err    error
}

func (s *stubChecker) Completion(context.Context, uuid.UUID, uuid.UUID) (completion.CompletionResult, error) {
	return s.result, s.err
}

type stubStore struct {
	created bool
	err     error
}

func (s *stubStore) Create(context.Context, uuid.UUID, string) (uuid.UUID, error) {
	s.created = true
	return uuid.New(), s.err
}

type stubScheduler struct {
	payload *scheduler.PortalPublishPayload
	err     error
}

func (s *stubScheduler) EnqueuePortalPublish(_ context.Context, payload scheduler.PortalPublishPayload) error {
	s.payload = &payload
	return s.err
}

func publishableResult() completion.CompletionResult {
	return completion.CompletionResult{CanPublishToPortals: true}
}

func blockedResult() completion.CompletionResult {
	return completion.CompletionResult{
		Mandatory: completion.Bucket{
			Pending: []completion.RuleStatus{
				{ID: "price", Label: "Precio"},
				{ID: "images", Label: "Fotos (mínimo 5)"},
			},
			Total: 12,
		},
	}
}

func TestPublishEnqueuesWhenComplete(t *testing.T) {
	store := &stubStore{}
	sched := &stubScheduler{}
	svc := New(&stubChecker{result: publishableResult()}, store, sched, logger.New("development"))

	tenantID := uuid.New()
	listingID := uuid.New()
	resp, err := svc.Publish(context.Background(), tenantID, listingID, "idealista")
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if !store.created {
		t.Fatal("publication row was not recorded")
	}
	if sched.payload == nil {
		t.Fatal("portal publish task was not enqueued")
	}
	if sched.payload.ListingID != listingID.String() || sched.payload.Portal != "idealista" {
		t.Fatalf("enqueued payload = %+v", sched.payload)
	}
	if resp.Status != "pending" {
		t.Fatalf("status = %q, want pending", resp.Status)
	}
}

func TestPublishRefusesIncompleteListing(t *testing.T) {
	store := &stubStore{}
	sched := &stubScheduler{}
	svc := New(&stubChecker{result: blockedResult()}, store, sched, logger.New("development"))

	_, err := svc.Publish(context.Background(), uuid.New(), uuid.New(), "idealista")
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	if store.created {
		t.Fatal("refused listing must not be recorded")
	}
	if sched.payload != nil {
		t.Fatal("refused listing must not be enqueued")
	}

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperr.Error, got %T", err)
	}
	details, ok := appErr.Details.(map[string]any)
	if !ok {
		t.Fatalf("details = %T, want map", appErr.Details)
	}
	labels, ok := details["pendingMandatoryFields"].([]string)
	if !ok || len(labels) != 2 || labels[0] != "Precio" {
		t.Fatalf("pending labels = %v", details["pendingMandatoryFields"])
	}
}

func TestPublishPropagatesCompletionError(t *testing.T) {
	svc := New(&stubChecker{err: apperr.NotFound("listing not found")}, &stubStore{}, &stubScheduler{}, logger.New("development"))

	_, err := svc.Publish(context.Background(), uuid.New(), uuid.New(), "idealista")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("want not-found error, got %v", err)
	}
}

func TestPublishEnqueueFailure(t *testing.T) {
	sched := &stubScheduler{err: errors.New("redis down")}
	svc := New(&stubChecker{result: publishableResult()}, &stubStore{}, sched, logger.New("development"))

	_, err := svc.Publish(context.Background(), uuid.New(), uuid.New(), "fotocasa")
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("want internal error, got %v", err)
	}
}
