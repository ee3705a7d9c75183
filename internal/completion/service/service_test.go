package service

import (
	"context"
	"errors"
	"testing"

	"inmo_crm_backend/internal/completion/domain"
	"inmo_crm_backend/internal/completion/repository"
	"inmo_crm_backend/platform/apperr"
	"inmo_crm_backend/platform/logger"

	"github.com/google/uuid"
)

type stubReader struct {
	view domain.Listing
	err  error
}

func (s *stubReader) ListingView(context.Context, uuid.UUID, uuid.UUID) (domain.Listing, error) {
	return s.view, s.err
}

func TestCompletionEvaluatesStoredListing(t *testing.T) {
	price := int64(180000)
	stub := &stubReader{view: domain.Listing{Price: &price, ImageCount: 3}}
	svc := New(stub, logger.New("development"))

	result, err := svc.Completion(context.Background(), uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Completion: %v", err)
	}
	if result.CanPublishToPortals {
		t.Fatal("listing with only a price must not be publishable")
	}
	if result.Mandatory.CompletedCount != 1 {
		t.Fatalf("mandatory completed = %d, want 1 (price)", result.Mandatory.CompletedCount)
	}
}

func TestCompletionNotFound(t *testing.T) {
	stub := &stubReader{err: repository.ErrNotFound}
	svc := New(stub, logger.New("development"))

	_, err := svc.Completion(context.Background(), uuid.New(), uuid.New())
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("want not-found error, got %v", err)
	}
}

func TestCompletionFailLoud(t *testing.T) {
	stub := &stubReader{err: errors.New("connection reset")}
	svc := New(stub, logger.New("development"))

	_, err := svc.Completion(context.Background(), uuid.New(), uuid.New())
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("want internal error, got %v", err)
	}
}
