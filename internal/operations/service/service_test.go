package service

import (
	"context"
	"errors"
	"testing"

	"inmo_crm_backend/internal/operations/domain"
	"inmo_crm_backend/platform/apperr"
	"inmo_crm_backend/platform/logger"

	"github.com/google/uuid"
)

// stubFetcher returns canned cards and counts, or a forced error.
type stubFetcher struct {
	cards      []domain.OperationCard
	counts     domain.TrackCounts
	prospects  []domain.StatusCount
	listings   []domain.StatusCount
	leads      []domain.StatusCount
	deals      []domain.StatusCount
	err        error
	lastFilter domain.Filters
}

func (s *stubFetcher) ProspectCards(_ context.Context, _ uuid.UUID, f domain.Filters) ([]domain.OperationCard, error) {
	s.lastFilter = f
	return s.cards, s.err
}

func (s *stubFetcher) LeadCards(_ context.Context, _ uuid.UUID, f domain.Filters) ([]domain.OperationCard, error) {
	s.lastFilter = f
	return s.cards, s.err
}

func (s *stubFetcher) DealCards(_ context.Context, _ uuid.UUID, f domain.Filters) ([]domain.OperationCard, error) {
	s.lastFilter = f
	return s.cards, s.err
}

func (s *stubFetcher) TrackCounts(context.Context, uuid.UUID, domain.OperationType) (domain.TrackCounts, error) {
	return s.counts, s.err
}

func (s *stubFetcher) ProspectCountsByStatus(context.Context, uuid.UUID) ([]domain.StatusCount, error) {
	return s.prospects, s.err
}

func (s *stubFetcher) ActiveListingCountsByStatus(context.Context, uuid.UUID) ([]domain.StatusCount, error) {
	return s.listings, s.err
}

func (s *stubFetcher) LeadCountsByStatus(context.Context, uuid.UUID) ([]domain.StatusCount, error) {
	return s.leads, s.err
}

func (s *stubFetcher) DealCountsByStatus(context.Context, uuid.UUID) ([]domain.StatusCount, error) {
	return s.deals, s.err
}

func newTestService(stub *stubFetcher) *Service {
	return New(stub, logger.New("development"))
}

func TestKanbanDataBuildsFixedColumns(t *testing.T) {
	stub := &stubFetcher{cards: []domain.OperationCard{
		{ID: uuid.New(), Kind: domain.KindDeal, Status: "Reservado"},
		{ID: uuid.New(), Kind: domain.KindDeal, Status: "Cerrado"},
	}}
	svc := newTestService(stub)

	board, err := svc.KanbanData(context.Background(), uuid.New(), domain.OpDeals, domain.Filters{})
	if err != nil {
		t.Fatalf("KanbanData: %v", err)
	}

	if len(board.Columns) != len(domain.StatusesFor(domain.OpDeals)) {
		t.Fatalf("got %d columns, want full deal vocabulary", len(board.Columns))
	}
	if board.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want 2", board.TotalCount)
	}
}

func TestKanbanDataRejectsUnknownType(t *testing.T) {
	svc := newTestService(&stubFetcher{})

	_, err := svc.KanbanData(context.Background(), uuid.New(), domain.OperationType("tenancies"), domain.Filters{})
	if !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("want bad request error, got %v", err)
	}
}

func TestKanbanDataFailsLoudOnFetchError(t *testing.T) {
	stub := &stubFetcher{err: errors.New("connection refused")}
	svc := newTestService(stub)

	_, err := svc.KanbanData(context.Background(), uuid.New(), domain.OpProspects, domain.Filters{})
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("want internal error, got %v", err)
	}
}

func TestKanbanDataSearchQueryHasNoEffect(t *testing.T) {
	cards := []domain.OperationCard{{ID: uuid.New(), Kind: domain.KindProspect, Status: "Activo", ContactName: "Marta Ruiz"}}
	stub := &stubFetcher{cards: cards}
	svc := newTestService(stub)

	plain, err := svc.KanbanData(context.Background(), uuid.New(), domain.OpProspects, domain.Filters{})
	if err != nil {
		t.Fatalf("KanbanData: %v", err)
	}
	searched, err := svc.KanbanData(context.Background(), uuid.New(), domain.OpProspects, domain.Filters{SearchQuery: "nobody matches this"})
	if err != nil {
		t.Fatalf("KanbanData with search: %v", err)
	}

	// The search parameter is reserved: accepted but not yet applied.
	if plain.TotalCount != searched.TotalCount {
		t.Fatalf("searchQuery changed the result: %d vs %d", plain.TotalCount, searched.TotalCount)
	}
}

func TestOperationCountsFailSoft(t *testing.T) {
	stub := &stubFetcher{err: errors.New("relation does not exist")}
	svc := newTestService(stub)

	counts := svc.OperationCounts(context.Background(), uuid.New(), domain.OpDeals)
	if counts.Sale != 0 || counts.Rent != 0 || counts.All != 0 {
		t.Fatalf("counts must degrade to zeros on failure, got %+v", counts)
	}
}

func TestOperationCountsPassThrough(t *testing.T) {
	stub := &stubFetcher{counts: domain.TrackCounts{Sale: 4, Rent: 1, All: 5}}
	svc := newTestService(stub)

	counts := svc.OperationCounts(context.Background(), uuid.New(), domain.OpProspects)
	if counts.Sale != 4 || counts.Rent != 1 || counts.All != 5 {
		t.Fatalf("unexpected counts %+v", counts)
	}
}

func TestSummaryFanOutAllOrNothing(t *testing.T) {
	stub := &stubFetcher{err: errors.New("timeout")}
	svc := newTestService(stub)

	_, err := svc.Summary(context.Background(), uuid.New())
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("want internal error when any count query fails, got %v", err)
	}
}

func TestSummaryMergesCounts(t *testing.T) {
	sale := "Sale"
	stub := &stubFetcher{
		prospects: []domain.StatusCount{{Status: "Activo", ListingType: &sale, Count: 3}},
		listings:  []domain.StatusCount{{Status: "Activo", ListingType: &sale, Count: 2}},
		deals:     []domain.StatusCount{{Status: "Cerrado", ListingType: &sale, Count: 1}},
	}
	svc := newTestService(stub)

	summary, err := svc.Summary(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got := summary.Sale.Prospects["Activo"]; got != 5 {
		t.Fatalf("sale.prospects[Activo] = %d, want 5", got)
	}
	if got := summary.Sale.Deals["Cerrado"]; got != 1 {
		t.Fatalf("sale.deals[Cerrado] = %d, want 1", got)
	}
}
