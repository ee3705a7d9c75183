package domain

import (
	"testing"

	"github.com/google/uuid"
)

func cardWithStatus(status string) OperationCard {
	return OperationCard{ID: uuid.New(), Kind: KindProspect, Status: status, ListingType: ListingTypeSale}
}

func TestBuildKanbanColumnOrderMatchesVocabulary(t *testing.T) {
	for _, opType := range []OperationType{OpProspects, OpLeads, OpDeals} {
		statuses := StatusesFor(opType)
		board := BuildKanban(opType, nil)

		if len(board.Columns) != len(statuses) {
			t.Fatalf("%s: got %d columns, want %d", opType, len(board.Columns), len(statuses))
		}
		for i, col := range board.Columns {
			if col.Status != statuses[i] {
				t.Errorf("%s column %d: status %q, want %q", opType, i, col.Status, statuses[i])
			}
			if col.ID != col.Status || col.Title != col.Status {
				t.Errorf("%s column %d: id/title must equal status", opType, i)
			}
			if col.Items == nil || col.ItemCount != 0 {
				t.Errorf("%s column %d: empty column must have zero items, non-nil slice", opType, i)
			}
		}
	}
}

func TestBuildKanbanPartitionsByExactStatus(t *testing.T) {
	cards := []OperationCard{
		cardWithStatus("Nuevo"),
		cardWithStatus("Nuevo"),
		cardWithStatus("Activo"),
		cardWithStatus("Descartado"),
	}

	board := BuildKanban(OpProspects, cards)

	if board.TotalCount != 4 {
		t.Fatalf("TotalCount = %d, want 4", board.TotalCount)
	}

	counts := map[string]int{}
	placed := 0
	for _, col := range board.Columns {
		if col.ItemCount != len(col.Items) {
			t.Errorf("column %s: ItemCount %d != len(Items) %d", col.Status, col.ItemCount, len(col.Items))
		}
		counts[col.Status] = col.ItemCount
		placed += col.ItemCount
	}

	if counts["Nuevo"] != 2 || counts["Activo"] != 1 || counts["Descartado"] != 1 {
		t.Fatalf("unexpected partition: %v", counts)
	}
	if placed != board.TotalCount {
		t.Fatalf("all known-status cards must be placed: placed %d, total %d", placed, board.TotalCount)
	}
}

func TestBuildKanbanUnknownStatusCountedButUnplaced(t *testing.T) {
	cards := []OperationCard{
		cardWithStatus("Activo"),
		cardWithStatus("EstadoRaro"), // not in the prospect vocabulary
	}

	board := BuildKanban(OpProspects, cards)

	if board.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want 2", board.TotalCount)
	}

	placed := 0
	for _, col := range board.Columns {
		placed += col.ItemCount
	}
	if placed != 1 {
		t.Fatalf("placed = %d, want 1 (unknown status stays out of every column)", placed)
	}
	if placed > board.TotalCount {
		t.Fatalf("column sum %d must never exceed total %d", placed, board.TotalCount)
	}
}
