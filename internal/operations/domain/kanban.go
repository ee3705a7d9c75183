package domain

// BuildKanban partitions fetched cards into the fixed ordered status
// columns of the given operation type. Every vocabulary status gets a
// column even when empty. A card whose status is outside the vocabulary
// is counted in TotalCount but placed in no column; the board displays
// only known columns and the total keeps the discrepancy visible.
func BuildKanban(opType OperationType, cards []OperationCard) KanbanData {
	statuses := StatusesFor(opType)
	columns := make([]KanbanColumn, 0, len(statuses))

	for _, status := range statuses {
		items := make([]OperationCard, 0)
		for _, card := range cards {
			if card.Status == status {
				items = append(items, card)
			}
		}
		columns = append(columns, KanbanColumn{
			ID:        status,
			Title:     status,
			Status:    status,
			Items:     items,
			ItemCount: len(items),
		})
	}

	return KanbanData{
		Columns:    columns,
		TotalCount: len(cards),
	}
}
