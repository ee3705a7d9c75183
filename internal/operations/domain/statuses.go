package domain

// Fixed, ordered status vocabularies per pipeline. Loaded once at init and
// never mutated; board columns follow this order regardless of counts.
var (
	prospectStatuses = []string{
		"Nuevo",
		"Activo",
		"Calificado",
		"Visita",
		"Negociación",
		"Descartado",
	}

	leadStatuses = []string{
		"Nuevo",
		"Contactado",
		"Visita",
		"Oferta",
		"Ganado",
		"Perdido",
	}

	dealStatuses = []string{
		"Reservado",
		"Arras",
		"Contrato",
		"Cerrado",
		"Cancelado",
	}
)

// ListingStatusDraft is excluded from the dashboard summary. The remaining
// listing statuses intentionally share "Activo" with the prospect
// vocabulary so listing counts stack into the same summary bucket.
const ListingStatusDraft = "Draft"

// StatusesFor returns the ordered status vocabulary for an operation type.
// The returned slice must not be modified.
func StatusesFor(t OperationType) []string {
	switch t {
	case OpProspects:
		return prospectStatuses
	case OpLeads:
		return leadStatuses
	case OpDeals:
		return dealStatuses
	}
	return nil
}
