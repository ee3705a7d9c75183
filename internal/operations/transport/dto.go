// Package transport defines the HTTP request shapes for the operations module.
package transport

import "inmo_crm_backend/internal/operations/domain"

// BoardRequest is the query-string shape of the kanban board endpoint.
// The q parameter is accepted but reserved; it does not filter yet.
type BoardRequest struct {
	Type        string `form:"type" validate:"required,oneof=prospects leads deals"`
	ListingType string `form:"listingType" validate:"omitempty,oneof=sale rent all"`
	Status      string `form:"status"`
	SearchQuery string `form:"q"`
}

// Filters converts the request into domain filters.
func (r BoardRequest) Filters() domain.Filters {
	return domain.Filters{
		ListingType: r.ListingType,
		Status:      r.Status,
		SearchQuery: r.SearchQuery,
	}
}

// CountsRequest is the query-string shape of the per-track counts endpoint.
type CountsRequest struct {
	Type string `form:"type" validate:"required,oneof=prospects leads deals"`
}
