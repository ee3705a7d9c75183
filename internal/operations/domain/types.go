// Package domain holds the operations pipeline domain model: the unified
// operation card projection of prospects, leads and deals, the fixed status
// vocabularies, and the pure aggregation logic for the kanban board and the
// dashboard summary.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// OperationType selects which pipeline entity a board or count query targets.
type OperationType string

const (
	OpProspects OperationType = "prospects"
	OpLeads     OperationType = "leads"
	OpDeals     OperationType = "deals"
)

// Valid reports whether the operation type is one of the three pipelines.
func (t OperationType) Valid() bool {
	switch t {
	case OpProspects, OpLeads, OpDeals:
		return true
	}
	return false
}

// CardKind tags which source entity produced an operation card.
type CardKind string

const (
	KindProspect CardKind = "prospect"
	KindLead     CardKind = "lead"
	KindDeal     CardKind = "deal"
)

// ListingType is the transaction track of a listing.
type ListingType string

const (
	ListingTypeSale ListingType = "Sale"
	ListingTypeRent ListingType = "Rent"
)

// DefaultListingType resolves a nullable stored listing type to a track.
// Records with no explicit value are treated as sales.
func DefaultListingType(raw *string) ListingType {
	if raw == nil || *raw == "" {
		return ListingTypeSale
	}
	return ListingType(*raw)
}

// Filters narrows board and card queries. SearchQuery is accepted on the
// API but not applied anywhere yet.
// TODO: push SearchQuery down into the card queries (contact name and
// property address ILIKE) once the board UI exposes the search box.
type Filters struct {
	ListingType string // "sale", "rent" or "all"
	Status      string
	SearchQuery string
}

// TrackFilter maps the lowercase filter value onto a stored listing type.
// The second return is false for "all", empty, or unrecognized values,
// meaning no listing-type restriction applies.
func (f Filters) TrackFilter() (ListingType, bool) {
	switch f.ListingType {
	case "sale":
		return ListingTypeSale, true
	case "rent":
		return ListingTypeRent, true
	}
	return "", false
}

// OperationCard is the unified display projection of a prospect, lead or
// deal. It is computed per request and never persisted. Only a subset of
// the descriptive fields applies to each kind.
type OperationCard struct {
	ID             uuid.UUID   `json:"id"`
	Kind           CardKind    `json:"type"`
	Status         string      `json:"status"`
	ListingType    ListingType `json:"listingType"`
	ContactName    string      `json:"contactName,omitempty"`
	ListingAddress string      `json:"listingAddress,omitempty"`
	NeedSummary    string      `json:"needSummary,omitempty"`
	Source         string      `json:"source,omitempty"`
	Amount         *float64    `json:"amount,omitempty"`
	CloseDate      *time.Time  `json:"closeDate,omitempty"`
	UrgencyLevel   *string     `json:"urgencyLevel,omitempty"`
	LastActivity   time.Time   `json:"lastActivity"`
	NextTask       *string     `json:"nextTask,omitempty"`
	Participants   []string    `json:"participants,omitempty"`
}

// KanbanColumn is one status column of the board. ID, Title and Status all
// carry the status string.
type KanbanColumn struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Status    string          `json:"status"`
	Items     []OperationCard `json:"items"`
	ItemCount int             `json:"itemCount"`
}

// KanbanData is the full board for one operation type. TotalCount is the
// number of fetched cards before column partitioning, so it also counts
// cards whose status falls outside the column vocabulary.
type KanbanData struct {
	Columns    []KanbanColumn `json:"columns"`
	TotalCount int            `json:"totalCount"`
}

// TrackCounts carries per-track totals for one operation type, ignoring status.
type TrackCounts struct {
	Sale int `json:"sale"`
	Rent int `json:"rent"`
	All  int `json:"all"`
}

// TrackSummary holds the status → count cross-tab of one track.
type TrackSummary struct {
	Prospects map[string]int `json:"prospects"`
	Leads     map[string]int `json:"leads"`
	Deals     map[string]int `json:"deals"`
}

// OperacionesSummary is the two-track dashboard summary. The prospects
// mapping of each track also carries active non-draft listing counts,
// merged additively into the same status keys (listings are demand
// signals surfaced alongside prospect demand).
type OperacionesSummary struct {
	Sale TrackSummary `json:"sale"`
	Rent TrackSummary `json:"rent"`
}

// StatusCount is one row of a grouped count query: a status, an optional
// listing type, and how many records share the pair.
type StatusCount struct {
	Status      string
	ListingType *string
	Count       int
}
