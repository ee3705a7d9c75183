// Package domain models urgent tasks and today's appointments: the
// polymorphic entity reference a task points at, the working-day math
// behind the urgency metric, and the display projections.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityKind tags which record a task is attached to.
type EntityKind string

const (
	EntityProspect    EntityKind = "prospect"
	EntityLead        EntityKind = "lead"
	EntityDeal        EntityKind = "deal"
	EntityListing     EntityKind = "listing"
	EntityAppointment EntityKind = "appointment"
)

// Name fallbacks when the joined display row is missing.
const (
	UnknownContact  = "Unknown Contact"
	UnknownProperty = "Unknown Property"
)

// EntityRef is the resolved association of a task: exactly one kind, its
// id, and a display name. Modeling the reference as a single value keeps
// the "which foreign key wins" question out of every consumer.
type EntityRef struct {
	Kind EntityKind
	ID   uuid.UUID
	Name string
}

// TaskRow is the raw joined row the repository produces for an urgent
// task. The five reference columns are nullable in storage; ResolveEntity
// collapses them into one EntityRef.
type TaskRow struct {
	ID          uuid.UUID
	Description string
	DueDate     time.Time
	Completed   bool

	ProspectID       *uuid.UUID
	ListingContactID *uuid.UUID
	DealID           *uuid.UUID
	ListingID        *uuid.UUID
	AppointmentID    *uuid.UUID

	ProspectContactName    *string
	LeadContactName        *string
	DealAddress            *string
	ListingAddress         *string
	AppointmentContactName *string
}

// ResolveEntity picks the task's association in fixed priority order:
// prospect, lead, deal, listing, appointment. The schema intends exactly
// one reference to be set; if several are, only the highest-priority one
// is reported. Returns nil for a task with no reference at all.
func ResolveEntity(row TaskRow) *EntityRef {
	switch {
	case row.ProspectID != nil:
		return &EntityRef{Kind: EntityProspect, ID: *row.ProspectID, Name: nameOr(row.ProspectContactName, UnknownContact)}
	case row.ListingContactID != nil:
		return &EntityRef{Kind: EntityLead, ID: *row.ListingContactID, Name: nameOr(row.LeadContactName, UnknownContact)}
	case row.DealID != nil:
		return &EntityRef{Kind: EntityDeal, ID: *row.DealID, Name: nameOr(row.DealAddress, UnknownProperty)}
	case row.ListingID != nil:
		return &EntityRef{Kind: EntityListing, ID: *row.ListingID, Name: nameOr(row.ListingAddress, UnknownProperty)}
	case row.AppointmentID != nil:
		return &EntityRef{Kind: EntityAppointment, ID: *row.AppointmentID, Name: nameOr(row.AppointmentContactName, UnknownContact)}
	}
	return nil
}

func nameOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

// UrgentTask is the display projection of an incomplete task inside the
// urgency horizon. Completed is always false for returned entries; the
// field exists for shape completeness.
type UrgentTask struct {
	TaskID       uuid.UUID   `json:"taskId"`
	Description  string      `json:"description"`
	DueDate      time.Time   `json:"dueDate"`
	EntityType   *EntityKind `json:"entityType"`
	EntityID     *uuid.UUID  `json:"entityId"`
	EntityName   string      `json:"entityName,omitempty"`
	DaysUntilDue int         `json:"daysUntilDue"`
	Completed    bool        `json:"completed"`
}

// TodayAppointment is the display projection of an appointment scheduled
// for the current day.
type TodayAppointment struct {
	ID              uuid.UUID  `json:"id"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         time.Time  `json:"endTime"`
	TripTimeMinutes *int       `json:"tripTimeMinutes,omitempty"`
	Status          string     `json:"status"`
	ContactName     string     `json:"contactName"`
	ContactPhone    *string    `json:"contactPhone,omitempty"`
	PropertyAddress *string    `json:"propertyAddress,omitempty"`
	AppointmentType string     `json:"appointmentType"`
}

// Appointment statuses as stored.
const (
	AppointmentScheduled   = "Scheduled"
	AppointmentCompleted   = "Completed"
	AppointmentCancelled   = "Cancelled"
	AppointmentRescheduled = "Rescheduled"
	AppointmentNoShow      = "NoShow"
)

// DeriveAppointmentType classifies an appointment for display. Every
// appointment is currently a viewing; when the appointment records start
// carrying their own type column this is the single place to read it.
func DeriveAppointmentType() string {
	return "viewing"
}
