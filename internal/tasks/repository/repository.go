// Package repository fetches task and appointment rows with the joins
// needed to resolve their display names.
package repository

import (
	"context"
	"fmt"
	"time"

	"inmo_crm_backend/internal/tasks/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// AppointmentRow is a today's-appointment row before display mapping.
type AppointmentRow struct {
	ID              uuid.UUID
	StartTime       time.Time
	EndTime         time.Time
	TripTimeMinutes *int
	Status          string
	ContactName     string
	ContactPhone    *string
	Street          *string
	City            *string
}

// DueTasks returns a tenant's incomplete, active tasks with a due date
// inside [from, to], ordered by due date ascending. Each of the five
// possible references is left-joined to its display row so the resolver
// can name whichever one is set.
func (r *Repository) DueTasks(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.TaskRow, error) {
	query := `
		SELECT t.id, t.description, t.due_date, t.completed,
			t.prospect_id, t.listing_contact_id, t.deal_id, t.listing_id, t.appointment_id,
			pc.full_name,
			lcc.full_name,
			NULLIF(TRIM(CONCAT_WS(', ', dpr.street, dpr.city)), ''),
			NULLIF(TRIM(CONCAT_WS(', ', lpr.street, lpr.city)), ''),
			ac.full_name
		FROM tasks t
		LEFT JOIN prospects p ON p.id = t.prospect_id
		LEFT JOIN contacts pc ON pc.id = p.contact_id
		LEFT JOIN listing_contacts lc ON lc.id = t.listing_contact_id
		LEFT JOIN contacts lcc ON lcc.id = lc.contact_id
		LEFT JOIN deals d ON d.id = t.deal_id
		LEFT JOIN listings dl ON dl.id = d.listing_id
		LEFT JOIN properties dpr ON dpr.id = dl.property_id
		LEFT JOIN listings tl ON tl.id = t.listing_id
		LEFT JOIN properties lpr ON lpr.id = tl.property_id
		LEFT JOIN appointments a ON a.id = t.appointment_id
		LEFT JOIN contacts ac ON ac.id = a.contact_id
		WHERE t.organization_id = $1
			AND t.is_active = true
			AND t.completed = false
			AND t.due_date IS NOT NULL
			AND t.due_date >= $2
			AND t.due_date <= $3
		ORDER BY t.due_date ASC`

	rows, err := r.pool.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("due tasks: %w", err)
	}
	defer rows.Close()

	out := make([]domain.TaskRow, 0)
	for rows.Next() {
		var row domain.TaskRow
		if err := rows.Scan(
			&row.ID, &row.Description, &row.DueDate, &row.Completed,
			&row.ProspectID, &row.ListingContactID, &row.DealID, &row.ListingID, &row.AppointmentID,
			&row.ProspectContactName,
			&row.LeadContactName,
			&row.DealAddress,
			&row.ListingAddress,
			&row.AppointmentContactName,
		); err != nil {
			return nil, fmt.Errorf("due tasks: %w", err)
		}
		out = append(out, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("due tasks: %w", rows.Err())
	}

	return out, nil
}

// AppointmentsOn returns a tenant's appointments starting on the given
// calendar day, ordered by start time.
func (r *Repository) AppointmentsOn(ctx context.Context, tenantID uuid.UUID, day time.Time) ([]AppointmentRow, error) {
	dayStart := domain.DateOnly(day)
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		SELECT a.id, a.start_time, a.end_time, a.trip_time_minutes, a.status,
			c.full_name, c.phone, pr.street, pr.city
		FROM appointments a
		JOIN contacts c ON c.id = a.contact_id
		LEFT JOIN listings l ON l.id = a.listing_id
		LEFT JOIN properties pr ON pr.id = l.property_id
		WHERE c.organization_id = $1
			AND a.start_time >= $2
			AND a.start_time < $3
		ORDER BY a.start_time ASC`

	rows, err := r.pool.Query(ctx, query, tenantID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("appointments on %s: %w", dayStart.Format("2006-01-02"), err)
	}
	defer rows.Close()

	out := make([]AppointmentRow, 0)
	for rows.Next() {
		var row AppointmentRow
		if err := rows.Scan(
			&row.ID, &row.StartTime, &row.EndTime, &row.TripTimeMinutes, &row.Status,
			&row.ContactName, &row.ContactPhone, &row.Street, &row.City,
		); err != nil {
			return nil, fmt.Errorf("appointments: %w", err)
		}
		out = append(out, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("appointments: %w", rows.Err())
	}

	return out, nil
}
