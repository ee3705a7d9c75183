package repository

import (
	"context"
	"time"

	"inmo_crm_backend/internal/tasks/domain"

	"github.com/google/uuid"
)

// TaskReader is the read surface the tasks service depends on.
type TaskReader interface {
	DueTasks(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.TaskRow, error)
	AppointmentsOn(ctx context.Context, tenantID uuid.UUID, day time.Time) ([]AppointmentRow, error)
}
