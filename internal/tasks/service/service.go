// Package service resolves urgent tasks and today's appointments into
// their display projections.
package service

import (
	"context"
	"strings"
	"time"

	"inmo_crm_backend/internal/tasks/domain"
	"inmo_crm_backend/internal/tasks/repository"
	"inmo_crm_backend/platform/apperr"
	"inmo_crm_backend/platform/logger"
	"inmo_crm_backend/platform/phone"

	"github.com/google/uuid"
)

// DefaultWorkingDaysLimit is the urgency horizon used when the caller
// does not supply one.
const DefaultWorkingDaysLimit = 5

type Service struct {
	repo repository.TaskReader
	log  *logger.Logger
	now  func() time.Time
}

func New(repo repository.TaskReader, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log, now: time.Now}
}

// WithClock overrides the service clock; tests pin it to a fixed day.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// UrgentTasks returns the tenant's incomplete tasks due within the
// horizon, each with its resolved entity and working-day distance.
//
// The horizon window is a calendar-day offset from today even though the
// parameter is named in working days; the per-task DaysUntilDue metric,
// in contrast, genuinely counts working days. The two behaviors are kept
// deliberately distinct.
func (s *Service) UrgentTasks(ctx context.Context, tenantID uuid.UUID, workingDaysLimit int) ([]domain.UrgentTask, error) {
	if workingDaysLimit <= 0 {
		workingDaysLimit = DefaultWorkingDaysLimit
	}

	today := domain.DateOnly(s.now())
	cutoff := today.AddDate(0, 0, workingDaysLimit)

	rows, err := s.repo.DueTasks(ctx, tenantID, today, cutoff)
	if err != nil {
		s.log.QueryError("urgent_tasks", err,
			"tenant_id", tenantID.String(),
			"working_days_limit", workingDaysLimit,
		)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load urgent tasks", err)
	}

	tasks := make([]domain.UrgentTask, 0, len(rows))
	for _, row := range rows {
		task := domain.UrgentTask{
			TaskID:       row.ID,
			Description:  row.Description,
			DueDate:      row.DueDate,
			DaysUntilDue: domain.WorkingDaysBetween(today, row.DueDate),
			Completed:    row.Completed,
		}
		if ref := domain.ResolveEntity(row); ref != nil {
			kind := ref.Kind
			id := ref.ID
			task.EntityType = &kind
			task.EntityID = &id
			task.EntityName = ref.Name
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// TodayAppointments returns the tenant's appointments for the current day.
func (s *Service) TodayAppointments(ctx context.Context, tenantID uuid.UUID) ([]domain.TodayAppointment, error) {
	rows, err := s.repo.AppointmentsOn(ctx, tenantID, s.now())
	if err != nil {
		s.log.QueryError("today_appointments", err, "tenant_id", tenantID.String())
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load today's appointments", err)
	}

	out := make([]domain.TodayAppointment, 0, len(rows))
	for _, row := range rows {
		appt := domain.TodayAppointment{
			ID:              row.ID,
			StartTime:       row.StartTime,
			EndTime:         row.EndTime,
			TripTimeMinutes: row.TripTimeMinutes,
			Status:          row.Status,
			ContactName:     row.ContactName,
			AppointmentType: domain.DeriveAppointmentType(),
		}
		if row.ContactPhone != nil {
			normalized := phone.NormalizeE164(*row.ContactPhone)
			appt.ContactPhone = &normalized
		}
		if address := joinAddress(row.Street, row.City); address != "" {
			appt.PropertyAddress = &address
		}
		out = append(out, appt)
	}

	return out, nil
}

func joinAddress(parts ...*string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != nil && strings.TrimSpace(*p) != "" {
			out = append(out, strings.TrimSpace(*p))
		}
	}
	return strings.Join(out, ", ")
}
