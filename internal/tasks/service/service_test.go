package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"inmo_crm_backend/internal/tasks/domain"
	"inmo_crm_backend/internal/tasks/repository"
	"inmo_crm_backend/platform/apperr"
	"inmo_crm_backend/platform/logger"

	"github.com/google/uuid"
)

type stubReader struct {
	rows         []domain.TaskRow
	appointments []repository.AppointmentRow
	err          error

	gotFrom time.Time
	gotTo   time.Time
}

func (s *stubReader) DueTasks(_ context.Context, _ uuid.UUID, from, to time.Time) ([]domain.TaskRow, error) {
	s.gotFrom, s.gotTo = from, to
	return s.rows, s.err
}

func (s *stubReader) AppointmentsOn(context.Context, uuid.UUID, time.Time) ([]repository.AppointmentRow, error) {
	return s.appointments, s.err
}

// 2026-08-24 is a Monday.
var monday = time.Date(2026, time.August, 24, 9, 30, 0, 0, time.UTC)

func newTestService(stub *stubReader) *Service {
	return New(stub, logger.New("development")).WithClock(func() time.Time { return monday })
}

func TestUrgentTasksCalendarDayWindow(t *testing.T) {
	stub := &stubReader{}
	svc := newTestService(stub)

	if _, err := svc.UrgentTasks(context.Background(), uuid.New(), 5); err != nil {
		t.Fatalf("UrgentTasks: %v", err)
	}

	wantFrom := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)
	if !stub.gotFrom.Equal(wantFrom) {
		t.Fatalf("window start = %s, want %s", stub.gotFrom, wantFrom)
	}
	// The limit is applied as a calendar-day offset: Monday + 5 days is
	// Saturday, even though the parameter is named in working days.
	if !stub.gotTo.Equal(wantTo) {
		t.Fatalf("window end = %s, want %s", stub.gotTo, wantTo)
	}
}

func TestUrgentTasksDefaultLimit(t *testing.T) {
	stub := &stubReader{}
	svc := newTestService(stub)

	if _, err := svc.UrgentTasks(context.Background(), uuid.New(), 0); err != nil {
		t.Fatalf("UrgentTasks: %v", err)
	}

	if got := stub.gotTo.Sub(stub.gotFrom); got != 5*24*time.Hour {
		t.Fatalf("default window = %s, want 120h", got)
	}
}

func TestUrgentTasksWorkingDayMetric(t *testing.T) {
	prospectID := uuid.New()
	name := "Carmen Díaz"
	stub := &stubReader{rows: []domain.TaskRow{
		{
			ID:                  uuid.New(),
			Description:         "Llamar para confirmar visita",
			DueDate:             time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC), // Saturday
			ProspectID:          &prospectID,
			ProspectContactName: &name,
		},
	}}
	svc := newTestService(stub)

	tasks, err := svc.UrgentTasks(context.Background(), uuid.New(), 5)
	if err != nil {
		t.Fatalf("UrgentTasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}

	task := tasks[0]
	// Monday through Saturday inclusive holds five working days.
	if task.DaysUntilDue != 5 {
		t.Fatalf("DaysUntilDue = %d, want 5", task.DaysUntilDue)
	}
	if task.EntityType == nil || *task.EntityType != domain.EntityProspect {
		t.Fatalf("entity type = %v, want prospect", task.EntityType)
	}
	if task.EntityName != name {
		t.Fatalf("entity name = %q, want %q", task.EntityName, name)
	}
	if task.Completed {
		t.Fatal("returned tasks are incomplete by construction")
	}
}

func TestUrgentTasksUnreferencedTask(t *testing.T) {
	stub := &stubReader{rows: []domain.TaskRow{
		{ID: uuid.New(), Description: "Ordenar archivo", DueDate: monday},
	}}
	svc := newTestService(stub)

	tasks, err := svc.UrgentTasks(context.Background(), uuid.New(), 5)
	if err != nil {
		t.Fatalf("UrgentTasks: %v", err)
	}
	if tasks[0].EntityType != nil || tasks[0].EntityID != nil {
		t.Fatalf("unreferenced task must have nil entity, got %+v", tasks[0])
	}
}

func TestUrgentTasksFailLoud(t *testing.T) {
	stub := &stubReader{err: errors.New("broken pipe")}
	svc := newTestService(stub)

	_, err := svc.UrgentTasks(context.Background(), uuid.New(), 5)
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("want internal error, got %v", err)
	}
}

func TestTodayAppointmentsMapping(t *testing.T) {
	trip := 25
	rawPhone := "612 34 56 78"
	street := "Calle Mayor 1"
	city := "León"
	stub := &stubReader{appointments: []repository.AppointmentRow{
		{
			ID:              uuid.New(),
			StartTime:       monday,
			EndTime:         monday.Add(time.Hour),
			TripTimeMinutes: &trip,
			Status:          domain.AppointmentScheduled,
			ContactName:     "Marta Ruiz",
			ContactPhone:    &rawPhone,
			Street:          &street,
			City:            &city,
		},
		{
			ID:          uuid.New(),
			StartTime:   monday.Add(2 * time.Hour),
			EndTime:     monday.Add(3 * time.Hour),
			Status:      domain.AppointmentCancelled,
			ContactName: "Luis Paredes",
		},
	}}
	svc := newTestService(stub)

	appts, err := svc.TodayAppointments(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("TodayAppointments: %v", err)
	}
	if len(appts) != 2 {
		t.Fatalf("got %d appointments, want 2", len(appts))
	}

	first := appts[0]
	if first.AppointmentType != "viewing" {
		t.Fatalf("appointment type = %q, want placeholder", first.AppointmentType)
	}
	if first.PropertyAddress == nil || *first.PropertyAddress != "Calle Mayor 1, León" {
		t.Fatalf("property address = %v", first.PropertyAddress)
	}
	if first.ContactPhone == nil || *first.ContactPhone != "+34612345678" {
		t.Fatalf("contact phone = %v, want E.164", first.ContactPhone)
	}
	if appts[1].PropertyAddress != nil {
		t.Fatal("appointment without a listing must have no address")
	}
}
