// Package tasks provides the agenda bounded context: urgent tasks with
// their resolved entities and the day's appointments.
package tasks

import (
	apphttp "inmo_crm_backend/internal/http"
	"inmo_crm_backend/internal/tasks/handler"
	"inmo_crm_backend/internal/tasks/repository"
	"inmo_crm_backend/internal/tasks/service"
	"inmo_crm_backend/platform/logger"
	"inmo_crm_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the tasks bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the tasks module with all its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)

	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "tasks"
}

// RegisterRoutes mounts the task and appointment routes on the authenticated group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterTaskRoutes(ctx.Protected.Group("/tasks"))
	m.handler.RegisterAppointmentRoutes(ctx.Protected.Group("/appointments"))
}

// Service exposes the tasks service to other modules (the scheduler worker
// reuses it for the urgent digest).
func (m *Module) Service() *service.Service {
	return m.service
}
