// Package operations provides the pipeline aggregation bounded context:
// the kanban board, per-track counts and the dashboard summary.
package operations

import (
	apphttp "inmo_crm_backend/internal/http"
	"inmo_crm_backend/internal/operations/handler"
	"inmo_crm_backend/internal/operations/repository"
	"inmo_crm_backend/internal/operations/service"
	"inmo_crm_backend/platform/logger"
	"inmo_crm_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the operations bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the operations module with all its dependencies.
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
	return "operations"
}

// RegisterRoutes mounts the operations routes on the authenticated group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/operations"))
}

// Service exposes the aggregation service to other modules (the scheduler
// worker reuses it for digest generation).
func (m *Module) Service() *service.Service {
	return m.service
}
