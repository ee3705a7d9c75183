// Package publishing provides the portal publication bounded context:
// the completion-gated publish action and its job enqueueing.
package publishing

import (
	completionsvc "inmo_crm_backend/internal/completion/service"
	apphttp "inmo_crm_backend/internal/http"
	"inmo_crm_backend/internal/publishing/handler"
	"inmo_crm_backend/internal/publishing/repository"
	"inmo_crm_backend/internal/publishing/service"
	"inmo_crm_backend/internal/scheduler"
	"inmo_crm_backend/platform/logger"
	"inmo_crm_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the publishing bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the publishing module. The completion
// service acts as the publish gate; the scheduler client carries accepted
// listings to the worker.
func NewModule(pool *pgxpool.Pool, checker *completionsvc.Service, sched scheduler.PublishScheduler, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(checker, repo, sched, log)

	return &Module{
		handler: handler.New(svc, val),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "publishing"
}

// RegisterRoutes mounts the publishing routes on the authenticated group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/listings"))
}
