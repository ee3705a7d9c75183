// Package completion provides the listing field completion bounded
// context: the fixed rule table and its evaluation endpoint.
package completion

import (
	"inmo_crm_backend/internal/completion/handler"
	"inmo_crm_backend/internal/completion/repository"
	"inmo_crm_backend/internal/completion/service"
	apphttp "inmo_crm_backend/internal/http"
	"inmo_crm_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the completion bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the completion module with all its dependencies.
func NewModule(pool *pgxpool.Pool, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)

	return &Module{
		handler: handler.New(svc),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "completion"
}

// RegisterRoutes mounts the completion routes on the authenticated group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/listings"))
}

// Service exposes the completion service to the publishing module, which
// uses it as the publish gate.
func (m *Module) Service() *service.Service {
	return m.service
}
