// Package handler exposes the operations pipeline aggregations over HTTP.
package handler

import (
	"net/http"

	"inmo_crm_backend/internal/operations/domain"
	"inmo_crm_backend/internal/operations/service"
	"inmo_crm_backend/internal/operations/transport"
	"inmo_crm_backend/platform/httpkit"
	"inmo_crm_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for the operations board and dashboard.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new operations handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the operations routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/board", h.Board)
	rg.GET("/counts", h.Counts)
	rg.GET("/summary", h.Summary)
}

// mustGetTenantID extracts the tenant ID from identity.
// Returns zero UUID and false if tenant ID is not present.
func mustGetTenantID(c *gin.Context, identity httpkit.Identity) (uuid.UUID, bool) {
	tenantID := identity.TenantID()
	if tenantID == nil {
		httpkit.Error(c, http.StatusBadRequest, "tenant ID is required", nil)
		return uuid.UUID{}, false
	}
	return *tenantID, true
}

// Board handles GET /api/v1/operations/board
func (h *Handler) Board(c *gin.Context) {
	var req transport.BoardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	tenantID, ok := mustGetTenantID(c, identity)
	if !ok {
		return
	}

	board, err := h.svc.KanbanData(c.Request.Context(), tenantID, domain.OperationType(req.Type), req.Filters())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, board)
}

// Counts handles GET /api/v1/operations/counts
func (h *Handler) Counts(c *gin.Context) {
	var req transport.CountsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	tenantID, ok := mustGetTenantID(c, identity)
	if !ok {
		return
	}

	// Counts degrade to zeros on storage failure instead of erroring.
	counts := h.svc.OperationCounts(c.Request.Context(), tenantID, domain.OperationType(req.Type))
	httpkit.OK(c, counts)
}

// Summary handles GET /api/v1/operations/summary
func (h *Handler) Summary(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	tenantID, ok := mustGetTenantID(c, identity)
	if !ok {
		return
	}

	summary, err := h.svc.Summary(c.Request.Context(), tenantID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, summary)
}
