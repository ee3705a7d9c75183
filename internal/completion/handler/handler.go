// Package handler exposes the listing completion checklist over HTTP.
package handler

import (
	"net/http"

	"inmo_crm_backend/internal/completion/service"
	"inmo_crm_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for listing completion.
type Handler struct {
	svc *service.Service
}

// New creates a new completion handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the completion routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:id/completion", h.Completion)
}

// Completion handles GET /api/v1/listings/:id/completion
func (h *Handler) Completion(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid listing ID", nil)
		return
	}

	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	tenantID := identity.TenantID()
	if tenantID == nil {
		httpkit.Error(c, http.StatusBadRequest, "tenant ID is required", nil)
		return
	}

	result, err := h.svc.Completion(c.Request.Context(), *tenantID, listingID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
