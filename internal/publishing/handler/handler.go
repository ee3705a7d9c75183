// Package handler exposes the portal publish action over HTTP.
package handler

import (
	"net/http"

	"inmo_crm_backend/internal/publishing/service"
	"inmo_crm_backend/internal/publishing/transport"
	"inmo_crm_backend/platform/httpkit"
	"inmo_crm_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for portal publication.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new publishing handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the publishing routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/:id/publish", h.Publish)
}

// Publish handles POST /api/v1/listings/:id/publish
func (h *Handler) Publish(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid listing ID", nil)
		return
	}

	var req transport.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
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

	resp, err := h.svc.Publish(c.Request.Context(), *tenantID, listingID, req.Portal)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Accepted(c, resp)
}
