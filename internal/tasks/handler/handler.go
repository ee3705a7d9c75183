// Package handler exposes urgent tasks and today's appointments over HTTP.
package handler

import (
	"net/http"

	"inmo_crm_backend/internal/tasks/service"
	"inmo_crm_backend/internal/tasks/transport"
	"inmo_crm_backend/platform/httpkit"
	"inmo_crm_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for tasks and appointments.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new tasks handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterTaskRoutes registers the task routes.
func (h *Handler) RegisterTaskRoutes(rg *gin.RouterGroup) {
	rg.GET("/urgent", h.Urgent)
}

// RegisterAppointmentRoutes registers the appointment routes.
func (h *Handler) RegisterAppointmentRoutes(rg *gin.RouterGroup) {
	rg.GET("/today", h.Today)
}

func mustGetTenantID(c *gin.Context, identity httpkit.Identity) (uuid.UUID, bool) {
	tenantID := identity.TenantID()
	if tenantID == nil {
		httpkit.Error(c, http.StatusBadRequest, "tenant ID is required", nil)
		return uuid.UUID{}, false
	}
	return *tenantID, true
}

// Urgent handles GET /api/v1/tasks/urgent
func (h *Handler) Urgent(c *gin.Context) {
	var req transport.UrgentTasksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
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
	tenantID, ok := mustGetTenantID(c, identity)
	if !ok {
		return
	}

	tasks, err := h.svc.UrgentTasks(c.Request.Context(), tenantID, req.WorkingDays)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, tasks)
}

// Today handles GET /api/v1/appointments/today
func (h *Handler) Today(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	tenantID, ok := mustGetTenantID(c, identity)
	if !ok {
		return
	}

	appts, err := h.svc.TodayAppointments(c.Request.Context(), tenantID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, appts)
}
