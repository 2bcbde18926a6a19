package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	billingapp "github.com/hostelops/backend/internal/application/billing"
)

// AlertHandler handles alert endpoints
type AlertHandler struct {
	BaseHandler
	alertService *billingapp.AlertService
}

// NewAlertHandler creates a new AlertHandler
func NewAlertHandler(alertService *billingapp.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// RegisterRoutes registers alert routes
func (h *AlertHandler) RegisterRoutes(rg *gin.RouterGroup) {
	alerts := rg.Group("/alerts")
	alerts.POST("", h.Create)
	alerts.GET("", h.List)
	alerts.GET("/:id", h.Get)
	alerts.POST("/:id/acknowledge", h.Acknowledge)
	alerts.POST("/:id/resolve", h.Resolve)
	alerts.DELETE("/:id", h.Delete)
}

// Create raises a new alert
func (h *AlertHandler) Create(c *gin.Context) {
	var req billingapp.CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.alertService.CreateAlert(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get returns a single alert
func (h *AlertHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid alert ID")
		return
	}

	resp, err := h.alertService.GetAlert(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns alerts for the scoped hostel
func (h *AlertHandler) List(c *gin.Context) {
	result, err := h.alertService.ListAlerts(c.Request.Context(), hostelScope(c), bindFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, result)
}

// Acknowledge marks the alert as seen
func (h *AlertHandler) Acknowledge(c *gin.Context) {
	h.transition(c, h.alertService.AcknowledgeAlert)
}

// Resolve closes the alert
func (h *AlertHandler) Resolve(c *gin.Context) {
	h.transition(c, h.alertService.ResolveAlert)
}

// Delete removes an alert
func (h *AlertHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid alert ID")
		return
	}

	if err := h.alertService.DeleteAlert(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *AlertHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*billingapp.AlertResponse, error)) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid alert ID")
		return
	}

	resp, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
