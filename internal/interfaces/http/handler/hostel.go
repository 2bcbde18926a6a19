package handler

import (
	"github.com/gin-gonic/gin"

	propertyapp "github.com/hostelops/backend/internal/application/property"
	"github.com/hostelops/backend/internal/interfaces/http/middleware"
)

// HostelHandler handles hostel endpoints
type HostelHandler struct {
	BaseHandler
	hostelService *propertyapp.HostelService
}

// NewHostelHandler creates a new HostelHandler
func NewHostelHandler(hostelService *propertyapp.HostelService) *HostelHandler {
	return &HostelHandler{hostelService: hostelService}
}

// RegisterRoutes registers hostel routes
func (h *HostelHandler) RegisterRoutes(rg *gin.RouterGroup) {
	hostels := rg.Group("/hostels")
	hostels.GET("", h.List)
	hostels.GET("/:id", h.Get)

	admin := hostels.Group("", middleware.RequireRole("admin"))
	admin.POST("", h.Create)
	admin.PUT("/:id", h.Update)
	admin.POST("/:id/activate", h.Activate)
	admin.POST("/:id/deactivate", h.Deactivate)
	admin.DELETE("/:id", h.Delete)
}

// Create registers a new hostel
func (h *HostelHandler) Create(c *gin.Context) {
	var req propertyapp.CreateHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.hostelService.CreateHostel(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get returns a single hostel
func (h *HostelHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid hostel ID")
		return
	}

	resp, err := h.hostelService.GetHostel(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns hostels
func (h *HostelHandler) List(c *gin.Context) {
	result, err := h.hostelService.ListHostels(c.Request.Context(), bindFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, result)
}

// Update modifies hostel details
func (h *HostelHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid hostel ID")
		return
	}

	var req propertyapp.UpdateHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.hostelService.UpdateHostel(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Activate brings a hostel back into operation
func (h *HostelHandler) Activate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid hostel ID")
		return
	}

	if err := h.hostelService.ActivateHostel(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Deactivate takes a hostel out of operation
func (h *HostelHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid hostel ID")
		return
	}

	if err := h.hostelService.DeactivateHostel(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete removes a hostel
func (h *HostelHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid hostel ID")
		return
	}

	if err := h.hostelService.DeleteHostel(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
