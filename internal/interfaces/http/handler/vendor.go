package handler

import (
	"github.com/gin-gonic/gin"

	propertyapp "github.com/hostelops/backend/internal/application/property"
)

// VendorHandler handles vendor endpoints
type VendorHandler struct {
	BaseHandler
	vendorService *propertyapp.VendorService
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(vendorService *propertyapp.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// RegisterRoutes registers vendor routes
func (h *VendorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vendors := rg.Group("/vendors")
	vendors.POST("", h.Create)
	vendors.GET("", h.List)
	vendors.GET("/:id", h.Get)
	vendors.PUT("/:id", h.Update)
	vendors.POST("/:id/payable", h.AddPayable)
	vendors.POST("/:id/payout", h.RecordPayout)
	vendors.POST("/:id/deactivate", h.Deactivate)
	vendors.DELETE("/:id", h.Delete)
}

// Create registers a new vendor
func (h *VendorHandler) Create(c *gin.Context) {
	var req propertyapp.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.vendorService.CreateVendor(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get returns a single vendor
func (h *VendorHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	resp, err := h.vendorService.GetVendor(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns vendors, optionally scoped to a hostel
func (h *VendorHandler) List(c *gin.Context) {
	result, err := h.vendorService.ListVendors(c.Request.Context(), hostelScope(c), bindFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, result)
}

// Update modifies vendor details
func (h *VendorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req propertyapp.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.vendorService.UpdateVendor(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// AddPayable records a new amount owed to the vendor
func (h *VendorHandler) AddPayable(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req propertyapp.VendorLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.vendorService.AddPayable(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// RecordPayout records a payment made to the vendor
func (h *VendorHandler) RecordPayout(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req propertyapp.VendorLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.vendorService.RecordPayout(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Deactivate marks a vendor as inactive
func (h *VendorHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	if err := h.vendorService.DeactivateVendor(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete removes a vendor
func (h *VendorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	if err := h.vendorService.DeleteVendor(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
