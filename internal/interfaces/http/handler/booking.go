package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	tenancyapp "github.com/hostelops/backend/internal/application/tenancy"
)

// BookingHandler handles booking endpoints
type BookingHandler struct {
	BaseHandler
	bookingService *tenancyapp.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService *tenancyapp.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// RegisterRoutes registers booking routes
func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	bookings.POST("", h.Create)
	bookings.GET("", h.List)
	bookings.GET("/:id", h.Get)
	bookings.POST("/:id/confirm", h.Confirm)
	bookings.POST("/:id/check-in", h.CheckIn)
	bookings.POST("/:id/check-out", h.CheckOut)
	bookings.POST("/:id/cancel", h.Cancel)
}

// Create registers a new booking
func (h *BookingHandler) Create(c *gin.Context) {
	var req tenancyapp.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.bookingService.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get returns a single booking
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	resp, err := h.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns bookings, optionally scoped to a hostel and tenant
func (h *BookingHandler) List(c *gin.Context) {
	var tenantID *uuid.UUID
	if raw := c.Query("tenant_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			tenantID = &id
		}
	}

	result, err := h.bookingService.ListBookings(c.Request.Context(), hostelScope(c), tenantID, bindFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, result)
}

// Confirm confirms a pending booking
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.bookingService.ConfirmBooking)
}

// CheckIn converts a confirmed booking into an active stay
func (h *BookingHandler) CheckIn(c *gin.Context) {
	h.transition(c, h.bookingService.CheckIn)
}

// CheckOut ends an active stay
func (h *BookingHandler) CheckOut(c *gin.Context) {
	h.transition(c, h.bookingService.CheckOut)
}

// Cancel cancels a booking that has not checked in
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.bookingService.CancelBooking)
}

func (h *BookingHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*tenancyapp.BookingResponse, error)) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	resp, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
