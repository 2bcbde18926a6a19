package tenancy

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/hostelops/backend/internal/domain/tenancy"
)

// BookingService provides application-level booking operations
// Checking a booking in also allocates the tenant to the booked room
type BookingService struct {
	bookingRepo tenancy.BookingRepository
	tenantRepo  tenancy.TenantRepository
}

// NewBookingService creates a new BookingService
func NewBookingService(bookingRepo tenancy.BookingRepository, tenantRepo tenancy.TenantRepository) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		tenantRepo:  tenantRepo,
	}
}

// BookingResponse represents a booking in API responses
type BookingResponse struct {
	ID          uuid.UUID  `json:"id"`
	Sequence    int64      `json:"sequence"`
	TenantID    uuid.UUID  `json:"tenant_id"`
	HostelID    uuid.UUID  `json:"hostel_id"`
	RoomNumber  string     `json:"room_number"`
	Status      string     `json:"status"`
	CheckIn     time.Time  `json:"check_in"`
	CheckOut    *time.Time `json:"check_out,omitempty"`
	MonthlyRent float64    `json:"monthly_rent"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateBookingRequest represents a request to book a room
type CreateBookingRequest struct {
	TenantID    uuid.UUID       `json:"tenant_id" binding:"required"`
	HostelID    uuid.UUID       `json:"hostel_id" binding:"required"`
	RoomNumber  string          `json:"room_number" binding:"required"`
	CheckIn     time.Time       `json:"check_in" binding:"required"`
	MonthlyRent decimal.Decimal `json:"monthly_rent" binding:"required"`
}

// CreateBooking creates a new pending booking
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error) {
	if _, err := s.tenantRepo.FindByID(ctx, req.TenantID); err != nil {
		return nil, err
	}

	booking, err := tenancy.NewBooking(req.TenantID, req.HostelID, req.RoomNumber, req.CheckIn, req.MonthlyRent)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		return nil, err
	}

	return toBookingResponse(booking), nil
}

// GetBooking finds a booking by ID
func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

// ListBookings lists bookings, optionally scoped to a hostel or tenant
func (s *BookingService) ListBookings(ctx context.Context, hostelID, tenantID *uuid.UUID, filter shared.Filter) (*shared.Paginated[BookingResponse], error) {
	filter.Normalize()

	var (
		bookings []tenancy.Booking
		err      error
	)
	switch {
	case tenantID != nil:
		bookings, err = s.bookingRepo.FindByTenant(ctx, *tenantID, filter)
	case hostelID != nil:
		bookings, err = s.bookingRepo.FindByHostel(ctx, *hostelID, filter)
	default:
		bookings, err = s.bookingRepo.FindAll(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, *toBookingResponse(&bookings[i]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// ConfirmBooking confirms a pending booking
func (s *BookingService) ConfirmBooking(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := booking.Confirm(); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		return nil, err
	}

	return toBookingResponse(booking), nil
}

// CheckIn checks the tenant in and allocates the booked room
func (s *BookingService) CheckIn(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.FindByID(ctx, booking.TenantID)
	if err != nil {
		return nil, err
	}

	if err := booking.MarkCheckedIn(); err != nil {
		return nil, err
	}
	if _, err := tenant.Allocate(booking.HostelID, booking.RoomNumber, time.Now()); err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		return nil, err
	}

	return toBookingResponse(booking), nil
}

// CheckOut checks the tenant out and vacates the allocation
func (s *BookingService) CheckOut(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.FindByID(ctx, booking.TenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := booking.MarkCheckedOut(now); err != nil {
		return nil, err
	}
	if err := tenant.Vacate(now); err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		return nil, err
	}

	return toBookingResponse(booking), nil
}

// CancelBooking cancels a booking before check-in
func (s *BookingService) CancelBooking(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := booking.Cancel(); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		return nil, err
	}

	return toBookingResponse(booking), nil
}

func toBookingResponse(b *tenancy.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		Sequence:    b.Sequence,
		TenantID:    b.TenantID,
		HostelID:    b.HostelID,
		RoomNumber:  b.RoomNumber,
		Status:      string(b.Status),
		CheckIn:     b.CheckIn,
		CheckOut:    b.CheckOut,
		MonthlyRent: b.MonthlyRent.Round(2).InexactFloat64(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
