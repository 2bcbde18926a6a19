package tenancy

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// IsValid returns true if the status is a known booking status
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn,
		BookingStatusCheckedOut, BookingStatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true if no further transitions are allowed
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCheckedOut || s == BookingStatusCancelled
}

// Booking represents a tenant's reservation of a room
// Lifecycle: pending -> confirmed -> checked_in -> checked_out,
// with cancellation allowed before check-in
type Booking struct {
	shared.BaseAggregateRoot
	TenantID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	HostelID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	RoomNumber  string          `gorm:"type:varchar(20);not null"`
	Status      BookingStatus   `gorm:"type:varchar(20);not null;default:'pending'"`
	CheckIn     time.Time       `gorm:"not null"`
	CheckOut    *time.Time
	MonthlyRent decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Notes       string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}

// NewBooking creates a new pending booking
func NewBooking(tenantID, hostelID uuid.UUID, roomNumber string, checkIn time.Time, monthlyRent decimal.Decimal) (*Booking, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID is required")
	}
	if hostelID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_HOSTEL_ID", "Hostel ID is required")
	}
	if strings.TrimSpace(roomNumber) == "" {
		return nil, shared.NewDomainError("INVALID_ROOM", "Room number cannot be empty")
	}
	if monthlyRent.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Monthly rent cannot be negative")
	}

	return &Booking{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TenantID:          tenantID,
		HostelID:          hostelID,
		RoomNumber:        roomNumber,
		Status:            BookingStatusPending,
		CheckIn:           checkIn,
		MonthlyRent:       monthlyRent,
	}, nil
}

// Confirm transitions the booking from pending to confirmed
func (b *Booking) Confirm() error {
	if b.Status != BookingStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending bookings can be confirmed")
	}
	b.transition(BookingStatusConfirmed)
	return nil
}

// MarkCheckedIn transitions the booking from confirmed to checked in
func (b *Booking) MarkCheckedIn() error {
	if b.Status != BookingStatusConfirmed {
		return shared.NewDomainError("INVALID_STATE", "Only confirmed bookings can be checked in")
	}
	b.transition(BookingStatusCheckedIn)
	return nil
}

// MarkCheckedOut transitions the booking from checked in to checked out
func (b *Booking) MarkCheckedOut(checkOut time.Time) error {
	if b.Status != BookingStatusCheckedIn {
		return shared.NewDomainError("INVALID_STATE", "Only checked-in bookings can be checked out")
	}
	b.CheckOut = &checkOut
	b.transition(BookingStatusCheckedOut)
	return nil
}

// Cancel cancels a booking that has not been checked in
func (b *Booking) Cancel() error {
	if b.Status != BookingStatusPending && b.Status != BookingStatusConfirmed {
		return shared.NewDomainError("INVALID_STATE", "Only pending or confirmed bookings can be cancelled")
	}
	b.transition(BookingStatusCancelled)
	return nil
}

func (b *Booking) transition(status BookingStatus) {
	b.Status = status
	b.IncrementVersion()
}
