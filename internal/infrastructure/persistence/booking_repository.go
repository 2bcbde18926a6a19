package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/hostelops/backend/internal/domain/tenancy"
)

// GormBookingRepository implements BookingRepository using GORM
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID finds a booking by its ID
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Booking, error) {
	var booking tenancy.Booking
	if err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// FindAll finds all bookings matching the filter
func (r *GormBookingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenancy.Booking, error) {
	var bookings []tenancy.Booking
	query := r.applyFilter(r.db.WithContext(ctx).Model(&tenancy.Booking{}), filter)

	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByTenant finds bookings made by a tenant
func (r *GormBookingRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]tenancy.Booking, error) {
	var bookings []tenancy.Booking
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&tenancy.Booking{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByHostel finds bookings for a hostel
func (r *GormBookingRepository) FindByHostel(ctx context.Context, hostelID uuid.UUID, filter shared.Filter) ([]tenancy.Booking, error) {
	var bookings []tenancy.Booking
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&tenancy.Booking{}).Where("hostel_id = ?", hostelID),
		filter,
	)

	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByStatus finds bookings by status, optionally scoped to a hostel
func (r *GormBookingRepository) FindByStatus(ctx context.Context, hostelID *uuid.UUID, status tenancy.BookingStatus, filter shared.Filter) ([]tenancy.Booking, error) {
	var bookings []tenancy.Booking
	query := r.db.WithContext(ctx).Model(&tenancy.Booking{}).Where("status = ?", status)
	if hostelID != nil {
		query = query.Where("hostel_id = ?", *hostelID)
	}
	query = r.applyFilter(query, filter)

	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Save creates or updates a booking
func (r *GormBookingRepository) Save(ctx context.Context, booking *tenancy.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

// Delete deletes a booking
func (r *GormBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&tenancy.Booking{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts bookings matching the filter
func (r *GormBookingRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&tenancy.Booking{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts bookings by status, optionally scoped to a hostel
func (r *GormBookingRepository) CountByStatus(ctx context.Context, hostelID *uuid.UUID, status tenancy.BookingStatus) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&tenancy.Booking{}).Where("status = ?", status)
	if hostelID != nil {
		query = query.Where("hostel_id = ?", *hostelID)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies search, pagination and ordering to the query
func (r *GormBookingRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applySearch(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, BookingSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

func (r *GormBookingRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("room_number ILIKE ? OR notes ILIKE ?", searchPattern, searchPattern)
	}
	return query
}

// Ensure GormBookingRepository implements BookingRepository
var _ tenancy.BookingRepository = (*GormBookingRepository)(nil)
