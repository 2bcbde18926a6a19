package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hostelops/backend/internal/domain/property"
	"github.com/hostelops/backend/internal/domain/shared"
)

// GormHostelRepository implements HostelRepository using GORM
type GormHostelRepository struct {
	db *gorm.DB
}

// NewGormHostelRepository creates a new GormHostelRepository
func NewGormHostelRepository(db *gorm.DB) *GormHostelRepository {
	return &GormHostelRepository{db: db}
}

// FindByID finds a hostel by its ID
func (r *GormHostelRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Hostel, error) {
	var hostel property.Hostel
	if err := r.db.WithContext(ctx).First(&hostel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &hostel, nil
}

// FindAll finds all hostels matching the filter
func (r *GormHostelRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Hostel, error) {
	var hostels []property.Hostel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&property.Hostel{}), filter)

	if err := query.Find(&hostels).Error; err != nil {
		return nil, err
	}
	return hostels, nil
}

// FindByStatus finds hostels by status
func (r *GormHostelRepository) FindByStatus(ctx context.Context, status property.HostelStatus, filter shared.Filter) ([]property.Hostel, error) {
	var hostels []property.Hostel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&property.Hostel{}).Where("status = ?", status),
		filter,
	)

	if err := query.Find(&hostels).Error; err != nil {
		return nil, err
	}
	return hostels, nil
}

// FindActive finds all active hostels
func (r *GormHostelRepository) FindActive(ctx context.Context, filter shared.Filter) ([]property.Hostel, error) {
	return r.FindByStatus(ctx, property.HostelStatusActive, filter)
}

// Save creates or updates a hostel
func (r *GormHostelRepository) Save(ctx context.Context, hostel *property.Hostel) error {
	return r.db.WithContext(ctx).Save(hostel).Error
}

// Delete deletes a hostel
func (r *GormHostelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&property.Hostel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts hostels matching the filter
func (r *GormHostelRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&property.Hostel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountActive counts active hostels, optionally scoped to one hostel
func (r *GormHostelRepository) CountActive(ctx context.Context, hostelID *uuid.UUID) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&property.Hostel{}).
		Where("status = ?", property.HostelStatusActive)
	if hostelID != nil {
		query = query.Where("id = ?", *hostelID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumCapacity sums room and bed counts across active hostels matching the
// scope
func (r *GormHostelRepository) SumCapacity(ctx context.Context, hostelID *uuid.UUID) (int64, int64, error) {
	var result struct {
		Rooms int64
		Beds  int64
	}
	query := r.db.WithContext(ctx).
		Model(&property.Hostel{}).
		Select("COALESCE(SUM(total_rooms), 0) AS rooms, COALESCE(SUM(total_beds), 0) AS beds").
		Where("status = ?", property.HostelStatusActive)
	if hostelID != nil {
		query = query.Where("id = ?", *hostelID)
	}
	if err := query.Scan(&result).Error; err != nil {
		return 0, 0, err
	}
	return result.Rooms, result.Beds, nil
}

// ExistsByName checks if a hostel with the given name exists
func (r *GormHostelRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&property.Hostel{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies search, pagination and ordering to the query
func (r *GormHostelRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applySearch(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, HostelSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

func (r *GormHostelRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR city ILIKE ? OR address ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}
	return query
}

// Ensure GormHostelRepository implements HostelRepository
var _ property.HostelRepository = (*GormHostelRepository)(nil)
