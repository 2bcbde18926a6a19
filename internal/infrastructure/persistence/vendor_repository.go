package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hostelops/backend/internal/domain/property"
	"github.com/hostelops/backend/internal/domain/shared"
)

// GormVendorRepository implements VendorRepository using GORM
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new GormVendorRepository
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// FindByID finds a vendor by its ID
func (r *GormVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Vendor, error) {
	var vendor property.Vendor
	if err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

// FindAll finds all vendors matching the filter
func (r *GormVendorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Vendor, error) {
	var vendors []property.Vendor
	query := r.applyFilter(r.db.WithContext(ctx).Model(&property.Vendor{}), filter)

	if err := query.Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// FindByHostel finds vendors attached to a hostel
func (r *GormVendorRepository) FindByHostel(ctx context.Context, hostelID uuid.UUID, filter shared.Filter) ([]property.Vendor, error) {
	var vendors []property.Vendor
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&property.Vendor{}).Where("hostel_id = ?", hostelID),
		filter,
	)

	if err := query.Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// FindByServiceType finds vendors by service type, optionally scoped to a hostel
func (r *GormVendorRepository) FindByServiceType(ctx context.Context, hostelID *uuid.UUID, serviceType property.ServiceType, filter shared.Filter) ([]property.Vendor, error) {
	var vendors []property.Vendor
	query := r.db.WithContext(ctx).Model(&property.Vendor{}).Where("service_type = ?", serviceType)
	if hostelID != nil {
		query = query.Where("hostel_id = ?", *hostelID)
	}
	query = r.applyFilter(query, filter)

	if err := query.Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// FindActive finds active vendors, optionally scoped to a hostel
func (r *GormVendorRepository) FindActive(ctx context.Context, hostelID *uuid.UUID, filter shared.Filter) ([]property.Vendor, error) {
	var vendors []property.Vendor
	query := r.db.WithContext(ctx).Model(&property.Vendor{}).
		Where("status = ?", property.VendorStatusActive)
	if hostelID != nil {
		query = query.Where("hostel_id = ?", *hostelID)
	}
	query = r.applyFilter(query, filter)

	if err := query.Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// FindAllActive finds every active vendor matching the hostel scope and an
// optional name/company/email search, unpaged
func (r *GormVendorRepository) FindAllActive(ctx context.Context, hostelID *uuid.UUID, search string) ([]property.Vendor, error) {
	var vendors []property.Vendor
	query := r.db.WithContext(ctx).Model(&property.Vendor{}).
		Where("status = ?", property.VendorStatusActive)
	if hostelID != nil {
		query = query.Where("hostel_id = ?", *hostelID)
	}
	if search != "" {
		searchPattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR company_name ILIKE ? OR email ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	if err := query.Order("created_at DESC").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// Save creates or updates a vendor
func (r *GormVendorRepository) Save(ctx context.Context, vendor *property.Vendor) error {
	return r.db.WithContext(ctx).Save(vendor).Error
}

// Delete deletes a vendor
func (r *GormVendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&property.Vendor{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts vendors matching the filter
func (r *GormVendorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&property.Vendor{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByHostel counts vendors attached to a hostel
func (r *GormVendorRepository) CountByHostel(ctx context.Context, hostelID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&property.Vendor{}).
		Where("hostel_id = ?", hostelID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies search, pagination and ordering to the query
func (r *GormVendorRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applySearch(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, VendorSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

func (r *GormVendorRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR company_name ILIKE ? OR phone ILIKE ? OR email ILIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern)
	}
	return query
}

// Ensure GormVendorRepository implements VendorRepository
var _ property.VendorRepository = (*GormVendorRepository)(nil)
