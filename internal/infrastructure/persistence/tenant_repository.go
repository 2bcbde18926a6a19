package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/hostelops/backend/internal/domain/tenancy"
)

// GormTenantRepository implements TenantRepository using GORM
type GormTenantRepository struct {
	db *gorm.DB
}

// NewGormTenantRepository creates a new GormTenantRepository
func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

// FindByID finds a tenant by its ID, allocations included
func (r *GormTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Tenant, error) {
	var tenant tenancy.Tenant
	if err := r.db.WithContext(ctx).
		Preload("Allocations").
		First(&tenant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

// FindByCNIC finds a tenant by national ID number
func (r *GormTenantRepository) FindByCNIC(ctx context.Context, cnic string) (*tenancy.Tenant, error) {
	var tenant tenancy.Tenant
	if err := r.db.WithContext(ctx).
		Preload("Allocations").
		First(&tenant, "cnic = ?", cnic).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

// FindAll finds all tenants matching the filter
func (r *GormTenantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenancy.Tenant, error) {
	var tenants []tenancy.Tenant
	query := r.applyFilter(r.db.WithContext(ctx).Model(&tenancy.Tenant{}), filter).
		Preload("Allocations")

	if err := query.Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// FindByHostel finds tenants with an active allocation in the hostel
func (r *GormTenantRepository) FindByHostel(ctx context.Context, hostelID uuid.UUID, filter shared.Filter) ([]tenancy.Tenant, error) {
	var tenants []tenancy.Tenant
	query := r.db.WithContext(ctx).Model(&tenancy.Tenant{}).
		Joins("JOIN allocations ON allocations.tenant_id = tenants.id").
		Where("allocations.hostel_id = ? AND allocations.status = ?", hostelID, tenancy.AllocationStatusActive)
	query = r.applyFilter(query, filter).Preload("Allocations")

	if err := query.Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// FindWithDue finds tenants that owe money, optionally scoped to the hostel
// of their active allocation
func (r *GormTenantRepository) FindWithDue(ctx context.Context, hostelID *uuid.UUID, filter shared.Filter) ([]tenancy.Tenant, error) {
	var tenants []tenancy.Tenant
	query := r.db.WithContext(ctx).Model(&tenancy.Tenant{}).
		Where("tenants.total_due > 0")
	if hostelID != nil {
		query = query.
			Joins("JOIN allocations ON allocations.tenant_id = tenants.id").
			Where("allocations.hostel_id = ? AND allocations.status = ?", *hostelID, tenancy.AllocationStatusActive)
	}
	query = r.applyFilter(query, filter).Preload("Allocations")

	if err := query.Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// SumDueForActiveAllocations sums TotalDue across tenants whose active
// allocation matches the hostel scope; nil hostelID covers all hostels
func (r *GormTenantRepository) SumDueForActiveAllocations(ctx context.Context, hostelID *uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	query := r.db.WithContext(ctx).Model(&tenancy.Tenant{}).
		Select("COALESCE(SUM(tenants.total_due), 0) AS total").
		Joins("JOIN allocations ON allocations.tenant_id = tenants.id").
		Where("allocations.status = ?", tenancy.AllocationStatusActive)
	if hostelID != nil {
		query = query.Where("allocations.hostel_id = ?", *hostelID)
	}

	if err := query.Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// Save creates or updates a tenant and its allocations
func (r *GormTenantRepository) Save(ctx context.Context, tenant *tenancy.Tenant) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(tenant).Error
}

// Delete deletes a tenant and its allocations
func (r *GormTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&tenancy.Allocation{}, "tenant_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&tenancy.Tenant{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts tenants matching the filter
func (r *GormTenantRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&tenancy.Tenant{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountActiveByHostel counts tenants with an active allocation in the hostel
func (r *GormTenantRepository) CountActiveByHostel(ctx context.Context, hostelID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&tenancy.Tenant{}).
		Joins("JOIN allocations ON allocations.tenant_id = tenants.id").
		Where("allocations.hostel_id = ? AND allocations.status = ?", hostelID, tenancy.AllocationStatusActive).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountActiveAllocations counts active allocations matching the hostel scope;
// nil hostelID covers all hostels
func (r *GormTenantRepository) CountActiveAllocations(ctx context.Context, hostelID *uuid.UUID) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&tenancy.Allocation{}).
		Where("status = ?", tenancy.AllocationStatusActive)
	if hostelID != nil {
		query = query.Where("hostel_id = ?", *hostelID)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCNIC checks if a tenant with the given CNIC exists
func (r *GormTenantRepository) ExistsByCNIC(ctx context.Context, cnic string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&tenancy.Tenant{}).
		Where("cnic = ?", cnic).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies search, pagination and ordering to the query
func (r *GormTenantRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applySearch(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, TenantSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order("tenants." + orderBy + " " + orderDir)
}

func (r *GormTenantRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("tenants.name ILIKE ? OR tenants.phone ILIKE ? OR tenants.cnic ILIKE ? OR tenants.email ILIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern)
	}
	return query
}

// Ensure GormTenantRepository implements TenantRepository
var _ tenancy.TenantRepository = (*GormTenantRepository)(nil)
