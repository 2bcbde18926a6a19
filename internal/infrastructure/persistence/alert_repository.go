package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hostelops/backend/internal/domain/billing"
	"github.com/hostelops/backend/internal/domain/shared"
)

// GormAlertRepository implements AlertRepository using GORM
type GormAlertRepository struct {
	db *gorm.DB
}

// NewGormAlertRepository creates a new GormAlertRepository
func NewGormAlertRepository(db *gorm.DB) *GormAlertRepository {
	return &GormAlertRepository{db: db}
}

// FindByID finds an alert by its ID
func (r *GormAlertRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Alert, error) {
	var alert billing.Alert
	if err := r.db.WithContext(ctx).First(&alert, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &alert, nil
}

// FindAll finds alerts matching the filter
func (r *GormAlertRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Alert, error) {
	var alerts []billing.Alert
	query := r.applyFilter(r.db.WithContext(ctx).Model(&billing.Alert{}), filter)

	if err := query.Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// FindByType finds alerts of a type, optionally scoped to a hostel
func (r *GormAlertRepository) FindByType(ctx context.Context, hostelID *uuid.UUID, alertType billing.AlertType, filter shared.Filter) ([]billing.Alert, error) {
	var alerts []billing.Alert
	query := r.db.WithContext(ctx).Model(&billing.Alert{}).Where("type = ?", alertType)
	if hostelID != nil {
		query = query.Where("hostel_id = ?", *hostelID)
	}
	query = r.applyFilter(query, filter)

	if err := query.Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// FindAllByType finds every unresolved alert of a type matching the hostel
// scope, unpaged, newest first
func (r *GormAlertRepository) FindAllByType(ctx context.Context, hostelID *uuid.UUID, alertType billing.AlertType) ([]billing.Alert, error) {
	var alerts []billing.Alert
	query := r.db.WithContext(ctx).Model(&billing.Alert{}).
		Where("type = ? AND status <> ?", alertType, billing.AlertStatusResolved)
	if hostelID != nil {
		query = query.Where("hostel_id = ?", *hostelID)
	}

	if err := query.Order("created_at DESC").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// FindOpen finds unresolved alerts, optionally scoped to a hostel
func (r *GormAlertRepository) FindOpen(ctx context.Context, hostelID *uuid.UUID, filter shared.Filter) ([]billing.Alert, error) {
	var alerts []billing.Alert
	query := r.db.WithContext(ctx).Model(&billing.Alert{}).
		Where("status <> ?", billing.AlertStatusResolved)
	if hostelID != nil {
		query = query.Where("hostel_id = ?", *hostelID)
	}
	query = r.applyFilter(query, filter)

	if err := query.Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// SumAmountByType sums Amount over unresolved alerts of a type, optionally
// scoped to a hostel
func (r *GormAlertRepository) SumAmountByType(ctx context.Context, hostelID *uuid.UUID, alertType billing.AlertType) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	query := r.db.WithContext(ctx).Model(&billing.Alert{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("type = ? AND status <> ?", alertType, billing.AlertStatusResolved)
	if hostelID != nil {
		query = query.Where("hostel_id = ?", *hostelID)
	}

	if err := query.Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// Save creates or updates an alert
func (r *GormAlertRepository) Save(ctx context.Context, alert *billing.Alert) error {
	return r.db.WithContext(ctx).Save(alert).Error
}

// Delete deletes an alert
func (r *GormAlertRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&billing.Alert{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts alerts matching the filter
func (r *GormAlertRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&billing.Alert{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountOpen counts unresolved alerts, optionally scoped to a hostel
func (r *GormAlertRepository) CountOpen(ctx context.Context, hostelID *uuid.UUID) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&billing.Alert{}).
		Where("status <> ?", billing.AlertStatusResolved)
	if hostelID != nil {
		query = query.Where("hostel_id = ?", *hostelID)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies search, pagination and ordering to the query
func (r *GormAlertRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applySearch(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, AlertSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

func (r *GormAlertRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR notes ILIKE ?", searchPattern, searchPattern)
	}
	return query
}

// Ensure GormAlertRepository implements AlertRepository
var _ billing.AlertRepository = (*GormAlertRepository)(nil)
