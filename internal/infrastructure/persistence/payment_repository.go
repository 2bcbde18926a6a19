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

// outstandingStatuses are stored statuses that still carry an unpaid portion
var outstandingStatuses = []billing.PaymentStatus{
	billing.PaymentStatusPending,
	billing.PaymentStatusPartial,
	billing.PaymentStatusOverdue,
}

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	var payment billing.Payment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindByReceiptNumber finds a payment by its receipt number
func (r *GormPaymentRepository) FindByReceiptNumber(ctx context.Context, receiptNumber string) (*billing.Payment, error) {
	var payment billing.Payment
	if err := r.db.WithContext(ctx).
		First(&payment, "receipt_number = ?", receiptNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindAll finds payments matching the scope and filter
func (r *GormPaymentRepository) FindAll(ctx context.Context, scope billing.PaymentScope, filter shared.Filter) ([]billing.Payment, error) {
	var payments []billing.Payment
	query := r.applyScope(r.db.WithContext(ctx).Model(&billing.Payment{}), scope)
	query = r.applyFilter(query, filter)

	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindOutstanding finds payments whose stored status is pending, partial or
// overdue, matching the scope
func (r *GormPaymentRepository) FindOutstanding(ctx context.Context, scope billing.PaymentScope, filter shared.Filter) ([]billing.Payment, error) {
	var payments []billing.Payment
	query := r.applyScope(r.db.WithContext(ctx).Model(&billing.Payment{}), scope).
		Where("status IN ?", outstandingStatuses)
	query = r.applyFilter(query, filter)

	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// CountOutstanding counts payments with an unsettled stored status
func (r *GormPaymentRepository) CountOutstanding(ctx context.Context, scope billing.PaymentScope) (int64, error) {
	var count int64
	query := r.applyScope(r.db.WithContext(ctx).Model(&billing.Payment{}), scope).
		Where("status IN ?", outstandingStatuses)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumAmount sums Amount over payments matching the scope
func (r *GormPaymentRepository) SumAmount(ctx context.Context, scope billing.PaymentScope) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	query := r.applyScope(r.db.WithContext(ctx).Model(&billing.Payment{}), scope).
		Select("COALESCE(SUM(amount), 0) AS total")

	if err := query.Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// SumOutstanding sums the unpaid portion over payments with an unsettled
// stored status matching the scope
func (r *GormPaymentRepository) SumOutstanding(ctx context.Context, scope billing.PaymentScope) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	query := r.applyScope(r.db.WithContext(ctx).Model(&billing.Payment{}), scope).
		Select("COALESCE(SUM(amount - amount_paid), 0) AS total").
		Where("status IN ?", outstandingStatuses)

	if err := query.Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *billing.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Delete deletes a payment
func (r *GormPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&billing.Payment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts payments matching the scope
func (r *GormPaymentRepository) Count(ctx context.Context, scope billing.PaymentScope) (int64, error) {
	var count int64
	query := r.applyScope(r.db.WithContext(ctx).Model(&billing.Payment{}), scope)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyScope narrows the query to the scope's dimensions.
// Date bounds apply to COALESCE(payment_date, created_at) so that payments
// without an agreed date still land in the period they were recorded.
func (r *GormPaymentRepository) applyScope(query *gorm.DB, scope billing.PaymentScope) *gorm.DB {
	if scope.HostelID != nil {
		query = query.Where("hostel_id = ?", *scope.HostelID)
	}
	if scope.TenantID != nil {
		query = query.Where("tenant_id = ?", *scope.TenantID)
	}
	if scope.Status != nil {
		query = query.Where("status = ?", *scope.Status)
	}
	if scope.StartDate != nil {
		query = query.Where("COALESCE(payment_date, created_at) >= ?", *scope.StartDate)
	}
	if scope.EndDate != nil {
		query = query.Where("COALESCE(payment_date, created_at) <= ?", *scope.EndDate)
	}
	return query
}

// applyFilter applies pagination and ordering to the query
func (r *GormPaymentRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("payment_type ILIKE ? OR receipt_number ILIKE ? OR description ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, PaymentSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// Ensure GormPaymentRepository implements PaymentRepository
var _ billing.PaymentRepository = (*GormPaymentRepository)(nil)
