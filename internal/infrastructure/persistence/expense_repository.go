package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hostelops/backend/internal/domain/billing"
	"github.com/hostelops/backend/internal/domain/shared"
)

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by its ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Expense, error) {
	var expense billing.Expense
	if err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

// FindAll finds expenses matching the scope and filter
func (r *GormExpenseRepository) FindAll(ctx context.Context, scope billing.ExpenseScope, filter shared.Filter) ([]billing.Expense, error) {
	var expenses []billing.Expense
	query := r.applyScope(r.db.WithContext(ctx).Model(&billing.Expense{}), scope)
	query = r.applyFilter(query, filter)

	if err := query.Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// FindAllByScope finds every expense matching the scope, unpaged, newest first
func (r *GormExpenseRepository) FindAllByScope(ctx context.Context, scope billing.ExpenseScope) ([]billing.Expense, error) {
	var expenses []billing.Expense
	query := r.applyScope(r.db.WithContext(ctx).Model(&billing.Expense{}), scope)

	if err := query.Order("date DESC, created_at DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// SumAmount sums Amount over expenses matching the scope
func (r *GormExpenseRepository) SumAmount(ctx context.Context, scope billing.ExpenseScope) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	query := r.applyScope(r.db.WithContext(ctx).Model(&billing.Expense{}), scope).
		Select("COALESCE(SUM(amount), 0) AS total")

	if err := query.Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// Save creates or updates an expense
func (r *GormExpenseRepository) Save(ctx context.Context, expense *billing.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

// Delete deletes an expense
func (r *GormExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&billing.Expense{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts expenses matching the scope
func (r *GormExpenseRepository) Count(ctx context.Context, scope billing.ExpenseScope) (int64, error) {
	var count int64
	query := r.applyScope(r.db.WithContext(ctx).Model(&billing.Expense{}), scope)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyScope narrows the query to the scope's dimensions
func (r *GormExpenseRepository) applyScope(query *gorm.DB, scope billing.ExpenseScope) *gorm.DB {
	if scope.HostelID != nil {
		query = query.Where("hostel_id = ?", *scope.HostelID)
	}
	if scope.Category != nil {
		query = query.Where("category ILIKE ?", "%"+strings.ToLower(*scope.Category)+"%")
	}
	if scope.Search != nil && *scope.Search != "" {
		searchPattern := "%" + *scope.Search + "%"
		query = query.Where("title ILIKE ? OR category ILIKE ?", searchPattern, searchPattern)
	}
	if scope.StartDate != nil {
		query = query.Where("date >= ?", *scope.StartDate)
	}
	if scope.EndDate != nil {
		query = query.Where("date <= ?", *scope.EndDate)
	}
	return query
}

// applyFilter applies pagination and ordering to the query
func (r *GormExpenseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ExpenseSortFields, "date")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// Ensure GormExpenseRepository implements ExpenseRepository
var _ billing.ExpenseRepository = (*GormExpenseRepository)(nil)
