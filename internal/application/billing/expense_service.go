package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hostelops/backend/internal/application/accounts"
	"github.com/hostelops/backend/internal/domain/billing"
	"github.com/hostelops/backend/internal/domain/property"
	"github.com/hostelops/backend/internal/domain/shared"
)

// ExpenseService provides application-level expense operations
// An expense that settles a vendor bill also records the payout on the
// vendor's ledger. Writes invalidate cached reports for the hostel.
type ExpenseService struct {
	expenseRepo billing.ExpenseRepository
	vendorRepo  property.VendorRepository
	cache       accounts.ReportCache
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo billing.ExpenseRepository, vendorRepo property.VendorRepository, cache accounts.ReportCache) *ExpenseService {
	if cache == nil {
		cache = accounts.NewNopReportCache()
	}
	return &ExpenseService{
		expenseRepo: expenseRepo,
		vendorRepo:  vendorRepo,
		cache:       cache,
	}
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          uuid.UUID  `json:"id"`
	Sequence    int64      `json:"sequence"`
	HostelID    uuid.UUID  `json:"hostel_id"`
	VendorID    *uuid.UUID `json:"vendor_id,omitempty"`
	Title       string     `json:"title"`
	Category    string     `json:"category,omitempty"`
	Amount      float64    `json:"amount"`
	Date        time.Time  `json:"date"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateExpenseRequest represents a request to record an expense
type CreateExpenseRequest struct {
	HostelID    uuid.UUID       `json:"hostel_id" binding:"required"`
	Title       string          `json:"title" binding:"required"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	VendorID    *uuid.UUID      `json:"vendor_id"`
	Description string          `json:"description"`
}

// UpdateExpenseRequest represents a request to update an expense
type UpdateExpenseRequest struct {
	Title       string          `json:"title" binding:"required"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	Description string          `json:"description"`
}

// ExpenseListQuery narrows the expense listing
type ExpenseListQuery struct {
	HostelID  *uuid.UUID
	Category  *string
	Search    *string
	StartDate *time.Time
	EndDate   *time.Time
}

// CreateExpense records a new expense, optionally settling a vendor bill
func (s *ExpenseService) CreateExpense(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := billing.NewExpense(req.HostelID, req.Title, req.Category, req.Amount, req.Date)
	if err != nil {
		return nil, err
	}
	expense.Description = req.Description

	if req.VendorID != nil {
		vendor, err := s.vendorRepo.FindByID(ctx, *req.VendorID)
		if err != nil {
			return nil, err
		}
		if err := vendor.RecordPayout(req.Amount); err != nil {
			return nil, err
		}
		if err := expense.AttachVendor(vendor.ID); err != nil {
			return nil, err
		}
		if err := s.vendorRepo.Save(ctx, vendor); err != nil {
			return nil, err
		}
	}

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	s.cache.InvalidateHostel(ctx, expense.HostelID.String())
	return toExpenseResponse(expense), nil
}

// GetExpense finds an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// ListExpenses lists expenses matching the query
func (s *ExpenseService) ListExpenses(ctx context.Context, query ExpenseListQuery, filter shared.Filter) (*shared.Paginated[ExpenseResponse], error) {
	filter.Normalize()

	scope := billing.ExpenseScope{
		HostelID:  query.HostelID,
		Category:  query.Category,
		Search:    query.Search,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
	}

	expenses, err := s.expenseRepo.FindAll(ctx, scope, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.expenseRepo.Count(ctx, scope)
	if err != nil {
		return nil, err
	}

	items := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		items = append(items, *toExpenseResponse(&expenses[i]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// UpdateExpense updates an expense
func (s *ExpenseService) UpdateExpense(ctx context.Context, id uuid.UUID, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := expense.Update(req.Title, req.Category, req.Amount, req.Date, req.Description); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	s.cache.InvalidateHostel(ctx, expense.HostelID.String())
	return toExpenseResponse(expense), nil
}

// DeleteExpense deletes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateHostel(ctx, expense.HostelID.String())
	return nil
}

func toExpenseResponse(e *billing.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		Sequence:    e.Sequence,
		HostelID:    e.HostelID,
		VendorID:    e.VendorID,
		Title:       e.Title,
		Category:    e.Category,
		Amount:      e.Amount.Round(2).InexactFloat64(),
		Date:        e.Date,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
