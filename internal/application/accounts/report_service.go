package accounts

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hostelops/backend/internal/domain/billing"
	"github.com/hostelops/backend/internal/domain/property"
	"github.com/hostelops/backend/internal/domain/reporting"
	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/hostelops/backend/internal/domain/tenancy"
)

const defaultCacheTTL = 5 * time.Minute

// FinancialReportService produces the financial summary and the payables
// and receivables listings
type FinancialReportService struct {
	paymentRepo billing.PaymentRepository
	expenseRepo billing.ExpenseRepository
	alertRepo   billing.AlertRepository
	vendorRepo  property.VendorRepository
	tenantRepo  tenancy.TenantRepository
	cache       ReportCache
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewFinancialReportService creates a new FinancialReportService
func NewFinancialReportService(
	paymentRepo billing.PaymentRepository,
	expenseRepo billing.ExpenseRepository,
	alertRepo billing.AlertRepository,
	vendorRepo property.VendorRepository,
	tenantRepo tenancy.TenantRepository,
	cache ReportCache,
	logger *zap.Logger,
) *FinancialReportService {
	if cache == nil {
		cache = NewNopReportCache()
	}
	return &FinancialReportService{
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
		alertRepo:   alertRepo,
		vendorRepo:  vendorRepo,
		tenantRepo:  tenantRepo,
		cache:       cache,
		cacheTTL:    defaultCacheTTL,
		logger:      logger,
	}
}

// SetCacheTTL overrides how long computed summaries stay cached
func (s *FinancialReportService) SetCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		s.cacheTTL = ttl
	}
}

// FinancialSummaryResponse is the shaped financial summary payload
// All money fields carry two decimal places
type FinancialSummaryResponse struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	ProfitLoss    float64 `json:"profit_loss"`
	IsProfit      bool    `json:"is_profit"`
	BadDebt       float64 `json:"bad_debt"`
}

// GetFinancialSummary computes income, expenses, profit/loss and bad debt
// for the filtered scope. The four aggregates are independent read-only
// queries and run concurrently; any failure fails the whole report with no
// partial figures.
func (s *FinancialReportService) GetFinancialSummary(ctx context.Context, filter reporting.ReportFilter) (*FinancialSummaryResponse, error) {
	cacheKey := "summary:" + filter.CacheKey()
	var cached FinancialSummaryResponse
	if s.cache.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	paidStatus := billing.PaymentStatusPaid
	pendingStatus := billing.PaymentStatusPending

	var (
		totalIncome   decimal.Decimal
		totalExpenses decimal.Decimal
		pendingSum    decimal.Decimal
		tenantDueSum  decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalIncome, err = s.paymentRepo.SumAmount(gctx, billing.PaymentScope{
			HostelID:  filter.HostelID,
			Status:    &paidStatus,
			StartDate: filter.StartDate,
			EndDate:   filter.EndDate,
		})
		return err
	})

	g.Go(func() error {
		var err error
		totalExpenses, err = s.expenseRepo.SumAmount(gctx, billing.ExpenseScope{
			HostelID:  filter.HostelID,
			StartDate: filter.StartDate,
			EndDate:   filter.EndDate,
		})
		return err
	})

	// Bad debt is the sum of two independently scoped aggregates: pending
	// payment amounts (payment-level hostel scope) and tenant dues over
	// active allocations (allocation-level hostel scope). They stay separate
	// queries; merging them into one predicate would change the result.
	g.Go(func() error {
		var err error
		pendingSum, err = s.paymentRepo.SumAmount(gctx, billing.PaymentScope{
			HostelID:  filter.HostelID,
			Status:    &pendingStatus,
			StartDate: filter.StartDate,
			EndDate:   filter.EndDate,
		})
		return err
	})

	g.Go(func() error {
		var err error
		tenantDueSum, err = s.tenantRepo.SumDueForActiveAllocations(gctx, filter.HostelID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("financial summary aggregation failed", zap.Error(err))
		return nil, shared.ErrReportFailed
	}

	profitLoss := totalIncome.Sub(totalExpenses)
	badDebt := pendingSum.Add(tenantDueSum)

	resp := &FinancialSummaryResponse{
		TotalIncome:   round2(totalIncome),
		TotalExpenses: round2(totalExpenses),
		ProfitLoss:    round2(profitLoss),
		// zero profit/loss counts as profit
		IsProfit: !profitLoss.IsNegative(),
		BadDebt:  round2(badDebt),
	}

	s.cache.Set(ctx, cacheKey, resp, s.cacheTTL)

	return resp, nil
}

// round2 rounds half-up to two decimal places at the response boundary;
// everything upstream keeps full precision
func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
