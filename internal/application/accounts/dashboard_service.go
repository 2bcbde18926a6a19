package accounts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hostelops/backend/internal/domain/billing"
	"github.com/hostelops/backend/internal/domain/property"
	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/hostelops/backend/internal/domain/tenancy"
)

const defaultTrendMonths = 6

// DashboardService aggregates the operator's landing-page statistics
type DashboardService struct {
	hostelRepo  property.HostelRepository
	tenantRepo  tenancy.TenantRepository
	bookingRepo tenancy.BookingRepository
	paymentRepo billing.PaymentRepository
	expenseRepo billing.ExpenseRepository
	alertRepo   billing.AlertRepository
	trendMonths int
	logger      *zap.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	hostelRepo property.HostelRepository,
	tenantRepo tenancy.TenantRepository,
	bookingRepo tenancy.BookingRepository,
	paymentRepo billing.PaymentRepository,
	expenseRepo billing.ExpenseRepository,
	alertRepo billing.AlertRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		hostelRepo:  hostelRepo,
		tenantRepo:  tenantRepo,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
		alertRepo:   alertRepo,
		trendMonths: defaultTrendMonths,
		logger:      logger,
	}
}

// SetTrendMonths overrides how many months the income/expense trend spans
func (s *DashboardService) SetTrendMonths(months int) {
	if months > 0 {
		s.trendMonths = months
	}
}

// MonthlyTrendPoint is one month of the income/expense trend
type MonthlyTrendPoint struct {
	Month    string  `json:"month"` // e.g. "Mar 2026"
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// DashboardStatsResponse is the shaped dashboard payload
type DashboardStatsResponse struct {
	ActiveHostels   int64               `json:"active_hostels"`
	TotalBeds       int64               `json:"total_beds"`
	OccupiedBeds    int64               `json:"occupied_beds"`
	OccupancyRate   float64             `json:"occupancy_rate"` // percentage, 2 dp
	ActiveTenants   int64               `json:"active_tenants"`
	PendingBookings int64               `json:"pending_bookings"`
	OpenAlerts      int64               `json:"open_alerts"`
	MonthlyTrend    []MonthlyTrendPoint `json:"monthly_trend"`
}

// GetDashboardStats aggregates occupancy, tenancy and alert counts plus a
// six month income/expense trend, optionally scoped to one hostel.
// The counters run concurrently; any failure fails the whole payload.
func (s *DashboardService) GetDashboardStats(ctx context.Context, hostelID *uuid.UUID) (*DashboardStatsResponse, error) {
	var (
		activeHostels   int64
		totalBeds       int64
		occupiedBeds    int64
		activeTenants   int64
		pendingBookings int64
		openAlerts      int64
		trend           []MonthlyTrendPoint
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		activeHostels, err = s.hostelRepo.CountActive(gctx, hostelID)
		return err
	})

	g.Go(func() error {
		_, beds, err := s.hostelRepo.SumCapacity(gctx, hostelID)
		totalBeds = beds
		return err
	})

	g.Go(func() error {
		var err error
		occupiedBeds, err = s.tenantRepo.CountActiveAllocations(gctx, hostelID)
		return err
	})

	g.Go(func() error {
		var err error
		if hostelID != nil {
			activeTenants, err = s.tenantRepo.CountActiveByHostel(gctx, *hostelID)
		} else {
			activeTenants, err = s.tenantRepo.CountActiveAllocations(gctx, nil)
		}
		return err
	})

	g.Go(func() error {
		var err error
		pendingBookings, err = s.bookingRepo.CountByStatus(gctx, hostelID, tenancy.BookingStatusPending)
		return err
	})

	g.Go(func() error {
		var err error
		openAlerts, err = s.alertRepo.CountOpen(gctx, hostelID)
		return err
	})

	g.Go(func() error {
		var err error
		trend, err = s.monthlyTrend(gctx, hostelID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("dashboard aggregation failed", zap.Error(err))
		return nil, shared.ErrReportFailed
	}

	occupancy := decimal.Zero
	if totalBeds > 0 {
		occupancy = decimal.NewFromInt(occupiedBeds).
			Div(decimal.NewFromInt(totalBeds)).
			Mul(decimal.NewFromInt(100))
	}

	return &DashboardStatsResponse{
		ActiveHostels:   activeHostels,
		TotalBeds:       totalBeds,
		OccupiedBeds:    occupiedBeds,
		OccupancyRate:   round2(occupancy),
		ActiveTenants:   activeTenants,
		PendingBookings: pendingBookings,
		OpenAlerts:      openAlerts,
		MonthlyTrend:    trend,
	}, nil
}

// monthlyTrend sums paid income and expenses per calendar month for the
// configured number of months, oldest first
func (s *DashboardService) monthlyTrend(ctx context.Context, hostelID *uuid.UUID) ([]MonthlyTrendPoint, error) {
	paid := billing.PaymentStatusPaid
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	months := s.trendMonths
	points := make([]MonthlyTrendPoint, months)
	g, gctx := errgroup.WithContext(ctx)

	for i := 0; i < months; i++ {
		start := firstOfMonth.AddDate(0, i-months+1, 0)
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
		idx := i

		g.Go(func() error {
			income, err := s.paymentRepo.SumAmount(gctx, billing.PaymentScope{
				HostelID:  hostelID,
				Status:    &paid,
				StartDate: &start,
				EndDate:   &end,
			})
			if err != nil {
				return err
			}
			expenses, err := s.expenseRepo.SumAmount(gctx, billing.ExpenseScope{
				HostelID:  hostelID,
				StartDate: &start,
				EndDate:   &end,
			})
			if err != nil {
				return err
			}

			points[idx] = MonthlyTrendPoint{
				Month:    start.Format("Jan 2006"),
				Income:   round2(income),
				Expenses: round2(expenses),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}
