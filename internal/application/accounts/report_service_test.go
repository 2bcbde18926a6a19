package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hostelops/backend/internal/domain/billing"
	"github.com/hostelops/backend/internal/domain/reporting"
	"github.com/hostelops/backend/internal/domain/shared"
)

type reportMocks struct {
	payments *MockPaymentRepository
	expenses *MockExpenseRepository
	alerts   *MockAlertRepository
	vendors  *MockVendorRepository
	tenants  *MockTenantRepository
}

func newReportService(t *testing.T) (*FinancialReportService, *reportMocks) {
	t.Helper()
	m := &reportMocks{
		payments: new(MockPaymentRepository),
		expenses: new(MockExpenseRepository),
		alerts:   new(MockAlertRepository),
		vendors:  new(MockVendorRepository),
		tenants:  new(MockTenantRepository),
	}
	svc := NewFinancialReportService(
		m.payments, m.expenses, m.alerts, m.vendors, m.tenants,
		nil, zap.NewNop(),
	)
	return svc, m
}

func scopeWithStatus(status billing.PaymentStatus) any {
	return mock.MatchedBy(func(s billing.PaymentScope) bool {
		return s.Status != nil && *s.Status == status
	})
}

func TestGetFinancialSummary(t *testing.T) {
	svc, m := newReportService(t)

	m.payments.On("SumAmount", mock.Anything, scopeWithStatus(billing.PaymentStatusPaid)).
		Return(decimal.NewFromFloat(120000.505), nil)
	m.expenses.On("SumAmount", mock.Anything, mock.Anything).
		Return(decimal.NewFromFloat(45000), nil)
	m.payments.On("SumAmount", mock.Anything, scopeWithStatus(billing.PaymentStatusPending)).
		Return(decimal.NewFromFloat(8000), nil)
	m.tenants.On("SumDueForActiveAllocations", mock.Anything, (*uuid.UUID)(nil)).
		Return(decimal.NewFromFloat(12000), nil)

	resp, err := svc.GetFinancialSummary(context.Background(), reporting.ReportFilter{})
	require.NoError(t, err)

	assert.InDelta(t, 120000.51, resp.TotalIncome, 0.001)
	assert.InDelta(t, 45000, resp.TotalExpenses, 0.001)
	assert.InDelta(t, 75000.51, resp.ProfitLoss, 0.001)
	assert.True(t, resp.IsProfit)
	// bad debt = pending payments + tenant dues over active allocations
	assert.InDelta(t, 20000, resp.BadDebt, 0.001)
}

func TestGetFinancialSummary_ZeroProfitLossIsProfit(t *testing.T) {
	svc, m := newReportService(t)

	m.payments.On("SumAmount", mock.Anything, scopeWithStatus(billing.PaymentStatusPaid)).
		Return(decimal.NewFromFloat(50000), nil)
	m.expenses.On("SumAmount", mock.Anything, mock.Anything).
		Return(decimal.NewFromFloat(50000), nil)
	m.payments.On("SumAmount", mock.Anything, scopeWithStatus(billing.PaymentStatusPending)).
		Return(decimal.Zero, nil)
	m.tenants.On("SumDueForActiveAllocations", mock.Anything, (*uuid.UUID)(nil)).
		Return(decimal.Zero, nil)

	resp, err := svc.GetFinancialSummary(context.Background(), reporting.ReportFilter{})
	require.NoError(t, err)

	assert.Zero(t, resp.ProfitLoss)
	assert.True(t, resp.IsProfit)
}

func TestGetFinancialSummary_Loss(t *testing.T) {
	svc, m := newReportService(t)

	m.payments.On("SumAmount", mock.Anything, scopeWithStatus(billing.PaymentStatusPaid)).
		Return(decimal.NewFromFloat(30000), nil)
	m.expenses.On("SumAmount", mock.Anything, mock.Anything).
		Return(decimal.NewFromFloat(42000), nil)
	m.payments.On("SumAmount", mock.Anything, scopeWithStatus(billing.PaymentStatusPending)).
		Return(decimal.Zero, nil)
	m.tenants.On("SumDueForActiveAllocations", mock.Anything, (*uuid.UUID)(nil)).
		Return(decimal.Zero, nil)

	resp, err := svc.GetFinancialSummary(context.Background(), reporting.ReportFilter{})
	require.NoError(t, err)

	assert.InDelta(t, -12000, resp.ProfitLoss, 0.001)
	assert.False(t, resp.IsProfit)
}

func TestGetFinancialSummary_HostelScopePropagates(t *testing.T) {
	svc, m := newReportService(t)
	hostelID := uuid.New()
	filter := reporting.BuildReportFilter(hostelID.String(), "", "", "")

	m.payments.On("SumAmount", mock.Anything, mock.MatchedBy(func(s billing.PaymentScope) bool {
		return s.HostelID != nil && *s.HostelID == hostelID
	})).Return(decimal.Zero, nil).Twice()
	m.expenses.On("SumAmount", mock.Anything, mock.MatchedBy(func(s billing.ExpenseScope) bool {
		return s.HostelID != nil && *s.HostelID == hostelID
	})).Return(decimal.Zero, nil)
	m.tenants.On("SumDueForActiveAllocations", mock.Anything, mock.MatchedBy(func(id *uuid.UUID) bool {
		return id != nil && *id == hostelID
	})).Return(decimal.Zero, nil)

	_, err := svc.GetFinancialSummary(context.Background(), filter)
	require.NoError(t, err)
	m.payments.AssertExpectations(t)
	m.tenants.AssertExpectations(t)
}

func TestGetFinancialSummary_AllOrNothing(t *testing.T) {
	svc, m := newReportService(t)

	m.payments.On("SumAmount", mock.Anything, mock.Anything).
		Return(decimal.NewFromFloat(100), nil)
	m.expenses.On("SumAmount", mock.Anything, mock.Anything).
		Return(decimal.Zero, errors.New("connection reset"))
	m.tenants.On("SumDueForActiveAllocations", mock.Anything, (*uuid.UUID)(nil)).
		Return(decimal.Zero, nil)

	resp, err := svc.GetFinancialSummary(context.Background(), reporting.ReportFilter{})
	assert.Nil(t, resp)
	require.Error(t, err)
	// a single generic failure, no partial figures
	assert.Equal(t, shared.ErrReportFailed, err)
}
