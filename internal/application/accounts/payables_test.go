package accounts

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hostelops/backend/internal/domain/billing"
	"github.com/hostelops/backend/internal/domain/property"
	"github.com/hostelops/backend/internal/domain/reporting"
	"github.com/hostelops/backend/internal/domain/shared"
)

func makeExpense(t *testing.T, title string, amount float64, seq int64, daysAgo int) billing.Expense {
	t.Helper()
	e, err := billing.NewExpense(uuid.New(), title, "utility", decimal.NewFromFloat(amount), time.Now().AddDate(0, 0, -daysAgo))
	require.NoError(t, err)
	e.Sequence = seq
	return *e
}

func makeBillAlert(t *testing.T, title string, amount float64, seq int64) billing.Alert {
	t.Helper()
	a, err := billing.NewAlert(uuid.New(), billing.AlertTypeBill, title, decimal.NewFromFloat(amount), nil)
	require.NoError(t, err)
	a.Sequence = seq
	return *a
}

func TestListPayables_BillsMergesExpensesAndAlerts(t *testing.T) {
	svc, m := newReportService(t)

	expenses := []billing.Expense{
		makeExpense(t, "Electricity January", 42000, 3, 1),
		makeExpense(t, "Water tanker", 6000, 4, 5),
	}
	alerts := []billing.Alert{
		makeBillAlert(t, "Gas bill due", 9500.257, 11),
	}

	m.expenses.On("FindAllByScope", mock.Anything, mock.Anything).Return(expenses, nil)
	m.alerts.On("FindAllByType", mock.Anything, (*uuid.UUID)(nil), billing.AlertTypeBill).Return(alerts, nil)

	resp, err := svc.ListPayables(context.Background(), reporting.ReportFilter{}, reporting.PayableTypeBills, 1, 20)
	require.NoError(t, err)

	assert.Len(t, resp.Items, 3)
	assert.Equal(t, int64(3), resp.Total)
	// full-set total, rounded once at the boundary
	assert.InDelta(t, 57500.26, resp.TotalAmount, 0.001)

	refs := map[string]bool{}
	for _, it := range resp.Items {
		refs[it.Reference] = true
		assert.Equal(t, "bills", it.Type)
	}
	assert.True(t, refs["EXP-3"])
	assert.True(t, refs["EXP-4"])
	assert.True(t, refs["ALERT-11"])
}

func TestListPayables_UniformPagination(t *testing.T) {
	svc, m := newReportService(t)

	var expenses []billing.Expense
	for i := 0; i < 5; i++ {
		expenses = append(expenses, makeExpense(t, fmt.Sprintf("Expense %d", i), 100, int64(i+1), i))
	}

	m.expenses.On("FindAllByScope", mock.Anything, mock.Anything).Return(expenses, nil)
	m.alerts.On("FindAllByType", mock.Anything, (*uuid.UUID)(nil), billing.AlertTypeBill).Return([]billing.Alert{}, nil)

	resp, err := svc.ListPayables(context.Background(), reporting.ReportFilter{}, reporting.PayableTypeBills, 2, 2)
	require.NoError(t, err)

	// page 2 of 5 rows at 2 per page
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, int64(5), resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 3, resp.TotalPages)
	// total amount still covers the full filtered set
	assert.InDelta(t, 500, resp.TotalAmount, 0.001)
}

func TestListPayables_VendorBranch(t *testing.T) {
	svc, m := newReportService(t)
	hostelID := uuid.New()

	v1, err := property.NewVendor(hostelID, "Clean & Press", property.ServiceTypeLaundry)
	require.NoError(t, err)
	v1.Sequence = 9
	require.NoError(t, v1.AddPayable(decimal.NewFromFloat(30000)))
	require.NoError(t, v1.RecordPayout(decimal.NewFromFloat(10000)))

	v2, err := property.NewVendor(hostelID, "Mess Caterers", property.ServiceTypeFood)
	require.NoError(t, err)
	v2.Sequence = 12
	require.NoError(t, v2.AddPayable(decimal.NewFromFloat(55000)))

	m.vendors.On("FindAllActive", mock.Anything, (*uuid.UUID)(nil), "").
		Return([]property.Vendor{*v1, *v2}, nil)

	resp, err := svc.ListPayables(context.Background(), reporting.ReportFilter{}, reporting.PayableTypeVendor, 1, 20)
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	// amount is the accrued payable, with balance and paid alongside
	assert.Equal(t, "VENDOR-9", resp.Items[0].Reference)
	assert.Equal(t, "vendor", resp.Items[0].Type)
	assert.InDelta(t, 30000, resp.Items[0].Amount, 0.001)
	require.NotNil(t, resp.Items[0].Balance)
	assert.InDelta(t, 20000, *resp.Items[0].Balance, 0.001)
	require.NotNil(t, resp.Items[0].TotalPaid)
	assert.InDelta(t, 10000, *resp.Items[0].TotalPaid, 0.001)

	assert.InDelta(t, 85000, resp.TotalAmount, 0.001)
}

func TestListPayables_LaundryBranch(t *testing.T) {
	svc, m := newReportService(t)

	laundryExpense := makeExpense(t, "Bedsheet washing", 2500, 21, 2)
	laundryExpense.Category = "laundry"

	m.expenses.On("FindAllByScope", mock.Anything, mock.MatchedBy(func(s billing.ExpenseScope) bool {
		return s.Category != nil && *s.Category == "laundry"
	})).Return([]billing.Expense{laundryExpense}, nil)

	resp, err := svc.ListPayables(context.Background(), reporting.ReportFilter{}, reporting.PayableTypeLaundry, 1, 20)
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "laundry", resp.Items[0].Type)
	assert.Equal(t, "EXP-21", resp.Items[0].Reference)
	assert.InDelta(t, 2500, resp.TotalAmount, 0.001)
}

func TestListPayables_QueryFailure(t *testing.T) {
	svc, m := newReportService(t)

	m.expenses.On("FindAllByScope", mock.Anything, mock.Anything).
		Return(nil, errors.New("relation missing"))
	m.alerts.On("FindAllByType", mock.Anything, (*uuid.UUID)(nil), billing.AlertTypeBill).
		Return([]billing.Alert{}, nil)

	resp, err := svc.ListPayables(context.Background(), reporting.ReportFilter{}, reporting.PayableTypeBills, 1, 20)
	assert.Nil(t, resp)
	assert.Equal(t, shared.ErrReportFailed, err)
}
