package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayment(t *testing.T) *Payment {
	t.Helper()
	p, err := NewPayment(uuid.New(), nil, decimal.NewFromFloat(18000), "rent", nil)
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	hostelID := uuid.New()
	tenantID := uuid.New()

	p, err := NewPayment(hostelID, &tenantID, decimal.NewFromFloat(18000), "rent", nil)
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusPending, p.Status)
	assert.True(t, p.AmountPaid.IsZero())
	assert.Equal(t, "rent", p.PaymentType)

	_, err = NewPayment(uuid.Nil, nil, decimal.NewFromFloat(100), "rent", nil)
	assert.Error(t, err)

	_, err = NewPayment(hostelID, nil, decimal.Zero, "rent", nil)
	assert.Error(t, err)

	_, err = NewPayment(hostelID, nil, decimal.NewFromFloat(-5), "rent", nil)
	assert.Error(t, err)
}

func TestPayment_MarkPaid(t *testing.T) {
	p := newTestPayment(t)
	receipt := "RCPT-1001"
	paidAt := time.Now()

	require.NoError(t, p.MarkPaid(PaymentMethodCash, &receipt, paidAt))
	assert.Equal(t, PaymentStatusPaid, p.Status)
	assert.True(t, p.Outstanding().IsZero())
	require.NotNil(t, p.ReceiptNumber)
	assert.Equal(t, "RCPT-1001", *p.ReceiptNumber)

	err := p.MarkPaid(PaymentMethodCash, nil, paidAt)
	assert.Error(t, err)
}

func TestPayment_RecordPartial(t *testing.T) {
	p := newTestPayment(t)

	require.NoError(t, p.RecordPartial(decimal.NewFromFloat(8000), PaymentMethodEasypaisa, time.Now()))
	assert.Equal(t, PaymentStatusPartial, p.Status)
	assert.True(t, p.Outstanding().Equal(decimal.NewFromFloat(10000)))

	// overpayment rejected
	err := p.RecordPartial(decimal.NewFromFloat(10001), PaymentMethodCash, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")

	// paying the remainder settles the payment
	require.NoError(t, p.RecordPartial(decimal.NewFromFloat(10000), PaymentMethodCash, time.Now()))
	assert.Equal(t, PaymentStatusPaid, p.Status)
	assert.True(t, p.Outstanding().IsZero())
}

func TestPayment_MarkOverdue(t *testing.T) {
	p := newTestPayment(t)
	require.NoError(t, p.MarkOverdue())
	assert.Equal(t, PaymentStatusOverdue, p.Status)

	// partial payments can still go overdue
	p2 := newTestPayment(t)
	require.NoError(t, p2.RecordPartial(decimal.NewFromFloat(100), PaymentMethodCash, time.Now()))
	require.NoError(t, p2.MarkOverdue())

	// paid payments cannot
	p3 := newTestPayment(t)
	require.NoError(t, p3.MarkPaid(PaymentMethodCash, nil, time.Now()))
	err := p3.MarkOverdue()
	assert.Error(t, err)
}

func TestPayment_DueDate(t *testing.T) {
	p := newTestPayment(t)
	assert.Equal(t, p.CreatedAt, p.DueDate())

	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	p.PaymentDate = &due
	assert.Equal(t, due, p.DueDate())
}
