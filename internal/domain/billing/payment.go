package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the recorded status of a payment
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// IsValid returns true if the status is a known payment status
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusPartial, PaymentStatusOverdue:
		return true
	}
	return false
}

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash      PaymentMethod = "cash"
	PaymentMethodBank      PaymentMethod = "bank_transfer"
	PaymentMethodEasypaisa PaymentMethod = "easypaisa"
	PaymentMethodJazzcash  PaymentMethod = "jazzcash"
	PaymentMethodOther     PaymentMethod = "other"
)

// Payment represents money expected from or received from a tenant
// PaymentType is free text (rent, deposit, advance, ...); classification
// into receivable/payable buckets happens in the reporting package
type Payment struct {
	shared.BaseAggregateRoot
	HostelID uuid.UUID       `gorm:"type:uuid;not null;index"`
	TenantID *uuid.UUID      `gorm:"type:uuid;index"`
	Amount   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	// AmountPaid tracks the received portion of a partial payment
	AmountPaid    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status        PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentType   string          `gorm:"type:varchar(50);index"`
	Method        PaymentMethod   `gorm:"type:varchar(20)"`
	ReceiptNumber *string         `gorm:"type:varchar(50);uniqueIndex"`
	// PaymentDate is the agreed due/settlement date; nil falls back to CreatedAt
	PaymentDate *time.Time `gorm:"index"`
	Description string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment creates a new pending payment
func NewPayment(hostelID uuid.UUID, tenantID *uuid.UUID, amount decimal.Decimal, paymentType string, paymentDate *time.Time) (*Payment, error) {
	if hostelID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_HOSTEL_ID", "Hostel ID is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}

	return &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		HostelID:          hostelID,
		TenantID:          tenantID,
		Amount:            amount,
		AmountPaid:        decimal.Zero,
		Status:            PaymentStatusPending,
		PaymentType:       paymentType,
		PaymentDate:       paymentDate,
	}, nil
}

// MarkPaid settles the payment in full
func (p *Payment) MarkPaid(method PaymentMethod, receiptNumber *string, paidAt time.Time) error {
	if p.Status == PaymentStatusPaid {
		return shared.NewDomainError("INVALID_STATE", "Payment is already paid")
	}

	p.AmountPaid = p.Amount
	p.Method = method
	p.ReceiptNumber = receiptNumber
	p.PaymentDate = &paidAt
	p.Status = PaymentStatusPaid
	p.IncrementVersion()

	return nil
}

// RecordPartial records a partial settlement
// Paying the full remainder settles the payment instead
func (p *Payment) RecordPartial(amount decimal.Decimal, method PaymentMethod, paidAt time.Time) error {
	if p.Status == PaymentStatusPaid {
		return shared.NewDomainError("INVALID_STATE", "Payment is already paid")
	}
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Partial amount must be positive")
	}
	if p.AmountPaid.Add(amount).GreaterThan(p.Amount) {
		return shared.NewDomainError("INVALID_AMOUNT", "Partial amount exceeds the outstanding balance")
	}

	p.AmountPaid = p.AmountPaid.Add(amount)
	p.Method = method
	if p.AmountPaid.Equal(p.Amount) {
		p.Status = PaymentStatusPaid
		p.PaymentDate = &paidAt
	} else {
		p.Status = PaymentStatusPartial
	}
	p.IncrementVersion()

	return nil
}

// MarkOverdue flags the payment as overdue
func (p *Payment) MarkOverdue() error {
	if p.Status == PaymentStatusPaid {
		return shared.NewDomainError("INVALID_STATE", "A paid payment cannot be overdue")
	}

	p.Status = PaymentStatusOverdue
	p.IncrementVersion()

	return nil
}

// Outstanding returns the unpaid portion
func (p *Payment) Outstanding() decimal.Decimal {
	return p.Amount.Sub(p.AmountPaid)
}

// DueDate returns the effective due date: PaymentDate when set, else CreatedAt
func (p *Payment) DueDate() time.Time {
	if p.PaymentDate != nil {
		return *p.PaymentDate
	}
	return p.CreatedAt
}
