package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentScope narrows payment aggregate queries
// Nil fields mean "no constraint on this dimension"
type PaymentScope struct {
	HostelID  *uuid.UUID
	TenantID  *uuid.UUID
	Status    *PaymentStatus
	StartDate *time.Time
	EndDate   *time.Time
}

// ExpenseScope narrows expense queries
type ExpenseScope struct {
	HostelID  *uuid.UUID
	Category  *string // case-insensitive substring match
	Search    *string // matches title or category
	StartDate *time.Time
	EndDate   *time.Time
}

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	// FindByID finds a payment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)

	// FindByReceiptNumber finds a payment by its receipt number
	FindByReceiptNumber(ctx context.Context, receiptNumber string) (*Payment, error)

	// FindAll finds payments matching the scope and filter
	FindAll(ctx context.Context, scope PaymentScope, filter shared.Filter) ([]Payment, error)

	// FindOutstanding finds payments whose stored status is pending, partial
	// or overdue, matching the scope
	FindOutstanding(ctx context.Context, scope PaymentScope, filter shared.Filter) ([]Payment, error)

	// CountOutstanding counts payments with an unsettled stored status
	CountOutstanding(ctx context.Context, scope PaymentScope) (int64, error)

	// SumAmount sums Amount over payments matching the scope
	SumAmount(ctx context.Context, scope PaymentScope) (decimal.Decimal, error)

	// SumOutstanding sums the unpaid portion (amount - amount_paid) over
	// payments with an unsettled stored status matching the scope
	SumOutstanding(ctx context.Context, scope PaymentScope) (decimal.Decimal, error)

	// Save creates or updates a payment
	Save(ctx context.Context, payment *Payment) error

	// Delete deletes a payment
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts payments matching the scope
	Count(ctx context.Context, scope PaymentScope) (int64, error)
}

// ExpenseRepository defines the interface for expense persistence
type ExpenseRepository interface {
	// FindByID finds an expense by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)

	// FindAll finds expenses matching the scope and filter
	FindAll(ctx context.Context, scope ExpenseScope, filter shared.Filter) ([]Expense, error)

	// FindAllByScope finds every expense matching the scope, unpaged,
	// newest first. Used by report listings that paginate after merging
	FindAllByScope(ctx context.Context, scope ExpenseScope) ([]Expense, error)

	// SumAmount sums Amount over expenses matching the scope
	SumAmount(ctx context.Context, scope ExpenseScope) (decimal.Decimal, error)

	// Save creates or updates an expense
	Save(ctx context.Context, expense *Expense) error

	// Delete deletes an expense
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts expenses matching the scope
	Count(ctx context.Context, scope ExpenseScope) (int64, error)
}

// AlertRepository defines the interface for alert persistence
type AlertRepository interface {
	// FindByID finds an alert by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Alert, error)

	// FindAll finds alerts matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Alert, error)

	// FindByType finds alerts of a type, optionally scoped to a hostel
	FindByType(ctx context.Context, hostelID *uuid.UUID, alertType AlertType, filter shared.Filter) ([]Alert, error)

	// FindAllByType finds every unresolved alert of a type matching the
	// hostel scope, unpaged, newest first
	FindAllByType(ctx context.Context, hostelID *uuid.UUID, alertType AlertType) ([]Alert, error)

	// FindOpen finds unresolved alerts, optionally scoped to a hostel
	FindOpen(ctx context.Context, hostelID *uuid.UUID, filter shared.Filter) ([]Alert, error)

	// SumAmountByType sums Amount over alerts of a type, optionally scoped
	// to a hostel
	SumAmountByType(ctx context.Context, hostelID *uuid.UUID, alertType AlertType) (decimal.Decimal, error)

	// Save creates or updates an alert
	Save(ctx context.Context, alert *Alert) error

	// Delete deletes an alert
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts alerts matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountOpen counts unresolved alerts, optionally scoped to a hostel
	CountOpen(ctx context.Context, hostelID *uuid.UUID) (int64, error)
}

// CampaignRepository defines the interface for campaign persistence
type CampaignRepository interface {
	// FindByID finds a campaign by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Campaign, error)

	// FindAll finds campaigns matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Campaign, error)

	// FindByHostel finds campaigns for a hostel
	FindByHostel(ctx context.Context, hostelID uuid.UUID, filter shared.Filter) ([]Campaign, error)

	// FindDueForStart finds scheduled campaigns whose scheduled time has passed
	FindDueForStart(ctx context.Context, now time.Time) ([]Campaign, error)

	// Save creates or updates a campaign
	Save(ctx context.Context, campaign *Campaign) error

	// Delete deletes a campaign
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts campaigns matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
