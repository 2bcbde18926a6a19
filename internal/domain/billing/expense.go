package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Expense represents money spent running a hostel
// Category is free text (utility, maintenance, laundry, salary, ...)
type Expense struct {
	shared.BaseAggregateRoot
	HostelID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title       string          `gorm:"type:varchar(200);not null"`
	Category    string          `gorm:"type:varchar(50);index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Date        time.Time       `gorm:"not null;index"`
	VendorID    *uuid.UUID      `gorm:"type:uuid;index"` // Set when the expense settles a vendor bill
	Description string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates a new expense record
func NewExpense(hostelID uuid.UUID, title, category string, amount decimal.Decimal, date time.Time) (*Expense, error) {
	if hostelID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_HOSTEL_ID", "Hostel ID is required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Expense title cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be positive")
	}

	return &Expense{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		HostelID:          hostelID,
		Title:             title,
		Category:          strings.ToLower(strings.TrimSpace(category)),
		Amount:            amount,
		Date:              date,
	}, nil
}

// Update updates the expense's details
func (e *Expense) Update(title, category string, amount decimal.Decimal, date time.Time, description string) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewDomainError("INVALID_TITLE", "Expense title cannot be empty")
	}
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be positive")
	}

	e.Title = title
	e.Category = strings.ToLower(strings.TrimSpace(category))
	e.Amount = amount
	e.Date = date
	e.Description = description
	e.IncrementVersion()

	return nil
}

// AttachVendor links the expense to the vendor bill it settles
func (e *Expense) AttachVendor(vendorID uuid.UUID) error {
	if vendorID == uuid.Nil {
		return shared.NewDomainError("INVALID_VENDOR_ID", "Vendor ID is required")
	}

	e.VendorID = &vendorID
	e.IncrementVersion()

	return nil
}

// IsLaundry returns true if the expense category contains "laundry"
func (e *Expense) IsLaundry() bool {
	return strings.Contains(e.Category, "laundry")
}
