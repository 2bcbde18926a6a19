package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AlertType represents what an alert is about
type AlertType string

const (
	AlertTypeBill        AlertType = "bill"
	AlertTypeRent        AlertType = "rent"
	AlertTypePayable     AlertType = "payable"
	AlertTypeReceivable  AlertType = "receivable"
	AlertTypeMaintenance AlertType = "maintenance"
)

// IsValid returns true if the type is a known alert type
func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeBill, AlertTypeRent, AlertTypePayable, AlertTypeReceivable, AlertTypeMaintenance:
		return true
	}
	return false
}

// AlertStatus represents the handling state of an alert
type AlertStatus string

const (
	AlertStatusOpen         AlertStatus = "open"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
)

// Alert represents an actionable reminder, usually money-related
// Bill alerts participate in the payables listing
type Alert struct {
	shared.BaseAggregateRoot
	HostelID uuid.UUID       `gorm:"type:uuid;not null;index"`
	TenantID *uuid.UUID      `gorm:"type:uuid;index"`
	Type     AlertType       `gorm:"type:varchar(20);not null;index"`
	Status   AlertStatus     `gorm:"type:varchar(20);not null;default:'open';index"`
	Title    string          `gorm:"type:varchar(200);not null"`
	Amount   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	DueDate  *time.Time
	Notes    string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Alert) TableName() string {
	return "alerts"
}

// NewAlert creates a new open alert
func NewAlert(hostelID uuid.UUID, alertType AlertType, title string, amount decimal.Decimal, dueDate *time.Time) (*Alert, error) {
	if hostelID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_HOSTEL_ID", "Hostel ID is required")
	}
	if !alertType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ALERT_TYPE", "Unknown alert type")
	}
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Alert title cannot be empty")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Alert amount cannot be negative")
	}

	return &Alert{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		HostelID:          hostelID,
		Type:              alertType,
		Status:            AlertStatusOpen,
		Title:             title,
		Amount:            amount,
		DueDate:           dueDate,
	}, nil
}

// Acknowledge moves an open alert to acknowledged
func (a *Alert) Acknowledge() error {
	if a.Status != AlertStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Only open alerts can be acknowledged")
	}

	a.Status = AlertStatusAcknowledged
	a.IncrementVersion()

	return nil
}

// Resolve closes an open or acknowledged alert
func (a *Alert) Resolve() error {
	if a.Status == AlertStatusResolved {
		return shared.NewDomainError("INVALID_STATE", "Alert is already resolved")
	}

	a.Status = AlertStatusResolved
	a.IncrementVersion()

	return nil
}

// IsOpen returns true if the alert still needs attention
func (a *Alert) IsOpen() bool {
	return a.Status != AlertStatusResolved
}
