package property

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// VendorStatus represents the status of a vendor
type VendorStatus string

const (
	VendorStatusActive   VendorStatus = "active"
	VendorStatusInactive VendorStatus = "inactive"
)

// ServiceType represents the service a vendor provides
type ServiceType string

const (
	ServiceTypeLaundry     ServiceType = "laundry"
	ServiceTypeFood        ServiceType = "food"
	ServiceTypeMaintenance ServiceType = "maintenance"
	ServiceTypeUtility     ServiceType = "utility"
	ServiceTypeOther       ServiceType = "other"
)

// Vendor represents an external service provider attached to a hostel
// It carries a running payable ledger: TotalPayable accrues as work is
// billed, TotalPaid accrues as payouts are made
type Vendor struct {
	shared.BaseAggregateRoot
	HostelID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(200);not null"`
	CompanyName  string          `gorm:"type:varchar(200)"`
	ServiceType  ServiceType     `gorm:"type:varchar(20);not null;default:'other'"`
	Status       VendorStatus    `gorm:"type:varchar(20);not null;default:'active'"`
	Phone        string          `gorm:"type:varchar(50);index"`
	Email        string          `gorm:"type:varchar(200)"`
	Address      string          `gorm:"type:text"`
	TotalPayable decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalPaid    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Notes        string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Vendor) TableName() string {
	return "vendors"
}

// NewVendor creates a new vendor with required fields
func NewVendor(hostelID uuid.UUID, name string, serviceType ServiceType) (*Vendor, error) {
	if hostelID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_HOSTEL_ID", "Hostel ID is required")
	}
	if err := validateVendorName(name); err != nil {
		return nil, err
	}
	if err := validateServiceType(serviceType); err != nil {
		return nil, err
	}

	return &Vendor{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		HostelID:          hostelID,
		Name:              name,
		ServiceType:       serviceType,
		Status:            VendorStatusActive,
		TotalPayable:      decimal.Zero,
		TotalPaid:         decimal.Zero,
	}, nil
}

// Update updates the vendor's basic information
func (v *Vendor) Update(name, companyName, phone, email, address string) error {
	if err := validateVendorName(name); err != nil {
		return err
	}
	if companyName != "" && len(companyName) > 200 {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot exceed 200 characters")
	}

	v.Name = name
	v.CompanyName = companyName
	v.Phone = phone
	v.Email = email
	v.Address = address
	v.IncrementVersion()

	return nil
}

// Balance returns the outstanding amount owed to the vendor
func (v *Vendor) Balance() decimal.Decimal {
	return v.TotalPayable.Sub(v.TotalPaid)
}

// AddPayable accrues a billed amount onto the vendor's ledger
func (v *Vendor) AddPayable(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Payable amount cannot be negative")
	}

	v.TotalPayable = v.TotalPayable.Add(amount)
	v.IncrementVersion()

	return nil
}

// RecordPayout records a payout made to the vendor
func (v *Vendor) RecordPayout(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Payout amount cannot be negative")
	}
	if v.TotalPaid.Add(amount).GreaterThan(v.TotalPayable) {
		return shared.NewDomainError("INVALID_AMOUNT", "Payout exceeds outstanding balance")
	}

	v.TotalPaid = v.TotalPaid.Add(amount)
	v.IncrementVersion()

	return nil
}

// HasBalance returns true if the vendor is owed money
func (v *Vendor) HasBalance() bool {
	return v.Balance().IsPositive()
}

// IsActive returns true if the vendor is active
func (v *Vendor) IsActive() bool {
	return v.Status == VendorStatusActive
}

// Activate marks the vendor as active
func (v *Vendor) Activate() {
	v.Status = VendorStatusActive
	v.IncrementVersion()
}

// Deactivate marks the vendor as inactive
func (v *Vendor) Deactivate() {
	v.Status = VendorStatusInactive
	v.IncrementVersion()
}

func validateVendorName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_VENDOR_NAME", "Vendor name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_VENDOR_NAME", "Vendor name cannot exceed 200 characters")
	}
	return nil
}

func validateServiceType(s ServiceType) error {
	switch s {
	case ServiceTypeLaundry, ServiceTypeFood, ServiceTypeMaintenance, ServiceTypeUtility, ServiceTypeOther:
		return nil
	default:
		return shared.NewDomainError("INVALID_SERVICE_TYPE", "Unknown service type")
	}
}
