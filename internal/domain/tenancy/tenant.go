package tenancy

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TenantStatus represents the status of a tenant
type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "active"
	TenantStatusInactive TenantStatus = "inactive" // Moved out
)

// AllocationStatus represents the status of a room allocation
type AllocationStatus string

const (
	AllocationStatusActive   AllocationStatus = "active"
	AllocationStatusInactive AllocationStatus = "inactive" // Vacated
)

var cnicRegex = regexp.MustCompile(`^\d{5}-\d{7}-\d$`)

// Tenant represents a resident renting a bed in a hostel
// TotalDue is the running unpaid balance maintained by payment recording
type Tenant struct {
	shared.BaseAggregateRoot
	Name        string          `gorm:"type:varchar(200);not null"`
	Email       string          `gorm:"type:varchar(200);index"`
	Phone       string          `gorm:"type:varchar(50);index"`
	CNIC        string          `gorm:"type:varchar(20);uniqueIndex"` // National identity card number
	Status      TenantStatus    `gorm:"type:varchar(20);not null;default:'active'"`
	TotalDue    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Guardian    string          `gorm:"type:varchar(200)"` // Emergency contact
	Notes       string          `gorm:"type:text"`
	Allocations []Allocation    `gorm:"foreignKey:TenantID"`
}

// TableName returns the table name for GORM
func (Tenant) TableName() string {
	return "tenants"
}

// Allocation represents a tenant's assignment to a room in a hostel
type Allocation struct {
	shared.BaseEntity
	TenantID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	HostelID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	RoomNumber string           `gorm:"type:varchar(20);not null"`
	Status     AllocationStatus `gorm:"type:varchar(20);not null;default:'active'"`
	StartDate  time.Time        `gorm:"not null"`
	EndDate    *time.Time
}

// TableName returns the table name for GORM
func (Allocation) TableName() string {
	return "allocations"
}

// IsActive returns true if the allocation is active
func (a *Allocation) IsActive() bool {
	return a.Status == AllocationStatusActive
}

// NewTenant creates a new tenant with required fields
func NewTenant(name, phone, cnic string) (*Tenant, error) {
	if err := validateTenantName(name); err != nil {
		return nil, err
	}
	if cnic != "" && !cnicRegex.MatchString(cnic) {
		return nil, shared.NewDomainError("INVALID_CNIC", "CNIC must match 00000-0000000-0")
	}

	return &Tenant{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Phone:             phone,
		CNIC:              cnic,
		Status:            TenantStatusActive,
		TotalDue:          decimal.Zero,
	}, nil
}

// Update updates the tenant's basic information
func (t *Tenant) Update(name, email, phone, guardian string) error {
	if err := validateTenantName(name); err != nil {
		return err
	}

	t.Name = name
	t.Email = email
	t.Phone = phone
	t.Guardian = guardian
	t.IncrementVersion()

	return nil
}

// AddDue increases the tenant's unpaid balance
func (t *Tenant) AddDue(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Due amount cannot be negative")
	}

	t.TotalDue = t.TotalDue.Add(amount)
	t.IncrementVersion()

	return nil
}

// SettleDue reduces the tenant's unpaid balance by the paid amount
func (t *Tenant) SettleDue(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Settlement amount cannot be negative")
	}
	if amount.GreaterThan(t.TotalDue) {
		return shared.NewDomainError("INVALID_AMOUNT", "Settlement amount exceeds total due")
	}

	t.TotalDue = t.TotalDue.Sub(amount)
	t.IncrementVersion()

	return nil
}

// HasDue returns true if the tenant owes money
func (t *Tenant) HasDue() bool {
	return t.TotalDue.IsPositive()
}

// Allocate assigns the tenant to a room in a hostel
// A tenant can hold at most one active allocation at a time
func (t *Tenant) Allocate(hostelID uuid.UUID, roomNumber string, startDate time.Time) (*Allocation, error) {
	if hostelID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_HOSTEL_ID", "Hostel ID is required")
	}
	if strings.TrimSpace(roomNumber) == "" {
		return nil, shared.NewDomainError("INVALID_ROOM", "Room number cannot be empty")
	}
	if t.ActiveAllocation() != nil {
		return nil, shared.NewDomainError("ALLOCATION_EXISTS", "Tenant already has an active allocation")
	}

	alloc := Allocation{
		BaseEntity: shared.NewBaseEntity(),
		TenantID:   t.ID,
		HostelID:   hostelID,
		RoomNumber: roomNumber,
		Status:     AllocationStatusActive,
		StartDate:  startDate,
	}
	t.Allocations = append(t.Allocations, alloc)
	t.IncrementVersion()

	return &t.Allocations[len(t.Allocations)-1], nil
}

// Vacate ends the tenant's active allocation
func (t *Tenant) Vacate(endDate time.Time) error {
	for i := range t.Allocations {
		if t.Allocations[i].IsActive() {
			t.Allocations[i].Status = AllocationStatusInactive
			t.Allocations[i].EndDate = &endDate
			t.Allocations[i].Touch()
			t.IncrementVersion()
			return nil
		}
	}
	return shared.NewDomainError("NO_ALLOCATION", "Tenant has no active allocation")
}

// ActiveAllocation returns the tenant's active allocation, or nil
func (t *Tenant) ActiveAllocation() *Allocation {
	for i := range t.Allocations {
		if t.Allocations[i].IsActive() {
			return &t.Allocations[i]
		}
	}
	return nil
}

// Deactivate marks the tenant as moved out
func (t *Tenant) Deactivate() error {
	if t.ActiveAllocation() != nil {
		return shared.NewDomainError("ALLOCATION_EXISTS", "Vacate the active allocation before deactivating")
	}

	t.Status = TenantStatusInactive
	t.IncrementVersion()

	return nil
}

func validateTenantName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_TENANT_NAME", "Tenant name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_TENANT_NAME", "Tenant name cannot exceed 200 characters")
	}
	return nil
}
