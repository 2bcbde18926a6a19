package property

import (
	"strings"

	"github.com/hostelops/backend/internal/domain/shared"
)

// HostelStatus represents the operational status of a hostel
type HostelStatus string

const (
	HostelStatusActive   HostelStatus = "active"
	HostelStatusInactive HostelStatus = "inactive" // Closed for renovation or offboarded
)

// HostelType represents the kind of residents a hostel accepts
type HostelType string

const (
	HostelTypeBoys  HostelType = "boys"
	HostelTypeGirls HostelType = "girls"
	HostelTypeMixed HostelType = "mixed"
)

// Hostel represents a managed property
// It is the aggregate root for property-related operations
type Hostel struct {
	shared.BaseAggregateRoot
	Name        string       `gorm:"type:varchar(200);not null"`
	Type        HostelType   `gorm:"type:varchar(20);not null;default:'boys'"`
	Status      HostelStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Address     string       `gorm:"type:text"`
	City        string       `gorm:"type:varchar(100)"`
	Phone       string       `gorm:"type:varchar(50)"`
	ManagerName string       `gorm:"type:varchar(100)"` // On-site manager
	TotalRooms  int          `gorm:"not null;default:0"`
	TotalBeds   int          `gorm:"not null;default:0"`
	Notes       string       `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Hostel) TableName() string {
	return "hostels"
}

// NewHostel creates a new hostel with required fields
func NewHostel(name string, hostelType HostelType) (*Hostel, error) {
	if err := validateHostelName(name); err != nil {
		return nil, err
	}
	if err := validateHostelType(hostelType); err != nil {
		return nil, err
	}

	return &Hostel{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Type:              hostelType,
		Status:            HostelStatusActive,
	}, nil
}

// Update updates the hostel's basic information
func (h *Hostel) Update(name, address, city, phone, managerName string) error {
	if err := validateHostelName(name); err != nil {
		return err
	}

	h.Name = name
	h.Address = address
	h.City = city
	h.Phone = phone
	h.ManagerName = managerName
	h.IncrementVersion()

	return nil
}

// SetCapacity sets the room and bed counts
func (h *Hostel) SetCapacity(totalRooms, totalBeds int) error {
	if totalRooms < 0 || totalBeds < 0 {
		return shared.NewDomainError("INVALID_CAPACITY", "Room and bed counts cannot be negative")
	}
	if totalBeds < totalRooms {
		return shared.NewDomainError("INVALID_CAPACITY", "Bed count cannot be less than room count")
	}

	h.TotalRooms = totalRooms
	h.TotalBeds = totalBeds
	h.IncrementVersion()

	return nil
}

// Activate marks the hostel as active
func (h *Hostel) Activate() {
	h.Status = HostelStatusActive
	h.IncrementVersion()
}

// Deactivate marks the hostel as inactive
func (h *Hostel) Deactivate() {
	h.Status = HostelStatusInactive
	h.IncrementVersion()
}

// IsActive returns true if the hostel is active
func (h *Hostel) IsActive() bool {
	return h.Status == HostelStatusActive
}

func validateHostelName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_HOSTEL_NAME", "Hostel name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_HOSTEL_NAME", "Hostel name cannot exceed 200 characters")
	}
	return nil
}

func validateHostelType(t HostelType) error {
	switch t {
	case HostelTypeBoys, HostelTypeGirls, HostelTypeMixed:
		return nil
	default:
		return shared.NewDomainError("INVALID_HOSTEL_TYPE", "Hostel type must be boys, girls, or mixed")
	}
}
