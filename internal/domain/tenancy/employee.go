package tenancy

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hostelops/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeRole represents an employee's access role
type EmployeeRole string

const (
	EmployeeRoleAdmin   EmployeeRole = "admin"
	EmployeeRoleManager EmployeeRole = "manager"
	EmployeeRoleStaff   EmployeeRole = "staff"
)

// EmployeeStatus represents the status of an employee
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

// Employee represents a back-office user who can sign in
type Employee struct {
	shared.BaseAggregateRoot
	Name         string         `gorm:"type:varchar(200);not null"`
	Email        string         `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string         `gorm:"type:varchar(200);not null" json:"-"`
	Role         EmployeeRole   `gorm:"type:varchar(20);not null;default:'staff'"`
	Status       EmployeeStatus `gorm:"type:varchar(20);not null;default:'active'"`
	// HostelID scopes managers and staff to one property; nil for admins
	HostelID *uuid.UUID `gorm:"type:uuid;index"`
	Phone    string     `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee creates a new employee with a bcrypt-hashed password
func NewEmployee(name, email, password string, role EmployeeRole, hostelID *uuid.UUID) (*Employee, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE_NAME", "Employee name cannot be empty")
	}
	if !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Invalid email address")
	}
	if err := validateEmployeeRole(role); err != nil {
		return nil, err
	}
	if role != EmployeeRoleAdmin && (hostelID == nil || *hostelID == uuid.Nil) {
		return nil, shared.NewDomainError("INVALID_HOSTEL_ID", "Non-admin employees must be assigned to a hostel")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	return &Employee{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             strings.ToLower(email),
		PasswordHash:      hash,
		Role:              role,
		Status:            EmployeeStatusActive,
		HostelID:          hostelID,
	}, nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (e *Employee) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)) == nil
}

// ChangePassword sets a new bcrypt-hashed password
func (e *Employee) ChangePassword(password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	e.PasswordHash = hash
	e.IncrementVersion()

	return nil
}

// IsActive returns true if the employee can sign in
func (e *Employee) IsActive() bool {
	return e.Status == EmployeeStatusActive
}

// Deactivate disables the employee's account
func (e *Employee) Deactivate() {
	e.Status = EmployeeStatusInactive
	e.IncrementVersion()
}

// Activate re-enables the employee's account
func (e *Employee) Activate() {
	e.Status = EmployeeStatusActive
	e.IncrementVersion()
}

func hashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", shared.NewDomainError("WEAK_PASSWORD", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func validateEmployeeRole(role EmployeeRole) error {
	switch role {
	case EmployeeRoleAdmin, EmployeeRoleManager, EmployeeRoleStaff:
		return nil
	default:
		return shared.NewDomainError("INVALID_ROLE", "Role must be admin, manager, or staff")
	}
}
