package tenancy

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TenantRepository defines the interface for tenant persistence
type TenantRepository interface {
	// FindByID finds a tenant by its ID, allocations included
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)

	// FindByCNIC finds a tenant by national ID number
	FindByCNIC(ctx context.Context, cnic string) (*Tenant, error)

	// FindAll finds all tenants matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Tenant, error)

	// FindByHostel finds tenants with an active allocation in the hostel
	FindByHostel(ctx context.Context, hostelID uuid.UUID, filter shared.Filter) ([]Tenant, error)

	// FindWithDue finds tenants that owe money, optionally scoped to the
	// hostel of their active allocation
	FindWithDue(ctx context.Context, hostelID *uuid.UUID, filter shared.Filter) ([]Tenant, error)

	// SumDueForActiveAllocations sums TotalDue across tenants whose active
	// allocation matches the hostel scope; nil hostelID covers all hostels
	SumDueForActiveAllocations(ctx context.Context, hostelID *uuid.UUID) (decimal.Decimal, error)

	// Save creates or updates a tenant and its allocations
	Save(ctx context.Context, tenant *Tenant) error

	// Delete deletes a tenant
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts tenants matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountActiveByHostel counts tenants with an active allocation in the hostel
	CountActiveByHostel(ctx context.Context, hostelID uuid.UUID) (int64, error)

	// CountActiveAllocations counts active allocations matching the hostel
	// scope; nil hostelID covers all hostels
	CountActiveAllocations(ctx context.Context, hostelID *uuid.UUID) (int64, error)

	// ExistsByCNIC checks if a tenant with the given CNIC exists
	ExistsByCNIC(ctx context.Context, cnic string) (bool, error)
}

// EmployeeRepository defines the interface for employee persistence
type EmployeeRepository interface {
	// FindByID finds an employee by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)

	// FindByEmail finds an employee by email
	FindByEmail(ctx context.Context, email string) (*Employee, error)

	// FindAll finds all employees matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Employee, error)

	// FindByHostel finds employees assigned to a hostel
	FindByHostel(ctx context.Context, hostelID uuid.UUID, filter shared.Filter) ([]Employee, error)

	// Save creates or updates an employee
	Save(ctx context.Context, employee *Employee) error

	// Delete deletes an employee
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts employees matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByEmail checks if an employee with the given email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// BookingRepository defines the interface for booking persistence
type BookingRepository interface {
	// FindByID finds a booking by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// FindAll finds all bookings matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Booking, error)

	// FindByTenant finds bookings made by a tenant
	FindByTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Booking, error)

	// FindByHostel finds bookings for a hostel
	FindByHostel(ctx context.Context, hostelID uuid.UUID, filter shared.Filter) ([]Booking, error)

	// FindByStatus finds bookings by status, optionally scoped to a hostel
	FindByStatus(ctx context.Context, hostelID *uuid.UUID, status BookingStatus, filter shared.Filter) ([]Booking, error)

	// Save creates or updates a booking
	Save(ctx context.Context, booking *Booking) error

	// Delete deletes a booking
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts bookings matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts bookings by status, optionally scoped to a hostel
	CountByStatus(ctx context.Context, hostelID *uuid.UUID, status BookingStatus) (int64, error)
}
