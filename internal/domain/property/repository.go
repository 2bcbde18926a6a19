package property

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostelops/backend/internal/domain/shared"
)

// HostelRepository defines the interface for hostel persistence
type HostelRepository interface {
	// FindByID finds a hostel by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Hostel, error)

	// FindAll finds all hostels matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Hostel, error)

	// FindByStatus finds hostels by status
	FindByStatus(ctx context.Context, status HostelStatus, filter shared.Filter) ([]Hostel, error)

	// FindActive finds all active hostels
	FindActive(ctx context.Context, filter shared.Filter) ([]Hostel, error)

	// Save creates or updates a hostel
	Save(ctx context.Context, hostel *Hostel) error

	// Delete deletes a hostel
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts hostels matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountActive counts active hostels, optionally scoped to one hostel.
	// A nil hostelID covers all hostels
	CountActive(ctx context.Context, hostelID *uuid.UUID) (int64, error)

	// SumCapacity sums room and bed counts across active hostels matching
	// the same scope
	SumCapacity(ctx context.Context, hostelID *uuid.UUID) (rooms int64, beds int64, err error)

	// ExistsByName checks if a hostel with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// VendorRepository defines the interface for vendor persistence
type VendorRepository interface {
	// FindByID finds a vendor by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Vendor, error)

	// FindAll finds all vendors matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Vendor, error)

	// FindByHostel finds vendors attached to a hostel
	FindByHostel(ctx context.Context, hostelID uuid.UUID, filter shared.Filter) ([]Vendor, error)

	// FindByServiceType finds vendors by service type, optionally scoped to a
	// hostel. A nil hostelID matches all hostels
	FindByServiceType(ctx context.Context, hostelID *uuid.UUID, serviceType ServiceType, filter shared.Filter) ([]Vendor, error)

	// FindActive finds active vendors, optionally scoped to a hostel
	FindActive(ctx context.Context, hostelID *uuid.UUID, filter shared.Filter) ([]Vendor, error)

	// FindAllActive finds every active vendor matching the hostel scope and
	// an optional name/company/email search, unpaged
	FindAllActive(ctx context.Context, hostelID *uuid.UUID, search string) ([]Vendor, error)

	// Save creates or updates a vendor
	Save(ctx context.Context, vendor *Vendor) error

	// Delete deletes a vendor
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts vendors matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByHostel counts vendors attached to a hostel
	CountByHostel(ctx context.Context, hostelID uuid.UUID) (int64, error)
}
