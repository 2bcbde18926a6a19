package tenancy

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/hostelops/backend/internal/domain/tenancy"
)

// TenantService provides application-level tenant operations
type TenantService struct {
	tenantRepo tenancy.TenantRepository
}

// NewTenantService creates a new TenantService
func NewTenantService(tenantRepo tenancy.TenantRepository) *TenantService {
	return &TenantService{tenantRepo: tenantRepo}
}

// AllocationResponse represents a room allocation in API responses
type AllocationResponse struct {
	ID         uuid.UUID  `json:"id"`
	HostelID   uuid.UUID  `json:"hostel_id"`
	RoomNumber string     `json:"room_number"`
	Status     string     `json:"status"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    *time.Time `json:"end_date,omitempty"`
}

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID          uuid.UUID            `json:"id"`
	Sequence    int64                `json:"sequence"`
	Name        string               `json:"name"`
	Email       string               `json:"email,omitempty"`
	Phone       string               `json:"phone,omitempty"`
	CNIC        string               `json:"cnic,omitempty"`
	Status      string               `json:"status"`
	TotalDue    float64              `json:"total_due"`
	Guardian    string               `json:"guardian,omitempty"`
	Allocations []AllocationResponse `json:"allocations,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// CreateTenantRequest represents a request to register a tenant
type CreateTenantRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"required"`
	CNIC     string `json:"cnic"`
	Guardian string `json:"guardian"`
}

// UpdateTenantRequest represents a request to update a tenant
type UpdateTenantRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"required"`
	Guardian string `json:"guardian"`
}

// AllocateRequest represents a request to allocate a tenant to a room
type AllocateRequest struct {
	HostelID   uuid.UUID `json:"hostel_id" binding:"required"`
	RoomNumber string    `json:"room_number" binding:"required"`
	StartDate  time.Time `json:"start_date" binding:"required"`
}

// CreateTenant registers a new tenant
func (s *TenantService) CreateTenant(ctx context.Context, req CreateTenantRequest) (*TenantResponse, error) {
	if req.CNIC != "" {
		exists, err := s.tenantRepo.ExistsByCNIC(ctx, req.CNIC)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A tenant with this CNIC already exists")
		}
	}

	tenant, err := tenancy.NewTenant(req.Name, req.Phone, req.CNIC)
	if err != nil {
		return nil, err
	}
	tenant.Email = req.Email
	tenant.Guardian = req.Guardian

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	return toTenantResponse(tenant), nil
}

// GetTenant finds a tenant by ID
func (s *TenantService) GetTenant(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTenantResponse(tenant), nil
}

// ListTenants lists tenants, optionally scoped to a hostel
func (s *TenantService) ListTenants(ctx context.Context, hostelID *uuid.UUID, filter shared.Filter) (*shared.Paginated[TenantResponse], error) {
	filter.Normalize()

	var (
		tenants []tenancy.Tenant
		err     error
	)
	if hostelID != nil {
		tenants, err = s.tenantRepo.FindByHostel(ctx, *hostelID, filter)
	} else {
		tenants, err = s.tenantRepo.FindAll(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.tenantRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]TenantResponse, 0, len(tenants))
	for i := range tenants {
		items = append(items, *toTenantResponse(&tenants[i]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// UpdateTenant updates a tenant's details
func (s *TenantService) UpdateTenant(ctx context.Context, id uuid.UUID, req UpdateTenantRequest) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := tenant.Update(req.Name, req.Email, req.Phone, req.Guardian); err != nil {
		return nil, err
	}
	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	return toTenantResponse(tenant), nil
}

// AllocateTenant assigns a tenant to a room
func (s *TenantService) AllocateTenant(ctx context.Context, id uuid.UUID, req AllocateRequest) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := tenant.Allocate(req.HostelID, req.RoomNumber, req.StartDate); err != nil {
		return nil, err
	}
	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	return toTenantResponse(tenant), nil
}

// VacateTenant ends a tenant's active allocation
func (s *TenantService) VacateTenant(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := tenant.Vacate(time.Now()); err != nil {
		return nil, err
	}
	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	return toTenantResponse(tenant), nil
}

// DeactivateTenant marks a tenant as moved out
func (s *TenantService) DeactivateTenant(ctx context.Context, id uuid.UUID) error {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := tenant.Deactivate(); err != nil {
		return err
	}
	return s.tenantRepo.Save(ctx, tenant)
}

// DeleteTenant deletes a tenant
func (s *TenantService) DeleteTenant(ctx context.Context, id uuid.UUID) error {
	if _, err := s.tenantRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.tenantRepo.Delete(ctx, id)
}

func toTenantResponse(t *tenancy.Tenant) *TenantResponse {
	allocations := make([]AllocationResponse, 0, len(t.Allocations))
	for i := range t.Allocations {
		a := &t.Allocations[i]
		allocations = append(allocations, AllocationResponse{
			ID:         a.ID,
			HostelID:   a.HostelID,
			RoomNumber: a.RoomNumber,
			Status:     string(a.Status),
			StartDate:  a.StartDate,
			EndDate:    a.EndDate,
		})
	}

	return &TenantResponse{
		ID:          t.ID,
		Sequence:    t.Sequence,
		Name:        t.Name,
		Email:       t.Email,
		Phone:       t.Phone,
		CNIC:        t.CNIC,
		Status:      string(t.Status),
		TotalDue:    t.TotalDue.Round(2).InexactFloat64(),
		Guardian:    t.Guardian,
		Allocations: allocations,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
