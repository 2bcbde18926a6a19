package property

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hostelops/backend/internal/domain/property"
	"github.com/hostelops/backend/internal/domain/shared"
)

// HostelService provides application-level hostel operations
type HostelService struct {
	hostelRepo property.HostelRepository
}

// NewHostelService creates a new HostelService
func NewHostelService(hostelRepo property.HostelRepository) *HostelService {
	return &HostelService{hostelRepo: hostelRepo}
}

// HostelResponse represents a hostel in API responses
type HostelResponse struct {
	ID          uuid.UUID `json:"id"`
	Sequence    int64     `json:"sequence"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	ManagerName string    `json:"manager_name,omitempty"`
	TotalRooms  int       `json:"total_rooms"`
	TotalBeds   int       `json:"total_beds"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateHostelRequest represents a request to create a hostel
type CreateHostelRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=boys girls mixed"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Phone       string `json:"phone"`
	ManagerName string `json:"manager_name"`
	TotalRooms  int    `json:"total_rooms" binding:"min=0"`
	TotalBeds   int    `json:"total_beds" binding:"min=0"`
}

// UpdateHostelRequest represents a request to update a hostel
type UpdateHostelRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Phone       string `json:"phone"`
	ManagerName string `json:"manager_name"`
	TotalRooms  int    `json:"total_rooms" binding:"min=0"`
	TotalBeds   int    `json:"total_beds" binding:"min=0"`
}

// CreateHostel creates a new hostel
func (s *HostelService) CreateHostel(ctx context.Context, req CreateHostelRequest) (*HostelResponse, error) {
	exists, err := s.hostelRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A hostel with this name already exists")
	}

	hostel, err := property.NewHostel(req.Name, property.HostelType(req.Type))
	if err != nil {
		return nil, err
	}

	if err := hostel.Update(req.Name, req.Address, req.City, req.Phone, req.ManagerName); err != nil {
		return nil, err
	}
	if err := hostel.SetCapacity(req.TotalRooms, req.TotalBeds); err != nil {
		return nil, err
	}

	if err := s.hostelRepo.Save(ctx, hostel); err != nil {
		return nil, err
	}

	return toHostelResponse(hostel), nil
}

// GetHostel finds a hostel by ID
func (s *HostelService) GetHostel(ctx context.Context, id uuid.UUID) (*HostelResponse, error) {
	hostel, err := s.hostelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toHostelResponse(hostel), nil
}

// ListHostels lists hostels with pagination
func (s *HostelService) ListHostels(ctx context.Context, filter shared.Filter) (*shared.Paginated[HostelResponse], error) {
	filter.Normalize()

	hostels, err := s.hostelRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.hostelRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]HostelResponse, 0, len(hostels))
	for i := range hostels {
		items = append(items, *toHostelResponse(&hostels[i]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// UpdateHostel updates a hostel
func (s *HostelService) UpdateHostel(ctx context.Context, id uuid.UUID, req UpdateHostelRequest) (*HostelResponse, error) {
	hostel, err := s.hostelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := hostel.Update(req.Name, req.Address, req.City, req.Phone, req.ManagerName); err != nil {
		return nil, err
	}
	if err := hostel.SetCapacity(req.TotalRooms, req.TotalBeds); err != nil {
		return nil, err
	}

	if err := s.hostelRepo.Save(ctx, hostel); err != nil {
		return nil, err
	}

	return toHostelResponse(hostel), nil
}

// ActivateHostel marks a hostel as active
func (s *HostelService) ActivateHostel(ctx context.Context, id uuid.UUID) error {
	hostel, err := s.hostelRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	hostel.Activate()
	return s.hostelRepo.Save(ctx, hostel)
}

// DeactivateHostel marks a hostel as inactive
func (s *HostelService) DeactivateHostel(ctx context.Context, id uuid.UUID) error {
	hostel, err := s.hostelRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	hostel.Deactivate()
	return s.hostelRepo.Save(ctx, hostel)
}

// DeleteHostel deletes a hostel
func (s *HostelService) DeleteHostel(ctx context.Context, id uuid.UUID) error {
	if _, err := s.hostelRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.hostelRepo.Delete(ctx, id)
}

func toHostelResponse(h *property.Hostel) *HostelResponse {
	return &HostelResponse{
		ID:          h.ID,
		Sequence:    h.Sequence,
		Name:        h.Name,
		Type:        string(h.Type),
		Status:      string(h.Status),
		Address:     h.Address,
		City:        h.City,
		Phone:       h.Phone,
		ManagerName: h.ManagerName,
		TotalRooms:  h.TotalRooms,
		TotalBeds:   h.TotalBeds,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}
