package property

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hostelops/backend/internal/application/accounts"
	"github.com/hostelops/backend/internal/domain/property"
	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/hostelops/backend/internal/domain/shared/valueobject"
)

// VendorService provides application-level vendor operations
// Ledger writes invalidate cached reports for the vendor's hostel
type VendorService struct {
	vendorRepo property.VendorRepository
	hostelRepo property.HostelRepository
	cache      accounts.ReportCache
}

// NewVendorService creates a new VendorService
func NewVendorService(vendorRepo property.VendorRepository, hostelRepo property.HostelRepository, cache accounts.ReportCache) *VendorService {
	if cache == nil {
		cache = accounts.NewNopReportCache()
	}
	return &VendorService{
		vendorRepo: vendorRepo,
		hostelRepo: hostelRepo,
		cache:      cache,
	}
}

// VendorResponse represents a vendor in API responses
type VendorResponse struct {
	ID           uuid.UUID `json:"id"`
	Sequence     int64     `json:"sequence"`
	HostelID     uuid.UUID `json:"hostel_id"`
	Name         string    `json:"name"`
	CompanyName  string    `json:"company_name,omitempty"`
	ServiceType  string    `json:"service_type"`
	Status       string    `json:"status"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	Address      string    `json:"address,omitempty"`
	TotalPayable float64   `json:"total_payable"`
	TotalPaid    float64   `json:"total_paid"`
	Balance      float64   `json:"balance"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateVendorRequest represents a request to create a vendor
type CreateVendorRequest struct {
	HostelID    uuid.UUID `json:"hostel_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	CompanyName string    `json:"company_name"`
	ServiceType string    `json:"service_type" binding:"required,oneof=laundry food maintenance utility other"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email" binding:"omitempty,email"`
	Address     string    `json:"address"`
}

// UpdateVendorRequest represents a request to update a vendor
type UpdateVendorRequest struct {
	Name        string `json:"name" binding:"required"`
	CompanyName string `json:"company_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"omitempty,email"`
	Address     string `json:"address"`
}

// VendorLedgerRequest represents a payable accrual or payout
type VendorLedgerRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CreateVendor creates a new vendor
func (s *VendorService) CreateVendor(ctx context.Context, req CreateVendorRequest) (*VendorResponse, error) {
	if _, err := s.hostelRepo.FindByID(ctx, req.HostelID); err != nil {
		return nil, err
	}

	vendor, err := property.NewVendor(req.HostelID, req.Name, property.ServiceType(req.ServiceType))
	if err != nil {
		return nil, err
	}
	if err := vendor.Update(req.Name, req.CompanyName, req.Phone, req.Email, req.Address); err != nil {
		return nil, err
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	s.cache.InvalidateHostel(ctx, vendor.HostelID.String())
	return toVendorResponse(vendor), nil
}

// GetVendor finds a vendor by ID
func (s *VendorService) GetVendor(ctx context.Context, id uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// ListVendors lists vendors, optionally scoped to a hostel
func (s *VendorService) ListVendors(ctx context.Context, hostelID *uuid.UUID, filter shared.Filter) (*shared.Paginated[VendorResponse], error) {
	filter.Normalize()

	var (
		vendors []property.Vendor
		err     error
	)
	if hostelID != nil {
		vendors, err = s.vendorRepo.FindByHostel(ctx, *hostelID, filter)
	} else {
		vendors, err = s.vendorRepo.FindAll(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.vendorRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]VendorResponse, 0, len(vendors))
	for i := range vendors {
		items = append(items, *toVendorResponse(&vendors[i]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// UpdateVendor updates a vendor's contact details
func (s *VendorService) UpdateVendor(ctx context.Context, id uuid.UUID, req UpdateVendorRequest) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := vendor.Update(req.Name, req.CompanyName, req.Phone, req.Email, req.Address); err != nil {
		return nil, err
	}
	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	s.cache.InvalidateHostel(ctx, vendor.HostelID.String())
	return toVendorResponse(vendor), nil
}

// AddPayable accrues a billed amount onto the vendor's ledger
func (s *VendorService) AddPayable(ctx context.Context, id uuid.UUID, req VendorLedgerRequest) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := vendor.AddPayable(req.Amount); err != nil {
		return nil, err
	}
	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	s.cache.InvalidateHostel(ctx, vendor.HostelID.String())
	return toVendorResponse(vendor), nil
}

// RecordPayout records a payout made to the vendor
func (s *VendorService) RecordPayout(ctx context.Context, id uuid.UUID, req VendorLedgerRequest) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := vendor.RecordPayout(req.Amount); err != nil {
		return nil, err
	}
	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	s.cache.InvalidateHostel(ctx, vendor.HostelID.String())
	return toVendorResponse(vendor), nil
}

// DeactivateVendor marks a vendor as inactive
func (s *VendorService) DeactivateVendor(ctx context.Context, id uuid.UUID) error {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	vendor.Deactivate()
	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return err
	}
	s.cache.InvalidateHostel(ctx, vendor.HostelID.String())
	return nil
}

// DeleteVendor deletes a vendor
func (s *VendorService) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.vendorRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateHostel(ctx, vendor.HostelID.String())
	return nil
}

func toVendorResponse(v *property.Vendor) *VendorResponse {
	return &VendorResponse{
		ID:           v.ID,
		Sequence:     v.Sequence,
		HostelID:     v.HostelID,
		Name:         v.Name,
		CompanyName:  v.CompanyName,
		ServiceType:  string(v.ServiceType),
		Status:       string(v.Status),
		Phone:        v.Phone,
		Email:        v.Email,
		Address:      v.Address,
		TotalPayable: valueobject.NewMoneyPKR(v.TotalPayable).DisplayAmount(),
		TotalPaid:    valueobject.NewMoneyPKR(v.TotalPaid).DisplayAmount(),
		Balance:      valueobject.NewMoneyPKR(v.Balance()).DisplayAmount(),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
