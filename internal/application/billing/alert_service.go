package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hostelops/backend/internal/domain/billing"
	"github.com/hostelops/backend/internal/domain/shared"
)

// AlertService provides application-level alert operations
type AlertService struct {
	alertRepo billing.AlertRepository
}

// NewAlertService creates a new AlertService
func NewAlertService(alertRepo billing.AlertRepository) *AlertService {
	return &AlertService{alertRepo: alertRepo}
}

// AlertResponse represents an alert in API responses
type AlertResponse struct {
	ID        uuid.UUID  `json:"id"`
	Sequence  int64      `json:"sequence"`
	HostelID  uuid.UUID  `json:"hostel_id"`
	TenantID  *uuid.UUID `json:"tenant_id,omitempty"`
	Type      string     `json:"type"`
	Status    string     `json:"status"`
	Title     string     `json:"title"`
	Amount    float64    `json:"amount"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateAlertRequest represents a request to raise an alert
type CreateAlertRequest struct {
	HostelID uuid.UUID       `json:"hostel_id" binding:"required"`
	TenantID *uuid.UUID      `json:"tenant_id"`
	Type     string          `json:"type" binding:"required,oneof=bill rent payable receivable maintenance"`
	Title    string          `json:"title" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  *time.Time      `json:"due_date"`
	Notes    string          `json:"notes"`
}

// CreateAlert raises a new alert
func (s *AlertService) CreateAlert(ctx context.Context, req CreateAlertRequest) (*AlertResponse, error) {
	alert, err := billing.NewAlert(req.HostelID, billing.AlertType(req.Type), req.Title, req.Amount, req.DueDate)
	if err != nil {
		return nil, err
	}
	alert.TenantID = req.TenantID
	alert.Notes = req.Notes

	if err := s.alertRepo.Save(ctx, alert); err != nil {
		return nil, err
	}

	return toAlertResponse(alert), nil
}

// GetAlert finds an alert by ID
func (s *AlertService) GetAlert(ctx context.Context, id uuid.UUID) (*AlertResponse, error) {
	alert, err := s.alertRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAlertResponse(alert), nil
}

// ListAlerts lists unresolved alerts, optionally scoped to a hostel
func (s *AlertService) ListAlerts(ctx context.Context, hostelID *uuid.UUID, filter shared.Filter) (*shared.Paginated[AlertResponse], error) {
	filter.Normalize()

	alerts, err := s.alertRepo.FindOpen(ctx, hostelID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.alertRepo.CountOpen(ctx, hostelID)
	if err != nil {
		return nil, err
	}

	items := make([]AlertResponse, 0, len(alerts))
	for i := range alerts {
		items = append(items, *toAlertResponse(&alerts[i]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// AcknowledgeAlert marks an alert as acknowledged
func (s *AlertService) AcknowledgeAlert(ctx context.Context, id uuid.UUID) (*AlertResponse, error) {
	alert, err := s.alertRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := alert.Acknowledge(); err != nil {
		return nil, err
	}
	if err := s.alertRepo.Save(ctx, alert); err != nil {
		return nil, err
	}

	return toAlertResponse(alert), nil
}

// ResolveAlert closes an alert
func (s *AlertService) ResolveAlert(ctx context.Context, id uuid.UUID) (*AlertResponse, error) {
	alert, err := s.alertRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := alert.Resolve(); err != nil {
		return nil, err
	}
	if err := s.alertRepo.Save(ctx, alert); err != nil {
		return nil, err
	}

	return toAlertResponse(alert), nil
}

// DeleteAlert deletes an alert
func (s *AlertService) DeleteAlert(ctx context.Context, id uuid.UUID) error {
	if _, err := s.alertRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.alertRepo.Delete(ctx, id)
}

func toAlertResponse(a *billing.Alert) *AlertResponse {
	return &AlertResponse{
		ID:        a.ID,
		Sequence:  a.Sequence,
		HostelID:  a.HostelID,
		TenantID:  a.TenantID,
		Type:      string(a.Type),
		Status:    string(a.Status),
		Title:     a.Title,
		Amount:    a.Amount.Round(2).InexactFloat64(),
		DueDate:   a.DueDate,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
