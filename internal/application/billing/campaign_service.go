package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hostelops/backend/internal/domain/billing"
	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/hostelops/backend/internal/domain/tenancy"
)

// CampaignService provides application-level campaign operations
type CampaignService struct {
	campaignRepo billing.CampaignRepository
	tenantRepo   tenancy.TenantRepository
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(campaignRepo billing.CampaignRepository, tenantRepo tenancy.TenantRepository) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		tenantRepo:   tenantRepo,
	}
}

// CampaignResponse represents a campaign in API responses
type CampaignResponse struct {
	ID              uuid.UUID  `json:"id"`
	HostelID        uuid.UUID  `json:"hostel_id"`
	Name            string     `json:"name"`
	Channel         string     `json:"channel"`
	Status          string     `json:"status"`
	Message         string     `json:"message"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	TotalRecipients int        `json:"total_recipients"`
	SentCount       int        `json:"sent_count"`
	FailedCount     int        `json:"failed_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CreateCampaignRequest represents a request to draft a campaign
type CreateCampaignRequest struct {
	HostelID uuid.UUID `json:"hostel_id" binding:"required"`
	Name     string    `json:"name" binding:"required"`
	Channel  string    `json:"channel" binding:"required,oneof=sms email"`
	Message  string    `json:"message" binding:"required"`
}

// ScheduleCampaignRequest represents a request to schedule a campaign
type ScheduleCampaignRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

// CreateCampaign drafts a new campaign
func (s *CampaignService) CreateCampaign(ctx context.Context, req CreateCampaignRequest) (*CampaignResponse, error) {
	campaign, err := billing.NewCampaign(req.HostelID, req.Name, billing.CampaignChannel(req.Channel), req.Message)
	if err != nil {
		return nil, err
	}

	if err := s.campaignRepo.Save(ctx, campaign); err != nil {
		return nil, err
	}

	return toCampaignResponse(campaign), nil
}

// GetCampaign finds a campaign by ID
func (s *CampaignService) GetCampaign(ctx context.Context, id uuid.UUID) (*CampaignResponse, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCampaignResponse(campaign), nil
}

// ListCampaigns lists campaigns, optionally scoped to a hostel
func (s *CampaignService) ListCampaigns(ctx context.Context, hostelID *uuid.UUID, filter shared.Filter) (*shared.Paginated[CampaignResponse], error) {
	filter.Normalize()

	var (
		campaigns []billing.Campaign
		err       error
	)
	if hostelID != nil {
		campaigns, err = s.campaignRepo.FindByHostel(ctx, *hostelID, filter)
	} else {
		campaigns, err = s.campaignRepo.FindAll(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.campaignRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		items = append(items, *toCampaignResponse(&campaigns[i]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// ScheduleCampaign schedules a draft campaign
func (s *CampaignService) ScheduleCampaign(ctx context.Context, id uuid.UUID, req ScheduleCampaignRequest) (*CampaignResponse, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := campaign.Schedule(req.ScheduledAt); err != nil {
		return nil, err
	}
	if err := s.campaignRepo.Save(ctx, campaign); err != nil {
		return nil, err
	}

	return toCampaignResponse(campaign), nil
}

// StartCampaign starts a scheduled campaign against the hostel's active
// tenants
func (s *CampaignService) StartCampaign(ctx context.Context, id uuid.UUID) (*CampaignResponse, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	recipients, err := s.tenantRepo.CountActiveByHostel(ctx, campaign.HostelID)
	if err != nil {
		return nil, err
	}

	if err := campaign.Start(int(recipients)); err != nil {
		return nil, err
	}
	if err := s.campaignRepo.Save(ctx, campaign); err != nil {
		return nil, err
	}

	return toCampaignResponse(campaign), nil
}

// StartDueCampaigns starts every scheduled campaign whose scheduled time
// has passed. Meant for an external trigger (cron hitting the endpoint);
// started campaigns are returned so the caller can see what ran
func (s *CampaignService) StartDueCampaigns(ctx context.Context) ([]CampaignResponse, error) {
	due, err := s.campaignRepo.FindDueForStart(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	started := make([]CampaignResponse, 0, len(due))
	for i := range due {
		campaign := &due[i]

		recipients, err := s.tenantRepo.CountActiveByHostel(ctx, campaign.HostelID)
		if err != nil {
			return nil, err
		}
		if err := campaign.Start(int(recipients)); err != nil {
			return nil, err
		}
		if err := s.campaignRepo.Save(ctx, campaign); err != nil {
			return nil, err
		}
		started = append(started, *toCampaignResponse(campaign))
	}
	return started, nil
}

// CompleteCampaign completes a running campaign
func (s *CampaignService) CompleteCampaign(ctx context.Context, id uuid.UUID) (*CampaignResponse, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := campaign.Complete(); err != nil {
		return nil, err
	}
	if err := s.campaignRepo.Save(ctx, campaign); err != nil {
		return nil, err
	}

	return toCampaignResponse(campaign), nil
}

// CancelCampaign cancels a campaign that has not completed
func (s *CampaignService) CancelCampaign(ctx context.Context, id uuid.UUID) (*CampaignResponse, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := campaign.Cancel(); err != nil {
		return nil, err
	}
	if err := s.campaignRepo.Save(ctx, campaign); err != nil {
		return nil, err
	}

	return toCampaignResponse(campaign), nil
}

func toCampaignResponse(c *billing.Campaign) *CampaignResponse {
	return &CampaignResponse{
		ID:              c.ID,
		HostelID:        c.HostelID,
		Name:            c.Name,
		Channel:         string(c.Channel),
		Status:          string(c.Status),
		Message:         c.Message,
		ScheduledAt:     c.ScheduledAt,
		TotalRecipients: c.TotalRecipients,
		SentCount:       c.SentCount,
		FailedCount:     c.FailedCount,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
