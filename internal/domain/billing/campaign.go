package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hostelops/backend/internal/domain/shared"
)

// CampaignChannel represents how a campaign reaches its audience
type CampaignChannel string

const (
	CampaignChannelSMS   CampaignChannel = "sms"
	CampaignChannelEmail CampaignChannel = "email"
)

// CampaignStatus represents the lifecycle state of a campaign
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusRunning   CampaignStatus = "running"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

// IsTerminal returns true if no further transitions are allowed
func (s CampaignStatus) IsTerminal() bool {
	return s == CampaignStatusCompleted || s == CampaignStatusCancelled
}

// Campaign represents a bulk notification run to tenants
// Lifecycle: draft -> scheduled -> running -> completed, with cancellation
// allowed any time before completion
type Campaign struct {
	shared.BaseAggregateRoot
	HostelID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Channel     CampaignChannel `gorm:"type:varchar(10);not null"`
	Status      CampaignStatus  `gorm:"type:varchar(20);not null;default:'draft'"`
	Message     string          `gorm:"type:text;not null"`
	ScheduledAt *time.Time
	// Audience counters filled in as the run progresses
	TotalRecipients int `gorm:"not null;default:0"`
	SentCount       int `gorm:"not null;default:0"`
	FailedCount     int `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Campaign) TableName() string {
	return "campaigns"
}

// NewCampaign creates a new draft campaign
func NewCampaign(hostelID uuid.UUID, name string, channel CampaignChannel, message string) (*Campaign, error) {
	if hostelID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_HOSTEL_ID", "Hostel ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_CAMPAIGN_NAME", "Campaign name cannot be empty")
	}
	if channel != CampaignChannelSMS && channel != CampaignChannelEmail {
		return nil, shared.NewDomainError("INVALID_CHANNEL", "Channel must be sms or email")
	}
	if strings.TrimSpace(message) == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Campaign message cannot be empty")
	}

	return &Campaign{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		HostelID:          hostelID,
		Name:              name,
		Channel:           channel,
		Status:            CampaignStatusDraft,
		Message:           message,
	}, nil
}

// Schedule moves a draft campaign to scheduled at the given time
func (c *Campaign) Schedule(at time.Time) error {
	if c.Status != CampaignStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Only draft campaigns can be scheduled")
	}
	if at.Before(time.Now()) {
		return shared.NewDomainError("INVALID_SCHEDULE", "Scheduled time must be in the future")
	}

	c.ScheduledAt = &at
	c.transition(CampaignStatusScheduled)
	return nil
}

// Start moves a scheduled campaign to running
func (c *Campaign) Start(totalRecipients int) error {
	if c.Status != CampaignStatusScheduled {
		return shared.NewDomainError("INVALID_STATE", "Only scheduled campaigns can start")
	}
	if totalRecipients < 0 {
		return shared.NewDomainError("INVALID_AUDIENCE", "Recipient count cannot be negative")
	}

	c.TotalRecipients = totalRecipients
	c.transition(CampaignStatusRunning)
	return nil
}

// RecordProgress updates sent/failed counters on a running campaign
func (c *Campaign) RecordProgress(sent, failed int) error {
	if c.Status != CampaignStatusRunning {
		return shared.NewDomainError("INVALID_STATE", "Campaign is not running")
	}
	if sent < 0 || failed < 0 || sent+failed > c.TotalRecipients {
		return shared.NewDomainError("INVALID_AUDIENCE", "Progress counters exceed the audience")
	}

	c.SentCount = sent
	c.FailedCount = failed
	c.IncrementVersion()
	return nil
}

// Complete moves a running campaign to completed
func (c *Campaign) Complete() error {
	if c.Status != CampaignStatusRunning {
		return shared.NewDomainError("INVALID_STATE", "Only running campaigns can complete")
	}

	c.transition(CampaignStatusCompleted)
	return nil
}

// Cancel cancels a campaign that has not completed
func (c *Campaign) Cancel() error {
	if c.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Campaign has already finished")
	}

	c.transition(CampaignStatusCancelled)
	return nil
}

func (c *Campaign) transition(status CampaignStatus) {
	c.Status = status
	c.IncrementVersion()
}
