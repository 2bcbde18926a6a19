package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	billingapp "github.com/hostelops/backend/internal/application/billing"
)

// CampaignHandler handles marketing campaign endpoints
type CampaignHandler struct {
	BaseHandler
	campaignService *billingapp.CampaignService
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaignService *billingapp.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

// RegisterRoutes registers campaign routes
func (h *CampaignHandler) RegisterRoutes(rg *gin.RouterGroup) {
	campaigns := rg.Group("/campaigns")
	campaigns.POST("", h.Create)
	campaigns.GET("", h.List)
	campaigns.POST("/start-due", h.StartDue)
	campaigns.GET("/:id", h.Get)
	campaigns.POST("/:id/schedule", h.Schedule)
	campaigns.POST("/:id/start", h.Start)
	campaigns.POST("/:id/complete", h.Complete)
	campaigns.POST("/:id/cancel", h.Cancel)
}

// Create drafts a new campaign
func (h *CampaignHandler) Create(c *gin.Context) {
	var req billingapp.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.campaignService.CreateCampaign(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get returns a single campaign
func (h *CampaignHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid campaign ID")
		return
	}

	resp, err := h.campaignService.GetCampaign(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns campaigns for the scoped hostel
func (h *CampaignHandler) List(c *gin.Context) {
	result, err := h.campaignService.ListCampaigns(c.Request.Context(), hostelScope(c), bindFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, result)
}

// StartDue starts every scheduled campaign whose scheduled time has
// passed and returns the campaigns it started
func (h *CampaignHandler) StartDue(c *gin.Context) {
	started, err := h.campaignService.StartDueCampaigns(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, started)
}

// Schedule queues the campaign for a future start
func (h *CampaignHandler) Schedule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid campaign ID")
		return
	}

	var req billingapp.ScheduleCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.campaignService.ScheduleCampaign(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Start begins running the campaign
func (h *CampaignHandler) Start(c *gin.Context) {
	h.transition(c, h.campaignService.StartCampaign)
}

// Complete finishes the campaign
func (h *CampaignHandler) Complete(c *gin.Context) {
	h.transition(c, h.campaignService.CompleteCampaign)
}

// Cancel aborts the campaign
func (h *CampaignHandler) Cancel(c *gin.Context) {
	h.transition(c, h.campaignService.CancelCampaign)
}

func (h *CampaignHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*billingapp.CampaignResponse, error)) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid campaign ID")
		return
	}

	resp, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
