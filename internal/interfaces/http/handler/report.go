package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hostelops/backend/internal/application/accounts"
	"github.com/hostelops/backend/internal/domain/reporting"
	"github.com/hostelops/backend/internal/interfaces/http/middleware"
)

// ReportHandler handles financial reporting endpoints
type ReportHandler struct {
	BaseHandler
	reportService    *accounts.FinancialReportService
	dashboardService *accounts.DashboardService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *accounts.FinancialReportService, dashboardService *accounts.DashboardService) *ReportHandler {
	return &ReportHandler{reportService: reportService, dashboardService: dashboardService}
}

// RegisterRoutes registers reporting routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/accounts")
	accounts.GET("/summary", h.Summary)
	accounts.GET("/receivables", h.Receivables)
	accounts.GET("/payables", h.Payables)
	accounts.GET("/dashboard", h.DashboardStats)
}

// Summary returns the aggregated financial summary for the filter window
func (h *ReportHandler) Summary(c *gin.Context) {
	resp, err := h.reportService.GetFinancialSummary(c.Request.Context(), h.reportFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Receivables returns the receivables ledger
func (h *ReportHandler) Receivables(c *gin.Context) {
	page, limit := reportPagination(c)

	resp, err := h.reportService.ListReceivables(c.Request.Context(), h.reportFilter(c), page, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Payables returns the payables ledger of the requested type
func (h *ReportHandler) Payables(c *gin.Context) {
	page, limit := reportPagination(c)
	payableType := reporting.ParsePayableType(c.Query("type"))

	resp, err := h.reportService.ListPayables(c.Request.Context(), h.reportFilter(c), payableType, page, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// DashboardStats returns the operational dashboard counters
func (h *ReportHandler) DashboardStats(c *gin.Context) {
	resp, err := h.dashboardService.GetDashboardStats(c.Request.Context(), hostelScope(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// reportFilter builds the report filter from raw query strings. A hostel
// claim on the token overrides any hostel_id query parameter
func (h *ReportHandler) reportFilter(c *gin.Context) reporting.ReportFilter {
	hostelID := c.Query("hostel_id")
	if claim := middleware.GetJWTHostelID(c); claim != "" {
		hostelID = claim
	}
	return reporting.BuildReportFilter(hostelID, c.Query("start_date"), c.Query("end_date"), c.Query("search"))
}

func reportPagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}
