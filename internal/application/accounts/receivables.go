package accounts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hostelops/backend/internal/domain/billing"
	"github.com/hostelops/backend/internal/domain/reporting"
	"github.com/hostelops/backend/internal/domain/shared"
)

// ReceivableItem is one row of the receivables listing
type ReceivableItem struct {
	ID          uuid.UUID  `json:"id"`
	Reference   string     `json:"reference"`
	Status      string     `json:"status"`
	Amount      float64    `json:"amount"`
	Outstanding float64    `json:"outstanding"`
	PaymentType string     `json:"payment_type,omitempty"`
	TenantID    *uuid.UUID `json:"tenant_id,omitempty"`
	HostelID    uuid.UUID  `json:"hostel_id"`
	DueDate     string     `json:"due_date"`
	Description string     `json:"description,omitempty"`
}

// ReceivablesResponse is the shaped receivables listing payload
type ReceivablesResponse struct {
	Items       []ReceivableItem `json:"items"`
	TotalAmount float64          `json:"total_amount"`
	Total       int64            `json:"total"`
	Page        int              `json:"page"`
	PageSize    int              `json:"page_size"`
	TotalPages  int              `json:"total_pages"`
}

// ListReceivables lists payments that still owe money (stored status
// pending, partial or overdue), with the presentation status derived per
// row and TotalAmount summing the unpaid portion over the full filtered
// set before pagination
func (s *FinancialReportService) ListReceivables(ctx context.Context, filter reporting.ReportFilter, page, limit int) (*ReceivablesResponse, error) {
	f := shared.Filter{Page: page, PageSize: limit}
	f.Normalize()

	scope := billing.PaymentScope{
		HostelID:  filter.HostelID,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	}

	payments, err := s.paymentRepo.FindOutstanding(ctx, scope, f)
	if err != nil {
		s.logger.Error("receivables listing failed", zap.Error(err))
		return nil, shared.ErrReportFailed
	}

	total, err := s.paymentRepo.CountOutstanding(ctx, scope)
	if err != nil {
		s.logger.Error("receivables count failed", zap.Error(err))
		return nil, shared.ErrReportFailed
	}

	totalAmount, err := s.paymentRepo.SumOutstanding(ctx, scope)
	if err != nil {
		s.logger.Error("receivables total failed", zap.Error(err))
		return nil, shared.ErrReportFailed
	}

	now := time.Now()
	items := make([]ReceivableItem, 0, len(payments))
	for i := range payments {
		p := &payments[i]
		items = append(items, ReceivableItem{
			ID:          p.ID,
			Reference:   reporting.PaymentReference(p),
			Status:      string(reporting.ResolveReceivableStatus(p, now)),
			Amount:      round2(p.Amount),
			Outstanding: round2(p.Outstanding()),
			PaymentType: p.PaymentType,
			TenantID:    p.TenantID,
			HostelID:    p.HostelID,
			DueDate:     reporting.FormatDisplayDate(p.DueDate()),
			Description: p.Description,
		})
	}

	paged := shared.NewPaginated(items, total, f.Page, f.PageSize)

	return &ReceivablesResponse{
		Items:       paged.Items,
		TotalAmount: round2(totalAmount),
		Total:       paged.Total,
		Page:        paged.Page,
		PageSize:    paged.PageSize,
		TotalPages:  paged.TotalPages,
	}, nil
}
