package accounts

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hostelops/backend/internal/domain/billing"
	"github.com/hostelops/backend/internal/domain/reporting"
	"github.com/hostelops/backend/internal/domain/shared"
)

// PayableItem is one row of the payables listing
type PayableItem struct {
	ID          uuid.UUID `json:"id"`
	Reference   string    `json:"reference"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Category    string    `json:"category,omitempty"`
	Amount      float64   `json:"amount"`
	Balance     *float64  `json:"balance,omitempty"`
	TotalPaid   *float64  `json:"total_paid,omitempty"`
	Date        string    `json:"date"`
	HostelID    uuid.UUID `json:"hostel_id"`
	Description string    `json:"description,omitempty"`
}

// PayablesResponse is the shaped payables listing payload
type PayablesResponse struct {
	Items       []PayableItem `json:"items"`
	TotalAmount float64       `json:"total_amount"`
	Total       int64         `json:"total"`
	Page        int           `json:"page"`
	PageSize    int           `json:"page_size"`
	TotalPages  int           `json:"total_pages"`
}

// ListPayables serves the payables listing. The type parameter selects the
// branch: bills (expenses plus open bill alerts), vendor (active vendors
// with their payable ledgers), or laundry (laundry-category expenses).
// Every branch sums TotalAmount over the full filtered set before
// pagination, and pagination applies uniformly to the merged rows.
func (s *FinancialReportService) ListPayables(ctx context.Context, filter reporting.ReportFilter, payableType reporting.PayableType, page, limit int) (*PayablesResponse, error) {
	f := shared.Filter{Page: page, PageSize: limit}
	f.Normalize()

	var (
		items       []PayableItem
		totalAmount decimal.Decimal
		err         error
	)

	switch payableType {
	case reporting.PayableTypeVendor:
		items, totalAmount, err = s.vendorPayables(ctx, filter)
	case reporting.PayableTypeLaundry:
		items, totalAmount, err = s.laundryPayables(ctx, filter)
	default:
		items, totalAmount, err = s.billPayables(ctx, filter)
	}
	if err != nil {
		s.logger.Error("payables listing failed",
			zap.String("type", string(payableType)),
			zap.Error(err))
		return nil, shared.ErrReportFailed
	}

	total := int64(len(items))
	start := (f.Page - 1) * f.PageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + f.PageSize
	if end > len(items) {
		end = len(items)
	}

	paged := shared.NewPaginated(items[start:end], total, f.Page, f.PageSize)

	return &PayablesResponse{
		Items:       paged.Items,
		TotalAmount: round2(totalAmount),
		Total:       paged.Total,
		Page:        paged.Page,
		PageSize:    paged.PageSize,
		TotalPages:  paged.TotalPages,
	}, nil
}

// billPayables merges expenses and open bill alerts, newest first
func (s *FinancialReportService) billPayables(ctx context.Context, filter reporting.ReportFilter) ([]PayableItem, decimal.Decimal, error) {
	var (
		expenses []billing.Expense
		alerts   []billing.Alert
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.expenseRepo.FindAllByScope(gctx, expenseScope(filter, nil))
		return err
	})
	g.Go(func() error {
		// bill alerts are standing obligations, so the filter's date
		// bounds narrow expense rows only
		var err error
		alerts, err = s.alertRepo.FindAllByType(gctx, filter.HostelID, billing.AlertTypeBill)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, decimal.Zero, err
	}

	type dated struct {
		item PayableItem
		at   time.Time
	}
	rows := make([]dated, 0, len(expenses)+len(alerts))
	total := decimal.Zero

	for i := range expenses {
		e := &expenses[i]
		total = total.Add(e.Amount)
		rows = append(rows, dated{at: e.Date, item: PayableItem{
			ID:          e.ID,
			Reference:   fmt.Sprintf("EXP-%d", e.Sequence),
			Type:        "bills",
			Title:       e.Title,
			Category:    e.Category,
			Amount:      round2(e.Amount),
			Date:        reporting.FormatDisplayDate(e.Date),
			HostelID:    e.HostelID,
			Description: e.Description,
		}})
	}
	for i := range alerts {
		a := &alerts[i]
		at := a.CreatedAt
		if a.DueDate != nil {
			at = *a.DueDate
		}
		total = total.Add(a.Amount)
		rows = append(rows, dated{at: at, item: PayableItem{
			ID:          a.ID,
			Reference:   fmt.Sprintf("ALERT-%d", a.Sequence),
			Type:        "bills",
			Title:       a.Title,
			Category:    string(a.Type),
			Amount:      round2(a.Amount),
			Date:        reporting.FormatDisplayDate(at),
			HostelID:    a.HostelID,
			Description: a.Notes,
		}})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].at.After(rows[j].at) })

	items := make([]PayableItem, len(rows))
	for i, r := range rows {
		items[i] = r.item
	}
	return items, total, nil
}

// vendorPayables lists active vendors with their payable ledgers
func (s *FinancialReportService) vendorPayables(ctx context.Context, filter reporting.ReportFilter) ([]PayableItem, decimal.Decimal, error) {
	vendors, err := s.vendorRepo.FindAllActive(ctx, filter.HostelID, filter.Search)
	if err != nil {
		return nil, decimal.Zero, err
	}

	items := make([]PayableItem, 0, len(vendors))
	total := decimal.Zero
	for i := range vendors {
		v := &vendors[i]
		total = total.Add(v.TotalPayable)
		balance := round2(v.Balance())
		totalPaid := round2(v.TotalPaid)
		items = append(items, PayableItem{
			ID:          v.ID,
			Reference:   fmt.Sprintf("VENDOR-%d", v.Sequence),
			Type:        "vendor",
			Title:       v.Name,
			Category:    string(v.ServiceType),
			Amount:      round2(v.TotalPayable),
			Balance:     &balance,
			TotalPaid:   &totalPaid,
			Date:        reporting.FormatDisplayDate(v.CreatedAt),
			HostelID:    v.HostelID,
			Description: v.CompanyName,
		})
	}
	return items, total, nil
}

// laundryPayables lists expenses whose category contains "laundry"
func (s *FinancialReportService) laundryPayables(ctx context.Context, filter reporting.ReportFilter) ([]PayableItem, decimal.Decimal, error) {
	laundry := "laundry"
	expenses, err := s.expenseRepo.FindAllByScope(ctx, expenseScope(filter, &laundry))
	if err != nil {
		return nil, decimal.Zero, err
	}

	items := make([]PayableItem, 0, len(expenses))
	total := decimal.Zero
	for i := range expenses {
		e := &expenses[i]
		total = total.Add(e.Amount)
		items = append(items, PayableItem{
			ID:          e.ID,
			Reference:   fmt.Sprintf("EXP-%d", e.Sequence),
			Type:        "laundry",
			Title:       e.Title,
			Category:    e.Category,
			Amount:      round2(e.Amount),
			Date:        reporting.FormatDisplayDate(e.Date),
			HostelID:    e.HostelID,
			Description: e.Description,
		})
	}
	return items, total, nil
}

func expenseScope(filter reporting.ReportFilter, category *string) billing.ExpenseScope {
	scope := billing.ExpenseScope{
		HostelID:  filter.HostelID,
		Category:  category,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	}
	if filter.Search != "" {
		search := filter.Search
		scope.Search = &search
	}
	return scope
}
