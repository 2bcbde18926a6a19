package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hostelops/backend/internal/application/accounts"
	"github.com/hostelops/backend/internal/domain/billing"
	"github.com/hostelops/backend/internal/domain/reporting"
	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/hostelops/backend/internal/domain/shared/valueobject"
	"github.com/hostelops/backend/internal/domain/tenancy"
)

// PaymentService provides application-level payment operations
// Recording a payment against a tenant raises the tenant's due balance;
// settling it lowers the balance again. Every write invalidates cached
// reports for the payment's hostel.
type PaymentService struct {
	paymentRepo billing.PaymentRepository
	tenantRepo  tenancy.TenantRepository
	cache       accounts.ReportCache
	logger      *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo billing.PaymentRepository,
	tenantRepo tenancy.TenantRepository,
	cache accounts.ReportCache,
	logger *zap.Logger,
) *PaymentService {
	if cache == nil {
		cache = accounts.NewNopReportCache()
	}
	return &PaymentService{
		paymentRepo: paymentRepo,
		tenantRepo:  tenantRepo,
		cache:       cache,
		logger:      logger,
	}
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID          uuid.UUID  `json:"id"`
	Reference   string     `json:"reference"`
	HostelID    uuid.UUID  `json:"hostel_id"`
	TenantID    *uuid.UUID `json:"tenant_id,omitempty"`
	Amount      float64    `json:"amount"`
	AmountPaid  float64    `json:"amount_paid"`
	Outstanding float64    `json:"outstanding"`
	Status      string     `json:"status"`
	PaymentType string     `json:"payment_type,omitempty"`
	Method      string     `json:"method,omitempty"`
	DueDate     string     `json:"due_date"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreatePaymentRequest represents a request to record an expected payment
type CreatePaymentRequest struct {
	HostelID    uuid.UUID       `json:"hostel_id" binding:"required"`
	TenantID    *uuid.UUID      `json:"tenant_id"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentType string          `json:"payment_type"`
	PaymentDate *time.Time      `json:"payment_date"`
	Description string          `json:"description"`
}

// SettlePaymentRequest represents a full settlement
type SettlePaymentRequest struct {
	Method        string  `json:"method" binding:"required"`
	ReceiptNumber *string `json:"receipt_number"`
}

// PartialPaymentRequest represents a partial settlement
type PartialPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Method string          `json:"method" binding:"required"`
}

// PaymentListQuery narrows the payment listing
type PaymentListQuery struct {
	HostelID *uuid.UUID
	TenantID *uuid.UUID
	Status   *billing.PaymentStatus
}

// CreatePayment records a new expected payment
func (s *PaymentService) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*PaymentResponse, error) {
	payment, err := billing.NewPayment(req.HostelID, req.TenantID, req.Amount, req.PaymentType, req.PaymentDate)
	if err != nil {
		return nil, err
	}
	payment.Description = req.Description

	if req.TenantID != nil {
		tenant, err := s.tenantRepo.FindByID(ctx, *req.TenantID)
		if err != nil {
			return nil, err
		}
		if err := tenant.AddDue(req.Amount); err != nil {
			return nil, err
		}
		if err := s.tenantRepo.Save(ctx, tenant); err != nil {
			return nil, err
		}
	}

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	s.cache.InvalidateHostel(ctx, payment.HostelID.String())
	return toPaymentResponse(payment), nil
}

// GetPayment finds a payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// ListPayments lists payments matching the query
func (s *PaymentService) ListPayments(ctx context.Context, query PaymentListQuery, filter shared.Filter) (*shared.Paginated[PaymentResponse], error) {
	filter.Normalize()

	scope := billing.PaymentScope{
		HostelID: query.HostelID,
		TenantID: query.TenantID,
		Status:   query.Status,
	}

	payments, err := s.paymentRepo.FindAll(ctx, scope, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.paymentRepo.Count(ctx, scope)
	if err != nil {
		return nil, err
	}

	items := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		items = append(items, *toPaymentResponse(&payments[i]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// SettlePayment marks a payment fully paid and settles the tenant's due
func (s *PaymentService) SettlePayment(ctx context.Context, id uuid.UUID, req SettlePaymentRequest) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	outstanding := payment.Outstanding()
	if err := payment.MarkPaid(billing.PaymentMethod(req.Method), req.ReceiptNumber, time.Now()); err != nil {
		return nil, err
	}

	if err := s.settleTenantDue(ctx, payment.TenantID, outstanding); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	s.cache.InvalidateHostel(ctx, payment.HostelID.String())
	return toPaymentResponse(payment), nil
}

// RecordPartialPayment records a partial settlement
func (s *PaymentService) RecordPartialPayment(ctx context.Context, id uuid.UUID, req PartialPaymentRequest) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := payment.RecordPartial(req.Amount, billing.PaymentMethod(req.Method), time.Now()); err != nil {
		return nil, err
	}

	if err := s.settleTenantDue(ctx, payment.TenantID, req.Amount); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	s.cache.InvalidateHostel(ctx, payment.HostelID.String())
	return toPaymentResponse(payment), nil
}

// MarkPaymentOverdue flags a payment as overdue
func (s *PaymentService) MarkPaymentOverdue(ctx context.Context, id uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := payment.MarkOverdue(); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	s.cache.InvalidateHostel(ctx, payment.HostelID.String())
	return toPaymentResponse(payment), nil
}

// DeletePayment deletes a payment
func (s *PaymentService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateHostel(ctx, payment.HostelID.String())
	return nil
}

func (s *PaymentService) settleTenantDue(ctx context.Context, tenantID *uuid.UUID, amount decimal.Decimal) error {
	if tenantID == nil || !amount.IsPositive() {
		return nil
	}

	tenant, err := s.tenantRepo.FindByID(ctx, *tenantID)
	if err != nil {
		return err
	}
	// dues may have been adjusted out of band; never settle below zero
	if amount.GreaterThan(tenant.TotalDue) {
		amount = tenant.TotalDue
	}
	if !amount.IsPositive() {
		return nil
	}
	if err := tenant.SettleDue(amount); err != nil {
		return err
	}
	return s.tenantRepo.Save(ctx, tenant)
}

func toPaymentResponse(p *billing.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:          p.ID,
		Reference:   reporting.PaymentReference(p),
		HostelID:    p.HostelID,
		TenantID:    p.TenantID,
		Amount:      valueobject.NewMoneyPKR(p.Amount).DisplayAmount(),
		AmountPaid:  valueobject.NewMoneyPKR(p.AmountPaid).DisplayAmount(),
		Outstanding: valueobject.NewMoneyPKR(p.Outstanding()).DisplayAmount(),
		Status:      string(reporting.ResolveReceivableStatus(p, time.Now())),
		PaymentType: p.PaymentType,
		Method:      string(p.Method),
		DueDate:     reporting.FormatDisplayDate(p.DueDate()),
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
