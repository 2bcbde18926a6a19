package accounts

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/hostelops/backend/internal/domain/billing"
	"github.com/hostelops/backend/internal/domain/property"
	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/hostelops/backend/internal/domain/tenancy"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByReceiptNumber(ctx context.Context, receiptNumber string) (*billing.Payment, error) {
	args := m.Called(ctx, receiptNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context, scope billing.PaymentScope, filter shared.Filter) ([]billing.Payment, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindOutstanding(ctx context.Context, scope billing.PaymentScope, filter shared.Filter) ([]billing.Payment, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) CountOutstanding(ctx context.Context, scope billing.PaymentScope) (int64, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) SumAmount(ctx context.Context, scope billing.PaymentScope) (decimal.Decimal, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) SumOutstanding(ctx context.Context, scope billing.PaymentScope) (decimal.Decimal, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *billing.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentRepository) Count(ctx context.Context, scope billing.PaymentScope) (int64, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).(int64), args.Error(1)
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindAll(ctx context.Context, scope billing.ExpenseScope, filter shared.Filter) ([]billing.Expense, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindAllByScope(ctx context.Context, scope billing.ExpenseScope) ([]billing.Expense, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SumAmount(ctx context.Context, scope billing.ExpenseScope) (decimal.Decimal, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExpenseRepository) Save(ctx context.Context, expense *billing.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExpenseRepository) Count(ctx context.Context, scope billing.ExpenseScope) (int64, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).(int64), args.Error(1)
}

type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Alert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Alert), args.Error(1)
}

func (m *MockAlertRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Alert, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Alert), args.Error(1)
}

func (m *MockAlertRepository) FindByType(ctx context.Context, hostelID *uuid.UUID, alertType billing.AlertType, filter shared.Filter) ([]billing.Alert, error) {
	args := m.Called(ctx, hostelID, alertType, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Alert), args.Error(1)
}

func (m *MockAlertRepository) FindAllByType(ctx context.Context, hostelID *uuid.UUID, alertType billing.AlertType) ([]billing.Alert, error) {
	args := m.Called(ctx, hostelID, alertType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Alert), args.Error(1)
}

func (m *MockAlertRepository) FindOpen(ctx context.Context, hostelID *uuid.UUID, filter shared.Filter) ([]billing.Alert, error) {
	args := m.Called(ctx, hostelID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Alert), args.Error(1)
}

func (m *MockAlertRepository) SumAmountByType(ctx context.Context, hostelID *uuid.UUID, alertType billing.AlertType) (decimal.Decimal, error) {
	args := m.Called(ctx, hostelID, alertType)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAlertRepository) Save(ctx context.Context, alert *billing.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAlertRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAlertRepository) CountOpen(ctx context.Context, hostelID *uuid.UUID) (int64, error) {
	args := m.Called(ctx, hostelID)
	return args.Get(0).(int64), args.Error(1)
}

type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Vendor, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindByHostel(ctx context.Context, hostelID uuid.UUID, filter shared.Filter) ([]property.Vendor, error) {
	args := m.Called(ctx, hostelID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindByServiceType(ctx context.Context, hostelID *uuid.UUID, serviceType property.ServiceType, filter shared.Filter) ([]property.Vendor, error) {
	args := m.Called(ctx, hostelID, serviceType, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindActive(ctx context.Context, hostelID *uuid.UUID, filter shared.Filter) ([]property.Vendor, error) {
	args := m.Called(ctx, hostelID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindAllActive(ctx context.Context, hostelID *uuid.UUID, search string) ([]property.Vendor, error) {
	args := m.Called(ctx, hostelID, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Vendor), args.Error(1)
}

func (m *MockVendorRepository) Save(ctx context.Context, vendor *property.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVendorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVendorRepository) CountByHostel(ctx context.Context, hostelID uuid.UUID) (int64, error) {
	args := m.Called(ctx, hostelID)
	return args.Get(0).(int64), args.Error(1)
}

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByCNIC(ctx context.Context, cnic string) (*tenancy.Tenant, error) {
	args := m.Called(ctx, cnic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenancy.Tenant, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByHostel(ctx context.Context, hostelID uuid.UUID, filter shared.Filter) ([]tenancy.Tenant, error) {
	args := m.Called(ctx, hostelID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindWithDue(ctx context.Context, hostelID *uuid.UUID, filter shared.Filter) ([]tenancy.Tenant, error) {
	args := m.Called(ctx, hostelID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) SumDueForActiveAllocations(ctx context.Context, hostelID *uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, hostelID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTenantRepository) Save(ctx context.Context, tenant *tenancy.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTenantRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTenantRepository) CountActiveByHostel(ctx context.Context, hostelID uuid.UUID) (int64, error) {
	args := m.Called(ctx, hostelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTenantRepository) CountActiveAllocations(ctx context.Context, hostelID *uuid.UUID) (int64, error) {
	args := m.Called(ctx, hostelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTenantRepository) ExistsByCNIC(ctx context.Context, cnic string) (bool, error) {
	args := m.Called(ctx, cnic)
	return args.Bool(0), args.Error(1)
}

type MockHostelRepository struct {
	mock.Mock
}

func (m *MockHostelRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Hostel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Hostel), args.Error(1)
}

func (m *MockHostelRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Hostel, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Hostel), args.Error(1)
}

func (m *MockHostelRepository) FindByStatus(ctx context.Context, status property.HostelStatus, filter shared.Filter) ([]property.Hostel, error) {
	args := m.Called(ctx, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Hostel), args.Error(1)
}

func (m *MockHostelRepository) FindActive(ctx context.Context, filter shared.Filter) ([]property.Hostel, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Hostel), args.Error(1)
}

func (m *MockHostelRepository) Save(ctx context.Context, hostel *property.Hostel) error {
	args := m.Called(ctx, hostel)
	return args.Error(0)
}

func (m *MockHostelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHostelRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHostelRepository) CountActive(ctx context.Context, hostelID *uuid.UUID) (int64, error) {
	args := m.Called(ctx, hostelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHostelRepository) SumCapacity(ctx context.Context, hostelID *uuid.UUID) (int64, int64, error) {
	args := m.Called(ctx, hostelID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockHostelRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenancy.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]tenancy.Booking, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByHostel(ctx context.Context, hostelID uuid.UUID, filter shared.Filter) ([]tenancy.Booking, error) {
	args := m.Called(ctx, hostelID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByStatus(ctx context.Context, hostelID *uuid.UUID, status tenancy.BookingStatus, filter shared.Filter) ([]tenancy.Booking, error) {
	args := m.Called(ctx, hostelID, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Booking), args.Error(1)
}

func (m *MockBookingRepository) Save(ctx context.Context, booking *tenancy.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) CountByStatus(ctx context.Context, hostelID *uuid.UUID, status tenancy.BookingStatus) (int64, error) {
	args := m.Called(ctx, hostelID, status)
	return args.Get(0).(int64), args.Error(1)
}

// ensure the mocks satisfy their interfaces
var (
	_ billing.PaymentRepository  = (*MockPaymentRepository)(nil)
	_ billing.ExpenseRepository  = (*MockExpenseRepository)(nil)
	_ billing.AlertRepository    = (*MockAlertRepository)(nil)
	_ property.VendorRepository  = (*MockVendorRepository)(nil)
	_ property.HostelRepository  = (*MockHostelRepository)(nil)
	_ tenancy.TenantRepository   = (*MockTenantRepository)(nil)
	_ tenancy.BookingRepository  = (*MockBookingRepository)(nil)
)
