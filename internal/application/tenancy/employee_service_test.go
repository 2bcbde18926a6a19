package tenancy

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/hostelops/backend/internal/domain/tenancy"
)

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByEmail(ctx context.Context, email string) (*tenancy.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenancy.Employee, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByHostel(ctx context.Context, hostelID uuid.UUID, filter shared.Filter) ([]tenancy.Employee, error) {
	args := m.Called(ctx, hostelID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Save(ctx context.Context, employee *tenancy.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

var _ tenancy.EmployeeRepository = (*MockEmployeeRepository)(nil)

type stubTokenIssuer struct {
	token string
	err   error
}

func (s *stubTokenIssuer) IssueToken(employeeID uuid.UUID, email string, role string, hostelID *uuid.UUID) (string, time.Time, error) {
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	return s.token, time.Now().Add(24 * time.Hour), nil
}

func newTestEmployee(t *testing.T, password string) *tenancy.Employee {
	t.Helper()
	hostelID := uuid.New()
	employee, err := tenancy.NewEmployee("Ayesha Khan", "ayesha@hostel.pk", password, tenancy.EmployeeRoleManager, &hostelID)
	require.NoError(t, err)
	return employee
}

func TestEmployeeService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials issue a token", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		employee := newTestEmployee(t, "correct-horse")
		repo.On("FindByEmail", ctx, "ayesha@hostel.pk").Return(employee, nil)

		service := NewEmployeeService(repo, &stubTokenIssuer{token: "signed-token"})
		resp, err := service.Login(ctx, LoginRequest{Email: "Ayesha@Hostel.PK", Password: "correct-horse"})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, "ayesha@hostel.pk", resp.Employee.Email)
		assert.Equal(t, "manager", resp.Employee.Role)
		repo.AssertExpectations(t)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		employee := newTestEmployee(t, "correct-horse")
		repo.On("FindByEmail", ctx, "ayesha@hostel.pk").Return(employee, nil)

		service := NewEmployeeService(repo, &stubTokenIssuer{token: "signed-token"})
		_, err := service.Login(ctx, LoginRequest{Email: "ayesha@hostel.pk", Password: "battery-staple"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email or password")
	})

	t.Run("unknown email yields the same error as a wrong password", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		repo.On("FindByEmail", ctx, "nobody@hostel.pk").Return(nil, shared.ErrNotFound)

		service := NewEmployeeService(repo, &stubTokenIssuer{token: "signed-token"})
		_, err := service.Login(ctx, LoginRequest{Email: "nobody@hostel.pk", Password: "whatever-123"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email or password")
	})

	t.Run("deactivated employees cannot sign in", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		employee := newTestEmployee(t, "correct-horse")
		employee.Deactivate()
		repo.On("FindByEmail", ctx, "ayesha@hostel.pk").Return(employee, nil)

		service := NewEmployeeService(repo, &stubTokenIssuer{token: "signed-token"})
		_, err := service.Login(ctx, LoginRequest{Email: "ayesha@hostel.pk", Password: "correct-horse"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email or password")
	})
}

func TestEmployeeService_CreateEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		repo.On("ExistsByEmail", ctx, "ayesha@hostel.pk").Return(true, nil)

		service := NewEmployeeService(repo, &stubTokenIssuer{})
		hostelID := uuid.New()
		_, err := service.CreateEmployee(ctx, CreateEmployeeRequest{
			Name:     "Ayesha Khan",
			Email:    "Ayesha@Hostel.PK",
			Password: "correct-horse",
			Role:     "manager",
			HostelID: &hostelID,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("persists a new employee with a hashed password", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		repo.On("ExistsByEmail", ctx, "ayesha@hostel.pk").Return(false, nil)
		repo.On("Save", ctx, mock.MatchedBy(func(e *tenancy.Employee) bool {
			return e.Email == "ayesha@hostel.pk" && e.PasswordHash != "correct-horse" && e.VerifyPassword("correct-horse")
		})).Return(nil)

		service := NewEmployeeService(repo, &stubTokenIssuer{})
		hostelID := uuid.New()
		resp, err := service.CreateEmployee(ctx, CreateEmployeeRequest{
			Name:     "Ayesha Khan",
			Email:    "Ayesha@Hostel.PK",
			Password: "correct-horse",
			Role:     "manager",
			HostelID: &hostelID,
			Phone:    "0300-1234567",
		})

		require.NoError(t, err)
		assert.Equal(t, "active", resp.Status)
		repo.AssertExpectations(t)
	})
}
