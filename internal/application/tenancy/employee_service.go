package tenancy

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/hostelops/backend/internal/domain/tenancy"
)

// TokenIssuer mints access tokens for authenticated employees
type TokenIssuer interface {
	IssueToken(employeeID uuid.UUID, email string, role string, hostelID *uuid.UUID) (token string, expiresAt time.Time, err error)
}

// EmployeeService provides application-level employee operations,
// including sign-in
type EmployeeService struct {
	employeeRepo tenancy.EmployeeRepository
	tokens       TokenIssuer
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo tenancy.EmployeeRepository, tokens TokenIssuer) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		tokens:       tokens,
	}
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	HostelID  *uuid.UUID `json:"hostel_id,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateEmployeeRequest represents a request to register an employee
type CreateEmployeeRequest struct {
	Name     string     `json:"name" binding:"required"`
	Email    string     `json:"email" binding:"required,email"`
	Password string     `json:"password" binding:"required,min=8"`
	Role     string     `json:"role" binding:"required,oneof=admin manager staff"`
	HostelID *uuid.UUID `json:"hostel_id"`
	Phone    string     `json:"phone"`
}

// LoginRequest represents a sign-in request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the signed-in employee
type LoginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Employee  EmployeeResponse `json:"employee"`
}

// CreateEmployee registers a new employee account
func (s *EmployeeService) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	exists, err := s.employeeRepo.ExistsByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An employee with this email already exists")
	}

	employee, err := tenancy.NewEmployee(req.Name, req.Email, req.Password, tenancy.EmployeeRole(req.Role), req.HostelID)
	if err != nil {
		return nil, err
	}
	employee.Phone = req.Phone

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	return toEmployeeResponse(employee), nil
}

// Login authenticates an employee and issues an access token.
// A wrong email and a wrong password produce the same error.
func (s *EmployeeService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	employee, err := s.employeeRepo.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !employee.IsActive() || !employee.VerifyPassword(req.Password) {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	token, expiresAt, err := s.tokens.IssueToken(employee.ID, employee.Email, string(employee.Role), employee.HostelID)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Employee:  *toEmployeeResponse(employee),
	}, nil
}

// GetEmployee finds an employee by ID
func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// ListEmployees lists employees, optionally scoped to a hostel
func (s *EmployeeService) ListEmployees(ctx context.Context, hostelID *uuid.UUID, filter shared.Filter) (*shared.Paginated[EmployeeResponse], error) {
	filter.Normalize()

	var (
		employees []tenancy.Employee
		err       error
	)
	if hostelID != nil {
		employees, err = s.employeeRepo.FindByHostel(ctx, *hostelID, filter)
	} else {
		employees, err = s.employeeRepo.FindAll(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.employeeRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		items = append(items, *toEmployeeResponse(&employees[i]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// DeactivateEmployee disables an employee account
func (s *EmployeeService) DeactivateEmployee(ctx context.Context, id uuid.UUID) error {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	employee.Deactivate()
	return s.employeeRepo.Save(ctx, employee)
}

// DeleteEmployee deletes an employee account
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	if _, err := s.employeeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

func toEmployeeResponse(e *tenancy.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Role:      string(e.Role),
		Status:    string(e.Status),
		HostelID:  e.HostelID,
		Phone:     e.Phone,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
