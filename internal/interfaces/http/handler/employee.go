package handler

import (
	"github.com/gin-gonic/gin"

	tenancyapp "github.com/hostelops/backend/internal/application/tenancy"
	"github.com/hostelops/backend/internal/interfaces/http/middleware"
)

// EmployeeHandler handles employee management endpoints
type EmployeeHandler struct {
	BaseHandler
	employeeService *tenancyapp.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *tenancyapp.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// RegisterRoutes registers employee routes. Account management is admin-only
func (h *EmployeeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	employees := rg.Group("/employees")
	employees.GET("", h.List)
	employees.GET("/:id", h.Get)

	admin := employees.Group("", middleware.RequireRole("admin"))
	admin.POST("", h.Create)
	admin.POST("/:id/deactivate", h.Deactivate)
	admin.DELETE("/:id", h.Delete)
}

// Create registers a new employee account
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req tenancyapp.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get returns a single employee
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	resp, err := h.employeeService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns employees, optionally scoped to a hostel
func (h *EmployeeHandler) List(c *gin.Context) {
	result, err := h.employeeService.ListEmployees(c.Request.Context(), hostelScope(c), bindFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, result)
}

// Deactivate disables an employee account
func (h *EmployeeHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.employeeService.DeactivateEmployee(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete removes an employee account
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
