package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	tenancyapp "github.com/hostelops/backend/internal/application/tenancy"
	"github.com/hostelops/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	employeeService *tenancyapp.EmployeeService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(employeeService *tenancyapp.EmployeeService) *AuthHandler {
	return &AuthHandler{employeeService: employeeService}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/login", h.Login)
	auth.GET("/me", h.Me)
}

// Login exchanges credentials for an access token
func (h *AuthHandler) Login(c *gin.Context) {
	var req tenancyapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.employeeService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Me returns the authenticated employee
func (h *AuthHandler) Me(c *gin.Context) {
	employeeID, err := uuid.Parse(middleware.GetJWTEmployeeID(c))
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.employeeService.GetEmployee(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
