package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/hostelops/backend/internal/infrastructure/config"
)

// Common errors
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidClaims    = errors.New("invalid token claims")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrMissingSubject   = errors.New("missing employee id in claims")
)

// Claims represents custom JWT claims for a signed-in employee
type Claims struct {
	jwt.RegisteredClaims
	EmployeeID string  `json:"employee_id"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	HostelID   *string `json:"hostel_id,omitempty"`
}

// JWTService issues and validates access tokens
type JWTService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secret:     []byte(cfg.Secret),
		expiration: cfg.AccessTokenExpiration,
		issuer:     cfg.Issuer,
	}
}

// IssueToken generates a signed access token for an employee
func (s *JWTService) IssueToken(employeeID uuid.UUID, email string, role string, hostelID *uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiration)

	var hostelIDStr *string
	if hostelID != nil {
		str := hostelID.String()
		hostelIDStr = &str
	}

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   employeeID.String(),
			Audience:  jwt.ClaimStrings{s.issuer},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		EmployeeID: employeeID.String(),
		Email:      email,
		Role:       role,
		HostelID:   hostelIDStr,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// ValidateToken validates an access token and returns its claims
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, ErrTokenNotYetValid
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	if claims.EmployeeID == "" {
		return nil, ErrMissingSubject
	}

	return claims, nil
}

// GetEmployeeUUID extracts and parses the employee ID from claims
func (c *Claims) GetEmployeeUUID() (uuid.UUID, error) {
	return uuid.Parse(c.EmployeeID)
}

// GetHostelUUID extracts and parses the hostel scope from claims;
// nil means the employee is not scoped to a single hostel
func (c *Claims) GetHostelUUID() (*uuid.UUID, error) {
	if c.HostelID == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*c.HostelID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// IsAdmin reports whether the claims carry the admin role
func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}
