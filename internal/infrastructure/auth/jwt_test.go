package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelops/backend/internal/infrastructure/config"
)

func newTestJWTService() *JWTService {
	cfg := config.JWTConfig{
		Secret:                "test-secret-key-at-least-32-chars",
		AccessTokenExpiration: 15 * time.Minute,
		Issuer:                "test-issuer",
	}
	return NewJWTService(cfg)
}

func TestIssueToken(t *testing.T) {
	svc := newTestJWTService()
	employeeID := uuid.New()
	hostelID := uuid.New()

	token, expiresAt, err := svc.IssueToken(employeeID, "manager@hostel.pk", "manager", &hostelID)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))
}

func TestValidateToken_Success(t *testing.T) {
	svc := newTestJWTService()
	employeeID := uuid.New()
	hostelID := uuid.New()

	token, _, err := svc.IssueToken(employeeID, "manager@hostel.pk", "manager", &hostelID)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, employeeID.String(), claims.EmployeeID)
	assert.Equal(t, "manager@hostel.pk", claims.Email)
	assert.Equal(t, "manager", claims.Role)
	require.NotNil(t, claims.HostelID)
	assert.Equal(t, hostelID.String(), *claims.HostelID)

	parsedEmployee, err := claims.GetEmployeeUUID()
	require.NoError(t, err)
	assert.Equal(t, employeeID, parsedEmployee)

	parsedHostel, err := claims.GetHostelUUID()
	require.NoError(t, err)
	require.NotNil(t, parsedHostel)
	assert.Equal(t, hostelID, *parsedHostel)
}

func TestValidateToken_AdminWithoutHostelScope(t *testing.T) {
	svc := newTestJWTService()

	token, _, err := svc.IssueToken(uuid.New(), "admin@hostel.pk", "admin", nil)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)

	require.NoError(t, err)
	assert.Nil(t, claims.HostelID)
	assert.True(t, claims.IsAdmin())

	scope, err := claims.GetHostelUUID()
	require.NoError(t, err)
	assert.Nil(t, scope)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:                "test-secret-key-at-least-32-chars",
		AccessTokenExpiration: -1 * time.Hour, // Already expired
		Issuer:                "test-issuer",
	}
	svc := NewJWTService(cfg)

	token, _, err := svc.IssueToken(uuid.New(), "manager@hostel.pk", "manager", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)

	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ValidateToken("invalid-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService(config.JWTConfig{
		Secret:                "a-completely-different-secret-key",
		AccessTokenExpiration: 15 * time.Minute,
		Issuer:                "test-issuer",
	})

	token, _, err := other.IssueToken(uuid.New(), "manager@hostel.pk", "manager", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}
