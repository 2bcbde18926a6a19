package tenancy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployee(t *testing.T) {
	hostelID := uuid.New()

	tests := []struct {
		name     string
		empName  string
		email    string
		password string
		role     EmployeeRole
		hostelID *uuid.UUID
		wantErr  bool
	}{
		{
			name:     "valid admin without hostel",
			empName:  "Fatima Noor",
			email:    "fatima@hostelops.pk",
			password: "s3cret-pass",
			role:     EmployeeRoleAdmin,
			hostelID: nil,
			wantErr:  false,
		},
		{
			name:     "valid manager with hostel",
			empName:  "Bilal Raza",
			email:    "bilal@hostelops.pk",
			password: "s3cret-pass",
			role:     EmployeeRoleManager,
			hostelID: &hostelID,
			wantErr:  false,
		},
		{
			name:     "manager without hostel",
			empName:  "Bilal Raza",
			email:    "bilal@hostelops.pk",
			password: "s3cret-pass",
			role:     EmployeeRoleManager,
			hostelID: nil,
			wantErr:  true,
		},
		{
			name:     "short password",
			empName:  "Bilal Raza",
			email:    "bilal@hostelops.pk",
			password: "short",
			role:     EmployeeRoleStaff,
			hostelID: &hostelID,
			wantErr:  true,
		},
		{
			name:     "bad email",
			empName:  "Bilal Raza",
			email:    "not-an-email",
			password: "s3cret-pass",
			role:     EmployeeRoleStaff,
			hostelID: &hostelID,
			wantErr:  true,
		},
		{
			name:     "unknown role",
			empName:  "Bilal Raza",
			email:    "bilal@hostelops.pk",
			password: "s3cret-pass",
			role:     EmployeeRole("owner"),
			hostelID: &hostelID,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEmployee(tt.empName, tt.email, tt.password, tt.role, tt.hostelID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, EmployeeStatusActive, e.Status)
			assert.NotEqual(t, tt.password, e.PasswordHash)
			assert.True(t, e.VerifyPassword(tt.password))
			assert.False(t, e.VerifyPassword("wrong-password"))
		})
	}
}

func TestEmployee_ChangePassword(t *testing.T) {
	e, err := NewEmployee("Fatima Noor", "fatima@hostelops.pk", "s3cret-pass", EmployeeRoleAdmin, nil)
	require.NoError(t, err)

	require.NoError(t, e.ChangePassword("new-s3cret-pass"))
	assert.True(t, e.VerifyPassword("new-s3cret-pass"))
	assert.False(t, e.VerifyPassword("s3cret-pass"))

	err = e.ChangePassword("tiny")
	assert.Error(t, err)
}

func TestEmployee_EmailNormalized(t *testing.T) {
	e, err := NewEmployee("Fatima Noor", "Fatima@HostelOps.PK", "s3cret-pass", EmployeeRoleAdmin, nil)
	require.NoError(t, err)
	assert.Equal(t, "fatima@hostelops.pk", e.Email)
}
