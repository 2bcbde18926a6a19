package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHostel(t *testing.T) {
	tests := []struct {
		name       string
		hostelName string
		hostelType HostelType
		wantErr    bool
		errMsg     string
	}{
		{
			name:       "valid boys hostel",
			hostelName: "Gulberg Boys Hostel",
			hostelType: HostelTypeBoys,
			wantErr:    false,
		},
		{
			name:       "valid girls hostel",
			hostelName: "City Girls Hostel",
			hostelType: HostelTypeGirls,
			wantErr:    false,
		},
		{
			name:       "empty name",
			hostelName: "",
			hostelType: HostelTypeBoys,
			wantErr:    true,
			errMsg:     "name cannot",
		},
		{
			name:       "whitespace only name",
			hostelName: "   ",
			hostelType: HostelTypeBoys,
			wantErr:    true,
			errMsg:     "name cannot",
		},
		{
			name:       "unknown type",
			hostelName: "Some Hostel",
			hostelType: HostelType("dormitory"),
			wantErr:    true,
			errMsg:     "boys, girls, or mixed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHostel(tt.hostelName, tt.hostelType)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hostelName, h.Name)
			assert.Equal(t, tt.hostelType, h.Type)
			assert.Equal(t, HostelStatusActive, h.Status)
			assert.NotEmpty(t, h.ID)
			assert.Equal(t, 1, h.Version)
		})
	}
}

func TestHostel_SetCapacity(t *testing.T) {
	h, err := NewHostel("Gulberg Boys Hostel", HostelTypeBoys)
	require.NoError(t, err)

	require.NoError(t, h.SetCapacity(10, 40))
	assert.Equal(t, 10, h.TotalRooms)
	assert.Equal(t, 40, h.TotalBeds)
	assert.Equal(t, 2, h.Version)

	err = h.SetCapacity(-1, 10)
	assert.Error(t, err)

	err = h.SetCapacity(10, 5)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Bed count")
}

func TestHostel_ActivateDeactivate(t *testing.T) {
	h, err := NewHostel("Gulberg Boys Hostel", HostelTypeBoys)
	require.NoError(t, err)
	assert.True(t, h.IsActive())

	h.Deactivate()
	assert.False(t, h.IsActive())
	assert.Equal(t, HostelStatusInactive, h.Status)

	h.Activate()
	assert.True(t, h.IsActive())
}
