package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCampaign(t *testing.T) *Campaign {
	t.Helper()
	c, err := NewCampaign(uuid.New(), "Rent reminder March", CampaignChannelSMS, "Rent for March is due by the 5th.")
	require.NoError(t, err)
	return c
}

func TestCampaign_HappyPath(t *testing.T) {
	c := newTestCampaign(t)
	assert.Equal(t, CampaignStatusDraft, c.Status)

	require.NoError(t, c.Schedule(time.Now().Add(24*time.Hour)))
	assert.Equal(t, CampaignStatusScheduled, c.Status)
	require.NotNil(t, c.ScheduledAt)

	require.NoError(t, c.Start(120))
	assert.Equal(t, CampaignStatusRunning, c.Status)
	assert.Equal(t, 120, c.TotalRecipients)

	require.NoError(t, c.RecordProgress(118, 2))
	assert.Equal(t, 118, c.SentCount)
	assert.Equal(t, 2, c.FailedCount)

	require.NoError(t, c.Complete())
	assert.True(t, c.Status.IsTerminal())
}

func TestCampaign_InvalidTransitions(t *testing.T) {
	c := newTestCampaign(t)

	// cannot start before scheduling
	assert.Error(t, c.Start(10))

	// cannot schedule in the past
	assert.Error(t, c.Schedule(time.Now().Add(-time.Hour)))

	require.NoError(t, c.Schedule(time.Now().Add(time.Hour)))

	// cannot schedule twice
	assert.Error(t, c.Schedule(time.Now().Add(2*time.Hour)))

	require.NoError(t, c.Start(10))

	// progress beyond the audience rejected
	assert.Error(t, c.RecordProgress(9, 2))

	require.NoError(t, c.Complete())

	// terminal states reject everything
	assert.Error(t, c.Cancel())
	assert.Error(t, c.Complete())
}

func TestCampaign_CancelBeforeCompletion(t *testing.T) {
	c := newTestCampaign(t)
	require.NoError(t, c.Cancel())
	assert.Equal(t, CampaignStatusCancelled, c.Status)

	c2 := newTestCampaign(t)
	require.NoError(t, c2.Schedule(time.Now().Add(time.Hour)))
	require.NoError(t, c2.Cancel())

	c3 := newTestCampaign(t)
	require.NoError(t, c3.Schedule(time.Now().Add(time.Hour)))
	require.NoError(t, c3.Start(5))
	require.NoError(t, c3.Cancel())
}

func TestNewCampaign_Validation(t *testing.T) {
	_, err := NewCampaign(uuid.Nil, "x", CampaignChannelSMS, "msg")
	assert.Error(t, err)

	_, err = NewCampaign(uuid.New(), "", CampaignChannelSMS, "msg")
	assert.Error(t, err)

	_, err = NewCampaign(uuid.New(), "x", CampaignChannel("pigeon"), "msg")
	assert.Error(t, err)

	_, err = NewCampaign(uuid.New(), "x", CampaignChannelEmail, " ")
	assert.Error(t, err)
}
