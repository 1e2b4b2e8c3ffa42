package alert

import (
	"context"
	"errors"
	"testing"

	"newsdesk/internal/broker"
	"newsdesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProfiles struct {
	profiles map[string]*models.Profile
	err      error
}

func (f *fakeProfiles) GetProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[id], nil
}

func newTestListener(profiles ProfileLookup) *Listener {
	return &Listener{
		profiles: profiles,
		logger:   zap.NewNop(),
	}
}

func TestAlertEnrichment(t *testing.T) {
	userID := "u1"
	l := newTestListener(&fakeProfiles{profiles: map[string]*models.Profile{
		"u1": {ID: "u1", Name: "Ravi Kumar", Phone: "9876543210"},
	}})

	err := l.handleBookingUpdated(context.Background(), &models.BookingUpdatedEvent{
		BookingID: "b1",
		UserID:    &userID,
		Address:   "12 Park Street",
		Status:    "completed",
	})
	require.NoError(t, err)

	alert, unacked := l.Snapshot()
	require.NotNil(t, alert)
	assert.True(t, unacked)
	assert.Equal(t, "b1", alert.BookingID)
	assert.Equal(t, "Ravi Kumar", alert.Name)
	assert.Equal(t, "9876543210", alert.Phone)
	assert.Equal(t, "12 Park Street", alert.Address)
	assert.Equal(t, "completed", alert.Status)
	assert.False(t, alert.ReceivedAt.IsZero())
}

func TestAlertPlaceholdersOnLookupFailure(t *testing.T) {
	userID := "u1"
	l := newTestListener(&fakeProfiles{err: errors.New("connection refused")})

	err := l.handleBookingUpdated(context.Background(), &models.BookingUpdatedEvent{
		BookingID: "b1",
		UserID:    &userID,
		Status:    "pending",
	})
	require.NoError(t, err)

	alert, unacked := l.Snapshot()
	require.NotNil(t, alert)
	assert.True(t, unacked)
	assert.Equal(t, UnknownName, alert.Name)
	assert.Equal(t, UnknownPhone, alert.Phone)
	assert.Equal(t, UnknownAddress, alert.Address)
}

func TestAlertPlaceholdersOnMissingProfile(t *testing.T) {
	userID := "ghost"
	l := newTestListener(&fakeProfiles{profiles: map[string]*models.Profile{}})

	err := l.handleBookingUpdated(context.Background(), &models.BookingUpdatedEvent{
		BookingID: "b1",
		UserID:    &userID,
		Status:    "pending",
	})
	require.NoError(t, err)

	alert, _ := l.Snapshot()
	require.NotNil(t, alert)
	assert.Equal(t, UnknownName, alert.Name)
	assert.Equal(t, UnknownPhone, alert.Phone)
}

func TestAlertNilUserID(t *testing.T) {
	l := newTestListener(&fakeProfiles{err: errors.New("should not be called")})

	err := l.handleBookingUpdated(context.Background(), &models.BookingUpdatedEvent{
		BookingID: "b1",
		Status:    "pending",
	})
	require.NoError(t, err)

	alert, _ := l.Snapshot()
	require.NotNil(t, alert)
	assert.Equal(t, UnknownName, alert.Name)
}

func TestAlertLastWriteWins(t *testing.T) {
	l := newTestListener(&fakeProfiles{})
	ctx := context.Background()

	require.NoError(t, l.handleBookingUpdated(ctx, &models.BookingUpdatedEvent{BookingID: "b1", Status: "pending"}))
	require.NoError(t, l.handleBookingUpdated(ctx, &models.BookingUpdatedEvent{BookingID: "b2", Status: "completed"}))

	alert, unacked := l.Snapshot()
	require.NotNil(t, alert)
	assert.True(t, unacked)
	assert.Equal(t, "b2", alert.BookingID)
}

func TestAcknowledgeKeepsPayload(t *testing.T) {
	l := newTestListener(&fakeProfiles{})
	ctx := context.Background()

	require.NoError(t, l.handleBookingUpdated(ctx, &models.BookingUpdatedEvent{BookingID: "b1", Status: "pending"}))

	l.Acknowledge()

	alert, unacked := l.Snapshot()
	require.NotNil(t, alert)
	assert.False(t, unacked)
	assert.Equal(t, "b1", alert.BookingID)

	// a later event re-arms the indicator
	require.NoError(t, l.handleBookingUpdated(ctx, &models.BookingUpdatedEvent{BookingID: "b2", Status: "pending"}))
	_, unacked = l.Snapshot()
	assert.True(t, unacked)
}

func TestSnapshotBeforeAnyEvent(t *testing.T) {
	l := newTestListener(&fakeProfiles{})

	alert, unacked := l.Snapshot()
	assert.Nil(t, alert)
	assert.False(t, unacked)
}

func TestStopIsIdempotent(t *testing.T) {
	consumer := broker.NewConsumer([]string{"localhost:9092"}, "row-changes", "test-group")
	l := NewListener(consumer, &fakeProfiles{})

	l.Stop()
	l.Stop()
}
