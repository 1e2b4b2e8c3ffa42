// Package alert maintains the dashboard's live booking-update notification.
// A single pending alert is kept, last write wins; the unacknowledged flag
// stays up until an operator opens it.
package alert

import (
	"context"
	"sync"
	"time"

	"newsdesk/internal/broker"
	"newsdesk/internal/models"
	"newsdesk/internal/util"

	"go.uber.org/zap"
)

// Placeholder values used when the profile enrichment lookup fails or finds
// nothing. An alert is never dropped because its lookup failed.
const (
	UnknownName    = "Unknown User"
	UnknownPhone   = "N/A"
	UnknownAddress = "No address provided"
)

// BookingAlert is the enriched notification payload shown to the operator
type BookingAlert struct {
	BookingID  string    `json:"booking_id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	Status     string    `json:"status"`
	ReceivedAt time.Time `json:"received_at"`
}

// ProfileLookup resolves the profile a booking points at
type ProfileLookup interface {
	GetProfileByID(ctx context.Context, id string) (*models.Profile, error)
}

// Listener consumes booking-update change events and keeps the latest
// enriched alert for the dashboard to poll
type Listener struct {
	consumer *broker.Consumer
	handler  *broker.ChangeHandler
	profiles ProfileLookup
	logger   *zap.Logger

	mu      sync.Mutex
	pending *BookingAlert
	unacked bool

	stopOnce sync.Once
}

// NewListener creates a listener wired to the booking-update event stream
func NewListener(consumer *broker.Consumer, profiles ProfileLookup) *Listener {
	l := &Listener{
		consumer: consumer,
		handler:  broker.NewChangeHandler(),
		profiles: profiles,
		logger:   util.GetLogger(),
	}
	l.handler.OnBookingUpdated(l.handleBookingUpdated)
	return l
}

// Start consumes until the context is cancelled
func (l *Listener) Start(ctx context.Context) error {
	l.logger.Info("Starting booking alert listener")
	return l.consumer.StartConsuming(ctx, l.handler.HandleMessage)
}

// Stop cancels the subscription. Safe to call more than once; close errors
// are swallowed since teardown must succeed even with the broker gone.
func (l *Listener) Stop() {
	l.stopOnce.Do(func() {
		l.logger.Info("Stopping booking alert listener")
		if err := l.consumer.Close(); err != nil {
			l.logger.Warn("Error closing alert consumer", zap.Error(err))
		}
	})
}

func (l *Listener) handleBookingUpdated(ctx context.Context, event *models.BookingUpdatedEvent) error {
	a := &BookingAlert{
		BookingID:  event.BookingID,
		Name:       UnknownName,
		Phone:      UnknownPhone,
		Address:    UnknownAddress,
		Status:     event.Status,
		ReceivedAt: time.Now(),
	}
	if event.Address != "" {
		a.Address = event.Address
	}

	if event.UserID != nil && *event.UserID != "" {
		profile, err := l.profiles.GetProfileByID(ctx, *event.UserID)
		switch {
		case err != nil:
			util.BookingAlertLookupFailures.Inc()
			l.logger.Warn("Alert profile lookup failed, using placeholders",
				zap.String("user_id", *event.UserID), zap.Error(err))
		case profile == nil:
			util.BookingAlertLookupFailures.Inc()
		default:
			if profile.Name != "" {
				a.Name = profile.Name
			}
			if profile.Phone != "" {
				a.Phone = profile.Phone
			}
		}
	}

	l.mu.Lock()
	l.pending = a
	l.unacked = true
	l.mu.Unlock()

	util.BookingAlertsTotal.Inc()
	l.logger.Info("Booking alert raised",
		zap.String("booking_id", a.BookingID), zap.String("name", a.Name))
	return nil
}

// Snapshot returns the latest alert payload (nil if none yet) and whether it
// is still unacknowledged
func (l *Listener) Snapshot() (*BookingAlert, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending, l.unacked
}

// Acknowledge clears the unacknowledged indicator. The payload stays around
// for display on demand; this is a display reset, not a re-arm.
func (l *Listener) Acknowledge() {
	l.mu.Lock()
	l.unacked = false
	l.mu.Unlock()
}
