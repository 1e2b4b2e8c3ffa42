package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"newsdesk/internal/models"
	"newsdesk/internal/util"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ChangePublisher publishes row-change events. It stands in for the
// database-side change feed: every mutation that listeners care about goes
// through here after the row is written.
type ChangePublisher struct {
	producer *Producer
}

// NewChangePublisher creates a new change publisher
func NewChangePublisher(producer *Producer) *ChangePublisher {
	return &ChangePublisher{producer: producer}
}

func newBaseEvent(eventType string) models.BaseEvent {
	return models.BaseEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now(),
	}
}

// PublishSubscriptionChanged publishes a subscription create/update/delete event
func (cp *ChangePublisher) PublishSubscriptionChanged(ctx context.Context, eventType string, sub *models.Subscription) error {
	event := &models.SubscriptionChangedEvent{
		BaseEvent:      newBaseEvent(eventType),
		SubscriptionID: sub.ID,
		UserID:         sub.UserID,
		Status:         sub.Status,
		PaymentStatus:  sub.PaymentStatus,
	}
	util.ChangeEventsPublished.WithLabelValues(eventType).Inc()
	return cp.producer.PublishEvent(ctx, "subscription-"+sub.ID, event)
}

// PublishBookingCreated publishes a booking insert event
func (cp *ChangePublisher) PublishBookingCreated(ctx context.Context, b *models.ServiceBooking) error {
	event := &models.BookingCreatedEvent{
		BaseEvent: newBaseEvent(models.EventTypeBookingCreated),
		BookingID: b.ID,
		UserID:    b.UserID,
		ServiceID: b.ServiceID,
	}
	util.ChangeEventsPublished.WithLabelValues(models.EventTypeBookingCreated).Inc()
	return cp.producer.PublishEvent(ctx, "booking-"+b.ID, event)
}

// PublishBookingUpdated publishes a booking update event
func (cp *ChangePublisher) PublishBookingUpdated(ctx context.Context, b *models.ServiceBooking) error {
	event := &models.BookingUpdatedEvent{
		BaseEvent: newBaseEvent(models.EventTypeBookingUpdated),
		BookingID: b.ID,
		UserID:    b.UserID,
		Address:   b.Address,
		Status:    b.Status,
	}
	util.ChangeEventsPublished.WithLabelValues(models.EventTypeBookingUpdated).Inc()
	return cp.producer.PublishEvent(ctx, "booking-"+b.ID, event)
}

// PublishPaymentRecorded publishes a payment insert event
func (cp *ChangePublisher) PublishPaymentRecorded(ctx context.Context, p *models.Payment) error {
	event := &models.PaymentRecordedEvent{
		BaseEvent: newBaseEvent(models.EventTypePaymentRecorded),
		PaymentID: p.ID,
		UserID:    p.UserID,
		Amount:    p.Amount,
		Status:    p.Status,
	}
	util.ChangeEventsPublished.WithLabelValues(models.EventTypePaymentRecorded).Inc()
	return cp.producer.PublishEvent(ctx, "payment-"+p.ID, event)
}

// ChangeHandler routes row-change messages to registered callbacks
type ChangeHandler struct {
	onBookingUpdated func(context.Context, *models.BookingUpdatedEvent) error
}

// NewChangeHandler creates a new change handler
func NewChangeHandler() *ChangeHandler {
	return &ChangeHandler{}
}

// OnBookingUpdated registers a handler for booking update events
func (ch *ChangeHandler) OnBookingUpdated(handler func(context.Context, *models.BookingUpdatedEvent) error) {
	ch.onBookingUpdated = handler
}

// HandleMessage routes a message to the appropriate handler. Event types with
// no registered handler are skipped, not errors: the change topic carries
// more than any one listener cares about.
func (ch *ChangeHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	switch baseEvent.EventType {
	case models.EventTypeBookingUpdated:
		if ch.onBookingUpdated != nil {
			var event models.BookingUpdatedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal BookingUpdated event: %w", err)
			}
			return ch.onBookingUpdated(ctx, &event)
		}

	default:
		util.GetLogger().Debug("Skipping event with no handler",
			zap.String("type", baseEvent.EventType))
	}

	return nil
}
