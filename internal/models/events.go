package models

import "time"

// Event types
const (
	EventTypeSubscriptionCreated = "SUBSCRIPTION_CREATED"
	EventTypeSubscriptionUpdated = "SUBSCRIPTION_UPDATED"
	EventTypeSubscriptionDeleted = "SUBSCRIPTION_DELETED"
	EventTypeBookingCreated      = "BOOKING_CREATED"
	EventTypeBookingUpdated      = "BOOKING_UPDATED"
	EventTypePaymentRecorded     = "PAYMENT_RECORDED"
)

// BaseEvent contains common fields for all row-change events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// SubscriptionChangedEvent published when a subscription row is written
type SubscriptionChangedEvent struct {
	BaseEvent
	SubscriptionID string  `json:"subscription_id"`
	UserID         *string `json:"user_id"`
	Status         string  `json:"status"`
	PaymentStatus  string  `json:"payment_status"`
}

// BookingCreatedEvent published when a service booking row is inserted
type BookingCreatedEvent struct {
	BaseEvent
	BookingID string  `json:"booking_id"`
	UserID    *string `json:"user_id"`
	ServiceID *string `json:"service_id"`
}

// BookingUpdatedEvent published when a service booking row is updated.
// Carries the changed row's fields the alert feed needs.
type BookingUpdatedEvent struct {
	BaseEvent
	BookingID string  `json:"booking_id"`
	UserID    *string `json:"user_id"`
	Address   string  `json:"address"`
	Status    string  `json:"status"`
}

// PaymentRecordedEvent published when a payment row is inserted
type PaymentRecordedEvent struct {
	BaseEvent
	PaymentID string  `json:"payment_id"`
	UserID    *string `json:"user_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
}
