package models

// Denormalized view rows: a primary entity augmented with nested copies of the
// parents its foreign keys point at. Nested fields are nil when the parent row
// does not exist, never an error.

// SubscriptionView is a subscription joined with its five parent entities
type SubscriptionView struct {
	Subscription
	Profile       *Profile          `json:"profile"`
	Newspaper     *Newspaper        `json:"newspaper"`
	Plan          *SubscriptionPlan `json:"plan"`
	Area          *Area             `json:"area"`
	DeliveryAgent *DeliveryAgent    `json:"delivery_agent"`
}

// PaymentView is a payment joined with the paying profile and, through the
// subscription, the newspaper it was for
type PaymentView struct {
	Payment
	Profile      *Profile             `json:"profile"`
	Subscription *PaymentSubscription `json:"subscription"`
}

// PaymentSubscription is the subscription slice nested inside a PaymentView
type PaymentSubscription struct {
	ID          string     `json:"id"`
	NewspaperID *string    `json:"newspaper_id"`
	Newspaper   *Newspaper `json:"newspaper"`
}

// BookingView is a service booking joined with the booking profile and service
type BookingView struct {
	ServiceBooking
	Profile *Profile `json:"profile"`
	Service *Service `json:"service"`
}

// AgentView is a delivery agent joined with its area
type AgentView struct {
	DeliveryAgent
	Area *Area `json:"area"`
}
