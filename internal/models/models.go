package models

import "time"

// Profile represents a subscriber identity record
type Profile struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	Address   string    `db:"address" json:"address"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Newspaper represents a publication available for subscription
type Newspaper struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Language    string    `db:"language" json:"language"`
	Price       float64   `db:"price" json:"price"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// SubscriptionPlan represents a billing plan
type SubscriptionPlan struct {
	ID              string    `db:"id" json:"id"`
	Price           float64   `db:"price" json:"price"`
	DurationMonths  int       `db:"duration_months" json:"duration_months"`
	DiscountPercent float64   `db:"discount_percent" json:"discount_percent"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Area represents a delivery area
type Area struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Code      string    `db:"code" json:"code"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// DeliveryAgent represents an agent covering a delivery area
type DeliveryAgent struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Code      string    `db:"code" json:"code"`
	Phone     string    `db:"phone" json:"phone"`
	AreaID    *string   `db:"area_id" json:"area_id"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Coupon represents a discount code
type Coupon struct {
	ID              string    `db:"id" json:"id"`
	Code            string    `db:"code" json:"code"`
	DiscountPercent float64   `db:"discount_percent" json:"discount_percent"`
	Active          bool      `db:"active" json:"active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Service represents a bookable doorstep service
type Service struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Subscription is the central fact entity linking a profile to a newspaper,
// plan, area and delivery agent. Foreign keys are nullable; a missing parent
// is tolerated everywhere downstream.
type Subscription struct {
	ID              string     `db:"id" json:"id"`
	UserID          *string    `db:"user_id" json:"user_id"`
	NewspaperID     *string    `db:"newspaper_id" json:"newspaper_id"`
	PlanID          *string    `db:"plan_id" json:"plan_id"`
	AreaID          *string    `db:"area_id" json:"area_id"`
	DeliveryAgentID *string    `db:"delivery_agent_id" json:"delivery_agent_id"`
	Language        string     `db:"language" json:"language"`
	DeliveryAddress string     `db:"delivery_address" json:"delivery_address"`
	StartDate       *time.Time `db:"start_date" json:"start_date"`
	EndDate         *time.Time `db:"end_date" json:"end_date"`
	Status          string     `db:"status" json:"status"`
	PaymentStatus   string     `db:"payment_status" json:"payment_status"`
	PaymentType     string     `db:"payment_type" json:"payment_type"`
	Price           *float64   `db:"price" json:"price"`
	DiscountPercent *float64   `db:"discount_percent" json:"discount_percent"`
	CouponCode      *string    `db:"coupon_code" json:"coupon_code"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

// SubscriptionFacts carries the minimal columns the aggregator needs
type SubscriptionFacts struct {
	ID          string  `db:"id" json:"id"`
	Status      string  `db:"status" json:"status"`
	NewspaperID *string `db:"newspaper_id" json:"newspaper_id"`
	PaymentType string  `db:"payment_type" json:"payment_type"`
}

// ServiceBooking represents a doorstep service booking
type ServiceBooking struct {
	ID        string     `db:"id" json:"id"`
	UserID    *string    `db:"user_id" json:"user_id"`
	ServiceID *string    `db:"service_id" json:"service_id"`
	Date      *time.Time `db:"date" json:"date"`
	TimeSlot  string     `db:"time_slot" json:"time_slot"`
	Message   string     `db:"message" json:"message"`
	Address   string     `db:"address" json:"address"`
	Status    string     `db:"status" json:"status"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// Payment represents a recorded payment against a subscription
type Payment struct {
	ID             string     `db:"id" json:"id"`
	UserID         *string    `db:"user_id" json:"user_id"`
	SubscriptionID *string    `db:"subscription_id" json:"subscription_id"`
	Amount         float64    `db:"amount" json:"amount"`
	Status         string     `db:"status" json:"status"`
	Method         string     `db:"method" json:"method"`
	TransactionID  string     `db:"transaction_id" json:"transaction_id"`
	Description    string     `db:"description" json:"description"`
	PaidAt         *time.Time `db:"paid_at" json:"paid_at"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// HomeAnnouncement represents a banner shown on the subscriber home screen
type HomeAnnouncement struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Message   string    `db:"message" json:"message"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Subscription statuses
const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusExpired   = "expired"
	SubscriptionStatusPending   = "pending"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusCompleted = "completed"
)

// Payment statuses
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusFailed  = "failed"
)

// Payment types
const (
	PaymentTypePrepaid  = "prepaid"
	PaymentTypePostpaid = "postpaid"
)

// Booking statuses
const (
	BookingStatusPending   = "pending"
	BookingStatusCompleted = "completed"
)
