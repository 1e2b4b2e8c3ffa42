package store

import (
	"context"
	"database/sql"

	"newsdesk/internal/models"
)

// ListSubscriptions retrieves subscription rows, newest first
func (s *Store) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := s.db.SelectContext(ctx, &subs,
		"SELECT * FROM subscriptions ORDER BY created_at DESC")
	return subs, fetchErr("subscriptions", err)
}

// SubscriptionSnapshot retrieves a bounded snapshot of the columns the
// aggregator works over. Figures computed from it are approximate once the
// table exceeds the cap.
func (s *Store) SubscriptionSnapshot(ctx context.Context, cap int) ([]models.SubscriptionFacts, error) {
	var facts []models.SubscriptionFacts
	err := s.db.SelectContext(ctx, &facts,
		"SELECT id, status, newspaper_id, payment_type FROM subscriptions LIMIT $1", cap)
	return facts, fetchErr("subscriptions", err)
}

// GetSubscriptionByID retrieves a single subscription, nil when it does not exist
func (s *Store) GetSubscriptionByID(ctx context.Context, id string) (*models.Subscription, error) {
	var sub models.Subscription
	err := s.db.GetContext(ctx, &sub, "SELECT * FROM subscriptions WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fetchErr("subscriptions", err)
	}
	return &sub, nil
}

// CreateSubscription inserts a subscription and fills in id and created_at
func (s *Store) CreateSubscription(ctx context.Context, sub *models.Subscription) error {
	query := `
		INSERT INTO subscriptions (
			user_id, newspaper_id, plan_id, area_id, delivery_agent_id,
			language, delivery_address, start_date, end_date,
			status, payment_status, payment_type, price, discount_percent, coupon_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at`

	return s.db.GetContext(ctx, sub, query,
		sub.UserID, sub.NewspaperID, sub.PlanID, sub.AreaID, sub.DeliveryAgentID,
		sub.Language, sub.DeliveryAddress, sub.StartDate, sub.EndDate,
		sub.Status, sub.PaymentStatus, sub.PaymentType, sub.Price,
		sub.DiscountPercent, sub.CouponCode)
}

// UpdateSubscription updates a subscription's mutable fields
func (s *Store) UpdateSubscription(ctx context.Context, sub *models.Subscription) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE subscriptions SET
			user_id = $1, newspaper_id = $2, plan_id = $3, area_id = $4,
			delivery_agent_id = $5, language = $6, delivery_address = $7,
			start_date = $8, end_date = $9, status = $10, payment_status = $11,
			payment_type = $12, price = $13, discount_percent = $14, coupon_code = $15
		WHERE id = $16`,
		sub.UserID, sub.NewspaperID, sub.PlanID, sub.AreaID, sub.DeliveryAgentID,
		sub.Language, sub.DeliveryAddress, sub.StartDate, sub.EndDate,
		sub.Status, sub.PaymentStatus, sub.PaymentType, sub.Price,
		sub.DiscountPercent, sub.CouponCode, sub.ID)
	return err
}

// UpdateSubscriptionStatus updates only the status column
func (s *Store) UpdateSubscriptionStatus(ctx context.Context, id, status string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE subscriptions SET status = $1 WHERE id = $2", status, id)
	return err
}

// UpdateSubscriptionPaymentStatus updates only the payment_status column
func (s *Store) UpdateSubscriptionPaymentStatus(ctx context.Context, id, paymentStatus string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE subscriptions SET payment_status = $1 WHERE id = $2", paymentStatus, id)
	return err
}

// DeleteSubscription deletes a subscription by id
func (s *Store) DeleteSubscription(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM subscriptions WHERE id = $1", id)
	return err
}
