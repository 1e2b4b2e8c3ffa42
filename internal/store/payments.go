package store

import (
	"context"
	"database/sql"

	"newsdesk/internal/models"
)

// ListPayments retrieves payments, newest first
func (s *Store) ListPayments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.SelectContext(ctx, &payments,
		"SELECT * FROM payments ORDER BY created_at DESC")
	return payments, fetchErr("payments", err)
}

// GetPaymentByID retrieves a single payment, nil when it does not exist
func (s *Store) GetPaymentByID(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.GetContext(ctx, &payment, "SELECT * FROM payments WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fetchErr("payments", err)
	}
	return &payment, nil
}

// CreatePayment inserts a payment and fills in id and created_at
func (s *Store) CreatePayment(ctx context.Context, p *models.Payment) error {
	query := `
		INSERT INTO payments (user_id, subscription_id, amount, status, method, transaction_id, description, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	return s.db.GetContext(ctx, p, query,
		p.UserID, p.SubscriptionID, p.Amount, p.Status, p.Method,
		p.TransactionID, p.Description, p.PaidAt)
}

// UpdatePayment updates a payment's mutable fields
func (s *Store) UpdatePayment(ctx context.Context, p *models.Payment) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE payments SET
			user_id = $1, subscription_id = $2, amount = $3, status = $4,
			method = $5, transaction_id = $6, description = $7, paid_at = $8
		WHERE id = $9`,
		p.UserID, p.SubscriptionID, p.Amount, p.Status, p.Method,
		p.TransactionID, p.Description, p.PaidAt, p.ID)
	return err
}

// DeletePayment deletes a payment by id
func (s *Store) DeletePayment(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM payments WHERE id = $1", id)
	return err
}
