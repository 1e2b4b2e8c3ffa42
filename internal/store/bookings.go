package store

import (
	"context"
	"database/sql"

	"newsdesk/internal/models"
)

// ListBookings retrieves service bookings, newest first
func (s *Store) ListBookings(ctx context.Context) ([]models.ServiceBooking, error) {
	var bookings []models.ServiceBooking
	err := s.db.SelectContext(ctx, &bookings,
		"SELECT * FROM service_bookings ORDER BY created_at DESC")
	return bookings, fetchErr("service_bookings", err)
}

// GetBookingByID retrieves a single booking, nil when it does not exist
func (s *Store) GetBookingByID(ctx context.Context, id string) (*models.ServiceBooking, error) {
	var booking models.ServiceBooking
	err := s.db.GetContext(ctx, &booking, "SELECT * FROM service_bookings WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fetchErr("service_bookings", err)
	}
	return &booking, nil
}

// CreateBooking inserts a service booking and fills in id and created_at
func (s *Store) CreateBooking(ctx context.Context, b *models.ServiceBooking) error {
	query := `
		INSERT INTO service_bookings (user_id, service_id, date, time_slot, message, address, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	return s.db.GetContext(ctx, b, query,
		b.UserID, b.ServiceID, b.Date, b.TimeSlot, b.Message, b.Address, b.Status)
}

// UpdateBooking updates a booking's mutable fields
func (s *Store) UpdateBooking(ctx context.Context, b *models.ServiceBooking) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE service_bookings SET
			user_id = $1, service_id = $2, date = $3, time_slot = $4,
			message = $5, address = $6, status = $7
		WHERE id = $8`,
		b.UserID, b.ServiceID, b.Date, b.TimeSlot, b.Message, b.Address, b.Status, b.ID)
	return err
}

// UpdateBookingStatus updates only the status column
func (s *Store) UpdateBookingStatus(ctx context.Context, id, status string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE service_bookings SET status = $1 WHERE id = $2", status, id)
	return err
}

// DeleteBooking deletes a booking by id
func (s *Store) DeleteBooking(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM service_bookings WHERE id = $1", id)
	return err
}
