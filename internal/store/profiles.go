package store

import (
	"context"
	"database/sql"

	"newsdesk/internal/models"
)

// ListProfiles retrieves profiles, optionally filtered by a case-insensitive
// substring match on name, phone or address. Newest first.
func (s *Store) ListProfiles(ctx context.Context, search string) ([]models.Profile, error) {
	var profiles []models.Profile
	var err error
	if search != "" {
		err = s.db.SelectContext(ctx, &profiles,
			`SELECT * FROM profiles
			 WHERE name ILIKE $1 OR phone ILIKE $1 OR address ILIKE $1
			 ORDER BY created_at DESC`, likePattern(search))
	} else {
		err = s.db.SelectContext(ctx, &profiles,
			"SELECT * FROM profiles ORDER BY created_at DESC")
	}
	return profiles, fetchErr("profiles", err)
}

// GetProfileByID retrieves a single profile, nil when it does not exist
func (s *Store) GetProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.GetContext(ctx, &profile, "SELECT * FROM profiles WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fetchErr("profiles", err)
	}
	return &profile, nil
}

// CreateProfile inserts a profile and fills in id and created_at
func (s *Store) CreateProfile(ctx context.Context, p *models.Profile) error {
	query := `
		INSERT INTO profiles (name, phone, address)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return s.db.GetContext(ctx, p, query, p.Name, p.Phone, p.Address)
}

// UpdateProfile updates a profile's mutable fields
func (s *Store) UpdateProfile(ctx context.Context, p *models.Profile) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE profiles SET name = $1, phone = $2, address = $3 WHERE id = $4",
		p.Name, p.Phone, p.Address, p.ID)
	return err
}

// DeleteProfile deletes a profile by id
func (s *Store) DeleteProfile(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM profiles WHERE id = $1", id)
	return err
}
