package store

import (
	"context"

	"newsdesk/internal/models"
)

// ListAreas retrieves delivery areas, optionally filtered by a substring
// match on name or code
func (s *Store) ListAreas(ctx context.Context, search string) ([]models.Area, error) {
	var areas []models.Area
	var err error
	if search != "" {
		err = s.db.SelectContext(ctx, &areas,
			`SELECT * FROM areas
			 WHERE name ILIKE $1 OR code ILIKE $1
			 ORDER BY created_at DESC`, likePattern(search))
	} else {
		err = s.db.SelectContext(ctx, &areas,
			"SELECT * FROM areas ORDER BY created_at DESC")
	}
	return areas, fetchErr("areas", err)
}

// CreateArea inserts a delivery area and fills in id and created_at
func (s *Store) CreateArea(ctx context.Context, a *models.Area) error {
	query := `
		INSERT INTO areas (name, code, active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return s.db.GetContext(ctx, a, query, a.Name, a.Code, a.Active)
}

// UpdateArea updates a delivery area's mutable fields
func (s *Store) UpdateArea(ctx context.Context, a *models.Area) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE areas SET name = $1, code = $2, active = $3 WHERE id = $4",
		a.Name, a.Code, a.Active, a.ID)
	return err
}

// DeleteArea deletes a delivery area by id
func (s *Store) DeleteArea(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM areas WHERE id = $1", id)
	return err
}

// ListDeliveryAgents retrieves delivery agents, optionally filtered by a
// substring match on name, code or phone
func (s *Store) ListDeliveryAgents(ctx context.Context, search string) ([]models.DeliveryAgent, error) {
	var agents []models.DeliveryAgent
	var err error
	if search != "" {
		err = s.db.SelectContext(ctx, &agents,
			`SELECT * FROM delivery_agents
			 WHERE name ILIKE $1 OR code ILIKE $1 OR phone ILIKE $1
			 ORDER BY created_at DESC`, likePattern(search))
	} else {
		err = s.db.SelectContext(ctx, &agents,
			"SELECT * FROM delivery_agents ORDER BY created_at DESC")
	}
	return agents, fetchErr("delivery_agents", err)
}

// CreateDeliveryAgent inserts a delivery agent and fills in id and created_at
func (s *Store) CreateDeliveryAgent(ctx context.Context, a *models.DeliveryAgent) error {
	query := `
		INSERT INTO delivery_agents (name, code, phone, area_id, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	return s.db.GetContext(ctx, a, query, a.Name, a.Code, a.Phone, a.AreaID, a.Active)
}

// UpdateDeliveryAgent updates a delivery agent's mutable fields
func (s *Store) UpdateDeliveryAgent(ctx context.Context, a *models.DeliveryAgent) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE delivery_agents SET name = $1, code = $2, phone = $3, area_id = $4, active = $5 WHERE id = $6",
		a.Name, a.Code, a.Phone, a.AreaID, a.Active, a.ID)
	return err
}

// DeleteDeliveryAgent deletes a delivery agent by id
func (s *Store) DeleteDeliveryAgent(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM delivery_agents WHERE id = $1", id)
	return err
}
