package store

import (
	"context"
	"database/sql"

	"newsdesk/internal/models"
)

// ListNewspapers retrieves newspapers, optionally filtered by a substring
// match on name or language
func (s *Store) ListNewspapers(ctx context.Context, search string) ([]models.Newspaper, error) {
	var papers []models.Newspaper
	var err error
	if search != "" {
		err = s.db.SelectContext(ctx, &papers,
			`SELECT * FROM newspapers
			 WHERE name ILIKE $1 OR language ILIKE $1
			 ORDER BY created_at DESC`, likePattern(search))
	} else {
		err = s.db.SelectContext(ctx, &papers,
			"SELECT * FROM newspapers ORDER BY created_at DESC")
	}
	return papers, fetchErr("newspapers", err)
}

// GetNewspaperByID retrieves a single newspaper, nil when it does not exist
func (s *Store) GetNewspaperByID(ctx context.Context, id string) (*models.Newspaper, error) {
	var paper models.Newspaper
	err := s.db.GetContext(ctx, &paper, "SELECT * FROM newspapers WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fetchErr("newspapers", err)
	}
	return &paper, nil
}

// CreateNewspaper inserts a newspaper and fills in id and created_at
func (s *Store) CreateNewspaper(ctx context.Context, n *models.Newspaper) error {
	query := `
		INSERT INTO newspapers (name, language, price, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return s.db.GetContext(ctx, n, query, n.Name, n.Language, n.Price, n.Description)
}

// UpdateNewspaper updates a newspaper's mutable fields
func (s *Store) UpdateNewspaper(ctx context.Context, n *models.Newspaper) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE newspapers SET name = $1, language = $2, price = $3, description = $4 WHERE id = $5",
		n.Name, n.Language, n.Price, n.Description, n.ID)
	return err
}

// DeleteNewspaper deletes a newspaper by id
func (s *Store) DeleteNewspaper(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM newspapers WHERE id = $1", id)
	return err
}

// ListPlans retrieves subscription plans, newest first
func (s *Store) ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	err := s.db.SelectContext(ctx, &plans,
		"SELECT * FROM subscription_plans ORDER BY created_at DESC")
	return plans, fetchErr("subscription_plans", err)
}

// CreatePlan inserts a subscription plan and fills in id and created_at
func (s *Store) CreatePlan(ctx context.Context, p *models.SubscriptionPlan) error {
	query := `
		INSERT INTO subscription_plans (price, duration_months, discount_percent)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return s.db.GetContext(ctx, p, query, p.Price, p.DurationMonths, p.DiscountPercent)
}

// UpdatePlan updates a subscription plan's mutable fields
func (s *Store) UpdatePlan(ctx context.Context, p *models.SubscriptionPlan) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE subscription_plans SET price = $1, duration_months = $2, discount_percent = $3 WHERE id = $4",
		p.Price, p.DurationMonths, p.DiscountPercent, p.ID)
	return err
}

// DeletePlan deletes a subscription plan by id
func (s *Store) DeletePlan(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM subscription_plans WHERE id = $1", id)
	return err
}

// ListCoupons retrieves coupons, optionally filtered by a substring match on code
func (s *Store) ListCoupons(ctx context.Context, search string) ([]models.Coupon, error) {
	var coupons []models.Coupon
	var err error
	if search != "" {
		err = s.db.SelectContext(ctx, &coupons,
			"SELECT * FROM coupons WHERE code ILIKE $1 ORDER BY created_at DESC",
			likePattern(search))
	} else {
		err = s.db.SelectContext(ctx, &coupons,
			"SELECT * FROM coupons ORDER BY created_at DESC")
	}
	return coupons, fetchErr("coupons", err)
}

// GetCouponByCode retrieves a coupon by its code, nil when it does not exist
func (s *Store) GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := s.db.GetContext(ctx, &coupon,
		"SELECT * FROM coupons WHERE lower(code) = lower($1) LIMIT 1", code)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fetchErr("coupons", err)
	}
	return &coupon, nil
}

// CreateCoupon inserts a coupon and fills in id and created_at
func (s *Store) CreateCoupon(ctx context.Context, c *models.Coupon) error {
	query := `
		INSERT INTO coupons (code, discount_percent, active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return s.db.GetContext(ctx, c, query, c.Code, c.DiscountPercent, c.Active)
}

// UpdateCoupon updates a coupon's mutable fields
func (s *Store) UpdateCoupon(ctx context.Context, c *models.Coupon) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE coupons SET code = $1, discount_percent = $2, active = $3 WHERE id = $4",
		c.Code, c.DiscountPercent, c.Active, c.ID)
	return err
}

// DeleteCoupon deletes a coupon by id
func (s *Store) DeleteCoupon(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM coupons WHERE id = $1", id)
	return err
}

// ListServices retrieves services, optionally filtered by a substring match on name
func (s *Store) ListServices(ctx context.Context, search string) ([]models.Service, error) {
	var services []models.Service
	var err error
	if search != "" {
		err = s.db.SelectContext(ctx, &services,
			"SELECT * FROM services WHERE name ILIKE $1 ORDER BY created_at DESC",
			likePattern(search))
	} else {
		err = s.db.SelectContext(ctx, &services,
			"SELECT * FROM services ORDER BY created_at DESC")
	}
	return services, fetchErr("services", err)
}

// CreateService inserts a service and fills in id and created_at
func (s *Store) CreateService(ctx context.Context, sv *models.Service) error {
	query := `
		INSERT INTO services (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at`

	return s.db.GetContext(ctx, sv, query, sv.Name, sv.Description)
}

// UpdateService updates a service's mutable fields
func (s *Store) UpdateService(ctx context.Context, sv *models.Service) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE services SET name = $1, description = $2 WHERE id = $3",
		sv.Name, sv.Description, sv.ID)
	return err
}

// DeleteService deletes a service by id
func (s *Store) DeleteService(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM services WHERE id = $1", id)
	return err
}

// ListAnnouncements retrieves home announcements, newest first
func (s *Store) ListAnnouncements(ctx context.Context) ([]models.HomeAnnouncement, error) {
	var items []models.HomeAnnouncement
	err := s.db.SelectContext(ctx, &items,
		"SELECT * FROM home_announcements ORDER BY created_at DESC")
	return items, fetchErr("home_announcements", err)
}

// CreateAnnouncement inserts a home announcement and fills in id and created_at
func (s *Store) CreateAnnouncement(ctx context.Context, a *models.HomeAnnouncement) error {
	query := `
		INSERT INTO home_announcements (title, message, active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return s.db.GetContext(ctx, a, query, a.Title, a.Message, a.Active)
}

// UpdateAnnouncement updates a home announcement's mutable fields
func (s *Store) UpdateAnnouncement(ctx context.Context, a *models.HomeAnnouncement) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE home_announcements SET title = $1, message = $2, active = $3 WHERE id = $4",
		a.Title, a.Message, a.Active, a.ID)
	return err
}

// DeleteAnnouncement deletes a home announcement by id
func (s *Store) DeleteAnnouncement(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM home_announcements WHERE id = $1", id)
	return err
}
