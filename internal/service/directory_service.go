package service

import (
	"context"
	"fmt"

	"newsdesk/internal/join"
	"newsdesk/internal/models"
	"newsdesk/internal/store"
	"newsdesk/internal/util"

	"go.uber.org/zap"
)

// DirectoryService covers the straightforward per-entity screens: profiles,
// newspapers, plans, areas, delivery agents, coupons, services and home
// announcements
type DirectoryService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(st *store.Store) *DirectoryService {
	return &DirectoryService{store: st, logger: util.GetLogger()}
}

func mutationErr(collection, op string, err error) error {
	if err == nil {
		return nil
	}
	util.MutationFailuresTotal.WithLabelValues(collection).Inc()
	return fmt.Errorf("failed to %s %s: %w", op, collection, err)
}

// Profiles

func (s *DirectoryService) ListProfiles(ctx context.Context, search string) ([]models.Profile, error) {
	return s.store.ListProfiles(ctx, search)
}

func (s *DirectoryService) CreateProfile(ctx context.Context, p *models.Profile) error {
	return mutationErr("profile", "create", s.store.CreateProfile(ctx, p))
}

func (s *DirectoryService) UpdateProfile(ctx context.Context, p *models.Profile) error {
	return mutationErr("profile", "update", s.store.UpdateProfile(ctx, p))
}

func (s *DirectoryService) DeleteProfile(ctx context.Context, id string) error {
	return mutationErr("profile", "delete", s.store.DeleteProfile(ctx, id))
}

// Newspapers

func (s *DirectoryService) ListNewspapers(ctx context.Context, search string) ([]models.Newspaper, error) {
	return s.store.ListNewspapers(ctx, search)
}

func (s *DirectoryService) CreateNewspaper(ctx context.Context, n *models.Newspaper) error {
	return mutationErr("newspaper", "create", s.store.CreateNewspaper(ctx, n))
}

func (s *DirectoryService) UpdateNewspaper(ctx context.Context, n *models.Newspaper) error {
	return mutationErr("newspaper", "update", s.store.UpdateNewspaper(ctx, n))
}

func (s *DirectoryService) DeleteNewspaper(ctx context.Context, id string) error {
	return mutationErr("newspaper", "delete", s.store.DeleteNewspaper(ctx, id))
}

// Subscription plans

func (s *DirectoryService) ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	return s.store.ListPlans(ctx)
}

func (s *DirectoryService) CreatePlan(ctx context.Context, p *models.SubscriptionPlan) error {
	return mutationErr("plan", "create", s.store.CreatePlan(ctx, p))
}

func (s *DirectoryService) UpdatePlan(ctx context.Context, p *models.SubscriptionPlan) error {
	return mutationErr("plan", "update", s.store.UpdatePlan(ctx, p))
}

func (s *DirectoryService) DeletePlan(ctx context.Context, id string) error {
	return mutationErr("plan", "delete", s.store.DeletePlan(ctx, id))
}

// Areas

func (s *DirectoryService) ListAreas(ctx context.Context, search string) ([]models.Area, error) {
	return s.store.ListAreas(ctx, search)
}

func (s *DirectoryService) CreateArea(ctx context.Context, a *models.Area) error {
	return mutationErr("area", "create", s.store.CreateArea(ctx, a))
}

func (s *DirectoryService) UpdateArea(ctx context.Context, a *models.Area) error {
	return mutationErr("area", "update", s.store.UpdateArea(ctx, a))
}

func (s *DirectoryService) DeleteArea(ctx context.Context, id string) error {
	return mutationErr("area", "delete", s.store.DeleteArea(ctx, id))
}

// Delivery agents

// ListDeliveryAgents returns agents joined with their areas
func (s *DirectoryService) ListDeliveryAgents(ctx context.Context, search string) ([]models.AgentView, error) {
	agents, err := s.store.ListDeliveryAgents(ctx, search)
	if err != nil {
		return nil, err
	}

	areas := fetchSide(s.logger, func() ([]models.Area, error) { return s.store.ListAreas(ctx, "") })
	areaIdx := join.Index(areas, func(a *models.Area) string { return a.ID })

	views := make([]models.AgentView, 0, len(agents))
	for _, agent := range agents {
		views = append(views, models.AgentView{
			DeliveryAgent: agent,
			Area:          join.Lookup(areaIdx, agent.AreaID),
		})
	}
	return views, nil
}

func (s *DirectoryService) CreateDeliveryAgent(ctx context.Context, a *models.DeliveryAgent) error {
	return mutationErr("delivery_agent", "create", s.store.CreateDeliveryAgent(ctx, a))
}

func (s *DirectoryService) UpdateDeliveryAgent(ctx context.Context, a *models.DeliveryAgent) error {
	return mutationErr("delivery_agent", "update", s.store.UpdateDeliveryAgent(ctx, a))
}

func (s *DirectoryService) DeleteDeliveryAgent(ctx context.Context, id string) error {
	return mutationErr("delivery_agent", "delete", s.store.DeleteDeliveryAgent(ctx, id))
}

// Coupons

func (s *DirectoryService) ListCoupons(ctx context.Context, search string) ([]models.Coupon, error) {
	return s.store.ListCoupons(ctx, search)
}

func (s *DirectoryService) CreateCoupon(ctx context.Context, c *models.Coupon) error {
	return mutationErr("coupon", "create", s.store.CreateCoupon(ctx, c))
}

func (s *DirectoryService) UpdateCoupon(ctx context.Context, c *models.Coupon) error {
	return mutationErr("coupon", "update", s.store.UpdateCoupon(ctx, c))
}

func (s *DirectoryService) DeleteCoupon(ctx context.Context, id string) error {
	return mutationErr("coupon", "delete", s.store.DeleteCoupon(ctx, id))
}

// Services

func (s *DirectoryService) ListServices(ctx context.Context, search string) ([]models.Service, error) {
	return s.store.ListServices(ctx, search)
}

func (s *DirectoryService) CreateService(ctx context.Context, sv *models.Service) error {
	return mutationErr("service", "create", s.store.CreateService(ctx, sv))
}

func (s *DirectoryService) UpdateService(ctx context.Context, sv *models.Service) error {
	return mutationErr("service", "update", s.store.UpdateService(ctx, sv))
}

func (s *DirectoryService) DeleteService(ctx context.Context, id string) error {
	return mutationErr("service", "delete", s.store.DeleteService(ctx, id))
}

// Home announcements

func (s *DirectoryService) ListAnnouncements(ctx context.Context) ([]models.HomeAnnouncement, error) {
	return s.store.ListAnnouncements(ctx)
}

func (s *DirectoryService) CreateAnnouncement(ctx context.Context, a *models.HomeAnnouncement) error {
	return mutationErr("announcement", "create", s.store.CreateAnnouncement(ctx, a))
}

func (s *DirectoryService) UpdateAnnouncement(ctx context.Context, a *models.HomeAnnouncement) error {
	return mutationErr("announcement", "update", s.store.UpdateAnnouncement(ctx, a))
}

func (s *DirectoryService) DeleteAnnouncement(ctx context.Context, id string) error {
	return mutationErr("announcement", "delete", s.store.DeleteAnnouncement(ctx, id))
}
