package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"newsdesk/internal/broker"
	"newsdesk/internal/join"
	"newsdesk/internal/models"
	"newsdesk/internal/store"
	"newsdesk/internal/util"

	"go.uber.org/zap"
)

// SubscriptionService builds denormalized subscription views and drives the
// subscription lifecycle
type SubscriptionService struct {
	store   *store.Store
	changes *broker.ChangePublisher
	logger  *zap.Logger
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(st *store.Store, changes *broker.ChangePublisher) *SubscriptionService {
	return &SubscriptionService{
		store:   st,
		changes: changes,
		logger:  util.GetLogger(),
	}
}

// SubscriptionFilter narrows the denormalized list in memory
type SubscriptionFilter struct {
	Search          string
	PaymentType     string
	Language        string
	AreaID          string
	DeliveryAgentID string
}

// List returns subscriptions joined against profiles, newspapers, plans,
// areas and delivery agents in a single pass. The primary fetch failing is an
// error; a secondary fetch failing only means that side of the join comes
// back nil.
func (s *SubscriptionService) List(ctx context.Context, filter SubscriptionFilter) ([]models.SubscriptionView, error) {
	ctx, span := util.StartSpan(ctx, "SubscriptionService.List")
	defer span.End()

	subs, err := s.store.ListSubscriptions(ctx)
	if err != nil {
		return nil, err
	}

	profiles := fetchSide(s.logger, func() ([]models.Profile, error) { return s.store.ListProfiles(ctx, "") })
	papers := fetchSide(s.logger, func() ([]models.Newspaper, error) { return s.store.ListNewspapers(ctx, "") })
	plans := fetchSide(s.logger, func() ([]models.SubscriptionPlan, error) { return s.store.ListPlans(ctx) })
	areas := fetchSide(s.logger, func() ([]models.Area, error) { return s.store.ListAreas(ctx, "") })
	agents := fetchSide(s.logger, func() ([]models.DeliveryAgent, error) { return s.store.ListDeliveryAgents(ctx, "") })

	profileIdx := join.Index(profiles, func(p *models.Profile) string { return p.ID })
	paperIdx := join.Index(papers, func(n *models.Newspaper) string { return n.ID })
	planIdx := join.Index(plans, func(p *models.SubscriptionPlan) string { return p.ID })
	areaIdx := join.Index(areas, func(a *models.Area) string { return a.ID })
	agentIdx := join.Index(agents, func(a *models.DeliveryAgent) string { return a.ID })

	views := make([]models.SubscriptionView, 0, len(subs))
	for _, sub := range subs {
		view := models.SubscriptionView{
			Subscription:  sub,
			Profile:       join.Lookup(profileIdx, sub.UserID),
			Newspaper:     join.Lookup(paperIdx, sub.NewspaperID),
			Plan:          join.Lookup(planIdx, sub.PlanID),
			Area:          join.Lookup(areaIdx, sub.AreaID),
			DeliveryAgent: join.Lookup(agentIdx, sub.DeliveryAgentID),
		}
		if matchesFilter(&view, &filter) {
			views = append(views, view)
		}
	}
	return views, nil
}

// fetchSide runs a secondary fetch, degrading to an empty slice on failure
func fetchSide[T any](logger *zap.Logger, fetch func() ([]T, error)) []T {
	rows, err := fetch()
	if err != nil {
		var fe *store.FetchError
		if errors.As(err, &fe) {
			util.FetchFailuresTotal.WithLabelValues(fe.Collection).Inc()
		}
		logger.Warn("Secondary fetch failed, joining without it", zap.Error(err))
		return nil
	}
	return rows
}

func matchesFilter(view *models.SubscriptionView, filter *SubscriptionFilter) bool {
	if filter.Search != "" {
		term := strings.ToLower(filter.Search)
		match := strings.Contains(strings.ToLower(view.DeliveryAddress), term) ||
			strings.Contains(strings.ToLower(view.Language), term) ||
			strings.Contains(strings.ToLower(view.Status), term) ||
			(view.Newspaper != nil && strings.Contains(strings.ToLower(view.Newspaper.Name), term))
		if !match {
			return false
		}
	}
	if filter.PaymentType != "" &&
		!strings.EqualFold(view.PaymentType, filter.PaymentType) {
		return false
	}
	if filter.Language != "" && view.Language != filter.Language {
		return false
	}
	if filter.AreaID != "" && (view.AreaID == nil || *view.AreaID != filter.AreaID) {
		return false
	}
	if filter.DeliveryAgentID != "" &&
		(view.DeliveryAgentID == nil || *view.DeliveryAgentID != filter.DeliveryAgentID) {
		return false
	}
	return true
}

// Create inserts a subscription after resolving its coupon, then publishes a
// change event (best effort)
func (s *SubscriptionService) Create(ctx context.Context, sub *models.Subscription) error {
	ctx, span := util.StartSpan(ctx, "SubscriptionService.Create")
	defer span.End()

	s.applyCoupon(ctx, sub)

	if err := s.store.CreateSubscription(ctx, sub); err != nil {
		util.MutationFailuresTotal.WithLabelValues("subscriptions").Inc()
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	util.SubscriptionsCreatedTotal.Inc()
	s.logger.Info("Subscription created", zap.String("subscription_id", sub.ID))
	s.publishChange(ctx, models.EventTypeSubscriptionCreated, sub)
	return nil
}

// Update rewrites a subscription's mutable fields
func (s *SubscriptionService) Update(ctx context.Context, sub *models.Subscription) error {
	ctx, span := util.StartSpan(ctx, "SubscriptionService.Update")
	defer span.End()

	s.applyCoupon(ctx, sub)

	if err := s.store.UpdateSubscription(ctx, sub); err != nil {
		util.MutationFailuresTotal.WithLabelValues("subscriptions").Inc()
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	s.publishChange(ctx, models.EventTypeSubscriptionUpdated, sub)
	return nil
}

// Delete removes a subscription
func (s *SubscriptionService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteSubscription(ctx, id); err != nil {
		util.MutationFailuresTotal.WithLabelValues("subscriptions").Inc()
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	s.publishChange(ctx, models.EventTypeSubscriptionDeleted, &models.Subscription{ID: id})
	return nil
}

// MarkCompleted sets a subscription's status to completed
func (s *SubscriptionService) MarkCompleted(ctx context.Context, id string) error {
	if err := s.store.UpdateSubscriptionStatus(ctx, id, models.SubscriptionStatusCompleted); err != nil {
		util.MutationFailuresTotal.WithLabelValues("subscriptions").Inc()
		return fmt.Errorf("failed to update subscription status: %w", err)
	}
	util.SubscriptionsCompletedTotal.Inc()
	s.publishStatusChange(ctx, id)
	return nil
}

// MarkPaid sets a subscription's payment status to paid
func (s *SubscriptionService) MarkPaid(ctx context.Context, id string) error {
	if err := s.store.UpdateSubscriptionPaymentStatus(ctx, id, models.PaymentStatusPaid); err != nil {
		util.MutationFailuresTotal.WithLabelValues("subscriptions").Inc()
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	util.SubscriptionsMarkedPaidTotal.Inc()
	s.publishStatusChange(ctx, id)
	return nil
}

// applyCoupon resolves an attached coupon code to its discount. A missing or
// inactive coupon leaves the submitted discount untouched; a failed lookup is
// logged and tolerated.
func (s *SubscriptionService) applyCoupon(ctx context.Context, sub *models.Subscription) {
	if sub.CouponCode == nil || *sub.CouponCode == "" {
		return
	}
	coupon, err := s.store.GetCouponByCode(ctx, *sub.CouponCode)
	if err != nil {
		s.logger.Warn("Coupon lookup failed",
			zap.String("code", *sub.CouponCode), zap.Error(err))
		return
	}
	if coupon == nil || !coupon.Active {
		return
	}
	discount := coupon.DiscountPercent
	sub.DiscountPercent = &discount
}

func (s *SubscriptionService) publishChange(ctx context.Context, eventType string, sub *models.Subscription) {
	if s.changes == nil {
		return
	}
	if err := s.changes.PublishSubscriptionChanged(ctx, eventType, sub); err != nil {
		s.logger.Error("Failed to publish subscription change event",
			zap.String("type", eventType), zap.Error(err))
	}
}

func (s *SubscriptionService) publishStatusChange(ctx context.Context, id string) {
	sub, err := s.store.GetSubscriptionByID(ctx, id)
	if err != nil || sub == nil {
		sub = &models.Subscription{ID: id}
	}
	s.publishChange(ctx, models.EventTypeSubscriptionUpdated, sub)
}
