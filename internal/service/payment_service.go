package service

import (
	"context"
	"fmt"
	"strings"

	"newsdesk/internal/broker"
	"newsdesk/internal/join"
	"newsdesk/internal/models"
	"newsdesk/internal/store"
	"newsdesk/internal/util"

	"go.uber.org/zap"
)

// PaymentService builds payment views and records payments
type PaymentService struct {
	store   *store.Store
	changes *broker.ChangePublisher
	logger  *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(st *store.Store, changes *broker.ChangePublisher) *PaymentService {
	return &PaymentService{
		store:   st,
		changes: changes,
		logger:  util.GetLogger(),
	}
}

// List returns payments joined with the paying profile and, through the
// subscription, the newspaper. The subscription index is built before the
// newspaper lookup so the chained join resolves in dependency order.
func (s *PaymentService) List(ctx context.Context, search string) ([]models.PaymentView, error) {
	ctx, span := util.StartSpan(ctx, "PaymentService.List")
	defer span.End()

	payments, err := s.store.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	profiles := fetchSide(s.logger, func() ([]models.Profile, error) { return s.store.ListProfiles(ctx, "") })
	subs := fetchSide(s.logger, func() ([]models.Subscription, error) { return s.store.ListSubscriptions(ctx) })
	papers := fetchSide(s.logger, func() ([]models.Newspaper, error) { return s.store.ListNewspapers(ctx, "") })

	profileIdx := join.Index(profiles, func(p *models.Profile) string { return p.ID })
	subIdx := join.Index(subs, func(su *models.Subscription) string { return su.ID })
	paperIdx := join.Index(papers, func(n *models.Newspaper) string { return n.ID })

	views := make([]models.PaymentView, 0, len(payments))
	for _, payment := range payments {
		view := models.PaymentView{
			Payment: payment,
			Profile: join.Lookup(profileIdx, payment.UserID),
		}
		if sub := join.Lookup(subIdx, payment.SubscriptionID); sub != nil {
			view.Subscription = &models.PaymentSubscription{
				ID:          sub.ID,
				NewspaperID: sub.NewspaperID,
				Newspaper:   join.Lookup(paperIdx, sub.NewspaperID),
			}
		}
		if matchesPaymentSearch(&view, search) {
			views = append(views, view)
		}
	}
	return views, nil
}

func matchesPaymentSearch(view *models.PaymentView, search string) bool {
	if search == "" {
		return true
	}
	term := strings.ToLower(search)
	return strings.Contains(strings.ToLower(view.TransactionID), term) ||
		strings.Contains(strings.ToLower(view.Status), term) ||
		strings.Contains(strings.ToLower(view.Method), term) ||
		(view.Profile != nil && strings.Contains(strings.ToLower(view.Profile.Name), term))
}

// Record inserts a payment row and publishes a change event (best effort)
func (s *PaymentService) Record(ctx context.Context, payment *models.Payment) error {
	ctx, span := util.StartSpan(ctx, "PaymentService.Record")
	defer span.End()

	if err := s.store.CreatePayment(ctx, payment); err != nil {
		util.MutationFailuresTotal.WithLabelValues("payments").Inc()
		return fmt.Errorf("failed to record payment: %w", err)
	}

	s.logger.Info("Payment recorded",
		zap.String("payment_id", payment.ID),
		zap.Float64("amount", payment.Amount))

	if s.changes != nil {
		if err := s.changes.PublishPaymentRecorded(ctx, payment); err != nil {
			s.logger.Error("Failed to publish payment event", zap.Error(err))
		}
	}
	return nil
}

// Update rewrites a payment's mutable fields
func (s *PaymentService) Update(ctx context.Context, payment *models.Payment) error {
	if err := s.store.UpdatePayment(ctx, payment); err != nil {
		util.MutationFailuresTotal.WithLabelValues("payments").Inc()
		return fmt.Errorf("failed to update payment: %w", err)
	}
	return nil
}

// Delete removes a payment
func (s *PaymentService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeletePayment(ctx, id); err != nil {
		util.MutationFailuresTotal.WithLabelValues("payments").Inc()
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}
