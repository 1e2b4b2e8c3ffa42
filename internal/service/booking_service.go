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

// BookingService builds service-booking views and drives the booking
// lifecycle. Booking updates are what the live alert feed reacts to.
type BookingService struct {
	store   *store.Store
	changes *broker.ChangePublisher
	logger  *zap.Logger
}

// NewBookingService creates a new booking service
func NewBookingService(st *store.Store, changes *broker.ChangePublisher) *BookingService {
	return &BookingService{
		store:   st,
		changes: changes,
		logger:  util.GetLogger(),
	}
}

// List returns bookings joined with the booking profile and service
func (s *BookingService) List(ctx context.Context, search string) ([]models.BookingView, error) {
	ctx, span := util.StartSpan(ctx, "BookingService.List")
	defer span.End()

	bookings, err := s.store.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	profiles := fetchSide(s.logger, func() ([]models.Profile, error) { return s.store.ListProfiles(ctx, "") })
	services := fetchSide(s.logger, func() ([]models.Service, error) { return s.store.ListServices(ctx, "") })

	profileIdx := join.Index(profiles, func(p *models.Profile) string { return p.ID })
	serviceIdx := join.Index(services, func(sv *models.Service) string { return sv.ID })

	views := make([]models.BookingView, 0, len(bookings))
	for _, booking := range bookings {
		view := models.BookingView{
			ServiceBooking: booking,
			Profile:        join.Lookup(profileIdx, booking.UserID),
			Service:        join.Lookup(serviceIdx, booking.ServiceID),
		}
		if matchesBookingSearch(&view, search) {
			views = append(views, view)
		}
	}
	return views, nil
}

func matchesBookingSearch(view *models.BookingView, search string) bool {
	if search == "" {
		return true
	}
	term := strings.ToLower(search)
	return strings.Contains(strings.ToLower(view.TimeSlot), term) ||
		strings.Contains(strings.ToLower(view.Message), term) ||
		strings.Contains(strings.ToLower(view.Status), term) ||
		(view.Profile != nil && strings.Contains(strings.ToLower(view.Profile.Name), term)) ||
		(view.Service != nil && strings.Contains(strings.ToLower(view.Service.Name), term))
}

// Create inserts a booking and publishes a change event (best effort)
func (s *BookingService) Create(ctx context.Context, booking *models.ServiceBooking) error {
	ctx, span := util.StartSpan(ctx, "BookingService.Create")
	defer span.End()

	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}

	if err := s.store.CreateBooking(ctx, booking); err != nil {
		util.MutationFailuresTotal.WithLabelValues("service_bookings").Inc()
		return fmt.Errorf("failed to create booking: %w", err)
	}

	if s.changes != nil {
		if err := s.changes.PublishBookingCreated(ctx, booking); err != nil {
			s.logger.Error("Failed to publish booking created event", zap.Error(err))
		}
	}
	return nil
}

// Update rewrites a booking's mutable fields and publishes the update event
// the alert listener watches for
func (s *BookingService) Update(ctx context.Context, booking *models.ServiceBooking) error {
	ctx, span := util.StartSpan(ctx, "BookingService.Update")
	defer span.End()

	if err := s.store.UpdateBooking(ctx, booking); err != nil {
		util.MutationFailuresTotal.WithLabelValues("service_bookings").Inc()
		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.publishUpdated(ctx, booking)
	return nil
}

// UpdateStatus updates only a booking's status
func (s *BookingService) UpdateStatus(ctx context.Context, id, status string) error {
	if err := s.store.UpdateBookingStatus(ctx, id, status); err != nil {
		util.MutationFailuresTotal.WithLabelValues("service_bookings").Inc()
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking, err := s.store.GetBookingByID(ctx, id)
	if err != nil || booking == nil {
		booking = &models.ServiceBooking{ID: id, Status: status}
	}
	s.publishUpdated(ctx, booking)
	return nil
}

// Delete removes a booking
func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteBooking(ctx, id); err != nil {
		util.MutationFailuresTotal.WithLabelValues("service_bookings").Inc()
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

func (s *BookingService) publishUpdated(ctx context.Context, booking *models.ServiceBooking) {
	if s.changes == nil {
		return
	}
	if err := s.changes.PublishBookingUpdated(ctx, booking); err != nil {
		s.logger.Error("Failed to publish booking updated event", zap.Error(err))
	}
}
