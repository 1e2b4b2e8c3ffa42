package service

import (
	"testing"

	"newsdesk/internal/models"

	"github.com/stretchr/testify/assert"
)

func subView(sub models.Subscription, paper *models.Newspaper) models.SubscriptionView {
	return models.SubscriptionView{Subscription: sub, Newspaper: paper}
}

func TestMatchesFilterSearch(t *testing.T) {
	view := subView(models.Subscription{
		DeliveryAddress: "14 MG Road, Kochi",
		Language:        "english",
		Status:          "active",
	}, &models.Newspaper{Name: "Morning Post"})

	assert.True(t, matchesFilter(&view, &SubscriptionFilter{Search: "mg road"}))
	assert.True(t, matchesFilter(&view, &SubscriptionFilter{Search: "ACTIVE"}))
	assert.True(t, matchesFilter(&view, &SubscriptionFilter{Search: "morning"}))
	assert.False(t, matchesFilter(&view, &SubscriptionFilter{Search: "evening"}))
}

func TestMatchesFilterSearchWithMissingNewspaper(t *testing.T) {
	view := subView(models.Subscription{Status: "active"}, nil)

	assert.False(t, matchesFilter(&view, &SubscriptionFilter{Search: "morning"}))
	assert.True(t, matchesFilter(&view, &SubscriptionFilter{Search: "active"}))
}

func TestMatchesFilterPaymentType(t *testing.T) {
	view := subView(models.Subscription{PaymentType: "Prepaid"}, nil)

	assert.True(t, matchesFilter(&view, &SubscriptionFilter{PaymentType: "prepaid"}))
	assert.False(t, matchesFilter(&view, &SubscriptionFilter{PaymentType: "postpaid"}))
}

func TestMatchesFilterExactFields(t *testing.T) {
	area := "a1"
	agent := "g1"
	view := subView(models.Subscription{
		Language:        "hindi",
		AreaID:          &area,
		DeliveryAgentID: &agent,
	}, nil)

	assert.True(t, matchesFilter(&view, &SubscriptionFilter{Language: "hindi", AreaID: "a1", DeliveryAgentID: "g1"}))
	assert.False(t, matchesFilter(&view, &SubscriptionFilter{Language: "english"}))
	assert.False(t, matchesFilter(&view, &SubscriptionFilter{AreaID: "a2"}))
	assert.False(t, matchesFilter(&view, &SubscriptionFilter{DeliveryAgentID: "g2"}))
}

func TestMatchesFilterNilForeignKeys(t *testing.T) {
	view := subView(models.Subscription{}, nil)

	assert.False(t, matchesFilter(&view, &SubscriptionFilter{AreaID: "a1"}))
	assert.False(t, matchesFilter(&view, &SubscriptionFilter{DeliveryAgentID: "g1"}))
	assert.True(t, matchesFilter(&view, &SubscriptionFilter{}))
}

func TestMatchesPaymentSearch(t *testing.T) {
	view := &models.PaymentView{
		Payment: models.Payment{
			TransactionID: "TXN-1001",
			Status:        "paid",
			Method:        "upi",
		},
		Profile: &models.Profile{Name: "Ravi Kumar"},
	}

	assert.True(t, matchesPaymentSearch(view, "txn-1001"))
	assert.True(t, matchesPaymentSearch(view, "upi"))
	assert.True(t, matchesPaymentSearch(view, "ravi"))
	assert.False(t, matchesPaymentSearch(view, "card"))
	assert.True(t, matchesPaymentSearch(view, ""))
}

func TestMatchesBookingSearch(t *testing.T) {
	view := &models.BookingView{
		ServiceBooking: models.ServiceBooking{
			TimeSlot: "morning",
			Message:  "Leave at the gate",
			Status:   "pending",
		},
		Service: &models.Service{Name: "Plumbing"},
	}

	assert.True(t, matchesBookingSearch(view, "gate"))
	assert.True(t, matchesBookingSearch(view, "plumbing"))
	assert.False(t, matchesBookingSearch(view, "electric"))

	view.Service = nil
	assert.False(t, matchesBookingSearch(view, "plumbing"))
}
