package service

import (
	"testing"

	"newsdesk/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestStatusHistogram(t *testing.T) {
	facts := []models.SubscriptionFacts{
		{ID: "1", Status: "active"},
		{ID: "2", Status: "expired"},
		{ID: "3", Status: "active"},
		{ID: "4", Status: ""},
		{ID: "5", Status: "active"},
	}

	counts := statusHistogram(facts)

	assert.Equal(t, []StatusCount{
		{Status: "active", Count: 3},
		{Status: "expired", Count: 1},
		{Status: "unknown", Count: 1},
	}, counts)

	total := 0
	for _, c := range counts {
		total += c.Count
	}
	assert.Equal(t, len(facts), total)
}

func TestStatusHistogramEmpty(t *testing.T) {
	assert.Empty(t, statusHistogram(nil))
}

func TestPaymentSplitRounding(t *testing.T) {
	facts := []models.SubscriptionFacts{
		{ID: "1", PaymentType: "prepaid"},
		{ID: "2", PaymentType: "postpaid"},
		{ID: "3", PaymentType: "postpaid"},
	}

	split := paymentSplit(facts)

	assert.True(t, split.HasData)
	assert.Equal(t, 1, split.Prepaid)
	assert.Equal(t, 2, split.Postpaid)
	assert.Equal(t, 3, split.Total)
	assert.Equal(t, 33, split.PrepaidPct)
	assert.Equal(t, 67, split.PostpaidPct)
	assert.Equal(t, 100, split.PrepaidPct+split.PostpaidPct)
}

func TestPaymentSplitCaseInsensitive(t *testing.T) {
	facts := []models.SubscriptionFacts{
		{ID: "1", PaymentType: "Prepaid"},
		{ID: "2", PaymentType: "POSTPAID"},
	}

	split := paymentSplit(facts)

	assert.Equal(t, 1, split.Prepaid)
	assert.Equal(t, 1, split.Postpaid)
	assert.Equal(t, 50, split.PrepaidPct)
	assert.Equal(t, 50, split.PostpaidPct)
}

func TestPaymentSplitIgnoresOtherTypes(t *testing.T) {
	facts := []models.SubscriptionFacts{
		{ID: "1", PaymentType: "prepaid"},
		{ID: "2", PaymentType: "cheque"},
		{ID: "3", PaymentType: ""},
	}

	split := paymentSplit(facts)

	assert.Equal(t, 1, split.Total)
	assert.Equal(t, 100, split.PrepaidPct)
	assert.Equal(t, 0, split.PostpaidPct)
}

func TestPaymentSplitNoData(t *testing.T) {
	split := paymentSplit([]models.SubscriptionFacts{
		{ID: "1", PaymentType: "cheque"},
	})

	assert.False(t, split.HasData)
	assert.Equal(t, 0, split.Total)
	assert.Equal(t, 0, split.PrepaidPct)
	assert.Equal(t, 0, split.PostpaidPct)
}

func TestTopNewspapers(t *testing.T) {
	facts := []models.SubscriptionFacts{
		{ID: "1", NewspaperID: strPtr("n1")},
		{ID: "2", NewspaperID: strPtr("n2")},
		{ID: "3", NewspaperID: strPtr("n2")},
		{ID: "4", NewspaperID: nil},
		{ID: "5", NewspaperID: strPtr("")},
		{ID: "6", NewspaperID: strPtr("n3")},
	}
	papers := []models.Newspaper{
		{ID: "n1", Name: "The Daily"},
		{ID: "n2", Name: "Morning Post"},
	}

	top := topNewspapers(facts, papers, 5)

	assert.Len(t, top, 3)
	assert.Equal(t, NewspaperCount{NewspaperID: "n2", Name: "Morning Post", Count: 2}, top[0])
	assert.Equal(t, "The Daily", top[1].Name)
	// no matching newspaper row, raw id shown instead
	assert.Equal(t, "n3", top[2].Name)
}

func TestTopNewspapersTruncatesAndKeepsTieOrder(t *testing.T) {
	facts := []models.SubscriptionFacts{
		{ID: "1", NewspaperID: strPtr("a")},
		{ID: "2", NewspaperID: strPtr("b")},
		{ID: "3", NewspaperID: strPtr("c")},
	}

	top := topNewspapers(facts, nil, 2)

	assert.Len(t, top, 2)
	// all tied at 1, encounter order preserved
	assert.Equal(t, "a", top[0].NewspaperID)
	assert.Equal(t, "b", top[1].NewspaperID)
}

func TestTopNewspapersEmptySnapshot(t *testing.T) {
	assert.Empty(t, topNewspapers(nil, nil, 5))
}

func TestAggregationIsIdempotent(t *testing.T) {
	facts := []models.SubscriptionFacts{
		{ID: "1", Status: "active", PaymentType: "prepaid", NewspaperID: strPtr("n1")},
		{ID: "2", Status: "pending", PaymentType: "postpaid", NewspaperID: strPtr("n1")},
		{ID: "3", Status: "active", PaymentType: "prepaid", NewspaperID: strPtr("n2")},
	}
	papers := []models.Newspaper{{ID: "n1", Name: "The Daily"}}

	assert.Equal(t, statusHistogram(facts), statusHistogram(facts))
	assert.Equal(t, paymentSplit(facts), paymentSplit(facts))
	assert.Equal(t, topNewspapers(facts, papers, 5), topNewspapers(facts, papers, 5))
}
