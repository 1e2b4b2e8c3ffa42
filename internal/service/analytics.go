package service

import (
	"math"
	"sort"
	"strings"

	"newsdesk/internal/join"
	"newsdesk/internal/models"
)

// StatusCount is one bucket of the subscription status histogram
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// PaymentSplit is the prepaid vs postpaid breakdown. Rows with any other
// payment type are excluded from this aggregate entirely.
type PaymentSplit struct {
	Prepaid     int  `json:"prepaid"`
	Postpaid    int  `json:"postpaid"`
	PrepaidPct  int  `json:"prepaid_pct"`
	PostpaidPct int  `json:"postpaid_pct"`
	Total       int  `json:"total"`
	HasData     bool `json:"has_data"`
}

// NewspaperCount is one row of the top-newspapers leaderboard
type NewspaperCount struct {
	NewspaperID string `json:"newspaper_id"`
	Name        string `json:"name"`
	Count       int    `json:"count"`
}

// Analytics is the aggregate view computed from one bounded snapshot
type Analytics struct {
	StatusCounts  []StatusCount    `json:"status_counts"`
	PaymentSplit  PaymentSplit     `json:"payment_split"`
	TopNewspapers []NewspaperCount `json:"top_newspapers"`
	Truncated     bool             `json:"truncated"`
}

// statusHistogram groups the snapshot by status, defaulting unset statuses to
// "unknown". Buckets appear in order of first occurrence, not sorted.
func statusHistogram(facts []models.SubscriptionFacts) []StatusCount {
	var counts []StatusCount
	index := make(map[string]int)
	for _, f := range facts {
		status := f.Status
		if status == "" {
			status = "unknown"
		}
		if i, ok := index[status]; ok {
			counts[i].Count++
		} else {
			index[status] = len(counts)
			counts = append(counts, StatusCount{Status: status, Count: 1})
		}
	}
	return counts
}

// paymentSplit counts rows whose lower-cased payment type is exactly prepaid
// or postpaid. Percentages always sum to 100 when any rows qualify: postpaid
// takes whatever rounding leaves over.
func paymentSplit(facts []models.SubscriptionFacts) PaymentSplit {
	var split PaymentSplit
	for _, f := range facts {
		switch strings.ToLower(f.PaymentType) {
		case models.PaymentTypePrepaid:
			split.Prepaid++
		case models.PaymentTypePostpaid:
			split.Postpaid++
		}
	}
	split.Total = split.Prepaid + split.Postpaid
	if split.Total == 0 {
		return split
	}
	split.HasData = true
	split.PrepaidPct = int(math.Round(float64(split.Prepaid) / float64(split.Total) * 100))
	split.PostpaidPct = 100 - split.PrepaidPct
	return split
}

// topNewspapers counts subscriptions per newspaper, skipping rows with no
// newspaper reference, resolves display names (falling back to the raw id)
// and returns the top n by count. The sort is stable so ties keep encounter
// order.
func topNewspapers(facts []models.SubscriptionFacts, papers []models.Newspaper, n int) []NewspaperCount {
	var counts []NewspaperCount
	index := make(map[string]int)
	for _, f := range facts {
		if f.NewspaperID == nil || *f.NewspaperID == "" {
			continue
		}
		id := *f.NewspaperID
		if i, ok := index[id]; ok {
			counts[i].Count++
		} else {
			index[id] = len(counts)
			counts = append(counts, NewspaperCount{NewspaperID: id, Count: 1})
		}
	}

	paperIdx := join.Index(papers, func(p *models.Newspaper) string { return p.ID })
	for i := range counts {
		if paper := join.LookupID(paperIdx, counts[i].NewspaperID); paper != nil && paper.Name != "" {
			counts[i].Name = paper.Name
		} else {
			counts[i].Name = counts[i].NewspaperID
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
