package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubscriptionsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "subscriptions_created_total",
		Help: "Total number of subscriptions created",
	})

	SubscriptionsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "subscriptions_completed_total",
		Help: "Total number of subscriptions marked completed",
	})

	SubscriptionsMarkedPaidTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "subscriptions_marked_paid_total",
		Help: "Total number of subscriptions marked paid",
	})

	FetchFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "store_fetch_failures_total",
		Help: "Total number of failed collection reads",
	}, []string{"collection"})

	MutationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "store_mutation_failures_total",
		Help: "Total number of failed collection writes",
	}, []string{"collection"})

	AggregationLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dashboard_aggregation_latency_seconds",
		Help:    "Latency of dashboard analytics aggregation",
		Buckets: prometheus.DefBuckets,
	})

	SnapshotRowsFetched = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dashboard_snapshot_rows",
		Help:    "Subscription rows fetched per analytics snapshot",
		Buckets: []float64{100, 500, 1000, 2500, 5000, 10000},
	})

	BookingAlertsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_alerts_total",
		Help: "Total number of booking update alerts raised",
	})

	BookingAlertLookupFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_alert_lookup_failures_total",
		Help: "Total number of alert profile enrichment lookups that fell back to placeholders",
	})

	ChangeEventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "change_events_published_total",
		Help: "Total number of row-change events published",
	}, []string{"type"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
