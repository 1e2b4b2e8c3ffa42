package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"newsdesk/internal/models"
	"newsdesk/internal/redisclient"
	"newsdesk/internal/store"
	"newsdesk/internal/util"

	"go.uber.org/zap"
)

// DashboardService computes the stat cards and the subscription analytics.
// Both degrade rather than fail: a broken read yields zeros and a warning,
// never an error past this boundary, so one bad analytic cannot blank the
// rest of the dashboard.
type DashboardService struct {
	store       *store.Store
	redis       *redisclient.Client
	snapshotCap int
	topPapers   int
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(st *store.Store, redis *redisclient.Client, snapshotCap, topPapers int, cacheTTL time.Duration) *DashboardService {
	return &DashboardService{
		store:       st,
		redis:       redis,
		snapshotCap: snapshotCap,
		topPapers:   topPapers,
		cacheTTL:    cacheTTL,
		logger:      util.GetLogger(),
	}
}

// DashboardStats holds the head-only counts for the stat cards
type DashboardStats struct {
	Profiles      int64 `json:"profiles"`
	Newspapers    int64 `json:"newspapers"`
	Subscriptions int64 `json:"subscriptions"`
	Services      int64 `json:"services"`
	Payments      int64 `json:"payments"`
}

// Stats fetches the five collection counts concurrently. Each count that
// fails is reported as 0. Results are cached briefly in redis.
func (s *DashboardService) Stats(ctx context.Context) *DashboardStats {
	ctx, span := util.StartSpan(ctx, "DashboardService.Stats")
	defer span.End()

	var cached DashboardStats
	if s.redis != nil {
		if ok, err := s.redis.GetDashboardCounts(ctx, &cached); err == nil && ok {
			return &cached
		}
	}

	stats := &DashboardStats{}
	counts := []struct {
		dst   *int64
		fetch func(context.Context) (int64, error)
	}{
		{&stats.Profiles, s.store.CountProfiles},
		{&stats.Newspapers, s.store.CountNewspapers},
		{&stats.Subscriptions, s.store.CountSubscriptions},
		{&stats.Services, s.store.CountServices},
		{&stats.Payments, s.store.CountPayments},
	}

	var wg sync.WaitGroup
	for _, c := range counts {
		wg.Add(1)
		go func(dst *int64, fetch func(context.Context) (int64, error)) {
			defer wg.Done()
			n, err := fetch(ctx)
			if err != nil {
				s.warnFetch(err)
				return
			}
			*dst = n
		}(c.dst, c.fetch)
	}
	wg.Wait()

	if s.redis != nil {
		if err := s.redis.CacheDashboardCounts(ctx, stats, s.cacheTTL); err != nil {
			s.logger.Warn("Failed to cache dashboard counts", zap.Error(err))
		}
	}
	return stats
}

// Analytics pulls a bounded subscription snapshot and aggregates it. A failed
// subscription read yields empty aggregates; a failed newspaper read only
// degrades the leaderboard names to raw ids.
func (s *DashboardService) Analytics(ctx context.Context) *Analytics {
	ctx, span := util.StartSpan(ctx, "DashboardService.Analytics")
	defer span.End()

	start := time.Now()
	defer func() {
		util.AggregationLatency.Observe(time.Since(start).Seconds())
	}()

	facts, err := s.store.SubscriptionSnapshot(ctx, s.snapshotCap)
	if err != nil {
		s.warnFetch(err)
		return &Analytics{
			StatusCounts:  []StatusCount{},
			TopNewspapers: []NewspaperCount{},
		}
	}
	util.SnapshotRowsFetched.Observe(float64(len(facts)))

	var papers []models.Newspaper
	papers, err = s.store.ListNewspapers(ctx, "")
	if err != nil {
		s.warnFetch(err)
		papers = nil
	}

	result := &Analytics{
		StatusCounts:  statusHistogram(facts),
		PaymentSplit:  paymentSplit(facts),
		TopNewspapers: topNewspapers(facts, papers, s.topPapers),
		Truncated:     len(facts) >= s.snapshotCap,
	}
	if result.StatusCounts == nil {
		result.StatusCounts = []StatusCount{}
	}
	if result.TopNewspapers == nil {
		result.TopNewspapers = []NewspaperCount{}
	}
	return result
}

func (s *DashboardService) warnFetch(err error) {
	var fe *store.FetchError
	if errors.As(err, &fe) {
		util.FetchFailuresTotal.WithLabelValues(fe.Collection).Inc()
		s.logger.Warn("Dashboard fetch failed",
			zap.String("collection", fe.Collection), zap.Error(fe.Err))
		return
	}
	s.logger.Warn("Dashboard fetch failed", zap.Error(err))
}
