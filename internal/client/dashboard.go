package client

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/veepo/internal/adapter"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/realtime"
	"github.com/MKhiriev/veepo/internal/resource"
	"github.com/MKhiriev/veepo/internal/session"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/models"
)

const (
	recentFeedbacksLimit = 5
	defaultRangeDays     = 30
)

// RangePresets are the day counts offered by the range selector.
var RangePresets = []int{7, 30, 90}

// Dashboard holds the metric cards, the NPS trend, the benchmark comparison
// and the latest feedbacks for one date range, plus the geolocated feedbacks
// of all time.
type Dashboard struct {
	Stats      *resource.Resource[models.DashboardStats]
	Trend      *resource.Resource[[]models.NPSPoint]
	Comparison *resource.Resource[models.BenchmarkComparison]
	Map        *resource.Resource[[]models.FeedbackMapPoint]
	Recent     *resource.LiveList[models.Feedback]

	recent   *resource.Resource[[]models.Feedback]
	api      adapter.APIClient
	hub      *realtime.Hub
	sessions resource.SessionSource
	cache    store.SnapshotRepository

	mu        sync.Mutex
	dateRange models.DateRange

	logger *logger.Logger
}

func NewDashboard(ctx context.Context, api adapter.APIClient, hub *realtime.Hub, sessions resource.SessionSource, cache store.SnapshotRepository, now func() time.Time, log *logger.Logger) *Dashboard {
	d := &Dashboard{
		Recent:    resource.NewLiveList[models.Feedback](log),
		api:       api,
		hub:       hub,
		sessions:  sessions,
		cache:     cache,
		dateRange: models.LastDays(now(), defaultRangeDays),
		logger:    log,
	}

	d.Stats = resource.New(ctx, "dashboard_stats", sessions, d.fetchStats, log)
	d.Trend = resource.New(ctx, "nps_trend", sessions, func(ctx context.Context, _ session.Snapshot) ([]models.NPSPoint, error) {
		return api.NPSTrend(ctx, d.Range())
	}, log)
	d.Comparison = resource.New(ctx, "benchmark_comparison", sessions, func(ctx context.Context, _ session.Snapshot) (models.BenchmarkComparison, error) {
		return api.BenchmarkComparison(ctx, d.Range())
	}, log)
	d.Map = resource.New(ctx, "feedback_map", sessions, func(ctx context.Context, _ session.Snapshot) ([]models.FeedbackMapPoint, error) {
		return api.FeedbackMap(ctx)
	}, log)
	d.recent = resource.New(ctx, "recent_feedbacks", sessions, func(ctx context.Context, _ session.Snapshot) ([]models.Feedback, error) {
		return api.RecentFeedbacks(ctx, recentFeedbacksLimit)
	}, log)
	feedList(d.recent, d.Recent, itself[models.Feedback])

	return d
}

// Range returns the selected date range.
func (d *Dashboard) Range() models.DateRange {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dateRange
}

// SetRange selects a new range and refetches each range-bound metric once.
// Selecting the current range again does nothing.
func (d *Dashboard) SetRange(r models.DateRange) bool {
	d.mu.Lock()
	if r == d.dateRange {
		d.mu.Unlock()
		return false
	}
	d.dateRange = r
	d.mu.Unlock()

	d.Stats.Refetch()
	d.Trend.Refetch()
	d.Comparison.Refetch()
	return true
}

// SetPreset selects the last days days ending today.
func (d *Dashboard) SetPreset(days int, now time.Time) bool {
	return d.SetRange(models.LastDays(now, days))
}

// Load paints cached stats, fetches everything and starts following new
// feedbacks. ctx bounds the realtime subscription.
func (d *Dashboard) Load(ctx context.Context) error {
	d.seedStats(ctx)
	d.Refresh()

	return watch(ctx, d.hub, d.sessions, models.EntityFeedbacks, d.Recent)
}

// Refresh refetches every card without touching the range.
func (d *Dashboard) Refresh() {
	d.Stats.Refetch()
	d.Trend.Refetch()
	d.Comparison.Refetch()
	d.Map.Refetch()
	d.recent.Refetch()
}

// RecentFeedbacks returns the newest feedbacks, newest first.
func (d *Dashboard) RecentFeedbacks() []models.Feedback {
	items := d.Recent.Items()
	if len(items) > recentFeedbacksLimit {
		items = items[:recentFeedbacksLimit]
	}
	return items
}

func (d *Dashboard) Close() {
	d.Stats.Close()
	d.Trend.Close()
	d.Comparison.Close()
	d.Map.Close()
	d.recent.Close()
}

func (d *Dashboard) fetchStats(ctx context.Context, s session.Snapshot) (models.DashboardStats, error) {
	dateRange := d.Range()
	stats, err := d.api.DashboardStats(ctx, dateRange)
	if err != nil {
		return stats, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err = d.cache.SaveSnapshot(ctx, s.User.ID, statsKey(dateRange), payload); err != nil {
			d.logger.Err(err).Str("func", "Dashboard.fetchStats").Msg("failed to cache stats")
		}
	}
	return stats, nil
}

func (d *Dashboard) seedStats(ctx context.Context) {
	s, ok := d.sessions.Current()
	if !ok {
		return
	}

	snapshot, err := d.cache.LoadSnapshot(ctx, s.User.ID, statsKey(d.Range()))
	if err != nil {
		if !errors.Is(err, store.ErrSnapshotNotFound) {
			d.logger.Err(err).Str("func", "Dashboard.seedStats").Msg("failed to read cached stats")
		}
		return
	}

	var stats models.DashboardStats
	if err = json.Unmarshal(snapshot.Payload, &stats); err != nil {
		d.logger.Err(err).Str("func", "Dashboard.seedStats").Msg("cached stats are corrupt")
		return
	}
	d.Stats.Seed(stats)
}

func statsKey(r models.DateRange) string {
	return "dashboard_stats:" + r.Key()
}
