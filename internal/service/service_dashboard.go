package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/models"
)

// DefaultDashboardDays is the range used when the caller sends none.
const DefaultDashboardDays = 30

type dashboardService struct {
	dashboard store.DashboardRepository
	providers store.ProviderRepository
	threshold float64
	now       clock
	logger    *logger.Logger
}

// NewDashboardService returns the dashboard aggregates. threshold is the
// absolute difference within which a metric equals its benchmark.
func NewDashboardService(dashboard store.DashboardRepository, providers store.ProviderRepository, threshold float64, log *logger.Logger) DashboardService {
	return &dashboardService{
		dashboard: dashboard,
		providers: providers,
		threshold: threshold,
		now:       systemClock,
		logger:    log,
	}
}

func (s *dashboardService) Stats(ctx context.Context, userID string, dateRange models.DateRange) (models.DashboardStats, error) {
	return s.dashboard.Stats(ctx, userID, s.orDefault(dateRange))
}

func (s *dashboardService) NPSTrend(ctx context.Context, userID string, dateRange models.DateRange) ([]models.NPSPoint, error) {
	return s.dashboard.NPSTrend(ctx, userID, s.orDefault(dateRange))
}

// Benchmark returns the industry benchmark for the cnae of the user's
// profile. ErrNoCNAE is returned without a profile or cnae.
func (s *dashboardService) Benchmark(ctx context.Context, userID string) (models.Benchmark, error) {
	profile, err := s.providers.GetProviderByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Benchmark{}, ErrNoCNAE
		}
		return models.Benchmark{}, err
	}
	if profile.CNAE == "" {
		return models.Benchmark{}, ErrNoCNAE
	}

	return s.dashboard.Benchmark(ctx, profile.CNAE)
}

// Comparison rates the user's average rating and NPS over dateRange against
// the benchmark. Metrics the benchmark lacks are left out.
func (s *dashboardService) Comparison(ctx context.Context, userID string, dateRange models.DateRange) (models.BenchmarkComparison, error) {
	benchmark, err := s.Benchmark(ctx, userID)
	if err != nil {
		return models.BenchmarkComparison{}, err
	}

	summary, err := s.dashboard.RatingSummary(ctx, userID, s.orDefault(dateRange))
	if err != nil {
		return models.BenchmarkComparison{}, fmt.Errorf("rating summary: %w", err)
	}

	comparison := models.BenchmarkComparison{CNAE: benchmark.CNAE, Metrics: []models.MetricComparison{}}
	if benchmark.AverageRating != nil {
		comparison.Metrics = append(comparison.Metrics, s.compare(models.MetricAverageRating, summary.AverageRating, *benchmark.AverageRating))
	}
	if benchmark.NPSScore != nil {
		comparison.Metrics = append(comparison.Metrics, s.compare(models.MetricNPSScore, float64(summary.NPS()), *benchmark.NPSScore))
	}

	return comparison, nil
}

func (s *dashboardService) compare(metric models.BenchmarkMetric, value, benchmark float64) models.MetricComparison {
	return models.MetricComparison{
		Metric:    metric,
		Value:     value,
		Benchmark: benchmark,
		Status:    models.CompareToBenchmark(value, benchmark, s.threshold),
	}
}

func (s *dashboardService) orDefault(dateRange models.DateRange) models.DateRange {
	if dateRange.Start.IsZero() && dateRange.End.IsZero() {
		return models.LastDays(s.now(), DefaultDashboardDays)
	}
	if dateRange.End.IsZero() {
		dateRange.End = models.LastDays(s.now(), 1).End
	}
	if dateRange.Start.IsZero() {
		dateRange.Start = dateRange.End.AddDate(0, 0, -(DefaultDashboardDays - 1))
	}
	return dateRange
}
