package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/models"
)

// dashboardRepository computes owner aggregates directly in SQL. Date
// ranges are applied as half-open [start, end+1day) intervals.
type dashboardRepository struct {
	*DB
	logger *logger.Logger
}

// NewDashboardRepository constructs a [DashboardRepository] backed by db.
func NewDashboardRepository(db *DB, logger *logger.Logger) DashboardRepository {
	return &dashboardRepository{DB: db, logger: logger}
}

func (r *dashboardRepository) Stats(ctx context.Context, userID string, dateRange models.DateRange) (models.DashboardStats, error) {
	from, to := dateRange.Bounds()

	var stats models.DashboardStats
	err := r.DB.QueryRowContext(ctx, selectDashboardStats, userID, from, to).Scan(
		&stats.TotalFeedbacks,
		&stats.AverageRating,
		&stats.ActiveQRCodes,
		&stats.PendingFeedbacks,
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "dashboardRepository.Stats").Str("user_id", userID).Msg("failed to compute stats")
		return models.DashboardStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stats, nil
}

// NPSTrend returns one point per day that has feedback, oldest first.
func (r *dashboardRepository) NPSTrend(ctx context.Context, userID string, dateRange models.DateRange) ([]models.NPSPoint, error) {
	log := logger.FromContext(ctx)
	from, to := dateRange.Bounds()

	rows, err := r.DB.QueryContext(ctx, selectNPSTrend, userID, from, to)
	if err != nil {
		log.Err(err).Str("func", "dashboardRepository.NPSTrend").Str("user_id", userID).Msg("failed to compute nps trend")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	points := make([]models.NPSPoint, 0)
	for rows.Next() {
		var (
			day     string
			summary models.RatingSummary
		)
		if err = rows.Scan(&day, &summary.Total, &summary.Promoters, &summary.Detractors); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		points = append(points, models.NPSPoint{Day: day, NPSScore: summary.NPS()})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return points, nil
}

func (r *dashboardRepository) RatingSummary(ctx context.Context, userID string, dateRange models.DateRange) (models.RatingSummary, error) {
	from, to := dateRange.Bounds()

	var summary models.RatingSummary
	err := r.DB.QueryRowContext(ctx, selectRatingSummaryRange, userID, from, to).
		Scan(&summary.Total, &summary.Promoters, &summary.Detractors, &summary.AverageRating)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "dashboardRepository.RatingSummary").Str("user_id", userID).Msg("failed to compute rating summary")
		return models.RatingSummary{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return summary, nil
}

// Benchmark returns the industry metrics of cnae. A class with no metrics
// yields [ErrBenchmarkNotFound].
func (r *dashboardRepository) Benchmark(ctx context.Context, cnae string) (models.Benchmark, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, selectBenchmark, cnae)
	if err != nil {
		log.Err(err).Str("func", "dashboardRepository.Benchmark").Str("cnae", cnae).Msg("failed to load benchmark")
		return models.Benchmark{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	benchmark := models.Benchmark{CNAE: cnae}
	found := false
	for rows.Next() {
		var (
			metric models.BenchmarkMetric
			value  float64
		)
		if err = rows.Scan(&metric, &value); err != nil {
			return models.Benchmark{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		switch metric {
		case models.MetricAverageRating:
			benchmark.AverageRating = &value
		case models.MetricNPSScore:
			benchmark.NPSScore = &value
		default:
			continue
		}
		found = true
	}
	if err = rows.Err(); err != nil {
		return models.Benchmark{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if !found {
		return models.Benchmark{}, ErrBenchmarkNotFound
	}
	return benchmark, nil
}
