package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/internal/validators"
	"github.com/MKhiriev/veepo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dashboardNow = time.Date(2025, 5, 20, 15, 30, 0, 0, time.UTC)

func newRawDashboardService(dashboard *fakeDashboardRepository, providers *fakeProviderRepository, threshold float64) *dashboardService {
	svc := NewDashboardService(dashboard, providers, threshold, logger.Nop()).(*dashboardService)
	svc.now = fixedClock(dashboardNow)
	return svc
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDashboardService_Stats_DefaultRange(t *testing.T) {
	var got models.DateRange
	dashboard := &fakeDashboardRepository{
		statsFn: func(_ context.Context, _ string, dateRange models.DateRange) (models.DashboardStats, error) {
			got = dateRange
			return models.DashboardStats{TotalFeedbacks: 3}, nil
		},
	}
	svc := newRawDashboardService(dashboard, &fakeProviderRepository{}, models.DefaultBenchmarkThreshold)

	stats, err := svc.Stats(context.Background(), "u1", models.DateRange{})

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalFeedbacks)
	assert.Equal(t, day(2025, 4, 21), got.Start)
	assert.Equal(t, day(2025, 5, 20), got.End)
}

func TestDashboardService_OrDefault_OpenBounds(t *testing.T) {
	svc := newRawDashboardService(&fakeDashboardRepository{}, &fakeProviderRepository{}, models.DefaultBenchmarkThreshold)

	onlyStart := svc.orDefault(models.DateRange{Start: day(2025, 5, 1)})
	assert.Equal(t, day(2025, 5, 1), onlyStart.Start)
	assert.Equal(t, day(2025, 5, 20), onlyStart.End)

	onlyEnd := svc.orDefault(models.DateRange{End: day(2025, 3, 30)})
	assert.Equal(t, day(2025, 3, 1), onlyEnd.Start)
	assert.Equal(t, day(2025, 3, 30), onlyEnd.End)
}

func TestDashboardService_Benchmark_NoCNAE(t *testing.T) {
	tests := []struct {
		name      string
		providers *fakeProviderRepository
	}{
		{name: "no profile", providers: &fakeProviderRepository{}},
		{name: "empty cnae", providers: &fakeProviderRepository{
			getByUserFn: func(context.Context, string) (models.Provider, error) { return models.Provider{ID: "p1"}, nil },
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dashboard := &fakeDashboardRepository{
				benchmarkFn: func(context.Context, string) (models.Benchmark, error) {
					t.Fatal("benchmark must not be queried")
					return models.Benchmark{}, nil
				},
			}
			svc := newRawDashboardService(dashboard, tt.providers, models.DefaultBenchmarkThreshold)

			_, err := svc.Benchmark(context.Background(), "u1")
			assert.ErrorIs(t, err, ErrNoCNAE)

			_, err = svc.Comparison(context.Background(), "u1", models.DateRange{})
			assert.ErrorIs(t, err, ErrNoCNAE)
		})
	}
}

func TestDashboardService_Comparison(t *testing.T) {
	providers := &fakeProviderRepository{
		getByUserFn: func(context.Context, string) (models.Provider, error) {
			return models.Provider{ID: "p1", CNAE: "5611-2/01"}, nil
		},
	}
	dashboard := &fakeDashboardRepository{
		benchmarkFn: func(_ context.Context, cnae string) (models.Benchmark, error) {
			return models.Benchmark{CNAE: cnae, AverageRating: ptr(4.0), NPSScore: ptr(50.0)}, nil
		},
		summaryFn: func(context.Context, string, models.DateRange) (models.RatingSummary, error) {
			// NPS = 100 * (2 - 2) / 10 = 0
			return models.RatingSummary{Total: 10, Promoters: 2, Detractors: 2, AverageRating: 4.03}, nil
		},
	}
	svc := newRawDashboardService(dashboard, providers, models.DefaultBenchmarkThreshold)

	comparison, err := svc.Comparison(context.Background(), "u1", models.DateRange{})

	require.NoError(t, err)
	assert.Equal(t, "5611-2/01", comparison.CNAE)
	require.Len(t, comparison.Metrics, 2)
	assert.Equal(t, models.MetricAverageRating, comparison.Metrics[0].Metric)
	assert.Equal(t, models.ComparisonEqual, comparison.Metrics[0].Status)
	assert.Equal(t, models.MetricNPSScore, comparison.Metrics[1].Metric)
	assert.Equal(t, models.ComparisonBelow, comparison.Metrics[1].Status)
	assert.Equal(t, 0.0, comparison.Metrics[1].Value)
}

func TestDashboardService_Comparison_AbsoluteThreshold(t *testing.T) {
	providers := &fakeProviderRepository{
		getByUserFn: func(context.Context, string) (models.Provider, error) {
			return models.Provider{CNAE: "5611-2/01"}, nil
		},
	}
	dashboard := &fakeDashboardRepository{
		benchmarkFn: func(_ context.Context, cnae string) (models.Benchmark, error) {
			return models.Benchmark{CNAE: cnae, AverageRating: ptr(4.0), NPSScore: ptr(45.0)}, nil
		},
		summaryFn: func(context.Context, string, models.DateRange) (models.RatingSummary, error) {
			// NPS = 100 * (6 - 2) / 10 = 40
			return models.RatingSummary{Total: 10, Promoters: 6, Detractors: 2, AverageRating: 4.03}, nil
		},
	}

	tests := []struct {
		name       string
		threshold  float64
		wantRating models.ComparisonStatus
		wantNPS    models.ComparisonStatus
	}{
		{name: "default", threshold: models.DefaultBenchmarkThreshold, wantRating: models.ComparisonEqual, wantNPS: models.ComparisonBelow},
		{name: "tight", threshold: 0.01, wantRating: models.ComparisonAbove, wantNPS: models.ComparisonBelow},
		{name: "wide", threshold: 10, wantRating: models.ComparisonEqual, wantNPS: models.ComparisonEqual},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comparison, err := newRawDashboardService(dashboard, providers, tt.threshold).Comparison(context.Background(), "u1", models.DateRange{})

			require.NoError(t, err)
			require.Len(t, comparison.Metrics, 2)
			assert.Equal(t, tt.wantRating, comparison.Metrics[0].Status)
			assert.Equal(t, tt.wantNPS, comparison.Metrics[1].Status)
		})
	}
}

func TestDashboardService_Comparison_SkipsMissingMetrics(t *testing.T) {
	providers := &fakeProviderRepository{
		getByUserFn: func(context.Context, string) (models.Provider, error) {
			return models.Provider{CNAE: "4711-3/02"}, nil
		},
	}
	dashboard := &fakeDashboardRepository{
		benchmarkFn: func(_ context.Context, cnae string) (models.Benchmark, error) {
			return models.Benchmark{CNAE: cnae, AverageRating: ptr(3.0)}, nil
		},
		summaryFn: func(context.Context, string, models.DateRange) (models.RatingSummary, error) {
			return models.RatingSummary{Total: 1, AverageRating: 5}, nil
		},
	}

	comparison, err := newRawDashboardService(dashboard, providers, 0.1).Comparison(context.Background(), "u1", models.DateRange{})

	require.NoError(t, err)
	require.Len(t, comparison.Metrics, 1)
	assert.Equal(t, models.ComparisonAbove, comparison.Metrics[0].Status)
}

func TestDashboardService_UnknownBenchmark(t *testing.T) {
	providers := &fakeProviderRepository{
		getByUserFn: func(context.Context, string) (models.Provider, error) {
			return models.Provider{CNAE: "0000-0/00"}, nil
		},
	}
	dashboard := &fakeDashboardRepository{
		benchmarkFn: func(context.Context, string) (models.Benchmark, error) {
			return models.Benchmark{}, store.ErrBenchmarkNotFound
		},
	}

	_, err := newRawDashboardService(dashboard, providers, models.DefaultBenchmarkThreshold).Benchmark(context.Background(), "u1")

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDashboardValidationService_RejectsInvertedRange(t *testing.T) {
	dashboard := &fakeDashboardRepository{
		statsFn: func(context.Context, string, models.DateRange) (models.DashboardStats, error) {
			t.Fatal("storage must not be called")
			return models.DashboardStats{}, nil
		},
	}
	svc := NewDashboardValidationService(newRawDashboardService(dashboard, &fakeProviderRepository{}, models.DefaultBenchmarkThreshold), validators.NewDomainValidator())

	_, err := svc.Stats(context.Background(), "u1", models.DateRange{Start: day(2025, 5, 10), End: day(2025, 5, 1)})

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrInvalidDateRange)
}
