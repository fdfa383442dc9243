package models

import (
	"math"
	"time"
)

// DateRange is the inclusive day range that drives dashboard aggregates.
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// DateLayout is the wire format of dashboard dates.
const DateLayout = "2006-01-02"

// LastDays returns the range covering the n days up to and including now.
func LastDays(now time.Time, n int) DateRange {
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return DateRange{Start: end.AddDate(0, 0, -(n - 1)), End: end}
}

// Key identifies the range in caches.
func (r DateRange) Key() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}

// DashboardStats is the KPI card payload.
type DashboardStats struct {
	TotalFeedbacks   int     `json:"totalFeedbacks"`
	AverageRating    float64 `json:"averageRating"`
	ActiveQRCodes    int     `json:"activeQrCodes"`
	PendingFeedbacks int     `json:"pendingFeedbacks"`
}

// NPSPoint is one day of the NPS trend.
type NPSPoint struct {
	Day      string `json:"day"`
	NPSScore int    `json:"nps_score"`
}

// BenchmarkMetric names an industry benchmark metric.
type BenchmarkMetric string

const (
	MetricAverageRating BenchmarkMetric = "average_rating"
	MetricNPSScore      BenchmarkMetric = "nps_score"
)

// Benchmark is the industry average for a CNAE class.
type Benchmark struct {
	CNAE          string   `json:"cnae"`
	AverageRating *float64 `json:"average_rating,omitempty"`
	NPSScore      *float64 `json:"nps_score,omitempty"`
}

// ComparisonStatus is the outcome of comparing a metric to its benchmark.
type ComparisonStatus string

const (
	ComparisonAbove ComparisonStatus = "above"
	ComparisonBelow ComparisonStatus = "below"
	ComparisonEqual ComparisonStatus = "equal"
)

// MetricComparison pairs a user metric with its benchmark.
type MetricComparison struct {
	Metric    BenchmarkMetric  `json:"metric"`
	Value     float64          `json:"value"`
	Benchmark float64          `json:"benchmark"`
	Status    ComparisonStatus `json:"status"`
}

// BenchmarkComparison is the dashboard benchmark card payload.
type BenchmarkComparison struct {
	CNAE    string             `json:"cnae"`
	Metrics []MetricComparison `json:"metrics"`
}

// RatingSummary counts ratings for NPS and average computation.
type RatingSummary struct {
	Total         int
	Promoters     int
	Detractors    int
	AverageRating float64
}

// NPS returns round(100 * (promoters - detractors) / total), 0 without ratings.
// On the 1..5 scale promoters rate 5 and detractors rate 3 or less.
func (s RatingSummary) NPS() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.Promoters-s.Detractors) / float64(s.Total)))
}

// Bounds returns the half-open [from, to) timestamps of the range.
func (r DateRange) Bounds() (time.Time, time.Time) {
	return r.Start, r.End.AddDate(0, 0, 1)
}
