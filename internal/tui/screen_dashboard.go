package tui

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/veepo/internal/client"
	"github.com/MKhiriev/veepo/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m mainModel) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.preset) {
		d := m.rt.Dashboard
		d.SetPreset(nextPreset(rangeDays(d.Range())), time.Now())
	}
	return m, nil
}

// rangeDays counts the days of r, both ends included.
func rangeDays(r models.DateRange) int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// nextPreset cycles through the presets; a custom range jumps to the first.
func nextPreset(days int) int {
	presets := client.RangePresets
	idx := slices.Index(presets, days)
	return presets[(idx+1)%len(presets)]
}

func (m mainModel) viewDashboard(lang models.Language, p palette) string {
	d := m.rt.Dashboard
	r := d.Range()

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s .. %s (%d %s)\n\n", tr(lang, "dash.range"),
		r.Start.Format(models.DateLayout), r.End.Format(models.DateLayout), rangeDays(r), tr(lang, "dash.days"))

	stats := d.Stats.State()
	comparison := d.Comparison.State().Data
	if line := stateLine(lang, stats); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}

	averageCard := models.FormatDecimal(stats.Data.AverageRating)
	if mc, ok := findMetric(comparison, models.MetricAverageRating); ok {
		averageCard += " " + comparisonArrow(p, mc.Status)
	}
	cards := []string{
		p.card.Render(tr(lang, "dash.total") + "\n" + models.FormatInteger(float64(stats.Data.TotalFeedbacks))),
		p.card.Render(tr(lang, "dash.average") + "\n" + averageCard),
		p.card.Render(tr(lang, "dash.active_qr") + "\n" + models.FormatInteger(float64(stats.Data.ActiveQRCodes))),
		p.card.Render(tr(lang, "dash.pending") + "\n" + models.FormatInteger(float64(stats.Data.PendingFeedbacks))),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")

	b.WriteString(p.title.Render(tr(lang, "dash.nps")))
	b.WriteString("\n")
	trend := d.Trend.State()
	if points := trend.Data; len(points) > 0 {
		last := points[len(points)-1]
		fmt.Fprintf(&b, "%s %s %s (%d)\n", points[0].Day, sparkline(points), last.Day, last.NPSScore)
	} else if line := stateLine(lang, trend); line != "" {
		b.WriteString(line + "\n")
	} else {
		b.WriteString("-\n")
	}
	b.WriteString("\n")

	b.WriteString(p.title.Render(tr(lang, "dash.benchmark")))
	b.WriteString("\n")
	b.WriteString(m.viewComparison(lang, p, comparison))
	b.WriteString("\n")

	b.WriteString(p.title.Render(tr(lang, "dash.map")))
	b.WriteString("\n")
	b.WriteString(viewMap(lang, d.Map.State().Data))
	b.WriteString("\n\n")

	b.WriteString(p.title.Render(tr(lang, "dash.recent")))
	b.WriteString("\n")
	recent := d.RecentFeedbacks()
	if len(recent) == 0 {
		b.WriteString(tr(lang, "feedback.empty"))
	}
	for _, fb := range recent {
		fmt.Fprintf(&b, "%s %-18s %s\n", stars(fb.Rating), fitText(valueOrDash(fb.CustomerName), 18), fitText(fb.Comment, 40))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m mainModel) viewComparison(lang models.Language, p palette, c models.BenchmarkComparison) string {
	if len(c.Metrics) == 0 {
		return tr(lang, "dash.no_benchmark") + "\n"
	}

	var b strings.Builder
	for _, mc := range c.Metrics {
		label, format := "NPS", models.FormatInteger
		if mc.Metric == models.MetricAverageRating {
			label, format = tr(lang, "dash.average"), models.FormatDecimal
		}
		fmt.Fprintf(&b, "%-14s %6s vs %6s %s\n", label, format(mc.Value), format(mc.Benchmark), comparisonArrow(p, mc.Status))
	}
	return b.String()
}

func findMetric(c models.BenchmarkComparison, metric models.BenchmarkMetric) (models.MetricComparison, bool) {
	for _, mc := range c.Metrics {
		if mc.Metric == metric {
			return mc, true
		}
	}
	return models.MetricComparison{}, false
}

func comparisonArrow(p palette, status models.ComparisonStatus) string {
	switch status {
	case models.ComparisonAbove:
		return p.up.Render("▲")
	case models.ComparisonBelow:
		return p.down.Render("▼")
	default:
		return "="
	}
}

type mapCluster struct {
	lat, lng float64
	count    int
}

// mapClusters groups points into cells of one tenth of a degree, busiest
// first, and keeps at most n of them.
func mapClusters(points []models.FeedbackMapPoint, n int) []mapCluster {
	index := make(map[[2]float64]int)
	var clusters []mapCluster
	for _, pt := range points {
		cell := [2]float64{math.Round(pt.Lat*10) / 10, math.Round(pt.Lng*10) / 10}
		if i, ok := index[cell]; ok {
			clusters[i].count++
			continue
		}
		index[cell] = len(clusters)
		clusters = append(clusters, mapCluster{lat: cell[0], lng: cell[1], count: 1})
	}

	slices.SortStableFunc(clusters, func(a, b mapCluster) int { return b.count - a.count })
	if len(clusters) > n {
		clusters = clusters[:n]
	}
	return clusters
}

func viewMap(lang models.Language, points []models.FeedbackMapPoint) string {
	if len(points) == 0 {
		return tr(lang, "dash.map_empty")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d %s", len(points), tr(lang, "dash.map_points"))
	for _, c := range mapClusters(points, 3) {
		fmt.Fprintf(&b, "\n  %7.1f %7.1f  ×%d", c.lat, c.lng, c.count)
	}
	return b.String()
}
