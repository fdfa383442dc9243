package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	serveRange(w, r, "Handler.dashboardStats", h.services.DashboardService.Stats)
}

func (h *Handler) npsTrend(w http.ResponseWriter, r *http.Request) {
	serveRange(w, r, "Handler.npsTrend", h.services.DashboardService.NPSTrend)
}

func (h *Handler) benchmarkComparison(w http.ResponseWriter, r *http.Request) {
	serveRange(w, r, "Handler.benchmarkComparison", h.services.DashboardService.Comparison)
}

func (h *Handler) benchmark(w http.ResponseWriter, r *http.Request) {
	benchmark, err := h.services.DashboardService.Benchmark(r.Context(), requestUserID(r))
	if err != nil {
		writeServiceError(w, r, "Handler.benchmark", err)
		return
	}
	utils.WriteJSON(w, benchmark, http.StatusOK)
}

// serveRange answers a dashboard aggregate computed over the requested range.
func serveRange[T any](w http.ResponseWriter, r *http.Request, funcName string,
	aggregate func(ctx context.Context, userID string, dateRange models.DateRange) (T, error)) {
	dateRange, err := parseDateRange(r)
	if err != nil {
		writeServiceError(w, r, funcName, err)
		return
	}

	result, err := aggregate(r.Context(), requestUserID(r), dateRange)
	if err != nil {
		writeServiceError(w, r, funcName, err)
		return
	}
	utils.WriteJSON(w, result, http.StatusOK)
}
