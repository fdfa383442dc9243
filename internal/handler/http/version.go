package http

import (
	"net/http"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Health(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.health").Msg("health check failed")
		utils.WriteError(w, "database is unavailable", http.StatusServiceUnavailable)
		return
	}
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
