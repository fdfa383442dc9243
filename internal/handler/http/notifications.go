package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/veepo/internal/utils"
)

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.NotificationService.ListNotifications(r.Context(), requestUserID(r))
	if err != nil {
		writeServiceError(w, r, "Handler.listNotifications", err)
		return
	}
	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	if err := h.services.NotificationService.MarkRead(r.Context(), chi.URLParam(r, "id"), requestUserID(r)); err != nil {
		writeServiceError(w, r, "Handler.markNotificationRead", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.services.NotificationService.MarkAllRead(r.Context(), requestUserID(r)); err != nil {
		writeServiceError(w, r, "Handler.markAllNotificationsRead", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
