package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

// scanQRCode resolves the public form of a QR code and counts the scan.
func (h *Handler) scanQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.services.PublicFeedbackService.ScanQRCode(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "Handler.scanQRCode", err)
		return
	}
	utils.WriteJSON(w, qrCode, http.StatusOK)
}

func (h *Handler) submitFeedback(w http.ResponseWriter, r *http.Request) {
	var feedback models.PublicFeedback
	if err := decodeJSON(r, &feedback); err != nil {
		writeServiceError(w, r, "Handler.submitFeedback", err)
		return
	}

	created, err := h.services.PublicFeedbackService.Submit(r.Context(), chi.URLParam(r, "id"), clientKey(r), feedback)
	if err != nil {
		writeServiceError(w, r, "Handler.submitFeedback", err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}
