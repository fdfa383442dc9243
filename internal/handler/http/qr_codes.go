package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

func (h *Handler) listQRCodes(w http.ResponseWriter, r *http.Request) {
	qrCodes, err := h.services.QRCodeService.ListQRCodes(r.Context(), requestUserID(r))
	if err != nil {
		writeServiceError(w, r, "Handler.listQRCodes", err)
		return
	}
	utils.WriteJSON(w, qrCodes, http.StatusOK)
}

func (h *Handler) createQRCode(w http.ResponseWriter, r *http.Request) {
	var qrCode models.QRCodeCreate
	if err := decodeJSON(r, &qrCode); err != nil {
		writeServiceError(w, r, "Handler.createQRCode", err)
		return
	}
	qrCode.UserID = requestUserID(r)

	created, err := h.services.QRCodeService.CreateQRCode(r.Context(), qrCode)
	if err != nil {
		writeServiceError(w, r, "Handler.createQRCode", err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateQRCode(w http.ResponseWriter, r *http.Request) {
	var update models.QRCodeUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeServiceError(w, r, "Handler.updateQRCode", err)
		return
	}
	update.ID = chi.URLParam(r, "id")
	update.UserID = requestUserID(r)

	updated, err := h.services.QRCodeService.UpdateQRCode(r.Context(), update)
	if err != nil {
		writeServiceError(w, r, "Handler.updateQRCode", err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteQRCode(w http.ResponseWriter, r *http.Request) {
	if err := h.services.QRCodeService.DeleteQRCode(r.Context(), chi.URLParam(r, "id"), requestUserID(r)); err != nil {
		writeServiceError(w, r, "Handler.deleteQRCode", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadQRCodeLogo(w http.ResponseWriter, r *http.Request) {
	file, closeFile, err := readUpload(w, r)
	if err != nil {
		writeServiceError(w, r, "Handler.uploadQRCodeLogo", err)
		return
	}
	defer closeFile()

	uploaded, err := h.services.QRCodeService.UploadLogo(r.Context(), chi.URLParam(r, "id"), requestUserID(r), file)
	if err != nil {
		writeServiceError(w, r, "Handler.uploadQRCodeLogo", err)
		return
	}
	utils.WriteJSON(w, uploaded, http.StatusOK)
}
