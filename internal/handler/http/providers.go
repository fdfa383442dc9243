package http

import (
	"net/http"

	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

// listProviders serves the public provider directory.
func (h *Handler) listProviders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	providers, err := h.services.ProviderService.ListProviders(r.Context(), models.ProviderFilter{
		Search:  query.Get("search"),
		State:   query.Get("state"),
		City:    query.Get("city"),
		Segment: query.Get("segment"),
		SortBy:  models.ProviderSort(query.Get("sort_by")),
	})
	if err != nil {
		writeServiceError(w, r, "Handler.listProviders", err)
		return
	}
	utils.WriteJSON(w, providers, http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	provider, err := h.services.ProviderService.GetProfile(r.Context(), requestUserID(r))
	if err != nil {
		writeServiceError(w, r, "Handler.getProfile", err)
		return
	}
	utils.WriteJSON(w, provider, http.StatusOK)
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	var update models.ProviderUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeServiceError(w, r, "Handler.saveProfile", err)
		return
	}
	update.UserID = requestUserID(r)

	provider, err := h.services.ProviderService.SaveProfile(r.Context(), update)
	if err != nil {
		writeServiceError(w, r, "Handler.saveProfile", err)
		return
	}
	utils.WriteJSON(w, provider, http.StatusOK)
}

// uploadProfileImage stores an avatar or cover image. The slot is chosen
// with the "type" query parameter.
func (h *Handler) uploadProfileImage(w http.ResponseWriter, r *http.Request) {
	kind := models.ImageKind(r.URL.Query().Get("type"))

	file, closeFile, err := readUpload(w, r)
	if err != nil {
		writeServiceError(w, r, "Handler.uploadProfileImage", err)
		return
	}
	defer closeFile()

	uploaded, err := h.services.ProviderService.UploadImage(r.Context(), requestUserID(r), kind, file)
	if err != nil {
		writeServiceError(w, r, "Handler.uploadProfileImage", err)
		return
	}
	utils.WriteJSON(w, uploaded, http.StatusOK)
}
