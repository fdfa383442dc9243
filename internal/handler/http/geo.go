package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/veepo/internal/utils"
)

func (h *Handler) geoStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.services.GeoService.States(r.Context())
	if err != nil {
		writeServiceError(w, r, "Handler.geoStates", err)
		return
	}
	utils.WriteJSON(w, states, http.StatusOK)
}

func (h *Handler) geoCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.services.GeoService.Cities(r.Context(), chi.URLParam(r, "uf"))
	if err != nil {
		writeServiceError(w, r, "Handler.geoCities", err)
		return
	}
	utils.WriteJSON(w, cities, http.StatusOK)
}

func (h *Handler) geoCNAEClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.services.GeoService.CNAEClasses(r.Context())
	if err != nil {
		writeServiceError(w, r, "Handler.geoCNAEClasses", err)
		return
	}
	utils.WriteJSON(w, classes, http.StatusOK)
}
