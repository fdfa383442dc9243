package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

func (h *Handler) listCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.services.CampaignService.ListCampaigns(r.Context(), requestUserID(r))
	if err != nil {
		writeServiceError(w, r, "Handler.listCampaigns", err)
		return
	}
	utils.WriteJSON(w, campaigns, http.StatusOK)
}

func (h *Handler) getCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.services.CampaignService.GetCampaign(r.Context(), chi.URLParam(r, "id"), requestUserID(r))
	if err != nil {
		writeServiceError(w, r, "Handler.getCampaign", err)
		return
	}
	utils.WriteJSON(w, campaign, http.StatusOK)
}

func (h *Handler) createCampaign(w http.ResponseWriter, r *http.Request) {
	var input models.CampaignInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, "Handler.createCampaign", err)
		return
	}
	input.UserID = requestUserID(r)

	campaign, err := h.services.CampaignService.CreateCampaign(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, "Handler.createCampaign", err)
		return
	}
	utils.WriteJSON(w, campaign, http.StatusCreated)
}

func (h *Handler) updateCampaign(w http.ResponseWriter, r *http.Request) {
	var input models.CampaignInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, "Handler.updateCampaign", err)
		return
	}
	input.ID = chi.URLParam(r, "id")
	input.UserID = requestUserID(r)

	campaign, err := h.services.CampaignService.UpdateCampaign(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, "Handler.updateCampaign", err)
		return
	}
	utils.WriteJSON(w, campaign, http.StatusOK)
}

func (h *Handler) deleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CampaignService.DeleteCampaign(r.Context(), chi.URLParam(r, "id"), requestUserID(r)); err != nil {
		writeServiceError(w, r, "Handler.deleteCampaign", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
