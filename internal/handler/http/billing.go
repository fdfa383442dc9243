package http

import (
	"net/http"

	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

func (h *Handler) billingPlans(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.BillingService.Plans(r.Context()), http.StatusOK)
}

// checkout opens a hosted checkout session for the authenticated user.
// The customer email is taken from the account, never from the body.
func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "Handler.checkout", err)
		return
	}

	user, err := h.services.AuthService.CurrentUser(ctx, requestUserID(r))
	if err != nil {
		writeServiceError(w, r, "Handler.checkout", err)
		return
	}
	req.UserID = user.ID
	req.UserEmail = user.Email

	session, err := h.services.BillingService.Checkout(ctx, req)
	if err != nil {
		writeServiceError(w, r, "Handler.checkout", err)
		return
	}
	utils.WriteJSON(w, session, http.StatusOK)
}
