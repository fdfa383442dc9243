package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, "Handler.signUp", h.services.AuthService.SignUp)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, "Handler.login", h.services.AuthService.Login)
}

// authenticate runs a credential call and answers with the user in the body
// and the bearer token in the Authorization header.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request, funcName string,
	call func(ctx context.Context, credentials models.Credentials) (models.User, error)) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeServiceError(w, r, funcName, err)
		return
	}

	user, err := call(ctx, credentials)
	if err != nil {
		writeServiceError(w, r, funcName, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeServiceError(w, r, funcName, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", user.ID).Msg("user authenticated")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.CurrentUser(r.Context(), requestUserID(r))
	if err != nil {
		writeServiceError(w, r, "Handler.currentUser", err)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var update models.UserMetadataUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeServiceError(w, r, "Handler.updateUser", err)
		return
	}

	user, err := h.services.AuthService.UpdateUser(r.Context(), requestUserID(r), update)
	if err != nil {
		writeServiceError(w, r, "Handler.updateUser", err)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var change models.PasswordChange
	if err := decodeJSON(r, &change); err != nil {
		writeServiceError(w, r, "Handler.changePassword", err)
		return
	}

	if err := h.services.AuthService.ChangePassword(r.Context(), requestUserID(r), change); err != nil {
		writeServiceError(w, r, "Handler.changePassword", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
