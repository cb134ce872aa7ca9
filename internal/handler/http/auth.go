package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/service"
	"github.com/MKhiriev/go-provenance-keeper/internal/utils"
	"github.com/MKhiriev/go-provenance-keeper/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	principal, err := h.services.AuthService.SignUp(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, principal, http.StatusCreated)
}

// login answers with the token both in the Authorization header and in
// the body.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	principal, err := h.services.AuthService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.IssueSession(ctx, principal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("principal_id", principal.ID).Str("role", principal.Role.String()).Msg("principal logged in")

	w.Header().Set("Authorization", "Bearer "+token.String())
	utils.WriteJSON(w, models.LoginResponse{Token: token.String(), Principal: principal}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.Logout(r.Context(), session); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
