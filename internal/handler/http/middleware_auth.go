package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/utils"
	"github.com/MKhiriev/go-provenance-keeper/models"
)

// auth is an HTTP middleware that enforces token based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseSession] (signature, issuer, expiry and
// logout revocation) and stores the resulting [models.Session] in the
// request context with [utils.WithSession].
//
// Requests without a usable token are rejected with 401. Capability checks
// are not done here; they belong to the services so that a suspension takes
// effect whatever the transport.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.ParseSession(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log.Debug().Int64("principal_id", session.PrincipalID).Str("role", session.Role.String()).Msg("session attached")

		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, session)))
	})
}

// sessionFromRequest returns the session put in place by [Handler.auth].
func sessionFromRequest(r *http.Request) (models.Session, error) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		return models.Session{}, ErrNoSession
	}
	return session, nil
}
