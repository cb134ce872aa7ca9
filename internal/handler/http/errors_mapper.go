package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-provenance-keeper/internal/adapter"
	"github.com/MKhiriev/go-provenance-keeper/internal/app"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/service"
	"github.com/MKhiriev/go-provenance-keeper/internal/store"
	"github.com/MKhiriev/go-provenance-keeper/internal/utils"
	"github.com/MKhiriev/go-provenance-keeper/models"
)

type errorMapping struct {
	target  error
	cause   error // optional, must also be in the chain
	status  int
	code    string
	message string
}

func (m errorMapping) matches(err error) bool {
	return errors.Is(err, m.target) && (m.cause == nil || errors.Is(err, m.cause))
}

// errorMappings is matched top to bottom. ErrCatalogInconsistent comes
// first because it wraps the catalog error; a duplicate id under it is a
// conflict, anything else a server fault.
var errorMappings = []errorMapping{
	{service.ErrCatalogInconsistent, store.ErrDuplicateProductID, http.StatusConflict, app.CodeDuplicateProductID, app.MsgDuplicateAfterLedger},
	{service.ErrCatalogInconsistent, nil, http.StatusInternalServerError, app.CodeCatalogInconsistent, app.MsgCatalogInconsistent},

	{service.ErrAccountDisabled, nil, http.StatusForbidden, app.CodeAccountDisabled, app.MsgAccountDisabled},
	{service.ErrAuthFailed, nil, http.StatusUnauthorized, app.CodeAuthFailed, app.MsgAuthFailed},
	{service.ErrTokenIsExpiredOrInvalid, nil, http.StatusUnauthorized, app.CodeAuthFailed, app.MsgAuthRequired},
	{service.ErrSessionRevoked, nil, http.StatusUnauthorized, app.CodeAuthFailed, app.MsgAuthRequired},
	{ErrEmptyAuthorizationHeader, nil, http.StatusUnauthorized, app.CodeAuthFailed, app.MsgAuthRequired},
	{ErrInvalidAuthorizationHeader, nil, http.StatusUnauthorized, app.CodeAuthFailed, app.MsgAuthRequired},
	{ErrNoSession, nil, http.StatusUnauthorized, app.CodeAuthFailed, app.MsgAuthRequired},
	{service.ErrDenied, nil, http.StatusForbidden, app.CodeDenied, app.MsgAccessDenied},

	{service.ErrInvalidDataProvided, nil, http.StatusBadRequest, app.CodeInvalidInput, app.MsgInvalidDataProvided},
	{store.ErrUsernameTaken, nil, http.StatusConflict, app.CodeConflict, app.MsgUsernameTaken},

	{adapter.ErrLedgerRejected, nil, http.StatusConflict, app.CodeLedgerRejected, app.MsgLedgerRejected},
	{adapter.ErrLedgerUnavailable, nil, http.StatusServiceUnavailable, app.CodeLedgerUnavailable, app.MsgLedgerUnavailable},
	{store.ErrDuplicateProductID, nil, http.StatusConflict, app.CodeDuplicateProductID, app.MsgDuplicateProductID},

	{store.ErrPrincipalNotFound, nil, http.StatusNotFound, app.CodeNotFound, app.MsgPrincipalNotFound},
	{ErrArtifactNotFound, nil, http.StatusNotFound, app.CodeNotFound, app.MsgArtifactNotFound},

	{store.ErrBuildingSQLQuery, nil, http.StatusServiceUnavailable, app.CodeStorageUnavailable, app.MsgStorageUnavailable},
	{store.ErrExecutingQuery, nil, http.StatusServiceUnavailable, app.CodeStorageUnavailable, app.MsgStorageUnavailable},
	{store.ErrExecutingStatement, nil, http.StatusServiceUnavailable, app.CodeStorageUnavailable, app.MsgStorageUnavailable},
	{store.ErrScanningRow, nil, http.StatusServiceUnavailable, app.CodeStorageUnavailable, app.MsgStorageUnavailable},
	{store.ErrScanningRows, nil, http.StatusServiceUnavailable, app.CodeStorageUnavailable, app.MsgStorageUnavailable},
}

// statusFromError returns the HTTP status and the response body for err.
// Unknown errors become 500 with a generic message.
func statusFromError(err error) (int, models.ErrorResponse) {
	for _, m := range errorMappings {
		if m.matches(err) {
			return m.status, models.ErrorResponse{Error: m.code, Message: m.message}
		}
	}

	return http.StatusInternalServerError, models.ErrorResponse{Error: app.CodeInternal, Message: app.MsgInternalServerError}
}

// writeError logs err and writes the JSON error body. 5xx are logged at
// error level, the rest at info.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Str("code", body.Error).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Str("code", body.Error).Msg("request rejected")
	}

	utils.WriteJSON(w, body, status)
}
