package http

import (
	"bytes"
	"encoding/hex"
	"net/http"

	"github.com/MKhiriev/go-provenance-keeper/internal/utils"
)

// hashHeader carries the hex HMAC-SHA256 of the uncompressed response body.
const hashHeader = "HashSHA256"

// hashingResponseWriter holds the body back until the handler returns so
// the hash header can still be set.
type hashingResponseWriter struct {
	http.ResponseWriter

	status int
	body   bytes.Buffer
}

func (w *hashingResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *hashingResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(b)
}

// withHashing signs every response with the configured hash key. The TUI
// client checks the header before trusting a verification answer. Without
// a key responses pass through untouched.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	if h.hashKey == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hw := &hashingResponseWriter{ResponseWriter: w}
		next.ServeHTTP(hw, r)

		if hw.status == 0 {
			hw.status = http.StatusOK
		}

		w.Header().Set(hashHeader, hex.EncodeToString(utils.Hash(hw.body.Bytes())))
		w.WriteHeader(hw.status)
		if _, err := w.Write(hw.body.Bytes()); err != nil {
			h.logger.Err(err).Str("func", "*Handler.withHashing").Msg("failed to write signed response")
		}
	})
}
