package adapter

import (
	"context"
	"crypto/hmac"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-provenance-keeper/internal/config"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/utils"
	"github.com/MKhiriev/go-provenance-keeper/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	// hashHeader carries the HMAC-SHA256 of the response body.
	hashHeader    = "HashSHA256"
	traceIDHeader = "X-Trace-ID"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and initialises the shared HMAC hasher pool used to check the
// integrity header of responses.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	utils.InitHasherPool(appCfg.HashKey)

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Verify implements [ServerAdapter]. It calls
// GET /api/products/{productID}/verify with the identifier path-escaped and
// a fresh X-Trace-ID, which is logged so a lookup can be found in the server
// logs.
func (h *httpServerAdapter) Verify(ctx context.Context, productID string) (models.VerificationResult, error) {
	traceID := uuid.NewString()
	h.logger.Debug().Str("trace_id", traceID).Str("product_id", productID).Msg("verifying product")

	return getJSON[models.VerificationResult](ctx, h, "/api/products/"+url.PathEscape(productID)+"/verify", traceID)
}

// Version implements [ServerAdapter]. It calls GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	return getJSON[models.VersionResponse](ctx, h, "/api/version", "")
}

// getJSON performs a GET, maps error statuses, checks the response
// signature and decodes the body into T.
func getJSON[T any](ctx context.Context, h *httpServerAdapter, path, traceID string) (T, error) {
	var out T

	req := h.client.R().SetContext(ctx)
	if traceID != "" {
		req.SetHeader(traceIDHeader, traceID)
	}

	resp, err := req.Get(path)
	if err != nil {
		return out, fmt.Errorf("GET %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}
	if err = h.checkIntegrity(resp); err != nil {
		return out, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", path, err)
	}

	return out, nil
}

// checkIntegrity compares the HashSHA256 header with the HMAC of the body.
// Responses without the header are accepted; the server only signs when it
// has a hash key configured.
func (h *httpServerAdapter) checkIntegrity(resp *resty.Response) error {
	if h.hashKey == "" {
		return nil
	}

	received := resp.Header().Get(hashHeader)
	if received == "" {
		return nil
	}

	got, err := hex.DecodeString(received)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIntegrityMismatch, err)
	}
	if !hmac.Equal(got, utils.Hash(resp.Body())) {
		h.logger.Warn().Str("func", "*httpServerAdapter.checkIntegrity").Msg("response hash mismatch")
		return ErrIntegrityMismatch
	}

	return nil
}
