package utils

import (
	"github.com/go-resty/resty/v2"
)

const userAgent = "go-provenance-keeper"

// HTTPClient is the resty client shared by the outbound adapters: the
// Ethereum JSON-RPC ledger and the terminal client's server adapter.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends and accepts JSON.
// Callers set the base URL and timeout.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
