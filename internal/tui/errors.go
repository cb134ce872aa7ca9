// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-provenance-keeper/internal/adapter"
	"github.com/MKhiriev/go-provenance-keeper/internal/service"
)

var ErrNoServices = errors.New("tui: client services are not configured")

// humanizeError turns a verification failure into one line for the status
// bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Enter a valid product id"
	case errors.Is(err, adapter.ErrIntegrityMismatch):
		return "Response signature mismatch, the answer was not trusted"
	case errors.Is(err, adapter.ErrLedgerUnavailable):
		return "Ledger unavailable, try again later"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or server unavailable"
	}

	return err.Error()
}
