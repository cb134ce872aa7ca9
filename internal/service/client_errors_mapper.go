// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-provenance-keeper/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error the client can show.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	case errors.Is(err, adapter.ErrServiceUnavailable), errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", adapter.ErrLedgerUnavailable, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrDenied, err)
	}

	return err
}
