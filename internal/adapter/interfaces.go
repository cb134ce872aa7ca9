// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transports of the provenance keeper.
//
// [LedgerAdapter] is the narrow interface to the append-only product ledger.
// Two implementations ship with the package: an Ethereum JSON-RPC client that
// talks to the ProductRegistry contract ([NewEthereumLedger]) and an embedded
// hash-chained ledger persisted to a local file ([NewLocalLedger]).
//
// [ServerAdapter] is used by the terminal client to reach the REST API of the
// server ([NewHTTPServerAdapter]).
//
// Transport failures are reported as [ErrLedgerUnavailable] and refusals by
// the ledger as [ErrLedgerRejected], so callers can use [errors.Is] without
// knowing which ledger is configured.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-provenance-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// LedgerAdapter is the client of the append-only product ledger.
type LedgerAdapter interface {
	// Register submits a registration and blocks until the ledger accepted
	// it. The returned string is the transaction reference.
	//
	// Returns [ErrLedgerRejected] when the ledger refused the entry (for
	// example a duplicate product identifier) and [ErrLedgerUnavailable]
	// when it could not be reached or did not answer in time.
	Register(ctx context.Context, registration models.LedgerRegistration) (string, error)

	// Verify looks productID up without changing ledger state. An unknown
	// identifier yields a result with [models.StatusUnregistered], never an
	// error.
	Verify(ctx context.Context, productID string) (models.VerificationResult, error)

	// Registrations enumerates every registration recorded on the ledger in
	// ledger order.
	Registrations(ctx context.Context) ([]models.LedgerRegistration, error)

	// Ping checks that the ledger answers.
	Ping(ctx context.Context) error
}

// ServerAdapter is the terminal client's view of the REST API.
type ServerAdapter interface {
	// Verify asks the server whether productID is registered on the ledger.
	Verify(ctx context.Context, productID string) (models.VerificationResult, error)

	// Version returns the server build information.
	Version(ctx context.Context) (models.VersionResponse, error)
}
