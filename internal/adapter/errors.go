package adapter

import "errors"

var (
	// ErrLedgerRejected is returned when the ledger refused a registration.
	ErrLedgerRejected = errors.New("ledger rejected registration")
	// ErrLedgerUnavailable is returned when the ledger could not be reached.
	ErrLedgerUnavailable = errors.New("ledger unavailable")

	ErrNoSubmitterAccount = errors.New("no submitter account available")
	ErrCorruptedChain     = errors.New("local ledger chain is corrupted")
)

// Errors returned by [ServerAdapter] implementations, mapped from HTTP
// status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrIntegrityMismatch   = errors.New("response integrity hash mismatch")
)
