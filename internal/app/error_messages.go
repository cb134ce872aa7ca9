// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// server handlers and the terminal client.
//
// Code* constants are the stable machine readable values of the "error"
// field of every error response body. Msg* constants are the human readable
// "message" that accompanies them. Keeping them in one place ensures the
// server and the client agree on the wording.
package app

// Error codes of the REST API.
const (
	CodeAuthFailed          = "auth_failed"
	CodeAccountDisabled     = "account_disabled"
	CodeDenied              = "denied"
	CodeInvalidInput        = "invalid_input"
	CodeLedgerRejected      = "ledger_rejected"
	CodeLedgerUnavailable   = "ledger_unavailable"
	CodeDuplicateProductID  = "duplicate_product_id"
	CodeCatalogInconsistent = "catalog_inconsistent"
	CodeStorageUnavailable  = "storage_unavailable"
	CodeNotFound            = "not_found"
	CodeConflict            = "conflict"
	CodeInternal            = "internal"
)

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgAuthFailed is returned for an unknown username and for a wrong
	// password alike.
	MsgAuthFailed = "invalid username or password"

	// MsgAccountDisabled is returned when the credentials are valid but an
	// admin suspended the account.
	MsgAccountDisabled = "account disabled by admin"

	// MsgAuthRequired is returned when a route needs a session and the
	// request carries none, or an expired, revoked or forged one.
	MsgAuthRequired = "authentication required"

	// MsgAccessDenied is returned when the role of the session does not
	// allow the operation.
	MsgAccessDenied = "access denied"

	// MsgUsernameTaken is returned by sign-up when the username exists.
	MsgUsernameTaken = "username already taken"

	// MsgLedgerRejected is returned when the ledger refused a registration,
	// most often because the product identifier is already registered.
	MsgLedgerRejected = "ledger rejected the registration"

	// MsgLedgerUnavailable is returned when the ledger could not be reached.
	// Nothing was recorded.
	MsgLedgerUnavailable = "ledger unavailable, nothing was recorded"

	// MsgDuplicateProductID is returned when the catalog already has a row
	// for the product identifier.
	MsgDuplicateProductID = "product id already in catalog"

	// MsgCatalogInconsistent is returned when the ledger accepted the
	// registration but the catalog could not record it.
	MsgCatalogInconsistent = "product registered on ledger but not recorded in catalog, an admin has been notified"

	// MsgDuplicateAfterLedger is returned when the ledger accepted the
	// registration but the catalog already had a row for the identifier.
	MsgDuplicateAfterLedger = "product registered on ledger but its id was already in catalog, an admin has been notified"

	// MsgStorageUnavailable is returned when the catalog cannot be read.
	MsgStorageUnavailable = "storage unavailable"

	// MsgPrincipalNotFound is returned when an admin targets an unknown
	// principal.
	MsgPrincipalNotFound = "principal not found"

	// MsgArtifactNotFound is returned when no QR code exists for a product.
	MsgArtifactNotFound = "qr code not found"

	// MsgInternalServerError is returned for unexpected failures.
	MsgInternalServerError = "internal server error"
)
