package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAuthFailed covers both an unknown username and a wrong password.
	ErrAuthFailed = errors.New("authentication failed")
	// ErrAccountDisabled means the credentials were valid but an admin
	// suspended the account.
	ErrAccountDisabled = errors.New("account disabled by admin")
	// ErrDenied means the role of the session does not hold the capability.
	ErrDenied = errors.New("access denied")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrSessionRevoked          = errors.New("session revoked")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrCatalogInconsistent means the ledger accepted a registration that
	// the catalog failed to record. It wraps the catalog error.
	ErrCatalogInconsistent = errors.New("ledger and catalog are inconsistent")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
