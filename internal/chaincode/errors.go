package chaincode

import "errors"

var (
	ErrProductAlreadyRegistered = errors.New("product already registered")
	ErrEmptyField               = errors.New("field cannot be empty")
	ErrFieldTooLong             = errors.New("field exceeds max length")
)
