package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyProductID    = errors.New("product id is required")
	ErrEmptyName         = errors.New("product name is required")
	ErrEmptyManufacturer = errors.New("manufacturer is required")
	ErrFieldTooLong      = errors.New("field is too long")

	ErrInvalidUsername    = errors.New("username must be 3 to 64 characters without spaces")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrRoleNotAllowed     = errors.New("role cannot be chosen at sign-up")
	ErrMissingCredentials = errors.New("username and password are required")
)
