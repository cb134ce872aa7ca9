package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-provenance-keeper/models"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldRole     = "role"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 64
	minPasswordLength = 8
	// bcrypt ignores everything after 72 bytes
	maxPasswordBytes = 72
)

// PrincipalValidator validates sign-up and login requests.
type PrincipalValidator struct{}

// NewPrincipalValidator constructs a [PrincipalValidator].
func NewPrincipalValidator() Validator {
	return &PrincipalValidator{}
}

// Validate supports models.SignUpRequest and models.LoginRequest, as value
// or pointer. Login requests are only checked for presence so that
// validation never tells a caller more than a failed login would.
func (v *PrincipalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUp(ctx, value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUp(ctx, *value, fields...)
	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *PrincipalValidator) validateSignUp(_ context.Context, req models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			n := utf8.RuneCountInString(req.Username)
			if n < minUsernameLength || n > maxUsernameLength || strings.ContainsAny(req.Username, " \t\r\n") {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if utf8.RuneCountInString(req.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
			if len(req.Password) > maxPasswordBytes {
				return ErrFieldTooLong
			}
		case FieldRole:
			if !req.Role.SelfAssignable() {
				return ErrRoleNotAllowed
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PrincipalValidator) validateLogin(req models.LoginRequest) error {
	if req.Username == "" || req.Password == "" {
		return ErrMissingCredentials
	}
	if len(req.Password) > maxPasswordBytes {
		return ErrFieldTooLong
	}

	return nil
}
