package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-provenance-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldProductID    = "product_id"
	FieldName         = "name"
	FieldManufacturer = "manufacturer"
)

const maxTextLength = 256

// ProductValidator validates registration requests and bare product
// identifiers (string).
type ProductValidator struct{}

// NewProductValidator constructs a [ProductValidator].
func NewProductValidator() Validator {
	return &ProductValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types are
// models.RegistrationRequest (value or pointer) and string, which is
// checked as a product identifier.
//
// Without fields every field of a registration request is checked.
func (v *ProductValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegistrationRequest:
		return v.validateRegistration(ctx, value, fields...)
	case *models.RegistrationRequest:
		return v.validateRegistration(ctx, *value, fields...)
	case string:
		return validateProductID(value)
	default:
		return ErrUnsupportedType
	}
}

func (v *ProductValidator) validateRegistration(_ context.Context, req models.RegistrationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProductID, FieldName, FieldManufacturer}
	}

	for _, f := range fields {
		switch f {
		case FieldProductID:
			if err := validateProductID(req.ProductID); err != nil {
				return err
			}
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(req.Name) > maxTextLength {
				return ErrFieldTooLong
			}
		case FieldManufacturer:
			if strings.TrimSpace(req.Manufacturer) == "" {
				return ErrEmptyManufacturer
			}
			if utf8.RuneCountInString(req.Manufacturer) > maxTextLength {
				return ErrFieldTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateProductID rejects empty identifiers. Any other string is a valid
// ledger key; callers escape it where it lands in URLs or file names.
func validateProductID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyProductID
	}
	return nil
}
