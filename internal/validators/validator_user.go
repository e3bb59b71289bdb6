package validators

import (
	"context"

	"github.com/MKhiriev/go-car-keeper/internal/crypto"
	"github.com/MKhiriev/go-car-keeper/models"
)

type UserValidator struct{}

// NewUserValidator returns a Validator for [models.User] credentials.
func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserName, FieldPasscode}
	}

	for _, f := range fields {
		switch f {
		case FieldUserName:
			if user.UserName == "" {
				return ErrEmptyUserName
			}
		case FieldPasscode:
			if user.Passcode == "" {
				return ErrEmptyPasscode
			}
			if len(user.Passcode) > crypto.MaxPasscodeLength {
				return ErrLongPasscode
			}
		case FieldUserID:
			if user.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
