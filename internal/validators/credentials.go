package validators

import (
	"context"
	"net/mail"

	"github.com/amorags/notepad/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// CredentialsValidator checks the signup/login request body: the email must
// parse as an address and the password must be present. Password strength
// rules are out of scope here.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if creds.Email == "" {
				return ErrEmptyEmail
			}
			if _, err := mail.ParseAddress(creds.Email); err != nil {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
