package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amorags/notepad/models"
)

func TestCredentialsValidator(t *testing.T) {
	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{"valid", models.Credentials{Email: "user@example.com", Password: "pw"}, nil},
		{"empty email", models.Credentials{Email: "", Password: "pw"}, ErrEmptyEmail},
		{"not an address", models.Credentials{Email: "not-an-email", Password: "pw"}, ErrInvalidEmail},
		{"missing domain", models.Credentials{Email: "user@", Password: "pw"}, ErrInvalidEmail},
		{"empty password", models.Credentials{Email: "user@example.com", Password: ""}, ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCredentialsValidator().Validate(context.Background(), tt.creds)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCredentialsValidator_PointerAndSingleField(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.Credentials{Email: "user@example.com", Password: "pw"}))

	// only the email field is checked when requested explicitly
	assert.NoError(t, v.Validate(ctx, models.Credentials{Email: "user@example.com"}, FieldEmail))
}

func TestCredentialsValidator_UnsupportedType(t *testing.T) {
	v := NewCredentialsValidator()

	err := v.Validate(context.Background(), "a string")

	assert.ErrorIs(t, err, ErrUnsupportedType)
}
