package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrEmptyPassword = errors.New("password is required")

	ErrEmptyName        = errors.New("name is required")
	ErrNameTooLong      = errors.New("name must be at most 100 characters")
	ErrContentTooShort  = errors.New("content must be at least 10 characters")
	ErrContentTooLong   = errors.New("content must be at most 10000 characters")
	ErrNotEnoughWords   = errors.New("content must contain at least 10 words")
	ErrNegativeSkip     = errors.New("skip must be non-negative")
	ErrLimitOutOfBounds = errors.New("limit must be between 1 and 1000")
)
