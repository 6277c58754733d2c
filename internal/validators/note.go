package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/amorags/notepad/models"
)

const (
	FieldName    = "name"
	FieldContent = "content"
	FieldSkip    = "skip"
	FieldLimit   = "limit"
)

const (
	maxNameLength    = 100
	minContentLength = 10
	maxContentLength = 10000
	minContentWords  = 10

	maxListLimit = 1000
)

// ListQuery carries the pagination parameters of a note listing request.
// Values outside the allowed bounds are rejected, not clamped.
type ListQuery struct {
	Skip  int
	Limit int
}

// NoteValidator enforces the note field invariants: name length, content
// length, and the minimum word count. It also validates pagination bounds
// for listing requests.
type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NotePayload:
		return v.validateNotePayload(ctx, value, fields...)
	case *models.NotePayload:
		return v.validateNotePayload(ctx, *value, fields...)

	case ListQuery:
		return v.validateListQuery(ctx, value, fields...)
	case *ListQuery:
		return v.validateListQuery(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNotePayload(_ context.Context, payload models.NotePayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			length := utf8.RuneCountInString(payload.Name)
			if length == 0 {
				return ErrEmptyName
			}
			if length > maxNameLength {
				return ErrNameTooLong
			}
		case FieldContent:
			length := utf8.RuneCountInString(payload.Content)
			if length < minContentLength {
				return ErrContentTooShort
			}
			if length > maxContentLength {
				return ErrContentTooLong
			}
			if len(strings.Fields(payload.Content)) < minContentWords {
				return ErrNotEnoughWords
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateListQuery(_ context.Context, query ListQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSkip, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldSkip:
			if query.Skip < 0 {
				return ErrNegativeSkip
			}
		case FieldLimit:
			if query.Limit < 1 || query.Limit > maxListLimit {
				return ErrLimitOutOfBounds
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
