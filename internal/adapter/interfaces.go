// Package adapter provides transport-layer abstractions for communicating
// with the Notepad API server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/amorags/notepad/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Notepad API
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Signup registers a new account and returns the created user.
	Signup(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login authenticates and stores the returned access token via SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.TokenResponse, error)

	// DeleteAccount removes the authenticated account and all of its notes.
	DeleteAccount(ctx context.Context) error

	// ListNotes fetches a page of the authenticated user's notes,
	// newest first.
	ListNotes(ctx context.Context, skip, limit int) ([]models.Note, error)

	// GetNote fetches a single note by ID.
	GetNote(ctx context.Context, noteID int64) (models.Note, error)

	// CreateNote creates a note and returns the persisted record.
	CreateNote(ctx context.Context, payload models.NotePayload) (models.Note, error)

	// UpdateNote replaces a note's name and content.
	UpdateNote(ctx context.Context, noteID int64, payload models.NotePayload) (models.Note, error)

	// DeleteNote removes a note by ID.
	DeleteNote(ctx context.Context, noteID int64) error

	// WordCount fetches the server-side word count for a note.
	WordCount(ctx context.Context, noteID int64) (models.WordCountResponse, error)
}
