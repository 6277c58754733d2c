package service

import (
	"context"

	"github.com/amorags/notepad/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns the credential-check-and-issue flow: registration,
// login, token issuance, and per-request identity resolution.
type AuthService interface {
	// RegisterUser validates the credentials, hashes the password, and
	// creates the account. Returns the persisted user.
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login verifies the credentials against the stored hash and returns
	// the matching user.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// CreateToken issues a signed JWT whose subject is the user's email.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate resolves a raw bearer token into the user it belongs
	// to. Bad signature, expiry and unknown subject are all reported
	// through the same error so callers cannot distinguish the cases.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)

	// DeleteAccount removes the user and every note they own.
	DeleteAccount(ctx context.Context, userID int64) error
}

// NoteService validates and executes note operations on behalf of an
// already-authenticated user.
type NoteService interface {
	ListNotes(ctx context.Context, userID int64, skip, limit int) ([]models.Note, error)
	GetNote(ctx context.Context, userID, noteID int64) (models.Note, error)
	CreateNote(ctx context.Context, userID int64, payload models.NotePayload) (models.Note, error)
	UpdateNote(ctx context.Context, userID, noteID int64, payload models.NotePayload) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) (bool, error)

	// WordCount returns the number of maximal whitespace-delimited tokens
	// in content.
	WordCount(content string) int
}
