package store

import (
	"context"

	"github.com/amorags/notepad/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence boundary for user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns the persisted record with
	// server-assigned fields populated. A duplicate email yields
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// DeleteUser removes the user and all owned notes inside a single
	// transaction.
	DeleteUser(ctx context.Context, userID int64) error
}

// NoteRepository is the persistence boundary for note records. Every method
// is scoped by the owning user's id; a note owned by someone else behaves
// exactly like a missing one.
type NoteRepository interface {
	// List returns up to limit notes of the user, newest first, skipping
	// the first skip records.
	List(ctx context.Context, userID int64, skip, limit int) ([]models.Note, error)

	// GetByID returns the note with the given id owned by userID or
	// [ErrNoteNotFound].
	GetByID(ctx context.Context, userID, noteID int64) (models.Note, error)

	// Create inserts a new note and returns the persisted record.
	Create(ctx context.Context, note models.Note) (models.Note, error)

	// Update overwrites name and content, stamps last_modified_date, and
	// returns the updated record or [ErrNoteNotFound].
	Update(ctx context.Context, note models.Note) (models.Note, error)

	// Delete removes the note and reports whether a record owned by userID
	// was actually deleted.
	Delete(ctx context.Context, userID, noteID int64) (bool, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
