package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/amorags/notepad/internal/logger"
	"github.com/amorags/notepad/internal/store"
	"github.com/amorags/notepad/internal/validators"
	"github.com/amorags/notepad/models"
)

// noteService validates note input and delegates persistence to a
// NoteRepository. Ownership scoping lives entirely in the repository
// queries; this layer only enforces the field invariants.
type noteService struct {
	noteRepository store.NoteRepository
	noteValidator  validators.Validator

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		noteValidator:  validators.NewNoteValidator(),
		logger:         logger,
	}
}

// ListNotes returns a page of the user's notes, newest first. Pagination
// bounds are validated and rejected, never clamped.
func (n *noteService) ListNotes(ctx context.Context, userID int64, skip, limit int) ([]models.Note, error) {
	if err := n.noteValidator.Validate(ctx, validators.ListQuery{Skip: skip, Limit: limit}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return n.noteRepository.List(ctx, userID, skip, limit)
}

func (n *noteService) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	return n.noteRepository.GetByID(ctx, userID, noteID)
}

func (n *noteService) CreateNote(ctx context.Context, userID int64, payload models.NotePayload) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := n.noteValidator.Validate(ctx, payload); err != nil {
		log.Error().Err(err).Msg("invalid note payload provided")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return n.noteRepository.Create(ctx, models.Note{
		Name:    payload.Name,
		Content: payload.Content,
		UserID:  userID,
	})
}

func (n *noteService) UpdateNote(ctx context.Context, userID, noteID int64, payload models.NotePayload) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := n.noteValidator.Validate(ctx, payload); err != nil {
		log.Error().Err(err).Msg("invalid note payload provided")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return n.noteRepository.Update(ctx, models.Note{
		ID:      noteID,
		Name:    payload.Name,
		Content: payload.Content,
		UserID:  userID,
	})
}

func (n *noteService) DeleteNote(ctx context.Context, userID, noteID int64) (bool, error) {
	return n.noteRepository.Delete(ctx, userID, noteID)
}

// WordCount counts maximal whitespace-delimited tokens.
func (n *noteService) WordCount(content string) int {
	return len(strings.Fields(content))
}
