package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amorags/notepad/internal/logger"
	"github.com/amorags/notepad/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
//
// Every query includes the owning user's id in its WHERE clause, so a note
// belonging to another user is indistinguishable from one that does not
// exist. Queries are built with squirrel (see sql_queries.go).
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// List returns the user's notes ordered by creation date descending.
// Offset and limit come pre-validated from the boundary; the repository
// applies them verbatim.
func (r *noteRepository) List(ctx context.Context, userID int64, skip, limit int) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := listNotesQuery(userID, skip, limit)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.List").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.List").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := scanNote(rows, &note); err != nil {
			log.Err(err).Str("func", "*noteRepository.List").Msg("error: scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.List").Msg("error: iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// GetByID returns the note with the given id owned by userID.
// Missing and foreign-owned notes both map to [ErrNoteNotFound].
func (r *noteRepository) GetByID(ctx context.Context, userID, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := getNoteQuery(userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetByID").Msg("error: building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	if err := scanNote(r.db.QueryRowContext(ctx, query, args...), &note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.GetByID").Msg("error: scanning row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// Create inserts a new note and returns the persisted record with the
// server-assigned id and creation timestamp.
func (r *noteRepository) Create(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Create").Msg("error: building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Note
	if err := scanNote(r.db.QueryRowContext(ctx, query, args...), &created); err != nil {
		if r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Err(err).Str("func", "*noteRepository.Create").Msg("transient DB error")
		}
		log.Err(err).Str("func", "*noteRepository.Create").Msg("error: scanning row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// Update overwrites the note's name and content and stamps
// last_modified_date. The WHERE clause carries both id and user_id, so an
// update against someone else's note affects zero rows and surfaces as
// [ErrNoteNotFound].
func (r *noteRepository) Update(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Update").Msg("error: building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Note
	if err := scanNote(r.db.QueryRowContext(ctx, query, args...), &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.Update").Msg("error: scanning row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// Delete removes the note identified by (noteID, userID) and reports whether
// anything was actually deleted.
func (r *noteRepository) Delete(ctx context.Context, userID, noteID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := deleteNoteQuery(userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Delete").Msg("error: building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Delete").Msg("error: executing query")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected > 0, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner, note *models.Note) error {
	return row.Scan(
		&note.ID,
		&note.Name,
		&note.Content,
		&note.CreatedDate,
		&note.LastModifiedDate,
		&note.UserID,
	)
}
