package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/amorags/notepad/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING id, email, password_hash, created_at;`

	findUserByEmail = `SELECT id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	deleteUserNotes = `DELETE FROM notes WHERE user_id = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`
)

// psql is the shared statement builder configured for PostgreSQL
// dollar-numbered placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// noteColumns is the canonical column order used by every note query and the
// row-scanning helpers.
var noteColumns = []string{"id", "name", "content", "created_date", "last_modified_date", "user_id"}

func listNotesQuery(userID int64, skip, limit int) (string, []any, error) {
	return psql.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_date DESC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		ToSql()
}

func getNoteQuery(userID, noteID int64) (string, []any, error) {
	return psql.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}

func insertNoteQuery(note models.Note) (string, []any, error) {
	return psql.
		Insert(note.TableName()).
		Columns("name", "content", "user_id").
		Values(note.Name, note.Content, note.UserID).
		Suffix("RETURNING " + joinedNoteColumns()).
		ToSql()
}

func updateNoteQuery(note models.Note) (string, []any, error) {
	return psql.
		Update(note.TableName()).
		Set("name", note.Name).
		Set("content", note.Content).
		Set("last_modified_date", sq.Expr("now()")).
		Where(sq.Eq{"id": note.ID, "user_id": note.UserID}).
		Suffix("RETURNING " + joinedNoteColumns()).
		ToSql()
}

func deleteNoteQuery(userID, noteID int64) (string, []any, error) {
	return psql.
		Delete(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}

func joinedNoteColumns() string {
	joined := ""
	for i, column := range noteColumns {
		if i > 0 {
			joined += ", "
		}
		joined += column
	}
	return joined
}
