package models

import "time"

// Note is a single user-owned note record.
//
// Every note belongs to exactly one user; ownership is immutable after
// creation and enforced by every repository query. LastModifiedDate is nil
// until the first update.
type Note struct {
	// ID is the unique identifier of the note, assigned by the database.
	ID int64 `json:"id"`

	// Name is the note title, 1 to 100 characters.
	Name string `json:"name"`

	// Content is the note body, 10 to 10000 characters and at least
	// ten whitespace-separated words.
	Content string `json:"content"`

	// CreatedDate is set by the database when the note is inserted.
	CreatedDate time.Time `json:"created_date"`

	// LastModifiedDate is stamped on every update and absent until the
	// first one.
	LastModifiedDate *time.Time `json:"last_modified_date,omitempty"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
