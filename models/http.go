package models

// Credentials is the request body accepted by the signup and login endpoints.
type Credentials struct {
	// Email is the account identifier.
	Email string `json:"email"`

	// Password is the plaintext password. It exists only for the duration
	// of the request and is never persisted or logged.
	Password string `json:"password"`
}

// NotePayload is the request body accepted by the note create and update
// endpoints. The owning user is always taken from the request context, never
// from the body.
type NotePayload struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}
