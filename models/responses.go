package models

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	// AccessToken is the compact JWS string to be presented in the
	// Authorization header of subsequent requests.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`
}

// WordCountResponse is the body returned by the note word-count endpoint.
type WordCountResponse struct {
	// NoteID is the identifier of the counted note.
	NoteID int64 `json:"note_id"`

	// WordCount is the number of maximal whitespace-delimited tokens
	// in the note content.
	WordCount int `json:"word_count"`
}

// MessageResponse is a generic informational body, used by the root
// health endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}
