package models

// User is one entry of the user registry. The registry is persisted as a
// single JSON object keyed by email, so the email itself is not a field.
// Passwords are stored as bcrypt hashes, never in the clear.
type User struct {
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash"`
}
