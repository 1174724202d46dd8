package users

import "time"

// User is the persistent account entity. PasswordHash is the bcrypt hash
// of the password; the plaintext is never stored.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
