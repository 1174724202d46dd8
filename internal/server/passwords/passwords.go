// Package passwords wraps bcrypt hashing and verification of user
// passwords. Plaintext never leaves this package boundary as anything but
// a hash.
package passwords

import "golang.org/x/crypto/bcrypt"

// Hash returns the bcrypt hash of plaintext at the default cost. The salt
// is generated by bcrypt and embedded in the hash string.
func Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches hash. A malformed hash is
// treated as a mismatch, never an error.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
