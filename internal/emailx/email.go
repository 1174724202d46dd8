// Package emailx provides syntactic normalization of email addresses.
// Only the address syntax is checked; deliverability is not.
package emailx

import (
	"fmt"
	"net/mail"
	"strings"
)

// Normalize parses addr as a bare RFC 5322 address and returns its
// canonical lowercase form. Display names, comments, and angle brackets
// are rejected: the input must be the address and nothing else.
func Normalize(addr string) (string, error) {
	trimmed := strings.TrimSpace(addr)

	parsed, err := mail.ParseAddress(trimmed)
	if err != nil {
		return "", err
	}
	if parsed.Name != "" || parsed.Address != trimmed {
		return "", fmt.Errorf("%q is not a bare email address", addr)
	}

	return strings.ToLower(parsed.Address), nil
}
