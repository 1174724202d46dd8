// Package auth issues and validates the signed tokens used by the HTTP API.
// Both access and refresh tokens are stateless HS256 JWTs; nothing is
// persisted, so a token is valid exactly while it is unexpired and its
// signature and kind check out.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/authgate/internal/common"
)

// Kind discriminates access tokens from refresh tokens. A token of one
// kind is never accepted where the other is expected.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Claims includes the registered claims plus the token kind and, for
// access tokens only, the user's email.
type Claims struct {
	jwt.RegisteredClaims
	Kind  Kind   `json:"kind"`
	Email string `json:"email,omitempty"`
}

// Manager signs and verifies tokens. The secret key and lifetimes are
// fixed at construction and never change afterwards.
type Manager struct {
	secret          []byte
	accessValidity  time.Duration
	refreshValidity time.Duration
}

func NewManager(secret []byte, accessValidity, refreshValidity time.Duration) *Manager {
	return &Manager{
		secret:          secret,
		accessValidity:  accessValidity,
		refreshValidity: refreshValidity,
	}
}

// IssueAccessToken signs a short-lived access token with subject userID
// and the user's email as an additional claim.
func (m *Manager) IssueAccessToken(userID int64, email string) (string, error) {
	return m.issue(userID, KindAccess, m.accessValidity, email)
}

// IssueRefreshToken signs a long-lived refresh token with subject userID
// and no extra claims.
func (m *Manager) IssueRefreshToken(userID int64) (string, error) {
	return m.issue(userID, KindRefresh, m.refreshValidity, "")
}

func (m *Manager) issue(userID int64, kind Kind, validity time.Duration, email string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		Kind:  kind,
		Email: email,
	})

	return token.SignedString(m.secret)
}

// Validate checks the signature, expiry, and kind of tokenString and
// returns the subject user id. It fails with common.ErrMissingToken for an
// empty token, common.ErrTokenExpired past expiry, and
// common.ErrInvalidToken for everything else (bad signature, malformed
// structure, kind mismatch, unparsable subject).
func (m *Manager) Validate(tokenString string, kind Kind) (int64, error) {
	if tokenString == "" {
		return 0, common.ErrMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, common.ErrTokenExpired
		}
		return 0, common.ErrInvalidToken
	}

	if !token.Valid || claims.Kind != kind {
		return 0, common.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, common.ErrInvalidToken
	}

	return userID, nil
}
