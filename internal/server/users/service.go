// Package users contains the account model, the credential store, and the
// service implementing registration, login, token refresh, and lookup of
// the current user.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/emailx"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/passwords"
)

const minPasswordLength = 6

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Service provides authentication-related operations:
//   - Register: validate input and create users
//   - Login: verify credentials and mint tokens
//   - Refresh: mint a new access token for an already-authenticated user
//   - GetUser: resolve the user behind a validated token
type Service struct {
	repo   Repository
	tokens *auth.Manager
}

func NewService(repo Repository, tokens *auth.Manager) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
	}
}

// Register normalizes and validates the supplied credentials, creates the
// user, and returns it together with a fresh token pair.
//
// Username and email are both set to the normalized address, so the two
// unique identifiers can never diverge. The pre-check on email yields a
// friendly duplicate error; the unique constraint in the store is the
// backstop for concurrent registrations racing past the check.
func (s *Service) Register(ctx context.Context, rawEmail, password string) (*User, *TokenPair, error) {

	email, err := emailx.Normalize(rawEmail)
	if err != nil {
		return nil, nil, common.NewValidationError("Invalid email address: %v", err)
	}

	if len(password) < minPasswordLength {
		return nil, nil, common.NewValidationError("Password must be at least %d characters long", minPasswordLength)
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, nil, common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, nil, fmt.Errorf("error checking existing email: %w", err)
	}

	hash, err := passwords.Hash(password)
	if err != nil {
		return nil, nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		Username:     email,
		Email:        email,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, nil, common.ErrorAlreadyExists
		}
		return nil, nil, fmt.Errorf("error creating user: %w", err)
	}

	pair, err := s.tokenPair(user)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	return user, pair, nil
}

// Login verifies the credentials and returns the user with a fresh token
// pair. An unknown email and a wrong password both yield
// common.ErrorUnauthorized so a caller cannot probe which accounts exist.
func (s *Service) Login(ctx context.Context, rawEmail, password string) (*User, *TokenPair, error) {

	email, err := emailx.Normalize(rawEmail)
	if err != nil {
		return nil, nil, common.NewValidationError("Invalid email address: %v", err)
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}

	if !passwords.Verify(password, user.PasswordHash) {
		return nil, nil, common.ErrorUnauthorized
	}

	pair, err := s.tokenPair(user)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	return user, pair, nil
}

// Refresh mints a new access token for the user behind a validated
// refresh token. The user may have been deleted since issuance, in which
// case common.ErrorNotFound passes through.
func (s *Service) Refresh(ctx context.Context, userID int64) (string, error) {

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", common.ErrorInternal
	}

	token, err := s.tokens.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// GetUser resolves the user behind a validated access token.
func (s *Service) GetUser(ctx context.Context, userID int64) (*User, error) {

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

func (s *Service) tokenPair(user *User) (*TokenPair, error) {
	access, err := s.tokens.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	refresh, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
