package httpapi

import (
	"time"

	"github.com/dmitrijs2005/authgate/internal/server/users"
)

// credentialsRequest is the body of both /auth/register and /auth/login.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userDTO is the public projection of a user. The password hash is never
// part of any response.
type userDTO struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	CreatedAt *string `json:"created_at"`
}

func newUserDTO(u *users.User) userDTO {
	dto := userDTO{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
	if !u.CreatedAt.IsZero() {
		s := u.CreatedAt.UTC().Format(time.RFC3339)
		dto.CreatedAt = &s
	}
	return dto
}

type authResponse struct {
	Message      string  `json:"message"`
	User         userDTO `json:"user"`
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

type meResponse struct {
	User userDTO `json:"user"`
}
