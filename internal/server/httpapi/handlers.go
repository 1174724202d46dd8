package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// bindCredentials decodes the request body and enforces the presence of
// both fields. All missing or empty field names are reported in a single
// combined message, matching what the caller has to fix.
func bindCredentials(c *gin.Context) (*credentialsRequest, bool) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return nil, false
	}

	var missing []string
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or empty fields: " + strings.Join(missing, ", ")})
		return nil, false
	}

	return &req, true
}

func (s *Server) handleRegister(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	user, pair, err := s.users.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse{
		Message:      "User registered successfully",
		User:         newUserDTO(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	user, pair, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Message:      "Login successful",
		User:         newUserDTO(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (s *Server) handleRefresh(c *gin.Context) {
	token, err := s.users.Refresh(c.Request.Context(), c.GetInt64(userIDKey))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, refreshResponse{AccessToken: token})
}

func (s *Server) handleMe(c *gin.Context) {
	user, err := s.users.GetUser(c.Request.Context(), c.GetInt64(userIDKey))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, meResponse{User: newUserDTO(user)})
}

func (s *Server) handleHealthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
