package httpapi

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
)

// userIDKey is the gin context key under which the auth guard stores the
// resolved user id.
const userIDKey = "userID"

// requireToken guards a handler behind a bearer token of the given kind.
// On success the subject user id is injected into the gin context; any
// failure aborts the request with the matching 401 body.
func (s *Server) requireToken(kind auth.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if header == "" || !ok || token == "" {
			s.writeError(c, common.ErrMissingToken)
			c.Abort()
			return
		}

		userID, err := s.tokens.Validate(token, kind)
		if err != nil {
			s.writeError(c, err)
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// requestLogger assigns every request a uuid, echoes it in the
// X-Request-Id header, and logs the outcome.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-Id", requestID)

		c.Next()

		s.logger.Info(c.Request.Context(), "request handled",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
