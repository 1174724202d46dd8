// Package httpapi exposes the authentication service over HTTP JSON:
// register, login, token refresh, and current-user lookup, plus a
// liveness endpoint.
package httpapi

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address string
	users   *users.Service
	tokens  *auth.Manager
	db      *sql.DB
	logger  logging.Logger
	debug   bool
}

func NewServer(address string, l logging.Logger, us *users.Service, tm *auth.Manager, db *sql.DB, debug bool) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		users:   us,
		tokens:  tm,
		db:      db,
		debug:   debug,
	}
}

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	authGroup := r.Group("/auth")
	authGroup.POST("/register", s.handleRegister)
	authGroup.POST("/login", s.handleLogin)
	authGroup.POST("/refresh", s.requireToken(auth.KindRefresh), s.handleRefresh)
	authGroup.GET("/me", s.requireToken(auth.KindAccess), s.handleMe)

	r.GET("/healthz", s.handleHealthz)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	if s.debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
