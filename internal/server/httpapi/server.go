// Package httpapi serves the WanderGenie REST API with gin.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dmitrijs2005/wandergenie/internal/logging"
	"github.com/dmitrijs2005/wandergenie/internal/server/itineraries"
	"github.com/dmitrijs2005/wandergenie/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type UserService interface {
	Register(ctx context.Context, email, name, password string) (*users.User, error)
	Login(ctx context.Context, email, password string) (*users.LoginResult, error)
	Authenticate(ctx context.Context, token string) (*users.User, error)
}

type ItineraryService interface {
	Plan(ctx context.Context, userID string, req itineraries.Request) (*itineraries.Record, error)
	History(ctx context.Context, userID string) ([]itineraries.Record, error)
}

// Info is reported by the root and /health endpoints.
type Info struct {
	Version  string
	Database string
}

type Server struct {
	address     string
	users       UserService
	itineraries ItineraryService
	info        Info
	logger      logging.Logger
	access      *zap.Logger
	engine      *gin.Engine
}

// NewServer builds the API. logger receives application events; access
// receives one line per request.
func NewServer(address string, logger logging.Logger, access *zap.Logger, us UserService, is ItineraryService, info Info) *Server {
	if access == nil {
		access = zap.NewNop()
	}
	s := &Server{
		address:     address,
		users:       us,
		itineraries: is,
		info:        info,
		logger:      logger.With("module", "http_server"),
		access:      access,
	}
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	useJSONFieldNames()

	r := gin.New()
	r.Use(requestLogger(s.access), gin.Recovery())

	r.GET("/", s.Root)
	r.GET("/health", s.Health)

	auth := r.Group("/auth")
	auth.POST("/register", s.Register)
	auth.POST("/login", s.Login)

	protected := r.Group("/", s.requireUser())
	protected.GET("/auth/me", s.Me)
	protected.POST("/plan", s.Plan)
	protected.GET("/itineraries", s.Itineraries)

	r.NoRoute(func(c *gin.Context) {
		abortDetail(c, http.StatusNotFound, "Not Found")
	})
	return r
}

// Handler exposes the router, e.g. for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: s.engine, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
