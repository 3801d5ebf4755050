// Package httpapi exposes the account and language services over HTTP/JSON
// using gin.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/dilbilim/internal/logging"
	"github.com/dmitrijs2005/dilbilim/internal/server/models"
	"github.com/gin-gonic/gin"
)

// UserService is the account side used by the handlers.
type UserService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

// LanguageService is the language side used by the handlers.
type LanguageService interface {
	List(ctx context.Context) ([]*models.Language, error)
	Add(ctx context.Context, name, code string) (*models.Language, error)
}

type HTTPServer struct {
	address         string
	shutdownTimeout time.Duration
	users           UserService
	languages       LanguageService
	logger          logging.Logger
}

func NewHTTPServer(a string, shutdownTimeout time.Duration, l logging.Logger, us UserService, ls LanguageService) *HTTPServer {
	return &HTTPServer{
		address:         a,
		shutdownTimeout: shutdownTimeout,
		logger:          l.With("module", "http_server"),
		users:           us,
		languages:       ls,
	}
}

// Router builds the gin engine with middleware and all routes.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(s.logger), corsMiddleware())

	r.GET("/ping", s.Ping)
	r.POST("/register", s.Register)
	r.POST("/login", s.Login)
	r.GET("/languages", s.GetLanguages)
	r.POST("/add_language", s.AddLanguage)

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to the shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan struct{})
	shutdownErr := make(chan error, 1)

	go func() {
		select {
		case <-ctx.Done():
		case <-stopped:
			shutdownErr <- nil
			return
		}
		s.logger.Info(ctx, "Stopping HTTP server...")

		sctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		shutdownErr <- srv.Shutdown(sctx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	err = srv.Serve(listen)
	if !errors.Is(err, http.ErrServerClosed) {
		close(stopped)
		<-shutdownErr
		return err
	}

	return <-shutdownErr
}
