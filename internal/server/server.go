// file: internal/server/server.go
// version: 2.0.0
// guid: 2c7b4e19-a6d3-4f80-95b1-e0c8d7a3f264

package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jdfalk/isbn-catalog/internal/catalog"
	"github.com/jdfalk/isbn-catalog/internal/database"
	"github.com/jdfalk/isbn-catalog/internal/logging"
	"github.com/jdfalk/isbn-catalog/internal/metrics"
	"github.com/jdfalk/isbn-catalog/internal/server/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	catalog    *catalog.Service
	store      database.Store

	// reconcileMu keeps one reconciliation in flight at a time.
	reconcileMu sync.Mutex
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// RateLimit is add requests per minute per client.
	RateLimit int
}

// GetDefaultServerConfig returns default server configuration
func GetDefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:         "8080",
		Host:         "localhost",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		RateLimit:    30,
	}
}

// NewServer creates a new server instance
func NewServer(svc *catalog.Service, store database.Store, cfg ServerConfig) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())

	metrics.Register()

	s := &Server{
		router:  router,
		catalog: svc,
		store:   store,
	}
	s.setupRoutes(cfg)
	return s
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes(cfg ServerConfig) {
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.GET("/health", s.healthCheck)

	api := s.router.Group("/api/v1")
	api.GET("/health", s.healthCheck)

	books := api.Group("/books")
	books.GET("/:isbn", s.getBook)
	books.POST("",
		middleware.MaxBodyBytes(middleware.DefaultMaxBodyBytes),
		middleware.NewClientRateLimiter(cfg.RateLimit, 1+cfg.RateLimit/10).Middleware(),
		s.addBook,
	)
}

// Start listens on cfg's address and serves until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Start(ctx context.Context, cfg ServerConfig) error {
	listener, err := net.Listen("tcp", net.JoinHostPort(cfg.Host, cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on %s:%s: %w", cfg.Host, cfg.Port, err)
	}
	return s.Serve(ctx, listener, cfg)
}

// Serve runs the server on an existing listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener, cfg ServerConfig) error {
	s.httpServer = &http.Server{
		Handler:        s.router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	s.catalog.RefreshGauges(ctx)

	errCh := make(chan error, 1)
	go func() {
		logging.Infof("Starting server on %s", listener.Addr())
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Infof("Shutting down server...")

	// Give outstanding requests a deadline for completion
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logging.Infof("Server exited")
	return nil
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Debugf("%s %s %d %v", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()
	resp := StatusResponse{Status: "ok"}
	data := gin.H{
		"version":   Version,
		"timestamp": time.Now().Unix(),
		"provider":  s.catalog.ProviderName(),
	}

	books, err := s.store.CountBooks(ctx)
	if err == nil {
		var authors int
		authors, err = s.store.CountAuthors(ctx)
		data["books"] = books
		data["authors"] = authors
	}
	if err != nil {
		resp.Status = "degraded"
		resp.Code = "STORAGE_UNAVAILABLE"
		data["error"] = err.Error()
	}
	resp.Data = data
	c.JSON(http.StatusOK, resp)
}

func (s *Server) addBook(c *gin.Context) {
	var req AddBookRequest
	// An empty body is a missing ISBN, reported like any other outcome.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		HandleBindError(c, err)
		return
	}

	s.reconcileMu.Lock()
	out := s.catalog.Reconcile(c.Request.Context(), req.ISBN)
	s.reconcileMu.Unlock()

	status, body := NewReconcileResponse(out)
	if status >= http.StatusInternalServerError {
		logErrorWithContext(c, status, body.Message)
	}
	c.JSON(status, body)
}

func (s *Server) getBook(c *gin.Context) {
	isbn := c.Param("isbn")
	book, err := s.catalog.Lookup(c.Request.Context(), isbn)
	switch catalog.StateOf(err) {
	case catalog.StateAdded:
	case catalog.StateMissingInput:
		RespondWithBadRequest(c, "isbn is required")
		return
	default:
		RespondWithInternalError(c, err.Error())
		return
	}
	if book == nil {
		RespondWithNotFound(c, "book", catalog.NormalizeISBN(isbn))
		return
	}
	c.JSON(http.StatusOK, book)
}
