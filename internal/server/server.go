// file: internal/server/server.go
// version: 2.0.0
// guid: 4c5d6e7f-8a9b-0c1d-2e3f-4a5b6c7d8e9f

package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jdfalk/folio/internal/cache"
	"github.com/jdfalk/folio/internal/content"
	"github.com/jdfalk/folio/internal/locale"
	"github.com/jdfalk/folio/internal/metrics"
	"github.com/jdfalk/folio/internal/realtime"
	"github.com/jdfalk/folio/internal/server/middleware"
)

// Version is reported by the health endpoint.
var Version = "dev"

// snapshot is one published catalog. Reload swaps in a new snapshot and
// never touches the old one, so in-flight requests finish on the data they
// started with.
type snapshot struct {
	catalog  *content.Catalog
	loadedAt time.Time
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	opts       Options
	current    atomic.Pointer[snapshot]
	searches   *cache.Cache[[]SearchHit]
	events     *realtime.EventHub
}

// Options holds the content-facing settings of the API.
type Options struct {
	DefaultLanguage    locale.Language
	CacheTTL           time.Duration
	CacheSize          int
	RateLimitPerMinute int
	RateLimitBurst     int
	DefaultLimit       int
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         int
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// GetDefaultServerConfig returns default server configuration
func GetDefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:         8080,
		Host:         "localhost",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// DefaultOptions mirrors the config defaults.
func DefaultOptions() Options {
	return Options{
		DefaultLanguage:    locale.Canonical,
		CacheTTL:           5 * time.Minute,
		CacheSize:          512,
		RateLimitPerMinute: 120,
		RateLimitBurst:     20,
		DefaultLimit:       20,
	}
}

// NewServer creates a server publishing catalog, which may be nil until
// the first Reload.
func NewServer(catalog *content.Catalog, opts Options) *Server {
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = locale.Canonical
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(requestLogging())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Register metrics (idempotent)
	metrics.Register()

	s := &Server{
		router:   router,
		opts:     opts,
		searches: cache.New[[]SearchHit](opts.CacheTTL, opts.CacheSize),
		events:   realtime.NewEventHub(),
	}
	if catalog != nil {
		s.Reload(catalog)
	}

	s.setupRoutes()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Catalog returns the currently published catalog, or nil.
func (s *Server) Catalog() *content.Catalog {
	if snap := s.current.Load(); snap != nil {
		return snap.catalog
	}
	return nil
}

// Reload publishes catalog, drops cached search responses and notifies
// event stream subscribers.
func (s *Server) Reload(catalog *content.Catalog) {
	s.current.Store(&snapshot{catalog: catalog, loadedAt: time.Now()})
	s.searches.InvalidateAll()

	counts := make(map[string]int)
	for kind, n := range catalog.Counts() {
		metrics.SetContentRecords(string(kind), n)
		counts[kind.Plural()] = n
	}
	s.events.SendContentReloaded(counts)
	log.Printf("[INFO] Published catalog: %v", counts)
}

// ReportReloadError tells event stream subscribers that a reload was
// rejected. The published catalog is unchanged.
func (s *Server) ReportReloadError(err error) {
	s.events.SendContentRejected(err)
}

// Start starts the HTTP server and blocks until SIGINT or SIGTERM.
func (s *Server) Start(cfg ServerConfig) error {
	s.httpServer = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:        s.router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] Starting server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	// Heartbeat: refresh process gauges while running
	stopHeartbeat := make(chan struct{})
	defer close(stopHeartbeat)
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				var mem runtime.MemStats
				runtime.ReadMemStats(&mem)
				metrics.SetMemoryAlloc(mem.Alloc)
				metrics.SetGoroutines(runtime.NumGoroutine())
			case <-stopHeartbeat:
				return
			}
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	log.Println("[INFO] Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("[INFO] Server exited")
	return nil
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	// Prometheus metrics endpoint (standard path)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api/v1")
	api.Use(middleware.MaxRequestBodySize(middleware.DefaultBodyLimit))
	{
		api.GET("/health", s.healthCheck)
		api.GET("/events", s.events.HandleSSE)

		limiter := middleware.NewIPRateLimiter(s.opts.RateLimitPerMinute, s.opts.RateLimitBurst)
		api.GET("/search", limiter.Middleware(), s.searchContent)

		api.GET("/projects/featured", s.listFeatured)
		for _, kind := range content.Kinds() {
			api.GET("/"+kind.Plural(), s.listContent(kind))
			api.GET("/"+kind.Plural()+"/:id", s.getContent(kind))
		}

		api.GET("/language", s.getLanguage)
		api.PUT("/language", s.setLanguage)
	}

	s.setupPlaceholder()
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, Accept-Language, X-Request-ID")
		c.Header("Access-Control-Allow-Methods", "GET, PUT, OPTIONS")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID, Content-Language")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	snap := s.current.Load()
	if snap == nil {
		c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "degraded", Code: "NO_CONTENT_LOADED"})
		return
	}
	counts := gin.H{}
	for kind, n := range snap.catalog.Counts() {
		counts[kind.Plural()] = n
	}
	c.JSON(http.StatusOK, StatusResponse{
		Status: "ok",
		Data: gin.H{
			"version":          Version,
			"timestamp":        time.Now().Unix(),
			"content_loaded":   snap.loadedAt.Unix(),
			"default_language": s.opts.DefaultLanguage,
			"content":          counts,
		},
	})
}
