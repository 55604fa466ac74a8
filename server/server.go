package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/slr71/dashboard-aggregator/pkg/dashboard"
	"github.com/slr71/dashboard-aggregator/pkg/domain"
	"github.com/slr71/dashboard-aggregator/pkg/feed"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/aggregator.go -pkg mocks -skip-ensure -fmt goimports . Aggregator
//go:generate moq -out mocks/health.go -pkg mocks -skip-ensure -fmt goimports . HealthChecker
//go:generate moq -out mocks/feeds.go -pkg mocks -skip-ensure -fmt goimports . FeedStats
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	agg       Aggregator
	health    HealthChecker
	feeds     FeedStats
	scheduler Scheduler
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Aggregator builds dashboard payloads
type Aggregator interface {
	Dashboard(ctx context.Context, req dashboard.Request) (*dashboard.Dashboard, error)
	LoggedOut(ctx context.Context, req dashboard.Request) (*dashboard.LoggedOut, error)
	PublicApps(ctx context.Context, req dashboard.Request) ([]domain.App, error)
	RecentlyAddedApps(ctx context.Context, req dashboard.Request) ([]domain.App, error)
	RecentlyUsedApps(ctx context.Context, req dashboard.Request) ([]domain.App, error)
	RecentlyRanApps(ctx context.Context, req dashboard.Request) ([]domain.App, error)
	PopularFeaturedApps(ctx context.Context, req dashboard.Request) ([]domain.App, error)
	RecentAnalyses(ctx context.Context, req dashboard.Request) ([]domain.Analysis, error)
	RunningAnalyses(ctx context.Context, req dashboard.Request) ([]domain.Analysis, error)
	Feeds(ctx context.Context) map[string][]domain.FeedItem
}

// HealthChecker reports the store schema version
type HealthChecker interface {
	SchemaVersion(ctx context.Context) (string, error)
}

// FeedStats reports feed cache counters
type FeedStats interface {
	Stats() []feed.Stats
}

// Scheduler interface for on-demand refreshes
type Scheduler interface {
	RefreshNow(ctx context.Context, name string) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetDefaultLimit() int
}

// Params holds server dependencies
type Params struct {
	Config     ConfigProvider
	Aggregator Aggregator
	Health     HealthChecker
	Feeds      FeedStats
	Scheduler  Scheduler
	Version    string
	Debug      bool
}

// New initializes a new server instance
func New(params Params) *Server {
	s := &Server{
		config:    params.Config,
		agg:       params.Aggregator,
		health:    params.Health,
		feeds:     params.Feeds,
		scheduler: params.Scheduler,
		version:   params.Version,
		debug:     params.Debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           otelhttp.NewHandler(s.router, "dashboard-aggregator"),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("dashboard-aggregator", "slr71", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(1000))
	s.router.Use(rest.SizeLimit(64 * 1024)) // GET only, no bodies expected
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /{$}", s.loggedOutHandler)
	s.router.HandleFunc("GET /healthz", s.healthHandler)
	s.router.HandleFunc("GET /feeds", s.feedsHandler)

	s.router.Mount("/users").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /{username}", s.userDashboardHandler)
		r.HandleFunc("GET /{username}/apps/{kind}", s.userAppsHandler)
		r.HandleFunc("GET /{username}/analyses/{kind}", s.userAnalysesHandler)
	})

	s.router.Mount("/apps").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /public", s.publicAppsHandler)
		r.HandleFunc("GET /recently-ran", s.recentlyRanAppsHandler)
	})

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /feeds/{name}/refresh", s.refreshFeedHandler)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

// renderFailure maps an operation error to a status code. Validation errors are the
// caller's fault, everything else is ours or an upstream's.
func renderFailure(w http.ResponseWriter, r *http.Request, err error) {
	var verr *dashboard.ValidationError
	if errors.As(err, &verr) {
		lgr.Printf("[DEBUG] rejected %s: %v", r.URL.Path, err)
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	lgr.Printf("[WARN] %s failed: %v", r.URL.Path, err)
	renderError(w, r, err, http.StatusInternalServerError)
}
