package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	handlers "github.com/GriffinCanCode/urlargs/internal/api/http"
	"github.com/GriffinCanCode/urlargs/internal/api/middleware"
	"github.com/GriffinCanCode/urlargs/internal/infrastructure/config"
	"github.com/GriffinCanCode/urlargs/internal/infrastructure/logging"
	"github.com/GriffinCanCode/urlargs/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/urlargs/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/urlargs/internal/providers/location"
	"github.com/GriffinCanCode/urlargs/internal/service"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	http     *http.Server
	registry *service.Registry
	provider *location.Provider
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	tracer   *tracing.Tracer
}

// NewServer creates a new server instance. A nil logger is built from the
// logging configuration.
func NewServer(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.FromLevel(cfg.Logging.Level, cfg.Logging.Development)
	}

	logger.Info("Initializing urlargs server",
		zap.String("port", cfg.Server.Port),
		zap.Int("max_sessions", cfg.Server.MaxSessions),
	)

	metrics := monitoring.NewMetrics()
	tracer := tracing.New("urlargs", logger.Logger)

	provider := location.NewProvider(location.Config{
		MaxSessions: cfg.Server.MaxSessions,
		Logger:      logger.Logger,
		Recorder:    metrics,
	})
	registry := service.NewRegistry()
	if err := registry.Register(provider); err != nil {
		tracer.Close()
		return nil, fmt.Errorf("failed to register location provider: %w", err)
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
		if rps := cfg.RateLimit.GlobalRequestsPerSecond; rps > 0 {
			burst := cfg.RateLimit.GlobalBurst
			if burst <= 0 {
				burst = rps
			}
			logger.Info("Global rate limit enabled", zap.Int("rps", rps), zap.Int("burst", burst))
			router.Use(middleware.GlobalRateLimit(middleware.RateLimitConfig{
				RequestsPerSecond: rps,
				Burst:             burst,
			}))
		}
	}

	h := handlers.NewHandlers(registry, provider.Sessions(), handlers.NewHandlerMetrics(metrics), tracer, logger.Logger)

	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/echo/*path", h.Echo)
	router.GET("/parse", h.Parse)
	router.GET("/services", h.ListServices)
	router.POST("/services/execute", h.ExecuteService)
	router.GET("/metrics", gin.WrapH(monitoring.Handler(metrics)))

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		registry: registry,
		provider: provider,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
		tracer:   tracer,
	}, nil
}

// Router returns the configured router.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.config.Server.Host, s.config.Server.Port)
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves HTTP on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.http = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("Starting HTTP server", zap.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down http server: %w", err)
		}
		return nil
	}
}

// Close flushes the tracer and the logger.
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")
	s.tracer.Close()
	// Sync fails on stderr for some platforms; nothing to recover.
	_ = s.logger.Sync()
	return nil
}
