package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/news_digest_app/internal/adapters/database/mongodb"
	"github.com/SscSPs/news_digest_app/internal/core/services"
	"github.com/SscSPs/news_digest_app/internal/handlers"
	"github.com/SscSPs/news_digest_app/internal/middleware"
	"github.com/SscSPs/news_digest_app/internal/platform/config"
	"github.com/SscSPs/news_digest_app/internal/platform/metrics"
	"github.com/SscSPs/news_digest_app/internal/utils"
	"github.com/SscSPs/news_digest_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 10 * time.Second

// @title News Digest Backend API
// @version 1.0
// @description Sign-in, session, bookmark and summary endpoints for the news digest front-end.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session JWT.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The provider connects lazily on first use and retries after a failed attempt.
	provider := database.NewMongoProvider(cfg.MongoURI, cfg.MongoDatabase, database.WithLogger(logger))
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := provider.Disconnect(disconnectCtx); err != nil {
			logger.Error("Error disconnecting from MongoDB", slog.String("error", err.Error()))
		}
	}()

	// A database that is down at boot is not fatal: the provider retries on
	// the next request.
	if err := prepareDatabase(ctx, cfg, provider, logger); err != nil {
		logger.Warn("Could not prepare database at startup", slog.String("error", err.Error()))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	container, err := services.NewServiceContainer(cfg, mongodb.NewRepositoryProvider(provider), collector)
	if err != nil {
		logger.Error("Failed to build services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization", handlers.UserIDHeader)
	r.Use(cors.New(corsConfig))

	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.MetricsMiddleware(collector),
		middleware.SessionMiddleware(container.Session, cfg.SessionCookieName),
		middleware.RouteGuard(cfg.ProtectedPathPrefixes, container.Session, cfg.SessionCookieName),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	deps := handlers.RouteDeps{
		Posthog:        posthogClient,
		AuthLimiter:    mustLimiter(cfg.AuthRateLimit, logger),
		SummaryLimiter: mustLimiter(cfg.SummaryRateLimit, logger),
	}
	handlers.RegisterRoutes(r, cfg, container, deps)
	r.GET("/metrics", gin.WrapH(metrics.Handler(registry)))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// prepareDatabase applies migrations when enabled, and otherwise makes sure
// the indexes exist.
func prepareDatabase(ctx context.Context, cfg *config.Config, provider *database.MongoProvider, logger *slog.Logger) error {
	bootCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		return database.RunMongoMigrations(bootCtx, cfg.MongoURI, cfg.MongoDatabase, cfg.MigrationsPath, logger)
	}
	return mongodb.EnsureIndexes(bootCtx, provider)
}

func mustLimiter(rate string, logger *slog.Logger) gin.HandlerFunc {
	if rate == "" {
		return nil
	}
	l, err := middleware.NewRateLimiter(rate)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", rate), slog.String("error", err.Error()))
		os.Exit(1)
	}
	return middleware.RateLimit(l)
}
