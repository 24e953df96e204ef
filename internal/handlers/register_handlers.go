package handlers

import (
	"github.com/SscSPs/news_digest_app/cmd/docs"
	"github.com/SscSPs/news_digest_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_digest_app/internal/core/ports/services"
	"github.com/SscSPs/news_digest_app/internal/middleware"
	"github.com/SscSPs/news_digest_app/internal/platform/config"
	"github.com/SscSPs/news_digest_app/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouteDeps are the non-service collaborators the routes need.
type RouteDeps struct {
	Posthog        *utils.PosthogClientWrapper
	AuthLimiter    gin.HandlerFunc
	SummaryLimiter gin.HandlerFunc
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	registerHomeRoutes(r)

	// Sign-in pages and the /api/auth flow
	registerAuthRoutes(r, cfg, services, deps)

	// Pages behind the render guard
	registerPageRoutes(r, services.Bookmark)

	api := r.Group("/api")
	registerBookmarkRoutes(api, services.Bookmark)
	registerSummaryRoutes(api, services.Summary, deps.SummaryLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// withLimiter returns the limiter as a handler chain, or nothing when it is nil.
func withLimiter(limiter gin.HandlerFunc) []gin.HandlerFunc {
	if limiter == nil {
		return nil
	}
	return []gin.HandlerFunc{limiter}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// sessionOrNil returns the request session, nil when there is none.
func sessionOrNil(c *gin.Context) *domain.SessionPayload {
	session, _ := middleware.GetSessionFromContext(c)
	return session
}
