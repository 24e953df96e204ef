package services

import (
	"fmt"

	"github.com/SscSPs/news_digest_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_digest_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_digest_app/internal/core/ports/services"
	"github.com/SscSPs/news_digest_app/internal/platform/config"
	"github.com/SscSPs/news_digest_app/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, metrics portssvc.MetricsRecorder) (*portssvc.ServiceContainer, error) {
	sessionKey, err := utils.DeriveKey(cfg.SessionSecret, utils.KeyPurposeSession)
	if err != nil {
		return nil, fmt.Errorf("failed to derive session key: %w", err)
	}
	stateKey, err := utils.DeriveKey(cfg.SessionSecret, utils.KeyPurposeOAuthState)
	if err != nil {
		return nil, fmt.Errorf("failed to derive oauth state key: %w", err)
	}

	container := &portssvc.ServiceContainer{}

	container.IdentityResolver = NewIdentityResolver(repos.UserRepo, repos.AccountRepo)
	container.Session = NewSessionService(repos.SessionRepo, sessionKey, cfg.JWTIssuer, WithSessionMaxAge(cfg.SessionMaxAge))

	container.OAuth = NewOAuthService(OAuthDeps{
		Resolver:    container.IdentityResolver,
		Sessions:    container.Session,
		UserRepo:    repos.UserRepo,
		AccountRepo: repos.AccountRepo,
		Providers:   configuredProviders(cfg),
		StateKey:    stateKey,
		Issuer:      cfg.JWTIssuer,
		Metrics:     metrics,
	})

	container.Bookmark = NewBookmarkService(repos.BookmarkRepo, WithBookmarkMetrics(metrics))
	container.Summary = NewSummaryService(cfg.GroqAPIKey, cfg.GroqAPIURL)

	return container, nil
}

// configuredProviders returns the providers with complete credentials.
func configuredProviders(cfg *config.Config) []portssvc.OAuthProviderClient {
	var providers []portssvc.OAuthProviderClient
	if cfg.GitHubClientID != "" && cfg.GitHubClientSecret != "" {
		providers = append(providers, NewGitHubProvider(cfg.GitHubClientID, cfg.GitHubClientSecret, cfg.OAuthCallbackURL(string(domain.ProviderGitHub))))
	}
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		providers = append(providers, NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthCallbackURL(string(domain.ProviderGoogle))))
	}
	return providers
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.BookmarkSvcFacade = (*bookmarkService)(nil)
	_ portssvc.SessionSvcFacade  = (*sessionService)(nil)
	_ portssvc.OAuthSvcFacade    = (*oauthService)(nil)
)
