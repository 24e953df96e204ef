package services

import (
	"context"
	"time"

	"github.com/SscSPs/news_digest_app/internal/core/domain"
	"golang.org/x/oauth2"
)

// IdentityResolverSvc decides whether a sign-in attempt may proceed.
type IdentityResolverSvc interface {
	// Resolve accepts new emails and returning users of the same provider, and
	// rejects an email already bound under another provider. Store errors
	// reject the attempt.
	Resolve(ctx context.Context, attempt domain.SignInAttempt) (domain.SignInDecision, error)
}

// SessionMaterializerSvc issues session tokens and rebuilds sessions from them.
type SessionMaterializerSvc interface {
	// IssueToken signs a session token for the user, valid for a fixed window.
	IssueToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// Materialize verifies a token and builds the request session from it.
	Materialize(ctx context.Context, token string) (*domain.SessionPayload, error)
}

// SessionSvcFacade combines all session-related service interfaces
type SessionSvcFacade interface {
	SessionMaterializerSvc

	// RevokeToken makes a still-valid token unusable until it expires.
	RevokeToken(ctx context.Context, token string) error
}

// OAuthProviderClient talks to one OAuth identity provider.
type OAuthProviderClient interface {
	ID() domain.Provider
	DisplayName() string
	// AuthCodeURL returns the provider consent URL for a state value.
	AuthCodeURL(state string) string
	// Exchange trades an authorization code for provider tokens.
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	// FetchProfile reads the signed-in provider identity.
	FetchProfile(ctx context.Context, token *oauth2.Token) (*domain.OAuthProfile, error)
}

// SignInStart is where to send the browser to begin a sign-in, and the state
// value that must come back with the callback.
type SignInStart struct {
	AuthURL string
	State   string
}

// SignInResult is a completed sign-in.
type SignInResult struct {
	User        *domain.User
	Provider    domain.Provider
	Token       string
	Expires     time.Time
	CallbackURL string
	NewUser     bool
}

// OAuthSvcFacade runs the OAuth sign-in flow.
type OAuthSvcFacade interface {
	// Providers lists the providers that are configured.
	Providers() []domain.ProviderInfo

	// BeginSignIn prepares the provider redirect for a sign-in returning to callbackURL.
	BeginSignIn(ctx context.Context, provider domain.Provider, callbackURL string) (*SignInStart, error)

	// CompleteSignIn handles the provider callback. Rejections are returned
	// as *apperrors.SignInError.
	CompleteSignIn(ctx context.Context, provider domain.Provider, code, state, expectedState string) (*SignInResult, error)
}
